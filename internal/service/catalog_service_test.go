package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridgemart-backend/internal/domain"
)

func seedProduct(t *testing.T, repo *fakeProductRepo, id, district, supplierID string, active bool) {
	t.Helper()
	require.NoError(t, repo.Create(&domain.Product{
		ID: id, Name: "item-" + id, Price: 10, Stock: 5,
		SupplierID: supplierID, District: district, IsActive: active,
	}))
}

func TestCatalogListScopedToDistrict(t *testing.T) {
	repo := newFakeProductRepo()
	seedProduct(t, repo, "p1", "Colombo", "s1", true)
	seedProduct(t, repo, "p2", "Kandy", "s2", true)
	seedProduct(t, repo, "p3", "Colombo", "s1", false) // 下架不可见
	svc := NewCatalogService(repo)

	ps, err := svc.ListForSupermarket(marketActor, "")
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, "p1", ps[0].ID)

	// 仓储收到的过滤条件必须带区与上架标记
	assert.Equal(t, "Colombo", repo.lastFilter.District)
	assert.True(t, repo.lastFilter.ActiveOnly)

	_, err = svc.ListForSupermarket(supplierActor, "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCatalogGetOutOfDistrictIsForbiddenNotHidden(t *testing.T) {
	repo := newFakeProductRepo()
	seedProduct(t, repo, "p2", "Kandy", "s2", true)
	svc := NewCatalogService(repo)

	// 存在但跨区 → 403 而不是 404
	_, err := svc.Get(marketActor, "p2")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.Get(marketActor, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogGetOwnership(t *testing.T) {
	repo := newFakeProductRepo()
	seedProduct(t, repo, "p1", "Colombo", "s1", true)
	svc := NewCatalogService(repo)

	p, err := svc.Get(supplierActor, "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)

	_, err = svc.Get(domain.Actor{ID: "s2", Role: domain.RoleSupplier}, "p1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	p, err = svc.Get(domain.Actor{ID: "a1", Role: domain.RoleAdmin}, "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
}

func TestCatalogCreateCopiesDistrict(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewCatalogService(repo)

	p, err := svc.Create(supplierActor, ProductInput{Name: "Rice 5kg", Price: 1200, Stock: 10})
	require.NoError(t, err)
	assert.Equal(t, "Colombo", p.District)
	assert.Equal(t, "s1", p.SupplierID)
	assert.True(t, p.IsActive)

	_, err = svc.Create(marketActor, ProductInput{Name: "x", Price: 1})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCatalogCreateValidation(t *testing.T) {
	svc := NewCatalogService(newFakeProductRepo())
	var ve *domain.ValidationError

	_, err := svc.Create(supplierActor, ProductInput{Name: " ", Price: 1})
	assert.ErrorAs(t, err, &ve)

	_, err = svc.Create(supplierActor, ProductInput{Name: "x", Price: -1})
	assert.ErrorAs(t, err, &ve)

	_, err = svc.Create(supplierActor, ProductInput{Name: "x", Price: 1, Stock: -5})
	assert.ErrorAs(t, err, &ve)
}

func TestCatalogUpdateAndDeleteOwnership(t *testing.T) {
	repo := newFakeProductRepo()
	seedProduct(t, repo, "p1", "Colombo", "s1", true)
	svc := NewCatalogService(repo)

	inactive := false
	p, err := svc.Update(supplierActor, "p1", ProductInput{Name: "Rice 10kg", Price: 2300, Stock: 7, IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "Rice 10kg", p.Name)
	assert.False(t, p.IsActive)
	assert.Equal(t, "Colombo", p.District, "district stays with the supplier")

	_, err = svc.Update(domain.Actor{ID: "s2", Role: domain.RoleSupplier}, "p1", ProductInput{Name: "y", Price: 1})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = svc.Delete(domain.Actor{ID: "s2", Role: domain.RoleSupplier}, "p1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, svc.Delete(supplierActor, "p1"))
	_, err = svc.Get(supplierActor, "p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
