package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridgemart-backend/internal/domain"
	"bridgemart-backend/pkg/utils"
)

func registerInput() RegisterInput {
	return RegisterInput{
		Name: "Fresh Farms", Email: "fresh@farms.lk", Password: "secret1",
		Role: domain.RoleSupplier, District: "Colombo",
	}
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	u, err := svc.Register(registerInput())
	require.NoError(t, err)
	assert.False(t, u.IsApproved, "registration waits for admin approval")
	assert.True(t, u.IsActive)
	assert.Equal(t, domain.RoleSupplier, u.Role)
	assert.NotEqual(t, "secret1", u.PasswordHash)

	// 邮箱唯一
	_, err = svc.Register(registerInput())
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)

	// 只允许 supplier/supermarket 自助注册
	in := registerInput()
	in.Email = "a@b.lk"
	in.Role = domain.RoleAdmin
	_, err = svc.Register(in)
	assert.ErrorAs(t, err, &ve)
}

func seedUser(t *testing.T, repo *fakeUserRepo, id, role string, approved, active bool) {
	t.Helper()
	require.NoError(t, repo.Create(&domain.User{
		ID: id, Name: id, Email: id + "@x.lk",
		PasswordHash: utils.HashPassword("secret1"),
		Role:         role, District: "Colombo",
		IsApproved: approved, IsActive: active,
	}))
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "ok", domain.RoleSupplier, true, true)
	seedUser(t, repo, "pending", domain.RoleSupplier, false, true)
	seedUser(t, repo, "inactive", domain.RoleSupermarket, true, false)
	svc := NewUserService(repo)

	u, err := svc.Login("ok@x.lk", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "ok", u.ID)

	_, err = svc.Login("ok@x.lk", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("ghost@x.lk", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("pending@x.lk", "secret1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.Login("inactive@x.lk", "secret1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAdminWorkflow(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "sup", domain.RoleSupplier, false, true)
	svc := NewUserService(repo)

	n, err := svc.PendingCount()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	u, err := svc.Approve("sup")
	require.NoError(t, err)
	assert.True(t, u.IsApproved)

	// 已审批的不能再驳回
	var ve *domain.ValidationError
	assert.ErrorAs(t, svc.Reject("sup"), &ve)

	u, err = svc.Deactivate("sup")
	require.NoError(t, err)
	assert.False(t, u.IsActive)

	u, err = svc.Activate("sup")
	require.NoError(t, err)
	assert.True(t, u.IsActive)

	require.NoError(t, svc.Delete("sup"))
	_, err = svc.Get("sup")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdminAccountsAreUntouchable(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "root", domain.RoleAdmin, true, true)
	svc := NewUserService(repo)

	_, err := svc.Deactivate("root")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	assert.ErrorIs(t, svc.Delete("root"), domain.ErrForbidden)
	assert.ErrorIs(t, svc.Reject("root"), domain.ErrForbidden)

	_, err = svc.Approve("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
