package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "bridgemart", TTL: time.Minute}

	tok, err := j.Issue("u1", "supplier", "Colombo")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UID)
	assert.Equal(t, "supplier", claims.Role)
	assert.Equal(t, "Colombo", claims.District)
}

func TestParseRejectsForeignToken(t *testing.T) {
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "bridgemart", TTL: time.Minute}
	other := &JWTer{Secret: []byte("other-secret"), Issuer: "bridgemart", TTL: time.Minute}

	tok, err := other.Issue("u1", "supplier", "Colombo")
	require.NoError(t, err)

	_, err = j.Parse(tok)
	assert.Error(t, err)
}
