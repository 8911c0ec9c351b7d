package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ricardo-1112/shuiba-order/auth"
	"github.com/Ricardo-1112/shuiba-order/models"
)

func TestTokenRoundTrip(t *testing.T) {
	sess := &models.Session{UserID: "u_1", Email: "a@x.com"}

	token, err := auth.IssueToken(sess, "secret")
	require.NoError(t, err)

	parsed, err := auth.ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, sess, parsed)
}

func TestTokenCarriesAdminFlag(t *testing.T) {
	sess := &models.Session{UserID: "admin", Email: "admin@shuiba.local", IsAdmin: true}

	token, err := auth.IssueToken(sess, "secret")
	require.NoError(t, err)

	parsed, err := auth.ParseToken(token, "secret")
	require.NoError(t, err)
	assert.True(t, parsed.IsAdmin)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := auth.IssueToken(&models.Session{UserID: "u_1", Email: "a@x.com"}, "secret")
	require.NoError(t, err)

	_, err = auth.ParseToken(token, "other")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	_, err := auth.ParseToken("not-a-token", "secret")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
