package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trainboard/internal/model"
)

func testProfile() *model.Profile {
	return &model.Profile{ID: uuid.New(), Email: "admin@example.com", Role: model.RoleAdmin}
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	profile := testProfile()

	token, issued, err := svc.GenerateAccessToken(profile)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.NotEmpty(t, issued.ID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, profile.Email, claims.Email)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.True(t, claims.IsAdmin())
	assert.Equal(t, issued.ID, claims.ID)

	id, err := claims.ProfileID()
	require.NoError(t, err)
	assert.Equal(t, profile.ID, id)
	assert.InDelta(t, time.Hour.Seconds(), svc.Remaining(claims).Seconds(), 5)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	token, _, err := svc.GenerateAccessToken(testProfile())
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewJWTService("other", time.Hour).ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		later := NewJWTService("secret", time.Hour)
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := later.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("other signing method", func(t *testing.T) {
		claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: uuid.NewString()}}
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = svc.ValidateToken(raw)
		assert.Error(t, err)
	})
}

func TestNewJWTService_DefaultTTL(t *testing.T) {
	svc := NewJWTService("secret", 0)
	assert.Equal(t, DefaultAccessTokenExpiry, svc.ttl)
}
