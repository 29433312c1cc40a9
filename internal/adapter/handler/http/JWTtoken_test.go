package http

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
)

func TestJWTTokenService_RoundTrip(t *testing.T) {
	svc := NewJWTTokenService("secret", time.Hour, nopLogger{})
	user := &domain.SessionUser{ID: "builtin_1", Email: "admin@loadshare.com", Role: domain.RoleAdmin}

	token, issued, err := svc.CreateToken(user, "device-1")
	require.NoError(t, err)

	payload, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, issued.ID, payload.ID)
	assert.Equal(t, "device-1", payload.DeviceID)
	assert.Equal(t, domain.RoleAdmin, payload.Role)
	assert.True(t, issued.ExpiresAt.Equal(payload.ExpiresAt))
}

func TestJWTTokenService_Rejects(t *testing.T) {
	svc := NewJWTTokenService("secret", time.Hour, nopLogger{})
	user := &domain.SessionUser{ID: "u1", Email: "user1@loadshare.com", Role: domain.RoleUser}

	token, _, err := svc.CreateToken(user, "device-1")
	require.NoError(t, err)
	_, err = NewJWTTokenService("other", time.Hour, nopLogger{}).VerifyToken(token)
	assert.Error(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":        "5f0c7a3e-3a5e-4d0e-9d55-0d6c1f7f4e11",
		"device_id": "device-1",
		"user_id":   "u1",
		"email":     "user1@loadshare.com",
		"role":      "user",
		"exp":       time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = svc.VerifyToken(signed)
	assert.Error(t, err)

	badRole := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":        "5f0c7a3e-3a5e-4d0e-9d55-0d6c1f7f4e11",
		"device_id": "device-1",
		"user_id":   "u1",
		"email":     "user1@loadshare.com",
		"role":      "root",
		"exp":       time.Now().Add(time.Minute).Unix(),
	})
	signed, err = badRole.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = svc.VerifyToken(signed)
	assert.Error(t, err)
}
