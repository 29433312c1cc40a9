package ports

import (
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
)

type TokenService interface {
	CreateToken(user *domain.SessionUser, deviceID string) (string, *domain.TokenPayload, error)
	VerifyToken(token string) (*domain.TokenPayload, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// IdleSessions stops the idle monitors owned by a device.
type IdleSessions interface {
	StopDevice(deviceID string)
}
