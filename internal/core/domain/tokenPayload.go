package domain

import (
	"time"

	"github.com/google/uuid"
)

type TokenPayload struct {
	ID        uuid.UUID
	DeviceID  string
	UserID    string
	Email     string
	Role      UserRole
	ExpiresAt time.Time
}
