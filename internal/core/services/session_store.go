package services

import (
	"context"
	"fmt"

	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/ports"
)

// SessionStore keeps the per-device session documents: the current user
// and the remember-me pair.
type SessionStore struct {
	store  ports.DocumentStore
	logger ports.LoggerPort
}

func NewSessionStore(store ports.DocumentStore, logger ports.LoggerPort) *SessionStore {
	return &SessionStore{store: store, logger: logger}
}

// SessionKeys lists the keys removed on logout and idle expiry.
func SessionKeys(deviceID string) []string {
	return []string{
		deviceKey(deviceID, keyCurrentUser),
		deviceKey(deviceID, keyRememberMe),
		deviceKey(deviceID, keyUserEmail),
	}
}

func (s *SessionStore) Current(ctx context.Context, deviceID string) (*domain.SessionUser, error) {
	var user domain.SessionUser
	found, err := loadDocument(ctx, s.store, deviceKey(deviceID, keyCurrentUser), &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("device %s: %w", deviceID, domain.ErrSessionExpired)
	}
	return &user, nil
}

func (s *SessionStore) SetCurrent(ctx context.Context, deviceID string, user *domain.SessionUser) error {
	return saveDocument(ctx, s.store, deviceKey(deviceID, keyCurrentUser), user)
}

func (s *SessionStore) Remember(ctx context.Context, deviceID, email string) error {
	if err := saveDocument(ctx, s.store, deviceKey(deviceID, keyRememberMe), "true"); err != nil {
		return err
	}
	return saveDocument(ctx, s.store, deviceKey(deviceID, keyUserEmail), email)
}

func (s *SessionStore) Remembered(ctx context.Context, deviceID string) (domain.RememberedLogin, error) {
	var flag, email string
	if _, err := loadDocument(ctx, s.store, deviceKey(deviceID, keyRememberMe), &flag); err != nil {
		return domain.RememberedLogin{}, err
	}
	if flag != "true" {
		return domain.RememberedLogin{}, nil
	}
	if _, err := loadDocument(ctx, s.store, deviceKey(deviceID, keyUserEmail), &email); err != nil {
		return domain.RememberedLogin{}, err
	}
	return domain.RememberedLogin{RememberMe: true, Email: email}, nil
}

// Clear removes every session key of the device.
func (s *SessionStore) Clear(ctx context.Context, deviceID string) error {
	if err := s.store.Delete(ctx, SessionKeys(deviceID)...); err != nil {
		s.logger.Error("Failed to clear session", map[string]interface{}{
			"error":     err.Error(),
			"device_id": deviceID,
		})
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
