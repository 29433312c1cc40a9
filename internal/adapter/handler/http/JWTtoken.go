package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type JWTTokenService struct {
	secretKey []byte
	duration  time.Duration
	logger    ports.LoggerPort
}

func NewJWTTokenService(secretKey string, duration time.Duration, logger ports.LoggerPort) *JWTTokenService {
	if duration <= 0 {
		duration = 24 * time.Hour
	}
	return &JWTTokenService{
		secretKey: []byte(secretKey),
		duration:  duration,
		logger:    logger,
	}
}

// выдача жвт на устройство
func (j *JWTTokenService) CreateToken(user *domain.SessionUser, deviceID string) (string, *domain.TokenPayload, error) {
	payload := &domain.TokenPayload{
		ID:        uuid.New(),
		DeviceID:  deviceID,
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(j.duration).UTC().Truncate(time.Second),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":        payload.ID.String(),
		"device_id": payload.DeviceID,
		"user_id":   payload.UserID,
		"email":     payload.Email,
		"role":      string(payload.Role),
		"exp":       payload.ExpiresAt.Unix(),
	})

	signed, err := token.SignedString(j.secretKey)
	if err != nil {
		j.logger.Error("Failed to sign jwt", map[string]interface{}{
			"error":  err.Error(),
			"method": "CreateToken",
		})
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, payload, nil
}

// проверка жвт
func (j *JWTTokenService) VerifyToken(token string) (*domain.TokenPayload, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		j.logger.Error("Failed to parse jwt", map[string]interface{}{
			"error":  err.Error(),
			"method": "VerifyToken",
		})
		return nil, err
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		j.logger.Error("Failed claims from token", map[string]interface{}{
			"method": "VerifyToken",
		})
		return nil, errors.New("failed to verify")
	}

	idStr, ok := claims["id"].(string)
	if !ok {
		return nil, errors.New("invalid id convert")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, errors.New("invalid parse id")
	}

	deviceID, ok := claims["device_id"].(string)
	if !ok || deviceID == "" {
		return nil, errors.New("invalid device_id claims")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, errors.New("invalid user_id claims")
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, errors.New("invalid email claims")
	}

	roleClaimed, ok := claims["role"].(string)
	if !ok {
		return nil, errors.New("invalid role")
	}

	role := domain.UserRole(roleClaimed)
	if !role.Valid() {
		j.logger.Warn("Invalid role in token", map[string]interface{}{
			"role":   roleClaimed,
			"method": "VerifyToken",
		})
		return nil, errors.New("invalid role value")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, errors.New("invalid exp claims")
	}

	payload := &domain.TokenPayload{
		ID:        id,
		DeviceID:  deviceID,
		UserID:    userID,
		Email:     email,
		Role:      role,
		ExpiresAt: exp.Time.UTC(),
	}

	return payload, nil
}
