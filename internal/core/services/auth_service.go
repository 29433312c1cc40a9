package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/ports"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	msgInvalidEmail     = "Please enter a valid email address"
	msgWeakPassword     = "Password must be at least 8 characters and contain uppercase, lowercase and a number"
	msgPasswordMismatch = "Passwords do not match"
)

type builtinUser struct {
	email    string
	password string
	role     domain.UserRole
	name     string
}

// Demo accounts available before anyone signs up. Earlier entries win on duplicate emails.
var builtinUsers = []builtinUser{
	{email: "admin@loadshare.com", password: "admin123", role: domain.RoleAdmin, name: "Administrator"},
	{email: "mudassir@loadshare.net", password: "admin123", role: domain.RoleAdmin, name: "Mudassir"},
	{email: "manager1@loadshare.com", password: "manager123", role: domain.RoleManager, name: "Manager User"},
	{email: "user1@loadshare.com", password: "user123", role: domain.RoleUser, name: "Regular User"},
}

type AuthOptions struct {
	Delay time.Duration
}

type LoginResult struct {
	Token        string              `json:"token"`
	ExpiresAt    time.Time           `json:"expires_at"`
	User         *domain.SessionUser `json:"user"`
	Capabilities domain.Capabilities `json:"capabilities"`
}

type AuthService struct {
	store    ports.DocumentStore
	sessions *SessionStore
	tokens   ports.TokenService
	hasher   ports.PasswordHasher
	idle     ports.IdleSessions
	logger   ports.LoggerPort
	metrics  ports.MetricsPort
	validate *validator.Validate

	delay    time.Duration
	now      func() time.Time
	builtins []*domain.User

	mu sync.Mutex // guards registeredUsers
}

func NewAuthService(
	store ports.DocumentStore,
	sessions *SessionStore,
	tokens ports.TokenService,
	hasher ports.PasswordHasher,
	idle ports.IdleSessions,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
	validate *validator.Validate,
	opts AuthOptions,
) (*AuthService, error) {
	builtins := make([]*domain.User, 0, len(builtinUsers))
	for i, u := range builtinUsers {
		hash, err := hasher.Hash(u.password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash demo user password: %w", err)
		}
		builtins = append(builtins, &domain.User{
			ID:           fmt.Sprintf("builtin_%d", i+1),
			Email:        u.email,
			PasswordHash: hash,
			Role:         u.role,
			Name:         u.name,
		})
	}
	return &AuthService{
		store:    store,
		sessions: sessions,
		tokens:   tokens,
		hasher:   hasher,
		idle:     idle,
		logger:   logger,
		metrics:  metrics,
		validate: validate,
		delay:    opts.Delay,
		now:      time.Now,
		builtins: builtins,
	}, nil
}

func (s *AuthService) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *AuthService) registeredUsers(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	if _, err := loadDocument(ctx, s.store, keyRegisteredUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// findUser looks an email up in the demo accounts first, then in the self-registered ones.
func (s *AuthService) findUser(ctx context.Context, email string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.builtins {
		if strings.ToLower(u.Email) == email {
			return u, nil
		}
	}
	registered, err := s.registeredUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range registered {
		if strings.ToLower(u.Email) == email {
			return u, nil
		}
	}
	return nil, nil
}

func ValidPassword(p string) bool {
	if len(p) < 8 {
		return false
	}
	var lower, upper, digit bool
	for _, r := range p {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("@$!%*?&", r):
		default:
			return false
		}
	}
	return lower && upper && digit
}

func (s *AuthService) startSession(ctx context.Context, deviceID string, user *domain.User, remember bool) (*LoginResult, error) {
	session := &domain.SessionUser{
		ID:      user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Role:    user.Role,
		LoginAt: s.now().UTC(),
	}
	if err := s.sessions.SetCurrent(ctx, deviceID, session); err != nil {
		return nil, err
	}
	if remember {
		if err := s.sessions.Remember(ctx, deviceID, user.Email); err != nil {
			return nil, err
		}
	}
	token, payload, err := s.tokens.CreateToken(session, deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &LoginResult{
		Token:        token,
		ExpiresAt:    payload.ExpiresAt,
		User:         session,
		Capabilities: session.Role.Capabilities(),
	}, nil
}

// Login checks the credentials and opens a session on the device.
// Unknown emails and wrong passwords fail with different errors.
func (s *AuthService) Login(ctx context.Context, deviceID, email, password string, remember bool) (*LoginResult, error) {
	verr := domain.NewValidationError("Please enter your email and password")
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		verr.Add("email", msgInvalidEmail)
	}
	if password == "" {
		verr.Add("password", msgFieldRequired)
	}
	if !verr.Empty() {
		s.metrics.RecordLogin("invalid")
		return nil, verr
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	user, err := s.findUser(ctx, email)
	if err != nil {
		s.logger.Error("Failed to load users", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	if user == nil {
		s.metrics.RecordLogin("not_registered")
		s.logger.Warn("Login attempt for unknown email", map[string]interface{}{
			"email":     email,
			"device_id": deviceID,
		})
		return nil, domain.ErrUserNotRegistered
	}
	if !s.hasher.Compare(user.PasswordHash, password) {
		s.metrics.RecordLogin("invalid_password")
		s.logger.Warn("Login attempt with wrong password", map[string]interface{}{
			"email":     user.Email,
			"device_id": deviceID,
		})
		return nil, domain.ErrInvalidCredentials
	}

	result, err := s.startSession(ctx, deviceID, user, remember)
	if err != nil {
		s.logger.Error("Failed to start session", map[string]interface{}{
			"error":     err.Error(),
			"email":     user.Email,
			"device_id": deviceID,
		})
		return nil, err
	}
	s.metrics.RecordLogin("success")
	s.logger.Info("User logged in", map[string]interface{}{
		"email":     user.Email,
		"role":      user.Role,
		"device_id": deviceID,
	})
	return result, nil
}

// Signup registers a new user with the user role and logs them in.
func (s *AuthService) Signup(ctx context.Context, deviceID string, req *domain.SignupRequest) (*LoginResult, error) {
	verr := domain.NewValidationError(msgCorrectFields)
	if err := s.validate.Struct(req); err != nil {
		converted := toValidationError(err, verr.Message)
		if !errors.As(converted, &verr) {
			return nil, fmt.Errorf("validation error: %w", err)
		}
	}
	if strings.TrimSpace(req.Email) != "" && !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		verr.Add("email", msgInvalidEmail)
	}
	if req.Password != "" && !ValidPassword(req.Password) {
		verr.Add("password", msgWeakPassword)
	}
	if req.ConfirmPassword != "" && req.ConfirmPassword != req.Password {
		verr.Add("confirm_password", msgPasswordMismatch)
	}
	if !verr.Empty() {
		return nil, verr
	}
	if !req.AgreeTerms {
		return nil, domain.ErrTermsNotAccepted
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.findUser(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	now := s.now()
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	user := &domain.User{
		ID:           fmt.Sprintf("user_%d", now.UnixMilli()),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		Role:         domain.RoleUser,
		Name:         firstName + " " + lastName,
		FirstName:    firstName,
		LastName:     lastName,
		Company:      strings.TrimSpace(req.Company),
		CreatedAt:    now.UTC(),
	}

	registered, err := s.registeredUsers(ctx)
	if err != nil {
		return nil, err
	}
	registered = append(registered, user)
	if err := saveDocument(ctx, s.store, keyRegisteredUsers, registered); err != nil {
		s.logger.Error("Failed to save registered user", map[string]interface{}{
			"error": err.Error(),
			"email": user.Email,
		})
		return nil, err
	}

	s.logger.Info("User registered", map[string]interface{}{
		"email":   user.Email,
		"user_id": user.ID,
	})
	return s.startSession(ctx, deviceID, user, false)
}

func (s *AuthService) Remembered(ctx context.Context, deviceID string) (domain.RememberedLogin, error) {
	return s.sessions.Remembered(ctx, deviceID)
}

// Logout clears the device's session keys and stops its idle monitors.
func (s *AuthService) Logout(ctx context.Context, deviceID string) error {
	if s.idle != nil {
		s.idle.StopDevice(deviceID)
	}
	if err := s.sessions.Clear(ctx, deviceID); err != nil {
		return err
	}
	s.logger.Info("User logged out", map[string]interface{}{
		"device_id": deviceID,
	})
	return nil
}

func (s *AuthService) CurrentUser(ctx context.Context, deviceID string) (*domain.SessionUser, error) {
	return s.sessions.Current(ctx, deviceID)
}

// Authorize checks that the token still matches the live session of its device.
func (s *AuthService) Authorize(ctx context.Context, payload *domain.TokenPayload) (*domain.SessionUser, error) {
	current, err := s.sessions.Current(ctx, payload.DeviceID)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(current.Email, payload.Email) {
		return nil, fmt.Errorf("device %s: %w", payload.DeviceID, domain.ErrSessionExpired)
	}
	return current, nil
}
