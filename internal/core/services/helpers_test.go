package services

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

// MockMetrics records the domain counters; HTTP metrics are ignored.
type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) RecordMetrics(*gin.Context, time.Time) {}
func (m *MockMetrics) RecordSubmission(outcome string)     { m.Called(outcome) }
func (m *MockMetrics) RecordExport(kind string)            { m.Called(kind) }
func (m *MockMetrics) RecordLogin(outcome string)          { m.Called(outcome) }
func (m *MockMetrics) RecordIdleTransition(state string)   { m.Called(state) }

// newMockMetrics accepts every call. Tests assert on the recorded calls afterwards.
func newMockMetrics() *MockMetrics {
	m := &MockMetrics{}
	m.On("RecordSubmission", mock.Anything).Maybe()
	m.On("RecordExport", mock.Anything).Maybe()
	m.On("RecordLogin", mock.Anything).Maybe()
	m.On("RecordIdleTransition", mock.Anything).Maybe()
	return m
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event string, payload interface{}) error {
	args := m.Called(ctx, event, payload)
	return args.Error(0)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) CreateToken(user *domain.SessionUser, deviceID string) (string, *domain.TokenPayload, error) {
	args := m.Called(user, deviceID)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.TokenPayload), args.Error(2)
}

func (m *MockTokenService) VerifyToken(token string) (*domain.TokenPayload, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenPayload), args.Error(1)
}

// failingStore fails every call with err.
type failingStore struct {
	err error
}

func (s failingStore) Get(context.Context, string) ([]byte, error) { return nil, s.err }
func (s failingStore) Set(context.Context, string, []byte) error   { return s.err }
func (s failingStore) Delete(context.Context, ...string) error     { return s.err }

var errStoreDown = errors.New("store unavailable")

type recordingIdle struct {
	stopped []string
}

func (r *recordingIdle) StopDevice(deviceID string) {
	r.stopped = append(r.stopped, deviceID)
}
