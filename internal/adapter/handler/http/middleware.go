package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/ports"
)

const (
	authorizationHeaderKey  = "Authorization"
	authorizationTypeBearer = "bearer"
	authorizationPayloadKey = "authorization_payload"
	sessionUserKey          = "session_user"

	DeviceIDHeader = "X-Device-ID"
)

// SessionAuthorizer checks a verified token against the device's live session.
type SessionAuthorizer interface {
	Authorize(ctx context.Context, payload *domain.TokenPayload) (*domain.SessionUser, error)
}

type errorResponse struct {
	Error string `json:"error" example:"Unauthorized"`
}

type validationErrorResponse struct {
	Error  string            `json:"error" example:"Please fill in all required fields."`
	Fields map[string]string `json:"fields"`
}

type noticeResponse struct {
	Notice string `json:"notice" example:"No bike maintenance records available to export!"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponse{Error: message})
}

func getAuthPayload(c *gin.Context, key string) (*domain.TokenPayload, bool) {
	value, exists := c.Get(key)
	if !exists {
		return nil, false
	}
	payload, ok := value.(*domain.TokenPayload)
	return payload, ok && payload != nil
}

func getSessionUser(c *gin.Context) (*domain.SessionUser, bool) {
	value, exists := c.Get(sessionUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*domain.SessionUser)
	return user, ok && user != nil
}

// AuthMiddleware accepts a bearer token whose device still has that user logged in.
func AuthMiddleware(tokenService ports.TokenService, sessions SessionAuthorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authorizationHeaderKey)
		if header == "" {
			newErrorResponse(c, http.StatusUnauthorized, "Authorization header is not provided")
			return
		}

		fields := strings.Fields(header)
		if len(fields) != 2 || strings.ToLower(fields[0]) != authorizationTypeBearer {
			newErrorResponse(c, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		payload, err := tokenService.VerifyToken(fields[1])
		if err != nil {
			newErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		// токен привязан к устройству
		if device := c.GetHeader(DeviceIDHeader); device != "" && device != payload.DeviceID {
			newErrorResponse(c, http.StatusUnauthorized, "Token was issued to another device")
			return
		}

		user, err := sessions.Authorize(c.Request.Context(), payload)
		if err != nil {
			newErrorResponse(c, http.StatusUnauthorized, "Session expired. Please log in again.")
			return
		}

		c.Set(authorizationPayloadKey, payload)
		c.Set(sessionUserKey, user)
		c.Next()
	}
}

// RequireCapability runs after AuthMiddleware.
func RequireCapability(capability domain.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, exists := getAuthPayload(c, authorizationPayloadKey)
		if !exists {
			newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if !payload.Role.Can(capability) {
			newErrorResponse(c, http.StatusForbidden, "Access denied")
			return
		}
		c.Next()
	}
}

// requestDeviceID reads the device header and fails the request when it is missing.
func requestDeviceID(c *gin.Context) (string, bool) {
	if payload, ok := getAuthPayload(c, authorizationPayloadKey); ok {
		return payload.DeviceID, true
	}
	device := strings.TrimSpace(c.GetHeader(DeviceIDHeader))
	if device == "" {
		newErrorResponse(c, http.StatusBadRequest, "X-Device-ID header is required")
		return "", false
	}
	return device, true
}

// ensureDeviceID issues a device id to clients that do not have one yet.
func ensureDeviceID(c *gin.Context) string {
	device := strings.TrimSpace(c.GetHeader(DeviceIDHeader))
	if device == "" {
		device = uuid.New().String()
	}
	c.Header(DeviceIDHeader, device)
	return device
}

// bindOptionalJSON accepts an empty body and leaves v zero.
func bindOptionalJSON(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil && !errors.Is(err, io.EOF) {
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return false
	}
	return true
}

// writeServiceError maps service errors onto HTTP statuses. fallback is the
// message for anything unexpected.
func writeServiceError(c *gin.Context, err error, fallback string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.AbortWithStatusJSON(http.StatusBadRequest, validationErrorResponse{Error: verr.Message, Fields: verr.Fields})
	case errors.Is(err, domain.ErrNoExportData):
		c.JSON(http.StatusOK, noticeResponse{Notice: domain.ErrNoExportData.Error()})
	case errors.Is(err, domain.ErrNoVehiclesForCity):
		c.JSON(http.StatusOK, noticeResponse{Notice: domain.ErrNoVehiclesForCity.Error()})
	case errors.Is(err, domain.ErrUserNotRegistered):
		newErrorResponse(c, http.StatusUnauthorized, domain.ErrUserNotRegistered.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		newErrorResponse(c, http.StatusUnauthorized, domain.ErrInvalidCredentials.Error())
	case errors.Is(err, domain.ErrSessionExpired):
		newErrorResponse(c, http.StatusUnauthorized, "Session expired. Please log in again.")
	case errors.Is(err, domain.ErrForbidden):
		newErrorResponse(c, http.StatusForbidden, "Access denied")
	case errors.Is(err, domain.ErrNotFound):
		newErrorResponse(c, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrEmailTaken):
		newErrorResponse(c, http.StatusConflict, domain.ErrEmailTaken.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		newErrorResponse(c, http.StatusConflict, "Already exists")
	case errors.Is(err, domain.ErrTermsNotAccepted):
		newErrorResponse(c, http.StatusBadRequest, domain.ErrTermsNotAccepted.Error())
	case errors.Is(err, domain.ErrUnknownActivity), errors.Is(err, domain.ErrInvalidSortColumn):
		newErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrSubmitFailed):
		newErrorResponse(c, http.StatusInternalServerError, domain.ErrSubmitFailed.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		newErrorResponse(c, http.StatusServiceUnavailable, "Request cancelled")
	default:
		newErrorResponse(c, http.StatusInternalServerError, fallback)
	}
}
