package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/idle"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/ports"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/services"
)

type AuthHandler struct {
	authService *services.AuthService
	idle        *idle.Registry
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

type LoginRequest struct {
	Email      string `json:"email" example:"admin@loadshare.com"`
	Password   string `json:"password" example:"admin123"`
	RememberMe bool   `json:"remember_me" example:"true"`
}

type MeResponse struct {
	User         *domain.SessionUser `json:"user"`
	Capabilities domain.Capabilities `json:"capabilities"`
}

func NewAuthHandler(
	authService *services.AuthService,
	idleRegistry *idle.Registry,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		idle:        idleRegistry,
		logger:      logger,
		metrics:     metrics,
	}
}

// @Summary Вход
// @Description Вход по email и паролю. Выдаёт X-Device-ID, если его нет
// @Tags auth
// @Accept json
// @Produce json
// @Param X-Device-ID header string false "ID устройства"
// @Param request body LoginRequest true "Учётные данные"
// @Success 200 {object} services.LoginResult "Успешный вход"
// @Failure 400 {object} validationErrorResponse "Неверный запрос"
// @Failure 401 {object} errorResponse "Пользователь не найден или неверный пароль"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	deviceID := ensureDeviceID(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in login", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), deviceID, req.Email, req.Password, req.RememberMe)
	if err != nil {
		writeServiceError(c, err, "Login failed")
		return
	}

	h.enterDashboard(deviceID)
	c.JSON(http.StatusOK, result)
}

// @Summary Регистрация
// @Description Регистрация нового пользователя с ролью user и вход
// @Tags auth
// @Accept json
// @Produce json
// @Param X-Device-ID header string false "ID устройства"
// @Param request body domain.SignupRequest true "Данные пользователя"
// @Success 201 {object} services.LoginResult "Пользователь создан"
// @Failure 400 {object} validationErrorResponse "Неверный запрос"
// @Failure 409 {object} errorResponse "Email уже занят"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	deviceID := ensureDeviceID(c)

	var req domain.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in signup", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	result, err := h.authService.Signup(c.Request.Context(), deviceID, &req)
	if err != nil {
		writeServiceError(c, err, "Signup failed")
		return
	}

	h.enterDashboard(deviceID)
	c.JSON(http.StatusCreated, result)
}

// @Summary Запомненный вход
// @Description Состояние "запомнить меня" для страницы входа
// @Tags auth
// @Produce json
// @Param X-Device-ID header string true "ID устройства"
// @Success 200 {object} domain.RememberedLogin
// @Failure 400 {object} errorResponse "Нет X-Device-ID"
// @Router /auth/remembered [get]
func (h *AuthHandler) Remembered(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	deviceID, ok := requestDeviceID(c)
	if !ok {
		return
	}

	remembered, err := h.authService.Remembered(c.Request.Context(), deviceID)
	if err != nil {
		h.logger.Error("Failed to read remembered login", map[string]interface{}{
			"error":     err.Error(),
			"device_id": deviceID,
		})
		writeServiceError(c, err, "Failed to read remembered login")
		return
	}
	c.JSON(http.StatusOK, remembered)
}

// @Summary Выход
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} messageResponse
// @Failure 401 {object} errorResponse "Не авторизован"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), payload.DeviceID); err != nil {
		writeServiceError(c, err, "Logout failed")
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Logged out"})
}

// @Summary Текущий пользователь
// @Description Пользователь устройства и его права
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} MeResponse
// @Failure 401 {object} errorResponse "Не авторизован"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	user, exists := getSessionUser(c)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	c.JSON(http.StatusOK, MeResponse{User: user, Capabilities: user.Role.Capabilities()})
}

// enterDashboard hands the device's idle tracking from the login page to the dashboard.
func (h *AuthHandler) enterDashboard(deviceID string) {
	if h.idle == nil {
		return
	}
	h.idle.Stop(deviceID, idle.ContextLogin)
	h.idle.Start(deviceID, idle.ContextDashboard)
}
