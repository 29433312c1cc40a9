package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/idle"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/ports"
)

// SessionHandler exposes the idle monitors to the page scripts that feed them activity.
type SessionHandler struct {
	registry *idle.Registry
	logger   ports.LoggerPort
	metrics  ports.MetricsPort
}

type ActivityRequest struct {
	Context string `json:"context" example:"dashboard"`
	Event   string `json:"event" example:"mousemove"`
}

type IdleContextRequest struct {
	Context string `json:"context" example:"dashboard"`
}

func NewSessionHandler(registry *idle.Registry, logger ports.LoggerPort, metrics ports.MetricsPort) *SessionHandler {
	return &SessionHandler{
		registry: registry,
		logger:   logger,
		metrics:  metrics,
	}
}

func (h *SessionHandler) idleContext(c *gin.Context, raw string) (idle.Context, bool) {
	ctx, err := idle.ParseContext(raw)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return "", false
	}
	return ctx, true
}

// @Summary Состояние простоя
// @Description Снимок монитора простоя. Запускает монитор, если его нет
// @Tags session
// @Produce json
// @Param X-Device-ID header string true "ID устройства"
// @Param context query string false "login или dashboard"
// @Success 200 {object} idle.Snapshot
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Router /session/idle [get]
func (h *SessionHandler) Idle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	deviceID, ok := requestDeviceID(c)
	if !ok {
		return
	}
	idleCtx, ok := h.idleContext(c, c.Query("context"))
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.registry.Ensure(deviceID, idleCtx).Snapshot())
}

// @Summary Активность пользователя
// @Description Событие активности сбрасывает таймер, пока монитор в состоянии active
// @Tags session
// @Accept json
// @Produce json
// @Param X-Device-ID header string true "ID устройства"
// @Param request body ActivityRequest true "Событие"
// @Success 200 {object} idle.Snapshot
// @Failure 400 {object} errorResponse "Неизвестное событие"
// @Router /session/activity [post]
func (h *SessionHandler) Activity(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	deviceID, ok := requestDeviceID(c)
	if !ok {
		return
	}

	var req ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}
	idleCtx, ok := h.idleContext(c, req.Context)
	if !ok {
		return
	}

	monitor := h.registry.Ensure(deviceID, idleCtx)
	if err := monitor.Activity(req.Event); err != nil {
		writeServiceError(c, err, "Failed to record activity")
		return
	}
	c.JSON(http.StatusOK, monitor.Snapshot())
}

// @Summary Продлить сессию
// @Description Кнопка "остаться в системе" во время предупреждения
// @Tags session
// @Accept json
// @Produce json
// @Param X-Device-ID header string true "ID устройства"
// @Param request body IdleContextRequest false "Контекст"
// @Success 200 {object} idle.Snapshot
// @Failure 401 {object} errorResponse "Сессия истекла"
// @Failure 404 {object} errorResponse "Монитор не найден"
// @Router /session/extend [post]
func (h *SessionHandler) Extend(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	deviceID, ok := requestDeviceID(c)
	if !ok {
		return
	}
	var req IdleContextRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	idleCtx, ok := h.idleContext(c, req.Context)
	if !ok {
		return
	}

	monitor, found := h.registry.Get(deviceID, idleCtx)
	if !found {
		writeServiceError(c, domain.ErrNotFound, "Failed to extend session")
		return
	}
	if err := monitor.Extend(); err != nil {
		writeServiceError(c, err, "Failed to extend session")
		return
	}
	c.JSON(http.StatusOK, monitor.Snapshot())
}

// @Summary Выйти сейчас
// @Description Немедленное завершение сессии из окна предупреждения
// @Tags session
// @Accept json
// @Produce json
// @Param X-Device-ID header string true "ID устройства"
// @Param request body IdleContextRequest false "Контекст"
// @Success 200 {object} idle.Snapshot
// @Failure 404 {object} errorResponse "Монитор не найден"
// @Router /session/logout-now [post]
func (h *SessionHandler) LogoutNow(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	deviceID, ok := requestDeviceID(c)
	if !ok {
		return
	}
	var req IdleContextRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	idleCtx, ok := h.idleContext(c, req.Context)
	if !ok {
		return
	}

	monitor, found := h.registry.Get(deviceID, idleCtx)
	if !found {
		writeServiceError(c, domain.ErrNotFound, "Failed to log out")
		return
	}
	monitor.LogoutNow()
	h.logger.Info("Session ended from idle warning", map[string]interface{}{
		"device_id": deviceID,
		"context":   string(idleCtx),
	})
	c.JSON(http.StatusOK, monitor.Snapshot())
}
