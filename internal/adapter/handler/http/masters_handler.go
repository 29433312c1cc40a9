package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/ports"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/services"
)

type MastersHandler struct {
	mastersService *services.MastersService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

type MastersResponse struct {
	*domain.Masters
	Options domain.FormOptions `json:"options"`
}

type AddCityRequest struct {
	Name string `json:"name" example:"PUN"`
}

type AddCityManagerRequest struct {
	City string `json:"city" example:"BLR"`
	Name string `json:"name" example:"Ravi Kumar"`
}

type AddPartRequest struct {
	Name   string `json:"name" example:"Brake Pad"`
	Number string `json:"number" example:"BP-001"`
}

func NewMastersHandler(mastersService *services.MastersService, logger ports.LoggerPort, metrics ports.MetricsPort) *MastersHandler {
	return &MastersHandler{
		mastersService: mastersService,
		logger:         logger,
		metrics:        metrics,
	}
}

// @Summary Справочники
// @Description Города, менеджеры, каталог запчастей и списки значений формы
// @Tags masters
// @Security BearerAuth
// @Produce json
// @Success 200 {object} MastersResponse
// @Router /masters [get]
func (h *MastersHandler) Get(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	masters, err := h.mastersService.Get(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "Failed to load masters")
		return
	}
	c.JSON(http.StatusOK, MastersResponse{Masters: masters, Options: domain.DefaultFormOptions()})
}

// @Summary Добавить город
// @Tags masters
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body AddCityRequest true "Город"
// @Success 201 {array} string
// @Failure 400 {object} validationErrorResponse "Неверный запрос"
// @Failure 409 {object} errorResponse "Город уже есть"
// @Router /masters/cities [post]
func (h *MastersHandler) AddCity(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req AddCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}
	cities, err := h.mastersService.AddCity(c.Request.Context(), req.Name)
	if err != nil {
		writeServiceError(c, err, "Failed to add city")
		return
	}
	c.JSON(http.StatusCreated, cities)
}

// @Summary Добавить менеджера города
// @Tags masters
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body AddCityManagerRequest true "Менеджер"
// @Success 201 {array} string
// @Failure 400 {object} validationErrorResponse "Неверный запрос"
// @Failure 409 {object} errorResponse "Менеджер уже есть"
// @Router /masters/city-managers [post]
func (h *MastersHandler) AddCityManager(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req AddCityManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}
	managers, err := h.mastersService.AddCityManager(c.Request.Context(), req.City, req.Name)
	if err != nil {
		writeServiceError(c, err, "Failed to add city manager")
		return
	}
	c.JSON(http.StatusCreated, managers)
}

// @Summary Добавить запчасть в каталог
// @Tags masters
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body AddPartRequest true "Запчасть"
// @Success 201 {array} domain.CatalogPart
// @Failure 400 {object} validationErrorResponse "Неверный запрос"
// @Failure 409 {object} errorResponse "Название или номер заняты"
// @Router /masters/parts [post]
func (h *MastersHandler) AddPart(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req AddPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}
	parts, err := h.mastersService.AddPart(c.Request.Context(), req.Name, req.Number)
	if err != nil {
		writeServiceError(c, err, "Failed to add part")
		return
	}
	c.JSON(http.StatusCreated, parts)
}
