package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/ports"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/services"
)

const maxAttachmentMemory = 50 << 20

type MaintenanceHandler struct {
	maintenanceService *services.MaintenanceService
	mastersService     *services.MastersService
	inventoryService   *services.InventoryService
	logger             ports.LoggerPort
	metrics            ports.MetricsPort
}

// RecordResponse adds the values derived on read to a stored record.
type RecordResponse struct {
	*domain.ServiceRecord
	OverallStatus domain.PartStatus `json:"overall_status"`
	Ageing        domain.Ageing     `json:"ageing"`
	Overdue       domain.Overdue    `json:"overdue"`
}

type RecordListResponse struct {
	Records []RecordResponse          `json:"records"`
	Summary domain.MaintenanceSummary `json:"summary"`
	Count   int                       `json:"count"`
}

type SubmitResponse struct {
	Message string                  `json:"message"`
	Record  RecordResponse          `json:"record"`
	Form    *domain.MaintenanceForm `json:"form"`
}

type ValidateResponse struct {
	Valid bool `json:"valid"`
}

type UpdatePartStatusRequest struct {
	Status domain.PartStatus `json:"status" example:"Completed"`
}

type AttachmentsResponse struct {
	URLs []string `json:"urls"`
}

func NewMaintenanceHandler(
	maintenanceService *services.MaintenanceService,
	mastersService *services.MastersService,
	inventoryService *services.InventoryService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
		mastersService:     mastersService,
		inventoryService:   inventoryService,
		logger:             logger,
		metrics:            metrics,
	}
}

func newRecordResponse(record *domain.ServiceRecord, now time.Time) RecordResponse {
	return RecordResponse{
		ServiceRecord: record,
		OverallStatus: record.OverallStatus(),
		Ageing:        record.Ageing(),
		Overdue:       record.Overdue(now),
	}
}

func (h *MaintenanceHandler) bindForm(c *gin.Context) (*domain.MaintenanceForm, bool) {
	var form domain.MaintenanceForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Error("Failed JSON parse in maintenance form", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return nil, false
	}
	return &form, true
}

// @Summary Новая форма обслуживания
// @Description Форма со значениями по умолчанию и новым service id
// @Tags maintenance
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.MaintenanceForm
// @Router /maintenance/form [get]
func (h *MaintenanceHandler) NewForm(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	c.JSON(http.StatusOK, h.maintenanceService.NewForm())
}

// @Summary Добавить строку запчасти
// @Tags maintenance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body domain.MaintenanceForm true "Форма"
// @Success 200 {object} domain.MaintenanceForm
// @Router /maintenance/form/parts [post]
func (h *MaintenanceHandler) AddPartRow(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	form, ok := h.bindForm(c)
	if !ok {
		return
	}
	services.AddPartRow(form)
	c.JSON(http.StatusOK, form)
}

// @Summary Удалить строку запчасти
// @Description Последняя строка заменяется пустой
// @Tags maintenance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param index path int true "Номер строки"
// @Param request body domain.MaintenanceForm true "Форма"
// @Success 200 {object} domain.MaintenanceForm
// @Failure 404 {object} errorResponse "Строка не найдена"
// @Router /maintenance/form/parts/{index}/remove [post]
func (h *MaintenanceHandler) RemovePartRow(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid part index")
		return
	}
	form, ok := h.bindForm(c)
	if !ok {
		return
	}
	if err := services.RemovePartRow(form, index); err != nil {
		writeServiceError(c, err, "Failed to remove part row")
		return
	}
	c.JSON(http.StatusOK, form)
}

// @Summary Вычисляемые поля формы
// @Description Итоговая стоимость, общий статус, срок и просрочка
// @Tags maintenance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body domain.MaintenanceForm true "Форма"
// @Success 200 {object} domain.FormDerivation
// @Router /maintenance/form/derive [post]
func (h *MaintenanceHandler) Derive(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	form, ok := h.bindForm(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.maintenanceService.Derive(form))
}

// @Summary Проверка формы
// @Tags maintenance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body domain.MaintenanceForm true "Форма"
// @Success 200 {object} ValidateResponse
// @Failure 400 {object} validationErrorResponse "Ошибки по полям"
// @Router /maintenance/form/validate [post]
func (h *MaintenanceHandler) Validate(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	form, ok := h.bindForm(c)
	if !ok {
		return
	}
	if err := h.maintenanceService.Validate(form); err != nil {
		writeServiceError(c, err, "Validation failed")
		return
	}
	c.JSON(http.StatusOK, ValidateResponse{Valid: true})
}

// @Summary Проверка номера телефона
// @Tags maintenance
// @Security BearerAuth
// @Produce json
// @Param number query string true "Номер"
// @Success 200 {object} services.ContactCheck
// @Router /maintenance/form/contact [get]
func (h *MaintenanceHandler) CheckContact(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	c.JSON(http.StatusOK, services.CheckContact(c.Query("number")))
}

// @Summary Города
// @Tags maintenance
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.CityOption
// @Router /maintenance/cities [get]
func (h *MaintenanceHandler) Cities(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	cities, err := h.mastersService.CityOptions(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "Failed to load cities")
		return
	}
	c.JSON(http.StatusOK, cities)
}

// @Summary Менеджеры города
// @Tags maintenance
// @Security BearerAuth
// @Produce json
// @Param city path string true "Код города" example:"BLR"
// @Success 200 {array} string
// @Failure 404 {object} errorResponse "Город не найден"
// @Router /maintenance/cities/{city}/managers [get]
func (h *MaintenanceHandler) Managers(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	managers, err := h.mastersService.Managers(c.Request.Context(), c.Param("city"))
	if err != nil {
		writeServiceError(c, err, "Failed to load city managers")
		return
	}
	c.JSON(http.StatusOK, managers)
}

// @Summary Байки города
// @Description Для выбора регистрационного номера, по возрастанию номера
// @Tags maintenance
// @Security BearerAuth
// @Produce json
// @Param city path string true "Код города" example:"BLR"
// @Success 200 {array} domain.Vehicle
// @Router /maintenance/cities/{city}/bikes [get]
func (h *MaintenanceHandler) CityBikes(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikes, err := h.inventoryService.BikesForCity(c.Request.Context(), c.Param("city"))
	if err != nil {
		writeServiceError(c, err, "Failed to load bikes")
		return
	}
	c.JSON(http.StatusOK, bikes)
}

// @Summary Байк по регистрационному номеру
// @Tags maintenance
// @Security BearerAuth
// @Produce json
// @Param reg path string true "Регистрационный номер" example:"KA01AQ6937"
// @Success 200 {object} domain.Vehicle
// @Failure 404 {object} errorResponse "Байк не найден"
// @Router /maintenance/bikes/{reg} [get]
func (h *MaintenanceHandler) BikeByReg(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bike, err := h.inventoryService.LookupByReg(c.Request.Context(), c.Param("reg"))
	if err != nil {
		writeServiceError(c, err, "Failed to load bike")
		return
	}
	c.JSON(http.StatusOK, bike)
}

// @Summary Загрузить вложения
// @Tags maintenance
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Фото или документы"
// @Success 200 {object} AttachmentsResponse
// @Failure 400 {object} errorResponse "Нет файлов"
// @Router /maintenance/attachments [post]
func (h *MaintenanceHandler) UploadAttachments(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if err := c.Request.ParseMultipartForm(maxAttachmentMemory); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "bad multipart form")
		return
	}
	files := c.Request.MultipartForm.File["files"]
	if len(files) == 0 {
		newErrorResponse(c, http.StatusBadRequest, "missing files field")
		return
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		file, err := fh.Open()
		if err != nil {
			newErrorResponse(c, http.StatusBadRequest, "failed to read file")
			return
		}
		url, err := h.maintenanceService.UploadAttachment(c.Request.Context(), fh.Filename, fh.Header.Get("Content-Type"), file)
		file.Close()
		if err != nil {
			writeServiceError(c, err, "Failed to store attachment")
			return
		}
		urls = append(urls, url)
	}
	c.JSON(http.StatusOK, AttachmentsResponse{URLs: urls})
}

// @Summary Отправить форму обслуживания
// @Description Проверка, задержка обработки и сохранение записи
// @Tags maintenance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body domain.MaintenanceForm true "Форма"
// @Success 201 {object} SubmitResponse "Запись создана"
// @Failure 400 {object} validationErrorResponse "Ошибки по полям"
// @Failure 409 {object} errorResponse "Запись уже существует"
// @Failure 500 {object} errorResponse "Не удалось отправить"
// @Router /maintenance/records [post]
func (h *MaintenanceHandler) Submit(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	form, ok := h.bindForm(c)
	if !ok {
		return
	}

	record, fresh, err := h.maintenanceService.Submit(c.Request.Context(), form)
	if err != nil {
		writeServiceError(c, err, domain.ErrSubmitFailed.Error())
		return
	}

	c.JSON(http.StatusCreated, SubmitResponse{
		Message: "Bike maintenance record submitted successfully!",
		Record:  newRecordResponse(record, h.maintenanceService.Now()),
		Form:    fresh,
	})
}

// @Summary Записи обслуживания
// @Description Записи, новые первыми, и сводка
// @Tags maintenance
// @Security BearerAuth
// @Produce json
// @Success 200 {object} RecordListResponse
// @Router /maintenance/records [get]
func (h *MaintenanceHandler) List(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	records, err := h.maintenanceService.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "Failed to load records")
		return
	}

	now := h.maintenanceService.Now()
	out := make([]RecordResponse, len(records))
	for i, r := range records {
		out[i] = newRecordResponse(r, now)
	}
	c.JSON(http.StatusOK, RecordListResponse{
		Records: out,
		Summary: domain.Summarize(records),
		Count:   len(out),
	})
}

// @Summary Запись обслуживания
// @Tags maintenance
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID записи или service id"
// @Success 200 {object} RecordResponse
// @Failure 404 {object} errorResponse "Запись не найдена"
// @Router /maintenance/records/{id} [get]
func (h *MaintenanceHandler) Get(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	record, err := h.maintenanceService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err, "Failed to load record")
		return
	}
	c.JSON(http.StatusOK, newRecordResponse(record, h.maintenanceService.Now()))
}

// @Summary Статус запчасти
// @Tags maintenance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID записи"
// @Param index path int true "Номер запчасти"
// @Param request body UpdatePartStatusRequest true "Статус"
// @Success 200 {object} RecordResponse
// @Failure 400 {object} validationErrorResponse "Неверный статус"
// @Failure 403 {object} errorResponse "Доступ запрещен"
// @Failure 404 {object} errorResponse "Запись не найдена"
// @Router /maintenance/records/{id}/parts/{index} [patch]
func (h *MaintenanceHandler) UpdatePartStatus(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid part index")
		return
	}
	var req UpdatePartStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	record, err := h.maintenanceService.UpdatePartStatus(c.Request.Context(), c.Param("id"), index, req.Status)
	if err != nil {
		writeServiceError(c, err, "Failed to update part status")
		return
	}
	c.JSON(http.StatusOK, newRecordResponse(record, h.maintenanceService.Now()))
}

// @Summary Удалить запись
// @Tags maintenance
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID записи"
// @Success 200 {object} messageResponse
// @Failure 403 {object} errorResponse "Доступ запрещен"
// @Failure 404 {object} errorResponse "Запись не найдена"
// @Router /maintenance/records/{id} [delete]
func (h *MaintenanceHandler) Delete(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if err := h.maintenanceService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err, "Delete failed")
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Record deleted successfully"})
}

// @Summary Удалить все записи
// @Tags maintenance
// @Security BearerAuth
// @Produce json
// @Success 200 {object} messageResponse
// @Failure 403 {object} errorResponse "Доступ запрещен"
// @Router /maintenance/records [delete]
func (h *MaintenanceHandler) Clear(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if err := h.maintenanceService.Clear(c.Request.Context()); err != nil {
		writeServiceError(c, err, "Clear failed")
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "All records cleared"})
}

// @Summary Сохранить черновик
// @Tags maintenance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body domain.MaintenanceForm true "Форма"
// @Success 201 {object} domain.Draft
// @Router /maintenance/drafts [post]
func (h *MaintenanceHandler) SaveDraft(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	form, ok := h.bindForm(c)
	if !ok {
		return
	}
	draft, err := h.maintenanceService.SaveDraft(c.Request.Context(), form)
	if err != nil {
		writeServiceError(c, err, "Failed to save draft")
		return
	}
	c.JSON(http.StatusCreated, draft)
}

// @Summary Черновики
// @Tags maintenance
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Draft
// @Router /maintenance/drafts [get]
func (h *MaintenanceHandler) ListDrafts(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	drafts, err := h.maintenanceService.ListDrafts(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "Failed to load drafts")
		return
	}
	c.JSON(http.StatusOK, drafts)
}
