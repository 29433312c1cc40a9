package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/ports"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/services"
)

type InventoryHandler struct {
	inventoryService *services.InventoryService
	logger           ports.LoggerPort
	metrics          ports.MetricsPort
}

type InventoryQuery struct {
	domain.VehicleFilter
	Sort string `form:"sort" example:"received_date"`
	Dir  string `form:"dir" example:"desc"`
	Page int    `form:"page" example:"1"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" example:"In Service"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
}

func NewInventoryHandler(
	inventoryService *services.InventoryService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
		logger:           logger,
		metrics:          metrics,
	}
}

func (q InventoryQuery) sortState() (domain.SortState, error) {
	dir := domain.SortDirection(strings.ToLower(q.Dir))
	switch dir {
	case "":
		dir = domain.SortAsc
	case domain.SortAsc, domain.SortDesc:
	default:
		return domain.SortState{}, fmt.Errorf("invalid sort direction %q", q.Dir)
	}
	return domain.SortState{Column: domain.SortColumn(q.Sort), Direction: dir}, nil
}

func (h *InventoryHandler) bindQuery(c *gin.Context) (InventoryQuery, domain.SortState, bool) {
	var q InventoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return q, domain.SortState{}, false
	}
	sortState, err := q.sortState()
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return q, domain.SortState{}, false
	}
	return q, sortState, true
}

// @Summary Список байков
// @Description Фильтр, сортировка и страница инвентаря (20 на страницу)
// @Tags inventory
// @Security BearerAuth
// @Produce json
// @Param model query string false "Модель"
// @Param city query string false "Город"
// @Param batch query string false "Партия"
// @Param status query string false "Статус"
// @Param q query string false "Поиск"
// @Param sort query string false "Колонка сортировки"
// @Param dir query string false "asc или desc"
// @Param page query int false "Страница"
// @Success 200 {object} domain.VehiclePage
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Failure 401 {object} errorResponse "Не авторизован"
// @Router /inventory [get]
func (h *InventoryHandler) List(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	q, sortState, ok := h.bindQuery(c)
	if !ok {
		return
	}

	page, err := h.inventoryService.Query(c.Request.Context(), domain.InventoryView{
		Filter: q.VehicleFilter,
		Sort:   sortState,
		Page:   q.Page,
	})
	if err != nil {
		writeServiceError(c, err, "Failed to load inventory")
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Значения фильтров
// @Tags inventory
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.FilterOptions
// @Failure 401 {object} errorResponse "Не авторизован"
// @Router /inventory/options [get]
func (h *InventoryHandler) Options(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	options, err := h.inventoryService.FilterOptions(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "Failed to load filter options")
		return
	}
	c.JSON(http.StatusOK, options)
}

// @Summary Статистика инвентаря
// @Tags inventory
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.InventoryStats
// @Failure 401 {object} errorResponse "Не авторизован"
// @Router /inventory/stats [get]
func (h *InventoryHandler) Stats(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	stats, err := h.inventoryService.Statistics(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "Failed to load statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Текущий вид инвентаря
// @Description Фильтр, сортировка и страница, сохранённые для устройства
// @Tags inventory
// @Security BearerAuth
// @Produce json
// @Success 200 {object} services.ViewResult
// @Failure 401 {object} errorResponse "Не авторизован"
// @Router /inventory/view [get]
func (h *InventoryHandler) View(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	deviceID, ok := requestDeviceID(c)
	if !ok {
		return
	}
	result, err := h.inventoryService.View(c.Request.Context(), deviceID)
	if err != nil {
		writeServiceError(c, err, "Failed to load inventory view")
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Установить фильтр
// @Description Заменяет фильтр и возвращает на первую страницу
// @Tags inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body domain.VehicleFilter true "Фильтр"
// @Success 200 {object} services.ViewResult
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Failure 401 {object} errorResponse "Не авторизован"
// @Router /inventory/view/filter [put]
func (h *InventoryHandler) SetFilter(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	deviceID, ok := requestDeviceID(c)
	if !ok {
		return
	}
	var filter domain.VehicleFilter
	if !bindOptionalJSON(c, &filter) {
		return
	}

	result, err := h.inventoryService.SetFilter(c.Request.Context(), deviceID, filter)
	if err != nil {
		writeServiceError(c, err, "Failed to apply filter")
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Сортировка по колонке
// @Description Повторный выбор той же колонки меняет направление
// @Tags inventory
// @Security BearerAuth
// @Produce json
// @Param column path string true "Колонка" example:"received_date"
// @Success 200 {object} services.ViewResult
// @Failure 400 {object} errorResponse "Неизвестная колонка"
// @Failure 401 {object} errorResponse "Не авторизован"
// @Router /inventory/view/sort/{column} [post]
func (h *InventoryHandler) ToggleSort(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	deviceID, ok := requestDeviceID(c)
	if !ok {
		return
	}
	result, err := h.inventoryService.ToggleSort(c.Request.Context(), deviceID, domain.SortColumn(c.Param("column")))
	if err != nil {
		writeServiceError(c, err, "Failed to sort inventory")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *InventoryHandler) turn(c *gin.Context, delta int) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	deviceID, ok := requestDeviceID(c)
	if !ok {
		return
	}
	result, err := h.inventoryService.Turn(c.Request.Context(), deviceID, delta)
	if err != nil {
		writeServiceError(c, err, "Failed to change page")
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Следующая страница
// @Tags inventory
// @Security BearerAuth
// @Produce json
// @Success 200 {object} services.ViewResult
// @Router /inventory/view/next [post]
func (h *InventoryHandler) NextPage(c *gin.Context) {
	h.turn(c, 1)
}

// @Summary Предыдущая страница
// @Tags inventory
// @Security BearerAuth
// @Produce json
// @Success 200 {object} services.ViewResult
// @Router /inventory/view/prev [post]
func (h *InventoryHandler) PrevPage(c *gin.Context) {
	h.turn(c, -1)
}

// @Summary Экспорт инвентаря
// @Description CSV с текущим фильтром и сортировкой
// @Tags inventory
// @Security BearerAuth
// @Produce text/csv
// @Param model query string false "Модель"
// @Param city query string false "Город"
// @Param batch query string false "Партия"
// @Param status query string false "Статус"
// @Param q query string false "Поиск"
// @Param sort query string false "Колонка сортировки"
// @Param dir query string false "asc или desc"
// @Success 200 {file} file "bikes_inventory.csv"
// @Failure 403 {object} errorResponse "Доступ запрещен"
// @Router /inventory/export [get]
func (h *InventoryHandler) Export(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	q, sortState, ok := h.bindQuery(c)
	if !ok {
		return
	}

	data, err := h.inventoryService.ExportCSV(c.Request.Context(), q.VehicleFilter, sortState)
	if err != nil {
		writeServiceError(c, err, "Failed to export inventory")
		return
	}
	h.metrics.RecordExport("inventory_csv")
	sendFile(c, services.InventoryExportFilename, services.ContentTypeCSV, data)
}

// @Summary Импорт инвентаря
// @Description Заменяет инвентарь строками загруженного CSV
// @Tags inventory
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV файл"
// @Success 200 {object} ImportResponse
// @Failure 400 {object} validationErrorResponse "Неверный файл"
// @Failure 403 {object} errorResponse "Доступ запрещен"
// @Router /inventory/import [post]
func (h *InventoryHandler) Import(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "missing file field")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "failed to read file")
		return
	}
	defer file.Close()

	count, err := h.inventoryService.ImportCSV(c.Request.Context(), file)
	if err != nil {
		writeServiceError(c, err, "Failed to import inventory")
		return
	}
	c.JSON(http.StatusOK, ImportResponse{Imported: count})
}

// @Summary Сверка инвентаря
// @Description Сравнение номеров шасси загруженного CSV с инвентарём
// @Tags inventory
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV файл"
// @Success 200 {object} domain.ReconcileReport
// @Failure 400 {object} validationErrorResponse "Неверный файл"
// @Failure 403 {object} errorResponse "Доступ запрещен"
// @Router /inventory/reconcile [post]
func (h *InventoryHandler) Reconcile(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "missing file field")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "failed to read file")
		return
	}
	defer file.Close()

	report, err := h.inventoryService.Reconcile(c.Request.Context(), file)
	if err != nil {
		writeServiceError(c, err, "Failed to reconcile inventory")
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Обновить статус байка
// @Tags inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param chassis path string true "Номер шасси"
// @Param request body UpdateStatusRequest true "Статус"
// @Success 200 {object} domain.Vehicle
// @Failure 400 {object} validationErrorResponse "Неверный запрос"
// @Failure 403 {object} errorResponse "Доступ запрещен"
// @Failure 404 {object} errorResponse "Байк не найден"
// @Router /inventory/{chassis}/status [patch]
func (h *InventoryHandler) UpdateStatus(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	vehicle, err := h.inventoryService.UpdateStatus(c.Request.Context(), c.Param("chassis"), req.Status)
	if err != nil {
		writeServiceError(c, err, "Failed to update vehicle")
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func sendFile(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, data)
}
