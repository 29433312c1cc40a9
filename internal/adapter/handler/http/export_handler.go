package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/ports"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/services"
)

type ExportHandler struct {
	exportService *services.ExportService
	logger        ports.LoggerPort
	metrics       ports.MetricsPort
}

func NewExportHandler(exportService *services.ExportService, logger ports.LoggerPort, metrics ports.MetricsPort) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		logger:        logger,
		metrics:       metrics,
	}
}

// @Summary Экспорт записей обслуживания
// @Description Одна строка на запчасть. Без записей возвращает notice
// @Tags export
// @Security BearerAuth
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv или xlsx"
// @Success 200 {file} file "Файл экспорта"
// @Failure 400 {object} errorResponse "Неизвестный формат"
// @Failure 403 {object} errorResponse "Доступ запрещен"
// @Router /maintenance/export/records [get]
func (h *ExportHandler) Records(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var build func(ctx context.Context) (*services.ExportFile, error)
	switch c.DefaultQuery("format", "csv") {
	case "csv":
		build = h.exportService.RecordsCSV
	case "xlsx":
		build = h.exportService.RecordsWorkbook
	default:
		newErrorResponse(c, http.StatusBadRequest, "Unsupported export format")
		return
	}

	file, err := build(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "Export failed")
		return
	}
	sendFile(c, file.Filename, file.ContentType, file.Data)
}

// @Summary Экспорт сводки
// @Tags export
// @Security BearerAuth
// @Produce text/csv
// @Success 200 {file} file "Файл сводки"
// @Failure 403 {object} errorResponse "Доступ запрещен"
// @Router /maintenance/export/summary [get]
func (h *ExportHandler) Summary(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	file, err := h.exportService.SummaryCSV(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "Export failed")
		return
	}
	sendFile(c, file.Filename, file.ContentType, file.Data)
}
