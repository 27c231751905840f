package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cgpe/repopa/internal/core/ports"
)

// ReportHandler serves the CSV export views.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// EntesCSV handles GET /v1/reportes/entes.csv.
//
// @Summary      Export the entes report as CSV
// @Tags         reportes
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200  {string}  string  "CSV payload"
// @Failure      401  {object}  errorResponse
// @Router       /v1/reportes/entes.csv [get]
func (h *ReportHandler) EntesCSV(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	payload, err := h.service.EntesCSV(c.Request().Context(), sess)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="entes.csv"`)
	return c.Blob(http.StatusOK, "text/csv", payload)
}
