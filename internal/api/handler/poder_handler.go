package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cgpe/repopa/internal/api/metrics"
	"github.com/cgpe/repopa/internal/core/ports"
)

// PoderHandler manages the powers-of-attorney surface.
type PoderHandler struct {
	service ports.PoderService
	audit   AuditEnqueuer
}

func NewPoderHandler(service ports.PoderService, audit AuditEnqueuer) *PoderHandler {
	return &PoderHandler{service: service, audit: audit}
}

// Replace handles PUT /v1/entes/:folio/poderes. It replaces the full
// apoderados set for the ente in one write.
//
// @Summary      Replace an ente's powers of attorney
// @Tags         poderes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        folio  path      string                 true  "Folio (URL-escaped)"
// @Param        body   body      replacePoderesRequest  true  "Full apoderados set"
// @Success      200    {object}  poderesResponse
// @Failure      403    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /v1/entes/{folio}/poderes [put]
func (h *PoderHandler) Replace(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	folio, err := pathFolio(c)
	if err != nil {
		return err
	}

	var req replacePoderesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	apoderados := make([]ports.ApoderadoInput, len(req.Apoderados))
	for i, a := range req.Apoderados {
		apoderados[i] = ports.ApoderadoInput{Nombre: a.Nombre, Cargo: a.Cargo, Facultades: a.Facultades}
	}

	p, err := h.service.ReplacePoderes(c.Request().Context(), ports.ReplacePoderesInput{
		Folio:      folio,
		Apoderados: apoderados,
		OtorgadoEn: req.OtorgadoEn,
		Session:    sess,
	})
	if err != nil {
		return err
	}

	metrics.PoderesReplacedTotal.Inc()
	h.audit.Enqueue(ports.AuditEntryInput{
		Folio:  folio,
		Accion: "poderes.replace",
		Actor:  sess.Email,
	})

	return c.JSON(http.StatusOK, toPoderesResponse(p))
}

// Get handles GET /v1/entes/:folio/poderes.
//
// @Summary      Get an ente's powers of attorney
// @Tags         poderes
// @Produce      json
// @Security     BearerAuth
// @Param        folio  path      string  true  "Folio (URL-escaped)"
// @Success      200    {object}  poderesResponse
// @Failure      404    {object}  errorResponse
// @Router       /v1/entes/{folio}/poderes [get]
func (h *PoderHandler) Get(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	folio, err := pathFolio(c)
	if err != nil {
		return err
	}

	p, err := h.service.GetPoderes(c.Request().Context(), sess, folio)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPoderesResponse(p))
}
