package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cgpe/repopa/internal/api/metrics"
	"github.com/cgpe/repopa/internal/core/ports"
)

// AuditEnqueuer is the interface handlers use to hand mutations to the
// bitácora dispatcher.
type AuditEnqueuer interface {
	Enqueue(entry ports.AuditEntryInput)
}

// EnteHandler handles HTTP requests for the ente registry.
type EnteHandler struct {
	service ports.EnteService
	audit   AuditEnqueuer
}

func NewEnteHandler(service ports.EnteService, audit AuditEnqueuer) *EnteHandler {
	return &EnteHandler{service: service, audit: audit}
}

// Create handles POST /v1/entes.
//
// @Summary      Register a new ente
// @Tags         entes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEnteRequest  true  "Ente details"
// @Success      201   {object}  enteResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/entes [post]
func (h *EnteHandler) Create(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req createEnteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	ente, err := h.service.CreateEnte(c.Request().Context(), toCreateInput(req, sess))
	if err != nil {
		return err
	}

	metrics.EntesCreatedTotal.WithLabelValues(string(ente.Tipo)).Inc()
	h.audit.Enqueue(ports.AuditEntryInput{
		Folio:  ente.Folio,
		Accion: "ente.create",
		Actor:  sess.Email,
	})

	return c.JSON(http.StatusCreated, toEnteResponse(ente))
}

// Get handles GET /v1/entes/:folio. The folio path segment is URL-escaped
// by clients since folios contain slashes.
//
// @Summary      Get an ente by folio
// @Tags         entes
// @Produce      json
// @Security     BearerAuth
// @Param        folio  path      string  true  "Folio (URL-escaped)"
// @Success      200    {object}  enteResponse
// @Failure      404    {object}  errorResponse
// @Router       /v1/entes/{folio} [get]
func (h *EnteHandler) Get(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	folio, err := pathFolio(c)
	if err != nil {
		return err
	}

	ente, err := h.service.GetEnte(c.Request().Context(), sess, folio)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEnteResponse(ente))
}

// Update handles PUT /v1/entes/:folio.
//
// @Summary      Update an ente
// @Tags         entes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        folio  path      string             true  "Folio (URL-escaped)"
// @Param        body   body      updateEnteRequest  true  "Fields to update"
// @Success      200    {object}  enteResponse
// @Failure      403    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /v1/entes/{folio} [put]
func (h *EnteHandler) Update(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	folio, err := pathFolio(c)
	if err != nil {
		return err
	}

	var req updateEnteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	ente, err := h.service.UpdateEnte(c.Request().Context(), toUpdateInput(req, folio, sess))
	if err != nil {
		return err
	}

	h.audit.Enqueue(ports.AuditEntryInput{
		Folio:  folio,
		Accion: "ente.update",
		Actor:  sess.Email,
	})

	return c.JSON(http.StatusOK, toEnteResponse(ente))
}

// Delete handles DELETE /v1/entes/:folio, a soft delete. ADMIN only.
//
// @Summary      Deactivate an ente
// @Tags         entes
// @Security     BearerAuth
// @Param        folio  path  string  true  "Folio (URL-escaped)"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/entes/{folio} [delete]
func (h *EnteHandler) Delete(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	folio, err := pathFolio(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteEnte(c.Request().Context(), sess, folio); err != nil {
		return err
	}

	h.audit.Enqueue(ports.AuditEntryInput{
		Folio:  folio,
		Accion: "ente.delete",
		Actor:  sess.Email,
	})

	return c.NoContent(http.StatusNoContent)
}

// List handles GET /v1/entes with filters and pagination.
//
// @Summary      List entes
// @Tags         entes
// @Produce      json
// @Security     BearerAuth
// @Param        tipo    query     string  false  "Filter by tipo"
// @Param        sector  query     string  false  "Filter by sector"
// @Param        search  query     string  false  "Partial match on nombre or folio"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Rows per page (max 100)"
// @Success      200     {object}  listEntesResponse
// @Router       /v1/entes [get]
func (h *EnteHandler) List(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.ListEntes(c.Request().Context(), ports.ListEntesInput{
		Tipo:    c.QueryParam("tipo"),
		Sector:  c.QueryParam("sector"),
		Search:  c.QueryParam("search"),
		Page:    page,
		Limit:   limit,
		Session: sess,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(result))
}

// pathFolio decodes the :folio path parameter. Folios embed slashes
// (REPOPA/2026/000001) and arrive percent-encoded.
func pathFolio(c echo.Context) (string, error) {
	folio, err := url.PathUnescape(c.Param("folio"))
	if err != nil || folio == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "folio is required")
	}
	return folio, nil
}
