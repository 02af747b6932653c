// Package handler contains the Echo handlers for the HTTP delivery.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"fogbuilds/internal/delivery/http/response"
	"fogbuilds/internal/domain/entity"
	"fogbuilds/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CatalogHandler serves one catalog collection. Four instances are wired,
// one per variant, all over the same implementation.
type CatalogHandler struct {
	variant   entity.Variant
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(variant entity.Variant, catalogUC usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		variant:   variant,
		catalogUC: catalogUC,
		logger:    logger,
	}
}

// List handles listing every entry in the collection.
func (h *CatalogHandler) List(c echo.Context) error {
	entries, err := h.catalogUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if len(entries) == 0 {
		return response.NoContent(c)
	}

	return response.Success(c, http.StatusOK, entries, "")
}

// ListByType handles listing entries filtered by character type. The type
// travels in the request body, a quirk the API's clients rely on.
func (h *CatalogHandler) ListByType(c echo.Context) error {
	var req usecase.ListByTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid type filter input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	entries, err := h.catalogUC.ListByType(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if len(entries) == 0 {
		return response.NoContent(c)
	}

	return response.Success(c, http.StatusOK, entries, "")
}

// Get handles retrieving a single entry by ID.
func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid ID")
	}

	entry, err := h.catalogUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entry, "")
}

// Create handles creating a new entry.
func (h *CatalogHandler) Create(c echo.Context) error {
	var req usecase.CreateEntryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid create input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	entry, err := h.catalogUC.Create(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, entry, "")
}

// Update handles partially updating an entry.
func (h *CatalogHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid ID")
	}

	var req usecase.UpdateEntryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	entry, err := h.catalogUC.Update(c.Request().Context(), id, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entry, "")
}

// Delete handles removing an entry. The deleted entry's last state is
// returned in the response.
func (h *CatalogHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid ID")
	}

	entry, err := h.catalogUC.Delete(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entry, "")
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
