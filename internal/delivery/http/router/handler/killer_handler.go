package handler

import (
	"log/slog"
	"net/http"

	"fogbuilds/internal/delivery/http/response"
	"fogbuilds/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// KillerHandlerParams holds dependencies for KillerHandler, injected by Fx.
type KillerHandlerParams struct {
	fx.In

	KillerUC usecase.KillerUsecase
	Logger   *slog.Logger
}

// KillerHandler serves killer records, the scored component rosters and
// loadout assembly.
type KillerHandler struct {
	killerUC usecase.KillerUsecase
	logger   *slog.Logger
}

// NewKillerHandler is the constructor for KillerHandler.
func NewKillerHandler(params KillerHandlerParams) *KillerHandler {
	return &KillerHandler{
		killerUC: params.KillerUC,
		logger:   params.Logger,
	}
}

// ListKillers handles listing every killer record.
func (h *KillerHandler) ListKillers(c echo.Context) error {
	killers, err := h.killerUC.ListKillers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if len(killers) == 0 {
		return response.NoContent(c)
	}

	return response.Success(c, http.StatusOK, killers, "")
}

// GetKiller handles retrieving a single killer by ID.
func (h *KillerHandler) GetKiller(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid ID")
	}

	killer, err := h.killerUC.GetKiller(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, killer, "")
}

// CreateKiller handles creating a new killer record.
func (h *KillerHandler) CreateKiller(c echo.Context) error {
	var req usecase.CreateKillerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid killer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	killer, err := h.killerUC.CreateKiller(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, killer, "")
}

// UpdateKiller handles partially updating a killer record.
func (h *KillerHandler) UpdateKiller(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid ID")
	}

	var req usecase.UpdateKillerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid killer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	killer, err := h.killerUC.UpdateKiller(c.Request().Context(), id, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, killer, "")
}

// DeleteKiller handles removing a killer record.
func (h *KillerHandler) DeleteKiller(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid ID")
	}

	killer, err := h.killerUC.DeleteKiller(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, killer, "")
}

// ListAddons handles listing the addon roster.
func (h *KillerHandler) ListAddons(c echo.Context) error {
	addons, err := h.killerUC.ListAddons(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if len(addons) == 0 {
		return response.NoContent(c)
	}

	return response.Success(c, http.StatusOK, addons, "")
}

// CreateAddon handles registering a scored addon.
func (h *KillerHandler) CreateAddon(c echo.Context) error {
	var req usecase.CreateComponentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid addon input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	addon, err := h.killerUC.CreateAddon(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, addon, "")
}

// ListPerks handles listing the perk roster.
func (h *KillerHandler) ListPerks(c echo.Context) error {
	perks, err := h.killerUC.ListPerks(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if len(perks) == 0 {
		return response.NoContent(c)
	}

	return response.Success(c, http.StatusOK, perks, "")
}

// CreatePerk handles registering a scored perk.
func (h *KillerHandler) CreatePerk(c echo.Context) error {
	var req usecase.CreateComponentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid perk input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	perk, err := h.killerUC.CreatePerk(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, perk, "")
}

// AssembleLoadout handles filling a killer's transient slots with named
// components. Nothing about the assembled loadout is persisted.
func (h *KillerHandler) AssembleLoadout(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid ID")
	}

	var req usecase.LoadoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid loadout input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	loadout, err := h.killerUC.AssembleLoadout(c.Request().Context(), id, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, loadout, "")
}
