// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fogbuilds/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CharacterHandler *handler.CatalogHandler `name:"characterHandler"`
	AddonHandler     *handler.CatalogHandler `name:"addonHandler"`
	ItemHandler      *handler.CatalogHandler `name:"itemHandler"`
	PerkHandler      *handler.CatalogHandler `name:"perkHandler"`
	KillerHandler    *handler.KillerHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	characterHandler *handler.CatalogHandler
	addonHandler     *handler.CatalogHandler
	itemHandler      *handler.CatalogHandler
	perkHandler      *handler.CatalogHandler
	killerHandler    *handler.KillerHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		characterHandler: params.CharacterHandler,
		addonHandler:     params.AddonHandler,
		itemHandler:      params.ItemHandler,
		perkHandler:      params.PerkHandler,
		killerHandler:    params.KillerHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// The four catalog collections share one route shape.
	registerCatalog(e.Group("/characters"), r.characterHandler)
	registerCatalog(e.Group("/addons"), r.addonHandler)
	registerCatalog(e.Group("/items"), r.itemHandler)
	registerCatalog(e.Group("/perks"), r.perkHandler)

	// Killer records and loadout assembly
	killerGroup := e.Group("/killers")
	{
		killerGroup.GET("", r.killerHandler.ListKillers)
		killerGroup.GET("/:id", r.killerHandler.GetKiller)
		killerGroup.POST("", r.killerHandler.CreateKiller)
		killerGroup.PUT("/:id", r.killerHandler.UpdateKiller)
		killerGroup.DELETE("/:id", r.killerHandler.DeleteKiller)
		killerGroup.POST("/:id/loadout", r.killerHandler.AssembleLoadout)
	}

	// Scored component rosters
	addonGroup := e.Group("/killer-addons")
	{
		addonGroup.GET("", r.killerHandler.ListAddons)
		addonGroup.POST("", r.killerHandler.CreateAddon)
	}

	perkGroup := e.Group("/killer-perks")
	{
		perkGroup.GET("", r.killerHandler.ListPerks)
		perkGroup.POST("", r.killerHandler.CreatePerk)
	}
}

// registerCatalog wires the shared CRUD route shape for one collection.
// The type filter reads its payload from the request body, matching the
// behavior existing clients depend on.
func registerCatalog(g *echo.Group, h *handler.CatalogHandler) {
	g.GET("", h.List)
	g.GET("/type", h.ListByType)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
