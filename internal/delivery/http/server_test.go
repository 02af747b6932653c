package http

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"fogbuilds/config"
	appmiddleware "fogbuilds/internal/delivery/http/middleware"
	"fogbuilds/internal/delivery/http/router"
	"fogbuilds/internal/delivery/http/router/handler"
	"fogbuilds/internal/domain/entity"
	mockRepo "fogbuilds/internal/mocks/repository"
	"fogbuilds/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestRouterParams(t *testing.T, logger *slog.Logger) router.RouterParams {
	newCatalog := func(variant entity.Variant) *handler.CatalogHandler {
		repo := mockRepo.NewMockCatalogRepository(t)

		return handler.NewCatalogHandler(variant, impl.NewCatalogService(variant, repo, logger), logger)
	}

	killerUC := impl.NewKillerService(
		mockRepo.NewMockKillerRepository(t),
		mockRepo.NewMockKillerAddonRepository(t),
		mockRepo.NewMockKillerPerkRepository(t),
		logger,
	)

	return router.RouterParams{
		CharacterHandler: newCatalog(entity.VariantCharacter),
		AddonHandler:     newCatalog(entity.VariantAddon),
		ItemHandler:      newCatalog(entity.VariantItem),
		PerkHandler:      newCatalog(entity.VariantPerk),
		KillerHandler:    handler.NewKillerHandler(handler.KillerHandlerParams{KillerUC: killerUC, Logger: logger}),
	}
}

// The configured HTTP timeouts must land on the underlying server.
func TestNewServer_AppliesConfiguredTimeouts(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.HTTP.Port = 8080
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.HTTP.Timeouts.ReadTimeout = 5 * time.Second
	cfg.HTTP.Timeouts.ReadHeaderTimeout = 2 * time.Second
	cfg.HTTP.Timeouts.WriteTimeout = 10 * time.Second
	cfg.HTTP.Timeouts.IdleTimeout = 2 * time.Minute

	params := HTTPParams{
		Lifecycle:           fxtest.NewLifecycle(t),
		Config:              cfg,
		Logger:              logger,
		RouterParams:        newTestRouterParams(t, logger),
		RequestIDMiddleware: appmiddleware.NewRequestIDMiddleware(logger),
		LoggerMiddleware:    appmiddleware.NewLoggerMiddleware(logger, cfg),
		ErrorMiddleware:     appmiddleware.NewErrorMiddleware(logger),
	}

	d, err := NewServer(params)
	require.NoError(t, err)

	srv, ok := d.(*httpServer)
	require.True(t, ok)
	assert.Equal(t, 5*time.Second, srv.server.Server.ReadTimeout)
	assert.Equal(t, 2*time.Second, srv.server.Server.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, srv.server.Server.WriteTimeout)
	assert.Equal(t, 2*time.Minute, srv.server.Server.IdleTimeout)
	assert.NotNil(t, srv.server.Validator)
}
