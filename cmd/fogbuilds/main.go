package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"fogbuilds/config"
	"fogbuilds/internal/delivery"
	"fogbuilds/internal/delivery/http"
	"fogbuilds/internal/delivery/http/middleware"
	"fogbuilds/internal/delivery/http/router/handler"
	"fogbuilds/internal/domain/entity"
	"fogbuilds/internal/domain/repository"
	logs "fogbuilds/internal/infra/log"
	"fogbuilds/internal/infra/persistence/postgres"
	"fogbuilds/internal/usecase"
	"fogbuilds/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectCatalog(entity.VariantCharacter, "character"),
		injectCatalog(entity.VariantAddon, "addon"),
		injectCatalog(entity.VariantItem, "item"),
		injectCatalog(entity.VariantPerk, "perk"),
		injectKiller(),
		injectMiddleware(),
		injectDelivery(),
		fx.Invoke(
			postgres.AutoMigrate,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

// injectCatalog wires one catalog collection end to end: repository bound to
// the variant's table, the service bound to the repository, and the handler
// bound to the service. The instances are named so the router can ask for
// each collection's handler.
func injectCatalog(variant entity.Variant, name string) fx.Option {
	repoTag := fmt.Sprintf(`name:"%sRepo"`, name)
	usecaseTag := fmt.Sprintf(`name:"%sUsecase"`, name)
	handlerTag := fmt.Sprintf(`name:"%sHandler"`, name)

	return fx.Provide(
		fx.Annotate(
			func(db *gorm.DB) repository.CatalogRepository {
				return postgres.NewCatalogRepository(db, variant)
			},
			fx.ResultTags(repoTag),
		),
		fx.Annotate(
			func(repo repository.CatalogRepository, logger *slog.Logger) usecase.CatalogUsecase {
				return impl.NewCatalogService(variant, repo, logger)
			},
			fx.ParamTags(repoTag),
			fx.ResultTags(usecaseTag),
		),
		fx.Annotate(
			func(catalogUC usecase.CatalogUsecase, logger *slog.Logger) *handler.CatalogHandler {
				return handler.NewCatalogHandler(variant, catalogUC, logger)
			},
			fx.ParamTags(usecaseTag),
			fx.ResultTags(handlerTag),
		),
	)
}

func injectKiller() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewKillerRepository,
			postgres.NewKillerAddonRepository,
			postgres.NewKillerPerkRepository,
			impl.NewKillerService,
			handler.NewKillerHandler,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
