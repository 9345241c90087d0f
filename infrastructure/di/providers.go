package di

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"lexicon-backend/application/ports"
	"lexicon-backend/application/queries"
	querybus "lexicon-backend/application/queries/bus"
	queries_handlers "lexicon-backend/application/queries/handlers"
	"lexicon-backend/infrastructure/config"
	"lexicon-backend/infrastructure/persistence/memory"
	pkgerrors "lexicon-backend/pkg/errors"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	Store        *memory.ConceptStore
	QueryBus     *querybus.QueryBus
	ErrorHandler *pkgerrors.Handler
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideConceptStore creates and seeds the in-memory lexicon. Seeding
// runs to completion here, before the HTTP listener exists, which is the
// ordering barrier the lock-free read paths depend on.
func ProvideConceptStore(cfg *config.Config, logger *zap.Logger) (*memory.ConceptStore, error) {
	store := memory.NewConceptStore()
	if err := memory.Seed(store, cfg.SeedConceptCount); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to seed lexicon")
	}

	logger.Info("Lexicon seeded",
		zap.Int("generated", cfg.SeedConceptCount),
	)

	return store, nil
}

// ProvideConceptReader exposes the store through its read-only port
func ProvideConceptReader(store *memory.ConceptStore) ports.ConceptReader {
	return store
}

// ProvideErrorHandler creates the HTTP error handler
func ProvideErrorHandler(cfg *config.Config, logger *zap.Logger) *pkgerrors.Handler {
	return pkgerrors.NewHandler(logger, cfg.IsDevelopment())
}

// QueryHandlerAdapter adapts typed query handlers to the bus interface
type QueryHandlerAdapter struct {
	handler func(ctx context.Context, query querybus.Query) (interface{}, error)
}

// Handle implements querybus.QueryHandler
func (a *QueryHandlerAdapter) Handle(ctx context.Context, query querybus.Query) (interface{}, error) {
	return a.handler(ctx, query)
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(concepts ports.ConceptReader, logger *zap.Logger) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus()

	// Register ListConceptsQuery handler
	listHandler := queries_handlers.NewListConceptsHandler(concepts, logger)
	if err := queryBus.Register(queries.ListConceptsQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			listQuery, ok := query.(queries.ListConceptsQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return listHandler.Handle(ctx, listQuery)
		},
	}); err != nil {
		return nil, err
	}

	// Register GetConceptQuery handler
	getHandler := queries_handlers.NewGetConceptHandler(concepts, logger)
	if err := queryBus.Register(queries.GetConceptQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			getQuery, ok := query.(queries.GetConceptQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return getHandler.Handle(ctx, getQuery)
		},
	}); err != nil {
		return nil, err
	}

	// Register ExploreConceptQuery handler
	exploreHandler := queries_handlers.NewExploreConceptHandler(concepts, logger)
	if err := queryBus.Register(queries.ExploreConceptQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			exploreQuery, ok := query.(queries.ExploreConceptQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return exploreHandler.Handle(ctx, exploreQuery)
		},
	}); err != nil {
		return nil, err
	}

	return queryBus, nil
}
