package ports

import (
	"context"

	"github.com/valo-rant/community-api/internal/core/domain"
)

// CatalogClient fetches the raw agent list from the third-party catalog.
type CatalogClient interface {
	FetchAgents(ctx context.Context) ([]domain.Agent, error)
	// Ping reports whether the catalog is reachable; used by readiness probes.
	Ping(ctx context.Context) error
}

// CatalogService exposes the playable-agent list to the API layer.
type CatalogService interface {
	ListAgents(ctx context.Context) ([]domain.Agent, error)
}
