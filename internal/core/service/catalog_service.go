package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/valo-rant/community-api/internal/api/metrics"
	"github.com/valo-rant/community-api/internal/core/domain"
	"github.com/valo-rant/community-api/internal/core/ports"
)

const defaultCatalogTimeout = 10 * time.Second

// CatalogService fetches the external character catalog and narrows it to
// playable agents. Every fetch is bounded by a configurable timeout; the
// upstream has none of its own.
type CatalogService struct {
	client  ports.CatalogClient
	timeout time.Duration
	logger  zerolog.Logger
}

func NewCatalogService(client ports.CatalogClient, timeout time.Duration, logger zerolog.Logger) *CatalogService {
	if timeout <= 0 {
		timeout = defaultCatalogTimeout
	}
	return &CatalogService{client: client, timeout: timeout, logger: logger}
}

func (s *CatalogService) ListAgents(ctx context.Context) ([]domain.Agent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	agents, err := s.client.FetchAgents(ctx)
	if err != nil {
		result := "error"
		if errors.Is(err, domain.ErrTimeout) {
			result = "timeout"
		}
		metrics.CatalogFetchesTotal.WithLabelValues(result).Inc()
		s.logger.Error().Err(err).Msg("catalog fetch failed")
		return nil, err
	}

	playable := make([]domain.Agent, 0, len(agents))
	for _, a := range agents {
		if a.IsPlayableCharacter {
			playable = append(playable, a)
		}
	}

	metrics.CatalogFetchesTotal.WithLabelValues("ok").Inc()
	metrics.CatalogFetchDuration.Observe(time.Since(start).Seconds())
	s.logger.Debug().Int("agents", len(playable)).Msg("catalog fetched")

	return playable, nil
}
