package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
)

type healthService struct {
	pool    *pgxpool.Pool
	checkDB bool
}

// NewHealthService creates the health service. When checkDB is false the
// check degrades to a no-op so the endpoint stays cheap.
func NewHealthService(pool *pgxpool.Pool, checkDB bool) portssvc.HealthSvcFacade {
	return &healthService{pool: pool, checkDB: checkDB}
}

var _ portssvc.HealthSvcFacade = (*healthService)(nil)

func (s *healthService) Check(ctx context.Context) error {
	if !s.checkDB || s.pool == nil {
		return nil
	}
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
