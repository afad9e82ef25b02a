package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/bokuwaitgel/smart-locker-panel/internal/core"
	"github.com/bokuwaitgel/smart-locker-panel/internal/domain/model"
)

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	Containers core.ContainerRepository
	Lockers    core.LockerRepository
	Logger     *slog.Logger
}

// DashboardService aggregates the summary counters shown on the dashboard.
type DashboardService struct {
	containers core.ContainerRepository
	lockers    core.LockerRepository
	logger     *slog.Logger
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	if opts.Containers == nil || opts.Lockers == nil {
		panic("dashboard service requires container and locker repositories")
	}
	return &DashboardService{containers: opts.Containers, lockers: opts.Lockers, logger: opts.Logger}
}

// Stats fetches container and locker stats concurrently. Either call failing
// fails the whole aggregate; fields the backend omits stay zero.
func (s *DashboardService) Stats(ctx context.Context) (model.DashboardStats, error) {
	var (
		cs *model.ContainerStats
		ls *model.LockerStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cs, err = s.containers.Stats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		ls, err = s.lockers.Stats(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log().WarnContext(ctx, "dashboard stats failed", "error", err)
		return model.DashboardStats{}, fmt.Errorf("dashboard stats: %w", err)
	}

	var out model.DashboardStats
	if cs != nil {
		out.TotalContainers = cs.TotalContainers
		out.ActiveContainers = cs.ActiveContainers
	}
	if ls != nil {
		out.TotalLockers = ls.TotalLockers
		out.AvailableLockers = ls.AvailableLockers
		out.OccupiedLockers = ls.OccupiedLockers
	}
	return out, nil
}

func (s *DashboardService) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}
