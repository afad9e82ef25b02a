package service

import (
	"log/slog"

	"github.com/bokuwaitgel/smart-locker-panel/internal/core"
)

// PanelOptions groups dependencies for NewPanel.
type PanelOptions struct {
	Backend  core.Backend
	Messages *MessageExtractor
	Logger   *slog.Logger
}

// Panel bundles the services behind the admin pages. It is built per
// consumer because the backend it wraps carries that consumer's session.
type Panel struct {
	Dashboard  *DashboardService
	Containers *ContainerService
	Lockers    *LockerService
	Orders     *OrderService
	Banners    *BannerService
}

// NewPanel wires every panel service to opts.Backend.
func NewPanel(opts PanelOptions) *Panel {
	return &Panel{
		Dashboard: NewDashboardService(DashboardServiceOptions{
			Containers: opts.Backend.Containers,
			Lockers:    opts.Backend.Lockers,
			Logger:     opts.Logger,
		}),
		Containers: NewContainerService(ContainerServiceOptions{Repo: opts.Backend.Containers}),
		Lockers:    NewLockerService(LockerServiceOptions{Repo: opts.Backend.Lockers, Messages: opts.Messages}),
		Orders:     NewOrderService(OrderServiceOptions{Repo: opts.Backend.Deliveries}),
		Banners:    NewBannerService(BannerServiceOptions{Repo: opts.Backend.Banners, Messages: opts.Messages}),
	}
}
