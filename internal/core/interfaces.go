// Package core defines the repository contracts between the panel services and
// the locker backend.
package core

import (
	"context"

	"github.com/bokuwaitgel/smart-locker-panel/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// Implementations in internal/data call the locker backend through the API gateway;
// services depend on these interfaces, not on the gateway.

// ContainerRepository covers /containers.
type ContainerRepository interface {
	List(ctx context.Context) ([]model.Container, error)
	Create(ctx context.Context, req model.CreateContainerRequest) (*model.Container, error)
	SetStatus(ctx context.Context, id int64, status model.ContainerStatus) error
	Stats(ctx context.Context) (*model.ContainerStats, error)
}

// LockerRepository covers /lockers.
type LockerRepository interface {
	List(ctx context.Context) ([]model.Locker, error)
	SetStatus(ctx context.Context, id int64, status model.LockerStatus) error
	// Open asks the backend to open a compartment and returns the backend's message, if any.
	Open(ctx context.Context, req model.OpenLockerRequest) (string, error)
	Stats(ctx context.Context) (*model.LockerStats, error)
}

// DeliveryRepository covers /deliveries.
type DeliveryRepository interface {
	List(ctx context.Context, filter model.DeliveryFilter) ([]model.Delivery, error)
	SetStatus(ctx context.Context, id int64, status model.DeliveryStatus) error
}

// BannerRepository covers /banner.
type BannerRepository interface {
	List(ctx context.Context) ([]model.Banner, error)
	Create(ctx context.Context, upload model.BannerUpload) (*model.Banner, error)
	SetStatus(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}

// Backend bundles the repositories bound to one gateway client.
type Backend struct {
	Containers ContainerRepository
	Lockers    LockerRepository
	Deliveries DeliveryRepository
	Banners    BannerRepository
}
