// Package mocks provides mock implementations for testing the locker panel.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the repository
// interfaces and the gateway. The mocks provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	repo := mocks.NewMockLockerRepository(ctrl)
//	repo.EXPECT().List(gomock.Any()).Return(lockers, nil)
package mocks

// Repository ports from internal/core.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=container_repository_mock.go github.com/bokuwaitgel/smart-locker-panel/internal/core ContainerRepository
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=locker_repository_mock.go github.com/bokuwaitgel/smart-locker-panel/internal/core LockerRepository
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=delivery_repository_mock.go github.com/bokuwaitgel/smart-locker-panel/internal/core DeliveryRepository
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=banner_repository_mock.go github.com/bokuwaitgel/smart-locker-panel/internal/core BannerRepository

// Gateway transport seen by repositories.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=doer_mock.go github.com/bokuwaitgel/smart-locker-panel/internal/gateway Doer

// Credential exchange used by the login handler.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=login_provider_mock.go github.com/bokuwaitgel/smart-locker-panel/internal/ports LoginProvider
