// Package data implements the core repositories on top of the API gateway.
package data

import (
	"github.com/bokuwaitgel/smart-locker-panel/internal/core"
	"github.com/bokuwaitgel/smart-locker-panel/internal/gateway"
)

// NewBackend binds every repository to gw.
func NewBackend(gw gateway.Doer) core.Backend {
	return core.Backend{
		Containers: NewContainerRepo(gw),
		Lockers:    NewLockerRepo(gw),
		Deliveries: NewDeliveryRepo(gw),
		Banners:    NewBannerRepo(gw),
	}
}
