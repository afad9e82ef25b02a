package model

import (
	"strings"
	"time"
)

// DeliveryStatus is the lifecycle position of a delivery order.
type DeliveryStatus string

const (
	DeliveryWaiting   DeliveryStatus = "WAITING"
	DeliveryPending   DeliveryStatus = "PENDING"
	DeliveryDelivered DeliveryStatus = "DELIVERED"
	DeliveryPickedUp  DeliveryStatus = "PICKED_UP"
	DeliveryCancelled DeliveryStatus = "CANCELLED"
)

// DeliveryStatuses lists the statuses in display order.
var DeliveryStatuses = []DeliveryStatus{DeliveryWaiting, DeliveryPending, DeliveryDelivered, DeliveryPickedUp, DeliveryCancelled}

// Valid reports whether the delivery status is supported.
func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryWaiting, DeliveryPending, DeliveryDelivered, DeliveryPickedUp, DeliveryCancelled:
		return true
	default:
		return false
	}
}

// ParseDeliveryStatus normalizes a status string and reports whether it is supported.
func ParseDeliveryStatus(v string) (DeliveryStatus, bool) {
	s := DeliveryStatus(strings.ToUpper(strings.TrimSpace(v)))
	return s, s.Valid()
}

// Delivery is a parcel order placed into a locker.
type Delivery struct {
	ID            int64          `json:"id"`
	BoardID       string         `json:"boardId"`
	LockerID      string         `json:"lockerId"`
	PickupCode    string         `json:"pickupCode"`
	Status        DeliveryStatus `json:"status"`
	PaymentStatus string         `json:"paymentStatus"`
	PickupMobile  string         `json:"pickupMobile"`
	IsSendSMS     bool           `json:"isSendSMS"`
	CreatedAt     time.Time      `json:"createdAt"`
	DeliveredAt   *time.Time     `json:"deliveredAt,omitempty"`
	PickedUpAt    *time.Time     `json:"pickedUpAt,omitempty"`
}

// DeliveryFilter narrows GET /deliveries. Empty fields are not sent.
type DeliveryFilter struct {
	BoardID string
	Status  DeliveryStatus
}

// Matches reports whether d passes the filter.
func (f DeliveryFilter) Matches(d Delivery) bool {
	if f.BoardID != "" && d.BoardID != f.BoardID {
		return false
	}
	if f.Status != "" && d.Status != f.Status {
		return false
	}
	return true
}

// FilterDeliveries returns the deliveries matching f, preserving order.
func FilterDeliveries(ds []Delivery, f DeliveryFilter) []Delivery {
	if f.BoardID == "" && f.Status == "" {
		return ds
	}
	out := make([]Delivery, 0, len(ds))
	for _, d := range ds {
		if f.Matches(d) {
			out = append(out, d)
		}
	}
	return out
}

// CountDeliveriesByStatus tallies deliveries per status.
func CountDeliveriesByStatus(ds []Delivery) map[DeliveryStatus]int {
	counts := make(map[DeliveryStatus]int, len(DeliveryStatuses))
	for _, d := range ds {
		counts[d.Status]++
	}
	return counts
}

// DistinctDeliveryStatuses returns the statuses present in ds, in display
// order. Statuses outside DeliveryStatuses follow in first-seen order.
func DistinctDeliveryStatuses(ds []Delivery) []DeliveryStatus {
	seen := make(map[DeliveryStatus]bool, len(DeliveryStatuses))
	for _, d := range ds {
		if d.Status != "" {
			seen[d.Status] = true
		}
	}
	out := make([]DeliveryStatus, 0, len(seen))
	for _, s := range DeliveryStatuses {
		if seen[s] {
			out = append(out, s)
			delete(seen, s)
		}
	}
	for _, d := range ds {
		if seen[d.Status] {
			out = append(out, d.Status)
			delete(seen, d.Status)
		}
	}
	return out
}
