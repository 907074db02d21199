package service

import (
	"context"
)

// AddressChangedEvent is emitted when a Main building's house number changes,
// marking its Associate and Dissociate buildings stale.
type AddressChangedEvent struct {
	RequestID       string `json:"request_id,omitempty"` // For distributed tracing
	EventID         string `json:"event_id"`
	BuildingID      int64  `json:"building_id" validate:"required"`
	ExternalID      int64  `json:"building_ref" validate:"required"`
	HouseNo         string `json:"house_no"`
	PreviousHouseNo string `json:"previous_house_no,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAddressChanged publishes a stale-address event for async propagation
	PublishAddressChanged(ctx context.Context, event *AddressChangedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
