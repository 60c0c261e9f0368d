package model

import "github.com/google/uuid"

const EventTypeHired = "hired"

// HiredEvent is emitted after a successful hire. Delivery is
// fire-and-forget; no acknowledgment is expected.
type HiredEvent struct {
	Type       string    `json:"type"`
	GigID      uuid.UUID `json:"gigId"`
	HiredBidID uuid.UUID `json:"hiredBidId"`
	OwnerID    uuid.UUID `json:"ownerId"`
	BidderID   uuid.UUID `json:"bidderId"`
}
