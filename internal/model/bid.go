package model

import (
	"time"

	"github.com/google/uuid"
)

type BidStatus string

const (
	BidStatusPending  BidStatus = "pending"
	BidStatusHired    BidStatus = "hired"
	BidStatusRejected BidStatus = "rejected"
)

// Bid is a bidder's proposal against an open gig. At most one bid may
// exist per (gig, bidder) pair; the store enforces this at creation time.
type Bid struct {
	ID            uuid.UUID
	GigID         uuid.UUID
	BidderID      uuid.UUID
	Message       string
	ProposedPrice float64
	Status        BidStatus
	CreatedAt     time.Time
}
