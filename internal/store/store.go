// Package store defines the persistence contracts the services depend on.
//
// The store is assumed to offer atomic single-row conditional updates, not
// multi-entity transactions. CompareAndSetStatus is the sole serialization
// point for the hire protocol: it applies if and only if the row's status
// equals the expected value at apply time.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/abhidesai17/gigflow/internal/model"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrStatusMismatch is returned by CompareAndSetStatus when the row's
	// current status differs from the expected value.
	ErrStatusMismatch = errors.New("status mismatch")
	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint (duplicate bid, duplicate email).
	ErrDuplicate = errors.New("duplicate record")
)

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type GigStore interface {
	Create(ctx context.Context, gig *model.Gig) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Gig, error)
	// ListOpen returns open gigs newest first, optionally filtered by a
	// case-insensitive substring match on title.
	ListOpen(ctx context.Context, search string) ([]model.Gig, error)
	// CompareAndSetStatus transitions the gig's status from `from` to `to`
	// and returns the updated snapshot, or ErrStatusMismatch if the current
	// status is not `from`.
	CompareAndSetStatus(ctx context.Context, id uuid.UUID, from, to model.GigStatus) (*model.Gig, error)
}

type BidStore interface {
	Create(ctx context.Context, bid *model.Bid) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Bid, error)
	// ListForGig returns all bids for the gig newest first.
	ListForGig(ctx context.Context, gigID uuid.UUID) ([]model.Bid, error)
	CompareAndSetStatus(ctx context.Context, id uuid.UUID, from, to model.BidStatus) (*model.Bid, error)
	// RejectOtherPending moves every pending bid of the gig except the
	// winner to rejected and reports how many rows changed.
	RejectOtherPending(ctx context.Context, gigID, winnerBidID uuid.UUID) (int64, error)
	// HasHired reports whether any bid of the gig is already hired.
	HasHired(ctx context.Context, gigID uuid.UUID) (bool, error)
}
