package model

import (
	"time"

	"github.com/google/uuid"
)

type GigStatus string

const (
	GigStatusOpen     GigStatus = "open"
	GigStatusAssigned GigStatus = "assigned"
)

type Gig struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Budget      float64
	Status      GigStatus
	CreatedAt   time.Time
}
