package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'gig_status') THEN
			CREATE TYPE gig_status AS ENUM ('open', 'assigned');
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'bid_status') THEN
			CREATE TYPE bid_status AS ENUM ('pending', 'hired', 'rejected');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(128) NOT NULL,
		email VARCHAR(254) NOT NULL,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_users_email ON users (email);`,
	`CREATE TABLE IF NOT EXISTS gigs (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		owner_id UUID NOT NULL REFERENCES users(id),
		title VARCHAR(256) NOT NULL,
		description TEXT NOT NULL,
		budget NUMERIC(18,2) NOT NULL CHECK (budget >= 0),
		status gig_status NOT NULL DEFAULT 'open',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_gigs_owner_id ON gigs (owner_id);`,
	`CREATE INDEX IF NOT EXISTS idx_gigs_status ON gigs (status);`,
	`CREATE INDEX IF NOT EXISTS idx_gigs_title ON gigs (title);`,
	`CREATE TABLE IF NOT EXISTS bids (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		gig_id UUID NOT NULL REFERENCES gigs(id),
		bidder_id UUID NOT NULL REFERENCES users(id),
		message TEXT NOT NULL,
		proposed_price NUMERIC(18,2) NOT NULL CHECK (proposed_price >= 0),
		status bid_status NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_bids_gig_bidder ON bids (gig_id, bidder_id);`,
	`CREATE INDEX IF NOT EXISTS idx_bids_gig_id ON bids (gig_id);`,
	`CREATE INDEX IF NOT EXISTS idx_bids_bidder_id ON bids (bidder_id);`,
	`CREATE INDEX IF NOT EXISTS idx_bids_status ON bids (status);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
