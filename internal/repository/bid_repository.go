package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/abhidesai17/gigflow/internal/model"
	"github.com/abhidesai17/gigflow/internal/store"
)

type BidRepository struct {
	db *gorm.DB
}

func NewBidRepository(db *gorm.DB) *BidRepository {
	return &BidRepository{db: db}
}

func (r *BidRepository) Create(ctx context.Context, bid *model.Bid) error {
	var saved model.Bid
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO bids (gig_id, bidder_id, message, proposed_price, status)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, gig_id, bidder_id, message, proposed_price, status, created_at
	`, bid.GigID, bid.BidderID, bid.Message, bid.ProposedPrice, bid.Status).Scan(&saved).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return store.ErrDuplicate
		}
		return err
	}
	*bid = saved
	return nil
}

func (r *BidRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Bid, error) {
	var bid model.Bid
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, gig_id, bidder_id, message, proposed_price, status, created_at
		FROM bids
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&bid).Error
	if err != nil {
		return nil, err
	}
	if bid.ID == uuid.Nil {
		return nil, store.ErrNotFound
	}
	return &bid, nil
}

func (r *BidRepository) ListForGig(ctx context.Context, gigID uuid.UUID) ([]model.Bid, error) {
	var bids []model.Bid
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, gig_id, bidder_id, message, proposed_price, status, created_at
		FROM bids
		WHERE gig_id = ?
		ORDER BY created_at DESC
	`, gigID).Scan(&bids).Error
	if err != nil {
		return nil, err
	}
	return bids, nil
}

func (r *BidRepository) CompareAndSetStatus(ctx context.Context, id uuid.UUID, from, to model.BidStatus) (*model.Bid, error) {
	var bid model.Bid
	err := r.db.WithContext(ctx).Raw(`
		UPDATE bids
		SET status = ?
		WHERE id = ? AND status = ?
		RETURNING id, gig_id, bidder_id, message, proposed_price, status, created_at
	`, to, id, from).Scan(&bid).Error
	if err != nil {
		return nil, err
	}
	if bid.ID == uuid.Nil {
		return nil, store.ErrStatusMismatch
	}
	return &bid, nil
}

func (r *BidRepository) RejectOtherPending(ctx context.Context, gigID, winnerBidID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE bids
		SET status = ?
		WHERE gig_id = ? AND id <> ? AND status = ?
	`, model.BidStatusRejected, gigID, winnerBidID, model.BidStatusPending)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *BidRepository) HasHired(ctx context.Context, gigID uuid.UUID) (bool, error) {
	var hired bool
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXISTS (
			SELECT 1 FROM bids WHERE gig_id = ? AND status = ?
		)
	`, gigID, model.BidStatusHired).Scan(&hired).Error
	if err != nil {
		return false, err
	}
	return hired, nil
}

func escapeLike(input string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(input)
}
