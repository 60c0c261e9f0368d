package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/abhidesai17/gigflow/internal/model"
	"github.com/abhidesai17/gigflow/internal/store"
)

type GigRepository struct {
	db *gorm.DB
}

func NewGigRepository(db *gorm.DB) *GigRepository {
	return &GigRepository{db: db}
}

func (r *GigRepository) Create(ctx context.Context, gig *model.Gig) error {
	var saved model.Gig
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO gigs (owner_id, title, description, budget, status)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, owner_id, title, description, budget, status, created_at
	`, gig.OwnerID, gig.Title, gig.Description, gig.Budget, gig.Status).Scan(&saved).Error
	if err != nil {
		return err
	}
	*gig = saved
	return nil
}

func (r *GigRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Gig, error) {
	var gig model.Gig
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, owner_id, title, description, budget, status, created_at
		FROM gigs
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&gig).Error
	if err != nil {
		return nil, err
	}
	if gig.ID == uuid.Nil {
		return nil, store.ErrNotFound
	}
	return &gig, nil
}

func (r *GigRepository) ListOpen(ctx context.Context, search string) ([]model.Gig, error) {
	query := `
		SELECT id, owner_id, title, description, budget, status, created_at
		FROM gigs
		WHERE status = ?
	`
	args := []interface{}{model.GigStatusOpen}
	if search != "" {
		query += " AND title ILIKE ?"
		args = append(args, "%"+escapeLike(search)+"%")
	}
	query += " ORDER BY created_at DESC"

	var gigs []model.Gig
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&gigs).Error; err != nil {
		return nil, err
	}
	return gigs, nil
}

// CompareAndSetStatus is the serialization point of the hire protocol: the
// single-row conditional UPDATE applies atomically only while the current
// status still equals `from`.
func (r *GigRepository) CompareAndSetStatus(ctx context.Context, id uuid.UUID, from, to model.GigStatus) (*model.Gig, error) {
	var gig model.Gig
	err := r.db.WithContext(ctx).Raw(`
		UPDATE gigs
		SET status = ?
		WHERE id = ? AND status = ?
		RETURNING id, owner_id, title, description, budget, status, created_at
	`, to, id, from).Scan(&gig).Error
	if err != nil {
		return nil, err
	}
	if gig.ID == uuid.Nil {
		return nil, store.ErrStatusMismatch
	}
	return &gig, nil
}
