package repository

import (
	"context"
	"errors"

	"golang-portfolio-sentiment/internal/entity"

	"gorm.io/gorm"
)

// ImpactSnapshotRepository stores the result of each impact pass.
type ImpactSnapshotRepository interface {
	Create(ctx context.Context, snapshot *entity.ImpactSnapshot) error
	Latest(ctx context.Context) (*entity.ImpactSnapshot, error)
	List(ctx context.Context, limit int) ([]entity.ImpactSnapshot, error)
}

// NewImpactSnapshotRepository creates a new instance of ImpactSnapshotRepository.
func NewImpactSnapshotRepository(db *gorm.DB) ImpactSnapshotRepository {
	return &impactSnapshotRepository{db: db}
}

type impactSnapshotRepository struct {
	db *gorm.DB
}

func (r *impactSnapshotRepository) Create(ctx context.Context, snapshot *entity.ImpactSnapshot) error {
	return r.db.WithContext(ctx).Create(snapshot).Error
}

func (r *impactSnapshotRepository) Latest(ctx context.Context) (*entity.ImpactSnapshot, error) {
	var snapshot entity.ImpactSnapshot
	if err := r.db.WithContext(ctx).Order("calculated_at DESC").First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSnapshotNotFound
		}
		return nil, err
	}
	return &snapshot, nil
}

// List returns the newest snapshots without their JSON payloads.
func (r *impactSnapshotRepository) List(ctx context.Context, limit int) ([]entity.ImpactSnapshot, error) {
	var snapshots []entity.ImpactSnapshot
	q := r.db.WithContext(ctx).
		Omit("impacts", "summary").
		Order("calculated_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&snapshots).Error; err != nil {
		return nil, err
	}
	return snapshots, nil
}
