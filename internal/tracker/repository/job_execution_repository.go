package repository

import (
	"context"

	"golang-portfolio-sentiment/internal/entity"

	"gorm.io/gorm"
)

// JobExecutionRepository stores the history of background job runs.
type JobExecutionRepository interface {
	Create(ctx context.Context, execution *entity.JobExecution) error
	Update(ctx context.Context, execution *entity.JobExecution) error
	List(ctx context.Context, jobType string, limit int) ([]entity.JobExecution, error)
}

// NewJobExecutionRepository creates a new GORM-based job execution repository.
func NewJobExecutionRepository(db *gorm.DB) JobExecutionRepository {
	return &jobExecutionRepository{db: db}
}

type jobExecutionRepository struct {
	db *gorm.DB
}

func (r *jobExecutionRepository) Create(ctx context.Context, execution *entity.JobExecution) error {
	return r.db.WithContext(ctx).Create(execution).Error
}

func (r *jobExecutionRepository) Update(ctx context.Context, execution *entity.JobExecution) error {
	return r.db.WithContext(ctx).Save(execution).Error
}

// List returns the newest executions first, optionally filtered by job type.
func (r *jobExecutionRepository) List(ctx context.Context, jobType string, limit int) ([]entity.JobExecution, error) {
	var executions []entity.JobExecution
	query := r.db.WithContext(ctx).Order("started_at desc")
	if jobType != "" {
		query = query.Where("job_type = ?", jobType)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&executions).Error; err != nil {
		return nil, err
	}
	return executions, nil
}
