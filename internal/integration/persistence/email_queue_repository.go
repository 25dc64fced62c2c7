// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	"github.com/finance-planner/backend/internal/integration/persistence/model"
)

// emailQueueRepository implements the adapter.EmailQueueRepository interface.
type emailQueueRepository struct {
	db *gorm.DB
}

// NewEmailQueueRepository creates a new email queue repository instance.
func NewEmailQueueRepository(db *gorm.DB) adapter.EmailQueueRepository {
	return &emailQueueRepository{
		db: db,
	}
}

// Enqueue stores a new pending email job.
func (r *emailQueueRepository) Enqueue(ctx context.Context, job *entity.EmailJob) error {
	jobModel := model.EmailQueueModelFromEntity(job)
	result := r.db.WithContext(ctx).Create(jobModel)
	return result.Error
}

// DequeuePending fetches up to limit pending jobs, oldest first.
func (r *emailQueueRepository) DequeuePending(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	var jobModels []model.EmailQueueModel
	result := r.db.WithContext(ctx).
		Where("status = ?", string(entity.EmailJobStatusPending)).
		Order("created_at ASC").
		Limit(limit).
		Find(&jobModels)
	if result.Error != nil {
		return nil, result.Error
	}

	jobs := make([]*entity.EmailJob, len(jobModels))
	for i, jm := range jobModels {
		jobs[i] = jm.ToEntity()
	}
	return jobs, nil
}

// MarkSent marks a job as sent.
func (r *emailQueueRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&model.EmailQueueModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(entity.EmailJobStatusSent),
			"sent_at":    now,
			"updated_at": now,
		})
	return result.Error
}

// MarkFailed records a failed delivery attempt. A job that has exhausted its
// attempts goes to the failed status and is never picked up again.
func (r *emailQueueRepository) MarkFailed(ctx context.Context, id uuid.UUID, attempts int, lastError string) error {
	status := string(entity.EmailJobStatusPending)
	if attempts >= entity.MaxEmailAttempts {
		status = string(entity.EmailJobStatusFailed)
	}

	result := r.db.WithContext(ctx).
		Model(&model.EmailQueueModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"attempts":   attempts,
			"last_error": lastError,
			"updated_at": time.Now().UTC(),
		})
	return result.Error
}
