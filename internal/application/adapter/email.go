// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// EmailQueueRepository defines the interface for the outbound email queue.
type EmailQueueRepository interface {
	// Enqueue stores a new pending email job.
	Enqueue(ctx context.Context, job *entity.EmailJob) error

	// DequeuePending fetches up to limit pending jobs, oldest first.
	DequeuePending(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// MarkSent marks a job as sent.
	MarkSent(ctx context.Context, id uuid.UUID) error

	// MarkFailed records a failed delivery attempt; jobs exceeding the
	// attempt limit stay failed for good.
	MarkFailed(ctx context.Context, id uuid.UUID, attempts int, lastError string) error
}

// EmailSender defines the interface for the outbound email provider.
type EmailSender interface {
	// Send delivers a single email.
	Send(ctx context.Context, toEmail, subject, htmlBody string) error
}
