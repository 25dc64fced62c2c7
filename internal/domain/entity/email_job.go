// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailJobStatus represents the lifecycle state of a queued email.
type EmailJobStatus string

const (
	EmailJobStatusPending EmailJobStatus = "pending"
	EmailJobStatusSent    EmailJobStatus = "sent"
	EmailJobStatusFailed  EmailJobStatus = "failed"
)

// MaxEmailAttempts is the number of delivery attempts before a job is
// marked failed for good.
const MaxEmailAttempts = 3

// EmailJob is a queued outbound email, drained by the background worker.
// The queue stores email jobs only; alerts themselves stay derived.
type EmailJob struct {
	ID        uuid.UUID
	ToEmail   string
	Subject   string
	HTMLBody  string
	Status    EmailJobStatus
	Attempts  int
	LastError string
	CreatedAt time.Time
	UpdatedAt time.Time
	SentAt    *time.Time
}

// NewEmailJob creates a pending EmailJob.
func NewEmailJob(toEmail, subject, htmlBody string) *EmailJob {
	now := time.Now().UTC()

	return &EmailJob{
		ID:        uuid.New(),
		ToEmail:   toEmail,
		Subject:   subject,
		HTMLBody:  htmlBody,
		Status:    EmailJobStatusPending,
		Attempts:  0,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
