// Package model defines database models for persistence layer.
package model

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// EmailQueueModel represents the email_queue table in the database.
type EmailQueueModel struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey"`
	ToEmail   string       `gorm:"type:varchar(255);not null"`
	Subject   string       `gorm:"type:varchar(500);not null"`
	HTMLBody  string       `gorm:"type:text;not null"`
	Status    string       `gorm:"type:varchar(20);not null;default:'pending';index"`
	Attempts  int          `gorm:"not null;default:0"`
	LastError string       `gorm:"type:text"`
	CreatedAt time.Time    `gorm:"not null"`
	UpdatedAt time.Time    `gorm:"not null"`
	SentAt    sql.NullTime `gorm:"type:timestamp"`
}

// TableName returns the table name for the EmailQueueModel.
func (EmailQueueModel) TableName() string {
	return "email_queue"
}

// ToEntity converts an EmailQueueModel to a domain EmailJob entity.
func (m *EmailQueueModel) ToEntity() *entity.EmailJob {
	var sentAt *time.Time
	if m.SentAt.Valid {
		sentAt = &m.SentAt.Time
	}

	return &entity.EmailJob{
		ID:        m.ID,
		ToEmail:   m.ToEmail,
		Subject:   m.Subject,
		HTMLBody:  m.HTMLBody,
		Status:    entity.EmailJobStatus(m.Status),
		Attempts:  m.Attempts,
		LastError: m.LastError,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		SentAt:    sentAt,
	}
}

// EmailQueueModelFromEntity creates an EmailQueueModel from a domain EmailJob entity.
func EmailQueueModelFromEntity(job *entity.EmailJob) *EmailQueueModel {
	var sentAt sql.NullTime
	if job.SentAt != nil {
		sentAt = sql.NullTime{Time: *job.SentAt, Valid: true}
	}

	return &EmailQueueModel{
		ID:        job.ID,
		ToEmail:   job.ToEmail,
		Subject:   job.Subject,
		HTMLBody:  job.HTMLBody,
		Status:    string(job.Status),
		Attempts:  job.Attempts,
		LastError: job.LastError,
		CreatedAt: job.CreatedAt,
		UpdatedAt: job.UpdatedAt,
		SentAt:    sentAt,
	}
}
