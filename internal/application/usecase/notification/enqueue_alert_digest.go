// Package notification contains alert digest notification use cases.
package notification

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/application/usecase/dashboard"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// EnqueueAlertDigestInput represents the input for an alert digest request.
type EnqueueAlertDigestInput struct {
	UserID    uuid.UUID
	PlannerID uuid.UUID
	Today     time.Time
}

// EnqueueAlertDigestOutput represents the output of an alert digest request.
type EnqueueAlertDigestOutput struct {
	Queued     bool
	AlertCount int
}

// EnqueueAlertDigestUseCase renders the planner's current alerts into an
// email and queues it for the background sender. Nothing is queued when
// there are no alerts or the user has no email on file.
type EnqueueAlertDigestUseCase struct {
	userRepo       adapter.UserRepository
	buildDashboard *dashboard.BuildDashboardUseCase
	emailQueue     adapter.EmailQueueRepository
}

// NewEnqueueAlertDigestUseCase creates a new EnqueueAlertDigestUseCase instance.
func NewEnqueueAlertDigestUseCase(
	userRepo adapter.UserRepository,
	buildDashboard *dashboard.BuildDashboardUseCase,
	emailQueue adapter.EmailQueueRepository,
) *EnqueueAlertDigestUseCase {
	return &EnqueueAlertDigestUseCase{
		userRepo:       userRepo,
		buildDashboard: buildDashboard,
		emailQueue:     emailQueue,
	}
}

// Execute computes the alerts and queues the digest email.
func (uc *EnqueueAlertDigestUseCase) Execute(ctx context.Context, input EnqueueAlertDigestInput) (*EnqueueAlertDigestOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	built, err := uc.buildDashboard.Execute(ctx, dashboard.BuildDashboardInput{
		UserID:    input.UserID,
		PlannerID: input.PlannerID,
		Today:     input.Today,
	})
	if err != nil {
		return nil, err
	}

	if len(built.Alerts) == 0 || user.Email == "" {
		return &EnqueueAlertDigestOutput{Queued: false}, nil
	}

	subject := fmt.Sprintf("%s: %d alert(s) on your planner", built.Planner.Name, len(built.Alerts))
	job := entity.NewEmailJob(user.Email, subject, renderDigest(built.Planner, built.Alerts))

	if err := uc.emailQueue.Enqueue(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to enqueue digest email: %w", err)
	}

	return &EnqueueAlertDigestOutput{Queued: true, AlertCount: len(built.Alerts)}, nil
}

// renderDigest builds the HTML body. Alerts are already ordered: due-soon
// first, then due-tomorrow, then the commitment breach.
func renderDigest(planner *entity.Planner, alerts []entity.Alert) string {
	var b strings.Builder
	b.WriteString("<h2>")
	b.WriteString(html.EscapeString(planner.Name))
	b.WriteString("</h2>\n<ul>\n")
	for _, alert := range alerts {
		if alert.Kind == entity.AlertDueTomorrow {
			// Already listed as a due-soon alert.
			continue
		}
		b.WriteString("<li>")
		b.WriteString(html.EscapeString(alert.Message))
		if !alert.Amount.Equal(decimal.Zero) && alert.Kind != entity.AlertCommitmentExceeded {
			b.WriteString(fmt.Sprintf(" (%s %s)", html.EscapeString(planner.Currency), alert.Amount.StringFixed(2)))
		}
		b.WriteString("</li>\n")
	}
	b.WriteString("</ul>\n")
	return b.String()
}
