// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-planner/backend/internal/application/usecase/dashboard"
	"github.com/finance-planner/backend/internal/domain/entity"
)

// MonthSummaryResponse represents one month's aggregation in API responses.
type MonthSummaryResponse struct {
	Month        string             `json:"month"`
	TotalIncome  string             `json:"total_income"`
	TotalExpense string             `json:"total_expense"`
	Net          string             `json:"net"`
	Entries      []EntryRefResponse `json:"entries"`
}

// EntryRefResponse represents a reference to a contributing ledger record.
type EntryRefResponse struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// KpiResponse represents the dashboard KPI set in API responses.
type KpiResponse struct {
	Previous  MonthSummaryResponse `json:"previous"`
	Current   MonthSummaryResponse `json:"current"`
	Projected MonthSummaryResponse `json:"projected"`

	CommitmentRatio    *string `json:"commitment_ratio"`
	CommitmentLimit    string  `json:"commitment_limit"`
	CommitmentExceeded bool    `json:"commitment_exceeded"`
}

// AlertResponse represents a derived alert in API responses.
type AlertResponse struct {
	Kind        string            `json:"kind"`
	Message     string            `json:"message"`
	Entry       *EntryRefResponse `json:"entry,omitempty"`
	Description string            `json:"description,omitempty"`
	Amount      string            `json:"amount"`
	DueDate     string            `json:"due_date,omitempty"`
	DaysUntil   int               `json:"days_until"`
}

// BalancesResponse represents the accumulated balances in API responses.
type BalancesResponse struct {
	Current   string `json:"current"`
	Projected string `json:"projected"`
}

// DashboardResponse represents the full dashboard in API responses.
type DashboardResponse struct {
	Planner  PlannerResponse  `json:"planner"`
	Kpis     KpiResponse      `json:"kpis"`
	Alerts   []AlertResponse  `json:"alerts"`
	Balances BalancesResponse `json:"balances"`
}

// DigestResponse represents the response for an alert digest enqueue.
type DigestResponse struct {
	Queued     bool `json:"queued"`
	AlertCount int  `json:"alert_count"`
}

// ToDashboardResponse converts a dashboard build output to a DashboardResponse DTO.
func ToDashboardResponse(output *dashboard.BuildDashboardOutput) DashboardResponse {
	return DashboardResponse{
		Planner:  ToPlannerResponse(output.Planner),
		Kpis:     toKpiResponse(output.Kpis),
		Alerts:   toAlertResponses(output.Alerts),
		Balances: BalancesResponse{
			Current:   output.Balances.Current.String(),
			Projected: output.Balances.Projected.String(),
		},
	}
}

func toKpiResponse(kpis *entity.KpiSet) KpiResponse {
	response := KpiResponse{
		Previous:           toMonthSummaryResponse(kpis.Previous),
		Current:            toMonthSummaryResponse(kpis.Current),
		Projected:          toMonthSummaryResponse(kpis.Projected),
		CommitmentLimit:    kpis.CommitmentLimit.String(),
		CommitmentExceeded: kpis.CommitmentExceeded,
	}
	if kpis.CommitmentRatio != nil {
		ratio := kpis.CommitmentRatio.String()
		response.CommitmentRatio = &ratio
	}
	return response
}

func toMonthSummaryResponse(summary *entity.MonthSummary) MonthSummaryResponse {
	response := MonthSummaryResponse{
		Month:        summary.Month.String(),
		TotalIncome:  summary.TotalIncome.String(),
		TotalExpense: summary.TotalExpense.String(),
		Net:          summary.Net.String(),
		Entries:      make([]EntryRefResponse, 0, len(summary.Entries)),
	}
	for _, ref := range summary.Entries {
		response.Entries = append(response.Entries, EntryRefResponse{
			Kind: string(ref.Kind),
			ID:   ref.ID.String(),
		})
	}
	return response
}

func toAlertResponses(alerts []entity.Alert) []AlertResponse {
	responses := make([]AlertResponse, 0, len(alerts))
	for _, alert := range alerts {
		response := AlertResponse{
			Kind:        string(alert.Kind),
			Message:     alert.Message,
			Description: alert.Description,
			Amount:      alert.Amount.String(),
			DaysUntil:   alert.DaysUntil,
		}
		if alert.Entry != nil {
			response.Entry = &EntryRefResponse{
				Kind: string(alert.Entry.Kind),
				ID:   alert.Entry.ID.String(),
			}
		}
		if !alert.DueDate.IsZero() {
			response.DueDate = alert.DueDate.Format("2006-01-02")
		}
		responses = append(responses, response)
	}
	return responses
}
