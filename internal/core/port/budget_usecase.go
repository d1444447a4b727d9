package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adpace/internal/core/domain"
)

// BudgetUseCase defines the business operations exposed by the pacing
// service. This interface represents the primary port into the
// application domain. Mock implementations can be generated from this
// interface for testing.
type BudgetUseCase interface {
	// CreateCampaign validates and stores a campaign, deriving its daily
	// budget from the flight dates.
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (*domain.Campaign, error)
	// GetCampaign returns one campaign together with its pause windows.
	GetCampaign(ctx context.Context, id int64) (*CampaignDetail, error)
	// ListCampaigns returns campaigns matching the filter.
	ListCampaigns(ctx context.Context, f domain.CampaignFilter) ([]domain.Campaign, error)
	// UpdateBudget replaces the total budget and recomputes the daily one.
	UpdateBudget(ctx context.Context, id int64, total float64) (*domain.Campaign, error)
	// RecordSpend adds delivered spend to the campaign's running total.
	RecordSpend(ctx context.Context, id int64, amount float64) (*domain.Campaign, error)

	// AddPauseWindow attaches a pause window and recomputes the daily budget.
	AddPauseWindow(ctx context.Context, id int64, req PauseWindowReq) (*domain.PauseWindow, error)
	// RemovePauseWindow detaches a pause window and recomputes the daily budget.
	RemovePauseWindow(ctx context.Context, id int64, windowID uuid.UUID) error

	// Forecast projects the campaign's final spend as of today.
	Forecast(ctx context.Context, id int64) (*domain.ForecastResult, error)
	// CheckAlerts evaluates the alert rules for one campaign as of today.
	CheckAlerts(ctx context.Context, id int64) (*domain.AlertCheck, error)
	// Simulate evaluates a hypothetical configuration without persisting it.
	Simulate(ctx context.Context, id int64, in domain.SimulationInput) (*domain.SimulationOutput, error)
	// TrackCampaigns returns campaigns with their forecast and alert state,
	// all evaluated against the same day.
	TrackCampaigns(ctx context.Context, f domain.CampaignFilter) ([]TrackedCampaign, error)
	// Overview aggregates budget and spend across matching campaigns.
	Overview(ctx context.Context, f domain.CampaignFilter) (*domain.Overview, error)

	// SweepAlerts evaluates every campaign still running and persists the
	// findings. It returns the number of alerts stored.
	SweepAlerts(ctx context.Context) (int, error)
	// ImportCampaigns upserts normalized spreadsheet rows and returns the
	// number of campaigns written.
	ImportCampaigns(ctx context.Context, rows []domain.CampaignImport) (int, error)
	// ListAlerts returns persisted alerts matching the filter.
	ListAlerts(ctx context.Context, f domain.AlertFilter) ([]domain.Alert, error)
	// MarkAlertRead acknowledges one persisted alert.
	MarkAlertRead(ctx context.Context, id uuid.UUID) error
}

// CreateCampaignReq carries the fields needed to create a campaign.
// Dates are calendar days; times of day are ignored.
type CreateCampaignReq struct {
	Customer    string
	Channel     string
	GroupPath   string
	Name        string
	Status      domain.Status
	StartDate   time.Time
	EndDate     time.Time
	TotalBudget float64
}

// PauseWindowReq carries the bounds of a new pause window, inclusive on
// both ends.
type PauseWindowReq struct {
	StartDate time.Time
	EndDate   time.Time
	Reason    string
}

// CampaignDetail bundles a campaign with its pause windows for read APIs.
type CampaignDetail struct {
	Campaign     domain.Campaign      `json:"campaign"`
	PauseWindows []domain.PauseWindow `json:"pause_windows"`
}

// TrackedCampaign is one row of the spend tracking board: the campaign
// plus its forecast and alert evaluation.
type TrackedCampaign struct {
	Campaign domain.Campaign       `json:"campaign"`
	Forecast domain.ForecastResult `json:"forecast"`
	Alerts   domain.AlertCheck     `json:"alerts"`
}
