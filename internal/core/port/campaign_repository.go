package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"adpace/internal/core/domain"
)

var (
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrPauseWindowNotFound = errors.New("pause window not found")
	ErrAlertNotFound       = errors.New("alert not found")
	ErrInvalidInput        = errors.New("invalid input")
)

// CampaignRepository defines the persistence layer for campaigns, pause
// windows and persisted alerts. It is an outbound port in hexagonal
// architecture. Implementations must be concurrency-safe.
type CampaignRepository interface {
	// CreateCampaign stores a new campaign and fills its ID and timestamps.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns a campaign by id, or nil when it does not exist.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// ListCampaigns returns campaigns matching the filter, ordered by
	// customer, channel and name.
	ListCampaigns(ctx context.Context, f domain.CampaignFilter) ([]domain.Campaign, error)
	// UpdateCampaign persists the mutable fields of an existing campaign.
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
	// UpsertCampaign inserts or refreshes a campaign keyed by
	// (customer, channel, name) and fills its ID and timestamps.
	UpsertCampaign(ctx context.Context, c *domain.Campaign) error

	// ListPauseWindows returns a campaign's pause windows ordered by start date.
	ListPauseWindows(ctx context.Context, campaignID int64) ([]domain.PauseWindow, error)
	// AddPauseWindow stores a new pause window.
	AddPauseWindow(ctx context.Context, w *domain.PauseWindow) error
	// RemovePauseWindow deletes one window of the campaign. It returns
	// ErrPauseWindowNotFound when no such window exists.
	RemovePauseWindow(ctx context.Context, campaignID int64, id uuid.UUID) error

	// InsertAlerts stores sweep findings, skipping any alert whose campaign
	// already has an unread alert of the same type. It returns the number
	// actually inserted.
	InsertAlerts(ctx context.Context, alerts []domain.Alert) (int, error)
	// ListAlerts returns alerts matching the filter, newest first.
	ListAlerts(ctx context.Context, f domain.AlertFilter) ([]domain.Alert, error)
	// MarkAlertRead flags one alert as read. It returns ErrAlertNotFound
	// when no such alert exists.
	MarkAlertRead(ctx context.Context, id uuid.UUID) error
}
