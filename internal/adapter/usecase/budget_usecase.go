package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"adpace/internal/core/domain"
	"adpace/internal/core/engine"
	"adpace/internal/core/port"
)

// BudgetUseCase provides the business logic for budget pacing. It
// orchestrates the repository and the pure engine to implement the
// BudgetUseCase interface.
type BudgetUseCase struct {
	repo port.CampaignRepository

	// now supplies the reference time. Each operation reads it once, so
	// every number inside one response refers to the same day. Tests
	// replace it with a fixed clock.
	now func() time.Time
}

// NewBudgetUseCase creates a new usecase backed by the given repository.
func NewBudgetUseCase(repo port.CampaignRepository) *BudgetUseCase {
	return &BudgetUseCase{repo: repo, now: time.Now}
}

// CreateCampaign validates and stores a campaign. The daily budget is
// derived from the flight dates; there are no pause windows yet.
func (u *BudgetUseCase) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (*domain.Campaign, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: campaign name is required", port.ErrInvalidInput)
	}
	if req.Customer == "" {
		return nil, fmt.Errorf("%w: customer is required", port.ErrInvalidInput)
	}
	start, end := engine.Day(req.StartDate), engine.Day(req.EndDate)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date before start date", port.ErrInvalidInput)
	}
	if req.TotalBudget < 0 {
		return nil, fmt.Errorf("%w: total budget must not be negative", port.ErrInvalidInput)
	}

	c := &domain.Campaign{
		Customer:    req.Customer,
		Channel:     req.Channel,
		GroupPath:   req.GroupPath,
		Name:        req.Name,
		Status:      req.Status,
		StartDate:   start,
		EndDate:     end,
		TotalBudget: req.TotalBudget,
		DailyBudget: engine.DailyBudget(req.TotalBudget, start, end, nil),
	}
	if c.Channel == "" {
		c.Channel = domain.ChannelOther
	}
	if c.Status == "" {
		c.Status = domain.StatusActive
	}
	if err := u.repo.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetCampaign returns one campaign with its pause windows.
func (u *BudgetUseCase) GetCampaign(ctx context.Context, id int64) (*port.CampaignDetail, error) {
	c, windows, err := u.campaignWithWindows(ctx, id)
	if err != nil {
		return nil, err
	}
	return &port.CampaignDetail{Campaign: *c, PauseWindows: windows}, nil
}

// ListCampaigns returns campaigns matching the filter.
func (u *BudgetUseCase) ListCampaigns(ctx context.Context, f domain.CampaignFilter) ([]domain.Campaign, error) {
	return u.repo.ListCampaigns(ctx, f)
}

// UpdateBudget replaces the total budget and recomputes the daily one
// from the current flight dates and pause windows.
func (u *BudgetUseCase) UpdateBudget(ctx context.Context, id int64, total float64) (*domain.Campaign, error) {
	if total < 0 {
		return nil, fmt.Errorf("%w: total budget must not be negative", port.ErrInvalidInput)
	}
	c, windows, err := u.campaignWithWindows(ctx, id)
	if err != nil {
		return nil, err
	}
	c.TotalBudget = total
	c.DailyBudget = engine.DailyBudget(c.TotalBudget, c.StartDate, c.EndDate, windows)
	if err := u.repo.UpdateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RecordSpend adds delivered spend to the campaign's running total. The
// daily budget stays as planned; spend does not redistribute it.
func (u *BudgetUseCase) RecordSpend(ctx context.Context, id int64, amount float64) (*domain.Campaign, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: spend amount must not be negative", port.ErrInvalidInput)
	}
	c, err := u.campaign(ctx, id)
	if err != nil {
		return nil, err
	}
	c.ActualSpend += amount
	if err := u.repo.UpdateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// AddPauseWindow attaches a pause window to the campaign and recomputes
// the daily budget over the shrunken schedule.
func (u *BudgetUseCase) AddPauseWindow(ctx context.Context, id int64, req port.PauseWindowReq) (*domain.PauseWindow, error) {
	start, end := engine.Day(req.StartDate), engine.Day(req.EndDate)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: window end before window start", port.ErrInvalidInput)
	}
	c, err := u.campaign(ctx, id)
	if err != nil {
		return nil, err
	}

	w := &domain.PauseWindow{
		ID:         uuid.New(),
		CampaignID: c.ID,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
	}
	if err := u.repo.AddPauseWindow(ctx, w); err != nil {
		return nil, err
	}
	if err := u.refreshDailyBudget(ctx, c); err != nil {
		return nil, err
	}
	return w, nil
}

// RemovePauseWindow detaches a pause window and recomputes the daily
// budget over the regained schedule.
func (u *BudgetUseCase) RemovePauseWindow(ctx context.Context, id int64, windowID uuid.UUID) error {
	c, err := u.campaign(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.RemovePauseWindow(ctx, c.ID, windowID); err != nil {
		return err
	}
	return u.refreshDailyBudget(ctx, c)
}

// Forecast projects the campaign's final spend as of today.
func (u *BudgetUseCase) Forecast(ctx context.Context, id int64) (*domain.ForecastResult, error) {
	c, windows, err := u.campaignWithWindows(ctx, id)
	if err != nil {
		return nil, err
	}
	res := engine.Forecast(*c, windows, u.now())
	return &res, nil
}

// CheckAlerts evaluates the alert rules for one campaign as of today.
func (u *BudgetUseCase) CheckAlerts(ctx context.Context, id int64) (*domain.AlertCheck, error) {
	c, windows, err := u.campaignWithWindows(ctx, id)
	if err != nil {
		return nil, err
	}
	check := engine.CheckAlerts(*c, windows, u.now())
	return &check, nil
}

// Simulate evaluates a hypothetical configuration. Nothing is persisted.
func (u *BudgetUseCase) Simulate(ctx context.Context, id int64, in domain.SimulationInput) (*domain.SimulationOutput, error) {
	c, windows, err := u.campaignWithWindows(ctx, id)
	if err != nil {
		return nil, err
	}
	out := engine.Simulate(*c, windows, in, u.now())
	return &out, nil
}

// TrackCampaigns returns the spend tracking board. All rows are
// evaluated against the same day so the board is internally consistent.
func (u *BudgetUseCase) TrackCampaigns(ctx context.Context, f domain.CampaignFilter) ([]port.TrackedCampaign, error) {
	campaigns, err := u.repo.ListCampaigns(ctx, f)
	if err != nil {
		return nil, err
	}
	today := u.now()

	tracked := make([]port.TrackedCampaign, 0, len(campaigns))
	for _, c := range campaigns {
		windows, err := u.repo.ListPauseWindows(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		tracked = append(tracked, port.TrackedCampaign{
			Campaign: c,
			Forecast: engine.Forecast(c, windows, today),
			Alerts:   engine.CheckAlerts(c, windows, today),
		})
	}
	return tracked, nil
}

// Overview aggregates budget and spend across matching campaigns with
// per-channel and per-customer rollups, largest budgets first.
func (u *BudgetUseCase) Overview(ctx context.Context, f domain.CampaignFilter) (*domain.Overview, error) {
	campaigns, err := u.repo.ListCampaigns(ctx, f)
	if err != nil {
		return nil, err
	}

	ov := &domain.Overview{Campaigns: len(campaigns)}
	byChannel := make(map[string]*domain.ChannelRollup)
	byCustomer := make(map[string]*domain.CustomerRollup)
	for _, c := range campaigns {
		ov.TotalBudget += c.TotalBudget
		ov.TotalSpend += c.ActualSpend
		if c.Status == domain.StatusActive {
			ov.ActiveCampaigns++
		}

		ch := byChannel[c.Channel]
		if ch == nil {
			ch = &domain.ChannelRollup{Channel: c.Channel}
			byChannel[c.Channel] = ch
		}
		ch.Campaigns++
		ch.TotalBudget += c.TotalBudget
		ch.TotalSpend += c.ActualSpend

		cu := byCustomer[c.Customer]
		if cu == nil {
			cu = &domain.CustomerRollup{Customer: c.Customer}
			byCustomer[c.Customer] = cu
		}
		cu.Campaigns++
		cu.TotalBudget += c.TotalBudget
		cu.TotalSpend += c.ActualSpend
	}
	ov.UtilizationPercent = utilization(ov.TotalSpend, ov.TotalBudget)

	for _, ch := range byChannel {
		ch.UtilizationPercent = utilization(ch.TotalSpend, ch.TotalBudget)
		ov.Channels = append(ov.Channels, *ch)
	}
	for _, cu := range byCustomer {
		cu.UtilizationPercent = utilization(cu.TotalSpend, cu.TotalBudget)
		ov.Customers = append(ov.Customers, *cu)
	}
	sort.Slice(ov.Channels, func(i, j int) bool {
		if ov.Channels[i].TotalBudget != ov.Channels[j].TotalBudget {
			return ov.Channels[i].TotalBudget > ov.Channels[j].TotalBudget
		}
		return ov.Channels[i].Channel < ov.Channels[j].Channel
	})
	sort.Slice(ov.Customers, func(i, j int) bool {
		if ov.Customers[i].TotalBudget != ov.Customers[j].TotalBudget {
			return ov.Customers[i].TotalBudget > ov.Customers[j].TotalBudget
		}
		return ov.Customers[i].Customer < ov.Customers[j].Customer
	})
	return ov, nil
}

// SweepAlerts evaluates every campaign that is not stopped and persists
// the triggered messages. Campaigns that already carry an unread alert
// of the same type are skipped by the repository.
func (u *BudgetUseCase) SweepAlerts(ctx context.Context) (int, error) {
	campaigns, err := u.repo.ListCampaigns(ctx, domain.CampaignFilter{})
	if err != nil {
		return 0, err
	}
	now := u.now()

	var alerts []domain.Alert
	for _, c := range campaigns {
		if c.Status == domain.StatusStopped {
			continue
		}
		windows, err := u.repo.ListPauseWindows(ctx, c.ID)
		if err != nil {
			return 0, err
		}
		check := engine.CheckAlerts(c, windows, now)
		for _, m := range check.Messages {
			alerts = append(alerts, domain.Alert{
				ID:           uuid.New(),
				CampaignID:   c.ID,
				Type:         m.Type,
				Message:      m.Text,
				Threshold:    m.Threshold,
				CurrentValue: m.CurrentValue,
				CreatedAt:    now,
			})
		}
	}
	if len(alerts) == 0 {
		return 0, nil
	}
	return u.repo.InsertAlerts(ctx, alerts)
}

// ImportCampaigns upserts normalized spreadsheet rows. Existing pause
// windows survive the refresh, so the daily budget is recomputed against
// them after each upsert.
func (u *BudgetUseCase) ImportCampaigns(ctx context.Context, rows []domain.CampaignImport) (int, error) {
	n := 0
	for _, row := range rows {
		c := &domain.Campaign{
			Customer:    row.Customer,
			Channel:     row.Channel,
			GroupPath:   row.GroupPath,
			Name:        row.Name,
			Status:      row.Status,
			StartDate:   engine.Day(row.StartDate),
			EndDate:     engine.Day(row.EndDate),
			TotalBudget: row.TotalBudget,
			ActualSpend: row.ActualSpend,
			SourceFile:  row.SourceFile,
		}
		if err := u.repo.UpsertCampaign(ctx, c); err != nil {
			return n, fmt.Errorf("upsert %s/%s: %w", row.Customer, row.Name, err)
		}
		if err := u.refreshDailyBudget(ctx, c); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// ListAlerts returns persisted alerts matching the filter.
func (u *BudgetUseCase) ListAlerts(ctx context.Context, f domain.AlertFilter) ([]domain.Alert, error) {
	return u.repo.ListAlerts(ctx, f)
}

// MarkAlertRead acknowledges one persisted alert.
func (u *BudgetUseCase) MarkAlertRead(ctx context.Context, id uuid.UUID) error {
	return u.repo.MarkAlertRead(ctx, id)
}

func (u *BudgetUseCase) campaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrCampaignNotFound
	}
	return c, nil
}

func (u *BudgetUseCase) campaignWithWindows(ctx context.Context, id int64) (*domain.Campaign, []domain.PauseWindow, error) {
	c, err := u.campaign(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	windows, err := u.repo.ListPauseWindows(ctx, c.ID)
	if err != nil {
		return nil, nil, err
	}
	return c, windows, nil
}

// refreshDailyBudget recomputes the stored daily budget from the
// campaign's current windows and persists it.
func (u *BudgetUseCase) refreshDailyBudget(ctx context.Context, c *domain.Campaign) error {
	windows, err := u.repo.ListPauseWindows(ctx, c.ID)
	if err != nil {
		return err
	}
	c.DailyBudget = engine.DailyBudget(c.TotalBudget, c.StartDate, c.EndDate, windows)
	return u.repo.UpdateCampaign(ctx, c)
}

func utilization(spend, budget float64) float64 {
	if budget <= 0 {
		return 0
	}
	return spend / budget * 100
}
