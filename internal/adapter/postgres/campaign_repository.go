package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpace/internal/core/domain"
	"adpace/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool
// for PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, customer, channel, group_path, name, status, start_date, end_date, total_budget, daily_budget, actual_spend, source_file, created_at, updated_at`

func scanCampaign(row interface{ Scan(dest ...any) error }) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.Customer,
		&c.Channel,
		&c.GroupPath,
		&c.Name,
		&c.Status,
		&c.StartDate,
		&c.EndDate,
		&c.TotalBudget,
		&c.DailyBudget,
		&c.ActualSpend,
		&c.SourceFile,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// CreateCampaign inserts a campaign and fills its id and timestamps.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	return r.pool.QueryRow(ctx, `
        INSERT INTO campaigns (customer, channel, group_path, name, status, start_date, end_date, total_budget, daily_budget, actual_spend, source_file)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at, updated_at`,
		c.Customer, c.Channel, c.GroupPath, c.Name, c.Status, c.StartDate, c.EndDate, c.TotalBudget, c.DailyBudget, c.ActualSpend, c.SourceFile,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// GetCampaign returns a campaign by id, or nil when it does not exist.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCampaigns returns campaigns matching the filter, ordered by
// customer, channel and name.
func (r *CampaignRepository) ListCampaigns(ctx context.Context, f domain.CampaignFilter) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns`
	var conds []string
	var args []interface{}
	if f.Customer != "" {
		args = append(args, f.Customer)
		conds = append(conds, fmt.Sprintf("customer = $%d", len(args)))
	}
	if f.Channel != "" {
		args = append(args, f.Channel)
		conds = append(conds, fmt.Sprintf("channel = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY customer, channel, name"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// UpdateCampaign persists the mutable fields of an existing campaign.
func (r *CampaignRepository) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	err := r.pool.QueryRow(ctx, `
        UPDATE campaigns
        SET customer = $2, channel = $3, group_path = $4, name = $5, status = $6,
            start_date = $7, end_date = $8, total_budget = $9, daily_budget = $10,
            actual_spend = $11, source_file = $12, updated_at = now()
        WHERE id = $1
        RETURNING updated_at`,
		c.ID, c.Customer, c.Channel, c.GroupPath, c.Name, c.Status, c.StartDate, c.EndDate, c.TotalBudget, c.DailyBudget, c.ActualSpend, c.SourceFile,
	).Scan(&c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return port.ErrCampaignNotFound
	}
	return err
}

// UpsertCampaign inserts or refreshes a campaign keyed by
// (customer, channel, name). The stored daily budget is left alone on
// refresh; callers recompute it against the surviving pause windows.
func (r *CampaignRepository) UpsertCampaign(ctx context.Context, c *domain.Campaign) error {
	return r.pool.QueryRow(ctx, `
        INSERT INTO campaigns (customer, channel, group_path, name, status, start_date, end_date, total_budget, daily_budget, actual_spend, source_file)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        ON CONFLICT (customer, channel, name) DO UPDATE SET
            group_path = EXCLUDED.group_path,
            status = EXCLUDED.status,
            start_date = EXCLUDED.start_date,
            end_date = EXCLUDED.end_date,
            total_budget = EXCLUDED.total_budget,
            actual_spend = EXCLUDED.actual_spend,
            source_file = EXCLUDED.source_file,
            updated_at = now()
        RETURNING id, created_at, updated_at`,
		c.Customer, c.Channel, c.GroupPath, c.Name, c.Status, c.StartDate, c.EndDate, c.TotalBudget, c.DailyBudget, c.ActualSpend, c.SourceFile,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// ListPauseWindows returns a campaign's pause windows ordered by start date.
func (r *CampaignRepository) ListPauseWindows(ctx context.Context, campaignID int64) ([]domain.PauseWindow, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, campaign_id, start_date, end_date, reason, created_at
        FROM pause_windows
        WHERE campaign_id = $1
        ORDER BY start_date, id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PauseWindow, error) {
		var w domain.PauseWindow
		err := row.Scan(&w.ID, &w.CampaignID, &w.StartDate, &w.EndDate, &w.Reason, &w.CreatedAt)
		return w, err
	})
}

// AddPauseWindow inserts a pause window.
func (r *CampaignRepository) AddPauseWindow(ctx context.Context, w *domain.PauseWindow) error {
	return r.pool.QueryRow(ctx, `
        INSERT INTO pause_windows (id, campaign_id, start_date, end_date, reason)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING created_at`,
		w.ID, w.CampaignID, w.StartDate, w.EndDate, w.Reason,
	).Scan(&w.CreatedAt)
}

// RemovePauseWindow deletes one window of the campaign.
func (r *CampaignRepository) RemovePauseWindow(ctx context.Context, campaignID int64, id uuid.UUID) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM pause_windows WHERE campaign_id = $1 AND id = $2`, campaignID, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return port.ErrPauseWindowNotFound
	}
	return nil
}

// InsertAlerts stores sweep findings inside one transaction. An alert is
// skipped when its campaign already has an unread alert of the same
// type, so repeated sweeps do not pile up duplicates.
func (r *CampaignRepository) InsertAlerts(ctx context.Context, alerts []domain.Alert) (n int, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	for _, a := range alerts {
		ct, execErr := tx.Exec(ctx, `
            INSERT INTO alerts (id, campaign_id, type, message, threshold, current_value, is_read, created_at)
            SELECT $1, $2, $3, $4, $5, $6, FALSE, $7
            WHERE NOT EXISTS (
                SELECT 1 FROM alerts WHERE campaign_id = $2 AND type = $3 AND NOT is_read
            )`,
			a.ID, a.CampaignID, a.Type, a.Message, a.Threshold, a.CurrentValue, a.CreatedAt,
		)
		if execErr != nil {
			err = execErr
			return 0, err
		}
		n += int(ct.RowsAffected())
	}
	return n, nil
}

// ListAlerts returns alerts matching the filter, newest first.
func (r *CampaignRepository) ListAlerts(ctx context.Context, f domain.AlertFilter) ([]domain.Alert, error) {
	query := `SELECT id, campaign_id, type, message, threshold, current_value, is_read, created_at FROM alerts`
	var conds []string
	var args []interface{}
	if f.CampaignID != nil {
		args = append(args, *f.CampaignID)
		conds = append(conds, fmt.Sprintf("campaign_id = $%d", len(args)))
	}
	if f.UnreadOnly {
		conds = append(conds, "NOT is_read")
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Alert, error) {
		var a domain.Alert
		err := row.Scan(&a.ID, &a.CampaignID, &a.Type, &a.Message, &a.Threshold, &a.CurrentValue, &a.IsRead, &a.CreatedAt)
		return a, err
	})
}

// MarkAlertRead flags one alert as read.
func (r *CampaignRepository) MarkAlertRead(ctx context.Context, id uuid.UUID) error {
	ct, err := r.pool.Exec(ctx, `UPDATE alerts SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return port.ErrAlertNotFound
	}
	return nil
}
