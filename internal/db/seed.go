package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpace/internal/core/domain"
	"adpace/internal/core/engine"
)

// Seed inserts a small demo portfolio anchored to today so a fresh
// database has campaigns in every interesting state. Re-running it is
// harmless.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	today := engine.Day(time.Now())

	type pause struct {
		startOffset, endOffset int
		reason                 string
	}
	type campaign struct {
		customer, channel, group, name string
		status                         domain.Status
		startOffset, endOffset         int
		total, spend                   float64
		pauses                         []pause
	}

	demo := []campaign{
		{
			customer: "Acme Robotics", channel: domain.ChannelLinkedIn,
			group: "Acme Robotics / Fleet", name: "Fleet Awareness Spotlight",
			status: domain.StatusActive, startOffset: -20, endOffset: 40,
			total: 45000, spend: 12500,
			pauses: []pause{{-8, -6, "creative refresh"}},
		},
		{
			customer: "Acme Robotics", channel: domain.ChannelGoogle,
			group: "Acme Robotics / Fleet", name: "Fleet Search Always-On",
			status: domain.StatusActive, startOffset: -10, endOffset: 50,
			total: 30000, spend: 6800,
		},
		{
			customer: "Nordic Retail Group", channel: domain.ChannelMeta,
			group: "Nordic Retail Group / Stores", name: "Store Retargeting",
			status: domain.StatusActive, startOffset: -30, endOffset: 5,
			total: 12000, spend: 11400,
		},
		{
			customer: "Nordic Retail Group", channel: domain.ChannelGoogle,
			group: "Nordic Retail Group / Stores", name: "Stores PMax",
			status: domain.StatusPaused, startOffset: -15, endOffset: 45,
			total: 24000, spend: 4200,
			pauses: []pause{{0, 6, "assortment change"}},
		},
		{
			customer: "Helios Energy", channel: domain.ChannelLinkedIn,
			group: "Helios Energy / Brand", name: "Thought Leadership Q4",
			status: domain.StatusActive, startOffset: 10, endOffset: 70,
			total: 60000, spend: 0,
		},
		{
			customer: "Helios Energy", channel: domain.ChannelOther,
			group: "Helios Energy / Brand", name: "Podcast Sponsorship",
			status: domain.StatusStopped, startOffset: -60, endOffset: -10,
			total: 8000, spend: 7400,
		},
	}

	for _, c := range demo {
		start := today.AddDate(0, 0, c.startOffset)
		end := today.AddDate(0, 0, c.endOffset)

		windows := make([]domain.PauseWindow, 0, len(c.pauses))
		for _, p := range c.pauses {
			windows = append(windows, domain.PauseWindow{
				StartDate: today.AddDate(0, 0, p.startOffset),
				EndDate:   today.AddDate(0, 0, p.endOffset),
			})
		}
		daily := engine.DailyBudget(c.total, start, end, windows)

		var id int64
		err := pool.QueryRow(ctx, `INSERT INTO campaigns
    (customer, channel, group_path, name, status, start_date, end_date,
     total_budget, daily_budget, actual_spend, source_file, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,'',now(),now())
ON CONFLICT (customer, channel, name) DO UPDATE SET updated_at = now()
RETURNING id`,
			c.customer, c.channel, c.group, c.name, c.status, start, end,
			c.total, daily, c.spend).Scan(&id)
		if err != nil {
			return err
		}

		for i, p := range c.pauses {
			_, err = pool.Exec(ctx, `INSERT INTO pause_windows
    (id, campaign_id, start_date, end_date, reason, created_at)
VALUES ($1,$2,$3,$4,$5,now())
ON CONFLICT (campaign_id, start_date, end_date) DO NOTHING`,
				uuid.New(), id, windows[i].StartDate, windows[i].EndDate, p.reason)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
