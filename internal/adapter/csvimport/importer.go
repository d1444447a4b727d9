package csvimport

import (
	"context"
	"log/slog"
	"time"

	"adpace/internal/core/domain"
	"adpace/internal/core/engine"
	"adpace/internal/telemetry"
)

// CampaignImporter is the slice of the budget service the importer uses.
type CampaignImporter interface {
	ImportCampaigns(ctx context.Context, rows []domain.CampaignImport) (int, error)
}

// Importer loads every sheet in a directory into the campaign store.
type Importer struct {
	dir     string
	uc      CampaignImporter
	metrics *telemetry.Metrics
	logger  *slog.Logger

	// now supplies the fallback date for unreadable date cells.
	now func() time.Time
}

func NewImporter(dir string, uc CampaignImporter, metrics *telemetry.Metrics, logger *slog.Logger) *Importer {
	return &Importer{
		dir:     dir,
		uc:      uc,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// Run reads the directory once and upserts everything it finds. It
// returns the number of campaigns written.
func (imp *Importer) Run(ctx context.Context) (int, error) {
	rows, err := LoadDir(imp.dir, engine.Day(imp.now()))
	if err != nil {
		return 0, err
	}
	n, err := imp.uc.ImportCampaigns(ctx, rows)
	if err != nil {
		return n, err
	}
	if imp.metrics != nil {
		imp.metrics.SetImportedCampaigns(n)
	}
	imp.logger.Info("sheet import finished", "rows", len(rows), "campaigns", n)
	return n, nil
}
