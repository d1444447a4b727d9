package port

import "context"

// SheetImporter re-reads the configured budget sheet directory and
// upserts its rows. It returns the number of campaigns written.
type SheetImporter interface {
	Run(ctx context.Context) (int, error)
}
