package configs

// Importer configures the budget sheet import. Dir points at a local
// directory of CSV exports. When Dir is empty the import endpoint is
// disabled and no files are read.
type Importer struct {
	// Dir is the directory scanned for .csv sheet exports.
	Dir string `env:"DIR" envDefault:""`
	// Watch re-runs the import whenever a CSV file in Dir changes.
	Watch bool `env:"WATCH" envDefault:"false"`
}
