package configs

// Alerts configures the background alert sweep. SweepSchedule accepts
// standard five-field cron expressions as well as descriptors such as
// "@hourly". An empty schedule disables the sweep entirely.
type Alerts struct {
	SweepSchedule string `env:"SWEEP_SCHEDULE" envDefault:"@hourly"`
}
