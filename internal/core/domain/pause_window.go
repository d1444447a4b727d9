package domain

import (
	"time"

	"github.com/google/uuid"
)

// PauseWindow is an inclusive range of calendar days during which a
// campaign does not deliver and therefore does not consume budget.
// Windows may overlap each other and may extend past the flight dates;
// a day is inactive as soon as one window covers it.
type PauseWindow struct {
	ID         uuid.UUID `json:"id"`
	CampaignID int64     `json:"campaign_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Reason     string    `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
