package domain

import "time"

// HarvestStats holds statistics about one platform's harvest run.
type HarvestStats struct {
	Platform  string
	Fetched   int
	Inserted  int
	Updated   int
	Errors    int
	Published int
	Duration  time.Duration
}

type HarvestState struct {
	ID             int64     `db:"id"`
	Platform       string    `db:"platform"`
	LastHarvestAt  time.Time `db:"last_harvest_at"`
	TotalHarvested int64     `db:"total_harvested"`
}
