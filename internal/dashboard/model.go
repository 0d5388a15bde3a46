package dashboard

import "gorm.io/datatypes"

// The tables below belong to the scraper/matcher pipeline. This service
// only reads them; the structs are the typed schema contract shared by the
// queries and the test fixtures.

// Job is a scraped posting.
type Job struct {
	ID        int64   `gorm:"primaryKey"`
	Title     string  `gorm:"type:text"`
	Company   string  `gorm:"type:text"`
	Location  *string `gorm:"type:text"`
	URL       string  `gorm:"column:url;type:text"`
	ScrapedAt *string `gorm:"type:text"`
}

func (Job) TableName() string { return "jobs" }

// Application records that a job was applied to or is waiting on follow-up.
// Status is a free-form tag; only "applied" is special here.
type Application struct {
	ID        int64   `gorm:"primaryKey"`
	JobID     int64   `gorm:"index;not null"`
	Status    *string `gorm:"type:text"`
	AppliedAt *string `gorm:"type:text"`
}

func (Application) TableName() string { return "applications" }

// Match is the matcher's verdict on a job. Reasons is a JSON array of strings.
type Match struct {
	ID      int64 `gorm:"primaryKey"`
	JobID   int64 `gorm:"index;not null"`
	Score   *float64
	Reasons datatypes.JSON
}

func (Match) TableName() string { return "matches" }

// Row is one application joined to its job and, if any, its match.
// Reasons is nil when there is no match or the match has no reasons.
type Row struct {
	ApplicationID int64          `gorm:"column:application_id"`
	Title         string         `gorm:"column:title"`
	Company       string         `gorm:"column:company"`
	Location      *string        `gorm:"column:location"`
	URL           string         `gorm:"column:url"`
	Status        *string        `gorm:"column:status"`
	AppliedAt     *string        `gorm:"column:applied_at"`
	Score         *float64       `gorm:"column:score"`
	Reasons       datatypes.JSON `gorm:"column:reasons"`
}
