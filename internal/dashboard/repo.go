package dashboard

import (
	"context"
	"database/sql"
	"fmt"

	"jobhunt/internal/db"
)

// Snapshot is everything the dashboard reads from the store for one request.
// The three parts come from separate queries and are not read in a single
// transaction.
type Snapshot struct {
	JobCount   int64
	LastScrape sql.NullString
	Rows       []Row
}

// Repo reads snapshots. It holds no connection; every Load opens its own.
type Repo struct {
	DSN   string
	Debug bool
}

const rowColumns = `applications.id AS application_id,
	jobs.title, jobs.company, jobs.location, jobs.url,
	applications.status, applications.applied_at,
	matches.score, matches.reasons`

// Load returns the current snapshot. The error wraps db.ErrNoStore when the
// store is missing or unreachable.
func (r *Repo) Load(ctx context.Context) (Snapshot, error) {
	gdb, err := db.Connect(r.DSN, r.Debug)
	if err != nil {
		return Snapshot{}, err
	}
	defer db.Close(gdb)

	gdb = gdb.WithContext(ctx)

	var snap Snapshot
	if err := gdb.Model(&Job{}).Count(&snap.JobCount).Error; err != nil {
		return Snapshot{}, fmt.Errorf("count jobs: %w", err)
	}

	if err := gdb.Raw(`SELECT MAX(scraped_at) FROM jobs`).Row().Scan(&snap.LastScrape); err != nil {
		return Snapshot{}, fmt.Errorf("last scrape: %w", err)
	}

	// Applications without a job drop out of the inner join.
	err = gdb.Model(&Application{}).
		Select(rowColumns).
		Joins("JOIN jobs ON applications.job_id = jobs.id").
		Joins("LEFT JOIN matches ON applications.job_id = matches.job_id").
		Order("applications.id DESC").
		Scan(&snap.Rows).Error
	if err != nil {
		return Snapshot{}, fmt.Errorf("list applications: %w", err)
	}

	return snap, nil
}
