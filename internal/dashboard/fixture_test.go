package dashboard

import (
	"path/filepath"
	"testing"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jobhunt/internal/db"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// newStore creates a SQLite file with the producer's tables and the given
// rows, and returns its path. Rows are inserted in the order given.
func newStore(t *testing.T, rows ...any) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "jobhunt.db")
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer db.Close(gdb)

	if err := gdb.AutoMigrate(&Job{}, &Application{}, &Match{}); err != nil {
		t.Fatalf("migrate fixture: %v", err)
	}
	for _, r := range rows {
		if err := gdb.Create(r).Error; err != nil {
			t.Fatalf("insert %T: %v", r, err)
		}
	}
	return path
}

// scenarioRows is three jobs, two applications and one match on the applied job.
func scenarioRows() []any {
	return []any{
		&Job{ID: 1, Title: "Backend Engineer", Company: "Acme", Location: strPtr("London"), URL: "https://jobs.example/1", ScrapedAt: strPtr("2025-07-20T09:00:00Z")},
		&Job{ID: 2, Title: "Data Engineer", Company: "Globex", Location: strPtr("Remote"), URL: "https://jobs.example/2", ScrapedAt: strPtr("2025-07-22T09:00:00Z")},
		&Job{ID: 3, Title: "SRE", Company: "Initech", Location: strPtr("Leeds"), URL: "https://jobs.example/3", ScrapedAt: strPtr("2025-07-21T09:00:00Z")},
		&Application{ID: 1, JobID: 1, Status: strPtr("applied"), AppliedAt: strPtr("2025-07-20T12:00:00Z")},
		&Application{ID: 2, JobID: 2, Status: strPtr("phone_screen"), AppliedAt: strPtr("2025-07-22T12:00:00Z")},
		&Match{ID: 1, JobID: 1, Score: floatPtr(85), Reasons: datatypes.JSON(`["Strong Python skills"]`)},
	}
}
