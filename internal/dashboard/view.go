package dashboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"gorm.io/datatypes"
)

// StatusApplied is the only status that lands a row in the applied bucket.
const StatusApplied = "applied"

// NoScore is shown in place of a score when a job has no match.
const NoScore = "—"

type JobView struct {
	ApplicationID int64    `json:"application_id"`
	Title         string   `json:"title"`
	Company       string   `json:"company"`
	Location      string   `json:"location"`
	URL           string   `json:"url"`
	Status        string   `json:"status"`
	AppliedAt     string   `json:"applied_at"`
	Score         *float64 `json:"score"`
	Reasons       []string `json:"reasons"`
}

// ScoreText keeps "no match" and a score of zero apart.
func (v JobView) ScoreText() string {
	if v.Score == nil {
		return NoScore
	}
	return strconv.FormatFloat(*v.Score, 'f', -1, 64)
}

// View is the template context for the dashboard page.
type View struct {
	TotalJobs     int64     `json:"total_jobs"`
	AppliedCount  int       `json:"applied_count"`
	FollowUpCount int       `json:"follow_up_count"`
	LastUpdated   string    `json:"last_updated"`
	Applied       []JobView `json:"applied"`
	FollowUp      []JobView `json:"follow_up"`
}

// Build partitions snap.Rows by status in a single pass. Row order is kept
// as the query returned it.
func Build(snap Snapshot) View {
	v := View{
		TotalJobs: snap.JobCount,
		Applied:   []JobView{},
		FollowUp:  []JobView{},
	}
	if snap.LastScrape.Valid {
		v.LastUpdated = snap.LastScrape.String
	}

	for _, row := range snap.Rows {
		jv := newJobView(row)
		if row.Status != nil && *row.Status == StatusApplied {
			v.Applied = append(v.Applied, jv)
		} else {
			v.FollowUp = append(v.FollowUp, jv)
		}
	}

	v.AppliedCount = len(v.Applied)
	v.FollowUpCount = len(v.FollowUp)
	return v
}

func newJobView(row Row) JobView {
	jv := JobView{
		ApplicationID: row.ApplicationID,
		Title:         row.Title,
		Company:       row.Company,
		URL:           row.URL,
		Score:         row.Score,
	}
	if row.Location != nil {
		jv.Location = *row.Location
	}
	if row.Status != nil {
		jv.Status = *row.Status
	}
	if row.AppliedAt != nil {
		jv.AppliedAt = *row.AppliedAt
	}

	reasons, err := DecodeReasons(row.Reasons)
	if err != nil {
		log.Printf("application %d: %v\n", row.ApplicationID, err)
	}
	jv.Reasons = reasons
	return jv
}

// DecodeReasons parses a JSON array of strings. NULL, blank and malformed
// input all yield an empty slice; only the malformed case reports an error.
func DecodeReasons(raw datatypes.JSON) ([]string, error) {
	out := []string{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return []string{}, fmt.Errorf("decode reasons: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}
