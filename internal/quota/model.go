package quota

import "time"

// DailyLimit is the number of generations a user may run per UTC day.
const DailyLimit = 20

// Quota represents a user's consumption for the current period.
type Quota struct {
	Used        int       `json:"used"`
	PeriodStart time.Time `json:"periodStart"`
}

// ResetsAt returns the start of the next UTC day after the period start.
func (q Quota) ResetsAt() time.Time {
	day := q.PeriodStart.UTC().Truncate(24 * time.Hour)
	return day.Add(24 * time.Hour)
}

func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
