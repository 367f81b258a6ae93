package core

// DailyCount is one calendar day of activity. Date is an ISO-8601 day (YYYY-MM-DD).
type DailyCount struct {
	Date  string
	Count int
}

type Identity struct {
	Name     string
	Username string
	Handles  []string
}

// Counters are the auxiliary totals shown in the card's list column.
// Providers leave unknown counters at zero.
type Counters struct {
	Stars            int
	Commits          int
	PullRequests     int
	Issues           int
	ContributedRepos int
}

type Metrics struct {
	Total         int
	CurrentStreak int
	LongestStreak int
	// LastActive is the date of the most recent day with a positive count,
	// empty when there is none.
	LastActive string
}

func (m Metrics) HasActivity() bool {
	return m.LastActive != ""
}

type DevStats struct {
	Identity Identity
	Counters Counters
	Days     []DailyCount
}
