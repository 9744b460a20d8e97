package enum

import "fmt"

// Granularity selects how sales are bucketed in reports.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// ParseGranularity converts a query-string value into a Granularity.
// An empty value defaults to daily.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case GranularityDaily, GranularityWeekly, GranularityMonthly:
		return Granularity(s), nil
	case "":
		return GranularityDaily, nil
	}
	return "", fmt.Errorf("unknown report granularity %q", s)
}

func (g Granularity) String() string {
	return string(g)
}
