package models

// MoodTrend is one day of averaged mood scores for the dashboard chart.
type MoodTrend struct {
	Date       string  `json:"date"`
	Focus      float64 `json:"focus"`
	Stress     float64 `json:"stress"`
	Confidence float64 `json:"confidence"`
}

// StatsSummary aggregates a visitor's sessions over the last 30 days.
type StatsSummary struct {
	TotalSessions int         `json:"totalSessions"`
	AvgSpeed      float64     `json:"avgSpeed"`
	AvgFocus      float64     `json:"avgFocus"`
	AvgStress     float64     `json:"avgStress"`
	AvgConfidence float64     `json:"avgConfidence"`
	MoodTrends    []MoodTrend `json:"moodTrends"`
}
