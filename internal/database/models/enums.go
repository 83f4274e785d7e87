package models

// Frequency defines how often a lead measure is performed
type Frequency string

const (
	FrequencyDaily   Frequency = "Daily"
	FrequencyWeekly  Frequency = "Weekly"
	FrequencyMonthly Frequency = "Monthly"
	FrequencyProject Frequency = "Project"
)

// Completion is the answer to "was last week's commitment completed?"
type Completion string

const (
	CompletionYes  Completion = "YES"
	CompletionNo   Completion = "NO"
	CompletionNone Completion = ""
)

// Frequencies lists the valid frequencies in display order
func Frequencies() []Frequency {
	return []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyProject}
}

// IsValid checks if the Frequency is valid
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyProject:
		return true
	}
	return false
}

// IsValid checks if the Completion is valid; the empty value is allowed
func (c Completion) IsValid() bool {
	switch c {
	case CompletionYes, CompletionNo, CompletionNone:
		return true
	}
	return false
}
