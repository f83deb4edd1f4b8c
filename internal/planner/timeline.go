package planner

// Timeline labels accepted by ParseTimeline.
const (
	Timeline3To6Months  = "3-6 months"
	Timeline6To12Months = "6-12 months"
	Timeline1To2Years   = "1-2 years"
	Timeline2To3Years   = "2-3 years"
	Timeline3PlusYears  = "3+ years"
)

// DefaultTimelineWeeks is used for any label not in the table.
const DefaultTimelineWeeks = 26

var timelineWeeks = map[string]int{
	Timeline3To6Months:  18,
	Timeline6To12Months: 39,
	Timeline1To2Years:   78,
	Timeline2To3Years:   130,
	Timeline3PlusYears:  156,
}

// ParseTimeline maps a timeline label to a representative week count.
// Labels must match exactly; free text is never parsed.
func ParseTimeline(label string) int {
	if w, ok := timelineWeeks[label]; ok {
		return w
	}
	return DefaultTimelineWeeks
}

// TimelineLabels returns the accepted labels from shortest to longest.
func TimelineLabels() []string {
	return []string{Timeline3To6Months, Timeline6To12Months, Timeline1To2Years, Timeline2To3Years, Timeline3PlusYears}
}
