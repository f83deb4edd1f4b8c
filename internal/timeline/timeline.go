// Package timeline fits curriculum modules into a target number of weeks
// and derives the week-by-week difficulty progression.
package timeline

import (
	"slices"

	"github.com/abhisek/pathwise/internal/assessment"
	"github.com/abhisek/pathwise/internal/curriculum"
	"github.com/abhisek/pathwise/internal/planner"
	"github.com/abhisek/pathwise/internal/skillgraph"
)

// Defaults for unanswered time preferences.
const (
	DefaultWeeklyCommitment = 10.0
	DefaultSessionLength    = 60.0
)

// Result summarizes the fitted schedule.
type Result struct {
	TotalWeeks            int                     `json:"total_weeks"`
	DifficultyProgression []skillgraph.Difficulty `json:"difficulty_progression"`
	WeeklyCommitment      float64                 `json:"weekly_commitment"`
	SessionLength         float64                 `json:"session_length"`
}

// Fit compresses modules in place when their weeks exceed the target for
// label. Each module keeps at least one week and, whenever there are no
// more modules than target weeks, the compressed weeks sum to the target
// exactly. Schedules that already fit are left alone.
func Fit(modules []curriculum.Module, prefs assessment.Preferences, label string) Result {
	target := planner.ParseTimeline(label)

	total := 0
	for _, m := range modules {
		total += m.EstimatedWeeks
	}

	if total > target {
		weeks := make([]int, len(modules))
		for i, m := range modules {
			weeks[i] = m.EstimatedWeeks
		}
		weeks = Compress(weeks, target)
		total = 0
		for i := range modules {
			modules[i].EstimatedWeeks = weeks[i]
			total += weeks[i]
		}
	}

	progression := make([]skillgraph.Difficulty, 0, total)
	for _, m := range modules {
		for range m.EstimatedWeeks {
			progression = append(progression, m.Difficulty)
		}
	}

	res := Result{
		TotalWeeks:            total,
		DifficultyProgression: progression,
		WeeklyCommitment:      prefs.WeeklyHours,
		SessionLength:         prefs.SessionLength,
	}
	if res.WeeklyCommitment <= 0 {
		res.WeeklyCommitment = DefaultWeeklyCommitment
	}
	if res.SessionLength <= 0 {
		res.SessionLength = DefaultSessionLength
	}
	return res
}

// Compress scales weeks down to target. Each entry is first scaled by
// target/sum and truncated, with a floor of one week. The shortfall is
// then handed out one week at a time to the entries that lost the largest
// fraction, and any excess from the floor is taken back from the longest
// entries still above one week. Earlier entries win ties.
func Compress(weeks []int, target int) []int {
	out := slices.Clone(weeks)
	sum := 0
	for _, w := range weeks {
		sum += w
	}
	if sum <= target || sum == 0 {
		return out
	}

	ratio := float64(target) / float64(sum)
	frac := make([]float64, len(weeks))
	got := 0
	for i, w := range weeks {
		scaled := float64(w) * ratio
		out[i] = max(1, int(scaled))
		frac[i] = scaled - float64(int(scaled))
		got += out[i]
	}

	for got < target {
		best := -1
		for i := range out {
			if best < 0 || frac[i] > frac[best] {
				best = i
			}
		}
		out[best]++
		frac[best] = -1
		got++
		if allSpent(frac) {
			for i := range frac {
				frac[i] = 0
			}
		}
	}

	for got > target {
		best := -1
		for i := range out {
			if out[i] > 1 && (best < 0 || out[i] > out[best]) {
				best = i
			}
		}
		if best < 0 {
			break
		}
		out[best]--
		got--
	}
	return out
}

func allSpent(frac []float64) bool {
	for _, f := range frac {
		if f >= 0 {
			return false
		}
	}
	return true
}
