package timeline

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathwise/internal/assessment"
	"github.com/abhisek/pathwise/internal/curriculum"
	"github.com/abhisek/pathwise/internal/skillgraph"
)

func modulesWithWeeks(weeks ...int) []curriculum.Module {
	ms := make([]curriculum.Module, len(weeks))
	for i, w := range weeks {
		ms[i] = curriculum.Module{EstimatedWeeks: w, Difficulty: skillgraph.Intermediate}
	}
	return ms
}

func sum(ms []curriculum.Module) int {
	s := 0
	for _, m := range ms {
		s += m.EstimatedWeeks
	}
	return s
}

func TestFit_NoCompressionWhenShort(t *testing.T) {
	ms := modulesWithWeeks(4, 5, 2)
	res := Fit(ms, assessment.Preferences{}, "3-6 months")

	assert.Equal(t, 11, res.TotalWeeks)
	assert.Equal(t, []int{4, 5, 2}, []int{ms[0].EstimatedWeeks, ms[1].EstimatedWeeks, ms[2].EstimatedWeeks})
	assert.Len(t, res.DifficultyProgression, 11)
	assert.Equal(t, DefaultWeeklyCommitment, res.WeeklyCommitment)
	assert.Equal(t, DefaultSessionLength, res.SessionLength)
}

func TestFit_CompressesToTarget(t *testing.T) {
	ms := modulesWithWeeks(10, 10, 10, 2)
	res := Fit(ms, assessment.Preferences{WeeklyHours: 15, SessionLength: 45}, "3-6 months")

	assert.Equal(t, 18, res.TotalWeeks)
	assert.Equal(t, 18, sum(ms))
	for _, m := range ms {
		assert.GreaterOrEqual(t, m.EstimatedWeeks, 1)
	}
	assert.Len(t, res.DifficultyProgression, 18)
	assert.Equal(t, 15.0, res.WeeklyCommitment)
	assert.Equal(t, 45.0, res.SessionLength)
}

func TestFit_DifficultyProgression(t *testing.T) {
	ms := []curriculum.Module{
		{EstimatedWeeks: 2, Difficulty: skillgraph.Beginner},
		{EstimatedWeeks: 1, Difficulty: skillgraph.Advanced},
	}
	res := Fit(ms, assessment.Preferences{}, "")

	assert.Equal(t, []skillgraph.Difficulty{skillgraph.Beginner, skillgraph.Beginner, skillgraph.Advanced}, res.DifficultyProgression)
}

func TestFit_MoreModulesThanWeeks(t *testing.T) {
	weeks := make([]int, 20)
	for i := range weeks {
		weeks[i] = 2
	}
	ms := modulesWithWeeks(weeks...)
	res := Fit(ms, assessment.Preferences{}, "3-6 months")

	assert.Equal(t, 20, res.TotalWeeks, "one-week floor wins over the target")
	for _, m := range ms {
		assert.Equal(t, 1, m.EstimatedWeeks)
	}
}

func TestCompress_Examples(t *testing.T) {
	tests := []struct {
		weeks  []int
		target int
		want   []int
	}{
		{[]int{10, 10, 10}, 18, []int{6, 6, 6}},
		{[]int{5, 5, 5, 5}, 18, []int{5, 5, 4, 4}},
		{[]int{30, 1, 1}, 10, []int{8, 1, 1}},
		{[]int{3, 3}, 10, []int{3, 3}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Compress(tt.weeks, tt.target), "Compress(%v, %d)", tt.weeks, tt.target)
	}
}

func TestCompress_SumProperty(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 500 {
		n := 1 + r.IntN(12)
		weeks := make([]int, n)
		total := 0
		for i := range weeks {
			weeks[i] = 1 + r.IntN(20)
			total += weeks[i]
		}
		target := n + r.IntN(60)
		if total <= target {
			continue
		}

		got := Compress(weeks, target)
		require.Len(t, got, n)
		s := 0
		for _, w := range got {
			require.GreaterOrEqual(t, w, 1)
			s += w
		}
		require.Equal(t, target, s, "Compress(%v, %d) = %v", weeks, target, got)
	}
}
