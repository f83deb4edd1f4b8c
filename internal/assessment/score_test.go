package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponses(t *testing.T) {
	r, err := ParseResponses([]byte(`{"v1": 3, "g1": [2, 0, 1], "c1": 1}`))
	require.NoError(t, err)
	assert.Equal(t, 3, r.Choices["v1"])
	assert.Equal(t, 1, r.Choices["c1"])
	assert.Equal(t, []int{2, 0, 1}, r.Rankings["g1"])

	_, err = ParseResponses([]byte(`{"v1": "often"}`))
	assert.Error(t, err)

	_, err = ParseResponses([]byte(`not json`))
	assert.Error(t, err)
}

func TestScore_Empty(t *testing.T) {
	p := Score(Responses{})
	assert.Equal(t, "visual", p.PrimaryVARK())
	assert.Equal(t, "assimilating", p.KolbStyle())
	assert.Equal(t, "beginner", p.KnowledgeLevels.Overall())
	assert.Empty(t, p.KnowledgeLevels.Areas)
	assert.Equal(t, Pacing{WeeklyCommitment: 5, SessionDuration: 45, Intensity: "moderate"}, p.Recommendations.Pacing)
	assert.Equal(t, []string{"programming", "algorithms", "system_design", "testing"}, p.Recommendations.FocusAreas)
}

func TestScore_VARK(t *testing.T) {
	p := Score(Responses{Choices: map[string]int{"v1": 3, "v2": 3, "v3": 0}})
	v := p.LearningStyles.VARK
	assert.Equal(t, "kinesthetic", v.PrimaryStyle)
	assert.Equal(t, "visual", v.SecondaryStyle)
	assert.True(t, v.Multimodal)
	assert.InDelta(t, 66.67, v.Scores["kinesthetic"], 0.01)
	assert.Equal(t, []string{"hands_on_projects", "coding_exercises", "simulations", "lab_work"}, p.Recommendations.ContentTypes)
}

func TestScore_VARKSingleStyleNotMultimodal(t *testing.T) {
	p := Score(Responses{Choices: map[string]int{"v1": 1, "v2": 0, "v3": 0}})
	assert.Equal(t, "visual", p.LearningStyles.VARK.PrimaryStyle)
	assert.False(t, p.LearningStyles.VARK.Multimodal)
}

func TestScore_Kolb(t *testing.T) {
	tests := []struct {
		k1, k2 int
		want   string
	}{
		{0, 0, "accommodating"},
		{1, 0, "diverging"},
		{0, 2, "converging"},
		{1, 1, "assimilating"},
		{3, 3, "assimilating"},
	}
	for _, tt := range tests {
		p := Score(Responses{Choices: map[string]int{"k1": tt.k1, "k2": tt.k2}})
		assert.Equal(t, tt.want, p.KolbStyle(), "k1=%d k2=%d", tt.k1, tt.k2)
	}
}

func TestScore_KolbDiverging(t *testing.T) {
	// concrete experience without active experimentation, reflective k1
	p := Score(Responses{Choices: map[string]int{"k1": 2, "k2": 0}})
	assert.Equal(t, "diverging", p.KolbStyle())
	assert.Equal(t, []string{"brainstorming", "case_studies", "group_discussions"}, p.Recommendations.LearningStrategies)
}

func TestScore_Gardner(t *testing.T) {
	p := Score(Responses{
		Choices:  map[string]int{"g2": 2},
		Rankings: map[string][]int{"g1": {0, 2, 5}},
	})
	g := p.LearningStyles.Gardner
	assert.Equal(t, "spatial", g.DominantIntelligence)
	assert.Equal(t, []string{"spatial", "logical_mathematical", "interpersonal"}, g.PrimaryIntelligences)
}

func TestScore_FelderSilverman(t *testing.T) {
	p := Score(Responses{Choices: map[string]int{"fs1": 0, "fs2": 1, "fs3": 0, "fs4": 1}})
	fs := p.LearningStyles.FelderSilverman
	assert.Equal(t, map[string]string{
		"processing":    "active",
		"perception":    "intuitive",
		"input":         "visual",
		"understanding": "global",
	}, fs.Styles)
	assert.Equal(t, -1, fs.Dimensions["sensing_intuitive"])
	assert.Equal(t, 1, fs.BalanceScores["sensing_intuitive"])
}

func TestScore_Knowledge(t *testing.T) {
	p := Score(Responses{Choices: map[string]int{"kl1": 4, "kl2": 2, "kl3": 0}})
	k := p.KnowledgeLevels
	assert.Equal(t, "expert", k.Areas["programming"])
	assert.Equal(t, "intermediate", k.Areas["data_analysis"])
	assert.Equal(t, "beginner", k.Areas["machine_learning"])
	assert.Equal(t, "intermediate", k.OverallLevel)
	assert.Equal(t, []string{"programming"}, k.Strengths)
	assert.Equal(t, []string{"machine_learning"}, k.GrowthAreas)
}

func TestScore_KnowledgeTieGoesToLowerLevel(t *testing.T) {
	p := Score(Responses{Choices: map[string]int{"kl1": 0, "kl2": 1}})
	assert.Equal(t, "beginner", p.KnowledgeLevels.OverallLevel)
}

func TestScore_PreferencesAndCareer(t *testing.T) {
	p := Score(Responses{Choices: map[string]int{
		"t1": 2, "t2": 1, "t3": 0, "s1": 2, "s2": 9,
		"c1": 1, "c2": 1, "c3": 0,
	}})
	assert.Equal(t, 10.0, p.Preferences.WeeklyHours)
	assert.Equal(t, 45.0, p.Preferences.SessionLength)
	assert.Equal(t, 1, p.Preferences.Consistency)
	assert.Equal(t, "hands_on", p.Preferences.LearningApproach)
	assert.Equal(t, "balanced", p.Preferences.ProblemSolving)
	assert.Equal(t, CareerProfile{TargetRole: "Data Scientist", Timeline: "6-12 months", Motivation: "Career change"}, p.CareerProfile)
	assert.Equal(t, "flexible", p.Recommendations.Pacing.Intensity)
	assert.Equal(t, []string{"statistics", "machine_learning", "data_analysis", "programming"}, p.Recommendations.FocusAreas)
}

func TestInitialQuestions(t *testing.T) {
	qs := InitialQuestions()
	counts := map[Category]int{}
	for _, q := range qs {
		counts[q.Category]++
	}
	for cat, n := range counts {
		assert.LessOrEqual(t, n, 2, "category %s", cat)
	}
	assert.Len(t, qs, 15)
	assert.Len(t, Questions(), 22)
}
