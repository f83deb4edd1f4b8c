package pathway

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathwise/internal/assessment"
	"github.com/abhisek/pathwise/internal/careers"
	"github.com/abhisek/pathwise/internal/skillgraph"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testGenerator() *Generator {
	return NewGenerator(skillgraph.MustDefault(), careers.Default(),
		WithClock(func() time.Time { return fixedNow }))
}

func weeksOf(p *Pathway) int {
	n := 0
	for _, m := range p.Modules {
		n += m.EstimatedWeeks
	}
	return n
}

func TestGenerate_PrerequisiteOrderWithinTimeline(t *testing.T) {
	p, err := testGenerator().Generate(context.Background(), Request{
		FocusAreas: []string{"python_basics", "programming_basics"},
		Timeline:   "3-6 months",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"python_basics", "programming_basics"}, p.SkillsCovered)
	require.GreaterOrEqual(t, len(p.Modules), 2)
	assert.Equal(t, "Phase 1: Programming Basics", p.Modules[0].Name)
	assert.Equal(t, "Phase 2: Python Basics", p.Modules[1].Name)
	assert.LessOrEqual(t, p.TotalDurationWeeks, 18)
	assert.Equal(t, weeksOf(p), p.TotalDurationWeeks)
	assert.Len(t, p.DifficultyProgression, p.TotalDurationWeeks)
	assert.Equal(t, DefaultRole, p.TargetRole)
	assert.Equal(t, "Master python_basics: Comprehensive Guide", p.Title)
	require.NoError(t, Validate(p))
}

func TestGenerate_CompressesToTimeline(t *testing.T) {
	p, err := testGenerator().Generate(context.Background(), Request{
		CareerGoals: []string{"Software Developer"},
		Timeline:    "3-6 months",
	})
	require.NoError(t, err)

	assert.Equal(t, 18, p.TotalDurationWeeks)
	assert.Equal(t, 18, weeksOf(p))
	for _, m := range p.Modules {
		assert.GreaterOrEqual(t, m.EstimatedWeeks, 1, m.ID)
	}
	require.NoError(t, Validate(p))
}

func TestGenerate_DegradedWithoutGoalsOrFocus(t *testing.T) {
	p, err := testGenerator().Generate(context.Background(), Request{})
	require.NoError(t, err)

	assert.Equal(t, 12, p.TotalDurationWeeks)
	require.Len(t, p.Modules, 1)
	assert.Equal(t, "Getting Started", p.Modules[0].Name)
	require.Len(t, p.Modules[0].Topics, 1)
	assert.Equal(t, "Fundamentals", p.Modules[0].Topics[0].Name)
	assert.NotNil(t, p.Modules[0].Topics[0].Resources)
	assert.True(t, p.AdaptationMetadata.Degraded)
	assert.Equal(t, "Personalized Learning Journey", p.Title)
	assert.Equal(t, DefaultRole, p.TargetRole)
	require.NoError(t, Validate(p))
}

func TestGenerate_UnknownRoleWithoutFocusDegrades(t *testing.T) {
	p, err := testGenerator().Generate(context.Background(), Request{CareerGoals: []string{"Astronaut"}})
	require.NoError(t, err)
	assert.Equal(t, 12, p.TotalDurationWeeks)
	assert.Equal(t, "Astronaut", p.TargetRole)
}

func TestGenerate_InvalidRequest(t *testing.T) {
	_, err := testGenerator().Generate(context.Background(), Request{
		CareerGoals: []string{strings.Repeat("x", 101)},
	})
	assert.True(t, errors.Is(err, ErrInvalidRequest))

	_, err = testGenerator().Generate(context.Background(), Request{FocusAreas: []string{""}})
	assert.True(t, errors.Is(err, ErrInvalidRequest))
}

func TestGenerate_DeterministicID(t *testing.T) {
	req := Request{
		CareerGoals: []string{"Data Scientist"},
		FocusAreas:  []string{"machine_learning"},
		Timeline:    "6-12 months",
	}
	a, err := testGenerator().Generate(context.Background(), req)
	require.NoError(t, err)
	b, err := testGenerator().Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID)

	req.Timeline = "1-2 years"
	c, err := testGenerator().Generate(context.Background(), req)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, c.ID)
}

func TestGenerate_DataScientist(t *testing.T) {
	p, err := testGenerator().Generate(context.Background(), Request{
		Profile: assessment.Profile{
			LearningStyles: assessment.LearningStyles{Kolb: assessment.Kolb{Style: "accommodating"}},
		},
		CareerGoals: []string{"Data Scientist"},
		FocusAreas:  []string{"machine_learning"},
		Timeline:    "6-12 months",
	})
	require.NoError(t, err)

	assert.Equal(t, "Become a Data Scientist: machine_learning Specialization", p.Title)
	assert.Equal(t, []string{"statistics", "data_analysis", "python_basics", "machine_learning"}, p.SkillsCovered)
	assert.Equal(t, "Master Statistics concepts and applications", p.LearningObjectives[0])
	assert.LessOrEqual(t, len(p.LearningObjectives), 6)
	assert.Equal(t, fixedNow, p.AdaptationMetadata.CreatedAt)
	assert.Equal(t, OptimizationVersion, p.AdaptationMetadata.OptimizationVersion)
	assert.False(t, p.AdaptationMetadata.Degraded)
	require.NoError(t, Validate(p))
}

func TestDescription(t *testing.T) {
	assert.Equal(t,
		"This comprehensive pathway will prepare you for a career as a DevOps Engineer. "+
			"with specialized focus on kubernetes, docker. Designed to be completed in 3-6 months. "+
			"this adaptive curriculum combines theory, practice, and real-world projects.",
		Description([]string{"DevOps Engineer"}, []string{"kubernetes", "docker"}, "3-6 Months"))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Complete Data Scientist Learning Path", Title([]string{"Data Scientist"}, nil))
	assert.Equal(t, "Become a Data Scientist: nlp Specialization", Title([]string{"Data Scientist"}, []string{"nlp"}))
}

func TestPathway_JSONContract(t *testing.T) {
	p, err := testGenerator().Generate(context.Background(), Request{CareerGoals: []string{"Data Scientist"}})
	require.NoError(t, err)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	for _, key := range []string{
		"id", "title", "description", "modules", "total_duration_weeks", "difficulty_progression",
		"target_role", "skills_covered", "learning_objectives", "adaptation_metadata",
	} {
		assert.Contains(t, doc, key)
	}
	assert.Contains(t, string(raw), `"resources":[]`)
}

func TestValidate_RejectsBrokenInvariants(t *testing.T) {
	p, err := testGenerator().Generate(context.Background(), Request{CareerGoals: []string{"Data Scientist"}})
	require.NoError(t, err)

	p.TotalDurationWeeks++
	assert.Error(t, Validate(p))
	p.TotalDurationWeeks--

	p.Modules[0].Topics[0].Resources = nil
	assert.Error(t, Validate(p), "null resources break the contract")

	assert.Error(t, Validate(nil))
}
