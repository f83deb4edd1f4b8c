// Package pathway assembles learning pathways from the planner, the
// curriculum builder and the timeline calculator, and attaches resources.
package pathway

import (
	"time"

	"github.com/abhisek/pathwise/internal/assessment"
	"github.com/abhisek/pathwise/internal/curriculum"
	"github.com/abhisek/pathwise/internal/skillgraph"
)

// OptimizationVersion tags pathways built by this generator.
const OptimizationVersion = "1.0"

// Pathway is a complete, ordered learning plan. Its JSON encoding is the
// contract consumed by storage and rendering.
type Pathway struct {
	ID                    string                  `json:"id"`
	Title                 string                  `json:"title"`
	Description           string                  `json:"description"`
	Modules               []curriculum.Module     `json:"modules"`
	TotalDurationWeeks    int                     `json:"total_duration_weeks"`
	DifficultyProgression []skillgraph.Difficulty `json:"difficulty_progression"`
	TargetRole            string                  `json:"target_role"`
	SkillsCovered         []string                `json:"skills_covered"`
	LearningObjectives    []string                `json:"learning_objectives"`
	AdaptationMetadata    Metadata                `json:"adaptation_metadata"`
}

// Metadata records how a pathway was produced.
type Metadata struct {
	CreatedAt           time.Time          `json:"created_at"`
	LearningProfile     assessment.Profile `json:"learning_profile"`
	OptimizationVersion string             `json:"optimization_version"`
	Degraded            bool               `json:"degraded,omitempty"`
}

// Topics returns every topic in module order.
func (p *Pathway) Topics() []curriculum.Topic {
	var out []curriculum.Topic
	for _, m := range p.Modules {
		out = append(out, m.Topics...)
	}
	return out
}

// ResourceCount returns the number of resources attached across topics.
func (p *Pathway) ResourceCount() int {
	n := 0
	for _, m := range p.Modules {
		for _, t := range m.Topics {
			n += len(t.Resources)
		}
	}
	return n
}
