// Package planner turns a set of target skills into an ordered,
// time-boxed plan of learning phases.
package planner

import (
	"math"

	"github.com/abhisek/pathwise/internal/assessment"
	"github.com/abhisek/pathwise/internal/skillgraph"
)

// Hour-estimate constants.
const (
	MinSkillHours     = 10.0
	UnknownSkillHours = 30.0
	HoursPerWeek      = 10.0
	WeeksPerPhase     = 4.0
)

var baseHours = map[skillgraph.Difficulty]float64{
	skillgraph.Beginner:     40,
	skillgraph.Intermediate: 60,
	skillgraph.Advanced:     80,
}

// knowledgeDiscount scales effort by what the learner already knows of a skill.
func knowledgeDiscount(level string) float64 {
	switch level {
	case "advanced", "expert":
		return 0.3
	case "intermediate":
		return 0.6
	case "novice":
		return 0.8
	default:
		return 1.0
	}
}

// experienceMultiplier scales effort by overall experience.
func experienceMultiplier(overall string) float64 {
	switch overall {
	case "beginner":
		return 1.2
	case "novice":
		return 1.1
	case "intermediate":
		return 1.0
	case "advanced":
		return 0.8
	case "expert":
		return 0.6
	default:
		return 1.0
	}
}

// Phase is a bundle of consecutive skills scheduled together.
type Phase struct {
	Skills         []string `json:"skills"`
	EstimatedHours float64  `json:"estimated_hours"`
	EstimatedWeeks int      `json:"estimated_weeks"`
}

// SkillPlan is the output of Plan. It is not modified after construction.
type SkillPlan struct {
	OrderedSkills []string           `json:"ordered_skills"`
	TimeEstimates map[string]float64 `json:"time_estimates"`
	Phases        []Phase            `json:"phases"`
	TotalWeeks    int                `json:"total_weeks"`
}

// Empty reports whether the plan has no phases.
func (p SkillPlan) Empty() bool { return len(p.Phases) == 0 }

// Planner builds skill plans against a skill graph.
type Planner struct {
	graph *skillgraph.Graph
}

// New returns a Planner over g.
func New(g *skillgraph.Graph) *Planner {
	return &Planner{graph: g}
}

// Plan orders the target skills by dependency, estimates hours for each,
// and packs them into phases without reordering.
func (p *Planner) Plan(target []string, knowledge assessment.KnowledgeLevels, timeline string) SkillPlan {
	weeks := ParseTimeline(timeline)
	ordered := p.graph.Order(target)
	estimates := p.Estimate(ordered, knowledge)

	return SkillPlan{
		OrderedSkills: ordered,
		TimeEstimates: estimates,
		Phases:        Pack(ordered, estimates, weeks),
		TotalWeeks:    weeks,
	}
}

// Estimate returns learning hours per skill.
func (p *Planner) Estimate(skills []string, knowledge assessment.KnowledgeLevels) map[string]float64 {
	estimates := make(map[string]float64, len(skills))
	mult := experienceMultiplier(knowledge.Overall())

	for _, id := range skills {
		if !p.graph.Has(id) {
			estimates[id] = UnknownSkillHours
			continue
		}
		hours := baseHours[p.graph.Difficulty(id)]
		hours *= knowledgeDiscount(knowledge.Areas[id])
		hours *= mult
		estimates[id] = math.Max(hours, MinSkillHours)
	}
	return estimates
}

// Pack groups ordered skills greedily into phases of roughly one month at
// the pace implied by the total estimate and timeline. A phase is closed
// when the next skill would exceed capacity and the phase is non-empty.
func Pack(ordered []string, estimates map[string]float64, totalWeeks int) []Phase {
	if len(ordered) == 0 || totalWeeks <= 0 {
		return []Phase{}
	}

	var sum float64
	for _, id := range ordered {
		sum += hoursFor(estimates, id)
	}
	capacity := sum / float64(totalWeeks) * WeeksPerPhase

	phases := []Phase{}
	var current []string
	var hours float64

	flush := func() {
		phases = append(phases, Phase{
			Skills:         current,
			EstimatedHours: hours,
			EstimatedWeeks: int(math.Ceil(hours / HoursPerWeek)),
		})
	}

	for _, id := range ordered {
		h := hoursFor(estimates, id)
		if hours+h > capacity && len(current) > 0 {
			flush()
			current = []string{id}
			hours = h
			continue
		}
		current = append(current, id)
		hours += h
	}
	if len(current) > 0 {
		flush()
	}
	return phases
}

func hoursFor(estimates map[string]float64, id string) float64 {
	if h, ok := estimates[id]; ok {
		return h
	}
	return UnknownSkillHours
}
