// Package curriculum turns a skill plan into modules of topics.
package curriculum

import (
	"github.com/abhisek/pathwise/internal/resources"
	"github.com/abhisek/pathwise/internal/skillgraph"
)

// ModuleType distinguishes teaching modules from synthesized projects.
type ModuleType string

const (
	ModuleCore    ModuleType = "core"
	ModuleProject ModuleType = "project"
)

// Topic is the smallest curriculum unit.
type Topic struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	Difficulty     skillgraph.Difficulty `json:"difficulty"`
	EstimatedHours float64               `json:"estimated_hours"`
	Prerequisites  []string              `json:"prerequisites"`
	SkillsGained   []string              `json:"skills_gained"`
	Priority       float64               `json:"priority"`
	Resources      []resources.Resource  `json:"resources"`
}

// Module groups topics scheduled together.
type Module struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	Topics         []Topic               `json:"topics"`
	EstimatedWeeks int                   `json:"estimated_weeks"`
	Difficulty     skillgraph.Difficulty `json:"difficulty"`
	ModuleType     ModuleType            `json:"module_type"`
}

// IsProject reports whether m is a synthesized project module.
func (m Module) IsProject() bool { return m.ModuleType == ModuleProject }

// TotalHours sums the estimated hours of m's topics.
func (m Module) TotalHours() float64 {
	var h float64
	for _, t := range m.Topics {
		h += t.EstimatedHours
	}
	return h
}

// newTopic returns a topic with every collection initialized.
func newTopic(id, name, description string, difficulty skillgraph.Difficulty, hours float64) Topic {
	return Topic{
		ID:             id,
		Name:           name,
		Description:    description,
		Difficulty:     difficulty,
		EstimatedHours: hours,
		Prerequisites:  []string{},
		SkillsGained:   []string{},
		Priority:       1.0,
		Resources:      []resources.Resource{},
	}
}
