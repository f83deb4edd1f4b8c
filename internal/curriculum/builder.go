package curriculum

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/pathwise/internal/assessment"
	"github.com/abhisek/pathwise/internal/planner"
	"github.com/abhisek/pathwise/internal/skillgraph"
)

// Project module constants.
const (
	projectHours = 20
	projectWeeks = 2
)

// ProjectSkills are gained by every project topic.
var ProjectSkills = []string{"project_experience", "portfolio_development"}

// Builder generates modules from skill plans. It holds only read-only
// tables and is safe for concurrent use.
type Builder struct {
	graph     *skillgraph.Graph
	templates map[string][]TopicTemplate
}

// NewBuilder returns a Builder using g and the default topic templates.
func NewBuilder(g *skillgraph.Graph) *Builder {
	return &Builder{graph: g, templates: DefaultTemplates()}
}

// Build runs the full pipeline: core modules, then project modules, then
// reordering for the learner's style.
func (b *Builder) Build(plan planner.SkillPlan, profile assessment.Profile) []Module {
	modules := b.BuildModules(plan)
	modules = AddProjectModules(modules)
	return OptimizeSequence(modules, profile.KolbStyle(), profile.PrimaryVARK())
}

// BuildModules creates one core module per plan phase.
func (b *Builder) BuildModules(plan planner.SkillPlan) []Module {
	modules := make([]Module, 0, len(plan.Phases))
	for i, phase := range plan.Phases {
		topics := []Topic{}
		names := make([]string, len(phase.Skills))
		for j, skill := range phase.Skills {
			names[j] = b.SkillName(skill)
			topics = append(topics, b.skillTopics(skill)...)
		}

		shown := strings.Join(names[:min(2, len(names))], ", ")
		if len(names) > 2 {
			shown += "..."
		}

		modules = append(modules, Module{
			ID:             fmt.Sprintf("module_%d", i+1),
			Name:           fmt.Sprintf("Phase %d: %s", i+1, shown),
			Description:    fmt.Sprintf("Master %s through hands-on practice and theory", strings.Join(names, ", ")),
			Topics:         topics,
			EstimatedWeeks: phase.EstimatedWeeks,
			Difficulty:     b.moduleDifficulty(phase.Skills),
			ModuleType:     ModuleCore,
		})
	}
	return modules
}

// SkillName returns the display name of a skill.
func (b *Builder) SkillName(id string) string {
	if s, ok := b.graph.Get(id); ok && s.Name != "" {
		return s.Name
	}
	return Humanize(id)
}

func (b *Builder) skillTopics(skill string) []Topic {
	templates, ok := b.templates[skill]
	if !ok {
		templates = genericTemplates(b.SkillName(skill))
	}
	difficulty := b.graph.Difficulty(skill)

	topics := make([]Topic, len(templates))
	for i, tmpl := range templates {
		t := newTopic(fmt.Sprintf("%s_topic_%d", skill, i+1), tmpl.Name, tmpl.Description, difficulty, tmpl.Hours)
		t.SkillsGained = []string{skill}
		t.Priority = 1.0 - float64(i)*0.1
		topics[i] = t
	}
	return topics
}

// moduleDifficulty returns the most common difficulty among the known
// skills, preferring the first one seen on ties.
func (b *Builder) moduleDifficulty(skills []string) skillgraph.Difficulty {
	counts := map[skillgraph.Difficulty]int{}
	var order []skillgraph.Difficulty
	for _, id := range skills {
		s, ok := b.graph.Get(id)
		if !ok {
			continue
		}
		if counts[s.Difficulty] == 0 {
			order = append(order, s.Difficulty)
		}
		counts[s.Difficulty]++
	}
	if len(order) == 0 {
		return skillgraph.Intermediate
	}
	best := order[0]
	for _, d := range order[1:] {
		if counts[d] > counts[best] {
			best = d
		}
	}
	return best
}

// AddProjectModules inserts a project module after every second module,
// except after the last one. The input slice is not modified.
func AddProjectModules(modules []Module) []Module {
	out := make([]Module, 0, len(modules)+len(modules)/2)
	for i, m := range modules {
		out = append(out, m)
		if (i+1)%2 == 0 && i < len(modules)-1 {
			out = append(out, projectModule(m, i+1))
		}
	}
	return out
}

func projectModule(prev Module, index int) Module {
	var applied []string
	for _, t := range prev.Topics {
		for _, s := range t.SkillsGained {
			if !slices.Contains(applied, s) {
				applied = append(applied, s)
			}
		}
	}

	shown := make([]string, 0, 3)
	for _, s := range applied[:min(3, len(applied))] {
		shown = append(shown, Humanize(s))
	}

	topic := newTopic(
		fmt.Sprintf("project_%d", index),
		"Capstone Project: "+prev.Name,
		fmt.Sprintf("Apply %s in a real-world project", strings.Join(shown, ", ")),
		prev.Difficulty,
		projectHours,
	)
	if applied != nil {
		topic.Prerequisites = applied
	}
	topic.SkillsGained = slices.Clone(ProjectSkills)

	return Module{
		ID:             fmt.Sprintf("project_module_%d", index),
		Name:           fmt.Sprintf("Project Module %d", index),
		Description:    "Apply your learning through hands-on projects",
		Topics:         []Topic{topic},
		EstimatedWeeks: projectWeeks,
		Difficulty:     prev.Difficulty,
		ModuleType:     ModuleProject,
	}
}

// OptimizeSequence reorders modules for the Kolb style and topics for the
// VARK style. Accommodating learners get projects first, assimilating
// learners get core modules first; both then prefer shorter modules.
// Other styles keep module order. All sorts are stable.
func OptimizeSequence(modules []Module, kolb, vark string) []Module {
	out := slices.Clone(modules)

	switch kolb {
	case "accommodating":
		slices.SortStableFunc(out, func(a, b Module) int {
			return compareModules(!a.IsProject(), !b.IsProject(), a, b)
		})
	case "assimilating":
		slices.SortStableFunc(out, func(a, b Module) int {
			return compareModules(a.IsProject(), b.IsProject(), a, b)
		})
	}

	for i := range out {
		out[i].Topics = orderTopics(out[i].Topics, vark)
	}
	return out
}

// compareModules orders by the boolean key (false first), then by weeks.
func compareModules(ka, kb bool, a, b Module) int {
	if ka != kb {
		if !ka {
			return -1
		}
		return 1
	}
	return a.EstimatedWeeks - b.EstimatedWeeks
}

func orderTopics(topics []Topic, vark string) []Topic {
	out := slices.Clone(topics)
	slices.SortStableFunc(out, func(a, b Topic) int {
		if d := len(a.Prerequisites) - len(b.Prerequisites); d != 0 {
			return d
		}
		if vark == "kinesthetic" {
			pa := strings.Contains(strings.ToLower(a.Name), "practice")
			pb := strings.Contains(strings.ToLower(b.Name), "practice")
			switch {
			case pa && !pb:
				return -1
			case pb && !pa:
				return 1
			}
			return 0
		}
		switch {
		case a.Priority > b.Priority:
			return -1
		case a.Priority < b.Priority:
			return 1
		}
		return 0
	})
	return out
}
