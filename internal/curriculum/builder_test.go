package curriculum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathwise/internal/assessment"
	"github.com/abhisek/pathwise/internal/planner"
	"github.com/abhisek/pathwise/internal/skillgraph"
)

func testBuilder() *Builder {
	return NewBuilder(skillgraph.MustDefault())
}

func plan(phases ...planner.Phase) planner.SkillPlan {
	var ordered []string
	for _, p := range phases {
		ordered = append(ordered, p.Skills...)
	}
	return planner.SkillPlan{OrderedSkills: ordered, Phases: phases, TotalWeeks: 26}
}

func phase(weeks int, skills ...string) planner.Phase {
	return planner.Phase{Skills: skills, EstimatedWeeks: weeks}
}

func TestBuildModules_TemplatedSkill(t *testing.T) {
	modules := testBuilder().BuildModules(plan(phase(5, "python_basics")))

	require.Len(t, modules, 1)
	m := modules[0]
	assert.Equal(t, "module_1", m.ID)
	assert.Equal(t, "Phase 1: Python Basics", m.Name)
	assert.Equal(t, 5, m.EstimatedWeeks)
	assert.Equal(t, ModuleCore, m.ModuleType)
	assert.Equal(t, skillgraph.Beginner, m.Difficulty)

	require.Len(t, m.Topics, 4)
	assert.Equal(t, "python_basics_topic_1", m.Topics[0].ID)
	assert.Equal(t, "Python Syntax", m.Topics[0].Name)
	assert.Equal(t, "Data Structures", m.Topics[1].Name)
	assert.InDelta(t, 1.0, m.Topics[0].Priority, 1e-9)
	assert.InDelta(t, 0.7, m.Topics[3].Priority, 1e-9)
	for _, topic := range m.Topics {
		assert.Equal(t, []string{"python_basics"}, topic.SkillsGained)
		assert.NotNil(t, topic.Prerequisites)
		assert.NotNil(t, topic.Resources)
	}
}

func TestBuildModules_GenericTemplates(t *testing.T) {
	modules := testBuilder().BuildModules(plan(phase(3, "linux_basics", "rust_basics")))

	topics := modules[0].Topics
	require.Len(t, topics, 6)
	assert.Equal(t, "Linux Basics Fundamentals", topics[0].Name)
	assert.Equal(t, 10.0, topics[0].EstimatedHours)
	assert.Equal(t, "Linux Basics Practice", topics[1].Name)
	assert.Equal(t, 12.0, topics[1].EstimatedHours)
	assert.Equal(t, "Rust Basics Projects", topics[5].Name)
	assert.Equal(t, skillgraph.Intermediate, topics[5].Difficulty, "unknown skills default to intermediate")
}

func TestBuildModules_NameEllipsis(t *testing.T) {
	modules := testBuilder().BuildModules(plan(
		phase(2, "html_css", "javascript_basics"),
		phase(4, "html_css", "javascript_basics", "web_frontend"),
	))

	assert.Equal(t, "Phase 1: HTML & CSS, JavaScript Basics", modules[0].Name)
	assert.Equal(t, "Phase 2: HTML & CSS, JavaScript Basics...", modules[1].Name)
}

func TestModuleDifficulty_ModeWithFirstSeenTies(t *testing.T) {
	b := testBuilder()
	assert.Equal(t, skillgraph.Intermediate, b.moduleDifficulty([]string{"statistics", "data_analysis", "python_basics"}))
	assert.Equal(t, skillgraph.Advanced, b.moduleDifficulty([]string{"machine_learning", "statistics"}))
	assert.Equal(t, skillgraph.Beginner, b.moduleDifficulty([]string{"python_basics", "statistics", "rust"}))
	assert.Equal(t, skillgraph.Intermediate, b.moduleDifficulty([]string{"rust", "go"}))
}

func TestAddProjectModules(t *testing.T) {
	modules := testBuilder().BuildModules(plan(
		phase(2, "programming_basics"),
		phase(3, "python_basics"),
		phase(4, "statistics"),
		phase(5, "data_analysis"),
		phase(6, "machine_learning"),
	))

	got := AddProjectModules(modules)

	ids := make([]string, len(got))
	for i, m := range got {
		ids[i] = m.ID
	}
	assert.Equal(t, []string{
		"module_1", "module_2", "project_module_2",
		"module_3", "module_4", "project_module_4", "module_5",
	}, ids)

	p := got[2]
	assert.Equal(t, ModuleProject, p.ModuleType)
	assert.Equal(t, "Project Module 2", p.Name)
	assert.Equal(t, 2, p.EstimatedWeeks)
	assert.Equal(t, got[1].Difficulty, p.Difficulty)
	require.Len(t, p.Topics, 1)
	topic := p.Topics[0]
	assert.Equal(t, "project_2", topic.ID)
	assert.Equal(t, "Capstone Project: Phase 2: Python Basics", topic.Name)
	assert.Equal(t, "Apply Python Basics in a real-world project", topic.Description)
	assert.Equal(t, []string{"python_basics"}, topic.Prerequisites)
	assert.Equal(t, ProjectSkills, topic.SkillsGained)
	assert.Equal(t, 20.0, topic.EstimatedHours)

	assert.Len(t, modules, 5, "input must not be modified")
}

func TestAddProjectModules_NotAfterLast(t *testing.T) {
	modules := testBuilder().BuildModules(plan(phase(2, "programming_basics"), phase(3, "python_basics")))
	assert.Len(t, AddProjectModules(modules), 2)
}

func TestOptimizeSequence_Kolb(t *testing.T) {
	modules := []Module{
		{ID: "a", ModuleType: ModuleCore, EstimatedWeeks: 5},
		{ID: "b", ModuleType: ModuleCore, EstimatedWeeks: 3},
		{ID: "p", ModuleType: ModuleProject, EstimatedWeeks: 2},
		{ID: "c", ModuleType: ModuleCore, EstimatedWeeks: 3},
	}
	ids := func(ms []Module) []string {
		out := make([]string, len(ms))
		for i, m := range ms {
			out[i] = m.ID
		}
		return out
	}

	assert.Equal(t, []string{"p", "b", "c", "a"}, ids(OptimizeSequence(modules, "accommodating", "visual")))
	assert.Equal(t, []string{"b", "c", "a", "p"}, ids(OptimizeSequence(modules, "assimilating", "visual")))
	assert.Equal(t, []string{"a", "b", "p", "c"}, ids(OptimizeSequence(modules, "diverging", "visual")))
	assert.Equal(t, []string{"a", "b", "p", "c"}, ids(modules), "input must not be reordered")
}

func TestOptimizeSequence_TopicOrder(t *testing.T) {
	modules := testBuilder().BuildModules(plan(phase(3, "linux_basics")))

	visual := OptimizeSequence(modules, "diverging", "visual")[0].Topics
	assert.Equal(t, "Linux Basics Fundamentals", visual[0].Name)

	kinesthetic := OptimizeSequence(modules, "diverging", "kinesthetic")[0].Topics
	assert.Equal(t, "Linux Basics Practice", kinesthetic[0].Name)
	assert.Equal(t, "Linux Basics Fundamentals", kinesthetic[1].Name)
	assert.Equal(t, "Linux Basics Projects", kinesthetic[2].Name)
}

func TestBuild_DefaultsToAssimilating(t *testing.T) {
	p := plan(
		phase(6, "programming_basics"),
		phase(2, "python_basics"),
		phase(4, "statistics"),
	)
	modules := testBuilder().Build(p, assessment.Profile{})

	require.Len(t, modules, 4)
	assert.Equal(t, "module_2", modules[0].ID)
	assert.Equal(t, "module_3", modules[1].ID)
	assert.Equal(t, "module_1", modules[2].ID)
	assert.Equal(t, "project_module_2", modules[3].ID)
}

func TestModule_JSONHasEmptyResources(t *testing.T) {
	modules := testBuilder().BuildModules(plan(phase(1, "statistics")))
	raw, err := json.Marshal(modules[0].Topics[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"resources":[]`)
	assert.Contains(t, string(raw), `"prerequisites":[]`)
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Web Backend", Humanize("web_backend"))
	assert.Equal(t, "Kubernetes", Humanize("kubernetes"))
	assert.Equal(t, "", Humanize(""))
}
