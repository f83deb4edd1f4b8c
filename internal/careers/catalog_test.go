package careers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoles_Sorted(t *testing.T) {
	roles := Default().Roles()
	require.Len(t, roles, 6)
	assert.IsIncreasing(t, roles)
}

func TestLookup(t *testing.T) {
	p, ok := Default().Lookup("Data Scientist")
	require.True(t, ok)
	assert.Equal(t, []string{"statistics", "data_analysis", "python_basics"}, p.CoreSkills)
	assert.Empty(t, p.LanguageSkills)

	_, ok = Default().Lookup("Astronaut")
	assert.False(t, ok)
}

func TestTargetSkills_BeginnerGetsLanguages(t *testing.T) {
	got := Default().TargetSkills([]string{"Software Developer"}, nil, map[string]string{"programming": "beginner"})
	assert.Equal(t, []string{
		"programming_basics", "algorithms_basics", "data_structures",
		"python_basics", "javascript_basics",
	}, got)
}

func TestTargetSkills_ExperiencedSkipsLanguages(t *testing.T) {
	got := Default().TargetSkills([]string{"Software Developer"}, nil, map[string]string{"programming": "advanced"})
	assert.Equal(t, []string{"programming_basics", "algorithms_basics", "data_structures"}, got)
}

func TestTargetSkills_FocusMatchesSpecialization(t *testing.T) {
	got := Default().TargetSkills([]string{"Software Developer"}, []string{"Web"}, map[string]string{"programming": "expert"})
	assert.Equal(t, []string{
		"programming_basics", "algorithms_basics", "data_structures",
		"web_frontend", "web_backend", "Web",
	}, got)
}

func TestTargetSkills_Deduplicates(t *testing.T) {
	got := Default().TargetSkills([]string{"Data Scientist"}, []string{"machine_learning"}, nil)
	assert.Equal(t, []string{"statistics", "data_analysis", "python_basics", "machine_learning"}, got)
}

func TestTargetSkills_UnknownRoleUsesFocusOnly(t *testing.T) {
	got := Default().TargetSkills([]string{"Astronaut"}, []string{"statistics"}, nil)
	assert.Equal(t, []string{"statistics"}, got)
}

func TestTargetSkills_Empty(t *testing.T) {
	assert.Empty(t, Default().TargetSkills(nil, nil, nil))
}
