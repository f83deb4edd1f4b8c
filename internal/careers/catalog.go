// Package careers maps career roles to the skills they require.
package careers

import (
	"slices"
	"sort"
	"strings"
)

// Profile lists the skill IDs a role draws on, grouped by purpose.
type Profile struct {
	CoreSkills            []string
	LanguageSkills        []string
	SpecializationOptions []string
	AdvancedSkills        []string
	SoftSkills            []string
}

// Catalog is an immutable role → Profile table.
type Catalog struct {
	roles map[string]Profile
}

// NewCatalog builds a catalog from the given role table. The map is copied.
func NewCatalog(roles map[string]Profile) *Catalog {
	c := &Catalog{roles: make(map[string]Profile, len(roles))}
	for name, p := range roles {
		c.roles[name] = p
	}
	return c
}

var defaultCatalog = NewCatalog(seedRoles())

// Default returns the built-in catalog.
func Default() *Catalog { return defaultCatalog }

// Lookup returns the profile for a role name (exact match).
func (c *Catalog) Lookup(role string) (Profile, bool) {
	p, ok := c.roles[role]
	return p, ok
}

// Roles returns all role names, sorted.
func (c *Catalog) Roles() []string {
	names := make([]string, 0, len(c.roles))
	for name := range c.roles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TargetSkills expands the primary career goal and focus areas into the
// list of skills a pathway should cover. areas maps knowledge domains to
// levels; language skills are added while "programming" is beginner,
// novice, or unassessed. Order is first-seen and duplicates are dropped.
func (c *Catalog) TargetSkills(goals, focusAreas []string, areas map[string]string) []string {
	var skills []string

	if len(goals) > 0 {
		p, _ := c.Lookup(goals[0])
		skills = append(skills, p.CoreSkills...)

		level, ok := areas["programming"]
		if !ok || level == "beginner" || level == "novice" {
			skills = append(skills, p.LanguageSkills...)
		}

		for _, focus := range focusAreas {
			f := strings.ToLower(focus)
			if f == "" {
				continue
			}
			for _, spec := range p.SpecializationOptions {
				if strings.Contains(strings.ToLower(spec), f) {
					skills = append(skills, spec)
				}
			}
		}
	}

	for _, focus := range focusAreas {
		if focus != "" {
			skills = append(skills, focus)
		}
	}

	return dedupe(skills)
}

func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
