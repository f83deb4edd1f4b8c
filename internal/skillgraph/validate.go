package skillgraph

import (
	"fmt"
	"strings"
)

// validateSkills performs all structural checks on the given skill set.
// Returns a combined error describing all problems found, or nil if valid.
func validateSkills(skills []Skill) error {
	var errs []string

	idSet := make(map[string]bool, len(skills))

	// Check for empty and duplicate IDs
	for _, s := range skills {
		if s.ID == "" {
			errs = append(errs, "skill with empty ID")
			continue
		}
		if idSet[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate skill ID: %q", s.ID))
		}
		idSet[s.ID] = true
	}

	// Check for dangling prerequisites and self-loops
	for _, s := range skills {
		for _, prereqID := range s.Prerequisites {
			if prereqID == s.ID {
				errs = append(errs, fmt.Sprintf("skill %q lists itself as a prerequisite", s.ID))
				continue
			}
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("skill %q references nonexistent prerequisite %q", s.ID, prereqID))
			}
		}
	}

	// Check for cycles using Kahn's algorithm
	inDegree := make(map[string]int, len(skills))
	adjList := make(map[string][]string)
	for _, s := range skills {
		for _, prereqID := range s.Prerequisites {
			if !idSet[prereqID] {
				continue
			}
			inDegree[s.ID]++
			adjList[prereqID] = append(adjList[prereqID], s.ID)
		}
	}

	var queue []string
	queued := make(map[string]bool, len(skills))
	for _, s := range skills {
		if inDegree[s.ID] == 0 && !queued[s.ID] {
			queue = append(queue, s.ID)
			queued[s.ID] = true
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(idSet) {
		var cycleNodes []string
		for _, s := range skills {
			if inDegree[s.ID] > 0 {
				cycleNodes = append(cycleNodes, s.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving skills: %s", strings.Join(cycleNodes, ", ")))
	}

	// Check at least one root
	if len(skills) > 0 {
		hasRoot := false
		for _, s := range skills {
			if len(s.Prerequisites) == 0 {
				hasRoot = true
				break
			}
		}
		if !hasRoot {
			errs = append(errs, "no root skills found (at least one skill must have no prerequisites)")
		}
	}

	for _, s := range skills {
		if !s.Difficulty.Valid() {
			errs = append(errs, fmt.Sprintf("skill %q has unknown difficulty %q", s.ID, s.Difficulty))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("skill graph validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
