package skillgraph

import (
	"slices"
	"sync"
)

// Graph is an immutable skill DAG with precomputed indices.
// It is built once at startup and shared by pointer; none of its
// methods mutate state, so a *Graph is safe for concurrent readers.
type Graph struct {
	skills     []Skill
	byID       map[string]*Skill
	dependents map[string][]string
	roots      []string
	topoOrder  []string
}

// New validates skills and builds a Graph. A non-nil error means the
// skill data is malformed (cycle, dangling prerequisite, duplicate ID)
// and the process should refuse to start.
func New(skills []Skill) (*Graph, error) {
	if err := validateSkills(skills); err != nil {
		return nil, err
	}

	gr := &Graph{
		skills:     slices.Clone(skills),
		byID:       make(map[string]*Skill, len(skills)),
		dependents: make(map[string][]string),
	}
	for i := range gr.skills {
		gr.byID[gr.skills[i].ID] = &gr.skills[i]
	}
	for i := range gr.skills {
		for _, prereqID := range gr.skills[i].Prerequisites {
			gr.dependents[prereqID] = append(gr.dependents[prereqID], gr.skills[i].ID)
		}
		if len(gr.skills[i].Prerequisites) == 0 {
			gr.roots = append(gr.roots, gr.skills[i].ID)
		}
	}

	ids := make([]string, len(gr.skills))
	for i, s := range gr.skills {
		ids[i] = s.ID
	}
	gr.topoOrder = gr.Order(ids)

	return gr, nil
}

var defaultGraph = sync.OnceValues(func() (*Graph, error) {
	return New(seedSkills())
})

// Default returns the built-in skill graph, validating it on first use.
func Default() (*Graph, error) {
	return defaultGraph()
}

// MustDefault is like Default but panics if the seed data is invalid.
func MustDefault() *Graph {
	g, err := Default()
	if err != nil {
		panic(err)
	}
	return g
}

// Get returns a skill by ID.
func (g *Graph) Get(id string) (Skill, bool) {
	s, ok := g.byID[id]
	if !ok {
		return Skill{}, false
	}
	return *s, true
}

// Has reports whether the graph knows the skill.
func (g *Graph) Has(id string) bool {
	_, ok := g.byID[id]
	return ok
}

// Difficulty returns the difficulty of a known skill, or Intermediate
// for skills outside the graph.
func (g *Graph) Difficulty(id string) Difficulty {
	if s, ok := g.byID[id]; ok && s.Difficulty != "" {
		return s.Difficulty
	}
	return Intermediate
}

// All returns every skill in declaration order.
func (g *Graph) All() []Skill {
	return slices.Clone(g.skills)
}

// Roots returns the IDs of skills with no prerequisites.
func (g *Graph) Roots() []string {
	return slices.Clone(g.roots)
}

// Prerequisites returns the direct prerequisite IDs of a skill.
func (g *Graph) Prerequisites(id string) []string {
	s, ok := g.byID[id]
	if !ok {
		return nil
	}
	return slices.Clone(s.Prerequisites)
}

// Dependents returns the IDs of skills that directly require id.
func (g *Graph) Dependents(id string) []string {
	return slices.Clone(g.dependents[id])
}

// TopologicalOrder returns every skill ID in a valid dependency order.
func (g *Graph) TopologicalOrder() []string {
	return slices.Clone(g.topoOrder)
}

// Order sorts the requested skills so that every prerequisite precedes
// the skills that need it. Only edges between two requested skills count
// (Kahn's algorithm on the induced subgraph). Ties keep the caller's input
// order, so the result is deterministic for a given input sequence.
// Skills unknown to the graph are appended at the end in input order.
func (g *Graph) Order(skills []string) []string {
	var known, unknown []string
	seen := make(map[string]bool, len(skills))
	for _, id := range skills {
		if seen[id] {
			continue
		}
		seen[id] = true
		if g.Has(id) {
			known = append(known, id)
		} else {
			unknown = append(unknown, id)
		}
	}

	position := make(map[string]int, len(known))
	for i, id := range known {
		position[id] = i
	}

	// Edges prereq -> skill, restricted to the requested set. Dependents
	// are listed in input order because known is walked in input order.
	inDegree := make(map[string]int, len(known))
	next := make(map[string][]string, len(known))
	for _, id := range known {
		for _, prereqID := range g.byID[id].Prerequisites {
			if _, ok := position[prereqID]; !ok {
				continue
			}
			next[prereqID] = append(next[prereqID], id)
			inDegree[id]++
		}
	}

	queue := make([]string, 0, len(known))
	for _, id := range known {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	result := make([]string, 0, len(known)+len(unknown))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		result = append(result, id)

		for _, depID := range next[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	return append(result, unknown...)
}
