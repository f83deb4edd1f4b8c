package pathway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/pathwise/internal/assessment"
	"github.com/abhisek/pathwise/internal/careers"
	"github.com/abhisek/pathwise/internal/curriculum"
	"github.com/abhisek/pathwise/internal/planner"
	"github.com/abhisek/pathwise/internal/resources"
	"github.com/abhisek/pathwise/internal/skillgraph"
	"github.com/abhisek/pathwise/internal/timeline"
)

// ErrInvalidRequest is returned when a generation request fails validation.
var ErrInvalidRequest = errors.New("invalid pathway request")

// DefaultRole is the target role of a pathway without career goals.
const DefaultRole = "General Development"

// Degraded pathway shape.
const (
	degradedWeeks = 12
	degradedHours = 40
	maxObjectives = 6
)

// idSpace namespaces pathway IDs.
var idSpace = uuid.MustParse("b8e2f1d4-7a3c-4e9b-8f60-1d2c3b4a5e6f")

// Request is the input to Generate.
type Request struct {
	Profile     assessment.Profile `json:"profile"`
	CareerGoals []string           `json:"career_goals" validate:"max=10,dive,required,max=100"`
	Timeline    string             `json:"timeline" validate:"max=50"`
	FocusAreas  []string           `json:"focus_areas" validate:"max=20,dive,required,max=100"`
}

// Generator builds pathways. It holds only read-only collaborators and is
// safe for concurrent use.
type Generator struct {
	graph    *skillgraph.Graph
	catalog  *careers.Catalog
	planner  *planner.Planner
	builder  *curriculum.Builder
	validate *validator.Validate
	now      func() time.Time
	logger   *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the time source used for metadata timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// NewGenerator returns a Generator over the given graph and catalog.
func NewGenerator(g *skillgraph.Graph, c *careers.Catalog, opts ...Option) *Generator {
	gen := &Generator{
		graph:    g,
		catalog:  c,
		planner:  planner.New(g),
		builder:  curriculum.NewBuilder(g),
		validate: validator.New(),
		now:      time.Now,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(gen)
	}
	return gen
}

// Generate builds a pathway for req. When no skills can be derived from
// the request, a minimal getting-started pathway is returned instead. The
// only error is ErrInvalidRequest.
func (g *Generator) Generate(ctx context.Context, req Request) (*Pathway, error) {
	if err := g.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	targets := g.catalog.TargetSkills(req.CareerGoals, req.FocusAreas, req.Profile.KnowledgeLevels.Areas)
	plan := g.planner.Plan(targets, req.Profile.KnowledgeLevels, req.Timeline)
	if len(targets) == 0 || plan.Empty() {
		g.logger.Info("no target skills, using default pathway",
			zap.Strings("career_goals", req.CareerGoals),
			zap.Strings("focus_areas", req.FocusAreas))
		return g.degraded(req), nil
	}

	modules := g.builder.Build(plan, req.Profile)
	fit := timeline.Fit(modules, req.Profile.Preferences, req.Timeline)

	p := &Pathway{
		ID:                    pathwayID(req),
		Title:                 Title(req.CareerGoals, req.FocusAreas),
		Description:           Description(req.CareerGoals, req.FocusAreas, req.Timeline),
		Modules:               modules,
		TotalDurationWeeks:    fit.TotalWeeks,
		DifficultyProgression: fit.DifficultyProgression,
		TargetRole:            targetRole(req.CareerGoals),
		SkillsCovered:         targets,
		LearningObjectives:    g.objectives(targets, req.CareerGoals),
		AdaptationMetadata:    g.metadata(req, false),
	}

	g.logger.Info("pathway generated",
		zap.String("id", p.ID),
		zap.Int("skills", len(targets)),
		zap.Int("modules", len(modules)),
		zap.Int("weeks", p.TotalDurationWeeks))
	return p, nil
}

// degraded returns the single-module fallback pathway.
func (g *Generator) degraded(req Request) *Pathway {
	topic := curriculum.Topic{
		ID:             "fundamentals_topic_1",
		Name:           "Fundamentals",
		Description:    "Core concepts to get started with learning",
		Difficulty:     skillgraph.Beginner,
		EstimatedHours: degradedHours,
		Prerequisites:  []string{},
		SkillsGained:   []string{"fundamentals"},
		Priority:       1.0,
		Resources:      []resources.Resource{},
	}

	progression := make([]skillgraph.Difficulty, degradedWeeks)
	for i := range progression {
		progression[i] = skillgraph.Beginner
	}

	return &Pathway{
		ID:          pathwayID(req),
		Title:       Title(req.CareerGoals, req.FocusAreas),
		Description: Description(req.CareerGoals, req.FocusAreas, req.Timeline),
		Modules: []curriculum.Module{{
			ID:             "module_1",
			Name:           "Getting Started",
			Description:    "Build a foundation before choosing a specialization",
			Topics:         []curriculum.Topic{topic},
			EstimatedWeeks: degradedWeeks,
			Difficulty:     skillgraph.Beginner,
			ModuleType:     curriculum.ModuleCore,
		}},
		TotalDurationWeeks:    degradedWeeks,
		DifficultyProgression: progression,
		TargetRole:            targetRole(req.CareerGoals),
		SkillsCovered:         []string{},
		LearningObjectives:    generalObjectives(),
		AdaptationMetadata:    g.metadata(req, true),
	}
}

func (g *Generator) metadata(req Request, degraded bool) Metadata {
	return Metadata{
		CreatedAt:           g.now().UTC(),
		LearningProfile:     req.Profile,
		OptimizationVersion: OptimizationVersion,
		Degraded:            degraded,
	}
}

// pathwayID derives a stable ID from the request inputs.
func pathwayID(req Request) string {
	canonical, err := json.Marshal(struct {
		Goals    []string           `json:"goals"`
		Focus    []string           `json:"focus"`
		Timeline string             `json:"timeline"`
		Profile  assessment.Profile `json:"profile"`
	}{req.CareerGoals, req.FocusAreas, req.Timeline, req.Profile})
	if err != nil {
		// Profiles are plain data; marshalling cannot fail in practice.
		canonical = []byte(fmt.Sprint(req))
	}
	return uuid.NewSHA1(idSpace, canonical).String()
}

func targetRole(goals []string) string {
	if len(goals) > 0 {
		return goals[0]
	}
	return DefaultRole
}

// Title returns the pathway headline for the goals and focus areas.
func Title(goals, focus []string) string {
	switch {
	case len(goals) > 0 && len(focus) > 0:
		return fmt.Sprintf("Become a %s: %s Specialization", goals[0], focus[0])
	case len(goals) > 0:
		return fmt.Sprintf("Complete %s Learning Path", goals[0])
	case len(focus) > 0:
		return fmt.Sprintf("Master %s: Comprehensive Guide", focus[0])
	}
	return "Personalized Learning Journey"
}

// Description returns the pathway summary paragraph.
func Description(goals, focus []string, label string) string {
	var parts []string
	if len(goals) > 0 {
		parts = append(parts, "This comprehensive pathway will prepare you for a career as a "+goals[0])
	}
	if len(focus) > 0 {
		parts = append(parts, "with specialized focus on "+strings.Join(focus, ", "))
	}
	if label == "" {
		label = "about six months"
	}
	parts = append(parts,
		"Designed to be completed in "+strings.ToLower(label),
		"this adaptive curriculum combines theory, practice, and real-world projects")
	return strings.Join(parts, ". ") + "."
}

func (g *Generator) objectives(targets, goals []string) []string {
	var out []string
	for _, skill := range targets[:min(5, len(targets))] {
		if g.graph.Has(skill) {
			out = append(out, fmt.Sprintf("Master %s concepts and applications", curriculum.Humanize(skill)))
		}
	}
	if len(goals) > 0 {
		if p, ok := g.catalog.Lookup(goals[0]); ok {
			for _, soft := range p.SoftSkills[:min(2, len(p.SoftSkills))] {
				out = append(out, fmt.Sprintf("Develop %s abilities", curriculum.Humanize(soft)))
			}
		}
	}
	out = append(out, generalObjectives()...)
	return out[:min(maxObjectives, len(out))]
}

func generalObjectives() []string {
	return []string{
		"Build a strong portfolio of projects",
		"Gain hands-on experience with industry tools",
		"Develop problem-solving and critical thinking skills",
	}
}
