// Package adapt analyzes learner feedback on a pathway and produces an
// advisory adaptation report. Stored pathways are never rewritten.
package adapt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/abhisek/pathwise/internal/store"
)

// ErrInvalidFeedback is returned when feedback values are out of range.
var ErrInvalidFeedback = errors.New("invalid feedback")

// Analysis thresholds.
const (
	ExpectedTopicMinutes = 60.0
	MaxTimeEfficiency    = 2.0
	ReviewInterval       = 14 * 24 * time.Hour

	struggleCompletion = 0.6
	struggleDifficulty = 3.0
	neutralDifficulty  = 3.0
	neutralEngagement  = 3.0
)

// Directive values.
const (
	None     = "none"
	Decrease = "decrease"
	Increase = "increase"
	Slower   = "slower"
	Faster   = "faster"
)

// Feedback is per-topic progress reported by a learner. Keys are topic IDs
// or names.
type Feedback struct {
	CompletionRates   map[string]float64 `json:"completion_rates" validate:"dive,gte=0,lte=1"`
	TimeSpent         map[string]float64 `json:"time_spent" validate:"dive,gte=0"`
	DifficultyRatings map[string]float64 `json:"difficulty_ratings" validate:"dive,gte=1,lte=5"`
	EngagementScores  map[string]float64 `json:"engagement_scores" validate:"dive,gte=0,lte=5"`
}

// Analysis summarizes learner performance.
type Analysis struct {
	OverallProgress  float64  `json:"overall_progress"`
	LearningVelocity float64  `json:"learning_velocity"`
	StruggleAreas    []string `json:"struggle_areas"`
	EngagementLevel  float64  `json:"engagement_level"`
	TimeEfficiency   float64  `json:"time_efficiency"`
}

// Directives are the adjustments an Analysis calls for.
type Directives struct {
	Difficulty         string   `json:"difficulty_adjustment"`
	Pacing             string   `json:"pacing_adjustment"`
	ContentTypeChanges []string `json:"content_type_changes"`
	AdditionalSupport  []string `json:"additional_support"`
	AdvancedChallenges []string `json:"advanced_challenges"`
}

// Report is the advisory result of Adapt.
type Report struct {
	PathwayID          string     `json:"pathway_id"`
	AdaptationsApplied []string   `json:"adaptations_applied"`
	Directives         Directives `json:"directives"`
	Analysis           Analysis   `json:"analysis"`
	Timestamp          time.Time  `json:"adaptation_timestamp"`
	PerformanceMetrics Feedback   `json:"performance_metrics"`
	NextReviewDate     time.Time  `json:"next_review_date"`
}

// Analyze computes performance metrics from fb. Missing data yields
// neutral defaults.
func Analyze(fb Feedback) Analysis {
	a := Analysis{
		OverallProgress:  0,
		LearningVelocity: 1.0,
		StruggleAreas:    []string{},
		EngagementLevel:  neutralEngagement,
		TimeEfficiency:   1.0,
	}

	totalCompletion := sum(fb.CompletionRates)
	if n := len(fb.CompletionRates); n > 0 {
		a.OverallProgress = totalCompletion / float64(n)
	}

	totalTime := sum(fb.TimeSpent)
	if len(fb.TimeSpent) > 0 && len(fb.CompletionRates) > 0 && totalTime > 0 {
		a.LearningVelocity = totalCompletion / totalTime
	}

	for topic, completion := range fb.CompletionRates {
		difficulty, ok := fb.DifficultyRatings[topic]
		if !ok {
			difficulty = neutralDifficulty
		}
		if completion < struggleCompletion && difficulty > struggleDifficulty {
			a.StruggleAreas = append(a.StruggleAreas, topic)
		}
	}
	sort.Strings(a.StruggleAreas)

	if n := len(fb.EngagementScores); n > 0 {
		a.EngagementLevel = sum(fb.EngagementScores) / float64(n)
	}

	if n := len(fb.TimeSpent); n > 0 {
		if avg := totalTime / float64(n); avg > 0 {
			a.TimeEfficiency = min(ExpectedTopicMinutes/avg, MaxTimeEfficiency)
		}
	}
	return a
}

// Needs maps an Analysis to adaptation directives.
func Needs(a Analysis) Directives {
	d := Directives{
		Difficulty:         None,
		Pacing:             None,
		ContentTypeChanges: []string{},
		AdditionalSupport:  []string{},
		AdvancedChallenges: []string{},
	}

	switch {
	case a.OverallProgress < 0.4:
		d.Difficulty = Decrease
	case a.OverallProgress > 0.9:
		d.Difficulty = Increase
	}

	switch {
	case a.LearningVelocity < 0.5:
		d.Pacing = Slower
	case a.LearningVelocity > 1.5:
		d.Pacing = Faster
	}

	if a.EngagementLevel < 2.5 {
		d.ContentTypeChanges = []string{"more_interactive", "shorter_sessions", "gamification"}
	}
	if len(a.StruggleAreas) > 0 {
		d.AdditionalSupport = []string{"peer_mentoring", "extra_practice", "prerequisite_review"}
	}
	return d
}

// Summary renders directives as human-readable lines.
func (d Directives) Summary() []string {
	out := []string{}
	if d.Difficulty != None {
		out = append(out, "Adjusted difficulty: "+d.Difficulty)
	}
	if d.Pacing != None {
		out = append(out, "Modified pacing: "+d.Pacing)
	}
	if len(d.ContentTypeChanges) > 0 {
		out = append(out, "Changed content types: "+strings.Join(d.ContentTypeChanges, ", "))
	}
	if len(d.AdditionalSupport) > 0 {
		out = append(out, "Added support: "+strings.Join(d.AdditionalSupport, ", "))
	}
	return out
}

// Adapter produces adaptation reports and optionally records them.
type Adapter struct {
	repo     store.AdaptationRepo
	validate *validator.Validate
	now      func() time.Time
	logger   *zap.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithRepo records every report in repo.
func WithRepo(repo store.AdaptationRepo) Option {
	return func(a *Adapter) { a.repo = repo }
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(a *Adapter) { a.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *Adapter) { a.logger = l }
}

// New returns an Adapter.
func New(opts ...Option) *Adapter {
	a := &Adapter{
		validate: validator.New(),
		now:      time.Now,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Adapt analyzes fb for pathwayID and returns the advisory report. When a
// repo is configured the report is appended to the pathway's history.
func (ad *Adapter) Adapt(ctx context.Context, pathwayID string, fb Feedback) (Report, error) {
	if err := ad.validate.Struct(fb); err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrInvalidFeedback, err)
	}

	analysis := Analyze(fb)
	directives := Needs(analysis)
	now := ad.now().UTC()

	report := Report{
		PathwayID:          pathwayID,
		AdaptationsApplied: directives.Summary(),
		Directives:         directives,
		Analysis:           analysis,
		Timestamp:          now,
		PerformanceMetrics: fb,
		NextReviewDate:     now.Add(ReviewInterval),
	}

	ad.logger.Info("pathway adaptation analyzed",
		zap.String("pathway_id", pathwayID),
		zap.Float64("progress", analysis.OverallProgress),
		zap.Strings("struggle_areas", analysis.StruggleAreas),
		zap.Strings("adaptations", report.AdaptationsApplied))

	if ad.repo != nil {
		body, err := json.Marshal(report)
		if err != nil {
			return Report{}, fmt.Errorf("marshal adaptation report: %w", err)
		}
		if err := ad.repo.Append(ctx, store.AdaptationRecord{
			PathwayID: pathwayID,
			CreatedAt: now,
			Body:      body,
		}); err != nil {
			return Report{}, err
		}
	}
	return report, nil
}

func sum(m map[string]float64) float64 {
	var s float64
	for _, v := range m {
		s += v
	}
	return s
}
