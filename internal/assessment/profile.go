package assessment

// Profile is the learner profile produced from one assessment submission.
// It is treated as read-only once returned by Score.
type Profile struct {
	LearningStyles  LearningStyles  `json:"learning_styles"`
	KnowledgeLevels KnowledgeLevels `json:"knowledge_levels"`
	Preferences     Preferences     `json:"preferences"`
	CareerProfile   CareerProfile   `json:"career_profile"`
	Recommendations Recommendations `json:"recommendations"`
}

type LearningStyles struct {
	VARK            VARK            `json:"vark"`
	Kolb            Kolb            `json:"kolb"`
	Gardner         Gardner         `json:"gardner"`
	FelderSilverman FelderSilverman `json:"felder_silverman"`
}

// VARK scores are percentages of answered VARK questions.
type VARK struct {
	Scores         map[string]float64 `json:"scores"`
	PrimaryStyle   string             `json:"primary_style"`
	SecondaryStyle string             `json:"secondary_style,omitempty"`
	Multimodal     bool               `json:"multimodal"`
}

type Kolb struct {
	Style     string         `json:"style"`
	Scores    map[string]int `json:"scores"`
	CEACScore int            `json:"ce_ac_score"`
	AEROScore int            `json:"ae_ro_score"`
}

type Gardner struct {
	Scores               map[string]float64 `json:"scores"`
	PrimaryIntelligences []string           `json:"primary_intelligences"`
	DominantIntelligence string             `json:"dominant_intelligence"`
}

type FelderSilverman struct {
	Dimensions    map[string]int    `json:"dimensions"`
	Styles        map[string]string `json:"styles"`
	BalanceScores map[string]int    `json:"balance_scores"`
}

// KnowledgeLevels maps knowledge areas (or skill IDs) to a level on the
// beginner, novice, intermediate, advanced, expert ladder.
type KnowledgeLevels struct {
	Areas        map[string]string `json:"areas"`
	OverallLevel string            `json:"overall_level"`
	Strengths    []string          `json:"strengths"`
	GrowthAreas  []string          `json:"growth_areas"`
}

// Preferences holds time commitment answers. Zero values mean unanswered.
type Preferences struct {
	WeeklyHours      float64 `json:"weekly_hours,omitempty"`
	SessionLength    float64 `json:"session_length,omitempty"`
	Consistency      int     `json:"consistency,omitempty"`
	LearningApproach string  `json:"s1_approach,omitempty"`
	ProblemSolving   string  `json:"s2_approach,omitempty"`
}

type CareerProfile struct {
	TargetRole string `json:"target_role,omitempty"`
	Timeline   string `json:"timeline,omitempty"`
	Motivation string `json:"motivation,omitempty"`
}

type Recommendations struct {
	ContentTypes       []string `json:"content_types"`
	LearningStrategies []string `json:"learning_strategies"`
	Pacing             Pacing   `json:"pacing"`
	FocusAreas         []string `json:"focus_areas"`
}

type Pacing struct {
	WeeklyCommitment float64 `json:"weekly_commitment"`
	SessionDuration  float64 `json:"session_duration"`
	Intensity        string  `json:"intensity"`
}

// Default style values used when a profile leaves them blank.
const (
	DefaultVARKStyle    = "visual"
	DefaultKolbStyle    = "assimilating"
	DefaultOverallLevel = "beginner"
)

// PrimaryVARK returns the VARK primary style, or visual when unset.
func (p Profile) PrimaryVARK() string {
	if p.LearningStyles.VARK.PrimaryStyle == "" {
		return DefaultVARKStyle
	}
	return p.LearningStyles.VARK.PrimaryStyle
}

// KolbStyle returns the Kolb style, or assimilating when unset.
func (p Profile) KolbStyle() string {
	if p.LearningStyles.Kolb.Style == "" {
		return DefaultKolbStyle
	}
	return p.LearningStyles.Kolb.Style
}

// Overall returns the overall experience level, or beginner when unset.
func (k KnowledgeLevels) Overall() string {
	if k.OverallLevel == "" {
		return DefaultOverallLevel
	}
	return k.OverallLevel
}
