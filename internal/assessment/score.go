package assessment

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// Responses holds submitted answers keyed by question ID. Choices are
// option indices; Rankings are ordered option indices (most preferred first).
type Responses struct {
	Choices  map[string]int
	Rankings map[string][]int
}

// ParseResponses decodes a JSON object whose values are either an option
// index or an array of option indices.
func ParseResponses(data []byte) (Responses, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Responses{}, fmt.Errorf("decode responses: %w", err)
	}
	r := Responses{Choices: map[string]int{}, Rankings: map[string][]int{}}
	for id, v := range raw {
		var n int
		if err := json.Unmarshal(v, &n); err == nil {
			r.Choices[id] = n
			continue
		}
		var list []int
		if err := json.Unmarshal(v, &list); err != nil {
			return Responses{}, fmt.Errorf("response %q: expected option index or index list", id)
		}
		r.Rankings[id] = list
	}
	return r, nil
}

func (r Responses) choice(id string) (int, bool) {
	n, ok := r.Choices[id]
	return n, ok
}

// Score builds a learner profile by per-question table lookup.
func Score(r Responses) Profile {
	p := Profile{
		LearningStyles: LearningStyles{
			VARK:            scoreVARK(r),
			Kolb:            scoreKolb(r),
			Gardner:         scoreGardner(r),
			FelderSilverman: scoreFelderSilverman(r),
		},
		KnowledgeLevels: scoreKnowledge(r),
		Preferences:     scorePreferences(r),
		CareerProfile:   scoreCareer(r),
	}
	p.Recommendations = recommend(p)
	return p
}

type ranked struct {
	name  string
	score float64
}

// rankDesc sorts names by score descending, keeping declaration order on ties.
func rankDesc(names []string, scores map[string]float64) []ranked {
	out := make([]ranked, len(names))
	for i, n := range names {
		out[i] = ranked{n, scores[n]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].score > out[j].score })
	return out
}

func percentages(names []string, counts map[string]float64) map[string]float64 {
	var total float64
	for _, n := range names {
		total += counts[n]
	}
	if total == 0 {
		total = 1
	}
	pct := make(map[string]float64, len(names))
	for _, n := range names {
		pct[n] = counts[n] / total * 100
	}
	return pct
}

var varkStyles = []string{"visual", "auditory", "reading_writing", "kinesthetic"}

// varkKey maps question → option index → style.
var varkKey = map[string]map[int]string{
	"v1": {0: "reading_writing", 1: "visual", 2: "auditory", 3: "kinesthetic"},
	"v2": {0: "visual", 1: "auditory", 2: "reading_writing", 3: "kinesthetic"},
	"v3": {0: "visual", 1: "auditory", 2: "reading_writing", 3: "kinesthetic"},
}

func scoreVARK(r Responses) VARK {
	counts := map[string]float64{}
	for _, q := range []string{"v1", "v2", "v3"} {
		if c, ok := r.choice(q); ok {
			if style, ok := varkKey[q][c]; ok {
				counts[style]++
			}
		}
	}
	pct := percentages(varkStyles, counts)
	order := rankDesc(varkStyles, pct)

	above := 0
	for _, s := range varkStyles {
		if pct[s] > 25 {
			above++
		}
	}
	return VARK{
		Scores:         pct,
		PrimaryStyle:   order[0].name,
		SecondaryStyle: order[1].name,
		Multimodal:     above > 1,
	}
}

var kolbKey = map[string]map[int][]string{
	"k1": {
		0: {"active_experimentation"}, 3: {"active_experimentation"},
		1: {"reflective_observation"}, 2: {"reflective_observation"},
	},
	"k2": {
		0: {"concrete_experience"}, 1: {"reflective_observation"},
		2: {"abstract_conceptualization"}, 3: {"active_experimentation"},
	},
}

func scoreKolb(r Responses) Kolb {
	scores := map[string]int{
		"concrete_experience":        0,
		"abstract_conceptualization": 0,
		"active_experimentation":     0,
		"reflective_observation":     0,
	}
	for _, q := range []string{"k1", "k2"} {
		if c, ok := r.choice(q); ok {
			for _, dim := range kolbKey[q][c] {
				scores[dim]++
			}
		}
	}
	ceac := scores["concrete_experience"] - scores["abstract_conceptualization"]
	aero := scores["active_experimentation"] - scores["reflective_observation"]

	style := "assimilating"
	switch {
	case ceac > 0 && aero > 0:
		style = "accommodating"
	case ceac > 0 && aero < 0:
		style = "diverging"
	case ceac < 0 && aero > 0:
		style = "converging"
	}
	return Kolb{Style: style, Scores: scores, CEACScore: ceac, AEROScore: aero}
}

var intelligences = []string{
	"logical_mathematical", "linguistic", "spatial", "musical",
	"bodily_kinesthetic", "interpersonal", "intrapersonal", "naturalistic",
}

func scoreGardner(r Responses) Gardner {
	counts := map[string]float64{}
	if ranking, ok := r.Rankings["g1"]; ok {
		for i, c := range ranking {
			if c >= 0 && c < len(intelligences) {
				counts[intelligences[c]] += float64(len(ranking) - i)
			}
		}
	}
	if c, ok := r.choice("g2"); ok && c >= 0 && c < len(intelligences) {
		counts[intelligences[c]] += 3
	}

	pct := percentages(intelligences, counts)
	order := rankDesc(intelligences, pct)
	top := make([]string, 0, 3)
	for _, o := range order[:3] {
		top = append(top, o.name)
	}
	return Gardner{Scores: pct, PrimaryIntelligences: top, DominantIntelligence: order[0].name}
}

// fsDims lists question, dimension, and the pole for option 0 and option 1.
var fsDims = []struct {
	question, dimension, axis, first, second string
}{
	{"fs1", "active_reflective", "processing", "active", "reflective"},
	{"fs2", "sensing_intuitive", "perception", "sensing", "intuitive"},
	{"fs3", "visual_verbal", "input", "visual", "verbal"},
	{"fs4", "sequential_global", "understanding", "sequential", "global"},
}

func scoreFelderSilverman(r Responses) FelderSilverman {
	fs := FelderSilverman{
		Dimensions:    map[string]int{},
		Styles:        map[string]string{},
		BalanceScores: map[string]int{},
	}
	for _, d := range fsDims {
		score := 0
		if c, ok := r.choice(d.question); ok {
			if c == 0 {
				score = 1
			} else {
				score = -1
			}
		}
		fs.Dimensions[d.dimension] = score
		fs.BalanceScores[d.dimension] = int(math.Abs(float64(score)))
		if score > 0 {
			fs.Styles[d.axis] = d.first
		} else {
			fs.Styles[d.axis] = d.second
		}
	}
	return fs
}

var levels = []string{"beginner", "novice", "intermediate", "advanced", "expert"}

var knowledgeAreas = []struct{ area, question string }{
	{"programming", "kl1"},
	{"data_analysis", "kl2"},
	{"machine_learning", "kl3"},
}

func levelRank(level string) int {
	for i, l := range levels {
		if l == level {
			return i
		}
	}
	return 0
}

func scoreKnowledge(r Responses) KnowledgeLevels {
	k := KnowledgeLevels{
		Areas:       map[string]string{},
		Strengths:   []string{},
		GrowthAreas: []string{},
	}
	for _, ka := range knowledgeAreas {
		c, ok := r.choice(ka.question)
		if !ok {
			continue
		}
		level := "beginner"
		if c >= 0 && c < len(levels) {
			level = levels[c]
		}
		k.Areas[ka.area] = level
		switch level {
		case "advanced", "expert":
			k.Strengths = append(k.Strengths, ka.area)
		case "beginner", "novice":
			k.GrowthAreas = append(k.GrowthAreas, ka.area)
		}
	}

	k.OverallLevel = DefaultOverallLevel
	if len(k.Areas) > 0 {
		sum := 0
		for _, l := range k.Areas {
			sum += levelRank(l)
		}
		avg := float64(sum) / float64(len(k.Areas))
		best := math.Inf(1)
		for i, l := range levels {
			if d := math.Abs(float64(i) - avg); d < best {
				best = d
				k.OverallLevel = l
			}
		}
	}
	return k
}

var (
	weeklyHours   = []float64{2, 5.5, 10, 16.5, 25}
	sessionLength = []float64{22.5, 45, 90, 180, 300}
	approaches    = map[string][]string{
		"s1": {"documentation_first", "video_based", "hands_on", "community_driven"},
		"s2": {"persistent", "reflective", "collaborative", "research_oriented"},
	}
)

func pick[T any](table []T, i int, fallback T) T {
	if i < 0 || i >= len(table) {
		return fallback
	}
	return table[i]
}

func scorePreferences(r Responses) Preferences {
	var p Preferences
	if c, ok := r.choice("t1"); ok {
		p.WeeklyHours = pick(weeklyHours, c, 5)
	}
	if c, ok := r.choice("t2"); ok {
		p.SessionLength = pick(sessionLength, c, 45)
	}
	if c, ok := r.choice("t3"); ok {
		p.Consistency = pick([]int{1, 2, 3, 4, 5}, c, 3)
	}
	if c, ok := r.choice("s1"); ok {
		p.LearningApproach = pick(approaches["s1"], c, "balanced")
	}
	if c, ok := r.choice("s2"); ok {
		p.ProblemSolving = pick(approaches["s2"], c, "balanced")
	}
	return p
}

func scoreCareer(r Responses) CareerProfile {
	var cp CareerProfile
	if c, ok := r.choice("c1"); ok {
		cp.TargetRole = pick(careerOptions, c, "")
	}
	if c, ok := r.choice("c2"); ok {
		cp.Timeline = pick(timelineOptions, c, "")
	}
	if c, ok := r.choice("c3"); ok {
		cp.Motivation = pick(motivationOptions, c, "")
	}
	return cp
}

var (
	contentByVARK = map[string][]string{
		"visual":          {"infographics", "diagrams", "flowcharts", "video_demos", "interactive_visualizations"},
		"auditory":        {"podcasts", "video_lectures", "discussion_forums", "verbal_explanations"},
		"reading_writing": {"articles", "documentation", "written_tutorials", "note_taking_exercises"},
		"kinesthetic":     {"hands_on_projects", "coding_exercises", "simulations", "lab_work"},
	}
	strategiesByKolb = map[string][]string{
		"accommodating": {"trial_and_error", "real_world_projects", "peer_collaboration"},
		"diverging":     {"brainstorming", "case_studies", "group_discussions"},
		"converging":    {"practical_applications", "problem_solving", "focused_practice"},
		"assimilating":  {"theoretical_understanding", "logical_progression", "comprehensive_research"},
	}
	focusByRole = map[string][]string{
		"Software Developer": {"programming", "algorithms", "system_design", "testing"},
		"Data Scientist":     {"statistics", "machine_learning", "data_analysis", "programming"},
		"AI/ML Engineer":     {"machine_learning", "deep_learning", "programming", "mathematics"},
		"Product Manager":    {"business_analysis", "user_research", "project_management", "data_analysis"},
	}
)

func lookupOr(table map[string][]string, key, fallback string) []string {
	if v, ok := table[key]; ok {
		return append([]string(nil), v...)
	}
	return append([]string(nil), table[fallback]...)
}

func recommend(p Profile) Recommendations {
	rec := Recommendations{
		ContentTypes:       lookupOr(contentByVARK, p.PrimaryVARK(), DefaultVARKStyle),
		LearningStrategies: lookupOr(strategiesByKolb, p.KolbStyle(), DefaultKolbStyle),
		FocusAreas:         lookupOr(focusByRole, p.CareerProfile.TargetRole, "Software Developer"),
	}

	rec.Pacing = Pacing{WeeklyCommitment: 5, SessionDuration: 45, Intensity: "moderate"}
	if p.Preferences.WeeklyHours > 0 {
		rec.Pacing.WeeklyCommitment = p.Preferences.WeeklyHours
	}
	if p.Preferences.SessionLength > 0 {
		rec.Pacing.SessionDuration = p.Preferences.SessionLength
	}
	if p.Preferences.Consistency > 0 && p.Preferences.Consistency < 3 {
		rec.Pacing.Intensity = "flexible"
	}
	return rec
}
