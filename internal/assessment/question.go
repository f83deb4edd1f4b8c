// Package assessment turns self-reported questionnaire answers into a
// learner profile.
package assessment

// QuestionType describes how a question is answered.
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	Scale          QuestionType = "scale"
	Ranking        QuestionType = "ranking"
)

// Category groups questions by the model they feed.
type Category string

const (
	CategoryVARK             Category = "vark"
	CategoryKolb             Category = "kolb"
	CategoryGardner          Category = "gardner"
	CategoryFelderSilverman  Category = "felder_silverman"
	CategoryKnowledgeLevel   Category = "knowledge_level"
	CategoryTimeCommitment   Category = "time_commitment"
	CategoryCareerGoals      Category = "career_goals"
	CategoryLearningApproach Category = "learning_approach"
	CategoryProblemSolving   Category = "problem_solving"
)

// Question is one entry in the assessment bank. Answers are option indices.
type Question struct {
	ID       string       `json:"id"`
	Text     string       `json:"text"`
	Type     QuestionType `json:"type"`
	Options  []string     `json:"options"`
	Category Category     `json:"category"`
}

var (
	careerOptions     = []string{"Software Developer", "Data Scientist", "Product Manager", "AI/ML Engineer", "Cybersecurity Specialist", "DevOps Engineer", "UI/UX Designer", "Other"}
	timelineOptions   = []string{"3-6 months", "6-12 months", "1-2 years", "2-3 years", "3+ years"}
	motivationOptions = []string{"Career change", "Skill advancement", "Personal interest", "Academic requirements", "Business needs"}
)

var bank = []Question{
	{"v1", "When learning something new, you prefer to:", MultipleChoice,
		[]string{"Read detailed explanations and take notes", "Watch videos or demonstrations", "Listen to lectures or podcasts", "Practice hands-on activities"}, CategoryVARK},
	{"v2", "When trying to remember information, you find it easier when:", MultipleChoice,
		[]string{"You can visualize charts, diagrams, or mind maps", "You hear it explained aloud", "You write it down or see it in text", "You can practice or apply it"}, CategoryVARK},
	{"v3", "In a meeting, you prefer to:", MultipleChoice,
		[]string{"See slides and visual presentations", "Hear verbal explanations", "Read written materials beforehand", "Participate in interactive discussions"}, CategoryVARK},

	{"k1", "When facing a new challenge, you typically:", MultipleChoice,
		[]string{"Jump in and learn by doing", "Think through all possibilities first", "Look for established methods and theories", "Experiment with different approaches"}, CategoryKolb},
	{"k2", "You learn best when:", MultipleChoice,
		[]string{"You can apply concepts immediately", "You can reflect on experiences", "You understand the underlying theory", "You can experiment freely"}, CategoryKolb},

	{"g1", "Which activities do you enjoy most?", Ranking,
		[]string{"Solving math problems", "Writing stories or essays", "Drawing or designing", "Playing music", "Physical activities or sports", "Working with others", "Reflecting on life's big questions", "Observing nature"}, CategoryGardner},
	{"g2", "When explaining something to others, you tend to:", MultipleChoice,
		[]string{"Use logical steps and examples", "Tell stories or use analogies", "Draw diagrams or use visuals", "Use rhythm or music", "Use gestures and movement", "Involve group activities", "Connect to deeper meanings", "Use nature metaphors"}, CategoryGardner},

	{"fs1", "I understand something better after I:", MultipleChoice,
		[]string{"Try it out", "Think it through"}, CategoryFelderSilverman},
	{"fs2", "I would rather be considered:", MultipleChoice,
		[]string{"Realistic", "Innovative"}, CategoryFelderSilverman},
	{"fs3", "When I think about what I did yesterday, I am most likely to get:", MultipleChoice,
		[]string{"A picture", "Words"}, CategoryFelderSilverman},
	{"fs4", "I tend to:", MultipleChoice,
		[]string{"Understand details of a subject but may be fuzzy about its overall structure", "Understand the big picture but may lack details"}, CategoryFelderSilverman},

	{"kl1", "How would you rate your programming experience?", Scale,
		[]string{"Beginner", "Novice", "Intermediate", "Advanced", "Expert"}, CategoryKnowledgeLevel},
	{"kl2", "How comfortable are you with data analysis?", Scale,
		[]string{"Never done it", "Basic understanding", "Some experience", "Quite comfortable", "Expert level"}, CategoryKnowledgeLevel},
	{"kl3", "Your experience with machine learning:", Scale,
		[]string{"No experience", "Heard about it", "Some online courses", "Practical projects", "Professional experience"}, CategoryKnowledgeLevel},

	{"t1", "How much time can you dedicate to learning per week?", MultipleChoice,
		[]string{"1-3 hours", "4-7 hours", "8-12 hours", "13-20 hours", "20+ hours"}, CategoryTimeCommitment},
	{"t2", "What's your preferred learning session length?", MultipleChoice,
		[]string{"15-30 minutes", "30-60 minutes", "1-2 hours", "2-4 hours", "4+ hours"}, CategoryTimeCommitment},
	{"t3", "How consistent is your learning schedule?", MultipleChoice,
		[]string{"Very irregular", "Somewhat irregular", "Moderately consistent", "Very consistent", "Extremely structured"}, CategoryTimeCommitment},

	{"c1", "What's your primary career goal?", MultipleChoice, careerOptions, CategoryCareerGoals},
	{"c2", "In what timeframe do you want to achieve your goal?", MultipleChoice, timelineOptions, CategoryCareerGoals},
	{"c3", "What's your motivation for learning?", MultipleChoice, motivationOptions, CategoryCareerGoals},

	{"s1", "You're tasked with learning a new technology for work. Your approach:", MultipleChoice,
		[]string{"Read documentation thoroughly first", "Find video tutorials", "Jump into a hands-on project", "Find a mentor or join a community"}, CategoryLearningApproach},
	{"s2", "When you get stuck on a problem, you typically:", MultipleChoice,
		[]string{"Keep trying different approaches", "Take a break and come back later", "Ask for help immediately", "Research similar problems online"}, CategoryProblemSolving},
}

// Questions returns the full question bank in presentation order.
func Questions() []Question {
	out := make([]Question, len(bank))
	copy(out, bank)
	return out
}

// InitialQuestions returns at most two questions per scored category,
// keeping a first session short.
func InitialQuestions() []Question {
	order := []Category{
		CategoryVARK, CategoryKolb, CategoryGardner, CategoryFelderSilverman,
		CategoryKnowledgeLevel, CategoryTimeCommitment, CategoryCareerGoals, CategoryLearningApproach,
	}
	var out []Question
	for _, cat := range order {
		n := 0
		for _, q := range bank {
			if q.Category == cat && n < 2 {
				out = append(out, q)
				n++
			}
		}
	}
	return out
}
