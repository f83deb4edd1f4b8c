package skillgraph

// Difficulty is the learning difficulty of a skill, topic or module.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// AllDifficulties returns the difficulty ladder from easiest to hardest.
func AllDifficulties() []Difficulty {
	return []Difficulty{Beginner, Intermediate, Advanced}
}

// Rank returns the position of d on the difficulty ladder, or -1 if unknown.
func (d Difficulty) Rank() int {
	switch d {
	case Beginner:
		return 0
	case Intermediate:
		return 1
	case Advanced:
		return 2
	default:
		return -1
	}
}

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	return d.Rank() >= 0
}

// Category groups skills by subject area.
type Category string

const (
	CategoryFoundational    Category = "foundational"
	CategoryLanguage        Category = "language"
	CategoryMathematics     Category = "mathematics"
	CategoryDataScience     Category = "data_science"
	CategoryAIML            Category = "ai_ml"
	CategoryWebFrontend     Category = "web_frontend"
	CategoryWebBackend      Category = "web_backend"
	CategoryComputerScience Category = "computer_science"
	CategoryArchitecture    Category = "architecture"
	CategoryInfrastructure  Category = "infrastructure"
	CategorySecurity        Category = "security"
)

// Skill is a single node in the skill dependency graph.
// Identifiers are lowercase snake_case, e.g. "python_basics".
type Skill struct {
	ID            string
	Name          string
	Category      Category
	Difficulty    Difficulty
	Prerequisites []string
	Enables       []string
}
