package domain

// Category groups quiz questions by subject.
type Category string

const (
	CategoryScience  Category = "Science"
	CategoryHistory  Category = "History"
	CategoryFunFacts Category = "FunFacts"
)

// Categories lists the selectable categories in menu order.
var Categories = []Category{CategoryScience, CategoryHistory, CategoryFunFacts}

// Difficulty drives the scoring delta of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists the selectable difficulties in menu order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParseCategory matches raw exactly (case-sensitive) against the known categories.
func ParseCategory(raw string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == raw {
			return c, true
		}
	}
	return "", false
}

// ParseDifficulty matches raw exactly (case-sensitive) against the known difficulties.
func ParseDifficulty(raw string) (Difficulty, bool) {
	for _, d := range Difficulties {
		if string(d) == raw {
			return d, true
		}
	}
	return "", false
}

// Question is an immutable free-text quiz question.
type Question struct {
	ID         string     `json:"id"`
	Text       string     `json:"text"`
	Category   Category   `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
	Answer     string     `json:"answer"`
}

// QuizPlayer is the participant of one quiz session.
type QuizPlayer struct {
	Name  string
	Score int
}

// Tier is the closing verdict of a quiz.
type Tier string

const (
	TierRoyalty  Tier = "royalty"
	TierTraining Tier = "training"
	TierNextTime Tier = "next_time"
)

// QuizResult summarizes a finished quiz session.
type QuizResult struct {
	Player     string     `json:"player"`
	Category   Category   `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
	Asked      int        `json:"asked"`
	Correct    int        `json:"correct"`
	PityBonus  bool       `json:"pityBonus"`
	Score      int        `json:"score"`
	Tier       Tier       `json:"tier"`
}

// GameKind names the two games a server can host.
type GameKind string

const (
	GameAdventure GameKind = "adventure"
	GameQuiz      GameKind = "quiz"
)
