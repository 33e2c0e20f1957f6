package app

import (
	"context"
	"io"
	"math/rand"
	"time"

	"knlang-arcade/internal/domain"
	"knlang-arcade/internal/prompt"
)

const (
	// DefaultMaxQuestions is how many questions a session asks at most.
	DefaultMaxQuestions = 5
	// DefaultPityBonus is added once when the filtered pool is smaller than DefaultMaxQuestions.
	DefaultPityBonus = 10
)

// QuestionRepository loads the question pool for one category and difficulty.
type QuestionRepository interface {
	GetQuestions(ctx context.Context, category domain.Category, difficulty domain.Difficulty) ([]domain.Question, error)
}

// SessionRegistry tracks the play sessions a server is hosting.
type SessionRegistry interface {
	Register(id string, kind domain.GameKind)
	Unregister(id string)
	Count() int
}

// QuizOptions tune the scoring rules of every session a QuizService creates.
type QuizOptions struct {
	MaxQuestions int
	// PityBonus zero means DefaultPityBonus; a negative value disables the bonus.
	PityBonus int
	// Seed fixes the shuffle order; zero seeds from the clock per session.
	Seed int64
}

// QuizService hands out quiz sessions backed by a question repository.
type QuizService struct {
	questions QuestionRepository
	opts      QuizOptions
	now       func() time.Time
}

func NewQuizService(questions QuestionRepository, opts QuizOptions) *QuizService {
	if opts.MaxQuestions <= 0 {
		opts.MaxQuestions = DefaultMaxQuestions
	}
	switch {
	case opts.PityBonus == 0:
		opts.PityBonus = DefaultPityBonus
	case opts.PityBonus < 0:
		opts.PityBonus = 0
	}
	return &QuizService{questions: questions, opts: opts, now: time.Now}
}

// NewSession prepares a session reading answers from in and narrating to out.
func (s *QuizService) NewSession(in prompt.Prompter, out io.Writer) *QuizSession {
	seed := s.opts.Seed
	if seed == 0 {
		seed = s.now().UnixNano()
	}
	return &QuizSession{
		service: s,
		in:      in,
		out:     out,
		rnd:     rand.New(rand.NewSource(seed)),
		player:  domain.QuizPlayer{Name: DefaultQuizPlayerName},
	}
}

// ScoreDelta is the score change for one answer; it depends only on difficulty and correctness.
func ScoreDelta(difficulty domain.Difficulty, correct bool) int {
	switch difficulty {
	case domain.DifficultyEasy:
		if correct {
			return 5
		}
		return -2
	case domain.DifficultyMedium:
		if correct {
			return 10
		}
		return -5
	case domain.DifficultyHard:
		if correct {
			return 15
		}
		return -7
	}
	return 0
}

// TierFor maps a final score onto its verdict.
func TierFor(score int) domain.Tier {
	switch {
	case score >= 60:
		return domain.TierRoyalty
	case score >= 30:
		return domain.TierTraining
	default:
		return domain.TierNextTime
	}
}
