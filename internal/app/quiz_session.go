package app

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"knlang-arcade/internal/domain"
	"knlang-arcade/internal/prompt"
)

// DefaultQuizPlayerName is kept when the player gives no name.
const DefaultQuizPlayerName = "Unknown Warrior"

// QuizSession is one sequential pass through the quiz; it is not reusable.
type QuizSession struct {
	service *QuizService
	in      prompt.Prompter
	out     io.Writer
	rnd     *rand.Rand

	player     domain.QuizPlayer
	category   domain.Category
	difficulty domain.Difficulty
	asked      int
	correct    int
	pity       bool
	closed     bool
}

// Run walks name, category, difficulty, questions and the final verdict.
// Input ending early skips the remaining prompts and still prints the verdict.
func (s *QuizSession) Run(ctx context.Context) (domain.QuizResult, error) {
	s.println("\nWelcome to *Quiz Master*, where knowledge meets sarcasm!\n")

	name, err := s.read(ctx, "Enter your name, brave human: ")
	if err != nil {
		return domain.QuizResult{}, err
	}
	if name = strings.TrimSpace(name); name != "" {
		s.player.Name = name
	}

	if err := s.chooseCategory(ctx); err != nil {
		return domain.QuizResult{}, err
	}
	if err := s.chooseDifficulty(ctx); err != nil {
		return domain.QuizResult{}, err
	}

	s.printf("\nGenerating your quiz on %s (%s)...\n\n", s.category, s.difficulty)

	pool, err := s.service.questions.GetQuestions(ctx, s.category, s.difficulty)
	if err != nil {
		return domain.QuizResult{}, fmt.Errorf("load questions: %w", err)
	}
	for _, q := range s.selectQuestions(pool) {
		if s.closed {
			break
		}
		if err := s.ask(ctx, q); err != nil {
			return domain.QuizResult{}, err
		}
	}

	return s.finish(), nil
}

// Player returns the player as it stands now.
func (s *QuizSession) Player() domain.QuizPlayer {
	return s.player
}

func (s *QuizSession) chooseCategory(ctx context.Context) error {
	s.println("\nChoose a category: Science / History / FunFacts")
	raw, err := s.read(ctx, "Category: ")
	if err != nil {
		return err
	}
	category, ok := domain.ParseCategory(raw)
	if !ok {
		s.println("Invalid category. Defaulting to Science.")
		category = domain.CategoryScience
	}
	s.category = category
	return nil
}

func (s *QuizSession) chooseDifficulty(ctx context.Context) error {
	s.println("\nChoose difficulty: Easy / Medium / Hard")
	raw, err := s.read(ctx, "Difficulty: ")
	if err != nil {
		return err
	}
	difficulty, ok := domain.ParseDifficulty(raw)
	if !ok {
		s.println("Invalid choice. Defaulting to Easy.")
		difficulty = domain.DifficultyEasy
	}
	s.difficulty = difficulty
	return nil
}

// selectQuestions keeps the exact category/difficulty matches, grants the pity bonus
// when there are too few of them, then shuffles and truncates.
func (s *QuizSession) selectQuestions(pool []domain.Question) []domain.Question {
	limit := s.service.opts.MaxQuestions
	matched := domain.FilterQuestions(pool, s.category, s.difficulty)
	if len(matched) < limit && s.service.opts.PityBonus > 0 {
		s.printf("\nNot enough questions! Adding pity points +%d.\n\n", s.service.opts.PityBonus)
		s.player.Score += s.service.opts.PityBonus
		s.pity = true
	}
	s.rnd.Shuffle(len(matched), func(i, j int) {
		matched[i], matched[j] = matched[j], matched[i]
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

func (s *QuizSession) ask(ctx context.Context, q domain.Question) error {
	s.printf("Q%d: %s\n", s.asked+1, q.Text)
	answer, err := s.read(ctx, "Your answer: ")
	if err != nil {
		return err
	}
	if s.closed {
		return nil
	}
	s.asked++

	correct := sameAnswer(answer, q.Answer)
	if correct {
		s.correct++
		s.println("Well, someone paid attention in school!")
	} else {
		s.println("Close... if we were grading on imagination.")
	}
	s.player.Score += ScoreDelta(q.Difficulty, correct)
	s.printf("Your current score: %d\n", s.player.Score)
	s.println("---------------------------------")
	return nil
}

func (s *QuizSession) finish() domain.QuizResult {
	tier := TierFor(s.player.Score)

	s.println("\n============ QUIZ OVER ============\n")
	s.printf("Final Score: %d\n", s.player.Score)
	switch tier {
	case domain.TierRoyalty:
		s.println("Quiz Royalty has arrived!")
	case domain.TierTraining:
		s.println("Quiz Master in training.")
	case domain.TierNextTime:
		s.println("Better luck next time, genius.")
	}
	s.printf("Thanks for playing, %s!\n\n", s.player.Name)

	return domain.QuizResult{
		Player:     s.player.Name,
		Category:   s.category,
		Difficulty: s.difficulty,
		Asked:      s.asked,
		Correct:    s.correct,
		PityBonus:  s.pity,
		Score:      s.player.Score,
		Tier:       tier,
	}
}

// read returns "" once input has closed so the flow falls through to its defaults.
func (s *QuizSession) read(ctx context.Context, label string) (string, error) {
	if s.closed {
		return "", nil
	}
	line, err := s.in.ReadLine(ctx, label)
	if err != nil {
		if prompt.IsClosed(err) {
			s.closed = true
			return "", nil
		}
		return "", err
	}
	return line, nil
}

func (s *QuizSession) println(text string) {
	_, _ = fmt.Fprintln(s.out, text)
}

func (s *QuizSession) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

// sameAnswer compares answers after lower-casing both sides; no other folding applies.
func sameAnswer(given, want string) bool {
	return strings.ToLower(given) == strings.ToLower(want)
}
