package app_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"knlang-arcade/internal/app"
	"knlang-arcade/internal/domain"
	"knlang-arcade/internal/infra/memory"
	"knlang-arcade/internal/prompt"
)

func TestScoreDelta(t *testing.T) {
	cases := []struct {
		difficulty domain.Difficulty
		correct    bool
		want       int
	}{
		{domain.DifficultyEasy, true, 5},
		{domain.DifficultyEasy, false, -2},
		{domain.DifficultyMedium, true, 10},
		{domain.DifficultyMedium, false, -5},
		{domain.DifficultyHard, true, 15},
		{domain.DifficultyHard, false, -7},
	}
	for _, tc := range cases {
		if got := app.ScoreDelta(tc.difficulty, tc.correct); got != tc.want {
			t.Fatalf("ScoreDelta(%s, %v) = %d, want %d", tc.difficulty, tc.correct, got, tc.want)
		}
	}
}

func TestTierFor(t *testing.T) {
	cases := map[int]domain.Tier{
		75: domain.TierRoyalty,
		60: domain.TierRoyalty,
		59: domain.TierTraining,
		30: domain.TierTraining,
		29: domain.TierNextTime,
		25: domain.TierNextTime,
		-4: domain.TierNextTime,
	}
	for score, want := range cases {
		if got := app.TierFor(score); got != want {
			t.Fatalf("TierFor(%d) = %s, want %s", score, got, want)
		}
	}
}

func TestEasyScoreIsFivePerCorrectMinusTwoPerWrong(t *testing.T) {
	questions := uniformPool(domain.CategoryHistory, domain.DifficultyEasy, 5, "yes")
	service := newTestService(questions)

	var out bytes.Buffer
	script := prompt.NewScript("Ada", "History", "Easy", "yes", "YES", "no", "yes", "nope")
	result, err := service.NewSession(script, &out).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if result.Asked != 5 || result.Correct != 3 {
		t.Fatalf("expected 5 asked / 3 correct, got %+v", result)
	}
	if want := 5*3 - 2*2; result.Score != want {
		t.Fatalf("expected score %d, got %d", want, result.Score)
	}
	if result.PityBonus {
		t.Fatalf("pity bonus must not apply to a full pool")
	}
	if result.Player != "Ada" {
		t.Fatalf("expected player Ada, got %q", result.Player)
	}
}

func TestSmallPoolGrantsPityBonusOnce(t *testing.T) {
	questions := uniformPool(domain.CategoryFunFacts, domain.DifficultyHard, 2, "honey")
	service := newTestService(questions)

	script := prompt.NewScript("Bo", "FunFacts", "Hard", "honey", "honey", "honey", "honey")
	result, err := service.NewSession(script, &bytes.Buffer{}).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if !result.PityBonus {
		t.Fatalf("expected pity bonus")
	}
	if result.Asked != 2 {
		t.Fatalf("expected only 2 questions, got %d", result.Asked)
	}
	if want := 10 + 2*15; result.Score != want {
		t.Fatalf("expected score %d, got %d", want, result.Score)
	}
	if script.Remaining() != 2 {
		t.Fatalf("expected unused answers to stay unread, %d left", script.Remaining())
	}
}

func TestEmptyPoolStillGrantsPityBonus(t *testing.T) {
	service := newTestService(nil)
	result, err := service.NewSession(prompt.NewScript("Cy", "History", "Medium"), &bytes.Buffer{}).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Asked != 0 || result.Score != 10 || !result.PityBonus {
		t.Fatalf("expected pity-only score, got %+v", result)
	}
}

func TestZeroOptionsUseDefaultPityBonus(t *testing.T) {
	questions := uniformPool(domain.CategoryScience, domain.DifficultyEasy, 1, "yes")
	repo := memory.NewQuestionRepository(memory.NewStaticQuestionLoader(questions), time.Minute)
	service := app.NewQuizService(repo, app.QuizOptions{})

	var out bytes.Buffer
	result, err := service.NewSession(prompt.NewScript("Ann", "Science", "Easy", "yes"), &out).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !result.PityBonus || result.Score != app.DefaultPityBonus+5 {
		t.Fatalf("expected default pity bonus plus one easy answer, got %+v", result)
	}
	if !strings.Contains(out.String(), "Adding pity points +10.") {
		t.Fatalf("expected +10 pity message, got:\n%s", out.String())
	}
}

func TestNegativePityBonusDisablesIt(t *testing.T) {
	repo := memory.NewQuestionRepository(memory.NewStaticQuestionLoader(nil), time.Minute)
	service := app.NewQuizService(repo, app.QuizOptions{PityBonus: -1, Seed: 1})

	var out bytes.Buffer
	result, err := service.NewSession(prompt.NewScript("Al", "History", "Hard"), &out).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.PityBonus || result.Score != 0 {
		t.Fatalf("expected no pity bonus, got %+v", result)
	}
	if strings.Contains(out.String(), "pity points") {
		t.Fatalf("unexpected pity message:\n%s", out.String())
	}
}

func TestAnswersCompareByLowerCaseOnly(t *testing.T) {
	questions := uniformPool(domain.CategoryScience, domain.DifficultyMedium, 5, "Sun")
	service := newTestService(questions)

	script := prompt.NewScript("Sol", "Science", "Medium", "SUN", "sun", "\u017fun", "Sun", "sUn")
	result, err := service.NewSession(script, &bytes.Buffer{}).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Correct != 4 {
		t.Fatalf("expected long s to be rejected, got %d correct", result.Correct)
	}
}

func TestLargePoolIsTruncatedToFive(t *testing.T) {
	questions := uniformPool(domain.CategoryScience, domain.DifficultyMedium, 8, "x")
	service := newTestService(questions)

	answers := []string{"Dee", "Science", "Medium"}
	for i := 0; i < 8; i++ {
		answers = append(answers, "x")
	}
	var out bytes.Buffer
	result, err := service.NewSession(prompt.NewScript(answers...), &out).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Asked != 5 || result.Score != 50 {
		t.Fatalf("expected 5 questions for 50 points, got %+v", result)
	}

	seen := map[string]bool{}
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.HasPrefix(line, "Q") && strings.Contains(line, ": ") {
			text := line[strings.Index(line, ": ")+2:]
			if seen[text] {
				t.Fatalf("question asked twice: %s", text)
			}
			seen[text] = true
		}
	}
	if len(seen) != 5 {
		t.Fatalf("expected 5 distinct questions, got %d", len(seen))
	}
}

func TestInvalidSelectionsFallBackToDefaults(t *testing.T) {
	service := newTestService(domain.BuiltinQuestions())
	var out bytes.Buffer
	script := prompt.NewScript("Eve", "science", "easy")
	result, err := service.NewSession(script, &out).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Category != domain.CategoryScience || result.Difficulty != domain.DifficultyEasy {
		t.Fatalf("expected Science/Easy defaults, got %s/%s", result.Category, result.Difficulty)
	}
	text := out.String()
	if !strings.Contains(text, "Invalid category. Defaulting to Science.") || !strings.Contains(text, "Invalid choice. Defaulting to Easy.") {
		t.Fatalf("expected default messages, got:\n%s", text)
	}
}

func TestQuizEndToEndScienceEasyAllCorrect(t *testing.T) {
	bank := domain.BuiltinQuestions()
	answers := map[string]string{}
	for _, q := range bank {
		answers[q.Text] = q.Answer
	}

	service := app.NewQuizService(memory.NewQuestionRepository(memory.NewStaticQuestionLoader(bank), time.Minute), app.QuizOptions{})
	var out bytes.Buffer
	oracle := prompt.Func(func(_ context.Context, label string) (string, error) {
		switch label {
		case "Enter your name, brave human: ":
			return "Grace", nil
		case "Category: ":
			return "Science", nil
		case "Difficulty: ":
			return "Easy", nil
		}
		return answers[lastQuestion(out.String())], nil
	})

	result, err := service.NewSession(oracle, &out).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Asked != 5 || result.Correct != 5 || result.Score != 25 {
		t.Fatalf("expected 5/5 for 25 points, got %+v", result)
	}
	if result.Tier != domain.TierNextTime {
		t.Fatalf("expected next-time tier for 25, got %s", result.Tier)
	}
	text := out.String()
	if !strings.Contains(text, "Better luck next time, genius.") || !strings.Contains(text, "Thanks for playing, Grace!") {
		t.Fatalf("unexpected summary:\n%s", text)
	}
}

func TestQuizStopsAskingWhenInputEnds(t *testing.T) {
	questions := uniformPool(domain.CategoryHistory, domain.DifficultyMedium, 5, "a")
	service := newTestService(questions)

	var out bytes.Buffer
	result, err := service.NewSession(prompt.NewScript("Fin", "History", "Medium", "a", "b"), &out).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Asked != 2 || result.Score != 10-5 {
		t.Fatalf("expected 2 answered questions for 5 points, got %+v", result)
	}
	if !strings.Contains(out.String(), "Final Score: 5") {
		t.Fatalf("expected summary after input ended, got:\n%s", out.String())
	}
}

func TestQuizPropagatesRepositoryErrors(t *testing.T) {
	boom := errors.New("bank offline")
	service := app.NewQuizService(failingRepo{err: boom}, app.QuizOptions{Seed: 1})
	_, err := service.NewSession(prompt.NewScript("G", "Science", "Easy"), &bytes.Buffer{}).Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestQuizPropagatesPrompterFailures(t *testing.T) {
	service := newTestService(domain.BuiltinQuestions())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := service.NewSession(prompt.NewScript("H"), &bytes.Buffer{}).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}

func newTestService(questions []domain.Question) *app.QuizService {
	repo := memory.NewQuestionRepository(memory.NewStaticQuestionLoader(questions), 5*time.Minute)
	return app.NewQuizService(repo, app.QuizOptions{Seed: 42})
}

func uniformPool(category domain.Category, difficulty domain.Difficulty, n int, answer string) []domain.Question {
	questions := make([]domain.Question, n)
	for i := range questions {
		questions[i] = domain.Question{
			ID:         string(category) + "-" + string(rune('a'+i)),
			Text:       "Question " + string(rune('A'+i)) + "?",
			Category:   category,
			Difficulty: difficulty,
			Answer:     answer,
		}
	}
	return questions
}

// lastQuestion extracts the text of the most recent "Qn: text" line.
func lastQuestion(transcript string) string {
	lines := strings.Split(transcript, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]
		if strings.HasPrefix(line, "Q") {
			if idx := strings.Index(line, ": "); idx > 0 {
				return line[idx+2:]
			}
		}
	}
	return ""
}

type failingRepo struct {
	err error
}

func (r failingRepo) GetQuestions(context.Context, domain.Category, domain.Difficulty) ([]domain.Question, error) {
	return nil, r.err
}
