package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"knlang-arcade/internal/domain"
)

// QuestionLoader loads question pools from the questions table.
type QuestionLoader struct {
	pool *pgxpool.Pool
}

func NewQuestionLoader(pool *pgxpool.Pool) *QuestionLoader {
	return &QuestionLoader{pool: pool}
}

func (l *QuestionLoader) LoadQuestions(ctx context.Context, category domain.Category, difficulty domain.Difficulty) ([]domain.Question, error) {
	rows, err := l.pool.Query(ctx,
		`SELECT id, text, category, difficulty, answer FROM questions WHERE category=$1 AND difficulty=$2 ORDER BY position`,
		string(category), string(difficulty))
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var (
			q          domain.Question
			cat, level string
		)
		if err := rows.Scan(&q.ID, &q.Text, &cat, &level, &q.Answer); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		q.Category = domain.Category(cat)
		q.Difficulty = domain.Difficulty(level)
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	return questions, nil
}
