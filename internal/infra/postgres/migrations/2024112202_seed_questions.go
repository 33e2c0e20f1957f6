package migrations

import (
	"context"

	"github.com/uptrace/bun"

	"knlang-arcade/internal/domain"
)

type questionRow struct {
	bun.BaseModel `bun:"table:questions"`

	ID         string `bun:"id,pk"`
	Text       string `bun:"text,notnull"`
	Category   string `bun:"category,notnull"`
	Difficulty string `bun:"difficulty,notnull"`
	Answer     string `bun:"answer,notnull"`
	Position   int    `bun:"position,notnull"`
}

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			rows := seedRows()
			_, err := db.NewInsert().
				Model(&rows).
				On("CONFLICT (id) DO NOTHING").
				Exec(ctx)
			return err
		},
		func(ctx context.Context, db *bun.DB) error {
			rows := seedRows()
			ids := make([]string, len(rows))
			for i, row := range rows {
				ids[i] = row.ID
			}
			_, err := db.NewDelete().
				TableExpr("questions").
				Where("id IN (?)", bun.In(ids)).
				Exec(ctx)
			return err
		},
	)
}

func seedRows() []questionRow {
	bank := domain.BuiltinQuestions()
	rows := make([]questionRow, len(bank))
	for i, q := range bank {
		rows[i] = questionRow{
			ID:         q.ID,
			Text:       q.Text,
			Category:   string(q.Category),
			Difficulty: string(q.Difficulty),
			Answer:     q.Answer,
			Position:   i,
		}
	}
	return rows
}
