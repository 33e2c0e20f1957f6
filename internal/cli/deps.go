package cli

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"

	"knlang-arcade/internal/app"
	"knlang-arcade/internal/config"
	"knlang-arcade/internal/domain"
	"knlang-arcade/internal/infra/memory"
	pgloader "knlang-arcade/internal/infra/postgres"
	infraredis "knlang-arcade/internal/infra/redis"
	"knlang-arcade/internal/world"
)

// backends holds the optional external stores a command opened.
type backends struct {
	redis *redis.Client
	pool  *pgxpool.Pool
}

func openBackends(ctx context.Context, cfg config.Config) (*backends, error) {
	b := &backends{}
	if cfg.Redis.Addr != "" {
		b.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	if cfg.Postgres.URL != "" {
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			b.Close()
			return nil, err
		}
		b.pool = pool
	}
	return b, nil
}

func (b *backends) Close() {
	if b.pool != nil {
		b.pool.Close()
	}
	if b.redis != nil {
		_ = b.redis.Close()
	}
}

// questionRepository serves questions from Postgres when configured, otherwise from the builtin bank,
// cached in Redis or in process memory.
func (b *backends) questionRepository(cfg config.Config) app.QuestionRepository {
	var loader memory.QuestionLoader = memory.NewStaticQuestionLoader(domain.BuiltinQuestions())
	if b.pool != nil {
		loader = pgloader.NewQuestionLoader(b.pool)
	}

	quizTTL := config.TTLDuration(cfg.Quiz.TTL, 5*time.Minute)
	if b.redis != nil {
		return infraredis.NewQuestionRepository(b.redis, loader, quizTTL)
	}
	return memory.NewQuestionRepository(loader, quizTTL)
}

func (b *backends) sessionRegistry(cfg config.Config) app.SessionRegistry {
	if b.redis != nil {
		return infraredis.NewSessionRegistry(b.redis, config.TTLDuration(cfg.Redis.TTL, 10*time.Minute))
	}
	return memory.NewSessionRegistry()
}

func quizService(cfg config.Config, questions app.QuestionRepository, seed int64) *app.QuizService {
	if seed == 0 {
		seed = cfg.Quiz.Seed
	}
	return app.NewQuizService(questions, app.QuizOptions{
		MaxQuestions: cfg.Quiz.MaxQuestions,
		PityBonus:    cfg.Quiz.PityBonus,
		Seed:         seed,
	})
}

// loadWorld reads the INI world named by path, falling back to the config and then the builtin world.
func loadWorld(cfg config.Config, path string) (*domain.World, error) {
	if path == "" {
		path = cfg.Adventure.WorldFile
	}
	if path == "" {
		return world.Builtin(), nil
	}
	w, err := world.LoadINI(path)
	if err != nil {
		return nil, err
	}
	log.Printf("loaded world %s (%d rooms)", path, len(w.Rooms))
	return w, nil
}
