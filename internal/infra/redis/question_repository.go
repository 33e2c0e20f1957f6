package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"knlang-arcade/internal/domain"
)

// QuestionLoader fetches question pools from a backing store (builtin bank, Postgres).
type QuestionLoader interface {
	LoadQuestions(ctx context.Context, category domain.Category, difficulty domain.Difficulty) ([]domain.Question, error)
}

// QuestionRepository caches question pools in Redis (hash per pool) and falls back to a loader on cache miss.
// Pools are stored as: HSET questions:{category}:{difficulty} {questionID} {question JSON}
type QuestionRepository struct {
	client *redis.Client
	loader QuestionLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
	rndMu  sync.Mutex
}

func NewQuestionRepository(client *redis.Client, loader QuestionLoader, ttl time.Duration) *QuestionRepository {
	return &QuestionRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *QuestionRepository) GetQuestions(ctx context.Context, category domain.Category, difficulty domain.Difficulty) ([]domain.Question, error) {
	key := r.poolKey(category, difficulty)

	cached, err := r.client.HGetAll(ctx, key).Result()
	if err == nil && len(cached) > 0 {
		if questions, err := decodePool(cached); err == nil {
			return questions, nil
		}
	}

	result, err, _ := r.sf.Do(key, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		cached, err := r.client.HGetAll(ctx, key).Result()
		if err == nil && len(cached) > 0 {
			if questions, err := decodePool(cached); err == nil {
				return questions, nil
			}
		}

		questions, err := r.loader.LoadQuestions(ctx, category, difficulty)
		if err != nil {
			return nil, err
		}
		if len(questions) == 0 {
			return questions, nil
		}

		ttl := r.ttlWithJitter()
		pipe := r.client.Pipeline()
		for _, q := range questions {
			data, err := json.Marshal(q)
			if err != nil {
				return nil, fmt.Errorf("encode question %s: %w", q.ID, err)
			}
			pipe.HSet(ctx, key, q.ID, data)
		}
		if ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		}
		_, _ = pipe.Exec(ctx)

		return questions, nil
	})
	if err != nil {
		return nil, err
	}
	return append([]domain.Question(nil), result.([]domain.Question)...), nil
}

func (r *QuestionRepository) poolKey(category domain.Category, difficulty domain.Difficulty) string {
	return "questions:" + string(category) + ":" + string(difficulty)
}

// decodePool rebuilds a pool from its hash, ordered by question ID since hashes are unordered.
func decodePool(cached map[string]string) ([]domain.Question, error) {
	questions := make([]domain.Question, 0, len(cached))
	for id, raw := range cached {
		var q domain.Question
		if err := json.Unmarshal([]byte(raw), &q); err != nil {
			return nil, fmt.Errorf("decode question %s: %w", id, err)
		}
		questions = append(questions, q)
	}
	sort.Slice(questions, func(i, j int) bool { return questions[i].ID < questions[j].ID })
	return questions, nil
}

func (r *QuestionRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	r.rndMu.Lock()
	defer r.rndMu.Unlock()
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
