package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"knlang-arcade/internal/domain"
)

// QuestionLoader fetches question pools from a backing store (builtin bank, Postgres).
type QuestionLoader interface {
	LoadQuestions(ctx context.Context, category domain.Category, difficulty domain.Difficulty) ([]domain.Question, error)
}

// QuestionRepository caches question pools with TTL to avoid repeated loader hits.
type QuestionRepository struct {
	loader QuestionLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand
	rndMu  sync.Mutex

	mu    sync.RWMutex
	cache map[string]cachedPool
}

type cachedPool struct {
	questions []domain.Question
	expiresAt time.Time
}

func NewQuestionRepository(loader QuestionLoader, ttl time.Duration) *QuestionRepository {
	return &QuestionRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedPool),
	}
}

// GetQuestions returns a copy of the cached pool, loading it on miss or expiry.
func (r *QuestionRepository) GetQuestions(ctx context.Context, category domain.Category, difficulty domain.Difficulty) ([]domain.Question, error) {
	key := poolKey(category, difficulty)
	now := r.clock()

	r.mu.RLock()
	if entry, ok := r.cache[key]; ok && entry.expiresAt.After(now) {
		r.mu.RUnlock()
		return clonePool(entry.questions), nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do(key, func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if entry, ok := r.cache[key]; ok && entry.expiresAt.After(now) {
			r.mu.RUnlock()
			return entry.questions, nil
		}
		r.mu.RUnlock()

		questions, err := r.loader.LoadQuestions(ctx, category, difficulty)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.cache[key] = cachedPool{
			questions: questions,
			expiresAt: now.Add(r.ttlWithJitter()),
		}
		r.mu.Unlock()
		return questions, nil
	})
	if err != nil {
		return nil, err
	}
	return clonePool(result.([]domain.Question)), nil
}

// StaticQuestionLoader serves pools from an in-memory bank (the builtin questions, tests).
type StaticQuestionLoader struct {
	questions []domain.Question
}

func NewStaticQuestionLoader(questions []domain.Question) *StaticQuestionLoader {
	return &StaticQuestionLoader{questions: questions}
}

func (l *StaticQuestionLoader) LoadQuestions(_ context.Context, category domain.Category, difficulty domain.Difficulty) ([]domain.Question, error) {
	return domain.FilterQuestions(l.questions, category, difficulty), nil
}

func (r *QuestionRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	r.rndMu.Lock()
	defer r.rndMu.Unlock()
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

func poolKey(category domain.Category, difficulty domain.Difficulty) string {
	return string(category) + ":" + string(difficulty)
}

func clonePool(questions []domain.Question) []domain.Question {
	return append([]domain.Question(nil), questions...)
}
