package task

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryQueue runs handlers synchronously on Enqueue. It backs tests and
// single-process deployments where Redis is not available.
type MemoryQueue struct {
	mu          sync.Mutex
	handlers    map[string]Handler
	maxAttempts int

	// Enqueued records every accepted envelope, for assertions.
	Enqueued []Envelope
}

func NewMemoryQueue(maxAttempts int) *MemoryQueue {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &MemoryQueue{
		handlers:    make(map[string]Handler),
		maxAttempts: maxAttempts,
	}
}

func (q *MemoryQueue) Register(name string, h Handler) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers[name] = h
}

func (q *MemoryQueue) Enqueue(ctx context.Context, name, key string, payload interface{}) error {
	env, err := newEnvelope(name, key, payload)
	if err != nil {
		return err
	}

	q.mu.Lock()
	q.Enqueued = append(q.Enqueued, *env)
	handler, ok := q.handlers[name]
	q.mu.Unlock()
	if !ok {
		return nil
	}

	var lastErr error
	for attempt := 0; attempt < q.maxAttempts; attempt++ {
		if lastErr = handler(ctx, key, json.RawMessage(env.Payload)); lastErr == nil {
			return nil
		}
	}
	return lastErr
}
