package task

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/yaxyobekuz/ielts-mock-backend/pkg/logger"
	"github.com/yaxyobekuz/ielts-mock-backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const popTimeout = 2 * time.Second

// RedisQueue stores tasks in per-shard Redis lists. Each shard is drained
// by exactly one worker goroutine, which serializes tasks that hash to the
// same shard and closes the read-modify-write races that concurrent
// aggregation would otherwise hit.
type RedisQueue struct {
	client      *redis.Client
	shards      int
	maxAttempts int

	mu       sync.RWMutex
	handlers map[string]Handler

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

func NewRedisQueue(client *redis.Client, shards, maxAttempts int) *RedisQueue {
	if shards < 1 {
		shards = 1
	}
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &RedisQueue{
		client:      client,
		shards:      shards,
		maxAttempts: maxAttempts,
		handlers:    make(map[string]Handler),
	}
}

// Register binds a handler to a task name. Must be called before Start.
func (q *RedisQueue) Register(name string, h Handler) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers[name] = h
}

func (q *RedisQueue) shardKey(shard int) string {
	return fmt.Sprintf("tasks:shard:%d", shard)
}

func (q *RedisQueue) Enqueue(ctx context.Context, name, key string, payload interface{}) error {
	env, err := newEnvelope(name, key, payload)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.shardKey(shardFor(key, q.shards)), raw).Err()
}

// Start launches one worker per shard. Workers run until Stop is called.
func (q *RedisQueue) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	q.cancel = cancel
	for i := 0; i < q.shards; i++ {
		q.wg.Add(1)
		go q.worker(ctx, i)
	}
	logger.Log.Info("task workers started", zap.Int("shards", q.shards))
}

// Stop signals the workers and waits for in-flight tasks to finish.
func (q *RedisQueue) Stop() {
	if q.cancel != nil {
		q.cancel()
	}
	q.wg.Wait()
	logger.Log.Info("task workers stopped")
}

func (q *RedisQueue) worker(ctx context.Context, shard int) {
	defer q.wg.Done()
	key := q.shardKey(shard)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		res, err := q.client.BRPop(ctx, popTimeout, key).Result()
		if err != nil {
			if err == redis.Nil || ctx.Err() != nil {
				continue
			}
			logger.Log.Warn("task pop failed", zap.Int("shard", shard), zap.Error(err))
			time.Sleep(time.Second)
			continue
		}
		// BRPop returns [key, value].
		if len(res) < 2 {
			continue
		}
		q.process(ctx, shard, []byte(res[1]))
	}
}

func (q *RedisQueue) process(ctx context.Context, shard int, raw []byte) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		logger.Log.Error("malformed task dropped", zap.Int("shard", shard), zap.Error(err))
		monitoring.StatsTaskCounter.WithLabelValues("unknown", "dropped").Inc()
		return
	}

	q.mu.RLock()
	handler, ok := q.handlers[env.Name]
	q.mu.RUnlock()
	if !ok {
		logger.Log.Error("no handler for task", zap.String("task", env.Name))
		monitoring.StatsTaskCounter.WithLabelValues(env.Name, "dropped").Inc()
		return
	}

	if err := handler(ctx, env.Key, env.Payload); err != nil {
		env.Attempts++
		if env.Attempts >= q.maxAttempts {
			logger.Log.Error("task dropped after retries",
				zap.String("task", env.Name),
				zap.String("key", env.Key),
				zap.Int("attempts", env.Attempts),
				zap.Error(err))
			monitoring.StatsTaskCounter.WithLabelValues(env.Name, "dropped").Inc()
			return
		}
		logger.Log.Warn("task failed, requeueing",
			zap.String("task", env.Name),
			zap.String("key", env.Key),
			zap.Int("attempts", env.Attempts),
			zap.Error(err))
		monitoring.StatsTaskCounter.WithLabelValues(env.Name, "retried").Inc()
		q.requeue(ctx, shard, &env)
		return
	}
	monitoring.StatsTaskCounter.WithLabelValues(env.Name, "processed").Inc()
}

func (q *RedisQueue) requeue(ctx context.Context, shard int, env *Envelope) {
	raw, err := json.Marshal(env)
	if err != nil {
		logger.Log.Error("requeue marshal failed", zap.String("task", env.Name), zap.Error(err))
		return
	}
	if err := q.client.LPush(ctx, q.shardKey(shard), raw).Err(); err != nil {
		logger.Log.Error("requeue failed", zap.String("task", env.Name), zap.Error(err))
	}
}
