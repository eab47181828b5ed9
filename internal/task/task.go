package task

import (
	"context"
	"encoding/json"
	"hash/fnv"
)

// Handler processes one dequeued task. A non-nil error requeues the task
// until its attempt budget runs out.
type Handler func(ctx context.Context, key string, payload json.RawMessage) error

// Queue accepts named tasks for asynchronous execution. Tasks sharing a
// key are executed one at a time in enqueue order; tasks with different
// keys may run concurrently.
type Queue interface {
	Enqueue(ctx context.Context, name, key string, payload interface{}) error
}

// Envelope is the wire form of a queued task.
type Envelope struct {
	Name     string          `json:"name"`
	Key      string          `json:"key"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

func newEnvelope(name, key string, payload interface{}) (*Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Envelope{Name: name, Key: key, Payload: raw}, nil
}

// shardFor maps a task key to a worker shard. Keys hash consistently so
// all tasks for one aggregate land on the same worker.
func shardFor(key string, shards int) int {
	h := fnv.New32a()
	h.Write([]byte(key))
	return int(h.Sum32() % uint32(shards))
}
