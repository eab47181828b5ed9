package task

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestShardForStable(t *testing.T) {
	for _, key := range []string{"user:1", "user:2", "user:999", ""} {
		first := shardFor(key, 8)
		for i := 0; i < 100; i++ {
			if got := shardFor(key, 8); got != first {
				t.Fatalf("shardFor(%q) not stable: %d != %d", key, got, first)
			}
		}
		if first < 0 || first >= 8 {
			t.Errorf("shardFor(%q) = %d, out of range", key, first)
		}
	}
}

func TestShardForSingleShard(t *testing.T) {
	if got := shardFor("anything", 1); got != 0 {
		t.Errorf("shardFor with one shard = %d, want 0", got)
	}
}

func TestEnvelopeRoundTrip(t *testing.T) {
	env, err := newEnvelope("update-user-stats", "user:42", map[string]int{"created": 1})
	if err != nil {
		t.Fatal(err)
	}
	raw, err := json.Marshal(env)
	if err != nil {
		t.Fatal(err)
	}
	var got Envelope
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if got.Name != "update-user-stats" || got.Key != "user:42" || got.Attempts != 0 {
		t.Errorf("envelope mismatch: %+v", got)
	}
	var payload map[string]int
	if err := json.Unmarshal(got.Payload, &payload); err != nil {
		t.Fatal(err)
	}
	if payload["created"] != 1 {
		t.Errorf("payload mismatch: %v", payload)
	}
}

func TestMemoryQueueDispatch(t *testing.T) {
	q := NewMemoryQueue(3)
	var gotKey string
	var gotPayload map[string]int
	q.Register("update-stats", func(ctx context.Context, key string, payload json.RawMessage) error {
		gotKey = key
		return json.Unmarshal(payload, &gotPayload)
	})

	if err := q.Enqueue(context.Background(), "update-stats", "user:7", map[string]int{"graded": 2}); err != nil {
		t.Fatal(err)
	}
	if gotKey != "user:7" {
		t.Errorf("key = %q, want user:7", gotKey)
	}
	if gotPayload["graded"] != 2 {
		t.Errorf("payload = %v", gotPayload)
	}
	if len(q.Enqueued) != 1 {
		t.Errorf("enqueued = %d, want 1", len(q.Enqueued))
	}
}

func TestMemoryQueueRetriesThenGivesUp(t *testing.T) {
	q := NewMemoryQueue(3)
	calls := 0
	failure := errors.New("stat row locked")
	q.Register("update-user-stats", func(ctx context.Context, key string, payload json.RawMessage) error {
		calls++
		return failure
	})

	err := q.Enqueue(context.Background(), "update-user-stats", "user:1", struct{}{})
	if !errors.Is(err, failure) {
		t.Fatalf("err = %v, want %v", err, failure)
	}
	if calls != 3 {
		t.Errorf("handler called %d times, want 3", calls)
	}
}

func TestMemoryQueueRecoversWithinBudget(t *testing.T) {
	q := NewMemoryQueue(3)
	calls := 0
	q.Register("update-stats", func(ctx context.Context, key string, payload json.RawMessage) error {
		calls++
		if calls < 2 {
			return errors.New("transient")
		}
		return nil
	})

	if err := q.Enqueue(context.Background(), "update-stats", "user:1", struct{}{}); err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if calls != 2 {
		t.Errorf("handler called %d times, want 2", calls)
	}
}

func TestMemoryQueueUnregisteredTaskAccepted(t *testing.T) {
	q := NewMemoryQueue(3)
	if err := q.Enqueue(context.Background(), "no-such-task", "k", nil); err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if len(q.Enqueued) != 1 {
		t.Errorf("enqueued = %d, want 1", len(q.Enqueued))
	}
}
