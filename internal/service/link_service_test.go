package service

import "testing"

func TestLinkExhausted(t *testing.T) {
	tests := []struct {
		name      string
		usedCount int
		maxUses   int
		want      bool
	}{
		{"last use taken", 10, 10, true},
		{"one use left", 9, 10, false},
		{"single-use link claimed", 1, 1, true},
		{"fresh link", 0, 10, false},
		{"zero-cap link never retires", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := linkExhausted(tt.usedCount, tt.maxUses); got != tt.want {
				t.Errorf("linkExhausted(%d, %d) = %v, want %v", tt.usedCount, tt.maxUses, got, tt.want)
			}
		})
	}
}
