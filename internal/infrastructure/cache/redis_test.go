package cache

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"
	"time"

	"job-bridge/internal/config"
)

func TestRedis_UnavailableBypasses(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	r := NewRedis(context.Background(), config.RedisConfig{Host: "127.0.0.1", Port: "1", TTL: time.Minute}, logger)

	var out []string
	hit, err := r.GetJSON(context.Background(), "k", &out)
	if err != nil || hit {
		t.Fatalf("expected bypassed miss, got hit=%v err=%v", hit, err)
	}
	if err := r.SetJSON(context.Background(), "k", []string{"x"}, 0); err != nil {
		t.Fatalf("set must be a no-op: %v", err)
	}
	if err := r.Delete(context.Background(), "k"); err != nil {
		t.Fatalf("delete must be a no-op: %v", err)
	}
	if err := r.Ping(context.Background()); err == nil {
		t.Fatalf("expected ping error")
	}
	if got := strings.Count(buf.String(), "[Cache] Redis unavailable"); got != 1 {
		t.Fatalf("expected exactly one warning, got %d: %q", got, buf.String())
	}
}

func TestRedis_NilReceiver(t *testing.T) {
	var r *Redis
	hit, err := r.GetJSON(context.Background(), "k", &struct{}{})
	if hit || err != nil {
		t.Fatalf("nil cache must miss silently")
	}
	if err := r.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
