package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Fatalf("unexpected hit for missing key")
	}

	c.Set(ctx, "k", []byte("payload"), time.Minute)
	got, ok := c.Get(ctx, "k")
	if !ok || string(got) != "payload" {
		t.Fatalf("Get = %q, %v", got, ok)
	}
}

func TestMemoryCacheExpires(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	c.Set(ctx, "k", []byte("payload"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, ok := c.Get(ctx, "k"); ok {
		t.Fatalf("entry should have expired")
	}
}

func TestMemoryCacheOverwrite(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	c.Set(ctx, "k", []byte("one"), time.Minute)
	c.Set(ctx, "k", []byte("two"), time.Minute)

	got, ok := c.Get(ctx, "k")
	if !ok || string(got) != "two" {
		t.Fatalf("Get after overwrite = %q, %v", got, ok)
	}
}
