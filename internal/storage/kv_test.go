package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func TestKVRoundTrip(t *testing.T) {
	kv, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer kv.Close()
	ctx := context.Background()

	if _, ok, err := kv.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}
	if err := kv.Put(ctx, "k", "v1"); err != nil {
		t.Fatal(err)
	}
	if v, ok, _ := kv.Get(ctx, "k"); !ok || v != "v1" {
		t.Fatalf("expected v1, got %q ok=%v", v, ok)
	}
	// Put replaces
	if err := kv.Put(ctx, "k", "v2"); err != nil {
		t.Fatal(err)
	}
	if v, _, _ := kv.Get(ctx, "k"); v != "v2" {
		t.Fatalf("expected v2, got %q", v)
	}
	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := kv.Get(ctx, "k"); ok {
		t.Fatalf("expected key deleted")
	}
}

func TestKVSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forum.db")
	ctx := context.Background()

	kv, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := kv.Put(ctx, "k", "persisted"); err != nil {
		t.Fatal(err)
	}
	if err := kv.Close(); err != nil {
		t.Fatal(err)
	}

	kv2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer kv2.Close()
	if v, ok, _ := kv2.Get(ctx, "k"); !ok || v != "persisted" {
		t.Fatalf("expected persisted value after reopen, got %q ok=%v", v, ok)
	}
}
