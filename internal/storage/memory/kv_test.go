package memory_test

import (
	"context"
	"testing"

	"github.com/vladislavdragonenkov/bakeshop/internal/storage/memory"
)

func TestKeyValueStore_GetAbsent(t *testing.T) {
	store := memory.NewKeyValueStore()

	_, found, err := store.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if found {
		t.Fatal("expected found=false for absent key")
	}
}

func TestKeyValueStore_SetGet(t *testing.T) {
	store := memory.NewKeyValueStore()
	ctx := context.Background()

	if err := store.Set(ctx, "products", `[]`); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	value, found, err := store.Get(ctx, "products")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !found || value != `[]` {
		t.Fatalf("expected stored value, got found=%v value=%q", found, value)
	}
}

func TestKeyValueStore_SetOverwrites(t *testing.T) {
	store := memory.NewKeyValueStore()
	ctx := context.Background()

	if err := store.Set(ctx, "k", "a"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := store.Set(ctx, "k", "b"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	value, _, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if value != "b" {
		t.Fatalf("expected overwritten value, got %q", value)
	}
}

func TestKeyValueStore_ListByPrefix(t *testing.T) {
	store := memory.NewKeyValueStore()
	ctx := context.Background()

	for _, key := range []string{"order:2", "order:1", "products", "order:3"} {
		if err := store.Set(ctx, key, "{}"); err != nil {
			t.Fatalf("set failed: %v", err)
		}
	}

	keys, err := store.List(ctx, "order:")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(keys) != 3 {
		t.Fatalf("expected 3 keys, got %d", len(keys))
	}
	// Ключи отсортированы, каталог не попадает в выборку.
	if keys[0] != "order:1" || keys[1] != "order:2" || keys[2] != "order:3" {
		t.Fatalf("unexpected keys %v", keys)
	}
}
