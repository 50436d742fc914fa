package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/bakeshop/internal/catalog"
	"github.com/vladislavdragonenkov/bakeshop/internal/domain"
	"github.com/vladislavdragonenkov/bakeshop/internal/storage/memory"
)

// faultyStore — обёртка над in-memory хранилищем с управляемыми отказами.
type faultyStore struct {
	domain.KeyValueStore
	getErr error
	setErr error
}

func (s *faultyStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	return s.KeyValueStore.Get(ctx, key)
}

func (s *faultyStore) Set(ctx context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	return s.KeyValueStore.Set(ctx, key, value)
}

func TestLoad_SeedsWhenAbsent(t *testing.T) {
	store := memory.NewKeyValueStore()
	repo := catalog.NewRepository(store, nil)
	ctx := context.Background()

	products := repo.Load(ctx)
	if len(products) != 3 {
		t.Fatalf("expected 3 seed products, got %d", len(products))
	}

	// Seed обязан best-effort сохраниться обратно в хранилище.
	raw, found, err := store.Get(ctx, catalog.CatalogKey)
	if err != nil || !found {
		t.Fatalf("expected persisted seed catalog, found=%v err=%v", found, err)
	}
	var persisted []domain.Product
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		t.Fatalf("persisted seed is not valid json: %v", err)
	}
	if len(persisted) != 3 {
		t.Fatalf("expected 3 persisted products, got %d", len(persisted))
	}
}

func TestLoad_SeedsOnStoreFailure(t *testing.T) {
	store := &faultyStore{
		KeyValueStore: memory.NewKeyValueStore(),
		getErr:        errors.New("store is down"),
		setErr:        errors.New("store is down"),
	}
	repo := catalog.NewRepository(store, nil)

	// Недоступное хранилище — не ошибка: работаем на seed-наборе,
	// неудача сохранения seed молча игнорируется.
	products := repo.Load(context.Background())
	if len(products) != 3 {
		t.Fatalf("expected seed products on store failure, got %d", len(products))
	}
}

func TestLoad_SeedsOnCorruptBlob(t *testing.T) {
	store := memory.NewKeyValueStore()
	if err := store.Set(context.Background(), catalog.CatalogKey, "{not json"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	repo := catalog.NewRepository(store, nil)
	products := repo.Load(context.Background())
	if len(products) != 3 {
		t.Fatalf("expected seed products on corrupt blob, got %d", len(products))
	}
}

func TestLoad_ReadsPersistedCatalog(t *testing.T) {
	store := memory.NewKeyValueStore()
	ctx := context.Background()

	saved := []domain.Product{{ID: "42", Name: "Эклер", Price: 500, Category: "Десерты"}}
	raw, _ := json.Marshal(saved)
	if err := store.Set(ctx, catalog.CatalogKey, string(raw)); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	repo := catalog.NewRepository(store, nil)
	products := repo.Load(ctx)
	if len(products) != 1 || products[0].ID != "42" {
		t.Fatalf("expected persisted catalog, got %v", products)
	}
}

func TestUpsert_ReplacesInPlace(t *testing.T) {
	store := memory.NewKeyValueStore()
	repo := catalog.NewRepository(store, nil)
	ctx := context.Background()
	repo.Load(ctx)

	updated, err := repo.Upsert(ctx, domain.Product{
		ID:       "2",
		Name:     "Медовик новый",
		Price:    3000,
		Category: "Торты",
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	if len(updated) != 3 {
		t.Fatalf("expected 3 products after replace, got %d", len(updated))
	}
	// Позиция в списке сохраняется.
	if updated[1].ID != "2" || updated[1].Name != "Медовик новый" {
		t.Fatalf("expected replacement at position 1, got %v", updated[1])
	}
}

func TestUpsert_AppendsNew(t *testing.T) {
	store := memory.NewKeyValueStore()
	repo := catalog.NewRepository(store, nil)
	ctx := context.Background()
	repo.Load(ctx)

	updated, err := repo.Upsert(ctx, domain.Product{
		ID:       "99",
		Name:     "Эклер",
		Price:    500,
		Category: "Десерты",
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	if len(updated) != 4 {
		t.Fatalf("expected 4 products, got %d", len(updated))
	}
	if updated[3].ID != "99" {
		t.Fatalf("expected new product appended at the end, got %v", updated[3])
	}
	// Пустая картинка заменяется заглушкой.
	if updated[3].Image != domain.DefaultProductImage {
		t.Fatalf("expected default image, got %q", updated[3].Image)
	}
}

func TestUpsert_ValidatesProduct(t *testing.T) {
	repo := catalog.NewRepository(memory.NewKeyValueStore(), nil)

	_, err := repo.Upsert(context.Background(), domain.Product{ID: "1", Category: "Торты"})
	if !errors.Is(err, domain.ErrProductNameRequired) {
		t.Fatalf("expected ErrProductNameRequired, got %v", err)
	}
}

func TestUpsert_SaveFailureKeepsView(t *testing.T) {
	store := &faultyStore{KeyValueStore: memory.NewKeyValueStore()}
	repo := catalog.NewRepository(store, nil)
	ctx := context.Background()
	repo.Load(ctx)

	store.setErr = errors.New("store is down")
	_, err := repo.Upsert(ctx, domain.Product{ID: "99", Name: "Эклер", Price: 500, Category: "Десерты"})
	if err == nil {
		t.Fatal("expected save failure to surface")
	}

	// In-memory представление не обновляется без подтверждённой записи.
	if len(repo.List()) != 3 {
		t.Fatalf("expected catalog unchanged after failed save, got %d products", len(repo.List()))
	}
}

func TestRemove_FiltersAndIgnoresUnknown(t *testing.T) {
	store := memory.NewKeyValueStore()
	repo := catalog.NewRepository(store, nil)
	ctx := context.Background()
	repo.Load(ctx)

	updated, err := repo.Remove(ctx, "2")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(updated) != 2 {
		t.Fatalf("expected 2 products, got %d", len(updated))
	}

	// Удаление несуществующего id — no-op, не ошибка.
	updated, err = repo.Remove(ctx, "does-not-exist")
	if err != nil {
		t.Fatalf("remove of absent id failed: %v", err)
	}
	if len(updated) != 2 {
		t.Fatalf("expected 2 products after no-op remove, got %d", len(updated))
	}
}

func TestGet(t *testing.T) {
	repo := catalog.NewRepository(memory.NewKeyValueStore(), nil)
	repo.Load(context.Background())

	p, err := repo.Get("1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if p.Name != "Наполеон" {
		t.Fatalf("unexpected product %v", p)
	}

	if _, err := repo.Get("missing"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCategories(t *testing.T) {
	products := []domain.Product{
		{ID: "1", Category: "Торты"},
		{ID: "2", Category: "Торты"},
		{ID: "3", Category: "Десерты"},
	}

	got := catalog.Categories(products)
	if len(got) != 2 || got[0] != "Торты" || got[1] != "Десерты" {
		t.Fatalf("expected categories in first-seen order, got %v", got)
	}
}
