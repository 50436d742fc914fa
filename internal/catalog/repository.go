package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/bakeshop/internal/domain"
)

// CatalogKey — единственный ключ, под которым хранится весь каталог одним блобом.
const CatalogKey = "products"

// Repository владеет списком товаров и синхронизирует его с key-value
// хранилищем. Каталог читается и пишется целиком: частичного обновления одной
// позиции на уровне хранилища нет. Это осознанный потолок масштабируемости —
// одновременная запись из двух сессий перетирает чужие правки
// (last-writer-wins); лечится ключом на товар или optimistic-версией,
// чего здесь намеренно нет.
type Repository struct {
	store  domain.KeyValueStore
	logger *log.Entry

	mu       sync.RWMutex
	products []domain.Product
}

// NewRepository создаёт репозиторий каталога.
func NewRepository(store domain.KeyValueStore, logger *log.Entry) *Repository {
	if logger == nil {
		logger = log.New().WithField("component", "catalog")
	}
	return &Repository{store: store, logger: logger}
}

// Load читает каталог из хранилища и обновляет in-memory представление.
// Отсутствующий, недоступный или битый блоб — не ошибка: берётся стартовый
// каталог, который мы best-effort пытаемся сохранить обратно (неудача
// сохранения логируется и игнорируется, каталог в памяти остаётся рабочим
// на сессию).
func (r *Repository) Load(ctx context.Context) []domain.Product {
	products := r.loadFromStore(ctx)

	r.mu.Lock()
	r.products = products
	r.mu.Unlock()

	return copyProducts(products)
}

func (r *Repository) loadFromStore(ctx context.Context) []domain.Product {
	raw, found, err := r.store.Get(ctx, CatalogKey)
	if err != nil {
		r.logger.WithError(err).Warn("catalog load failed, falling back to seed products")
		return r.seedAndPersist(ctx)
	}
	if !found {
		r.logger.Info("catalog is empty, seeding default products")
		return r.seedAndPersist(ctx)
	}

	var products []domain.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		r.logger.WithError(err).Warn("catalog blob is corrupt, falling back to seed products")
		return r.seedAndPersist(ctx)
	}
	return products
}

func (r *Repository) seedAndPersist(ctx context.Context) []domain.Product {
	seed := SeedProducts()
	if err := r.save(ctx, seed); err != nil {
		r.logger.WithError(err).Warn("failed to persist seed catalog")
	}
	return seed
}

// List возвращает копию текущего in-memory представления каталога.
func (r *Repository) List() []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyProducts(r.products)
}

// Save сериализует и перезаписывает весь каталог под фиксированным ключом,
// затем обновляет in-memory представление.
func (r *Repository) Save(ctx context.Context, products []domain.Product) error {
	if err := r.save(ctx, products); err != nil {
		return err
	}

	r.mu.Lock()
	r.products = copyProducts(products)
	r.mu.Unlock()
	return nil
}

func (r *Repository) save(ctx context.Context, products []domain.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	if err := r.store.Set(ctx, CatalogKey, string(raw)); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}

// Upsert заменяет товар с совпадающим id на месте либо добавляет новый в
// конец. Идентификатор генерирует вызывающая сторона. In-memory представление
// обновляется только после подтверждённой записи в хранилище.
func (r *Repository) Upsert(ctx context.Context, product domain.Product) ([]domain.Product, error) {
	product.Normalize()
	if errs := product.ValidateInvariants(); len(errs) > 0 {
		return nil, errs[0]
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	updated := copyProducts(r.products)
	replaced := false
	for i := range updated {
		if updated[i].ID == product.ID {
			updated[i] = product
			replaced = true
			break
		}
	}
	if !replaced {
		updated = append(updated, product)
	}

	if err := r.save(ctx, updated); err != nil {
		return nil, err
	}
	r.products = updated

	r.logger.WithFields(log.Fields{
		"product_id": product.ID,
		"replaced":   replaced,
	}).Info("product upserted")
	return copyProducts(updated), nil
}

// Remove отфильтровывает товар по id. Удаление несуществующего id — no-op,
// но список всё равно пересохраняется.
func (r *Repository) Remove(ctx context.Context, id string) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.ID != id {
			updated = append(updated, p)
		}
	}

	if err := r.save(ctx, updated); err != nil {
		return nil, err
	}
	r.products = updated

	r.logger.WithField("product_id", id).Info("product removed")
	return copyProducts(updated), nil
}

// Get возвращает товар текущего каталога по id.
func (r *Repository) Get(id string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

// Categories возвращает уникальные категории в порядке первого появления.
func Categories(products []domain.Product) []string {
	seen := make(map[string]struct{}, len(products))
	var out []string
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

func copyProducts(products []domain.Product) []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out
}
