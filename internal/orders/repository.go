package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/bakeshop/internal/domain"
)

// KeyPrefix — пространство ключей заказов. Ключ заказа = KeyPrefix + id,
// что не пересекается с единственным ключом каталога.
const KeyPrefix = "order:"

// Repository хранит заказы в key-value хранилище: один заказ — один блоб.
type Repository struct {
	store  domain.KeyValueStore
	logger *log.Entry
}

// NewRepository создаёт репозиторий заказов.
func NewRepository(store domain.KeyValueStore, logger *log.Entry) *Repository {
	if logger == nil {
		logger = log.New().WithField("component", "orders")
	}
	return &Repository{store: store, logger: logger}
}

func orderKey(id string) string {
	return KeyPrefix + id
}

// Create сохраняет новый заказ. Перезапись существующего id запрещена:
// коллизия идентификаторов — нарушение инварианта, а не рабочий сценарий.
func (r *Repository) Create(ctx context.Context, order domain.Order) error {
	_, found, err := r.store.Get(ctx, orderKey(order.ID))
	if err != nil {
		return fmt.Errorf("check order %s: %w", order.ID, err)
	}
	if found {
		return domain.ErrOrderExists
	}

	if err := r.put(ctx, order); err != nil {
		return err
	}
	r.logger.WithFields(log.Fields{
		"order_id": order.ID,
		"total":    order.Total,
	}).Info("order created")
	return nil
}

// Get возвращает заказ по id или ErrOrderNotFound.
func (r *Repository) Get(ctx context.Context, id string) (domain.Order, error) {
	raw, found, err := r.store.Get(ctx, orderKey(id))
	if err != nil {
		return domain.Order{}, fmt.Errorf("get order %s: %w", id, err)
	}
	if !found {
		return domain.Order{}, domain.ErrOrderNotFound
	}

	var order domain.Order
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		return domain.Order{}, fmt.Errorf("decode order %s: %w", id, err)
	}
	return order, nil
}

// ListAll перечисляет все заказы по префиксу ключей. Битые и пропавшие записи
// пропускаются с warn-логом, ошибка самого перечисления деградирует до пустого
// списка: административный интерфейс должен оставаться рабочим с «нет заказов»
// как безопасным состоянием. Результат отсортирован по дате по убыванию.
func (r *Repository) ListAll(ctx context.Context) []domain.Order {
	keys, err := r.store.List(ctx, KeyPrefix)
	if err != nil {
		r.logger.WithError(err).Warn("order enumeration failed, returning empty list")
		return nil
	}

	result := make([]domain.Order, 0, len(keys))
	for _, key := range keys {
		raw, found, err := r.store.Get(ctx, key)
		if err != nil || !found {
			r.logger.WithError(err).WithField("key", key).Warn("skipping unreadable order")
			continue
		}
		var order domain.Order
		if err := json.Unmarshal([]byte(raw), &order); err != nil {
			r.logger.WithError(err).WithField("key", key).Warn("skipping corrupt order record")
			continue
		}
		result = append(result, order)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[i].ID > result[j].ID
	})

	return result
}

// UpdateStatus — единственный способ изменить существующий заказ.
// Меняется только поле Status; id, дата, покупатель, позиции и сумма
// переносятся без изменений. Порядок переходов не ограничен.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.Order, error) {
	if !status.Valid() {
		return domain.Order{}, domain.ErrInvalidStatus
	}

	order, err := r.Get(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}

	order.Status = status
	if err := r.put(ctx, order); err != nil {
		return domain.Order{}, err
	}

	r.logger.WithFields(log.Fields{
		"order_id": id,
		"status":   string(status),
	}).Info("order status updated")
	return order, nil
}

func (r *Repository) put(ctx context.Context, order domain.Order) error {
	raw, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order %s: %w", order.ID, err)
	}
	if err := r.store.Set(ctx, orderKey(order.ID), string(raw)); err != nil {
		return fmt.Errorf("save order %s: %w", order.ID, err)
	}
	return nil
}
