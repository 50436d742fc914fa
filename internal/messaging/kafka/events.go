package kafka

import (
	"time"

	"github.com/vladislavdragonenkov/bakeshop/internal/domain"
)

// EventType определяет тип события
type EventType string

const (
	// EventTypeNewOrder — оформлен новый заказ.
	EventTypeNewOrder EventType = "new_order"
)

// DefaultTopic — topic для событий заказов.
const DefaultTopic = "bakeshop.order.events"

// NewOrderEvent — исходящее сообщение о новом заказе: дискриминатор типа
// плюс полный payload заказа.
type NewOrderEvent struct {
	Type      EventType    `json:"type"`
	Order     domain.Order `json:"order"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewNewOrderEvent создает событие нового заказа.
func NewNewOrderEvent(order domain.Order) *NewOrderEvent {
	return &NewOrderEvent{
		Type:      EventTypeNewOrder,
		Order:     order,
		Timestamp: time.Now(),
	}
}
