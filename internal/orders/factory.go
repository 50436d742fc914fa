package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/bakeshop/internal/domain"
)

// Factory превращает изменяемую корзину в неизменяемую запись заказа.
// Генератор идентификаторов и часы инжектируются ради тестов; по умолчанию
// используются uuid v4 (устойчив к коллизиям в отличие от идентификаторов из
// wall-clock времени) и UTC-время.
type Factory struct {
	newID func() string
	now   func() time.Time
}

// NewFactory возвращает фабрику заказов с генераторами по умолчанию.
func NewFactory() *Factory {
	return &Factory{
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// NewFactoryWithGenerators позволяет подменить генератор id и часы в тестах.
func NewFactoryWithGenerators(newID func() string, now func() time.Time) *Factory {
	f := NewFactory()
	if newID != nil {
		f.newID = newID
	}
	if now != nil {
		f.now = now
	}
	return f
}

// Submit валидирует корзину и контактные данные и собирает заказ:
// свежий id, текущее время, снимки позиций и покупателя, зафиксированная
// сумма, статус new. При ошибке валидации ни корзина, ни хранилище не
// затрагиваются. Сохранение заказа, уведомление и очистка корзины —
// ответственность вызывающего workflow, не фабрики.
func (f *Factory) Submit(cart *domain.Cart, customer domain.Customer) (domain.Order, error) {
	if customer.Name == "" {
		return domain.Order{}, domain.ErrCustomerNameRequired
	}
	if customer.Phone == "" {
		return domain.Order{}, domain.ErrCustomerPhoneRequired
	}
	if cart == nil || cart.Empty() {
		return domain.Order{}, domain.ErrEmptyCart
	}

	return domain.Order{
		ID:       f.newID(),
		Date:     f.now(),
		Customer: customer,
		Items:    cart.Lines(),
		Total:    cart.Total(),
		Status:   domain.OrderStatusNew,
	}, nil
}
