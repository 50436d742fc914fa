package domain

import "time"

// OrderStatus описывает административный статус заказа.
type OrderStatus string

const (
	// OrderStatusNew — заказ только что оформлен покупателем.
	OrderStatusNew OrderStatus = "new"
	// OrderStatusProcessing — заказ взят в работу.
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusCompleted — заказ выполнен.
	OrderStatusCompleted OrderStatus = "completed"
	// OrderStatusCancelled — заказ отменён.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid проверяет, что статус относится к поддерживаемым значениям.
// Переходы между статусами намеренно не ограничены: администратор может
// перевести заказ из любого статуса в любой.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Customer — контактные данные, указанные при оформлении заказа.
type Customer struct {
	// Name обязательно для оформления заказа.
	Name string `json:"name"`
	// Phone обязателен; формат не проверяется, только непустота.
	Phone string `json:"phone"`
	// Comment — необязательные пожелания к доставке или самовывозу.
	Comment string `json:"comment"`
}

// Order — неизменяемая запись заказа. После создания меняется только Status,
// и только через репозиторий заказов.
type Order struct {
	ID       string      `json:"id"`
	Date     time.Time   `json:"date"`
	Customer Customer    `json:"customer"`
	Items    []CartLine  `json:"items"`
	Total    int64       `json:"total"`
	Status   OrderStatus `json:"status"`
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.Customer.Name == "" {
		errs = append(errs, ErrCustomerNameRequired)
	}
	if o.Customer.Phone == "" {
		errs = append(errs, ErrCustomerPhoneRequired)
	}
	if len(o.Items) == 0 {
		errs = append(errs, ErrEmptyCart)
	}
	if !o.Status.Valid() {
		errs = append(errs, ErrInvalidStatus)
	}

	// Сверяем сумму заказа с суммой позиций: qty * price.
	var calc int64
	for _, item := range o.Items {
		if item.Quantity <= 0 {
			errs = append(errs, ErrItemQtyInvalid)
		}
		if item.Price < 0 {
			errs = append(errs, ErrItemPriceInvalid)
		}
		calc += item.Price * int64(item.Quantity)
	}
	if calc != o.Total {
		errs = append(errs, ErrTotalMismatch)
	}

	return errs
}
