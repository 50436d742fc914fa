package domain

import "errors"

var (
	// Ошибка отсутствующего идентификатора товара.
	ErrProductIDRequired = errors.New("product id is required")
	// Ошибка отсутствующего названия товара.
	ErrProductNameRequired = errors.New("product name is required")
	// Ошибка отсутствующей категории товара.
	ErrProductCategoryRequired = errors.New("product category is required")
	// Ошибка отрицательной цены товара.
	ErrProductPriceNegative = errors.New("product price must be non-negative")
	// Ошибка отсутствующего имени покупателя при оформлении заказа.
	ErrCustomerNameRequired = errors.New("customer name is required")
	// Ошибка отсутствующего телефона покупателя при оформлении заказа.
	ErrCustomerPhoneRequired = errors.New("customer phone is required")
	// Ошибка оформления заказа из пустой корзины.
	ErrEmptyCart = errors.New("cart must contain at least one item")
	// Ошибка при некорректном количестве в позиции заказа (<= 0).
	ErrItemQtyInvalid = errors.New("item quantity must be greater than zero")
	// Ошибка, если цена позиции отрицательная.
	ErrItemPriceInvalid = errors.New("item price must be non-negative")
	// Ошибка несоответствия суммы заказа и сумм позиций.
	ErrTotalMismatch = errors.New("order total does not match items sum")
	// Ошибка неизвестного статуса заказа.
	ErrInvalidStatus = errors.New("unknown order status")
	// ErrOrderNotFound возвращается, если заказ не найден в хранилище.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderExists сигнализирует о коллизии идентификаторов заказов.
	// Перезапись существующего заказа при создании — нарушение инварианта.
	ErrOrderExists = errors.New("order already exists")
	// ErrProductNotFound возвращается, когда товар отсутствует в каталоге.
	ErrProductNotFound = errors.New("product not found")
)

// IsValidation проверяет, относится ли ошибка к ошибкам валидации заказа,
// которые обрабатываются локально и не трогают состояние.
func IsValidation(err error) bool {
	return errors.Is(err, ErrCustomerNameRequired) ||
		errors.Is(err, ErrCustomerPhoneRequired) ||
		errors.Is(err, ErrEmptyCart)
}
