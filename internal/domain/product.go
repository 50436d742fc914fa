package domain

// DefaultProductImage подставляется, когда у товара не задана картинка.
const DefaultProductImage = "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=400"

// Product описывает позицию каталога кондитерской.
type Product struct {
	// ID уникален в пределах каталога и не переиспользуется после удаления.
	ID string `json:"id"`
	// Name — отображаемое название, обязательно непустое.
	Name string `json:"name"`
	// Description — произвольное описание, может быть пустым.
	Description string `json:"description"`
	// Price — цена в основных денежных единицах, неотрицательная.
	Price int64 `json:"price"`
	// Category — свободная строка для группировки и фильтрации.
	Category string `json:"category"`
	// Image — URL картинки; при отсутствии подставляется DefaultProductImage.
	Image string `json:"image"`
}

// Normalize подставляет значения по умолчанию для незаполненных полей.
func (p *Product) Normalize() {
	if p.Image == "" {
		p.Image = DefaultProductImage
	}
}

// ValidateInvariants проверяет базовые инварианты товара и возвращает список замечаний.
func (p Product) ValidateInvariants() []error {
	var errs []error

	if p.ID == "" {
		errs = append(errs, ErrProductIDRequired)
	}
	if p.Name == "" {
		errs = append(errs, ErrProductNameRequired)
	}
	if p.Category == "" {
		errs = append(errs, ErrProductCategoryRequired)
	}
	if p.Price < 0 {
		errs = append(errs, ErrProductPriceNegative)
	}

	return errs
}
