package catalog

import "github.com/vladislavdragonenkov/bakeshop/internal/domain"

// SeedProducts возвращает стартовый каталог, который используется при первом
// запуске или когда хранилище недоступно.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Наполеон",
			Description: "Классический торт с заварным кремом",
			Price:       2500,
			Category:    "Торты",
			Image:       "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=400",
		},
		{
			ID:          "2",
			Name:        "Медовик",
			Description: "Торт с медовыми коржами и сметанным кремом",
			Price:       2800,
			Category:    "Торты",
			Image:       "https://images.unsplash.com/photo-1464349095431-e9a21285b5f3?w=400",
		},
		{
			ID:          "3",
			Name:        "Макаронс",
			Description: "Французское миндальное печенье, набор 12 шт",
			Price:       1500,
			Category:    "Десерты",
			Image:       "https://images.unsplash.com/photo-1569864358642-9d1684040f43?w=400",
		},
	}
}
