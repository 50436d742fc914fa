package domain

// CartLine — одна позиция корзины: снимок товара плюс количество.
// Цена и название копируются из каталога в момент добавления и дальше
// живут независимо от правок каталога.
type CartLine struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Quantity    int    `json:"quantity"`
}

// newCartLine строит позицию корзины из товара каталога.
func newCartLine(p Product, qty int) CartLine {
	return CartLine{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Image:       p.Image,
		Quantity:    qty,
	}
}

// Cart — корзина покупателя. Живёт только в памяти сессии и никогда
// не сохраняется отдельно. Инварианты: не больше одной позиции на товар,
// количество каждой позиции строго положительно, порядок добавления
// сохраняется.
type Cart struct {
	lines []CartLine
}

// NewCart возвращает пустую корзину.
func NewCart() *Cart {
	return &Cart{}
}

// Add добавляет товар: существующая позиция получает +1 к количеству,
// новая добавляется в конец с количеством 1.
func (c *Cart) Add(p Product) {
	for i := range c.lines {
		if c.lines[i].ID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, newCartLine(p, 1))
}

// ApplyQuantityDelta изменяет количество позиции на delta (может быть
// отрицательной). Количество не опускается ниже нуля; позиция с нулевым
// количеством удаляется. Неизвестный id — no-op.
func (c *Cart) ApplyQuantityDelta(id string, delta int) {
	for i := range c.lines {
		if c.lines[i].ID != id {
			continue
		}
		qty := c.lines[i].Quantity + delta
		if qty <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
		c.lines[i].Quantity = qty
		return
	}
}

// Remove удаляет позицию безусловно. Неизвестный id — no-op.
func (c *Cart) Remove(id string) {
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Total возвращает сумму price*quantity по всем позициям; 0 для пустой корзины.
func (c *Cart) Total() int64 {
	var sum int64
	for _, line := range c.lines {
		sum += line.Price * int64(line.Quantity)
	}
	return sum
}

// Clear опустошает корзину. Вызывается после успешного оформления заказа.
func (c *Cart) Clear() {
	c.lines = nil
}

// Empty сообщает, пуста ли корзина.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Len возвращает число позиций (не суммарное количество товаров).
func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines возвращает копию позиций, чтобы исключить мутации извне.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}
