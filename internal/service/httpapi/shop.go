package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vladislavdragonenkov/bakeshop/internal/catalog"
	"github.com/vladislavdragonenkov/bakeshop/internal/domain"
)

type orderItemPayload struct {
	ProductID string `json:"id"`
	Quantity  int    `json:"quantity"`
}

type submitOrderPayload struct {
	Customer domain.Customer    `json:"customer"`
	Items    []orderItemPayload `json:"items"`
}

// listCatalog возвращает каталог, опционально отфильтрованный по категории.
func (s *Server) listCatalog(c echo.Context) error {
	products := s.catalog.List()

	category := c.QueryParam("category")
	if category != "" {
		filtered := make([]domain.Product, 0, len(products))
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	return ok(c, http.StatusOK, products)
}

// listCategories возвращает уникальные категории каталога.
func (s *Server) listCategories(c echo.Context) error {
	categories := catalog.Categories(s.catalog.List())
	if categories == nil {
		categories = []string{}
	}
	return ok(c, http.StatusOK, categories)
}

// submitOrder пересобирает корзину по живому каталогу и проводит оформление.
// Цены берутся из каталога на сервере, а не из payload клиента.
func (s *Server) submitOrder(c echo.Context) error {
	var payload submitOrderPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "unable to parse order")
	}

	cart := domain.NewCart()
	for _, item := range payload.Items {
		if item.Quantity <= 0 {
			return fail(c, http.StatusUnprocessableEntity, "INVALID_QUANTITY", "item quantity must be greater than zero")
		}
		product, err := s.catalog.Get(item.ProductID)
		if err != nil {
			return fail(c, http.StatusUnprocessableEntity, "UNKNOWN_PRODUCT", "product "+item.ProductID+" not found")
		}
		cart.Add(product)
		if item.Quantity > 1 {
			cart.ApplyQuantityDelta(product.ID, item.Quantity-1)
		}
	}

	order, err := s.checkout.Checkout(c.Request().Context(), cart, payload.Customer)
	if err != nil {
		if domain.IsValidation(err) {
			return fail(c, http.StatusUnprocessableEntity, "VALIDATION_FAILED", err.Error())
		}
		if errors.Is(err, domain.ErrOrderExists) {
			return fail(c, http.StatusConflict, "ORDER_EXISTS", err.Error())
		}
		s.logger.WithError(err).Error("checkout failed")
		return fail(c, http.StatusBadGateway, "STORE_FAILURE", "failed to persist order")
	}

	return ok(c, http.StatusCreated, order)
}
