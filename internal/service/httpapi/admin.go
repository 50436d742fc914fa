package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/vladislavdragonenkov/bakeshop/internal/domain"
)

type productPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	Image       string `json:"image"`
}

type statusPayload struct {
	Status string `json:"status"`
}

func (p productPayload) toProduct(id string) domain.Product {
	return domain.Product{
		ID:          id,
		Name:        strings.TrimSpace(p.Name),
		Description: p.Description,
		Price:       p.Price,
		Category:    strings.TrimSpace(p.Category),
		Image:       p.Image,
	}
}

// adminListProducts возвращает полный каталог.
func (s *Server) adminListProducts(c echo.Context) error {
	return ok(c, http.StatusOK, s.catalog.List())
}

// adminCreateProduct добавляет товар; свежий id генерируется на сервере,
// репозиторий каталога идентификаторы не выдаёт.
func (s *Server) adminCreateProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "unable to parse product")
	}

	product := payload.toProduct(uuid.NewString())
	products, err := s.catalog.Upsert(c.Request().Context(), product)
	if err != nil {
		return s.catalogWriteError(c, err)
	}
	return ok(c, http.StatusCreated, products)
}

// adminUpdateProduct заменяет существующий товар по id из пути
// (или добавляет его, если id ещё не занят).
func (s *Server) adminUpdateProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "unable to parse product")
	}

	product := payload.toProduct(c.Param("id"))
	products, err := s.catalog.Upsert(c.Request().Context(), product)
	if err != nil {
		return s.catalogWriteError(c, err)
	}
	return ok(c, http.StatusOK, products)
}

// adminDeleteProduct удаляет товар; несуществующий id — no-op.
func (s *Server) adminDeleteProduct(c echo.Context) error {
	products, err := s.catalog.Remove(c.Request().Context(), c.Param("id"))
	if err != nil {
		return s.catalogWriteError(c, err)
	}
	return ok(c, http.StatusOK, products)
}

// adminListOrders возвращает все заказы, свежие первыми. Ошибка хранилища
// деградирует до пустого списка внутри репозитория.
func (s *Server) adminListOrders(c echo.Context) error {
	list := s.orders.ListAll(c.Request().Context())
	if list == nil {
		list = []domain.Order{}
	}
	return ok(c, http.StatusOK, list)
}

// adminSetOrderStatus переводит заказ в новый статус. Переходы не ограничены.
func (s *Server) adminSetOrderStatus(c echo.Context) error {
	var payload statusPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "unable to parse status")
	}

	order, err := s.orders.UpdateStatus(c.Request().Context(), c.Param("id"), domain.OrderStatus(payload.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			return fail(c, http.StatusUnprocessableEntity, "INVALID_STATUS", err.Error())
		case errors.Is(err, domain.ErrOrderNotFound):
			return fail(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		default:
			s.logger.WithError(err).Error("status update failed")
			return fail(c, http.StatusBadGateway, "STORE_FAILURE", "failed to update order status")
		}
	}

	if s.metrics != nil {
		s.metrics.RecordStatusChange(payload.Status)
	}
	return ok(c, http.StatusOK, order)
}

func (s *Server) catalogWriteError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrProductNameRequired),
		errors.Is(err, domain.ErrProductCategoryRequired),
		errors.Is(err, domain.ErrProductPriceNegative),
		errors.Is(err, domain.ErrProductIDRequired):
		return fail(c, http.StatusUnprocessableEntity, "VALIDATION_FAILED", err.Error())
	default:
		s.logger.WithError(err).Error("catalog write failed")
		return fail(c, http.StatusBadGateway, "STORE_FAILURE", "failed to save catalog")
	}
}
