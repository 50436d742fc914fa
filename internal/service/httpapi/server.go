package httpapi

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/bakeshop/internal/catalog"
	"github.com/vladislavdragonenkov/bakeshop/internal/metrics"
	"github.com/vladislavdragonenkov/bakeshop/internal/orders"
	"github.com/vladislavdragonenkov/bakeshop/internal/service/checkout"
)

// Server связывает HTTP-интерфейс магазина и админки с доменными сервисами.
// Это headless-поверхность: те же операции доступны любому фронтенду.
type Server struct {
	catalog  *catalog.Repository
	orders   *orders.Repository
	checkout *checkout.Service
	logger   *log.Entry
	metrics  *metrics.OrderMetrics
}

// NewServer конструирует сервер API.
func NewServer(
	catalogRepo *catalog.Repository,
	orderRepo *orders.Repository,
	checkoutSvc *checkout.Service,
	logger *log.Entry,
) *Server {
	if logger == nil {
		logger = log.New().WithField("component", "httpapi")
	}
	return &Server{
		catalog:  catalogRepo,
		orders:   orderRepo,
		checkout: checkoutSvc,
		logger:   logger,
		metrics:  metrics.NewOrderMetrics(),
	}
}

// NewServerWithoutMetrics конструирует сервер без метрик (для тестов).
func NewServerWithoutMetrics(
	catalogRepo *catalog.Repository,
	orderRepo *orders.Repository,
	checkoutSvc *checkout.Service,
	logger *log.Entry,
) *Server {
	srv := NewServer(catalogRepo, orderRepo, checkoutSvc, logger)
	srv.metrics = nil
	return srv
}

// Echo собирает echo.Echo со всеми маршрутами.
func (s *Server) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	s.RegisterRoutes(e)
	return e
}

// RegisterRoutes регистрирует маршруты магазина и админки.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	// Витрина
	api.GET("/catalog", s.listCatalog)
	api.GET("/categories", s.listCategories)
	api.POST("/orders", s.submitOrder)

	// Админка. Аутентификация вне скоупа: поверхность отдаётся наружу
	// только через доверенный периметр.
	admin := api.Group("/admin")
	admin.GET("/products", s.adminListProducts)
	admin.POST("/products", s.adminCreateProduct)
	admin.PUT("/products/:id", s.adminUpdateProduct)
	admin.DELETE("/products/:id", s.adminDeleteProduct)
	admin.GET("/orders", s.adminListOrders)
	admin.PUT("/orders/:id/status", s.adminSetOrderStatus)
}
