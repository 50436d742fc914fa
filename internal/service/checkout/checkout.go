package checkout

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/bakeshop/internal/domain"
	"github.com/vladislavdragonenkov/bakeshop/internal/metrics"
	"github.com/vladislavdragonenkov/bakeshop/internal/orders"
)

// notifyTimeout ограничивает фоновую отправку уведомления, отвязанную от
// контекста запроса.
const notifyTimeout = 10 * time.Second

// Service проводит заказ через полный цикл оформления:
// валидация и сборка через фабрику → запись в репозиторий → уведомление
// внешнего хоста → очистка корзины. Уведомление — fire-and-forget: ошибка
// доставки логируется и не влияет на результат. При ошибке записи корзина
// не очищается, содержимое не теряется.
type Service struct {
	factory *orders.Factory
	repo    *orders.Repository
	sink    domain.NotificationSink
	logger  *log.Entry
	metrics *metrics.OrderMetrics
}

// NewService создаёт рабочий экземпляр workflow оформления.
func NewService(
	factory *orders.Factory,
	repo *orders.Repository,
	sink domain.NotificationSink,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "checkout")
	}
	return &Service{
		factory: factory,
		repo:    repo,
		sink:    sink,
		logger:  logger,
		metrics: metrics.NewOrderMetrics(),
	}
}

// NewServiceWithoutMetrics создаёт workflow без метрик (для тестов).
func NewServiceWithoutMetrics(
	factory *orders.Factory,
	repo *orders.Repository,
	sink domain.NotificationSink,
	logger *log.Entry,
) *Service {
	svc := NewService(factory, repo, sink, logger)
	svc.metrics = nil
	return svc
}

// Checkout оформляет заказ из корзины. Возвращённый заказ уже сохранён;
// корзина к этому моменту очищена.
func (s *Service) Checkout(ctx context.Context, cart *domain.Cart, customer domain.Customer) (domain.Order, error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.RecordCheckoutDuration(time.Since(start))
		}
	}()

	order, err := s.factory.Submit(cart, customer)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordOrderFailed()
		}
		s.logger.WithError(err).Debug("order submission rejected")
		return domain.Order{}, err
	}

	if err := s.repo.Create(ctx, order); err != nil {
		if s.metrics != nil {
			s.metrics.RecordOrderFailed()
		}
		s.logger.WithError(err).WithField("order_id", order.ID).Error("failed to persist order")
		return domain.Order{}, err
	}

	// Уведомление и очистка корзины — только после подтверждённой записи.
	s.notifyAsync(order)
	cart.Clear()

	if s.metrics != nil {
		s.metrics.RecordOrderSubmitted()
	}
	s.logger.WithFields(log.Fields{
		"order_id": order.ID,
		"total":    order.Total,
		"items":    len(order.Items),
	}).Info("order checked out")
	return order, nil
}

// notifyAsync отправляет уведомление в фоне, не дожидаясь результата.
func (s *Service) notifyAsync(order domain.Order) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := s.sink.NotifyNewOrder(ctx, order); err != nil {
			if s.metrics != nil {
				s.metrics.RecordNotificationFailed()
			}
			s.logger.WithError(err).WithField("order_id", order.ID).Warn("failed to notify about new order")
			return
		}
		if s.metrics != nil {
			s.metrics.RecordNotificationPublished()
		}
	}()
}
