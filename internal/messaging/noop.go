package messaging

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/bakeshop/internal/domain"
)

// NoopSink — заглушка канала уведомлений для запуска без Kafka.
// Событие логируется и отбрасывается.
type NoopSink struct {
	logger *log.Entry
}

// NewNoopSink создаёт sink-заглушку.
func NewNoopSink(logger *log.Entry) *NoopSink {
	if logger == nil {
		logger = log.New().WithField("component", "noop-sink")
	}
	return &NoopSink{logger: logger}
}

// NotifyNewOrder логирует заказ вместо отправки.
func (s *NoopSink) NotifyNewOrder(_ context.Context, order domain.Order) error {
	s.logger.WithFields(log.Fields{
		"order_id": order.ID,
		"total":    order.Total,
	}).Info("new order (notifications disabled)")
	return nil
}

var _ domain.NotificationSink = (*NoopSink)(nil)
