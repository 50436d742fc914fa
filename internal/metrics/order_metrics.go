package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics содержит метрики оформления заказов и уведомлений.
type OrderMetrics struct {
	// Счётчики операций
	ordersSubmitted        prometheus.Counter
	ordersFailed           prometheus.Counter
	notificationsPublished prometheus.Counter
	notificationsFailed    prometheus.Counter

	// Счётчик смен статуса по целевому статусу
	statusChanges *prometheus.CounterVec

	// Гистограмма времени оформления заказа
	checkoutDuration prometheus.Histogram
}

// NewOrderMetrics создаёт новый экземпляр метрик заказов.
func NewOrderMetrics() *OrderMetrics {
	return newOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		ordersSubmitted: registerCounter(registerer, prometheus.CounterOpts{
			Name: "bakeshop_orders_submitted_total",
			Help: "Total number of orders submitted successfully",
		}),
		ordersFailed: registerCounter(registerer, prometheus.CounterOpts{
			Name: "bakeshop_orders_failed_total",
			Help: "Total number of order submissions that failed",
		}),
		notificationsPublished: registerCounter(registerer, prometheus.CounterOpts{
			Name: "bakeshop_notifications_published_total",
			Help: "Total number of new-order notifications published",
		}),
		notificationsFailed: registerCounter(registerer, prometheus.CounterOpts{
			Name: "bakeshop_notifications_failed_total",
			Help: "Total number of new-order notifications that failed to publish",
		}),
		statusChanges: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "bakeshop_order_status_changes_total",
			Help: "Total number of administrative order status changes",
		}, []string{"status"}),
		checkoutDuration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "bakeshop_checkout_duration_seconds",
			Help:    "Duration of checkout operations in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOrderSubmitted увеличивает счётчик успешно оформленных заказов.
func (m *OrderMetrics) RecordOrderSubmitted() {
	m.ordersSubmitted.Inc()
}

// RecordOrderFailed увеличивает счётчик неудачных оформлений.
func (m *OrderMetrics) RecordOrderFailed() {
	m.ordersFailed.Inc()
}

// RecordNotificationPublished увеличивает счётчик отправленных уведомлений.
func (m *OrderMetrics) RecordNotificationPublished() {
	m.notificationsPublished.Inc()
}

// RecordNotificationFailed увеличивает счётчик неотправленных уведомлений.
func (m *OrderMetrics) RecordNotificationFailed() {
	m.notificationsFailed.Inc()
}

// RecordStatusChange увеличивает счётчик смен статуса.
func (m *OrderMetrics) RecordStatusChange(status string) {
	m.statusChanges.WithLabelValues(status).Inc()
}

// RecordCheckoutDuration записывает время оформления заказа.
func (m *OrderMetrics) RecordCheckoutDuration(duration time.Duration) {
	m.checkoutDuration.Observe(duration.Seconds())
}
