package domain

import "context"

// KeyValueStore описывает внешнее асинхронное key-value хранилище.
// Значения — непрозрачные текстовые блобы. Хранилище считается ненадёжным:
// любой вызов может завершиться ошибкой, Get может не найти ключ.
type KeyValueStore interface {
	// Get возвращает значение по ключу. Отсутствие ключа — не ошибка:
	// возвращается found=false при nil error.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set безусловно перезаписывает значение по ключу.
	Set(ctx context.Context, key, value string) error
	// List возвращает все ключи с заданным префиксом.
	List(ctx context.Context, prefix string) ([]string, error)
}

// NotificationSink — односторонний канал уведомлений внешнего хоста о новых
// заказах. Доставка fire-and-forget: вызывающий не ждёт подтверждения и не
// повторяет отправку.
type NotificationSink interface {
	NotifyNewOrder(ctx context.Context, order Order) error
}
