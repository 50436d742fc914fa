package bolt

import (
	"bytes"
	"context"
	"fmt"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/vladislavdragonenkov/bakeshop/internal/domain"
)

var bucketName = []byte("bakeshop")

// Store — встраиваемая реализация KeyValueStore поверх bbolt.
// Подходит для single-node установки без внешней базы.
type Store struct {
	db *bbolt.DB
}

// Open открывает файл базы и создаёт рабочий bucket.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bolt bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Get возвращает значение по ключу или found=false, если его нет.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	var value []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketName).Get([]byte(key))
		if raw != nil {
			value = append([]byte(nil), raw...)
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("bolt get %q: %w", key, err)
	}
	if value == nil {
		return "", false, nil
	}
	return string(value), true, nil
}

// Set безусловно перезаписывает значение по ключу.
func (s *Store) Set(_ context.Context, key, value string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("bolt set %q: %w", key, err)
	}
	return nil
}

// List возвращает все ключи с заданным префиксом через курсорный Seek.
func (s *Store) List(_ context.Context, prefix string) ([]string, error) {
	var keys []string
	pfx := []byte(prefix)
	err := s.db.View(func(tx *bbolt.Tx) error {
		cur := tx.Bucket(bucketName).Cursor()
		for k, _ := cur.Seek(pfx); k != nil && bytes.HasPrefix(k, pfx); k, _ = cur.Next() {
			keys = append(keys, string(k))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("bolt list %q: %w", prefix, err)
	}
	return keys, nil
}

// Ping проверяет доступность базы.
func (s *Store) Ping(ctx context.Context) error {
	_, _, err := s.Get(ctx, "ping")
	return err
}

// Close закрывает файл базы.
func (s *Store) Close() error {
	return s.db.Close()
}

var _ domain.KeyValueStore = (*Store)(nil)
