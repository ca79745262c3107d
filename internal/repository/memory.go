package repository

import (
	"context"
	"sync"
)

// Memory реализация Collection в памяти для тестов. Повторяет семантику
// файла: ok=false, пока коллекция ни разу не сохранялась.
type Memory[T any] struct {
	mu    sync.RWMutex
	items []T
	saved bool

	// инъекция ошибок для тестов классификации сбоев хранилища
	LoadErr error
	SaveErr error
}

func NewMemory[T any]() *Memory[T] { return &Memory[T]{} }

var _ Collection[struct{}] = (*Memory[struct{}])(nil)

// Seed заполняет коллекцию и помечает её существующей
func (m *Memory[T]) Seed(items []T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append([]T(nil), items...)
	m.saved = true
}

func (m *Memory[T]) Load(_ context.Context) ([]T, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.LoadErr != nil {
		return nil, false, m.LoadErr
	}
	// return copy
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out, m.saved, nil
}

func (m *Memory[T]) Save(_ context.Context, items []T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	cp := make([]T, len(items))
	copy(cp, items)
	m.items = cp
	m.saved = true
	return nil
}
