package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSONFile хранит коллекцию в одном JSON-файле: чтение целиком, запись
// целиком. Блокировок нет — параллельные записи перекрывают друг друга
// по принципу last-write-wins.
type JSONFile[T any] struct {
	path string
}

func NewJSONFile[T any](dir, name string) *JSONFile[T] {
	return &JSONFile[T]{path: filepath.Join(dir, name+".json")}
}

var _ Collection[struct{}] = (*JSONFile[struct{}])(nil)

func (f *JSONFile[T]) Load(_ context.Context) ([]T, bool, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", f.path, err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", f.path, err)
	}
	return items, true, nil
}

func (f *JSONFile[T]) Save(_ context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("mkdir for %s: %w", f.path, err)
	}
	// same layout as JSON.stringify(items, null, 2)
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", f.path, err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return nil
}
