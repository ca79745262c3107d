package repository

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Collection хранилище коллекции как единого целого: чтение всей
// последовательности и полная перезапись. ok=false означает, что
// коллекция ещё ни разу не сохранялась (нет файла).
type Collection[T any] interface {
	Load(ctx context.Context) (items []T, ok bool, err error)
	Save(ctx context.Context, items []T) error
}

// IDGenerator выдаёт идентификаторы для новых сущностей
type IDGenerator interface {
	NewID() string
}

// TimeIDs генерирует id из миллисекунд текущего времени, как
// Date.now().toString(). Под мьютексом поднимает значение, если часы
// не ушли вперёд, поэтому id уникальны в пределах процесса.
type TimeIDs struct {
	mu   sync.Mutex
	last int64
}

func NewTimeIDs() *TimeIDs { return &TimeIDs{} }

func (g *TimeIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	now := time.Now().UnixMilli()
	if now <= g.last {
		now = g.last + 1
	}
	g.last = now
	return strconv.FormatInt(now, 10)
}

// UUIDs альтернативный генератор, включается через ID_MODE=uuid
type UUIDs struct{}

func (UUIDs) NewID() string { return uuid.NewString() }

// Ensure interfaces
var (
	_ IDGenerator = (*TimeIDs)(nil)
	_ IDGenerator = UUIDs{}
)
