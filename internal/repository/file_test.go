package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestJSONFile_LoadMissingFile(t *testing.T) {
	f := NewJSONFile[entry](t.TempDir(), "things")

	items, ok, err := f.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok, "missing file must not count as an existing collection")
	assert.Empty(t, items)
}

func TestJSONFile_SaveThenLoad(t *testing.T) {
	dir := t.TempDir()
	f := NewJSONFile[entry](dir, "things")
	in := []entry{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}

	require.NoError(t, f.Save(context.Background(), in))

	items, ok, err := f.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, in, items)

	// pretty-printed, 2-space indent
	data, err := os.ReadFile(filepath.Join(dir, "things.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  {")
}

func TestJSONFile_SaveEmptyWritesArray(t *testing.T) {
	dir := t.TempDir()
	f := NewJSONFile[entry](dir, "things")

	require.NoError(t, f.Save(context.Background(), nil))

	data, err := os.ReadFile(filepath.Join(dir, "things.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	_, ok, err := f.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestJSONFile_SaveCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	f := NewJSONFile[entry](dir, "things")

	require.NoError(t, f.Save(context.Background(), []entry{{ID: "1"}}))

	_, err := os.Stat(filepath.Join(dir, "things.json"))
	require.NoError(t, err)
}

func TestJSONFile_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "things.json"), []byte("{not json"), 0o644))

	f := NewJSONFile[entry](dir, "things")
	_, _, err := f.Load(context.Background())
	require.Error(t, err)
}

func TestJSONFile_FullRewrite(t *testing.T) {
	dir := t.TempDir()
	f := NewJSONFile[entry](dir, "things")
	ctx := context.Background()

	require.NoError(t, f.Save(ctx, []entry{{ID: "1"}, {ID: "2"}, {ID: "3"}}))
	require.NoError(t, f.Save(ctx, []entry{{ID: "2"}}))

	items, _, err := f.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entry{{ID: "2"}}, items)
}

func TestMemory_AbsentUntilFirstSave(t *testing.T) {
	m := NewMemory[entry]()
	ctx := context.Background()

	_, ok, err := m.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Save(ctx, nil))

	_, ok, err = m.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemory_LoadReturnsCopy(t *testing.T) {
	m := NewMemory[entry]()
	ctx := context.Background()
	require.NoError(t, m.Save(ctx, []entry{{ID: "1", Name: "a"}}))

	items, _, err := m.Load(ctx)
	require.NoError(t, err)
	items[0].Name = "mutated"

	again, _, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", again[0].Name)
}

func TestTimeIDs_UniqueWithinProcess(t *testing.T) {
	g := NewTimeIDs()
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id := g.NewID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestUUIDs_NonEmpty(t *testing.T) {
	assert.NotEmpty(t, UUIDs{}.NewID())
	assert.NotEqual(t, UUIDs{}.NewID(), UUIDs{}.NewID())
}
