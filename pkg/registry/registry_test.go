package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/snippet/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID   int
	Name string
}

func TestRegister(t *testing.T) {
	reg := New[testItem]()

	t.Run("register valid item", func(t *testing.T) {
		require.NoError(t, reg.Register("item1", testItem{ID: 1, Name: "test"}))
		assert.Equal(t, 1, reg.Count())
	})

	t.Run("register with empty name", func(t *testing.T) {
		err := reg.Register("", testItem{ID: 2})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
	})

	t.Run("register duplicate", func(t *testing.T) {
		err := reg.Register("item1", testItem{ID: 3})
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists), "got %v", err)
	})
}

func TestGet(t *testing.T) {
	reg := New[testItem]()
	item := testItem{ID: 1, Name: "test"}
	require.NoError(t, reg.Register("item1", item))

	t.Run("get existing item", func(t *testing.T) {
		got, err := reg.Get("item1")
		require.NoError(t, err)
		assert.Equal(t, item, got)
	})

	t.Run("get non-existing item", func(t *testing.T) {
		_, err := reg.Get("nonexistent")
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound), "got %v", err)
	})
}

func TestOptions(t *testing.T) {
	reg := New[string](WithKind("codec"), WithNotFoundCode(errors.ErrUnknownCodec))

	_, err := reg.Get("rot13")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownCodec))
	assert.Contains(t, err.Error(), "unknown codec 'rot13'")
	assert.Equal(t, "rot13", errors.GetErrorDetails(err)["name"])

	err = reg.Register("", "x")
	assert.Contains(t, err.Error(), "codec name cannot be empty")
}

func TestFreeze(t *testing.T) {
	reg := New[int]()
	require.NoError(t, reg.Register("one", 1))

	reg.Freeze()

	err := reg.Register("two", 2)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.False(t, reg.Has("two"))

	got, err := reg.Get("one")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestList(t *testing.T) {
	reg := New[testItem]()

	for i, name := range []string{"charlie", "alpha", "bravo"} {
		require.NoError(t, reg.Register(name, testItem{ID: i}))
	}

	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, reg.List())
}

func TestHas(t *testing.T) {
	reg := New[testItem]()
	require.NoError(t, reg.Register("item1", testItem{ID: 1}))

	tests := []struct {
		name     string
		itemName string
		want     bool
	}{
		{"existing item", "item1", true},
		{"non-existing item", "item2", false},
		{"empty name", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reg.Has(tt.itemName))
		})
	}
}

func TestMustRegister(t *testing.T) {
	reg := New[int]()
	assert.NotPanics(t, func() { MustRegister(reg, "one", 1) })
	assert.Panics(t, func() { MustRegister(reg, "one", 1) })
}

func TestConcurrency(t *testing.T) {
	reg := New[testItem]()
	const goroutines = 10
	const itemsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func(goroutineID int) {
			defer wg.Done()
			for i := 0; i < itemsPerGoroutine; i++ {
				name := fmt.Sprintf("g%d_item%d", goroutineID, i)
				if err := reg.Register(name, testItem{ID: goroutineID*1000 + i}); err != nil {
					t.Errorf("Concurrent Register() failed: %v", err)
				}
			}
		}(g)
	}

	wg.Wait()
	assert.Equal(t, goroutines*itemsPerGoroutine, reg.Count())

	reg.Freeze()

	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(goroutineID int) {
			defer wg.Done()
			for i := 0; i < itemsPerGoroutine; i++ {
				if _, err := reg.Get(fmt.Sprintf("g%d_item%d", goroutineID, i)); err != nil {
					t.Errorf("Concurrent Get() failed: %v", err)
				}
			}
		}(g)
	}
	wg.Wait()
}
