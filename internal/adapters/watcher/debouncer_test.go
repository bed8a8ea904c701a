package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tabicons/internal/adapters/watcher"
)

func TestDebouncer_Add_SinglePath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls [][]string
		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			calls = append(calls, paths)
		})

		d.Add("/project/tabicons.yaml")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, calls, 1)
		assert.Equal(t, []string{"/project/tabicons.yaml"}, calls[0])
	})
}

func TestDebouncer_Add_CoalescesAndSorts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls [][]string
		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			calls = append(calls, paths)
		})

		d.Add("/project/tabicons.yaml")
		time.Sleep(50 * time.Millisecond)
		d.Add("/project/.tabicons.yaml.swp")
		time.Sleep(50 * time.Millisecond)
		d.Add("/project/tabicons.yaml")

		// The window restarts on every Add.
		time.Sleep(80 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, calls)

		time.Sleep(50 * time.Millisecond)
		synctest.Wait()
		require.Len(t, calls, 1)
		assert.Equal(t, []string{"/project/.tabicons.yaml.swp", "/project/tabicons.yaml"}, calls[0])
	})
}

func TestDebouncer_SeparateWindows(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls [][]string
		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			calls = append(calls, paths)
		})

		d.Add("/project/a.yaml")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		d.Add("/project/b.yaml")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, [][]string{{"/project/a.yaml"}, {"/project/b.yaml"}}, calls)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	var mu sync.Mutex
	var calls [][]string
	d := watcher.NewDebouncer(time.Hour, func(paths []string) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, paths)
	})

	d.Add("/project/tabicons.yaml")
	d.Flush()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, [][]string{{"/project/tabicons.yaml"}}, calls)
}

func TestDebouncer_FlushEmpty(t *testing.T) {
	called := false
	d := watcher.NewDebouncer(time.Hour, func([]string) { called = true })

	d.Flush()
	assert.False(t, called)
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		called := false
		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) { called = true })

		d.Add("/project/tabicons.yaml")
		d.Stop()

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		assert.False(t, called)
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(100*time.Millisecond, nil)

		d.Add("/project/tabicons.yaml")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		d.Flush()
	})
}
