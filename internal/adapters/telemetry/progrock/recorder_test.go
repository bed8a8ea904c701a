package progrock_test

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vprogrock "github.com/vito/progrock"
	"go.trai.ch/tabicons/internal/adapters/telemetry/progrock"
	"go.trai.ch/tabicons/internal/core/domain"
	"go.trai.ch/tabicons/internal/core/ports"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
	assert.NoError(t, recorder.Close())
}

func TestRecorder_Lifecycle(t *testing.T) {
	recorder := progrock.New()
	ctx := context.Background()

	ctx, vertex := recorder.Record(ctx, "home.png")
	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, fromCtx)

	_, err := vertex.Stdout().Write([]byte("Created: images/home.png\n"))
	require.NoError(t, err)
	vertex.Log(domain.LogLevelDebug, "debug msg")
	vertex.Complete(nil)

	assert.NoError(t, recorder.Close())
}

func TestRecorder_VertexState(t *testing.T) {
	tape := vprogrock.NewTape()
	recorder := progrock.NewRecorder(tape)

	_, done := recorder.Record(context.Background(), "home.png")
	done.Complete(nil)

	_, failed := recorder.Record(context.Background(), "home-active.png")
	failed.Complete(errors.New("disk full"))

	_, canceled := recorder.Record(context.Background(), "profile.png")
	canceled.Complete(context.Canceled)

	// Never completed.
	recorder.Record(context.Background(), "orders.png")

	byName := map[string]*vprogrock.Vertex{}
	for _, v := range tape.Vertices() {
		byName[v.Name] = v
	}
	require.Len(t, byName, 4)

	home := byName["home.png"]
	assert.NotNil(t, home.Completed)
	assert.Nil(t, home.Error)

	errored := byName["home-active.png"]
	assert.NotNil(t, errored.Completed)
	require.NotNil(t, errored.Error)
	assert.Equal(t, "disk full", *errored.Error)

	assert.NotNil(t, byName["profile.png"].Completed)
	assert.True(t, byName["profile.png"].Canceled)
	assert.Nil(t, byName["profile.png"].Error)

	assert.Nil(t, byName["orders.png"].Completed)

	assert.Equal(t, 3, tape.CompletedCount())
	assert.Equal(t, 1, tape.ErroredCount())
	require.NoError(t, recorder.Close())
}

type journalVertex struct {
	Name      string          `json:"name"`
	Completed json.RawMessage `json:"completed"`
	Error     *string         `json:"error"`
}

type journalUpdate struct {
	Vertexes []journalVertex `json:"vertexes"`
}

func readJournal(t *testing.T, path string) map[string]journalVertex {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	latest := map[string]journalVertex{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var update journalUpdate
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &update))
		for _, v := range update.Vertexes {
			latest[v.Name] = v
		}
	}
	require.NoError(t, scanner.Err())
	return latest
}

func TestRecorder_Journal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	recorder := progrock.New()
	require.NoError(t, recorder.Journal(path))

	_, home := recorder.Record(context.Background(), "home.png")
	home.Log(domain.LogLevelInfo, "Created: images/home.png")
	home.Complete(nil)

	_, failed := recorder.Record(context.Background(), "settings.png")
	failed.Complete(errors.New("disk full"))

	require.NoError(t, recorder.Close())

	vertices := readJournal(t, path)
	require.Contains(t, vertices, "home.png")
	assert.NotEmpty(t, vertices["home.png"].Completed)
	assert.Nil(t, vertices["home.png"].Error)

	require.Contains(t, vertices, "settings.png")
	assert.NotEmpty(t, vertices["settings.png"].Completed)
	require.NotNil(t, vertices["settings.png"].Error)
	assert.Equal(t, "disk full", *vertices["settings.png"].Error)
}

func TestRecorder_JournalCreateFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "journal.json")
	recorder := progrock.New()

	err := recorder.Journal(path)
	require.ErrorIs(t, err, domain.ErrJournalCreateFailed)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.NoError(t, recorder.Close())
}
