package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pathforge/internal/adapters/watcher"
	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newWatcher(t *testing.T) *watcher.Watcher {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return watcher.New(log).WithWindow(10 * time.Millisecond)
}

func writeScenario(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestChanges_SignalsEdits(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, domain.ScenarioFileName)
	writeScenario(t, file, "grid: {width: 2, height: 2}\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := newWatcher(t).Changes(ctx, dir)
	require.NoError(t, err)

	writeScenario(t, file, "grid: {width: 3, height: 2}\n")
	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change signaled")
	}

	cancel()
	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-changes:
			return !ok
		default:
			return false
		}
	}, 5*time.Second, 5*time.Millisecond)
}

func TestChanges_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "world.yaml")
	writeScenario(t, file, "grid: {width: 2, height: 2}\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := newWatcher(t).Changes(ctx, file)
	require.NoError(t, err)

	writeScenario(t, filepath.Join(dir, "notes.txt"), "unrelated")
	select {
	case <-changes:
		t.Fatal("unrelated file signaled a change")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestChanges_MissingScenario(t *testing.T) {
	_, err := newWatcher(t).Changes(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, domain.ErrScenarioNotFound)
}
