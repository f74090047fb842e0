package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupWorkerSweep(t *testing.T) {
	dir := t.TempDir()

	stale := filepath.Join(dir, "resume_stale.pdf")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	fresh := filepath.Join(dir, "resume_fresh.pdf")
	require.NoError(t, os.WriteFile(fresh, []byte("new"), 0644))

	worker := NewCleanupWorker(dir, time.Hour).(*cleanupWorker)
	assert.Equal(t, 1, worker.sweep())

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(fresh)
	assert.NoError(t, err)
}

func TestCleanupWorkerSweepMissingDirectory(t *testing.T) {
	worker := NewCleanupWorker(filepath.Join(t.TempDir(), "missing"), time.Hour).(*cleanupWorker)
	assert.Equal(t, 0, worker.sweep())
}

func TestCleanupWorkerStartStop(t *testing.T) {
	worker := NewCleanupWorker(t.TempDir(), time.Hour)
	worker.Start()
	worker.Stop()
}
