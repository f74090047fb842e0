package services

import (
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// CleanupWorker sweeps the upload scratch directory, removing files left
// behind by interrupted requests. Processed uploads are deleted inline by the
// handler; this catches the ones that never got that far.
type CleanupWorker interface {
	Start()
	Stop()
}

type cleanupWorker struct {
	uploadPath string
	retention  time.Duration
	interval   time.Duration
	wg         sync.WaitGroup
	stopChan   chan struct{}
}

func NewCleanupWorker(uploadPath string, retention time.Duration) CleanupWorker {
	if retention <= 0 {
		retention = time.Hour
	}
	return &cleanupWorker{
		uploadPath: uploadPath,
		retention:  retention,
		interval:   10 * time.Minute,
		stopChan:   make(chan struct{}),
	}
}

func (w *cleanupWorker) Start() {
	log.Printf("🚀 Starting upload cleanup worker (retention %s)", w.retention)
	w.wg.Add(1)
	go w.run()
}

func (w *cleanupWorker) Stop() {
	log.Println("🛑 Stopping cleanup worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Cleanup worker stopped")
}

func (w *cleanupWorker) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ticker.C:
			if removed := w.sweep(); removed > 0 {
				log.Printf("🧹 Removed %d stale upload(s)", removed)
			}
		}
	}
}

func (w *cleanupWorker) sweep() int {
	entries, err := os.ReadDir(w.uploadPath)
	if err != nil {
		log.Printf("⚠️  Failed to read upload directory: %v", err)
		return 0
	}

	cutoff := time.Now().Add(-w.retention)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(w.uploadPath, entry.Name())); err != nil {
			log.Printf("⚠️  Failed to remove stale upload %s: %v", entry.Name(), err)
			continue
		}
		removed++
	}
	return removed
}
