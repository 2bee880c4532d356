package main

import (
	"encoding/gob"
	"log"
	"os"
	"path/filepath"
)

type ttPersistenceSnapshot struct {
	Size    int
	Buckets int
	Entries []TTEntry
}

func countValidTTEntries(entries []TTEntry) int {
	count := 0
	for _, entry := range entries {
		if entry.Valid {
			count++
		}
	}
	return count
}

// loadTTPersistence restores a saved transposition table snapshot. The
// snapshot must match the configured sizing; a mismatched file is
// skipped, never partially applied.
func loadTTPersistence(cfg Config) {
	if !cfg.AiEnableTtPersistence || cfg.AiTtPersistencePath == "" {
		return
	}
	path := cfg.AiTtPersistencePath
	file, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[ai:cache] failed to open TT persistence %s: %v", path, err)
		}
		return
	}
	defer file.Close()

	var snapshot ttPersistenceSnapshot
	if err := gob.NewDecoder(file).Decode(&snapshot); err != nil {
		log.Printf("[ai:cache] failed to decode TT persistence %s: %v", path, err)
		return
	}
	if snapshot.Size != cfg.AiTtSize || snapshot.Buckets != cfg.AiTtBuckets {
		log.Printf("[ai:cache] TT persistence (%d/%d) does not match current TT config (%d/%d); skipping",
			snapshot.Size, snapshot.Buckets, cfg.AiTtSize, cfg.AiTtBuckets)
		return
	}
	tt := SharedSearchCache()
	tt.loadEntries(snapshot.Entries)
	log.Printf("[ai:cache] restored TT persistence from %s (%d/%d valid entries)",
		path, countValidTTEntries(snapshot.Entries), len(snapshot.Entries))
}

func persistTTPersistence(cfg Config) {
	if !cfg.AiEnableTtPersistence || cfg.AiTtPersistencePath == "" {
		return
	}
	entries := SharedSearchCache().snapshotEntries()
	path := cfg.AiTtPersistencePath
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Printf("[ai:cache] unable to create TT persistence directory %s: %v", dir, err)
			return
		}
	}
	file, err := os.Create(path)
	if err != nil {
		log.Printf("[ai:cache] failed to create TT persistence %s: %v", path, err)
		return
	}
	defer file.Close()
	snapshot := ttPersistenceSnapshot{
		Size:    cfg.AiTtSize,
		Buckets: cfg.AiTtBuckets,
		Entries: entries,
	}
	if err := gob.NewEncoder(file).Encode(&snapshot); err != nil {
		log.Printf("[ai:cache] failed to encode TT persistence %s: %v", path, err)
		return
	}
	log.Printf("[ai:cache] stored TT persistence to %s (%d/%d valid entries)",
		path, countValidTTEntries(entries), len(entries))
}
