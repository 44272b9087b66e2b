package store

import (
	"dbb/internal/providers"
	"os"
	"path/filepath"
	"sort"

	json "github.com/goccy/go-json"
)

const backupKeep = 7

// BackupWriter snapshots every store document into a single compressed
// archive, one per calendar date. Runs after the daily send.
type BackupWriter struct {
	backing    Backing
	compressor CompressorInterface
	dir        string
	logger     providers.Logger
}

func NewBackupWriter(backing Backing, compressor CompressorInterface, dir string, logger providers.Logger) *BackupWriter {
	return &BackupWriter{
		backing:    backing,
		compressor: compressor,
		dir:        dir,
		logger:     logger,
	}
}

// Backup writes <dir>/dbb-<date>.json.zst containing all documents present
// in the backing. Re-running for the same date overwrites the archive.
func (bw *BackupWriter) Backup(date string) error {
	if bw.dir == "" {
		return nil
	}

	envelope := make(map[string]json.RawMessage)
	for _, name := range DocNames {
		data, ok, err := bw.backing.Read(name)
		if err != nil {
			bw.logger.Warnf(providers.TypeApp, "Backup: skipping document %s: %s", name, err)
			continue
		}
		if !ok {
			continue
		}
		envelope[name] = json.RawMessage(data)
	}

	jsonData, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	compressed, err := bw.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(bw.dir, 0755); err != nil {
		return err
	}

	path := filepath.Join(bw.dir, "dbb-"+date+".json.zst")
	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, compressed, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmpFile, path); err != nil {
		return err
	}

	bw.prune()
	return nil
}

// Restore reads one archive back into a name → raw document map.
func (bw *BackupWriter) Restore(date string) (map[string]json.RawMessage, error) {
	path := filepath.Join(bw.dir, "dbb-"+date+".json.zst")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	decompressed, err := bw.compressor.Decompress(data)
	if err != nil {
		return nil, err
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(decompressed, &envelope); err != nil {
		return nil, err
	}
	return envelope, nil
}

// prune keeps only the newest backupKeep archives. Archive names embed the
// date, so lexical order is chronological order.
func (bw *BackupWriter) prune() {
	files, err := filepath.Glob(filepath.Join(bw.dir, "dbb-*.json.zst"))
	if err != nil || len(files) <= backupKeep {
		return
	}
	sort.Strings(files)
	for _, file := range files[:len(files)-backupKeep] {
		if err := os.Remove(file); err != nil {
			bw.logger.Warnf(providers.TypeApp, "Backup: failed to prune %s: %s", file, err)
		}
	}
}

func (bw *BackupWriter) Close() {
	bw.compressor.Close()
}
