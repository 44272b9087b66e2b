package store

import (
	"dbb/internal/providers"
	"errors"
	"time"

	json "github.com/goccy/go-json"
)

// FlatStore is the whole-document JSON store every tracker runs on. Load and
// Save never propagate errors: failures are logged and converted to an
// empty-document or false result, so callers degrade to "user has no data
// yet" behavior.
type FlatStore struct {
	backing Backing
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewFlatStore(backing Backing, logger providers.Logger, metrics providers.MetricsProviderInterface) *FlatStore {
	return &FlatStore{
		backing: backing,
		logger:  logger,
		metrics: metrics,
	}
}

// Load reads a document into the given value. A missing document leaves the
// value untouched (the empty document) and counts as success.
func (s *FlatStore) Load(name string, into interface{}) bool {
	data, ok, err := s.backing.Read(name)
	if err != nil {
		s.reportError("load", name, err)
		return false
	}
	if !ok {
		return true
	}

	if err := json.Unmarshal(data, into); err != nil {
		s.logger.Errorf(providers.TypeApp, "Invalid JSON in document %s: %s", name, err)
		return false
	}
	return true
}

// Save writes the full document. Returns false on any failure.
func (s *FlatStore) Save(name string, doc interface{}) bool {
	start := time.Now()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to encode document %s: %s", name, err)
		return false
	}

	if err := s.backing.Write(name, data); err != nil {
		s.reportError("save", name, err)
		return false
	}

	s.metrics.ObserveStoreSaveDuration(time.Since(start))
	return true
}

// Validate runs the backing health check once at startup. A degraded backing
// is reported loudly but does not stop the process: the store behaves as
// empty until an operator fixes the deployment.
func (s *FlatStore) Validate() bool {
	err := s.backing.Validate()
	if err == nil {
		return true
	}
	s.reportError("validate", "*", err)
	return false
}

func (s *FlatStore) reportError(op, name string, err error) {
	var dirErr *DirectoryError
	if errors.As(err, &dirErr) {
		s.logger.Fatalf(providers.TypeApp, "Storage file path is a directory! Cannot remove mounted directory: %s", dirErr.Path)
		s.logger.Fatalf(providers.TypeApp, "Please stop the container, remove the directory on the host, and create a file instead:")
		s.logger.Fatalf(providers.TypeApp, "  rm -rf %s", dirErr.Path)
		s.logger.Fatalf(providers.TypeApp, "  echo '{}' > %s", dirErr.Path)
		s.logger.Fatalf(providers.TypeApp, "Then restart the container.")
		return
	}
	s.logger.Errorf(providers.TypeApp, "Storage %s failed for document %s: %s", op, name, err)
}
