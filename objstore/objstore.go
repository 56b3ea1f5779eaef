package objstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// Default permissions for files and directories created by the store
const (
	DefaultDirPermissions  = 0o755
	DefaultFilePermissions = 0o644
)

// Store maps opaque string keys to regular files under a base directory.
// Keys may contain path separators, which are interpreted as nested
// subdirectories; the directory tree is the only index, there is no
// manifest or metadata file.
//
// The store holds no in-memory state beyond its configuration: every
// operation is a direct, synchronous filesystem hit. There is no locking,
// no atomic rename-on-write and no fsync discipline, so concurrent writers
// to the same key can interleave and a reader during a write may observe a
// partially written file.
//
// Keys are not validated: a key containing parent-directory segments
// ("../") can address locations outside the root. Callers are trusted to
// pass well-formed keys.
type Store struct {
	root    string
	fs      afero.Fs
	logger  Logger
	metrics Metrics
}

// Option configures a Store.
type Option func(*Store)

// WithFs replaces the backing filesystem. Defaults to the OS filesystem;
// tests commonly pass afero.NewMemMapFs().
func WithFs(fs afero.Fs) Option {
	return func(s *Store) {
		s.fs = fs
	}
}

// WithLogger attaches a logger. Defaults to a no-op logger.
func WithLogger(logger Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithMetrics attaches a metrics collector. Defaults to a no-op collector.
func WithMetrics(metrics Metrics) Option {
	return func(s *Store) {
		s.metrics = metrics
	}
}

// Open creates a store rooted at the given directory, creating it and any
// missing ancestors. Fails if root exists as a non-directory or creation is
// denied by the filesystem.
func Open(root string, opts ...Option) (*Store, error) {
	s := &Store{
		root:    root,
		fs:      afero.NewOsFs(),
		logger:  &NoOpLogger{},
		metrics: &NoOpMetrics{},
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.fs.MkdirAll(root, DefaultDirPermissions); err != nil {
		return nil, WithContext(mapFsError(err), map[string]interface{}{
			"root": root,
		})
	}

	s.logger.Debug("store opened", "root", root)
	return s, nil
}

// Root returns the base storage directory.
func (s *Store) Root() string {
	return s.root
}

func (s *Store) path(key string) string {
	return filepath.Join(s.root, key)
}

// mapFsError translates filesystem errors into the store's taxonomy.
// Errors outside the taxonomy propagate unchanged.
func mapFsError(err error) error {
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	if os.IsPermission(err) {
		return ErrUnauthorized
	}
	return err
}

// Read reads the file at the key as UTF-8 text and opportunistically parses
// it as JSON: the parsed value (map, slice or scalar) is returned on
// success, the raw text otherwise. Parseability is re-derived from content
// on every read; there is no persisted type tag, so text that happens to be
// valid JSON syntax comes back as the parsed value, not the original
// string. Use ReadText when that ambiguity matters.
func (s *Store) Read(key string) (interface{}, error) {
	text, err := s.ReadText(key)
	if err != nil {
		return nil, err
	}

	var parsed interface{}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return text, nil
	}
	return parsed, nil
}

// ReadText reads the file at the key as UTF-8 text without JSON parsing.
// Returns ErrNotFound if the key is absent and ErrInvalidEncoding if the
// stored bytes are not valid UTF-8.
func (s *Store) ReadText(key string) (string, error) {
	data, err := s.ReadBytes(key)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(data) {
		return "", WithContext(ErrInvalidEncoding, map[string]interface{}{
			"key":      key,
			"encoding": "utf-8",
		})
	}
	return string(data), nil
}

// ReadBytes reads the file at the key without any text decoding.
func (s *Store) ReadBytes(key string) ([]byte, error) {
	start := time.Now()
	data, err := afero.ReadFile(s.fs, s.path(key))
	s.metrics.Timing(MetricReadDuration, time.Since(start))

	if err != nil {
		s.metrics.Increment(MetricReadError)
		return nil, WithContext(mapFsError(err), map[string]interface{}{
			"key": key,
		})
	}

	s.metrics.Increment(MetricReadSuccess)
	return data, nil
}

// Write writes a payload to the key, creating any missing ancestor
// directories under the root. Existing content is truncated and
// overwritten; the write is NOT atomic.
func (s *Store) Write(key string, value Value) error {
	data, err := value.encode()
	if err != nil {
		s.metrics.Increment(MetricWriteError)
		return err
	}

	start := time.Now()
	path := s.path(key)
	if err := s.fs.MkdirAll(filepath.Dir(path), DefaultDirPermissions); err != nil {
		s.metrics.Increment(MetricWriteError)
		return WithContext(mapFsError(err), map[string]interface{}{
			"key": key,
		})
	}

	err = afero.WriteFile(s.fs, path, data, DefaultFilePermissions)
	s.metrics.Timing(MetricWriteDuration, time.Since(start))
	if err != nil {
		s.metrics.Increment(MetricWriteError)
		return WithContext(mapFsError(err), map[string]interface{}{
			"key": key,
		})
	}

	s.metrics.Increment(MetricWriteSuccess)
	s.logger.Debug("wrote key", "key", key, "kind", value.kind.String(), "bytes", len(data))
	return nil
}

// WriteBytes writes raw bytes verbatim.
func (s *Store) WriteBytes(key string, data []byte) error {
	return s.Write(key, Bytes(data))
}

// WriteText writes a string as UTF-8 text.
func (s *Store) WriteText(key string, text string) error {
	return s.Write(key, Text(text))
}

// WriteJSON serializes structured data to JSON text and writes it.
func (s *Store) WriteJSON(key string, v interface{}) error {
	return s.Write(key, JSON(v))
}

// Delete removes the file at the key. Returns ErrNotFound if the key is
// absent and ErrIsDirectory if it names a directory; use DeleteIfExists
// for idempotent deletion.
func (s *Store) Delete(key string) error {
	start := time.Now()
	err := s.removeFile(key)
	s.metrics.Timing(MetricDeleteDuration, time.Since(start))

	if err != nil {
		s.metrics.Increment(MetricDeleteError)
		return WithContext(err, map[string]interface{}{
			"key": key,
		})
	}

	s.metrics.Increment(MetricDeleteSuccess)
	s.logger.Debug("deleted key", "key", key)
	return nil
}

// removeFile unlinks the regular file behind key. Keys name files, so a
// key resolving to a directory is refused rather than removed.
func (s *Store) removeFile(key string) error {
	path := s.path(key)

	info, err := s.fs.Stat(path)
	if err != nil {
		return mapFsError(err)
	}
	if info.IsDir() {
		return ErrIsDirectory
	}
	if err := s.fs.Remove(path); err != nil {
		return mapFsError(err)
	}
	return nil
}

// DeleteIfExists removes the file at the key, returning silently when the
// key is already absent. Any other failure propagates.
func (s *Store) DeleteIfExists(key string) error {
	err := s.Delete(key)
	if IsNotFound(err) {
		return nil
	}
	return err
}

// Exists reports whether any filesystem entry (file or directory) exists at
// the key.
func (s *Store) Exists(key string) (bool, error) {
	return afero.Exists(s.fs, s.path(key))
}

// ListDirs returns the names of immediate child directories directly under
// the root. Keys (files) are not returned and the listing is non-recursive.
func (s *Store) ListDirs() ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		s.metrics.Increment(MetricListError)
		return nil, WithContext(mapFsError(err), map[string]interface{}{
			"root": s.root,
		})
	}

	dirs := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}

	s.metrics.Increment(MetricListSuccess)
	return dirs, nil
}

// ListKeys recursively walks root/prefix (all of root when prefix is empty)
// and returns the path of every regular file found, relative to the root
// and slash-separated. A missing prefix directory yields an empty slice,
// not an error; permission errors during the walk still propagate.
func (s *Store) ListKeys(prefix string) ([]string, error) {
	searchPath := s.root
	if prefix != "" {
		searchPath = filepath.Join(s.root, prefix)
	}

	keys := []string{}

	ok, err := afero.DirExists(s.fs, searchPath)
	if err != nil {
		s.metrics.Increment(MetricListError)
		return nil, WithContext(mapFsError(err), map[string]interface{}{
			"prefix": prefix,
		})
	}
	if !ok {
		return keys, nil
	}

	start := time.Now()
	err = afero.Walk(s.fs, searchPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		relPath, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		keys = append(keys, filepath.ToSlash(relPath))
		return nil
	})
	s.metrics.Timing(MetricListDuration, time.Since(start))

	if err != nil {
		s.metrics.Increment(MetricListError)
		return nil, WithContext(mapFsError(err), map[string]interface{}{
			"prefix": prefix,
		})
	}

	s.metrics.Increment(MetricListSuccess)
	s.metrics.Histogram(MetricKeysListed, float64(len(keys)))
	return keys, nil
}
