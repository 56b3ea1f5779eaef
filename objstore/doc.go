// Package objstore provides a simple file-based object storage: opaque
// string keys map to regular files under a base directory, with typed
// read/write (text, bytes, JSON-structured data), existence checks,
// deletion and key enumeration.
//
// # Overview
//
// The directory tree IS the index: there is no manifest, metadata file,
// cache or write-ahead log. Every operation is a direct, synchronous
// filesystem hit, which keeps the contract trivially simple:
//
//   - Keys may contain path separators; they become nested directories
//   - Writes create missing ancestor directories automatically
//   - Writes are truncate-and-write, not atomic rename
//   - Reads via Read sniff JSON and fall back to raw text
//   - No locks, no transactions, no fsync discipline
//
// # Quick Start
//
//	store, err := objstore.Open("./data")
//	if err != nil {
//	    return err
//	}
//
//	// Write structured data
//	store.WriteJSON("users/alice.json", map[string]interface{}{"age": 30})
//
//	// Read with JSON sniffing
//	v, _ := store.Read("users/alice.json") // map[string]interface{}
//
//	// Or raw
//	text, _ := store.ReadText("users/alice.json")
//
// With observability and a hermetic filesystem for tests:
//
//	logger, _ := objstore.NewProductionZapLogger()
//	metrics := objstore.NewPrometheusMetrics(prometheus.DefaultRegisterer)
//	store, _ := objstore.Open("./data",
//	    objstore.WithLogger(logger),
//	    objstore.WithMetrics(metrics),
//	    objstore.WithFs(afero.NewMemMapFs()),
//	)
//
// # The JSON ambiguity
//
// Read re-derives "is this JSON?" from content on every call. Text that
// happens to be valid JSON syntax ("42", "true", "null") comes back as the
// parsed value, not the original string. ReadText always returns the raw
// text. Both behaviors are intentional and preserved; callers that care
// must pick the right read method.
package objstore
