// Package badgersource materializes rows stored in a Badger key-value
// store into a rowset.ResultSet. Row payloads are JSON-encoded objects;
// one prefix scan in a single read transaction produces the whole set,
// in key order.
package badgersource

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/kasuganosora/rowset/pkg/rowset"
	"github.com/kasuganosora/rowset/pkg/source"
)

// Scanner reads JSON row payloads from a Badger database.
type Scanner struct {
	db     *badger.DB
	logger source.Logger
}

// NewScanner creates a Scanner over an open Badger database.
func NewScanner(db *badger.DB) *Scanner {
	return &Scanner{
		db:     db,
		logger: source.NewNoOpLogger(),
	}
}

// SetLogger sets the diagnostics logger.
func (s *Scanner) SetLogger(logger source.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Scan materializes every row stored under the given key prefix.
// Values that are not JSON objects abort the scan with an error.
func (s *Scanner) Scan(prefix string) (*rowset.ResultSet, error) {
	if s.db == nil {
		return nil, fmt.Errorf("badger database is not open")
	}

	traceID := source.TraceID()
	s.logger.Debug("[%s] scanning prefix %q", traceID, prefix)

	var records []map[string]interface{}
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()

			var record map[string]interface{}
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			}); err != nil {
				return fmt.Errorf("failed to decode row at key %q: %w", item.Key(), err)
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("[%s] materialized %d rows", traceID, len(records))
	return source.Materialize(records), nil
}
