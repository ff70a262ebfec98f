// Package localstore implements the persistence layer as whole-collection
// JSON blobs on disk, mirroring the demo storage model the service grew out
// of: one file per collection, every mutation a full read-modify-write.
// It is meant for single-process demo deployments; real deployments use the
// postgres backend and its uniqueness constraints instead.
package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// collection persists a slice of T as one JSON file. Replace writes the whole
// collection to a temp file and renames it over the old one, so a failure
// mid-write leaves either the old or the new blob, never a mix. The mutex
// serializes read-modify-write cycles within this process; cross-process
// writers are out of scope (single-writer assumption).
type collection[T any] struct {
	path string
	mu   sync.Mutex
}

func newCollection[T any](dir, name string) (*collection[T], error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create localstore directory")
	}

	return &collection[T]{path: filepath.Join(dir, name+".json")}, nil
}

// load reads the full collection. A missing file is an empty collection.
func (c *collection[T]) load() ([]T, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read collection file")
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.Wrap(err, "failed to decode collection file")
	}

	return items, nil
}

// replace atomically swaps the stored collection for items.
func (c *collection[T]) replace(items []T) error {
	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode collection")
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "failed to create temp collection file")
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return errors.Wrap(err, "failed to write temp collection file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrap(err, "failed to close temp collection file")
	}

	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrap(err, "failed to replace collection file")
	}

	return nil
}

// update runs fn over the current collection under the writer lock and
// replaces the blob with fn's result.
func (c *collection[T]) update(fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return err
	}

	next, err := fn(items)
	if err != nil {
		return err
	}

	return c.replace(next)
}
