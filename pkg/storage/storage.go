// Package storage keeps a corpus of captured column values in a pebble
// database so they can be listed and re-decoded later.
package storage

import (
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/tdswire/pkg/tds"
)

// ErrNotFound is returned when no sample has the requested id.
var ErrNotFound = errors.New("sample not found")

// SampleStore persists samples keyed by KSUID.
type SampleStore struct {
	db *pebble.DB
}

// Open opens or creates the store at path.
func Open(path string) (*SampleStore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "open sample store %s", path)
	}
	return &SampleStore{db: db}, nil
}

// Add stores a copy of value under a new id.
func (s *SampleStore) Add(ti tds.TypeInfo, value []byte, note string) (Sample, error) {
	sample := Sample{
		ID:       ksuid.New(),
		TypeInfo: ti,
		Value:    append([]byte{}, value...),
		Note:     note,
		Created:  time.Now().UTC(),
	}
	rec, err := encodeRecord(sample)
	if err != nil {
		return Sample{}, err
	}
	if err := s.db.Set(sample.ID.Bytes(), rec, pebble.Sync); err != nil {
		return Sample{}, errors.Wrap(err, "store sample")
	}
	return sample, nil
}

// Get reads one sample.
func (s *SampleStore) Get(id ksuid.KSUID) (Sample, error) {
	data, closer, err := s.db.Get(id.Bytes())
	if errors.Is(err, pebble.ErrNotFound) {
		return Sample{}, errors.Wrapf(ErrNotFound, "id %s", id)
	}
	if err != nil {
		return Sample{}, errors.Wrap(err, "read sample")
	}
	defer closer.Close()

	return decodeRecord(id, data)
}

// Delete removes a sample. Deleting an unknown id is an error.
func (s *SampleStore) Delete(id ksuid.KSUID) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.db.Delete(id.Bytes(), pebble.Sync)
}

// List returns every sample in creation order.
func (s *SampleStore) List() ([]Sample, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "iterate samples")
	}
	defer iter.Close()

	var samples []Sample
	for iter.First(); iter.Valid(); iter.Next() {
		id, err := ksuid.FromBytes(iter.Key())
		if err != nil {
			return nil, errors.Mark(errors.Wrap(err, "sample key"), ErrCorrupt)
		}
		sample, err := decodeRecord(id, iter.Value())
		if err != nil {
			return nil, errors.Wrapf(err, "sample %s", id)
		}
		samples = append(samples, sample)
	}
	if err := iter.Error(); err != nil {
		return nil, errors.Wrap(err, "iterate samples")
	}

	// KSUIDs only order by second
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Created.Before(samples[j].Created)
	})
	return samples, nil
}

// Close closes the underlying database.
func (s *SampleStore) Close() error {
	return s.db.Close()
}
