// Package storage is the typed persistence adapter: it stores JSON-encoded
// values in a metadata.Repository under string keys.
//
// Values that cannot be decoded read as absent. Every other failure of the
// underlying repository is returned as an oops error carrying the key.
package storage

import (
	"context"
	"encoding/json"

	"github.com/samber/oops"

	"github.com/dmitrijs2005/localauth/internal/logging"
	"github.com/dmitrijs2005/localauth/internal/repositories/metadata"
)

// CodeStorageFault is the oops code attached to repository failures.
const CodeStorageFault = "STORAGE_FAULT"

type Storage struct {
	repo metadata.Repository
	log  logging.Logger
}

func New(repo metadata.Repository, log logging.Logger) *Storage {
	return &Storage{repo: repo, log: log.With("component", "storage")}
}

func (s *Storage) fault(op, key string) oops.OopsErrorBuilder {
	return oops.In("storage").Code(CodeStorageFault).With("op", op).With("key", key)
}

// Get loads and decodes the value under key. found is false when the key is
// absent or its value is not valid JSON for T.
func Get[T any](ctx context.Context, s *Storage, key string) (value T, found bool, err error) {
	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		return value, false, s.fault("get", key).Wrapf(err, "get item")
	}
	return decode[T](ctx, s, key, raw)
}

// Set encodes value as JSON and stores it under key, replacing any previous value.
func (s *Storage) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return s.fault("set", key).Wrapf(err, "encode item")
	}
	if err := s.repo.Set(ctx, key, raw); err != nil {
		return s.fault("set", key).Wrapf(err, "set item")
	}
	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (s *Storage) Remove(ctx context.Context, key string) error {
	if err := s.repo.Delete(ctx, key); err != nil {
		return s.fault("remove", key).Wrapf(err, "remove item")
	}
	return nil
}

// Clear removes every key.
func (s *Storage) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return s.fault("clear", "*").Wrapf(err, "clear storage")
	}
	return nil
}

// Update atomically replaces the value under key with fn(current).
// current is the zero value (and found false) when the key is absent or
// undecodable. An error from fn aborts the update and is returned unchanged.
func Update[T any](ctx context.Context, s *Storage, key string, fn func(current T, found bool) (T, error)) error {
	var fnErr error
	err := s.repo.Update(ctx, key, func(raw []byte) ([]byte, error) {
		current, found, _ := decode[T](ctx, s, key, raw)
		next, err := fn(current, found)
		if err != nil {
			fnErr = err
			return nil, err
		}
		return json.Marshal(next)
	})
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return s.fault("update", key).Wrapf(err, "update item")
	}
	return nil
}

func decode[T any](ctx context.Context, s *Storage, key string, raw []byte) (value T, found bool, err error) {
	if raw == nil {
		return value, false, nil
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		s.log.Warn(ctx, "discarding undecodable value", "key", key, "error", err)
		var zero T
		return zero, false, nil
	}
	return value, true, nil
}
