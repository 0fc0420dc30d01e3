package kvstore

import (
	"encoding/json"

	"example/storefront/internal/logger"
)

// GetCollection decodes the collection stored under name. Absent or
// undecodable data yields an empty, non-nil slice.
func GetCollection[T any](s *Store, name string) []T {
	raw, ok := s.Get(name)
	if !ok {
		return []T{}
	}
	return decodeCollection[T](s.Key(name), raw)
}

func decodeCollection[T any](key, raw string) []T {
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Log.Warnw("Discarding unreadable collection", "key", key, "error", err)
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// SetCollection overwrites the collection stored under name in one write.
func SetCollection[T any](s *Store, name string, items []T) {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		logger.Log.Errorw("Failed to encode collection", "key", s.Key(name), "error", err)
		return
	}
	s.Set(name, string(data))
}

// GetSingleton decodes the single value stored under name. The boolean is
// false when the value is absent, null or undecodable.
func GetSingleton[T any](s *Store, name string) (T, bool) {
	var value T
	raw, ok := s.Get(name)
	if !ok || raw == "null" {
		return value, false
	}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		logger.Log.Warnw("Discarding unreadable value", "key", s.Key(name), "error", err)
		var zero T
		return zero, false
	}
	return value, true
}

// SetSingleton overwrites the single value stored under name.
func SetSingleton[T any](s *Store, name string, value T) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Log.Errorw("Failed to encode value", "key", s.Key(name), "error", err)
		return
	}
	s.Set(name, string(data))
}

// Clear removes whatever is stored under name.
func Clear(s *Store, name string) {
	s.Remove(name)
}
