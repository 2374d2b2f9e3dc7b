package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/payday-labs/sndeploy/internal/domain"
	"github.com/payday-labs/sndeploy/internal/domain/config"
)

// indent matches the layout of hand-maintained account.json files
const indent = "    "

// CacheStore is the account.json address cache.
// No concurrent writers are assumed; there is no locking.
type CacheStore struct {
	path string
	log  *slog.Logger
}

// NewCacheStore creates a cache backed by the configured cache file
func NewCacheStore(cfg *config.RuntimeConfig, log *slog.Logger) *CacheStore {
	return NewCacheStoreAt(cfg.CacheFile, log)
}

// NewCacheStoreAt creates a cache backed by path
func NewCacheStoreAt(path string, log *slog.Logger) *CacheStore {
	return &CacheStore{
		path: path,
		log:  log.With("component", "CacheStore", "path", path),
	}
}

// Path returns the cache file location
func (s *CacheStore) Path() string {
	return s.path
}

// Lookup returns the address stored under key
func (s *CacheStore) Lookup(ctx context.Context, key string) (domain.Felt, bool, error) {
	data, err := s.load()
	if err != nil {
		return domain.Felt{}, false, err
	}

	raw, ok := data[key]
	if !ok {
		return domain.Felt{}, false, nil
	}

	address, err := decodeAddress(key, raw)
	if err != nil {
		return domain.Felt{}, false, err
	}
	return address, true, nil
}

// Store writes address under key and rewrites the whole file with sorted keys.
// The file is re-read first so entries written by earlier runs survive.
func (s *CacheStore) Store(ctx context.Context, key string, address domain.Felt) error {
	data, err := s.load()
	if err != nil {
		return err
	}

	encoded, err := json.Marshal(FormatAddress(address))
	if err != nil {
		return err
	}
	data[key] = encoded

	s.log.Debug("caching address", "key", key, "address", address)
	return s.save(data)
}

// Entries returns every cached address sorted by key
func (s *CacheStore) Entries(ctx context.Context) ([]domain.CachedAddress, error) {
	data, err := s.load()
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]domain.CachedAddress, 0, len(keys))
	for _, k := range keys {
		address, err := decodeAddress(k, data[k])
		if err != nil {
			return nil, err
		}
		entries = append(entries, domain.CachedAddress{Key: k, Address: address})
	}
	return entries, nil
}

// Remove deletes key from the cache
func (s *CacheStore) Remove(ctx context.Context, key string) error {
	data, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := data[key]; !ok {
		return fmt.Errorf("%s: %w", key, domain.ErrNotFound)
	}
	delete(data, key)
	return s.save(data)
}

// FormatAddress renders an address as lowercase hex with at least two digits
func FormatAddress(address domain.Felt) string {
	return fmt.Sprintf("0x%02x", address.BigInt())
}

// load reads the cache; a missing or empty file is an empty cache
func (s *CacheStore) load() (map[string]json.RawMessage, error) {
	data := make(map[string]json.RawMessage)

	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return data, nil
		}
		return nil, fmt.Errorf("failed to read address cache: %w", err)
	}
	if len(content) == 0 {
		return data, nil
	}

	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCacheCorrupted, s.path, err)
	}
	return data, nil
}

// save rewrites the cache through a temporary file in the same directory
func (s *CacheStore) save(data map[string]json.RawMessage) error {
	// MarshalIndent sorts map keys
	content, err := json.MarshalIndent(data, "", indent)
	if err != nil {
		return fmt.Errorf("failed to encode address cache: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".account-*.json")
	if err != nil {
		return fmt.Errorf("failed to write address cache: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write address cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write address cache: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to write address cache: %w", err)
	}

	return os.Rename(tmp.Name(), s.path)
}

func decodeAddress(key string, raw json.RawMessage) (domain.Felt, error) {
	var hex string
	if err := json.Unmarshal(raw, &hex); err != nil {
		return domain.Felt{}, fmt.Errorf("%w: %s is not a string", domain.ErrCacheCorrupted, key)
	}
	address, err := domain.ParseFelt(hex)
	if err != nil {
		return domain.Felt{}, fmt.Errorf("%w: %s: %v", domain.ErrCacheCorrupted, key, err)
	}
	return address, nil
}
