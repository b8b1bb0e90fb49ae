package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"bengal_portal/internal/usecase/interfaces"
)

// Collection names under which each record set is stored.
const (
	KeySession     = "session"
	KeyJobs        = "jobs"
	KeyQuotes      = "quotes"
	KeyChatHistory = "chatHistory"
)

// DefaultKeyPrefix namespaces the collection keys inside a shared store.
const DefaultKeyPrefix = "bengal_"

func storeKey(prefix, name string) string {
	return prefix + name
}

// loadJSON reads key and decodes it into dst. found is false for a missing
// key; payloads that do not decode yield an error wrapping corrupt.
func loadJSON(ctx context.Context, store interfaces.IStore, key string, dst any, corrupt error) (bool, error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%w: key=%s: %v", corrupt, key, err)
	}
	return true, nil
}

func saveJSON(ctx context.Context, store interfaces.IStore, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, b)
}
