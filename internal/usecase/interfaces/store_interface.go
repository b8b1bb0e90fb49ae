package interfaces

import (
	"context"
	"errors"
)

var (
	ErrCorruptSession    = errors.New("corrupt session payload")
	ErrCorruptCollection = errors.New("corrupt collection payload")
)

// IStore is the durable key-value surface the portal keeps its collections in.
//
// Each logical collection (session, jobs, quotes, chat history) lives under
// one key as a single serialized value. Get reports found=false for a missing
// key instead of an error.
type IStore interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
