// Package store provides the durable key-value persistence the
// progression engine writes its state through. Values are opaque JSON
// documents; load/save is atomic per key but not across keys.
package store

import "context"

// Keys used by the progression engine.
const (
	KeyPlayerState      = "player_state"
	KeyAchievementState = "achievement_state"
)

// Store is the durable-store contract. Load returns (nil, nil) when the
// key has never been written.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
