package contracts

import (
	"context"
	"time"
)

// KeyRelease reports what a compare-and-delete found under the key.
type KeyRelease int

const (
	KeyReleased KeyRelease = iota + 1
	KeyMissing
	KeyHeldByOther
)

type RedisRepository interface {
	SetNX(ctx context.Context, key, value string, expiration time.Duration) (bool, error)
	// CompareAndDelete removes key only while it still holds expected. The
	// check and the delete run as one server side step.
	CompareAndDelete(ctx context.Context, key, expected string) (KeyRelease, error)
}
