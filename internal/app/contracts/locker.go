package contracts

import (
	"context"
	"time"
)

// LockerService hands out expiring, owner-tagged locks. TryLock returns the
// owner token that Unlock must present.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (acquired bool, lockValue string, err error)
	Unlock(ctx context.Context, key, lockValue string) error
}
