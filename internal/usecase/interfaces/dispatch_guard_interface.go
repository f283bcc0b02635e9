package interfaces

import "context"

// IDispatchGuard deduplicates notification dispatch across retried status
// updates. Acquire returns true when the key was not seen within the guard
// window, claiming it atomically. A nil guard means every qualifying
// transition dispatches.

type IDispatchGuard interface {
	Acquire(ctx context.Context, key string) (bool, error)
}
