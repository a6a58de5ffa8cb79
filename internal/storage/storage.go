package storage

import "context"

// Slot names for the two persisted collections. The version suffix lets a
// future payload shape move to fresh slots without migrating old ones.
const (
	ItemsSlot  = "discovery-items-v1"
	OrdersSlot = "discovery-orders-v1"
)

// Adapter mirrors the domain store's collections into a local key-value
// store. It is a passive mirror, not a second source of truth: the domain
// store reads each slot once at startup and pushes writes outward after
// every mutation.
type Adapter interface {
	// Load reads and decodes a slot into out. It returns false when the slot
	// is absent or its payload does not decode as the expected shape; the
	// caller falls back to its default in that case. Only infrastructure
	// failures (an unreadable backing store) surface as errors.
	Load(ctx context.Context, slot string, out any) (bool, error)

	// Save encodes v and writes it to the slot, replacing any previous
	// payload.
	Save(ctx context.Context, slot string, v any) error

	// Clear removes the slot.
	Clear(ctx context.Context, slot string) error

	// Close releases the backing store.
	Close() error
}
