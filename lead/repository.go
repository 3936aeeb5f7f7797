package lead

import (
	"context"
	"errors"
	"time"

	"github.com/marcelsud/lead-router/funnel"
)

// ErrNotFound is returned by stores when a lead or funnel is absent
var ErrNotFound = errors.New("not found")

/* Small, focused interfaces following "The Go Way"
 * Interfaces abstract behavior, not things
 */

// Reader provides read operations for leads
type Reader interface {
	// Get returns the lead with its funnel slug joined in
	Get(ctx context.Context, id string) (Lead, error)
	// ListByFunnel returns leads newest first; an empty funnelID lists all
	ListByFunnel(ctx context.Context, funnelID string, limit, offset int) ([]Lead, error)
}

// Writer provides write operations for leads
type Writer interface {
	Insert(ctx context.Context, l Lead) (Lead, error)
	// MarkSent records the routing outcome and clears any earlier error
	MarkSent(ctx context.Context, id, sentTo, sentToClient string, at time.Time) error
	MarkError(ctx context.Context, id, message string) error
}

// FunnelReader provides the minimal funnel lookups the lead flow needs
type FunnelReader interface {
	FunnelExists(ctx context.Context, id string) (bool, error)
	FunnelVariants(ctx context.Context, id string) ([]funnel.Variant, error)
}

/* Interface composition - combining small interfaces into larger ones
 * This is preferred over large monolithic interfaces
 */
type Repository interface {
	Reader
	Writer
	FunnelReader
	Close(ctx context.Context) error
}
