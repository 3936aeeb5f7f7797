package routing

import "context"

/* Small, focused interfaces following "The Go Way"
 * The router only ever reads rules; the dashboard replaces them as a set
 */

// Reader provides read operations for routing rules
type Reader interface {
	/* ActiveByFunnel returns the active rules for a funnel ordered by
	 * priority ascending, ties broken by rule id
	 * An empty result is a valid state (rule sets are replaced
	 * delete-then-insert by the dashboard and may be briefly empty)
	 */
	ActiveByFunnel(ctx context.Context, funnelID string) ([]Rule, error)
}

// Writer provides write operations for routing rules
type Writer interface {
	/* ReplaceForFunnel swaps the full rule set for a funnel in one
	 * transaction, recomputing priorities from slice order
	 */
	ReplaceForFunnel(ctx context.Context, funnelID string, rules []Rule) ([]Rule, error)
}

type Repository interface {
	Reader
	Writer
}
