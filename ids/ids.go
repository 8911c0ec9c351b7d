// Package ids generates the prefixed identifiers used across all
// collections ("u_…" for users, "p_…" for products, "order_…" for orders).
package ids

import (
	"strings"

	"github.com/google/uuid"
)

// New returns a fresh identifier with the given prefix. Eight hex chars of
// a v4 UUID are plenty for a single counter's data volume while keeping
// ids short enough to read in the admin panel.
func New(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + raw[:8]
}
