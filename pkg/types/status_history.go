package types

import (
	"time"

	"github.com/honestpc/honestpc-backend/pkg/enums"
)

// StatusHistoryEntry records one step of an order's pipeline audit log.
type StatusHistoryEntry struct {
	Status    enums.OrderStatus `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Note      string            `json:"note,omitempty"`
}

// StatusHistory is the append-only audit log stored on each order as a
// jsonb column. Entries are never edited or removed.
type StatusHistory []StatusHistoryEntry

// Append returns a new history with the entry added; the receiver is
// left untouched so stale copies never alias the stored log.
func (h StatusHistory) Append(entry StatusHistoryEntry) StatusHistory {
	out := make(StatusHistory, 0, len(h)+1)
	out = append(out, h...)
	return append(out, entry)
}

// Last returns the most recent entry.
func (h StatusHistory) Last() (StatusHistoryEntry, bool) {
	if len(h) == 0 {
		return StatusHistoryEntry{}, false
	}
	return h[len(h)-1], true
}
