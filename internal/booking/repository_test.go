package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOverlapQueryInclusiveBounds pins the conflict predicate that runs
// against the database: bounds are inclusive on both sides, so back-to-back
// bookings that share an instant count as a conflict, and only pending and
// approved bookings block the slot.
func TestOverlapQueryInclusiveBounds(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	sql, args, err := overlapExistsSQL("r1", start, end)
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT EXISTS (SELECT 1 FROM public.bookings"+
			" WHERE resource_id = $1 AND status IN ($2,$3)"+
			" AND start_time <= $4 AND end_time >= $5)",
		sql,
	)

	// The new end bounds existing start times and vice versa; swapping them
	// would turn touching intervals into non-conflicts.
	assert.Equal(t, []interface{}{"r1", StatusPending, StatusApproved, end, start}, args)
}
