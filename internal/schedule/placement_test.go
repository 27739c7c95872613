package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDecodePlacement(t *testing.T) {
	p, err := DecodePlacement("cell-u1-20250502-09")
	require.NoError(t, err)
	require.Equal(t, "u1", p.ResourceID)
	require.Equal(t, 9, p.Hour)
	require.Equal(t, time.Date(2025, 5, 2, 9, 0, 0, 0, time.Local), p.Start())
}

func TestDecodePlacementHyphenatedResourceID(t *testing.T) {
	// UUIDs contain hyphens; date and hour must be taken from the right.
	p, err := DecodePlacement("cell-550e8400-e29b-41d4-a716-446655440000-20250502-14")
	require.NoError(t, err)
	require.Equal(t, "550e8400-e29b-41d4-a716-446655440000", p.ResourceID)
	require.Equal(t, time.Date(2025, 5, 2, 14, 0, 0, 0, time.Local), p.Start())
}

func TestDecodePlacementMalformed(t *testing.T) {
	for _, cellID := range []string{
		"",
		"cell",
		"cell-u1",
		"cell-u1-20250502",        // missing hour
		"cell-u1-2025050-09",      // short date
		"cell-u1-20250502-24",     // hour out of range
		"cell-u1-20250502-9",      // hour not zero-padded
		"cell-u1-20250502-xx",     // non-numeric hour
		"cell-u1-20251332-09",     // impossible date
		"lane-u1-20250502-09",     // wrong prefix
		"cell--20250502-09",       // empty resource
		"unplanned",               // sidebar target is not a cell
	} {
		_, err := DecodePlacement(cellID)
		require.ErrorIs(t, err, ErrInvalidPlacement, cellID)
	}
}

func TestParseTimestampLayouts(t *testing.T) {
	for _, value := range []string{
		"2025-05-01T10:00:00Z",
		"2025-05-01T10:00:00",
		"2025-05-01T10:00",
		"2025-05-01",
	} {
		_, ok := parseTimestamp(value)
		require.True(t, ok, value)
	}

	for _, value := range []string{"", "yesterday", "01/05/2025"} {
		_, ok := parseTimestamp(value)
		require.False(t, ok, value)
	}
}
