package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetBuilderNumbersPlaceholdersInOrder(t *testing.T) {
	var b setBuilder
	b.add("name=$%d", "Jane")
	b.add("phone=NULLIF($%d, '')", "+33612345678")
	b.add("type=$%d", "company")

	sql, args := b.query("renters", 7)

	require.Equal(t,
		"UPDATE renters SET name=$1, phone=NULLIF($2, ''), type=$3, updated_at=now() WHERE id=$4",
		sql)
	require.Equal(t, []any{"Jane", "+33612345678", "company", int64(7)}, args)
}

func TestSetBuilderSingleField(t *testing.T) {
	var b setBuilder
	b.add("is_available=$%d", false)

	sql, args := b.query("locations", 3)

	require.Equal(t,
		"UPDATE locations SET is_available=$1, updated_at=now() WHERE id=$2",
		sql)
	require.Equal(t, []any{false, int64(3)}, args)
}
