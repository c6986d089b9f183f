package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestIsChannelFKViolation(t *testing.T) {
	violation := &pgconn.PgError{
		Code:           pgerrcode.ForeignKeyViolation,
		ConstraintName: "fk_giveaways_channel",
	}
	require.True(t, isChannelFKViolation(violation))
	require.True(t, isChannelFKViolation(fmt.Errorf("create: %w", violation)))

	otherCode := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	require.False(t, isChannelFKViolation(otherCode))

	require.False(t, isChannelFKViolation(errors.New("connection reset")))
	require.False(t, isChannelFKViolation(nil))
}
