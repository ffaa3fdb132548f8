package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "idx_appointments_provider_slot"}

	require.True(t, IsUniqueViolation(dup))
	require.True(t, IsUniqueViolation(fmt.Errorf("create: %w", dup)))

	require.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	require.False(t, IsUniqueViolation(errors.New("plain error")))
	require.False(t, IsUniqueViolation(nil))
}

func TestBusinessError(t *testing.T) {
	err := ErrBusiness("slot_taken")

	require.True(t, IsBusiness(err, "slot_taken"))
	require.False(t, IsBusiness(err, "past_date"))

	code, ok := BusinessCode(fmt.Errorf("wrapped: %w", err))
	require.True(t, ok)
	require.Equal(t, "slot_taken", code)

	_, ok = BusinessCode(errors.New("plain"))
	require.False(t, ok)
}
