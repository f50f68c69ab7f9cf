package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/practicum/shareit/server/internal/model"
)

func TestParseBookingStatus(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"WAITING", "APPROVED", "REJECTED", "CANCELED"} {
		got, err := model.ParseBookingStatus(s)
		require.NoError(t, err)
		require.Equal(t, model.BookingStatus(s), got)
	}

	_, err := model.ParseBookingStatus("DONE")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown status: DONE")

	// case matters
	_, err = model.ParseBookingStatus("waiting")
	require.Error(t, err)
}

func TestParseBookingState(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"ALL", "CURRENT", "PAST", "FUTURE", "WAITING", "REJECTED"} {
		got, err := model.ParseBookingState(s)
		require.NoError(t, err)
		require.Equal(t, model.BookingState(s), got)
	}

	_, err := model.ParseBookingState("CANCELED")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown state: CANCELED")
}
