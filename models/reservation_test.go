package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReservationStatus(t *testing.T) {
	for _, s := range AllReservationStatuses {
		parsed, ok := ParseReservationStatus(string(s))
		assert.True(t, ok, s)
		assert.Equal(t, s, parsed)
	}

	for _, code := range []string{"", "seated", "DONE", "RESERVED", " COOKING"} {
		_, ok := ParseReservationStatus(code)
		assert.False(t, ok, code)
	}
}

func TestReservationStatusNext(t *testing.T) {
	expected := map[ReservationStatus]ReservationStatus{
		StatusPending:   StatusConfirmed,
		StatusConfirmed: StatusCooking,
		StatusCooking:   StatusServed,
		StatusServed:    StatusCompleted,
	}

	for _, s := range AllReservationStatuses {
		next, ok := s.Next()
		want, hasNext := expected[s]
		assert.Equal(t, hasNext, ok, s)
		assert.Equal(t, want, next, s)
	}
}

func TestReservationStatusTableEffect(t *testing.T) {
	effect, ok := StatusSeated.TableEffect()
	assert.True(t, ok)
	assert.Equal(t, TableOccupied, effect)

	for _, s := range []ReservationStatus{StatusCompleted, StatusCancelled} {
		effect, ok := s.TableEffect()
		assert.True(t, ok)
		assert.Equal(t, TableAvailable, effect)
		assert.True(t, s.IsTerminal())
	}

	for _, s := range []ReservationStatus{StatusPending, StatusConfirmed, StatusCooking, StatusServed} {
		_, ok := s.TableEffect()
		assert.False(t, ok, s)
		assert.False(t, s.IsTerminal(), s)
	}
}
