package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplay_KnownStatuses(t *testing.T) {
	assert.Equal(t, "Cancel requested", EventStatusCancelRequested.Display().Label)
	assert.Equal(t, "Confirmed", BookingStatusConfirmed.Display().Label)
}

func TestDisplay_UnknownStatusGetsNeutralEntry(t *testing.T) {
	d := EventStatus("mystery").Display()
	assert.Equal(t, "mystery", d.Label)
	assert.Equal(t, "gray", d.Color)

	b := BookingStatus("mystery").Display()
	assert.Equal(t, "mystery", b.Label)
}
