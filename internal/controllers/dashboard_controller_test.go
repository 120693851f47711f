package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet_console/internal/models"
)

func TestParseStops(t *testing.T) {
	stops := parseStops("Town @ -1.2833,36.8167\nJunction; Airport @ -1.3192,36.9278")
	require.Len(t, stops, 3)
	assert.Equal(t, models.Stop{Name: "Town", Seq: 1, Lat: -1.2833, Lng: 36.8167}, stops[0])
	assert.Equal(t, "Junction", stops[1].Name)
	assert.False(t, stops[1].Located())
	assert.Equal(t, 3, stops[2].Seq)

	t.Run("round trips through the textarea format", func(t *testing.T) {
		// A failed route submit re-renders the draft; the textarea text must
		// parse back into the same stops.
		text := models.RouteDraft{Stops: stops}.StopsText()
		assert.Equal(t, stops, parseStops(text))
	})

	t.Run("blank input", func(t *testing.T) {
		assert.Empty(t, parseStops("  \n ; "))
	})
}
