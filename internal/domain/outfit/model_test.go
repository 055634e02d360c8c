package outfit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocationString(t *testing.T) {
	require.Equal(t, "city=Mumbai", Location{City: "Mumbai"}.String())
	require.Equal(t, "lat=31.1 lon=77.17", Location{City: "Delhi", Coordinates: &Coordinates{Lat: 31.1, Lon: 77.17}}.String())
}
