package outfit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRefineForWeather(t *testing.T) {
	require.Equal(t, HotWeatherOutfit, RefineForWeather("Leather jacket and jeans", 36))
	require.Equal(t, ColdWeatherOutfit, RefineForWeather("Graphic t-shirt", 5))
	require.Equal(t, "Cotton kurta", RefineForWeather("Cotton kurta", 22))
}

func TestRefineForWeatherCaseInsensitive(t *testing.T) {
	require.Equal(t, HotWeatherOutfit, RefineForWeather("Navy BLAZER with chinos", 40))
	require.Equal(t, ColdWeatherOutfit, RefineForWeather("Denim Shorts and Crop Top", 2))
}

func TestRefineForWeatherBoundaries(t *testing.T) {
	require.Equal(t, "Wool coat", RefineForWeather("Wool coat", 35))
	require.Equal(t, "Graphic t-shirt", RefineForWeather("Graphic t-shirt", 10))
	// hot band never applies cold triggers and vice versa
	require.Equal(t, "Sweater and shorts", RefineForWeather("Sweater and shorts", 20))
	require.Equal(t, "Linen shorts", RefineForWeather("Linen shorts", 38))
	require.Equal(t, "Puffer coat", RefineForWeather("Puffer coat", 3))
}

func TestRefineForWeatherIdempotent(t *testing.T) {
	for _, temp := range []float64{36, 45} {
		once := RefineForWeather("Tweed blazer", temp)
		require.Equal(t, once, RefineForWeather(once, temp))
	}
	for _, temp := range []float64{-10, 9} {
		once := RefineForWeather("Crop top", temp)
		require.Equal(t, once, RefineForWeather(once, temp))
	}
}

func TestShoppingLinks(t *testing.T) {
	amazon, flipkart := ShoppingLinks("Floral summer dress")
	require.Equal(t, "https://www.amazon.in/s?k=Floral+summer+dress", amazon)
	require.Equal(t, "https://www.flipkart.com/search?q=Floral+summer+dress", flipkart)
}
