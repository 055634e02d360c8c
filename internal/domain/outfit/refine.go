package outfit

import "strings"

const (
	HotWeatherOutfit  = "Light cotton shirt with shorts 👕🩳 (adjusted for hot weather)"
	ColdWeatherOutfit = "Warm hoodie and jeans 🧥👖 (adjusted for cold weather)"

	amazonSearchURL   = "https://www.amazon.in/s?k="
	flipkartSearchURL = "https://www.flipkart.com/search?q="
)

var (
	hotWeatherTriggers  = []string{"blazer", "jacket", "sweater", "coat"}
	coldWeatherTriggers = []string{"t-shirt", "crop top", "shorts"}
)

// RefineForWeather replaces a predicted outfit that contradicts an extreme temperature.
// At most one band applies; anything else passes through untouched.
func RefineForWeather(outfit string, temp float64) string {
	lower := strings.ToLower(outfit)
	switch {
	case temp > 35:
		if containsAny(lower, hotWeatherTriggers) {
			return HotWeatherOutfit
		}
	case temp < 10:
		if containsAny(lower, coldWeatherTriggers) {
			return ColdWeatherOutfit
		}
	}
	return outfit
}

// ShoppingLinks builds marketplace search URLs for the outfit. Spaces become '+',
// nothing else is escaped.
func ShoppingLinks(outfit string) (amazon, flipkart string) {
	query := strings.ReplaceAll(outfit, " ", "+")
	return amazonSearchURL + query, flipkartSearchURL + query
}

func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}

func refinementBand(temp float64) string {
	if temp > 35 {
		return "hot"
	}
	return "cold"
}
