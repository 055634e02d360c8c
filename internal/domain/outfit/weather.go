package outfit

// WeatherCategory is the coarse temperature band the model was trained on.
type WeatherCategory string

const (
	CategoryCold WeatherCategory = "Cold"
	CategoryMild WeatherCategory = "Mild"
	CategoryWarm WeatherCategory = "Warm"
)

// CategorizeTemperature maps degrees Celsius onto the model's weather feature.
func CategorizeTemperature(temp float64) WeatherCategory {
	switch {
	case temp < 15:
		return CategoryCold
	case temp < 25:
		return CategoryMild
	default:
		return CategoryWarm
	}
}

// DescribeTemperature returns the comfort tip shown next to the reading.
// Its bands are independent of CategorizeTemperature.
func DescribeTemperature(temp float64) string {
	switch {
	case temp < 10:
		return "It's quite cold ❄️. Wear something warm!"
	case temp < 20:
		return "Chilly outside 🍃. A light jacket would work."
	case temp < 30:
		return "Pleasant weather ☀️. Go for comfort!"
	default:
		return "It's hot 🔥. Wear something light and airy!"
	}
}
