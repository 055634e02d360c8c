package outfit

import (
	"fmt"
	"time"
)

// Request captures the form submitted by the recommendation page.
type Request struct {
	Mood   string `form:"mood"`
	City   string `form:"city"`
	Lat    string `form:"lat"`
	Lon    string `form:"lon"`
	Style  string `form:"style"`
	Gender string `form:"gender"`
}

// Result is rendered back to the user after a successful recommendation.
type Result struct {
	Mood            string
	Style           string
	Gender          string
	Location        string
	Temperature     float64
	Description     string
	Category        WeatherCategory
	WeatherTip      string
	Outfit          string
	PredictedOutfit string
	Refined         bool
	AmazonLink      string
	FlipkartLink    string
}

// Location identifies where the weather is looked up. Coordinates win over City when set.
type Location struct {
	City        string
	Coordinates *Coordinates
}

// String renders the lookup target for logs.
func (l Location) String() string {
	if l.Coordinates != nil {
		return fmt.Sprintf("lat=%g lon=%g", l.Coordinates.Lat, l.Coordinates.Lon)
	}
	return "city=" + l.City
}

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// WeatherReading is the normalized provider response.
type WeatherReading struct {
	Temperature float64
	Description string
	Location    string
}

// HistoryRecord is one persisted recommendation.
type HistoryRecord struct {
	ID          string
	Mood        string
	Gender      string
	Style       string
	Location    string
	Temperature float64
	Category    WeatherCategory
	Outfit      string
	CreatedAt   time.Time
}

// Config wires runtime knobs for the outfit domain.
type Config struct {
	HistoryLimit int
}
