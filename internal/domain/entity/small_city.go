package entity

import "strconv"

// SmallCity is a city without districts.
type SmallCity struct {
	baseCity
}

func NewSmallCity(name string, weatherState int, opts ...Option) *SmallCity {
	return &SmallCity{baseCity: newBaseCity(name, weatherState, newOptions(opts))}
}

// Describe keeps the fields glued together without spaces, e.g. "<p>It is1inSmallville.</p>"
func (c *SmallCity) Describe() string {
	return "<p>It is" + strconv.Itoa(c.WeatherState()) + "in" + c.Name() + ".</p>"
}

func (c *SmallCity) ResourceName() string {
	return ": weather_small_city" + c.Name() + ".html"
}
