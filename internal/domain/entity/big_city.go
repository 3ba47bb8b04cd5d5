package entity

import (
	"strconv"
	"strings"
)

// BigCity is a city made of named districts.
type BigCity struct {
	baseCity
	districts []string
}

// NewBigCity splits districts on the configured separator, trimming entries
// and dropping empty ones. With DiscardDistricts the argument is ignored.
func NewBigCity(districts string, name string, weatherState int, opts ...Option) *BigCity {
	o := newOptions(opts)

	city := &BigCity{
		baseCity:  newBaseCity(name, weatherState, o),
		districts: []string{},
	}
	if !o.discardDistricts {
		city.districts = splitDistricts(districts, o.districtSeparator)
	}
	return city
}

// Districts returns a copy of the district list
func (c *BigCity) Districts() []string {
	districts := make([]string, len(c.districts))
	copy(districts, c.districts)
	return districts
}

// Describe repeats the district list in four slots
func (c *BigCity) Describe() string {
	list := formatDistricts(c.districts)

	var sb strings.Builder
	sb.WriteString("<p>It is")
	sb.WriteString(strconv.Itoa(c.WeatherState()))
	sb.WriteString("in")
	sb.WriteString(c.Name())
	sb.WriteString(".</p> <p>This also applies to")
	sb.WriteString(list)
	sb.WriteString(",")
	sb.WriteString(list)
	sb.WriteString(",")
	sb.WriteString(list)
	sb.WriteString("[...] and")
	sb.WriteString(list)
	sb.WriteString(".</p>")
	return sb.String()
}

func (c *BigCity) ResourceName() string {
	return "weather_big_city_" + c.Name() + ".html"
}

func splitDistricts(districts string, separator string) []string {
	result := []string{}
	for _, district := range strings.Split(districts, separator) {
		district = strings.TrimSpace(district)
		if district != "" {
			result = append(result, district)
		}
	}
	return result
}

// formatDistricts renders the list as "[a, b]", or "[]" when empty
func formatDistricts(districts []string) string {
	return "[" + strings.Join(districts, ", ") + "]"
}
