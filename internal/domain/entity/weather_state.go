package entity

import (
	"fmt"
	"strings"

	"go-city-weather/pkg/util/numberutils"
)

// WeatherState is a discrete weather condition with a fixed integer code.
type WeatherState int

const (
	Sunny WeatherState = iota
	Cloudy
	Rainy
)

var weatherStateNames = map[WeatherState]string{
	Sunny:  "Sunny",
	Cloudy: "Cloudy",
	Rainy:  "Rainy",
}

// WeatherStates returns every known state ordered by code
func WeatherStates() []WeatherState {
	return []WeatherState{Sunny, Cloudy, Rainy}
}

// Code returns the integer code of the state
func (s WeatherState) Code() int {
	return int(s)
}

// Valid reports whether the state is one of the known variants
func (s WeatherState) Valid() bool {
	_, ok := weatherStateNames[s]
	return ok
}

func (s WeatherState) String() string {
	if name, ok := weatherStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("WeatherState(%d)", int(s))
}

// ParseWeatherState accepts a variant name (any case) or its numeric code
func ParseWeatherState(text string) (WeatherState, error) {
	value := strings.TrimSpace(text)

	if code, err := numberutils.ToIntWithError(value); err == nil {
		state := WeatherState(code)
		if !state.Valid() {
			return 0, fmt.Errorf("unknown weather code %d", code)
		}
		return state, nil
	}

	for _, state := range WeatherStates() {
		if strings.EqualFold(state.String(), value) {
			return state, nil
		}
	}
	return 0, fmt.Errorf("unknown weather state '%s'", value)
}
