package model

type CreateCityDTO struct {
	Kind         string `json:"kind"`
	Name         string `json:"name"`
	WeatherState int    `json:"weatherState"`
	Districts    string `json:"districts,omitempty"`
}

type CityPageDTO struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"`
	Name         string `json:"name"`
	WeatherState int    `json:"weatherState"`
	Weather      string `json:"weather"`
	Description  string `json:"description"`
	ResourceName string `json:"resourceName"`
}
