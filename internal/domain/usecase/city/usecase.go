package city

import (
	"errors"

	"go-city-weather/internal/domain/entity"
	"go-city-weather/internal/domain/model"
)

const (
	KindSmall = "small"
	KindBig   = "big"
)

var ErrUnknownCityKind = errors.New("unknown city kind")

// Factory builds one city variant from a request
type Factory func(request model.CreateCityDTO, opts ...entity.Option) entity.City

type UseCase interface {
	// CreateCity builds the city variant named by the request kind
	CreateCity(request model.CreateCityDTO) (entity.City, error)

	// RenderCityPage builds the city and returns its description and resource name
	RenderCityPage(request model.CreateCityDTO) (*model.CityPageDTO, error)

	// Register adds or replaces the factory for a city kind
	Register(kind string, factory Factory)
}
