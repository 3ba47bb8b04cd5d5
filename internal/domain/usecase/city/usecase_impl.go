package city

import (
	"fmt"
	"strings"
	"sync"

	"go-city-weather/configs"
	"go-city-weather/internal/domain/entity"
	"go-city-weather/internal/domain/model"
	"go-city-weather/pkg/log"
	"go-city-weather/pkg/msg"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Settings struct {
	NameMode          string
	DistrictsMode     string
	DistrictSeparator string
}

// SettingsFromEnv maps the environment config to use case settings
func SettingsFromEnv(env *configs.EnvConfig) Settings {
	return Settings{
		NameMode:          env.NameMode,
		DistrictsMode:     env.DistrictsMode,
		DistrictSeparator: env.DistrictSeparator,
	}
}

type cityUseCase struct {
	mu        sync.RWMutex
	factories map[string]Factory
	options   []entity.Option
}

func NewCityUseCase(settings Settings) UseCase {
	uc := &cityUseCase{
		factories: make(map[string]Factory),
		options:   buildOptions(settings),
	}

	uc.Register(KindSmall, func(request model.CreateCityDTO, opts ...entity.Option) entity.City {
		return entity.NewSmallCity(request.Name, request.WeatherState, opts...)
	})
	uc.Register(KindBig, func(request model.CreateCityDTO, opts ...entity.Option) entity.City {
		return entity.NewBigCity(request.Districts, request.Name, request.WeatherState, opts...)
	})

	return uc
}

// buildOptions turns settings into entity options. Shared name mode gets one
// register for the whole use case. Unknown modes fall back to the defaults.
func buildOptions(settings Settings) []entity.Option {
	var opts []entity.Option

	switch settings.NameMode {
	case configs.NameModeShared:
		opts = append(opts, entity.WithSharedName(entity.NewSharedName()))
	case configs.NameModeInstance, "":
	default:
		log.Warn(msg.GetMessage("config.mode.unknown", "CITY_NAME_MODE", settings.NameMode, configs.NameModeInstance),
			zap.String("name_mode", settings.NameMode))
	}

	switch settings.DistrictsMode {
	case configs.DistrictsModeDiscarded:
		opts = append(opts, entity.DiscardDistricts())
	case configs.DistrictsModeStored, "":
	default:
		log.Warn(msg.GetMessage("config.mode.unknown", "CITY_DISTRICTS_MODE", settings.DistrictsMode, configs.DistrictsModeStored),
			zap.String("districts_mode", settings.DistrictsMode))
	}

	if settings.DistrictSeparator != "" {
		opts = append(opts, entity.WithDistrictSeparator(settings.DistrictSeparator))
	}

	return opts
}

// Register adds or replaces the factory for a city kind
func (uc *cityUseCase) Register(kind string, factory Factory) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.factories[normalizeKind(kind)] = factory
	log.Debug(msg.GetMessage("city.kind.registered", kind))
}

// CreateCity builds the city variant named by the request kind
func (uc *cityUseCase) CreateCity(request model.CreateCityDTO) (entity.City, error) {
	uc.mu.RLock()
	factory, ok := uc.factories[normalizeKind(request.Kind)]
	uc.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%s: %w", msg.GetMessage("city.kind.unknown", request.Kind), ErrUnknownCityKind)
	}

	if !entity.WeatherState(request.WeatherState).Valid() {
		log.Warn(msg.GetMessage("city.weather.unknown", request.WeatherState, request.Name),
			zap.Int("weather_state", request.WeatherState))
	}

	city := factory(request, uc.options...)

	log.Info(msg.GetMessage("city.created", request.Name, normalizeKind(request.Kind), request.WeatherState),
		zap.String("kind", normalizeKind(request.Kind)),
		zap.String("resource_name", city.ResourceName()))
	return city, nil
}

// RenderCityPage builds the city and returns its description and resource name
func (uc *cityUseCase) RenderCityPage(request model.CreateCityDTO) (*model.CityPageDTO, error) {
	city, err := uc.CreateCity(request)
	if err != nil {
		return nil, fmt.Errorf("failed to create city: %w", err)
	}

	page := &model.CityPageDTO{
		ID:           uuid.NewString(),
		Kind:         normalizeKind(request.Kind),
		Name:         city.Name(),
		WeatherState: city.WeatherState(),
		Weather:      entity.WeatherState(city.WeatherState()).String(),
		Description:  city.Describe(),
		ResourceName: city.ResourceName(),
	}

	log.Info(msg.GetMessage("city.rendered", page.ResourceName, page.Name), zap.String("page_id", page.ID))
	return page, nil
}

func normalizeKind(kind string) string {
	return strings.ToLower(strings.TrimSpace(kind))
}
