package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"go-city-weather/configs"
	"go-city-weather/internal/domain/entity"
	"go-city-weather/internal/domain/model"
	"go-city-weather/internal/domain/usecase/city"
	"go-city-weather/pkg/log"
	"go-city-weather/pkg/msg"

	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(configs.Env, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err.Error())
	}
	log.Sync()
}

// run writes exactly one page document to stdout; logs go to stderr.
func run(env *configs.EnvConfig, args []string, stdout io.Writer, stderr zapcore.WriteSyncer) error {
	log.Init(env.ApplicationName, env.LogLevel, stderr)
	log.Info(msg.GetMessage("app.start", env.ApplicationName))

	if env.MessagesFilePath != "" {
		if err := msg.Init(env.MessagesFilePath); err != nil {
			return fmt.Errorf("%s: %w", msg.GetMessage("cli.messages.failed", env.MessagesFilePath), err)
		}
	}

	flags := pflag.NewFlagSet("city-weather", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	kind := flags.String("kind", city.KindSmall, "city kind (small or big)")
	name := flags.String("name", "", "city name")
	weather := flags.String("weather", entity.Sunny.String(), "weather state name or code")
	districts := flags.String("districts", "", "separated district names (big cities only)")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	state, err := entity.ParseWeatherState(*weather)
	if err != nil {
		return fmt.Errorf("%s: %w", msg.GetMessage("cli.invalid.weather", *weather), err)
	}

	useCase := city.NewCityUseCase(city.SettingsFromEnv(env))

	page, err := useCase.RenderCityPage(model.CreateCityDTO{
		Kind:         *kind,
		Name:         *name,
		WeatherState: state.Code(),
		Districts:    *districts,
	})
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(page); err != nil {
		return fmt.Errorf("%s: %w", msg.GetMessage("cli.encode.failed", err.Error()), err)
	}

	log.Info(msg.GetMessage("app.done", env.ApplicationName))
	return nil
}
