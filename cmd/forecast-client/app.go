package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"go-forecast/configs"
	"go-forecast/pkg/log"
	"go-forecast/pkg/msg"
	"go-forecast/pkg/resource"
)

type appContext struct {
	out io.Writer
}

func newAppContext(out io.Writer) *appContext {
	return &appContext{out: out}
}

func newApp(ac *appContext) *cli.App {
	return &cli.App{
		Name:   "forecast-client",
		Usage:  "Calls the weather forecast API through its typed client",
		Writer: ac.out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "a properties file merged over the built-in application.yml, defaults to $PROPERTIES_FILE_PATH",
			},
			&cli.StringFlag{
				Name:    "messages",
				Aliases: []string{"m"},
				Usage:   "a message catalogue merged over the built-in messages.yml, defaults to $MESSAGES_FILE_PATH",
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "the forecast API base URL, overrides app.forecast-api.base-url",
			},
			&cli.BoolFlag{
				Name:  "archive",
				Usage: "archive fetched forecasts, overrides app.archive.enabled",
			},
		},
		Before: ac.loadConfig,
		Action: ac.handleRun,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "runs the typed client sample (default)",
				Action: ac.handleRun,
			},
			{
				Name:  "history",
				Usage: "prints the archived forecasts of a city",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "city",
						Usage:    "the city to look up",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "how many forecasts to print, defaults to app.archive.history-limit",
					},
				},
				Action: ac.handleHistory,
			},
		},
	}
}

// loadConfig loads the built-in properties and messages, then the override files.
func (ac *appContext) loadConfig(cCtx *cli.Context) error {
	env := configs.LoadEnv()
	log.Configure(env.ApplicationName, env.LogLevel)

	if err := resource.Load(configs.DefaultProperties); err != nil {
		return err
	}
	if path := firstNonEmpty(cCtx.String("config"), env.PropertiesFilePath); path != "" {
		if err := resource.LoadFile(path); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := msg.Load(configs.DefaultMessages); err != nil {
		return err
	}
	if path := firstNonEmpty(cCtx.String("messages"), env.MessagesFilePath); path != "" {
		if err := msg.LoadFile(path); err != nil {
			return fmt.Errorf("failed to load messages: %w", err)
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
