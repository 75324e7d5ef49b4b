package main

import (
	"fmt"
	"os"

	"github.com/akademik/akademik/internal/client"
	"github.com/akademik/akademik/internal/config"
	"github.com/akademik/akademik/internal/pkg/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	config.LoadDotEnv()

	app := &cli.App{
		Name:  "akademik",
		Usage: "Not ve devam takip sistemi istemcisi",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api",
				Usage:   "gateway base URL",
				Value:   client.DefaultBaseURL,
				EnvVars: []string{"AKADEMIK_API_URL"},
			},
			&cli.StringFlag{
				Name:    "session",
				Usage:   "session file path",
				EnvVars: []string{"AKADEMIK_SESSION"},
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable coloured output",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Configure(logger.Config{
				Level:  logger.LogLevel(c.String("log-level")),
				Pretty: true,
				Output: os.Stderr,
			})
			return nil
		},
		Commands: commands(),
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
