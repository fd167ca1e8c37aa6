package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/hwbot/internal/bot"
	"github.com/hay-kot/hwbot/internal/commands"
	"github.com/hay-kot/hwbot/internal/core/config"
	"github.com/hay-kot/hwbot/internal/core/logging"
	"github.com/hay-kot/hwbot/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		logCloser func()
		botApp    = &bot.App{}
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "hwbot",
		Usage:     "Notify a Telegram chat about homework review status changes",
		UsageText: "hwbot [global options] command [command options]",
		Description: `hwbot polls the Practicum homework status API and sends a Telegram message
whenever the review status of a homework changes.

Run 'hwbot' with no arguments to start polling.
Run 'hwbot doctor' to verify configuration and credentials.`,
		Version: build(),
		Flags:   commands.GlobalFlags(flags),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile, flags.LogFormat)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger.Hook(logging.ContextHook{})
			logCloser = closer

			if err := config.LoadEnvFile(flags.EnvFile); err != nil {
				return ctx, fmt.Errorf("load env file: %w", err)
			}

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			cfg.Credentials = flags.Credentials.FillFromEnv()
			flags.Config = cfg

			a, err := bot.New(cfg)
			if err != nil {
				return ctx, err
			}

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*botApp = *a

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app = commands.Register(app, flags, botApp)

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
