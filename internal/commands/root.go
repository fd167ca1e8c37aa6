package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/hwbot/internal/bot"
	"github.com/hay-kot/hwbot/internal/core/config"
	"github.com/hay-kot/hwbot/pkg/logutils"
)

// GlobalFlags returns the root command flags bound to flags.
func GlobalFlags(flags *Flags) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error, fatal, panic)",
			Sources:     cli.EnvVars("HWBOT_LOG_LEVEL"),
			Value:       "info",
			Destination: &flags.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "path to log file (logs to stderr when empty)",
			Sources:     cli.EnvVars("HWBOT_LOG_FILE"),
			Destination: &flags.LogFile,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (auto, json, console)",
			Sources:     cli.EnvVars("HWBOT_LOG_FORMAT"),
			Value:       logutils.FormatAuto,
			Destination: &flags.LogFormat,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to config file",
			Sources:     cli.EnvVars("HWBOT_CONFIG"),
			Value:       DefaultConfigPath(),
			Destination: &flags.ConfigPath,
		},
		&cli.StringFlag{
			Name:        "env-file",
			Usage:       "dotenv file with credentials (existing variables win)",
			Sources:     cli.EnvVars("HWBOT_ENV_FILE"),
			Value:       ".env",
			Destination: &flags.EnvFile,
		},
		&cli.StringFlag{
			Name:        "practicum-token",
			Usage:       "Practicum API OAuth token",
			Sources:     cli.EnvVars(config.EnvPracticumToken...),
			Destination: &flags.Credentials.PracticumToken,
		},
		&cli.StringFlag{
			Name:        "telegram-token",
			Usage:       "Telegram bot token",
			Sources:     cli.EnvVars(config.EnvTelegramToken...),
			Destination: &flags.Credentials.TelegramToken,
		},
		&cli.StringFlag{
			Name:        "chat-id",
			Usage:       "Telegram chat id to notify",
			Sources:     cli.EnvVars(config.EnvTelegramChatID...),
			Destination: &flags.Credentials.ChatID,
		},
	}
}

// Register adds every subcommand to root and makes polling the default
// action.
func Register(root *cli.Command, flags *Flags, app *bot.App) *cli.Command {
	runCmd := NewRunCmd(flags, app)

	root = runCmd.Register(root)
	root = NewCheckCmd(flags, app).Register(root)
	root = NewSendCmd(flags, app).Register(root)
	root = NewDoctorCmd(flags, app).Register(root)
	root = NewReplayCmd(flags, app).Register(root)

	// Register run flags on root command
	root.Flags = append(root.Flags, runCmd.Flags()...)

	root.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run '%s --help' for usage", c.Args().First(), c.Root().Name)
		}
		return runCmd.Run(ctx, c)
	}

	return root
}
