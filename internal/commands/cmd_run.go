package commands

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/hwbot/internal/bot"
)

type RunCmd struct {
	flags *Flags
	app   *bot.App

	dryRun bool
}

// NewRunCmd creates a new run command
func NewRunCmd(flags *Flags, app *bot.App) *RunCmd {
	return &RunCmd{flags: flags, app: app}
}

// Flags returns the run flags so they can also be set on the root command,
// where run is the default action.
func (cmd *RunCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "print notifications to stdout instead of sending them",
			Sources:     cli.EnvVars("HWBOT_DRY_RUN"),
			Destination: &cmd.dryRun,
		},
	}
}

// Register adds the run command to the application
func (cmd *RunCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "run",
		Usage:     "Poll homework statuses and notify on changes",
		UsageText: "hwbot run [options]",
		Description: `Polls the status API at a fixed interval and sends a message to the
configured chat whenever a homework status changes.

Runs until interrupted. Use --dry-run to print messages instead of sending them.`,
		Flags:  cmd.Flags(),
		Action: cmd.Run,
	})

	return app
}

// Run starts the poll loop and blocks until ctx is cancelled.
func (cmd *RunCmd) Run(ctx context.Context, c *cli.Command) error {
	if err := cmd.flags.Config.Credentials.Require(!cmd.dryRun); err != nil {
		return err
	}

	sender, err := cmd.app.Sender(cmd.dryRun, c.Root().Writer)
	if err != nil {
		return err
	}

	p, err := cmd.app.Poller(sender)
	if err != nil {
		return err
	}

	log.Info().
		Bool("dry_run", cmd.dryRun).
		Str("endpoint", cmd.flags.Config.Endpoint).
		Msg("starting homework bot")

	return p.Run(ctx)
}
