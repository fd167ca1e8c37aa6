package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/hwbot/internal/bot"
)

type SendCmd struct {
	flags *Flags
	app   *bot.App

	dryRun bool
}

func NewSendCmd(flags *Flags, app *bot.App) *SendCmd {
	return &SendCmd{flags: flags, app: app}
}

func (cmd *SendCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "send",
		Usage:       "Send a message to the configured chat",
		UsageText:   "hwbot send [options] <text>",
		Description: "Sends a single message. Useful to verify the bot token and chat id.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "print the message instead of sending it",
				Destination: &cmd.dryRun,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *SendCmd) run(ctx context.Context, c *cli.Command) error {
	text := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if text == "" {
		return fmt.Errorf("message text is required")
	}

	sender, err := cmd.app.Sender(cmd.dryRun, c.Root().Writer)
	if err != nil {
		return err
	}

	return sender.Send(ctx, text)
}
