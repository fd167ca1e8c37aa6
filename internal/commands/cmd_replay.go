package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/hwbot/internal/bot"
	"github.com/hay-kot/hwbot/pkg/iojson"
)

type ReplayCmd struct {
	flags *Flags
	app   *bot.App

	input iojson.FileReader[any]
}

func NewReplayCmd(flags *Flags, app *bot.App) *ReplayCmd {
	return &ReplayCmd{flags: flags, app: app}
}

func (cmd *ReplayCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "replay",
		Usage:     "Replay recorded API responses offline",
		UsageText: "hwbot replay [--file path]",
		Description: `Reads a recorded status API response, or a JSON array of responses, and
prints the notifications the bot would send for them in order.

No requests are made and no credentials are needed.`,
		Flags:  []cli.Flag{cmd.input.Flag()},
		Action: cmd.run,
	})
	return app
}

func (cmd *ReplayCmd) run(_ context.Context, c *cli.Command) error {
	data, err := cmd.input.Read()
	if err != nil {
		return err
	}

	payloads, ok := data.([]any)
	if !ok {
		payloads = []any{data}
	}

	w := c.Root().Writer
	err = cmd.app.Replay(payloads, func(msg string) {
		_, _ = fmt.Fprintln(w, msg)
	})
	if err != nil {
		log.Warn().Err(err).Int("payloads", len(payloads)).Msg("replay encountered malformed data")
	}

	return nil
}
