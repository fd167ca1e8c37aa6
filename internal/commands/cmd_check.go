package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/hwbot/internal/bot"
	"github.com/hay-kot/hwbot/internal/core/homework"
	"github.com/hay-kot/hwbot/pkg/iojson"
)

type CheckCmd struct {
	flags *Flags
	app   *bot.App

	since  time.Duration
	format string
}

func NewCheckCmd(flags *Flags, app *bot.App) *CheckCmd {
	return &CheckCmd{flags: flags, app: app}
}

func (cmd *CheckCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "check",
		Usage:       "Fetch current homework statuses once",
		UsageText:   "hwbot check [options]",
		Description: "Queries the status API once and prints the homeworks it returns. Nothing is sent.",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:        "since",
				Usage:       "query statuses changed within this window",
				Value:       30 * 24 * time.Hour,
				Destination: &cmd.since,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *CheckCmd) run(ctx context.Context, c *cli.Command) error {
	snap, err := cmd.app.Check(ctx, cmd.since)
	if err != nil {
		return err
	}

	if cmd.format == "json" {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, snap)
	}

	t := table.NewWriter()
	t.SetOutputMirror(c.Root().Writer)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Homework", "Status", "Verdict", "Lesson"})
	for _, item := range snap.Homeworks {
		verdict, err := homework.DisplayText(item.Status)
		if err != nil {
			verdict = "-"
		}
		t.AppendRow(table.Row{item.Name, item.Status, verdict, item.Lesson})
	}
	t.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d shown, %d filtered", len(snap.Homeworks), snap.Skipped)})
	t.Render()

	for _, e := range snap.Errors {
		_, _ = fmt.Fprintln(c.Root().ErrWriter, "malformed:", e)
	}

	return nil
}
