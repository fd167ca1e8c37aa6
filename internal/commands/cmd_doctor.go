package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/hwbot/internal/bot"
	"github.com/hay-kot/hwbot/internal/core/doctor"
	"github.com/hay-kot/hwbot/internal/core/styles"
	"github.com/hay-kot/hwbot/pkg/iojson"
)

type DoctorCmd struct {
	flags  *Flags
	app    *bot.App
	format string
	online bool
	dryRun bool
}

func NewDoctorCmd(flags *Flags, app *bot.App) *DoctorCmd {
	return &DoctorCmd{flags: flags, app: app}
}

func (cmd *DoctorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "doctor",
		Usage:       "Run health checks on your bot setup",
		UsageText:   "hwbot doctor [options]",
		Description: "Runs diagnostic checks on configuration and credentials, and optionally the status API.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
			&cli.BoolFlag{
				Name:        "online",
				Usage:       "also query the status API",
				Destination: &cmd.online,
			},
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "treat missing Telegram credentials as warnings",
				Destination: &cmd.dryRun,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DoctorCmd) run(ctx context.Context, c *cli.Command) error {
	results := cmd.app.Doctor.RunChecks(ctx, cmd.flags.ConfigPath, cmd.online, cmd.dryRun)

	if cmd.format == "json" {
		return cmd.outputJSON(c, results)
	}

	return cmd.outputText(c, results)
}

func (cmd *DoctorCmd) outputJSON(c *cli.Command, results []doctor.Result) error {
	passed, warned, failed := doctor.Summary(results)

	out := struct {
		Healthy bool            `json:"healthy"`
		Summary summaryJSON     `json:"summary"`
		Checks  []doctor.Result `json:"checks"`
	}{
		Healthy: failed == 0,
		Summary: summaryJSON{Passed: passed, Warned: warned, Failed: failed},
		Checks:  results,
	}

	if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, out); err != nil {
		return err
	}
	if failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

type summaryJSON struct {
	Passed int `json:"passed"`
	Warned int `json:"warned"`
	Failed int `json:"failed"`
}

func (cmd *DoctorCmd) outputText(c *cli.Command, results []doctor.Result) error {
	w := c.Root().ErrWriter
	divider := styles.TextMutedStyle.Render(strings.Repeat("─", 40))

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, styles.TextPrimaryBoldStyle.Render("hwbot doctor"))
	_, _ = fmt.Fprintln(w, divider)
	_, _ = fmt.Fprintln(w)

	for _, result := range results {
		_, _ = fmt.Fprintln(w, styles.TextForegroundBoldStyle.Render(result.Name))

		for _, item := range result.Items {
			var detail string
			if item.Detail != "" {
				detail = " " + styles.TextMutedStyle.Render(item.Detail)
			}

			var icon string
			switch item.Status {
			case doctor.StatusPass:
				icon = styles.TextSuccessStyle.Render(styles.IconPass)
			case doctor.StatusWarn:
				icon = styles.TextWarningStyle.Render(styles.IconWarn)
			case doctor.StatusFail:
				icon = styles.TextErrorStyle.Render(styles.IconFail)
			}

			_, _ = fmt.Fprintf(w, "  %s %s%s\n", icon, item.Label, detail)
		}

		_, _ = fmt.Fprintln(w)
	}

	passed, warned, failed := doctor.Summary(results)
	summary := fmt.Sprintf("%s  %s  %s",
		styles.TextSuccessStyle.Render(fmt.Sprintf("%d passed", passed)),
		styles.TextWarningStyle.Render(fmt.Sprintf("%d warnings", warned)),
		styles.TextErrorStyle.Render(fmt.Sprintf("%d failed", failed)),
	)
	_, _ = fmt.Fprintln(w, summary)

	if !cmd.online {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, styles.TextMutedStyle.Render("Run 'hwbot doctor --online' to also query the status API"))
	}

	if failed > 0 {
		return cli.Exit("", 1)
	}

	return nil
}
