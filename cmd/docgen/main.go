// Command docgen generates CLI reference documentation from the hwbot command
// definitions. Output is written to docs/cli-reference.md.
package main

import (
	"fmt"
	"os"

	docs "github.com/urfave/cli-docs/v3"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/hwbot/internal/bot"
	"github.com/hay-kot/hwbot/internal/commands"
)

func main() {
	flags := &commands.Flags{}

	root := &cli.Command{
		Name:      "hwbot",
		Usage:     "Notify a Telegram chat about homework review status changes",
		UsageText: "hwbot [global options] command [command options]",
		Flags:     commands.GlobalFlags(flags),
	}
	root = commands.Register(root, flags, &bot.App{})

	md, err := docs.ToMarkdown(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating docs: %v\n", err)
		os.Exit(1)
	}

	outPath := "docs/cli-reference.md"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s\n", outPath)
}
