// submodule cmd contains command definitions
package main

import (
	"github.com/desertthunder/ytpl/internal/formatter"
	"github.com/urfave/cli/v3"
)

// rootCommand builds the single ytpl command. Export selectors are generated from [formatter.All] so the flag
// names always match the projection names.
func rootCommand(r *Runner) *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:  "url",
			Usage: "YouTube playlist URL or ID (prompted for when omitted)",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
			Value:   "config.toml",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Directory to write export files to (overrides export.output_dir)",
		},
	}

	for _, p := range formatter.All() {
		flags = append(flags, &cli.BoolFlag{
			Name:  p.String(),
			Usage: p.Description(),
		})
	}

	flags = append(flags,
		&cli.BoolFlag{
			Name:  "all",
			Usage: "Export all formats",
		},
		&cli.BoolFlag{
			Name:  "tui",
			Usage: "Use the full screen menu when no export is selected",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable debug logging",
		},
	)

	return &cli.Command{
		Name:      "ytpl",
		Usage:     "Export YouTube playlist titles and URLs to CSV and Markdown",
		Version:   "0.1.0",
		ArgsUsage: "[playlist URL]",
		Description: `Fetches a playlist once and writes the selected exports to the output directory.
Without any export flag an interactive menu is shown instead.`,
		Flags:  flags,
		Action: r.Export,
	}
}
