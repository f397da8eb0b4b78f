package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// Execute runs the formshift CLI with the given version string.
func Execute(version string) {
	cmd := &cli.Command{
		Name:                   "formshift",
		Usage:                  "Rewrite Laravel Collective Form/Html facade calls to the fluent html() API",
		Version:                version,
		UseShortOptionHandling: true,
		Flags:                  convertFlags(),
		// Allow `formshift [dir]` as shorthand for `formshift convert [dir]`
		Action: convertAction,
		Commands: []*cli.Command{
			{
				Name:      "convert",
				Usage:     "Convert facade calls in files under a directory, in place",
				ArgsUsage: "[dir]",
				Flags:     convertFlags(),
				Action:    convertAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func convertFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "dry-run",
			Aliases: []string{"n"},
			Usage:   "Report files that would change without writing them",
		},
		&cli.IntFlag{
			Name:    "jobs",
			Aliases: []string{"j"},
			Usage:   "Parallel workers",
			Value:   1,
		},
		&cli.StringSliceFlag{
			Name:    "ext",
			Aliases: []string{"e"},
			Usage:   "Additional file extensions to process",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Suppress the progress line",
		},
	}
}
