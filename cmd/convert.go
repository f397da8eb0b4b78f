package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/formshift/formshift/config"
	"github.com/formshift/formshift/rewrite"
	"github.com/formshift/formshift/walk"
)

func convertAction(ctx context.Context, cmd *cli.Command) error {
	root := "."
	if cmd.NArg() > 0 {
		root = cmd.Args().First()
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("cannot access %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", root)
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}
	exts := append(cfg.Extensions, cmd.StringSlice("ext")...)

	files, err := walk.Collect(root, exts, cfg.SkipDirs)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", root, err)
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "no matching files found")
		return nil
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	dryRun := cmd.Bool("dry-run")
	// The \r progress line is only useful on a real terminal.
	progress := !cmd.Bool("quiet") && term.IsTerminal(int(os.Stderr.Fd()))

	changed := 0
	walk.Process(files, int(cmd.Int("jobs")), func(path string) walk.Result {
		return convertFile(path, cfg.Aliases, dryRun, logger)
	}, func(done int, r walk.Result) {
		if r.Err != nil {
			logger.Warn("skipping file", "path", r.Path, "err", r.Err)
		} else if r.Changed {
			changed++
			if dryRun {
				fmt.Println(r.Path)
			}
		}
		if progress {
			fmt.Fprintf(os.Stderr, "processed %d/%d\r", done, len(files))
		}
	})
	if progress {
		fmt.Fprintln(os.Stderr)
	}

	if dryRun {
		fmt.Fprintf(os.Stderr, "%d of %d files would change\n", changed, len(files))
	} else {
		fmt.Fprintf(os.Stderr, "converted %d of %d files\n", changed, len(files))
	}
	return nil
}

// convertFile runs the rewrite engine over one file and writes it back
// only when the output differs. Read and write failures are reported in
// the Result, never fatal to the run.
func convertFile(path string, aliases []string, dryRun bool, logger *slog.Logger) walk.Result {
	src, err := os.ReadFile(path)
	if err != nil {
		return walk.Result{Path: path, Err: err}
	}

	conv := &rewrite.Converter{
		Facades: aliases,
		Warn: func(msg string) {
			logger.Warn(msg, "path", path)
		},
	}
	dst := conv.Convert(string(src))
	if dst == string(src) {
		return walk.Result{Path: path}
	}
	if !dryRun {
		if err := os.WriteFile(path, []byte(dst), 0644); err != nil {
			return walk.Result{Path: path, Err: err}
		}
	}
	return walk.Result{Path: path, Changed: true}
}
