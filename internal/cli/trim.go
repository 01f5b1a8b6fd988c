package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gfatrim-dev/gfatrim/internal/fileutil"
	"github.com/gfatrim-dev/gfatrim/internal/gfa"
	"github.com/gfatrim-dev/gfatrim/internal/parallel"
	"github.com/gfatrim-dev/gfatrim/internal/trim"
)

func RunTrim(cmd *cobra.Command, args []string) error {
	configPath, err := stringFlag(cmd, "config")
	if err != nil {
		return err
	}
	if configPath != "" {
		cfg, err := LoadConfig(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Apply(cmd); err != nil {
			return err
		}
	}

	quiet, err := boolFlag(cmd, "quiet")
	if err != nil {
		return err
	}
	logrus.SetOutput(cmd.ErrOrStderr())
	if quiet {
		logrus.SetLevel(logrus.WarnLevel)
	}

	opts, err := trimOptions(cmd)
	if err != nil {
		return err
	}
	outputPath, err := stringFlag(cmd, "output")
	if err != nil {
		return err
	}

	graphPath := args[0]
	lines, err := fileutil.ReadLines(graphPath)
	if err != nil {
		return fmt.Errorf("failed to read graph %q: %w", graphPath, err)
	}

	logrus.Infof("running trim on %d threads", parallel.Workers(opts.Workers))

	out, err := trim.Run(gfa.Classify(lines), opts)
	if err != nil {
		return err
	}

	if outputPath == "" {
		return fileutil.WriteLines(cmd.OutOrStdout(), out.Lines())
	}
	if err := fileutil.WriteLinesFile(outputPath, out.Lines()); err != nil {
		return fmt.Errorf("failed to write trimmed graph %q: %w", outputPath, err)
	}
	return nil
}

func trimOptions(cmd *cobra.Command) (trim.Options, error) {
	var opts trim.Options

	namesPath, err := stringFlag(cmd, "paths-to-keep")
	if err != nil {
		return opts, err
	}
	if namesPath != "" {
		lines, err := fileutil.ReadLines(namesPath)
		if err != nil {
			return opts, fmt.Errorf("failed to read selection list %q: %w", namesPath, err)
		}
		opts.Names = fileutil.NonBlankLines(lines)
		if len(opts.Names) == 0 {
			return opts, fmt.Errorf("selection list %q contains no names", namesPath)
		}
	}

	opts.Workers, err = intFlag(cmd, "threads")
	if err != nil {
		return opts, err
	}
	opts.KeepAllSegments, err = boolFlag(cmd, "ignore-segments")
	if err != nil {
		return opts, err
	}
	opts.KeepAllLinks, err = boolFlag(cmd, "ignore-links")
	if err != nil {
		return opts, err
	}
	opts.KeepAllJumps, err = boolFlag(cmd, "ignore-jumps")
	if err != nil {
		return opts, err
	}
	opts.AllowMissing, err = boolFlag(cmd, "allow-missing")
	if err != nil {
		return opts, err
	}
	return opts, nil
}
