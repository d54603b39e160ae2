package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/bluesky-social/merkletree/digest"
	"github.com/bluesky-social/merkletree/mtree"

	"github.com/carlmjohnson/versioninfo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	app := cli.App{
		Name:    "mtree",
		Usage:   "build, print, and verify fixed fan-out Merkle trees over integer files",
		Version: versioninfo.Short(),
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				EnvVars: []string{"MTREE_LOG_LEVEL", "GO_LOG_LEVEL", "LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "log output format (text or json)",
				Value:   "text",
				EnvVars: []string{"MTREE_LOG_FORMAT"},
			},
			&cli.IntFlag{
				Name:    "fanout",
				Usage:   "maximum number of children per interior node",
				Value:   mtree.DefaultFanout,
				EnvVars: []string{"MTREE_FANOUT"},
			},
			&cli.StringFlag{
				Name:    "hash",
				Usage:   "digest function (" + strings.Join(digest.Names(), ", ") + ")",
				Value:   digest.Default().Name(),
				EnvVars: []string{"MTREE_HASH"},
			},
			&cli.IntFlag{
				Name:    "leaf-cache",
				Usage:   "memoize up to this many leaf digests between rebuilds (0 disables)",
				EnvVars: []string{"MTREE_LEAF_CACHE"},
			},
			&cli.BoolFlag{
				Name:    "metrics",
				Usage:   "dump prometheus metrics to stderr on exit",
				EnvVars: []string{"MTREE_METRICS"},
			},
		},
		Before: func(cctx *cli.Context) error {
			configLogger(cctx, os.Stderr)
			return nil
		},
		After: func(cctx *cli.Context) error {
			if !cctx.Bool("metrics") {
				return nil
			}
			return dumpMetrics(os.Stderr)
		},
	}
	app.Commands = []*cli.Command{
		cmdRoot,
		cmdPrint,
		cmdVerify,
		cmdInsert,
		cmdOverwrite,
		cmdHashers,
		cmdDemo,
	}
	return app.Run(args)
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if strings.ToLower(cctx.String("log-format")) == "json" {
		h = slog.NewJSONHandler(writer, opts)
	} else {
		h = slog.NewTextHandler(writer, opts)
	}
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

func dumpMetrics(w io.Writer) error {
	mfs, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range mfs {
		if !strings.HasPrefix(mf.GetName(), "mtree_") {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
