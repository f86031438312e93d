package main

import (
	"DocStat/internal"
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "DocStat",
		Usage:     "Rank documents in a tree by word and line counts",
		ArgsUsage: "<root>",
		Description: heredoc.Doc(`
			DocStat walks the tree under <root>, counts words and lines in every
			file whose name ends with the configured suffix (default .md), and
			prints a report to stdout ranked by word count. Each record shows the
			counts and their percentage of the largest file seen.

			A file that cannot be read or is not valid UTF-8 text aborts the run
			unless --skip-errors is set, in which case it is logged and skipped.
		`),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "ext",
				Usage:   "Count files whose name ends with this suffix",
				Value:   internal.DefaultExt,
				EnvVars: []string{"DOCSTAT_EXT"},
			},
			&cli.IntFlag{
				Name:  "depth",
				Usage: "Max directory depth (0 - unlimited)",
				Value: 0,
			},
			&cli.BoolFlag{
				Name:  "skip-errors",
				Usage: "Skip unreadable or non-text files instead of aborting",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Report format: text or json",
				Value: internal.OutputText,
			},
			&cli.StringFlag{
				Name:  "logfile",
				Usage: "Write logs into file instead of stderr",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn, error",
				Value: "info",
			},
		},
		Action: func(c *cli.Context) error {
			internal.InitLogger(c.String("logfile"), c.String("log-level"))
			logrus.Info("DocStat started")

			if c.NArg() != 1 {
				return cli.Exit("Exactly one root path is required", 1)
			}

			opts := internal.ScanOptions{
				Root:       c.Args().First(),
				Ext:        c.String("ext"),
				Depth:      c.Int("depth"),
				SkipErrors: c.Bool("skip-errors"),
				Output:     c.String("output"),
			}
			if err := opts.Validate(); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			opts.Prepare() // suffix + output defaults

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			rep := internal.NewReport()
			var stats internal.AppStats
			sink := internal.NewReportSink(rep, &stats)

			// spinner on stderr while scanning, only when attached to a terminal
			onDoc := sink
			var bar *progressbar.ProgressBar
			if isatty.IsTerminal(os.Stderr.Fd()) {
				bar = progressbar.NewOptions(-1,
					progressbar.OptionSetWriter(os.Stderr),
					progressbar.OptionSetDescription("Scanning"),
					progressbar.OptionSpinnerType(14),
					progressbar.OptionShowCount(),
					progressbar.OptionThrottle(65*time.Millisecond),
				)
				onDoc = func(res internal.DocResult) {
					_ = bar.Add(1)
					sink(res)
				}
			}

			scanner := internal.NewDocScanner()
			err := scanner.Scan(ctx, opts, onDoc)
			if bar != nil {
				_ = bar.Clear()
			}
			if err != nil {
				if errors.Is(err, internal.ErrRootNotFound) {
					return cli.Exit("Folder path does not exist.", 1)
				}
				if ctx.Err() != nil {
					logrus.Warn("Scan cancelled")
					return cli.Exit("", 1)
				}
				return cli.Exit(err.Error(), 1)
			}

			logrus.WithFields(logrus.Fields{
				"files":   stats.FilesProcessed,
				"skipped": stats.Errors,
				"words":   humanize.Comma(stats.Words),
				"read":    humanize.IBytes(uint64(stats.Bytes)),
				"elapsed": stats.Elapsed().Round(time.Millisecond),
			}).Info("Scan finished")

			if opts.Output == internal.OutputJSON {
				return rep.RenderJSON(os.Stdout)
			}
			return rep.Render(os.Stdout)
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
