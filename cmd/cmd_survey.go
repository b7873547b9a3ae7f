package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/garlicgarrison/knights-tour/notation"
	"github.com/garlicgarrison/knights-tour/survey"
	"github.com/garlicgarrison/knights-tour/tour"
)

var commandSurvey = &cobra.Command{
	Use:   "survey",
	Short: "Run a tour from every starting square and report which complete",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSurvey(cmd.OutOrStdout(), surveyFlags)
	},
	SilenceUsage: true,
}

type surveyOptions struct {
	rows, cols int
	workers    int
	json       bool
}

var surveyFlags surveyOptions

func init() {
	flags := commandSurvey.Flags()
	flags.IntVar(&surveyFlags.rows, "rows", 8, "number of rows")
	flags.IntVar(&surveyFlags.cols, "cols", 8, "number of columns")
	flags.IntVarP(&surveyFlags.workers, "workers", "w", 4, "number of concurrent tours")
	flags.BoolVar(&surveyFlags.json, "json", false, "print the report as JSON")
	mainCommand.AddCommand(commandSurvey)
}

func runSurvey(out io.Writer, opts surveyOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := inRange("rows", opts.rows, cfg.MinSize, cfg.MaxSize); err != nil {
		return err
	}
	if err := inRange("cols", opts.cols, cfg.MinSize, cfg.MaxSize); err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer logger.Sync()

	report, err := survey.Run(opts.rows, opts.cols, opts.workers, logger)
	if err != nil {
		return err
	}

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	for _, o := range report.Outcomes {
		names := notation.Path([]tour.Position{o.Start, o.End}, opts.rows, opts.cols)
		status := stalledText
		if o.Complete {
			status = completedText
		}
		fmt.Fprintf(out, "%-6s -> %-6s %3d moves  %s\n", names[0], names[1], o.Moves, status)
	}
	fmt.Fprintf(out, "%d/%d starting squares complete a tour\n", report.Complete, len(report.Outcomes))
	return nil
}
