// ═══════════════════════════════════════════════════════════════════════════════════════════════
// SupraX TAGE Simulator Harness
// ═══════════════════════════════════════════════════════════════════════════════════════════════
//
// This is "the harness" spec.md §1 treats as an external collaborator: it owns reading trace
// records and calling predict/update in strict alternation. None of the TAGE algorithmic
// subtlety lives here — it lives in internal/tage. This just drives it.
//
// ═══════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/suprax-arch/tage/internal/branch"
	"github.com/suprax-arch/tage/internal/gshare"
	"github.com/suprax-arch/tage/internal/report"
	"github.com/suprax-arch/tage/internal/tage"
	"github.com/suprax-arch/tage/internal/trace"
)

// progressInterval mirrors the TAGE core's own graceful-reset period, so a long-running trace
// logs progress on the same cadence the predictor itself uses for useful-bit decay.
const progressInterval = tage.ResetPeriod

func main() {
	var (
		tracePath    string
		predictorArg string
		configPath   string
		reportPath   string
		logLevel     string
	)

	root := &cobra.Command{
		Use:   "tagesim",
		Short: "Drives a conditional branch direction predictor against a trace",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &report.Config{}
			if configPath != "" {
				loaded, err := report.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if tracePath != "" {
				cfg.Trace = tracePath
			}
			if predictorArg != "" {
				cfg.Predictor = predictorArg
			}
			if reportPath != "" {
				cfg.Report = reportPath
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if cfg.Predictor == "" {
				cfg.Predictor = "tage"
			}
			if cfg.LogLevel == "" {
				cfg.LogLevel = "info"
			}

			return run(cfg)
		},
	}

	root.Flags().StringVar(&tracePath, "trace", "", "path to a trace file (plain text or gzip)")
	root.Flags().StringVar(&predictorArg, "predictor", "", "predictor to run: tage or gshare (default tage)")
	root.Flags().StringVar(&configPath, "config", "", "optional YAML config file; flags override it")
	root.Flags().StringVar(&reportPath, "report", "", "path to write the JSON run summary (default stdout)")
	root.Flags().StringVar(&logLevel, "log-level", "", "zap log level: debug, info, warn, error (default info)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *report.Config) error {
	if cfg.Trace == "" {
		return fmt.Errorf("tagesim: --trace is required")
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	var pred branch.Predictor
	switch cfg.Predictor {
	case "tage":
		pred = tage.NewPredictor()
	case "gshare":
		pred = gshare.New()
	default:
		return fmt.Errorf("tagesim: unknown predictor %q (want tage or gshare)", cfg.Predictor)
	}

	f, err := os.Open(cfg.Trace)
	if err != nil {
		return fmt.Errorf("tagesim: open trace: %w", err)
	}
	defer f.Close()

	reader, err := trace.NewReader(f)
	if err != nil {
		return fmt.Errorf("tagesim: %w", err)
	}
	defer reader.Close()

	summary := report.New(cfg.Predictor)
	logger.Infow("starting run", "run_id", summary.RunID, "predictor", cfg.Predictor, "trace", cfg.Trace)

	for {
		rec, err := reader.Next()
		if err != nil {
			break
		}

		prediction := pred.Predict(rec.Info())
		pred.Update(rec.Taken, rec.Target)
		summary.Observe(prediction.Direction, rec.Taken)

		if summary.Branches%progressInterval == 0 {
			logger.Infow("progress", "branches", summary.Branches, "mispredict_rate", summary.MispredictRate())
		}
	}

	if tp, ok := pred.(*tage.Predictor); ok {
		stats := tp.Stats()
		summary.Tables = stats[:]
	}

	logger.Infow("run complete",
		"run_id", summary.RunID,
		"branches", summary.Branches,
		"mispredicts", summary.Mispredicts,
		"mispredict_rate", summary.MispredictRate(),
	)

	out := os.Stdout
	if cfg.Report != "" {
		rf, err := os.Create(cfg.Report)
		if err != nil {
			return fmt.Errorf("tagesim: create report: %w", err)
		}
		defer rf.Close()
		return summary.WriteJSON(rf)
	}
	return summary.WriteJSON(out)
}

func newLogger(level string) (*zap.SugaredLogger, error) {
	var zlvl zap.AtomicLevel
	switch level {
	case "debug":
		zlvl = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		zlvl = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zlvl = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		zlvl = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zlvl
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("tagesim: build logger: %w", err)
	}
	return logger.Sugar(), nil
}
