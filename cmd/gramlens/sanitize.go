package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gramlens/gramlens/internal/config"
	"github.com/gramlens/gramlens/internal/database"
	"github.com/gramlens/gramlens/internal/locale"
	gramlog "github.com/gramlens/gramlens/internal/log"
	"github.com/gramlens/gramlens/internal/model"
	"github.com/gramlens/gramlens/internal/pipeline"
	"github.com/gramlens/gramlens/internal/report"
	"github.com/gramlens/gramlens/internal/sanitize"
)

// NewSanitizeCmd creates the sanitize command.
func NewSanitizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sanitize [payload-file...]",
		Short: "Sanitize raw analysis payloads into normalized reports",
		Long: `Sanitize reads raw analysis payloads (JSON) and produces normalized,
display-ready reports.

Each payload is passed through the sanitization pipeline:
- Internal variable names, template phrases, and serialization artifacts
  are removed from findings and recommendations
- Foreign serialization formats (object notation, stringified JSON) are
  parsed into structured values
- Zero and missing metric values become locale-appropriate placeholders
  instead of misleading zeros
- Influencer-economy metrics are suppressed for service-provider accounts

Examples:
  # Sanitize a single payload
  gramlens sanitize report.json

  # Sanitize several payloads concurrently
  gramlens sanitize reports/*.json

  # Read a payload from stdin
  cat report.json | gramlens sanitize -

  # English output with a Markdown report
  gramlens sanitize --locale en --markdown report.json

  # Use a custom rules file
  gramlens sanitize -c myrules.yaml report.json

Rules file (.gramlens) example:
  locale: tr
  bannedPhrases:
    - "paylaşım yapın"
  suppressedMetrics:
    - affiliateRevenue
  accounts:
    acme_dental:
      serviceProvider: true`,
		Args: cobra.ArbitraryArgs,
		RunE: runSanitizeCmd,
	}

	// Sanitization behavior flags
	cmd.Flags().StringP("locale", "L", string(config.DefaultLocale),
		"Output locale for report strings (tr or en)")
	cmd.Flags().StringSlice("banned-phrase", nil,
		"Extra banned phrase (repeatable, added to the built-in lists)")
	cmd.Flags().StringSlice("suppress-metric", nil,
		"Extra suppressed metric-name substring (repeatable)")

	// Batch processing flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent sanitizations")

	// Rules file
	cmd.Flags().StringP("rules", "c", "",
		"Rules file path (default: .gramlens in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// History flags
	cmd.Flags().Bool("no-save", false,
		"Do not save sanitized reports to the history database")

	return cmd
}

// runSanitizeCmd executes the sanitize command.
func runSanitizeCmd(cmd *cobra.Command, args []string) error {
	cfg, extraBanned, extraSuppressed, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Structured logging with credential redaction
	verbose := getVerboseFlag(cmd)
	logger := gramlog.NewSecureLogger(os.Stderr, verbose)
	slog.SetDefault(logger)

	// Context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	engine := buildEngine(cfg, extraBanned, extraSuppressed)
	return runSanitize(ctx, cfg, engine, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
// Extra banned phrases and suppressed metrics from flags are returned
// separately; they merge with the rules file in buildEngine.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, []string, []string, error) {
	cfg := config.NewConfig()

	localeFlag, err := cmd.Flags().GetString("locale")
	if err != nil {
		return nil, nil, nil, err
	}

	extraBanned, err := cmd.Flags().GetStringSlice("banned-phrase")
	if err != nil {
		return nil, nil, nil, err
	}

	extraSuppressed, err := cmd.Flags().GetStringSlice("suppress-metric")
	if err != nil {
		return nil, nil, nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, nil, nil, err
	}

	cfg.RulesFilePath, err = cmd.Flags().GetString("rules")
	if err != nil {
		return nil, nil, nil, err
	}

	// Load sanitization rules from the rules file.
	// If user explicitly specified a rules file path, error if not found.
	// If no path specified, silently continue without rules.
	explicitRulesPath := cfg.RulesFilePath != ""
	rulesPath := config.FindRulesFile(cfg.RulesFilePath)

	if rulesPath != "" {
		cfg.Rules, err = config.LoadRulesFile(rulesPath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to load rules file %s: %w", rulesPath, err)
		}
	} else if explicitRulesPath {
		return nil, nil, nil, fmt.Errorf("rules file not found: %s", cfg.RulesFilePath)
	}

	// Locale precedence: flag > rules file > default
	localeValue := localeFlag
	if !cmd.Flags().Changed("locale") && cfg.Rules != nil && cfg.Rules.Locale != "" {
		localeValue = cfg.Rules.Locale
	}
	cfg.Locale, err = locale.Parse(localeValue)
	if err != nil {
		return nil, nil, nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, nil, nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, nil, nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, nil, nil, err
	}

	noSave, err := cmd.Flags().GetBool("no-save")
	if err != nil {
		return nil, nil, nil, err
	}
	cfg.SaveToDB = !noSave
	cfg.DBDir = config.XDGDataDir()

	// Positional arguments (payload files)
	cfg.PayloadFiles = args

	return cfg, extraBanned, extraSuppressed, nil
}

// buildEngine creates the sanitization engine from the resolved config,
// merging flag-supplied and rules-file rules.
func buildEngine(cfg *config.Config, extraBanned, extraSuppressed []string) *sanitize.Engine {
	if cfg.Rules != nil {
		extraBanned = append(extraBanned, cfg.Rules.BannedPhrases...)
		extraSuppressed = append(extraSuppressed, cfg.Rules.SuppressedMetrics...)
	}

	return sanitize.NewEngine(
		sanitize.WithLocale(cfg.Locale),
		sanitize.WithBannedPhrases(extraBanned...),
		sanitize.WithSuppressedMetrics(extraSuppressed...),
	)
}

// runSanitize executes the sanitization run.
func runSanitize(ctx context.Context, cfg *config.Config, engine *sanitize.Engine, logger *slog.Logger) error {
	logger.Info("starting sanitization",
		"payloads", len(cfg.PayloadFiles),
		"locale", string(cfg.Locale),
		"batchSize", cfg.BatchSize,
		"saveToDB", cfg.SaveToDB,
	)

	// Open history database if saving is enabled
	var db *database.ReportDB
	if cfg.SaveToDB {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		logger.Info("database opened", "dir", cfg.DBDir)
	}

	payloads := make([]map[string]any, 0, len(cfg.PayloadFiles))
	for _, path := range cfg.PayloadFiles {
		raw, err := readPayload(path)
		if err != nil {
			return fmt.Errorf("failed to read payload %s: %w", path, err)
		}
		payloads = append(payloads, raw)
	}

	if len(payloads) > 1 && cfg.BatchSize > 1 {
		return runBatchSanitize(ctx, cfg, engine, payloads, db, logger)
	}
	return runSequentialSanitize(ctx, cfg, engine, payloads, db, logger)
}

// readPayload reads and decodes one raw payload from a file or stdin ("-").
func readPayload(path string) (map[string]any, error) {
	var data []byte
	var err error

	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path) //nolint:gosec // User-provided payload path is intentional
	}
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return raw, nil
}

// runSequentialSanitize sanitizes payloads one at a time.
// Per-account rules-file overrides apply in this mode.
func runSequentialSanitize(ctx context.Context, cfg *config.Config, engine *sanitize.Engine, payloads []map[string]any, db *database.ReportDB, logger *slog.Logger) error {
	p := pipeline.DefaultPipeline(engine, pipeline.WithLogger(logger))

	for i, raw := range payloads {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		startTime := time.Now()

		job := pipeline.NewJob(raw)
		applyAccountRules(job, cfg, raw)

		if err := p.Execute(ctx, job); err != nil {
			logger.Error("sanitization failed", "payload", cfg.PayloadFiles[i], "error", err)
			continue
		}

		logger.Debug("payload sanitized",
			"payload", cfg.PayloadFiles[i],
			"elapsed", time.Since(startTime).Round(time.Millisecond),
		)

		if err := outputReport(cfg, job.Report); err != nil {
			logger.Error("report failed", "payload", cfg.PayloadFiles[i], "error", err)
		}

		if err := saveReport(ctx, db, job.Report, logger); err != nil {
			logger.Error("failed to save report", "payload", cfg.PayloadFiles[i], "error", err)
		}
	}

	return nil
}

// runBatchSanitize sanitizes payloads concurrently using BatchProcessor.
func runBatchSanitize(ctx context.Context, cfg *config.Config, engine *sanitize.Engine, payloads []map[string]any, db *database.ReportDB, logger *slog.Logger) error {
	// Per-account rules require sequential job construction
	if cfg.Rules != nil && len(cfg.Rules.Accounts) > 0 {
		logger.Warn("batch processing ignores per-account rules; use --batch 1 to apply them",
			"accountCount", len(cfg.Rules.Accounts))
		fmt.Fprintf(os.Stderr, "Warning: Per-account rules are ignored in batch mode. Use --batch 1 to apply them.\n\n")
	}

	fmt.Printf("Sanitizing %d payloads (concurrency: %d)...\n\n", len(payloads), cfg.BatchSize)
	startTime := time.Now()

	bp := pipeline.NewBatchProcessor(engine,
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	var mu sync.Mutex
	err := bp.ProcessBatchWithCallback(ctx, payloads, func(index int, result *model.NormalizedPayload) error {
		mu.Lock()
		defer mu.Unlock()

		fmt.Printf("[%d/%d] Sanitized: %s\n", index+1, len(payloads), cfg.PayloadFiles[index])

		if err := outputReport(cfg, result); err != nil {
			logger.Error("report failed", "payload", cfg.PayloadFiles[index], "error", err)
		}
		if err := saveReport(ctx, db, result, logger); err != nil {
			logger.Error("failed to save report", "payload", cfg.PayloadFiles[index], "error", err)
		}
		return nil
	})

	fmt.Printf("\nBatch completed in %s\n", time.Since(startTime).Round(time.Millisecond))
	return err
}

// applyAccountRules reads the payload's username and applies any matching
// per-account rules-file overrides to the job.
func applyAccountRules(job *pipeline.Job, cfg *config.Config, raw map[string]any) {
	if cfg.Rules == nil {
		return
	}

	username := payloadUsername(raw)
	rules := cfg.Rules.ForAccount(username)

	job.ForceServiceProvider = rules.ServiceProvider
	job.ExtraForbiddenMetrics = rules.SuppressedMetrics
}

// payloadUsername extracts the account username from a raw payload for
// rules-file matching. Returns an empty string when no account is present.
func payloadUsername(raw map[string]any) string {
	for _, section := range []string{"account", "profile", "accountInfo", "account_info"} {
		obj, ok := raw[section].(map[string]any)
		if !ok {
			continue
		}
		if username, ok := obj["username"].(string); ok {
			return username
		}
	}
	return ""
}

// outputReport renders the normalized payload in the requested format.
func outputReport(cfg *config.Config, payload *model.NormalizedPayload) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Reports may contain account details; owner-only permissions
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	if cfg.JSONReport {
		writer := report.NewJSONWriter(output, report.WithPrettyPrint())
		_, err := writer.Write(payload)
		return err
	}

	if cfg.MarkdownReport {
		writer := report.NewMarkdownWriter(output)
		_, err := writer.Write(payload)
		return err
	}

	// Human-readable report (default)
	writer := report.NewSimpleWriter(output)
	_, err := writer.Write(payload)
	return err
}

// saveReport saves the normalized payload to the history database.
// If db is nil, this function is a no-op.
func saveReport(ctx context.Context, db *database.ReportDB, payload *model.NormalizedPayload, logger *slog.Logger) error {
	if db == nil {
		return nil
	}

	id, err := db.SaveReport(ctx, payload)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	username := ""
	if payload.Account != nil {
		username = payload.Account.Username
	}
	logger.Info("report saved to database", "id", id, "username", username)
	return nil
}
