package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/companynorm/internal/adapters/driven/config/file"
	"github.com/custodia-labs/companynorm/internal/adapters/driven/jsonl"
	"github.com/custodia-labs/companynorm/internal/core/domain"
	"github.com/custodia-labs/companynorm/internal/core/ports/driving"
	"github.com/custodia-labs/companynorm/internal/core/services"
	"github.com/custodia-labs/companynorm/internal/extractors"
	"github.com/custodia-labs/companynorm/internal/extractors/money"
	"github.com/custodia-labs/companynorm/internal/logger"
)

// stdioPath selects stdin for the input or stdout for the output.
const stdioPath = "-"

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "companynorm <input> <output>",
	Short: "Normalise scraped company records",
	Long: `Reads line-delimited JSON company records and writes them to the output
in the same order, with the money, establish_date and employees fields
converted to integers (Euro, calendar year and head count). Values that
cannot be parsed become null; every other field is copied unchanged.

Use "-" as the input or output path to read stdin or write stdout.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runNormalise,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "TOML file overriding the currency table")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
}

// Execute runs the root command. Cancelling ctx stops the pipeline after
// the record in progress has been written.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func runNormalise(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]

	pipeline, registry, err := buildPipeline(configPath)
	if err != nil {
		return err
	}
	logger.Debug("Recognised fields: %v", registry.Fields())

	in, closeIn, err := openInput(cmd, inputPath)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(cmd, outputPath)
	if err != nil {
		return err
	}

	// Status lines must not mix with records written to stdout.
	status := cmd.OutOrStdout()
	if outputPath == stdioPath {
		status = cmd.ErrOrStderr()
	}

	fmt.Fprintf(status, "Starting data preprocessing from %s...\n", inputPath)

	stats, runErr := pipeline.Run(cmd.Context(), jsonl.NewReader(in), jsonl.NewWriter(out))
	closeErr := closeOut()
	if runErr != nil {
		return fmt.Errorf("normalise %s: %w", inputPath, runErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close %s: %w", outputPath, closeErr)
	}

	logStats(stats, registry.Fields())
	fmt.Fprintf(status, "Preprocessing complete. %d records saved to %s\n", stats.Records, outputPath)
	return nil
}

// buildPipeline wires the extractor registry, normaliser and pipeline,
// applying the configuration file when one is given.
func buildPipeline(path string) (*services.PipelineService, *extractors.Registry, error) {
	cfg := &file.Config{}
	if path != "" {
		loaded, err := file.Load(path)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
		logger.Info("Loaded config from %s (%d currencies)", path, len(cfg.Currencies))
	}

	registry := extractors.NewRegistry()
	extractors.RegisterDefaults(registry, cfg.MoneyOptions()...)
	logCurrencies(registry)

	normaliser := services.NewNormaliserService(registry)
	return services.NewPipelineService(normaliser, registry), registry, nil
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == stdioPath {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == stdioPath {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}

func logCurrencies(registry *extractors.Registry) {
	e, ok := registry.Lookup(domain.FieldMoney)
	if !ok {
		return
	}
	m, ok := e.(*money.Extractor)
	if !ok {
		return
	}

	rates := make([]string, 0, len(m.Currencies()))
	for _, c := range m.Currencies() {
		rates = append(rates, fmt.Sprintf("%s=%g", c.Marker, c.Rate))
	}
	logger.Debug("Currency table: %s", strings.Join(rates, ", "))
}

func logStats(stats *driving.RunStats, fields []string) {
	logger.Section("Summary")
	logger.Info("Run %s: %d records in %s", stats.RunID, stats.Records, stats.Duration)
	for _, name := range fields {
		fs, ok := stats.Fields[name]
		if !ok {
			continue
		}
		logger.Info("%s: %d extracted, %d null", name, fs.Extracted, fs.Nulled)
	}
}
