package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dev-shimada/csv-refreshment-filter/internal/csv"
	internalhttp "github.com/dev-shimada/csv-refreshment-filter/internal/http"
	"github.com/dev-shimada/csv-refreshment-filter/internal/output"
	"github.com/dev-shimada/csv-refreshment-filter/internal/refreshment"
	"github.com/dev-shimada/csv-refreshment-filter/internal/source"
	"github.com/spf13/cobra"
)

var (
	timeout       int
	verbose       bool
	humanReadable bool
)

var errNegativeTimeout = errors.New("timeout must not be negative")

var rootCmd = &cobra.Command{
	Use:           "csv-refreshment-filter <path>",
	Short:         "Print the coffee, lunch and tea stops of a CSV file.",
	Long:          "Reads a CSV file (local path, s3:// or http(s):// URL), skips the header row and prints\n\"coffee, lunch, tea\" for every row where both coffee and tea are set.",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func run(cmd *cobra.Command, args []string) error {
	var programLevel = new(slog.LevelVar)
	switch {
	case verbose:
		programLevel.Set(slog.LevelDebug)
	default:
		programLevel.Set(slog.LevelInfo)
	}
	handler := slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: programLevel})
	slog.SetDefault(slog.New(handler))
	log.SetOutput(slog.NewLogLogger(handler, slog.LevelInfo).Writer())

	if timeout < 0 {
		return fmt.Errorf("%w: %d", errNegativeTimeout, timeout)
	}

	path := args[0]
	ctx := cmd.Context()
	// 0 means no deadline, as for the http client
	if isRemote(path) && timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
		defer cancel()
	}

	opener := &source.Opener{HTTP: internalhttp.NewClient(time.Duration(timeout) * time.Second)}
	file, err := opener.Open(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to open csv file: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader, err := csv.NewReader(file)
	if err != nil {
		return fmt.Errorf("failed to read csv: %w", err)
	}

	sink := output.New(cmd.OutOrStdout(), humanReadable)
	stats, err := refreshment.Filter(ctx, reader, sink)
	if ferr := sink.Flush(); ferr != nil {
		err = errors.Join(err, fmt.Errorf("failed to write output: %w", ferr))
	}
	if err != nil {
		return err
	}
	slog.Debug("done", "rows", stats.Rows, "emitted", stats.Emitted)
	return nil
}

func isRemote(path string) bool {
	for _, prefix := range []string{"s3://", "http://", "https://"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error(fmt.Sprintf("command execution failed: %v", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntVarP(&timeout, "timeout", "t", 30, "Timeout in seconds for s3:// and http(s):// paths (0 for none)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().BoolVarP(&humanReadable, "human-readable", "H", false, "Output in human-readable format")
}
