package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"giftcard-reconciliation/internal/config"
	"giftcard-reconciliation/internal/gateway"
	"giftcard-reconciliation/internal/logger"
	"giftcard-reconciliation/internal/usecase"
)

type options struct {
	in     string
	out    string
	stores string
	today  string
	debug  bool
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "px":
		err = runPaytronix(os.Args[2:])
	case "uber":
		err = runUber(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, gateway.ErrInputMissing) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Gift card and UberEats reconciler")
	fmt.Println("\nUsage:")
	fmt.Println("  reconciler <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  px      Reconcile Paytronix gift card redemptions and payouts")
	fmt.Println("  uber    Reconcile UberEats payouts against Toast orders")
	fmt.Println("  help    Show this help message")
	fmt.Println("\nRun 'reconciler <command> -h' for more information on a command.")
}

func parseOptions(name string, args []string) (options, error) {
	downloads := defaultDownloads()

	var opts options
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.StringVar(&opts.in, "in", downloads, "Directory scanned for input CSV files")
	fs.StringVar(&opts.out, "out", downloads, "Directory receiving the output files")
	fs.StringVar(&opts.stores, "stores", "", "YAML file overriding the built-in store tables")
	fs.StringVar(&opts.today, "today", "", "Run date (YYYY-MM-DD), defaults to the current day")
	fs.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func defaultDownloads() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}

// setup builds everything both pipelines share: the store tables, the run
// clock and a context carrying a run-scoped logger.
func setup(pipeline string, opts options) (context.Context, *config.Directory, usecase.Clock, error) {
	level := zerolog.InfoLevel
	if opts.debug {
		level = zerolog.DebugLevel
	}
	log := logger.ForRun(logger.New(level), pipeline)
	ctx := logger.WithContext(context.Background(), log)

	dir, err := config.Load(opts.stores)
	if err != nil {
		return nil, nil, nil, err
	}

	clock := usecase.Clock(time.Now)
	if opts.today != "" {
		day, err := time.Parse("2006-01-02", opts.today)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("error parsing run date: %w", err)
		}
		clock = func() time.Time { return day }
	}
	return ctx, dir, clock, nil
}

func runPaytronix(args []string) error {
	opts, err := parseOptions("px", args)
	if err != nil {
		return err
	}
	ctx, dir, clock, err := setup("px", opts)
	if err != nil {
		return err
	}

	files, err := gateway.DiscoverPaytronix(opts.in)
	if err != nil {
		return err
	}
	log := logger.FromContext(ctx)
	log.Info().Str("inputs", files.String()).Msg("starting paytronix run")

	uc := usecase.NewPaytronixUseCase(gateway.NewCSVPaytronixRepository(files), gateway.NewFileWriter(opts.out), dir, clock)
	report, err := uc.Run(ctx)
	if err != nil {
		return fmt.Errorf("paytronix reconciliation failed: %w", err)
	}
	return printReport(report)
}

func runUber(args []string) error {
	opts, err := parseOptions("uber", args)
	if err != nil {
		return err
	}
	ctx, dir, clock, err := setup("uber", opts)
	if err != nil {
		return err
	}

	files, err := gateway.DiscoverUber(opts.in)
	if err != nil {
		return err
	}
	log := logger.FromContext(ctx)
	log.Info().Str("payouts", files.Payouts).Str("toast", files.Toast).Msg("starting uber run")

	uc := usecase.NewUberEatsUseCase(gateway.NewCSVUberRepository(files), gateway.NewFileWriter(opts.out), dir, clock)
	report, err := uc.Run(ctx)
	if err != nil {
		return fmt.Errorf("uber reconciliation failed: %w", err)
	}
	return printReport(report)
}

func printReport(report interface{}) error {
	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to generate JSON report: %w", err)
	}
	fmt.Println(string(output))
	return nil
}
