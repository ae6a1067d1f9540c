// Command flightgrid parses flight schedule documents from the command line
// or serves the extraction pipeline over HTTP.
//
// One-shot mode parses a document and writes records or a weekday matrix:
//
//	flightgrid -in february.json -year 2026 -month 2
//	flightgrid -in february.json -year 2026 -month 2 -weekday mon -format csv -out monday.csv
//
// Serve mode starts the HTTP service from a TOML config file:
//
//	flightgrid -serve -config flightgrid.toml
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avolio/flightgrid"
	"github.com/avolio/flightgrid/cache"
	"github.com/avolio/flightgrid/internal/api"
	"github.com/avolio/flightgrid/internal/config"
	"github.com/avolio/flightgrid/matrix"
	"github.com/avolio/flightgrid/model"
	"github.com/avolio/flightgrid/pkg/logger"
	"github.com/avolio/flightgrid/rows"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file")
		serve      = flag.Bool("serve", false, "start the HTTP service")

		in         = flag.String("in", "", "schedule document to parse")
		out        = flag.String("out", "", "output file (default stdout)")
		year       = flag.Int("year", 0, "target year")
		month      = flag.Int("month", 0, "target month (1-12)")
		weekday    = flag.String("weekday", "", "weekday matrix to build (e.g. mon); empty writes the record set")
		formatName = flag.String("format", "csv", "matrix output format: csv, json, pdf or markdown")
		strategy   = flag.String("strategy", "", "row strategy: auto, structured, token-stream or token-regex")
		pad        = flag.Bool("pad", false, "pad matrix columns to the full month")
		dates      = flag.String("dates", "", `date label format: "dd-mm" or "dd mon"`)
		quiet      = flag.Bool("quiet", false, "suppress parse warnings")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal(err)
	}

	if *serve {
		runServe(cfg)
		return
	}

	if *in == "" {
		fmt.Fprintln(os.Stderr, "flightgrid: -in is required (or -serve)")
		flag.Usage()
		os.Exit(2)
	}

	opts := oneShotOptions{
		in:         *in,
		out:        *out,
		year:       *year,
		month:      *month,
		weekday:    *weekday,
		formatName: *formatName,
		strategy:   *strategy,
		pad:        *pad,
		dates:      *dates,
		quiet:      *quiet,
	}
	if err := runOnce(cfg, opts); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "flightgrid:", err)
	os.Exit(1)
}

// oneShotOptions are the flag values of a single parse run.
type oneShotOptions struct {
	in, out    string
	year       int
	month      int
	weekday    string
	formatName string
	strategy   string
	pad        bool
	dates      string
	quiet      bool
}

// runOnce parses one document and writes the record set or one weekday
// matrix to the output file.
func runOnce(cfg *config.Config, opts oneShotOptions) error {
	ext := flightgrid.Open(opts.in)

	year, month := opts.year, opts.month
	if year == 0 {
		year = cfg.Parse.Year
	}
	if month == 0 {
		month = cfg.Parse.Month
	}
	if year != 0 && month != 0 {
		ext = ext.Month(year, time.Month(month))
	}

	strategyName := opts.strategy
	if strategyName == "" {
		strategyName = cfg.Parse.Strategy
	}
	kind, err := rows.ParseKind(strategyName)
	if err != nil {
		return err
	}
	ext = ext.Strategy(kind)

	datesName := opts.dates
	if datesName == "" {
		datesName = cfg.Parse.DateFormat
	}
	dateFormat, err := matrix.ParseDateFormat(datesName)
	if err != nil {
		return err
	}
	ext = ext.DateFormat(dateFormat)

	if opts.pad || cfg.Parse.PadFullMonth {
		ext = ext.PadFullMonth()
	}

	w, closeOut, err := outputWriter(opts.out)
	if err != nil {
		return err
	}
	defer closeOut()

	var warnings []flightgrid.Warning
	if opts.weekday == "" {
		warnings, err = writeRecords(w, ext)
	} else {
		warnings, err = writeMatrix(w, ext, opts.weekday, opts.formatName)
	}
	if err != nil {
		return err
	}

	if len(warnings) > 0 && !opts.quiet {
		fmt.Fprintln(os.Stderr, flightgrid.FormatWarnings(warnings))
	}
	return nil
}

// writeRecords writes the flat record set as indented JSON.
func writeRecords(w io.Writer, ext *flightgrid.Extractor) ([]flightgrid.Warning, error) {
	records, warnings, err := ext.Records()
	if err != nil {
		return warnings, err
	}
	if records == nil {
		records = []model.FlightRecord{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return warnings, fmt.Errorf("writing records: %w", err)
	}
	return warnings, nil
}

// writeMatrix builds the weekday matrix and writes it in the chosen format.
func writeMatrix(w io.Writer, ext *flightgrid.Extractor, weekdayName, formatName string) ([]flightgrid.Warning, error) {
	wd, ok := model.ParseWeekday(weekdayName)
	if !ok {
		return nil, fmt.Errorf("unknown weekday %q", weekdayName)
	}

	if formatName == "markdown" {
		m, warnings, err := ext.Matrix(wd)
		if err != nil {
			return warnings, err
		}
		if _, err := io.WriteString(w, m.ToMarkdown()); err != nil {
			return warnings, fmt.Errorf("writing matrix: %w", err)
		}
		return warnings, nil
	}

	return ext.Export(w, wd, formatName)
}

// outputWriter opens the output file, or stdout for an empty path.
func outputWriter(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

// runServe starts the HTTP service and blocks until interrupted.
func runServe(cfg *config.Config) {
	log, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		fatal(err)
	}

	store, err := cache.Open(cfg.Cache.Path, log)
	if err != nil {
		fatal(err)
	}
	defer store.Close()

	router := api.NewRouter(store, cfg, log)
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router.Routes(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("flightgrid listening", logger.String("addr", cfg.Server.Addr))
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal(err)
		}
	case sig := <-stop:
		log.Info("shutting down", logger.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.WithError(err).Error("shutdown failed")
		}
	}
}
