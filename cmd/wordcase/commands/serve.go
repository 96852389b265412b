package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/erraggy/wordcase/casing"
	"github.com/erraggy/wordcase/internal/cliutil"
	"github.com/erraggy/wordcase/internal/httpapi"
	"github.com/erraggy/wordcase/internal/rulewatch"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// ServeFlags contains flags for the serve command
type ServeFlags struct {
	Addr             string
	Rules            string
	Watch            bool
	CORSOrigins      string
	PreserveAcronyms bool
	MaxInputBytes    int
	Timeout          time.Duration
	Debug            bool
}

// SetupServeFlags creates and configures a FlagSet for the serve command.
func SetupServeFlags() (*flag.FlagSet, *ServeFlags) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	flags := &ServeFlags{}

	fs.StringVar(&flags.Addr, "addr", ":8080", "address to listen on")
	fs.StringVar(&flags.Rules, "rules", "", "YAML file with extra irregulars, acronyms and uncountable words")
	fs.BoolVar(&flags.Watch, "watch", false, "reload the rules file when it changes")
	fs.StringVar(&flags.CORSOrigins, "cors-origin", "", "comma-separated list of allowed CORS origins")
	fs.BoolVar(&flags.PreserveAcronyms, "preserve-acronyms", false, "keep fully uppercase words in camel and pascal output")
	fs.IntVar(&flags.MaxInputBytes, "max-input-bytes", 64*1024, "maximum size of a single input value")
	fs.DurationVar(&flags.Timeout, "timeout", 10*time.Second, "per-request timeout")
	fs.BoolVar(&flags.Debug, "debug", false, "enable debug logging")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: wordcase serve [flags]\n\n")
		cliutil.Writef(fs.Output(), "Serve every transform as a JSON HTTP API.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nEndpoints:\n")
		cliutil.Writef(fs.Output(), "  GET  /healthz\n")
		cliutil.Writef(fs.Output(), "  GET  /metrics\n")
		cliutil.Writef(fs.Output(), "  GET  /v1/styles\n")
		cliutil.Writef(fs.Output(), "  GET  /v1/convert/{style}?input=...\n")
		cliutil.Writef(fs.Output(), "  POST /v1/convert/{style}   {\"inputs\": [...]}\n")
		cliutil.Writef(fs.Output(), "  GET  /v1/tokenize?input=...\n")
		cliutil.Writef(fs.Output(), "  GET  /v1/pluralize?word=...\n")
		cliutil.Writef(fs.Output(), "  GET  /v1/singularize?word=...\n")
		cliutil.Writef(fs.Output(), "  GET  /v1/quantify?count=...&unit=...[&plural=...]\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  wordcase serve\n")
		cliutil.Writef(fs.Output(), "  wordcase serve -addr 127.0.0.1:9000 -rules catalog.yaml -watch\n")
		cliutil.Writef(fs.Output(), "  wordcase serve -cors-origin https://app.example.com\n")
	}

	return fs, flags
}

// HandleServe executes the serve command. It blocks until SIGINT or SIGTERM.
func HandleServe(args []string) error {
	fs, flags := SetupServeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("serve command takes no arguments")
	}
	if flags.Watch && flags.Rules == "" {
		return fmt.Errorf("-watch requires -rules")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	level := slog.LevelInfo
	if flags.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := httpapi.NewMetrics(reg)

	rules, err := newRulesHolder(flags.Rules, logger, metrics.ObserveReload)
	if err != nil {
		return err
	}
	defer rules.Stop()
	if flags.Watch {
		if err := rules.Watch(ctx); err != nil {
			return fmt.Errorf("watching rules: %w", err)
		}
	}

	handler := httpapi.NewRouter(httpapi.Config{
		Rules:          rules,
		Caser:          casing.New(casing.WithPreserveAcronyms(flags.PreserveAcronyms)),
		Metrics:        metrics,
		Gatherer:       reg,
		CORSOrigins:    splitList(flags.CORSOrigins),
		MaxInputBytes:  flags.MaxInputBytes,
		RequestTimeout: flags.Timeout,
		Logger:         logger,
	})
	return httpapi.Serve(ctx, flags.Addr, handler, logger)
}

func newRulesHolder(path string, logger *slog.Logger, observe func(error)) (*rulewatch.Holder, error) {
	adapter := rulewatch.NewSlogAdapter(logger).With("component", "rules")
	if path == "" {
		return rulewatch.NewStatic(nil, rulewatch.WithLogger(adapter)), nil
	}
	return rulewatch.NewHolder(path,
		rulewatch.WithLogger(adapter),
		rulewatch.WithReloadObserver(observe),
	)
}

// splitList splits a comma-separated flag value, dropping blank entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
