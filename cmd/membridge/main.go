// membridge — MCP adapter for a remote memory service.
// Exposes ingest, semantic query, listing, deletion, status, identity,
// session handoff and relationship lookup as MCP tools backed by
// authenticated HTTP calls. Serves stdio by default; stdout carries the
// protocol, so every log line goes to stderr.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/matiasleandrokruk/membridge/internal/infra/config"
	"github.com/matiasleandrokruk/membridge/internal/server"
	"github.com/matiasleandrokruk/membridge/internal/version"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetPrefix("membridge: ")
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("membridge", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	showVersion := fs.Bool("version", false, "Show version information")
	showHelp := fs.Bool("help", false, "Show help")
	configPath := fs.String("config", "", "Path to YAML config file")
	httpAddr := fs.String("http", "", "Serve MCP over HTTP on this address instead of stdio")

	if err := fs.Parse(args); err != nil {
		printHelp(out)
		return 2
	}

	if *showVersion {
		fmt.Fprintln(out, version.String()) //nolint:errcheck
		return 0
	}
	if *showHelp {
		printHelp(out)
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		if errors.Is(err, config.ErrMissingAPIKey) {
			fmt.Fprintln(os.Stderr, "membridge: API_KEY is required — set it in the environment or the config file") //nolint:errcheck
			printHelp(os.Stderr)
		} else {
			fmt.Fprintf(os.Stderr, "membridge: %v\n", err) //nolint:errcheck
		}
		return 1
	}

	addr := *httpAddr
	if addr == "" {
		addr = cfg.HTTPAddr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg)
	if addr != "" {
		err = srv.RunHTTP(ctx, addr)
	} else {
		err = srv.Run(ctx)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("serve error: %v", err)
		return 1
	}
	return 0
}

func printHelp(out io.Writer) {
	helpText := `membridge — MCP adapter for a remote memory service

Usage:
  membridge [options]

Options:
  --version        Show version information
  --help           Show this help message
  --config PATH    Load settings from a YAML file (env vars take precedence)
  --http ADDR      Serve MCP over HTTP on ADDR instead of stdio

Environment:
  API_KEY          Bearer token for the memory service (required)
  API_URL          Service base URL (default ` + config.DefaultAPIURL + `)

Examples:
  API_KEY=sk-... membridge
  API_KEY=sk-... membridge --http :8765
  membridge --config membridge.yaml`
	fmt.Fprintln(out, helpText) //nolint:errcheck
}
