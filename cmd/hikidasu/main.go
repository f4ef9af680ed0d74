// Package main is the hikidasu CLI entry point.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/hikidasu/hikidasu/internal/cli"
	"github.com/hikidasu/hikidasu/internal/config"
	"github.com/hikidasu/hikidasu/internal/extract"
	"github.com/hikidasu/hikidasu/internal/models"
	"github.com/hikidasu/hikidasu/internal/registry"
	"github.com/hikidasu/hikidasu/internal/server"
	"github.com/hikidasu/hikidasu/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/hikidasu/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists
// it is used. A missing default config is not an error: stock settings apply.
func loadConfig(path string) (*config.Config, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				return config.Load(fallback)
			}
		}
		if _, statErr := os.Stat(path); statErr != nil {
			cfg := &config.Config{}
			config.ApplyDefaults(cfg)
			return cfg, nil
		}
	}
	return config.Load(path)
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "extract":
		runExtract()
	case "formats":
		runFormats()
	case "server":
		runServer()
	case "init":
		runInit()
	case "version", "--version", "-v":
		fmt.Printf("hikidasu version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// newExtractor builds the extractor from config.
func newExtractor(cfg *config.Config, logger *zap.Logger) (*extract.Extractor, error) {
	reg, err := registry.New(cfg.Formats.Sets())
	if err != nil {
		return nil, fmt.Errorf("invalid formats config: %w", err)
	}
	return extract.NewExtractor(
		extract.WithRegistry(reg),
		extract.WithProber(&extract.FFProbe{
			Bin:     cfg.Extract.FFProbePath,
			Timeout: cfg.Extract.ProbeTimeout(),
		}),
		extract.WithMargin(cfg.Extract.PDFMargin),
		extract.WithLogger(logger),
	), nil
}

func runExtract() {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	outputFormat := fs.String("output", "text", "output format: text (human-readable), compact (content only), or json (parseable)")
	quiet := fs.Bool("quiet", false, "suppress failures: print nothing and exit 0 when a file cannot be extracted")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: hikidasu extract [flags] <file>")
		os.Exit(1)
	}
	path, err := filepath.Abs(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid path: %v\n", err)
		os.Exit(1)
	}

	var format cli.OutputFormat
	switch *outputFormat {
	case "json":
		format = cli.OutputJSON
	case "text":
		format = cli.OutputText
	case "compact":
		format = cli.OutputCompact
	default:
		fmt.Printf("Unknown output format %q; use text, compact, or json\n", *outputFormat)
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	extractor, err := newExtractor(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if *quiet {
		res := extractor.TryExtract(context.Background(), path)
		if res == nil {
			return
		}
		_ = cli.WriteResult(os.Stdout, models.NewExtractResponse(uuid.NewString(), path, res), format)
		return
	}

	res, err := extractor.Extract(context.Background(), path)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupported) {
			fmt.Fprintf(os.Stderr, "Unsupported file type: %s\n", path)
		} else if errors.Is(err, extract.ErrPasswordProtected) {
			fmt.Fprintf(os.Stderr, "Password-protected document: %s\n", path)
		} else {
			fmt.Fprintf(os.Stderr, "Extraction failed: %v\n", err)
		}
		os.Exit(1)
	}
	if err := cli.WriteResult(os.Stdout, models.NewExtractResponse(uuid.NewString(), path, res), format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runInit() {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	force := fs.Bool("force", false, "overwrite an existing config file")
	_ = fs.Parse(os.Args[2:])

	if err := writeDefaultConfig(*configPath, *force); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote default config to %s\n", *configPath)
}

// writeDefaultConfig writes a stock config file to path, creating parent
// directories as needed. An existing file is kept unless force is set.
func writeDefaultConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	return config.Save(path, cfg)
}

func runFormats() {
	fs := flag.NewFlagSet("formats", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	_ = fs.Parse(os.Args[2:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	reg, err := registry.New(cfg.Formats.Sets())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid formats config: %v\n", err)
		os.Exit(1)
	}
	for _, cat := range reg.Categories() {
		fmt.Printf("%-10s", cat)
		for _, ext := range reg.CategoryExtensions(cat) {
			fmt.Printf(" %s", ext)
		}
		fmt.Println()
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (per-file extraction outcomes, etc.)")
	_ = fs.Parse(os.Args[2:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded", zap.Bool("debug", debugMode))

	extractor, err := newExtractor(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize extractor", zap.Error(err))
	}

	srv := server.NewServer(extractor, &cfg.Server, logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func printUsage() {
	fmt.Println(`hikidasu - file content and metadata extraction

Usage:
  hikidasu extract [flags] <file>  Extract content/metadata from a file
  hikidasu formats [flags]         List recognized extensions per backend
  hikidasu server [flags]          Start the HTTP API server
  hikidasu init [flags]            Write a default config file
  hikidasu version                 Show version
  hikidasu help                    Show this help

Extract Flags:
  --config string    Config file path (default: /usr/local/etc/hikidasu/config.yaml)
  --output string    Output format: text, compact, or json (default: text)
  --quiet            Suppress failures: print nothing and exit 0 on unparsable files

Server Flags:
  --config string    Config file path
  --debug            Enable debug logging

Init Flags:
  --config string    Where to write the config file
  --force            Overwrite an existing config file

Examples:
  hikidasu extract document.pdf
  hikidasu extract --output json song.mp3
  hikidasu extract --output compact notes.txt
  hikidasu formats
  hikidasu server --debug`)
}
