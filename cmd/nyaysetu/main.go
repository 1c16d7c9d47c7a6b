// Package main is the NyaySetu CLI entry point.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/nyaysetu/nyaysetu/internal/cli"
	"github.com/nyaysetu/nyaysetu/internal/config"
	"github.com/nyaysetu/nyaysetu/internal/server"
	"github.com/nyaysetu/nyaysetu/internal/watcher"
	"github.com/nyaysetu/nyaysetu/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/nyaysetu/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks for
// config.yaml in the current directory (for development); if that exists it is used.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "server":
		runServer()
	case "ingest":
		runIngest()
	case "ask":
		runAsk()
	case "status":
		runStatus()
	case "version", "--version", "-v":
		fmt.Printf("nyaysetu version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
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

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	components, err := initializeComponents(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer components.Close()

	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	var watchSvc *watcher.Watcher
	if cfg.Corpus.Watch && cfg.Corpus.Directory != "" {
		watchSvc = watcher.New(cfg.Corpus.Directory, cfg.Corpus.Extensions, func(path string) {
			if err := components.Pipeline.IngestFile(context.Background(), path); err != nil {
				logger.Warn("corpus ingest failed", zap.String("path", path), zap.Error(err))
			}
		}, logger)
		if err := watchSvc.Start(watchCtx); err != nil {
			logger.Fatal("Failed to start corpus watcher", zap.Error(err))
		}
		watchSvc.SyncExistingFiles()
	}

	srv := server.NewServer(
		components.Assistant,
		components.Pipeline,
		components.Store,
		components.Extractor,
		cfg,
		logger,
	)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	if cfg.Storage.VectorIndexPath != "" {
		if err := components.Index.Save(cfg.Storage.VectorIndexPath); err != nil {
			logger.Warn("vector index save failed", zap.String("path", cfg.Storage.VectorIndexPath), zap.Error(err))
		}
	}
	watchCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func runIngest() {
	fs := flag.NewFlagSet("ingest", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])
	if fs.NArg() == 0 {
		fmt.Println("Usage: nyaysetu ingest [flags] <file-or-directory>...")
		os.Exit(1)
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug || *debug)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()
	components, err := initializeComponents(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer components.Close()

	paths, err := collectDocumentPaths(fs.Args(), cfg.Corpus.Extensions)
	if err != nil {
		logger.Fatal("Failed to collect documents", zap.Error(err))
	}
	if len(paths) == 0 {
		fmt.Println("No matching documents found")
		os.Exit(1)
	}

	ok, failed := components.Pipeline.IngestPaths(ctx, paths)
	fmt.Printf("Ingested %d documents (%d failed), index now holds %d passages\n",
		ok, failed, components.Pipeline.IndexSize())
	if failed > 0 {
		os.Exit(1)
	}
}

func runAsk() {
	fs := flag.NewFlagSet("ask", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	lang := fs.String("lang", "en", "response language (en, hi, mr)")
	jsonOut := fs.Bool("json", false, "output JSON instead of text")
	_ = fs.Parse(os.Args[2:])

	query := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if query == "" {
		fmt.Println("Usage: nyaysetu ask [flags] <question>")
		os.Exit(1)
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()
	components, err := initializeComponents(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer components.Close()

	answer := components.Assistant.AnswerQuery(ctx, query, *lang, "")
	format := cli.OutputText
	if *jsonOut {
		format = cli.OutputJSON
	}
	if err := cli.WriteAnswer(os.Stdout, answer, format); err != nil {
		logger.Fatal("Failed to write answer", zap.Error(err))
	}
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	_ = fs.Parse(os.Args[2:])

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	url := fmt.Sprintf("http://%s:%d/status", cfg.Server.Host, cfg.Server.Port)
	resp, err := http.Get(url)
	if err != nil {
		fmt.Printf("Server not reachable at %s: %v\n", url, err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Printf("Failed to read status: %v\n", err)
		os.Exit(1)
	}
	var pretty map[string]interface{}
	if err := json.Unmarshal(body, &pretty); err != nil {
		fmt.Println(string(body))
		return
	}
	out, _ := json.MarshalIndent(pretty, "", "  ")
	fmt.Println(string(out))
}

// collectDocumentPaths expands the given files and directories into a flat
// list of document paths with matching extensions.
func collectDocumentPaths(args []string, extensions []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d os.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			ext := strings.ToLower(filepath.Ext(path))
			for _, e := range extensions {
				if strings.EqualFold(e, ext) {
					paths = append(paths, path)
					break
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return paths, nil
}

func printUsage() {
	fmt.Println(`NyaySetu - retrieval-augmented legal assistance backend

Usage:
  nyaysetu server [-config path] [-debug]      Start the HTTP API server
  nyaysetu ingest [-config path] <path>...     Ingest legal documents into the index
  nyaysetu ask [-lang en|hi|mr] <question>     Answer a legal question from the CLI
  nyaysetu status [-config path]               Show server status
  nyaysetu version                             Print version`)
}
