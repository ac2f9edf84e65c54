package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/lepinkainen/storeview/internal/cache"
	"github.com/lepinkainen/storeview/internal/config"
	"github.com/lepinkainen/storeview/internal/csvutil"
	"github.com/lepinkainen/storeview/internal/fileutil"
	"github.com/lepinkainen/storeview/internal/render"
	"github.com/lepinkainen/storeview/internal/server"
	"github.com/lepinkainen/storeview/internal/service"
	"github.com/spf13/viper"
)

var stdout io.Writer = os.Stdout

var (
	newApp     = buildApp
	readAppIDs = csvutil.ReadAppIDs
	serveHTTP  = func(ctx context.Context, srv *server.Server, addr string) error {
		return srv.ListenAndServe(ctx, addr)
	}
)

// CLI represents the complete command structure for the storeview application
type CLI struct {
	// Global flags
	Debug    bool   `help:"Enable debug logging"`
	Config   string `help:"Path to a YAML config file (defaults to ./config.yaml when present)" type:"path" placeholder:"FILE"`
	Language string `help:"Store language, overrides store.language"`
	NoCache  bool   `help:"Bypass the response cache"`

	Show  ShowCmd  `cmd:"" help:"Show store entries as display items"`
	Serve ServeCmd `cmd:"" help:"Serve display items over HTTP"`
	Cache CacheCmd `cmd:"" help:"Manage the response cache"`
}

// ShowCmd represents the show command
type ShowCmd struct {
	AppIDs      []int  `arg:"" optional:"" name:"appid" help:"Steam app IDs to show"`
	Input       string `short:"i" help:"CSV file with an appid column to read app IDs from" type:"existingfile"`
	SkipInvalid bool   `help:"Skip CSV rows without a valid app ID"`
	Format      string `short:"f" help:"Output format: text, markdown, json or yaml" default:"text"`
	Concurrency int    `short:"c" help:"Maximum number of concurrent loads" default:"4"`
	OutputDir   string `short:"o" help:"Write one file per app into this directory instead of stdout" type:"path"`
	Overwrite   bool   `help:"Overwrite existing files in the output directory"`
}

// ServeCmd represents the serve command
type ServeCmd struct {
	Addr string `help:"Listen address, overrides server.addr"`
}

// CacheCmd represents the cache command and its subcommands
type CacheCmd struct {
	Clear CacheClearCmd `cmd:"" help:"Remove every cached store response"`
	Prune CachePruneCmd `cmd:"" help:"Remove cached store responses older than the cache TTL"`
}

// CacheClearCmd represents the cache clear command
type CacheClearCmd struct{}

// CachePruneCmd represents the cache prune command
type CachePruneCmd struct{}

func kongOptions() []kong.Option {
	return []kong.Option{
		kong.Name("storeview"),
		kong.Description("Fetch Steam store entries and turn them into display item lists."),
		kong.UsageOnError(),
	}
}

// Execute runs the Kong-based CLI
func Execute() {
	var cli CLI
	ctx := kong.Parse(&cli, kongOptions()...)

	initLogging(cli.Debug)

	if err := initConfig(cli.Config); err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	applyGlobalFlags(&cli)

	if err := ctx.Run(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig(path string) error {
	config.SetDefaults()

	viper.SetEnvPrefix("STOREVIEW")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			slog.Debug("Config file not found, using defaults")
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	slog.Debug("Loaded config file", "file", viper.ConfigFileUsed())
	return nil
}

func applyGlobalFlags(cli *CLI) {
	if cli.Language != "" {
		viper.Set("store.language", cli.Language)
	}
	if cli.NoCache {
		viper.Set("cache.enabled", false)
	}
}

// Run methods for each command

func (s *ShowCmd) Run() error {
	format, err := render.ParseFormat(s.Format)
	if err != nil {
		return err
	}

	appIDs, err := s.collectAppIDs()
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	outcomes := a.loader.LoadMany(context.Background(), appIDs, s.Concurrency)

	results := make([]*service.Result, 0, len(outcomes))
	failed := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failed++
			slog.Error("Unable to load store app", "appid", outcome.AppID, "error", outcome.Err)
			continue
		}
		results = append(results, outcome.Result)
	}

	if s.OutputDir != "" {
		if err := writeResultFiles(s.OutputDir, format, results, s.Overwrite); err != nil {
			return err
		}
	} else if err := render.Render(stdout, format, results); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d apps failed to load", failed, len(outcomes))
	}
	return nil
}

func (s *ShowCmd) collectAppIDs() ([]int, error) {
	appIDs := append([]int(nil), s.AppIDs...)
	if s.Input != "" {
		fromFile, err := readAppIDs(s.Input, s.SkipInvalid)
		if err != nil {
			return nil, err
		}
		appIDs = append(appIDs, fromFile...)
	}
	if len(appIDs) == 0 {
		return nil, fmt.Errorf("no app IDs given (pass them as arguments or via --input)")
	}
	return appIDs, nil
}

func writeResultFiles(dir string, format render.Format, results []*service.Result, overwrite bool) error {
	for _, result := range results {
		var buf bytes.Buffer
		if err := render.Render(&buf, format, []*service.Result{result}); err != nil {
			return err
		}

		path := fileutil.OutputPath(dir, result.AppID, result.Name, format.Extension())
		written, err := fileutil.WriteFileWithOverwrite(path, buf.Bytes(), 0644, overwrite)
		if err != nil {
			return err
		}
		if !written {
			slog.Info("File already exists, skipping", "appid", result.AppID, "file", path)
			continue
		}
		slog.Info("Wrote app", "appid", result.AppID, "file", path)
	}
	return nil
}

func (s *ServeCmd) Run() error {
	if s.Addr != "" {
		viper.Set("server.addr", s.Addr)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serveHTTP(ctx, server.New(a.loader), cfg.Server.Addr)
}

func (c *CacheClearCmd) Run() error {
	return withCache(func(db *cache.CacheDB, _ *config.Config) error {
		removed, err := db.ClearAll(cache.AppDetailsTable)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(stdout, "Removed %d cached responses from %s\n", removed, db.Path())
		return err
	})
}

func (c *CachePruneCmd) Run() error {
	return withCache(func(db *cache.CacheDB, cfg *config.Config) error {
		removed, err := db.ClearExpired(cache.AppDetailsTable, cfg.Cache.TTL)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(stdout, "Removed %d expired responses from %s\n", removed, db.Path())
		return err
	})
}

func withCache(fn func(*cache.CacheDB, *config.Config) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := cache.Open(cfg.Cache.DBFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Warn("Failed to close cache database", "error", err)
		}
	}()

	return fn(db, cfg)
}

func initLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	// Logs go to stderr so rendered output on stdout stays machine-readable.
	handler := humanlog.NewHandler(os.Stderr, &humanlog.Options{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
