package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/statship/internal/cliconfig"
	"github.com/bft-labs/statship/internal/feed"
	"github.com/bft-labs/statship/pkg/log"
	"github.com/bft-labs/statship/pkg/state"
	"github.com/bft-labs/statship/pkg/statship"
)

const longHelp = `Pack StatsD counters, gauges and timers into UDP datagrams.

Metrics are formatted as name:value|type lines and grouped greedily so that
every datagram stays below the collector's capacity.`

var exampleUsage = strings.TrimSpace(`
  statship send api.requests 1
  statship send queue.depth 42 --type g --host statsd.internal
  statship tail --file /var/log/app/metrics.log --from-start
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "statship",
		Short:         "Ship StatsD metrics over UDP in size-bounded datagrams",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.statship/config.toml)")
	root.PersistentFlags().StringVar(&cfg.Host, "host", cfg.Host, "collector host")
	root.PersistentFlags().IntVar(&cfg.Port, "port", cfg.Port, "collector UDP port")
	root.PersistentFlags().IntVar(&cfg.Capacity, "capacity", cfg.Capacity, "datagram capacity in bytes (0: derive from socket buffer)")
	root.PersistentFlags().StringVar(&cfg.Unresolved, "unresolved", cfg.Unresolved, "what to do when the host does not resolve: drop or fail")
	root.PersistentFlags().StringVar(&cfg.Kind, "type", cfg.Kind, "metric type: c, g or ms")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	root.AddCommand(newSendCommand(&cfg, &cfgPath), newTailCommand(&cfg, &cfgPath))

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "statship: %v\n", err)
		os.Exit(1)
	}
}

func newSendCommand(cfg *cliconfig.Config, cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "send NAME VALUE",
		Short: "Send one metric as a single datagram",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := loadConfig(cmd, cfg, *cfgPath)
			if err != nil {
				return err
			}
			kind, err := statship.ParseKind(cfg.Kind)
			if err != nil {
				return err
			}

			client, err := newClient(*cfg, logger)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := client.Connect(ctx); err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			if err := client.Send(args[0], args[1], kind); err != nil {
				return errors.Join(err, client.Close(ctx))
			}
			return client.Close(ctx)
		},
	}
}

func newTailCommand(cfg *cliconfig.Config, cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Follow a file of metric lines and ship every appended chunk",
		Long: strings.TrimSpace(`
Follow a text file and ship each appended line. Lines are either StatsD lines
(name:value|type) or whitespace separated "name value [type]"; lines without a
type use --type. Blank lines and lines starting with # are skipped.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := loadConfig(cmd, cfg, *cfgPath)
			if err != nil {
				return err
			}
			if cfg.File == "" {
				return fmt.Errorf("%w: --file is required", statship.ErrInvalidConfig)
			}
			kind, err := statship.ParseKind(cfg.Kind)
			if err != nil {
				return err
			}

			client, err := newClient(*cfg, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := client.Connect(ctx); err != nil {
				return fmt.Errorf("connect: %w", err)
			}

			feedCfg := feed.Config{
				Path:         cfg.File,
				DefaultKind:  kind,
				FromStart:    cfg.FromStart,
				WaitTimeout:  cfg.WaitTimeout,
				PollInterval: cfg.PollInterval,
			}
			if cfg.StateDir != "" {
				path, err := filepath.Abs(cfg.File)
				if err != nil {
					return err
				}
				feedCfg.Store = state.NewFileRepository(cfg.StateDir, path)
			}
			tailer := feed.New(feedCfg, client, logger)

			runErr := tailer.Run(ctx)
			if errors.Is(runErr, context.Canceled) {
				logger.Info("received signal, stopping...")
				runErr = nil
			}

			// ctx is already canceled here; the final flush must not be.
			return errors.Join(runErr, client.Close(context.Background()))
		},
	}

	cmd.Flags().StringVar(&cfg.File, "file", cfg.File, "metrics file to follow")
	cmd.Flags().BoolVar(&cfg.FromStart, "from-start", cfg.FromStart, "ship the existing content before following")
	cmd.Flags().DurationVar(&cfg.WaitTimeout, "wait-timeout", cfg.WaitTimeout, "how long to wait for the file to appear (0: forever)")
	cmd.Flags().StringVar(&cfg.StateDir, "state-dir", cfg.StateDir, "directory for the resume cursor (empty: do not persist)")
	cmd.Flags().DurationVar(&cfg.PollInterval, "poll", cfg.PollInterval, "first retry delay while waiting for the file")
	return cmd
}

// loadConfig applies file and environment configuration below the flags that
// were set explicitly, validates the result and builds the logger.
func loadConfig(cmd *cobra.Command, cfg *cliconfig.Config, cfgPath string) (log.Logger, error) {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return nil, err
		}
	}

	// STATSHIP_* override the file but not explicit flags.
	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := cliconfig.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger.Debug("configuration",
		log.String("host", cfg.Host),
		log.Int("port", cfg.Port),
		log.Int("capacity", cfg.Capacity),
		log.String("unresolved", cfg.Unresolved),
		log.String("type", cfg.Kind),
	)
	return logger, nil
}

func newClient(cfg cliconfig.Config, logger log.Logger) (*statship.Client, error) {
	policy, err := statship.ParseUnresolvedPolicy(cfg.Unresolved)
	if err != nil {
		return nil, err
	}

	client, err := statship.New(statship.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Capacity: cfg.Capacity,
	},
		statship.WithLogger(logger),
		statship.WithUnresolvedPolicy(policy),
		statship.WithEventHandler(&logHandler{logger: logger}),
	)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return client, nil
}

// logHandler reports flushes and failed datagrams through the CLI logger.
type logHandler struct {
	statship.BaseEventHandler
	logger log.Logger
}

func (h *logHandler) OnFlush(e statship.FlushEvent) {
	h.logger.Debug("flushed",
		log.Int("datagrams", e.Datagrams),
		log.Int("bytes", e.BytesSent),
		log.Duration("took", e.Duration),
	)
}

func (h *logHandler) OnSendError(e statship.SendErrorEvent) {
	h.logger.Warn("datagram not sent", log.Int("bytes", e.Bytes), log.Err(e.Error))
}
