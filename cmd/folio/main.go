package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"folio/internal/config"
	"folio/internal/content"
	"folio/internal/logging"
	"folio/internal/trace"
	"folio/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

var (
	// Global flags
	configPath  string
	contentPath string
	startPath   string
	noIntro     bool
	watch       bool
	verbose     bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "folio - a terminal portfolio",
	Long: `folio renders a personal portfolio site in the terminal.

Pages are addressed by path (see "folio routes"). The "beyond the code" section
is a stack of cards: h/l move through it, enter opens the front card.
Press SPC to see the leader menu, q to quit.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotenv(".env"); err != nil {
			return err
		}
		var err error
		cfg, err = loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err = logging.New(logging.Options{
			File:    cfg.Log.File,
			Level:   cfg.Log.Level,
			Verbose: verbose,
		})
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI(cmd.Context())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the folio version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "folio", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.config/folio/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "Content YAML overriding the built-in portfolio")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&startPath, "start", "", "Path of the first page, e.g. /beyond/overview")
	rootCmd.Flags().BoolVar(&noIntro, "no-intro", false, "Skip the charge-up intro")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "Reload the content file when it changes")

	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(cardsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and lets explicitly set flags win over it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	c, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("content") {
		c.Content = contentPath
	}
	if flags.Lookup("start") != nil && flags.Changed("start") {
		c.Start = startPath
	}
	if flags.Lookup("no-intro") != nil && flags.Changed("no-intro") {
		c.NoIntro = noIntro
	}
	if flags.Lookup("watch") != nil && flags.Changed("watch") {
		c.Watch = watch
	}
	return c, nil
}

func runUI(ctx context.Context) error {
	tracer, err := trace.New(ctx, trace.Options{
		Endpoint:    cfg.Trace.Endpoint,
		ServiceName: cfg.Trace.ServiceName,
	})
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := tracer.Shutdown(sctx); err != nil {
			logger.Warn("trace shutdown", zap.Error(err))
		}
	}()

	store, err := content.NewStore(cfg.Content)
	if err != nil {
		return err
	}
	c, err := store.Load()
	if err != nil {
		return err
	}
	logger.Info("starting",
		zap.String("version", version),
		zap.String("start", cfg.Start),
		zap.String("content", store.Path()),
		zap.String("easing", cfg.Easing),
		zap.Bool("tracing", tracer.Enabled()))

	app := ui.NewApp(ui.Options{
		Config:  cfg,
		Content: c,
		Logger:  logger,
		Tracer:  tracer,
	})
	p := tea.NewProgram(app.AsTeaModel(),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx))

	wctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if cfg.Watch {
		go func() {
			err := store.Watch(wctx, logger, func(c *content.Content, err error) {
				p.Send(ui.ContentReloadedMsg{Content: c, Err: err})
			})
			if errors.Is(err, content.ErrNoFile) {
				logger.Info("watch disabled: serving built-in content")
				return
			}
			if err != nil {
				logger.Warn("content watch stopped", zap.Error(err))
			}
		}()
	}

	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
