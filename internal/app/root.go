package app

import (
	"fmt"
	"io"
	"os"

	"github.com/blackwell-systems/reelctl/internal/config"
	"github.com/blackwell-systems/reelctl/internal/logging"
	"github.com/blackwell-systems/reelctl/internal/tmdb"
	"github.com/blackwell-systems/reelctl/internal/tui"
	"github.com/blackwell-systems/reelctl/internal/util"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfg       *config.Config
	client    *tmdb.Client
	logger    = zerolog.Nop()
	logCloser io.Closer

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
	flagLogLevel      string
)

var rootCmd = &cobra.Command{
	Use:   "reelctl",
	Short: "Browse and search a movie catalog from the terminal",
	Long: `reelctl browses the movies now playing and searches a TMDB-compatible
catalog.

Run 'reelctl' with no arguments to open the interactive browser: type to
search, enter to open a movie, esc to go back.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tui.ShouldUseTUI(cmd) {
			if err := requireClient(); err != nil {
				return err
			}
			return runBrowser()
		}
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	err := rootCmd.Execute()
	if logCloser != nil {
		_ = logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/reelctl/config.yml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Override logging.level (debug, info, warn, error)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			// config init must work even when the existing file is broken.
			if cmd.Name() != "init" {
				return fmt.Errorf("loading config: %w", err)
			}
			cfg = config.Default()
		}
		if flagLogLevel != "" {
			cfg.Logging.Level = flagLogLevel
			if err := config.Validate(cfg); err != nil {
				return err
			}
		}

		logger, logCloser, err = logging.New(cfg.Logging)
		if err != nil {
			return fmt.Errorf("opening log: %w", err)
		}
		logger.Debug().Str("command", cmd.CommandPath()).Msg("starting")

		if cfg.HasAPIKey() {
			client = newClient(cfg)
		}
		return nil
	}

	rootCmd.AddCommand(
		newBrowseCmd(),
		newSearchCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
}

func newClient(c *config.Config) *tmdb.Client {
	return tmdb.New(c.TMDB.APIKey, c.TMDB.APIBase,
		tmdb.WithImageBase(c.TMDB.ImageBase),
		tmdb.WithTimeout(c.TMDB.Timeout),
		tmdb.WithLogger(logger),
	)
}

// requireClient fails commands that talk to the catalog when no key is set.
func requireClient() error {
	if client != nil {
		return nil
	}
	keyEnv := "TMDB_API_KEY"
	if cfg != nil && cfg.TMDB.APIKeyEnv != "" {
		keyEnv = cfg.TMDB.APIKeyEnv
	}
	return fmt.Errorf("no TMDB API key found: set %s or REELCTL_TMDB_API_KEY, or tmdb.api_key in %s",
		keyEnv, config.ResolvePath(flagConfig))
}

// ok prints a green success line.
func ok(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, color.CyanString(fmt.Sprintf(format, a...)))
}
