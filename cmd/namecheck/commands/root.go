// Package commands implements the CLI commands for namecheck.
package commands

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/namecheck/cmd"
	"github.com/thoreinstein/namecheck/internal/config"
	"github.com/thoreinstein/namecheck/internal/errors"
	"github.com/thoreinstein/namecheck/internal/logging"
	"github.com/thoreinstein/namecheck/internal/platform"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./config.yaml or $XDG_CONFIG_HOME/namecheck/config.yaml)")

	registerCheckFlags(rootCmd)

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("namecheck version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "namecheck [handle...]",
	Short: "Check handle availability across platforms",
	Long: `namecheck reports whether a handle is free on GitHub, YouTube, Telegram,
Snapchat, Twitter, Instagram and Reddit.

Handles may be given as arguments or typed at the prompt as a
comma-separated list. Each handle is validated against the platform's
rules before any request is made; GitHub, YouTube, Telegram and Snapchat
are probed directly, the others through a batch lookup.

Statuses:
  ✅ Available        the handle appears free
  ❌ Taken            a profile exists
  ❓ Invalid Format   the platform would reject the handle
  ⚠️ Error (reason)   the check could not decide`,
	Example: `  # Prompt for handles
  namecheck

  # Check two handles on every platform
  namecheck alice,bob

  # Restrict to some platforms and emit JSON
  namecheck -p github,telegram --format json alice

  # Choose platforms interactively
  namecheck --pick alice

  See Also: namecheck platforms, namecheck validate, namecheck doctor`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		config.Init(versionString())
		return nil
	},
	// Positional arguments are handles, not subcommand names.
	Args: cobra.ArbitraryArgs,
	RunE: runCheck,
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("NAMECHECK_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	cfg := logging.Config{
		Level:  level,
		Format: logging.Format(logFormat),
		Output: cmd.ErrOrStderr(),
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "check the --log-file path")
		}
		cfg.File = f
	}

	logger := logging.New(cfg)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// loadConfig reads the configuration selected by --config.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, errors.NewConfigError(err)
	}
	return cfg, nil
}

// resolvePlatforms returns the platforms named by flag, or the configured
// set when the flag is empty.
func resolvePlatforms(cfg *config.Config, flag []string) ([]platform.ID, error) {
	if len(flag) == 0 {
		return cfg.PlatformIDs()
	}
	ids, err := platform.ParseAll(flag)
	if err != nil {
		return nil, errors.NewUserError(err, "Run: namecheck platforms")
	}
	platform.Sort(ids)
	return ids, nil
}

func versionString() string {
	return strings.TrimPrefix(cmd.Version, "v")
}

// Execute runs the root command under ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
