package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/namecheck/internal/config"
	"github.com/thoreinstein/namecheck/internal/editor"
	"github.com/thoreinstein/namecheck/internal/errors"
	"github.com/thoreinstein/namecheck/internal/paths"
	"github.com/thoreinstein/namecheck/pkg/fileutil"
)

var (
	configListFormat string
	configInitForce  bool
)

func init() {
	configListCmd.Flags().StringVarP(&configListFormat, "format", "f", "yaml",
		"output format: yaml, toml, json")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false,
		"overwrite an existing config file")
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect namecheck configuration",
	Long: `Inspect the effective namecheck configuration.

Values come from the config file, NAMECHECK_* environment variables and
built-in defaults, in that order of precedence after flags. Without a
subcommand, lists all configuration values.`,
	Example: `  # List all configuration
  namecheck config

  # Get a specific value
  namecheck config get timeout

  # Override a value from the environment
  NAMECHECK_DELEGATED_ENABLED=false namecheck config get delegated.enabled

See Also: namecheck doctor`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a single configuration value by key.

Supports dot notation for nested keys. Array values are printed one per line.`,
	Example: `  namecheck config get delegated.concurrency
  namecheck config get platforms

See Also: namecheck config list`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration",
	Long:  `List all configuration values in YAML, TOML or JSON format.`,
	Example: `  namecheck config list
  namecheck config list --format toml

See Also: namecheck config get`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use",
	Long: `Print the config file that was read, or the default location when no
file was found.`,
	Args: cobra.NoArgs,
	RunE: runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Long: `Write the built-in defaults to the config file named by --config, or to
$XDG_CONFIG_HOME/namecheck/config.yaml.

An existing file is left alone unless --force is given.`,
	Example: `  namecheck config init
  namecheck config init --config ./config.yaml --force

See Also: namecheck config edit`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $EDITOR",
	Long: `Open the config file in your editor.

Uses $EDITOR, then $VISUAL, then nano or vi. Run 'namecheck config init'
first if no file exists.`,
	Example: `  EDITOR=nano namecheck config edit

See Also: namecheck config init, namecheck doctor`,
	Args: cobra.NoArgs,
	RunE: runConfigEdit,
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if err := readConfigFile(); err != nil {
		return err
	}

	key := args[0]
	out := cmd.OutOrStdout()
	if !viper.IsSet(key) {
		fmt.Fprintln(out, "not set")
		return nil
	}

	switch v := viper.Get(key).(type) {
	case []any:
		for _, item := range v {
			fmt.Fprintln(out, item)
		}
	case []string:
		for _, item := range v {
			fmt.Fprintln(out, item)
		}
	case map[string]any:
		data, err := yaml.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "marshaling value")
		}
		fmt.Fprint(out, string(data))
	default:
		fmt.Fprintln(out, viper.GetString(key))
	}
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	if err := readConfigFile(); err != nil {
		return err
	}

	settings := viper.AllSettings()

	var (
		data []byte
		err  error
	)
	switch configListFormat {
	case "yaml", "":
		data, err = yaml.Marshal(settings)
	case "toml":
		data, err = toml.Marshal(settings)
	case "json":
		data, err = json.MarshalIndent(settings, "", "  ")
		data = append(data, '\n')
	default:
		return errors.NewUserError(errors.Newf("unknown format %q", configListFormat), "use yaml, toml or json")
	}
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if err := readConfigFile(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintln(out, used)
		return nil
	}
	fmt.Fprintf(out, "%s (not found, using defaults)\n", paths.ConfigFile())
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := targetConfigFile()
	if _, err := os.Stat(path); err == nil && !configInitForce {
		return errors.NewUserError(errors.Newf("config file %s already exists", path), "pass --force to overwrite it")
	}

	if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
		return errors.NewSystemError(err, "")
	}
	doc := config.Document(config.Defaults(versionString()))
	if err := fileutil.AtomicWriteYAML(path, doc, 0o600); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "writing config file"), "")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigEdit(cmd *cobra.Command, _ []string) error {
	path := targetConfigFile()
	if _, err := os.Stat(path); err != nil {
		return errors.NewUserError(errors.Wrapf(errors.ErrNotFound, "config file %s", path), "Run: namecheck config init")
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Location: %s\n", path)
	e := &editor.Editor{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
	if err := e.Open(path); err != nil {
		return errors.NewSystemError(err, "set $EDITOR to a working editor")
	}
	return nil
}

// targetConfigFile is the file written by init and opened by edit.
func targetConfigFile() string {
	if configFile != "" {
		return configFile
	}
	return paths.ConfigFile()
}

// readConfigFile loads the config file without validating it, so broken
// values can still be inspected.
func readConfigFile() error {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && configFile == "" {
			return nil
		}
		return errors.NewConfigError(errors.Wrap(err, "reading config file"))
	}
	return nil
}
