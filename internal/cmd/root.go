package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cheerioskun/regexninja/internal/analyzer"
	"github.com/cheerioskun/regexninja/internal/config"
	"github.com/cheerioskun/regexninja/internal/session"
	"github.com/cheerioskun/regexninja/internal/utils"
)

var (
	cfgFile string

	// appConfig is resolved before every command runs
	appConfig *config.Config

	// appFs backs every file the CLI reads or writes
	appFs afero.Fs = afero.NewOsFs()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "regexninja",
	Short: "Test, explain and visualize regular expressions",
	Long: `RegexNinja is a regular expression tester.

It validates a pattern, explains its syntax in plain language, generates an
example string the pattern accepts, tests a subject string against it and
links to a railroad diagram. Use it one pattern at a time, in batch from a
YAML case file, or interactively in the terminal UI.

Examples:
  regexninja check '^[a-z]+@[a-z]+\.com$' user@example.com
  regexninja explain '^\d+$'
  regexninja batch cases.yaml --report report.json
  regexninja tui`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	utils.GetLogger().Close()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.regexninja.yaml)")
	rootCmd.PersistentFlags().String("engine", analyzer.EngineGo, "regex engine: "+strings.Join(analyzer.EngineNames(), ", "))
	rootCmd.PersistentFlags().Int("repeat-limit", analyzer.DefaultRepeatLimit, "extra repetitions allowed for unbounded quantifiers in examples")
	rootCmd.PersistentFlags().Bool("sanitize", false, "strip disallowed characters from patterns and tags from subjects")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().String("log-file", "", "log file path (default is $TMPDIR/regexninja.log)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")

	// Bind flags to viper
	viper.BindPFlag(config.KeyEngine, rootCmd.PersistentFlags().Lookup("engine"))
	viper.BindPFlag(config.KeyRepeatLimit, rootCmd.PersistentFlags().Lookup("repeat-limit"))
	viper.BindPFlag(config.KeySanitize, rootCmd.PersistentFlags().Lookup("sanitize"))
	viper.BindPFlag(config.KeyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag(config.KeyLogFile, rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))

	config.SetDefaults(viper.GetViper())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".regexninja")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// loadConfig resolves settings and points the logger at the configured file
func loadConfig(cmd *cobra.Command, args []string) error {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if cfg.Verbose {
		level = "debug"
	}
	if err := utils.Init(cfg.LogFile, level); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	if used := viper.ConfigFileUsed(); used != "" {
		utils.Debug("using config file %s", used)
	}

	appConfig = cfg
	return nil
}

// newSession builds a session from the resolved configuration
func newSession() (*session.Session, error) {
	cfg := appConfig
	if cfg == nil {
		return nil, errors.New("configuration not loaded")
	}
	opts, err := cfg.AnalyzerOptions()
	if err != nil {
		return nil, err
	}
	return session.New(analyzer.New(opts...), session.WithSanitize(cfg.Sanitize)), nil
}
