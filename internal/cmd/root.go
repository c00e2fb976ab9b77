// Package cmd provides the command-line interface for sitecat.
// It handles flag parsing, configuration loading, and crawl execution.
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"sitecat/internal/config"
	"sitecat/internal/crawler"
	"sitecat/internal/logging"
	"sitecat/internal/storage"
	"sitecat/internal/writer"
)

var (
	cfgFile   string
	version   string
	buildTime string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sitecat <url>",
	Short: "Aggregate a website's text into a single document",
	Long: `Sitecat fetches a starting page, follows links on the same host
breadth-first, extracts the readable text of every page, and concatenates
everything into one plain-text document. The result is meant to be fed to
summarization tools that accept only single-document input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCrawl,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets version information for the CLI.
func SetVersionInfo(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./sitecat.yml)")

	rootCmd.Flags().Bool("show-config", false, "Display current configuration in YAML format and exit")

	rootCmd.Flags().StringP("output", "o", "crawled_text.txt", "Output document path")
	rootCmd.Flags().Float64P("delay", "d", 1.0, "Delay between requests in seconds")
	rootCmd.Flags().DurationP("timeout", "t", 10*time.Second, "HTTP request timeout")
	rootCmd.Flags().StringP("user-agent", "u", "sitecat/1.0", "HTTP User-Agent header")
	rootCmd.Flags().IntP("max-pages", "l", 0, "Stop after N pages (0=unlimited)")
	rootCmd.Flags().StringSlice("include-patterns", []string{}, "Regex patterns for URLs to include")
	rootCmd.Flags().StringSlice("exclude-patterns", []string{}, "Regex patterns for URLs to exclude")
	rootCmd.Flags().String("db", "", "Optional SQLite crawl-index path (empty=disabled)")
	rootCmd.Flags().String("log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.Flags().String("log-file", "", "Optional log file path (rotated by size)")

	bindFlags := []struct {
		viperKey string
		flagName string
	}{
		{"output_path", "output"},
		{"request_delay", "delay"},
		{"request_timeout", "timeout"},
		{"user_agent", "user-agent"},
		{"max_pages", "max-pages"},
		{"include_patterns", "include-patterns"},
		{"exclude_patterns", "exclude-patterns"},
		{"database_path", "db"},
		{"log_level", "log-level"},
		{"log_file", "log-file"},
	}

	for _, bind := range bindFlags {
		if err := viper.BindPFlag(bind.viperKey, rootCmd.Flags().Lookup(bind.flagName)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to bind flag %s: %v\n", bind.flagName, err)
		}
	}
}

// initConfig reads in config file and environment variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("sitecat")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SITECAT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

func generateUserAgent() string {
	if version != "" && version != "dev" {
		return fmt.Sprintf("sitecat/%s", version)
	}
	return "sitecat/dev"
}

func showCurrentConfig(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: configuration validation failed: %v\n", err)
		fmt.Fprintf(os.Stderr, "Displaying configuration anyway...\n\n")
	}

	yamlData, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration to YAML: %w", err)
	}

	fmt.Printf("# Current sitecat configuration\n")
	fmt.Printf("# Generated at: %s\n", time.Now().Format(time.RFC3339))
	fmt.Printf("# Configuration file search paths: ./sitecat.yml\n")
	fmt.Printf("# Environment variables prefix: SITECAT_\n\n")
	fmt.Print(string(yamlData))

	return nil
}

func runCrawl(cmd *cobra.Command, args []string) error {
	showConfig, _ := cmd.Flags().GetBool("show-config")

	cfg := config.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if len(args) > 0 {
		cfg.StartURL = args[0]
	}

	// Stamp the User-Agent with the build version unless explicitly set.
	if !cmd.Flags().Changed("user-agent") && cfg.UserAgent == "sitecat/1.0" {
		cfg.UserAgent = generateUserAgent()
	}

	if showConfig {
		return showCurrentConfig(cfg)
	}

	// Startup errors abort before any fetching and exit non-zero.
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logOpts := logging.DefaultOptions()
	logOpts.Level = logging.ParseLevel(cfg.LogLevel)
	logOpts.FilePath = cfg.LogFile
	if err := logging.SetDefault(logOpts); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}

	doc, err := writer.New(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("cannot open output document: %w", err)
	}
	defer func() { _ = doc.Close() }()

	var index crawler.Index
	if cfg.DatabasePath != "" {
		ix, err := storage.Open(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("cannot open crawl index: %w", err)
		}
		defer func() { _ = ix.Close() }()
		index = ix
	}

	ctrl, err := crawler.New(cfg, doc, index)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	stats, err := ctrl.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Crawling completed. Visited %d pages, wrote %d blocks to %s (%d errors, %v).\n",
		stats.PagesVisited, stats.BlocksWritten, cfg.OutputPath,
		stats.ErrorCount, stats.Duration.Round(time.Millisecond))

	return nil
}
