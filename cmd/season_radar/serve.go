package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jonathan/season-radar/internal/config"
	"github.com/jonathan/season-radar/internal/llm"
	"github.com/jonathan/season-radar/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes the search engine and the chat agent as
REST endpoints. Search and catalog metadata work without an API key; the chat
endpoint needs one.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runServe,
}

var (
	serveConfigPath string
	servePort       int
	serveData       string
	serveAPIKey     string
	serveModel      string
	serveSessionTTL int
	serveVerbose    bool
)

func init() {
	// Config file flag (processed first)
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080, or the PORT env var)")
	serveCmd.Flags().StringVar(&serveData, "data", "", "Path to a catalog JSON file (default: embedded catalog)")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Model name (optional, defaults to SEASON_RADAR_MODEL env var)")
	serveCmd.Flags().IntVar(&serveSessionTTL, "session-ttl", 0, "Idle chat session lifetime in minutes (default 30)")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Step 1: Load config file if provided
	var cfg config.Config
	if serveConfigPath != "" {
		loadedCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Validate loaded config
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if serveVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", serveConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("data") {
		cfg.Data = serveData
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = serveAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = serveModel
	}
	if cmd.Flags().Changed("session-ttl") {
		cfg.SessionTTLMinutes = serveSessionTTL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = serveVerbose
	}

	// Step 3: Environment fallbacks
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Port == 0 {
		if portEnv := os.Getenv("PORT"); portEnv != "" {
			port, err := strconv.Atoi(portEnv)
			if err != nil {
				return fmt.Errorf("invalid PORT environment variable: %w", err)
			}
			cfg.Port = port
		}
	}

	// Step 4: Apply defaults for unset values
	defaults := config.Config{
		Port:              8080,
		SessionTTLMinutes: 30,
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 5: Chat works only with a key; everything else still serves
	if cfg.APIKey == "" {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: no API key configured (GEMINI_API_KEY or --api-key); /api/chat will be disabled\n")
	}

	llmCfg := llm.ConfigFromEnv()
	if cfg.Model != "" {
		llmCfg = llmCfg.WithModel(cfg.Model)
	}
	if cfg.Temperature > 0 {
		llmCfg.Temperature = float32(cfg.Temperature)
	}
	if cfg.MaxOutputTokens > 0 {
		llmCfg.MaxOutputTokens = int32(cfg.MaxOutputTokens)
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		CatalogPath: cfg.Data,
		APIKey:      cfg.APIKey,
		LLMConfig:   llmCfg,
		SessionTTL:  time.Duration(cfg.SessionTTLMinutes) * time.Minute,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
