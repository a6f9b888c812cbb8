package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studyroom/quizcore/internal/api"
	"github.com/studyroom/quizcore/internal/config"
	"github.com/studyroom/quizcore/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizcore",
	Short: "Daily quiz client",
	Long:  "Quizcore — terminal client for daily quiz sessions: plan lookup, play, resume and retry-wrong, with local progress history.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("base-url", "", "Backend base URL (overrides QUIZCORE_BASE_URL)")
	rootCmd.PersistentFlags().String("token", "", "Bearer token (overrides QUIZCORE_TOKEN)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZCORE_DB)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Trace requests to stderr")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig merges environment configuration with command-line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.FromEnv()
	if u, _ := cmd.Flags().GetString("base-url"); u != "" {
		cfg.BaseURL = u
	}
	if t, _ := cmd.Flags().GetString("token"); t != "" {
		cfg.Token = t
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	return cfg, cfg.Validate()
}

// newClient builds the backend client stack: HTTP transport, retry on
// transient failures, call tracing when verbose.
func newClient(cmd *cobra.Command, cfg config.Config) (api.Client, error) {
	token, err := cfg.ResolveToken()
	if err != nil {
		return nil, err
	}
	httpClient, err := api.NewHTTPClient(api.HTTPOptions{
		BaseURL: cfg.BaseURL,
		Tokens:  api.StaticToken(token),
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, err
	}

	logf := func(string, ...any) {}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		logf = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}
	httpClient.Logf = logf

	var client api.Client = api.WithRetry(httpClient, api.RetryConfig{
		MaxAttempts: cfg.Retry.MaxAttempts,
		InitialWait: cfg.Retry.InitialWait,
		MaxWait:     cfg.Retry.MaxWait,
		Multiplier:  cfg.Retry.Multiplier,
	})
	return api.WithLogging(client, logf), nil
}

// openStore opens the local database, creating its directory if needed.
func openStore(cfg config.Config) (*store.Store, error) {
	path := cfg.DBPath
	if path == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		path = p
	} else if err := store.EnsureDir(path); err != nil {
		return nil, err
	}
	return store.Open(path)
}

func verboseLogf(cmd *cobra.Command) func(format string, args ...any) {
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		return func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}
	return func(string, ...any) {}
}
