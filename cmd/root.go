package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/edinet-cli/internal/config"
	"github.com/sells-group/edinet-cli/internal/edinet"
	"github.com/sells-group/edinet-cli/internal/store"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "edinet-cli",
	Short: "EDINET disclosure document extraction",
	Long:  "Lists, downloads, and parses Japanese corporate disclosure documents from EDINET into typed reports.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func initClient() *edinet.Client {
	return edinet.NewClient(cfg.API)
}

func initStore(ctx context.Context) (*store.SQLiteStore, error) {
	st, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
