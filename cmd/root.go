package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/weiawesome/qa-service/internal/config"
	"github.com/weiawesome/qa-service/pkg/database"
	pkglog "github.com/weiawesome/qa-service/pkg/log"
)

const serviceName = "qa-service"

var (
	configDir string
	cfg       *config.Config
)

var rootCmd = &cobra.Command{
	Use:          serviceName,
	Short:        "Questions, replies, follows and likes over a relational store",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadFrom(configDir)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded

		pkglog.Init(pkglog.Config{
			Level:       cfg.Log.Level,
			Pretty:      cfg.Log.Pretty,
			ServiceName: serviceName,
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", "./config", "Directory holding config.yaml")
}

// openStore connects to the configured database and wraps it in a Conn.
func openStore() (*gorm.DB, *database.Conn, error) {
	logger := pkglog.L()

	db, err := database.New(cfg.DatabaseConfig())
	if err != nil {
		return nil, nil, err
	}
	conn := database.NewConn(db, cfg.Database.Driver, logger)
	logger.Info().Str(pkglog.FieldDriver, conn.Driver()).Msg("database connected")

	return db, conn, nil
}
