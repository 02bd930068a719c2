package main

import (
	"github.com/spf13/cobra"

	"github.com/weiawesome/qa-service/internal/domain"
	"github.com/weiawesome/qa-service/pkg/database"
	pkglog "github.com/weiawesome/qa-service/pkg/log"
)

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create any missing tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, conn, err := openStore()
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.AutoMigrate(conn.DB(), domain.Models()...); err != nil {
			return err
		}
		l := pkglog.L()
		l.Info().Str(pkglog.FieldDriver, conn.Driver()).Msg("database migration completed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initDBCmd)
}
