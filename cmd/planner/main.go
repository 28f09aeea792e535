package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"shift-planner/internal/config"
	"shift-planner/internal/kv"
	"shift-planner/internal/session"
	"shift-planner/internal/store"
)

// app holds the wiring shared by every command. The backing store is opened
// before a command runs and closed after it finishes.
type app struct {
	logger  *logrus.Logger
	backing kv.Store
	store   *store.Store
	session *session.Context
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cfg := config.Get()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	a := &app{logger: logger}

	var dbPath string
	root := &cobra.Command{
		Use:           "planner",
		Short:         "Shift planner for security staffing",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dbPath, "db", cfg.DatabaseURL, "path to the sqlite backing store")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		backing, err := kv.NewGormStore(dbPath)
		if err != nil {
			return fmt.Errorf("open backing store: %w", err)
		}
		a.backing = backing
		a.store = store.New(backing, logger)
		a.session = session.New(a.store, logger)
		return nil
	}
	root.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if a.backing == nil {
			return
		}
		if err := a.backing.Close(); err != nil {
			logger.WithError(err).Warn("closing backing store")
		}
	}

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newUsersCmd(a),
		newWorkersCmd(a),
		newShiftsCmd(a),
		newAbsencesCmd(a),
		newResetCmd(a),
	)

	if err := root.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
