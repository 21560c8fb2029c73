package main

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-tracker/internal/config"
	"github.com/carson-networks/budget-tracker/internal/storage/sqlconfig"
)

func main() {
	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	if env.Storage.Backend != config.StorageBackendSQLite {
		logrus.WithField("backend", env.Storage.Backend).Info("Nothing to migrate")
		return
	}

	preMigrationVersion, postMigrationVersion, err := sqlconfig.Migrate(env.Storage.SQLitePath)
	if err != nil {
		logrus.WithError(err).WithField("path", env.Storage.SQLitePath).Fatal("sqlconfig.Migrate")
		return
	}

	logrus.WithFields(logrus.Fields{
		"path":                 env.Storage.SQLitePath,
		"preMigrationVersion":  preMigrationVersion,
		"postMigrationVersion": postMigrationVersion,
	}).Info("Migration status")
}
