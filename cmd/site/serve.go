package main

import (
	"context"
	"os/signal"
	"syscall"

	"agencysite/internal/content"
	"agencysite/internal/logging"
	"agencysite/internal/server"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := logging.New(appConfig.Log.Level, appConfig.Log.Format)
		if err != nil {
			return err
		}

		catalog, err := loadCatalog(appConfig.ContentPath)
		if err != nil {
			return err
		}

		fields := logrus.Fields{"source": appConfig.ContentPath}
		if appConfig.ContentPath == "" {
			fields["source"] = "embedded"
		}
		for _, kind := range content.Kinds {
			fields[string(kind)] = catalog.Len(kind)
		}
		logger.WithFields(fields).Info("content loaded")
		for _, f := range content.Audit(catalog) {
			logger.WithFields(logrus.Fields{"kind": f.Kind, "id": f.ID}).Warn(f.Message)
		}

		srv, err := server.New(appConfig, catalog, logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx)
	},
}
