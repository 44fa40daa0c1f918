package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"diet-recommender/cmd/bootstrap"
	"diet-recommender/config"
	"diet-recommender/internal/artifact"
	"diet-recommender/internal/converter"
	"diet-recommender/internal/infrastructure/database"
	"diet-recommender/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var envFile string

	loadConfig := func() (*config.Config, error) {
		cfg, err := config.LoadConfigFrom(envFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve diet recommendations over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			// Initialize application with all dependencies
			app, err := bootstrap.New(cfg)
			if err != nil {
				logrus.Fatalf("Failed to initialize application: %v", err)
			}

			// Run the application
			app.Run()
			return nil
		},
	}

	root := &cobra.Command{
		Use:           "diet-recommender",
		Short:         "Personalized diet plan recommendations from patient metrics",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to read before the environment")

	root.AddCommand(serve, newArtifactsCommand(loadConfig))
	return root
}

func newArtifactsCommand(loadConfig func() (*config.Config, error)) *cobra.Command {
	artifacts := &cobra.Command{
		Use:   "artifacts",
		Short: "Manage the feature schema and label vocabulary",
	}

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Copy the schema and labels from files into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := bootstrap.SetupLogger(cfg.App.LogLevel)

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			a, err := artifact.NewFileSource(cfg.Model.ColumnsPath, cfg.Model.LabelsPath).Load(ctx)
			if err != nil {
				return err
			}

			db, err := database.NewConnection(cfg.DB)
			if err != nil {
				return err
			}
			defer bootstrap.CloseDB(db)

			return artifact.Import(ctx, db, log, repository.NewArtifactRepository(), a)
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Load the model and report schema gaps",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := bootstrap.SetupLogger(cfg.App.LogLevel)

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			model, err := bootstrap.BuildModelContext(ctx, cfg, log)
			if err != nil {
				return err
			}

			encoder := model.Encoder()
			info := converter.ModelInfoToResponse(encoder.Columns(), model.Labels(), encoder.Report())
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	artifacts.AddCommand(importCmd, checkCmd)
	return artifacts
}
