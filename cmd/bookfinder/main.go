// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bookfinder CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bookfinder/internal/catalog"
	"github.com/pdiddy/bookfinder/internal/logging"
	"github.com/pdiddy/bookfinder/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Set by the root command before any subcommand runs.
var (
	logger *logrus.Logger
	books  *catalog.Catalog
)

// rootCmd is the base command for the bookfinder CLI.
var rootCmd = &cobra.Command{
	Use:   "bookfinder",
	Short: "Look up books by author or title",
	Long: `bookfinder fills in a book form from a small catalog. Give it an author
or a title; the first catalog record whose author or title matches exactly
fills in author, title, and description. When nothing matches, the
description reads "Book Not Found".

The built-in catalog can be replaced with a YAML file via --catalog.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return setup(cfg, os.Stderr)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./bookfinder.yaml or ~/.config/bookfinder/config.yaml)")
	rootCmd.PersistentFlags().String("catalog", "", "YAML catalog file (default: built-in catalog)")
	rootCmd.PersistentFlags().String("log-level", logging.DefaultLevel, "log level: debug, info, warn, error")

	_ = viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bookfinder")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bookfinder"))
		}
	}

	viper.SetEnvPrefix("BOOKFINDER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func loadConfig() (types.FinderConfig, error) {
	var cfg types.FinderConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg, nil
}

// setup builds the logger and loads the catalog named by cfg.
func setup(cfg types.FinderConfig, logOut io.Writer) error {
	l, err := logging.New(cfg.LogLevel, logOut)
	if err != nil {
		return err
	}
	logger = l

	if cfg.CatalogFile == "" {
		books = catalog.Default()
		logger.WithField("books", books.Len()).Debug("using built-in catalog")
		return nil
	}

	c, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return err
	}
	books = c
	logger.WithFields(logrus.Fields{
		"file":  cfg.CatalogFile,
		"books": books.Len(),
	}).Debug("catalog loaded")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
