package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"icolleague/internal/config"
	"icolleague/internal/db"
	"icolleague/internal/logger"
	"icolleague/internal/status"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "portalctl",
		Short:         "iColleague portal tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newAskCmd(),
		newFormatCmd(),
		newKnowledgeCmd(),
		newMigrateCmd(),
		newSeedCmd(),
	)
	return root
}

func newAskCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a question from the knowledge base",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kb, err := config.Load().KnowledgeBase()
			if err != nil {
				return fmt.Errorf("load knowledge base: %w", err)
			}
			answer := kb.Lookup(strings.Join(args, " "))
			if verbose {
				keyword := answer.Keyword
				if !answer.Matched {
					keyword = "(fallback)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] ", keyword)
			}
			fmt.Fprintln(cmd.OutOrStdout(), answer.Response)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show the matched keyword")
	return cmd
}

func newFormatCmd() *cobra.Command {
	var user string
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Format rough notes from stdin as a daily status update",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read notes: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), status.Format(string(raw), user))
			return nil
		},
	}
	cmd.Flags().StringVarP(&user, "user", "u", "", "name shown in the header")
	return cmd
}

func newKnowledgeCmd() *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "knowledge",
		Short: "Print the knowledge base in match order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kb, err := config.Load().KnowledgeBase()
			if err != nil {
				return fmt.Errorf("load knowledge base: %w", err)
			}
			out := cmd.OutOrStdout()

			if asYAML {
				enc := yaml.NewEncoder(out)
				defer enc.Close()
				return enc.Encode(config.KnowledgeConfig{
					Fallback: kb.Fallback(),
					Policy:   string(kb.Policy()),
					Entries:  kb.Entries(),
				})
			}

			fmt.Fprintf(out, "policy: %s\n", kb.Policy())
			for i, e := range kb.Entries() {
				fmt.Fprintf(out, "%2d. %-14s %s\n", i+1, e.Keyword, e.Response)
			}
			fmt.Fprintf(out, "fallback: %s\n", kb.Fallback())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print as a knowledge file")
	return cmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample employee directory into an empty database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			log := logger.New(cfg.LogLevel, cfg.LogFormat)
			defer func() { _ = log.Sync() }()

			database, err := db.New(cmd.Context(), cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer database.Close()

			n, err := database.SeedEmployees(cmd.Context())
			if err != nil {
				return fmt.Errorf("seed employees: %w", err)
			}
			log.Info("seed finished", zap.Int("inserted", n))
			fmt.Fprintf(cmd.OutOrStdout(), "%d employees inserted\n", n)
			return nil
		},
	}
}
