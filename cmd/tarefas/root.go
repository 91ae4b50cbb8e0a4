package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"tarefas/internal/config"
	"tarefas/internal/idgen"
	"tarefas/internal/logging"
	"tarefas/internal/todo"
	"tarefas/internal/ui"
)

var version = "dev"

type rootOptions struct {
	configPath string
	debug      bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "tarefas",
		Short: "A terminal to-do list",
		Long: `tarefas keeps a to-do list for the lifetime of one terminal session.

Type a task and press enter to create it. Press tab to move to the list,
space to mark a task done and d to delete it. Nothing is saved to disk;
the config file only holds key bindings and input settings.

CONFIGURATION:
  TAREFAS_CONFIG   config file path (default: <user config dir>/tarefas/config.toml)
  TAREFAS_DEBUG    write debug.log next to the config file`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return run(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", config.ResolveConfigPath(), "config file path")
	cmd.Flags().BoolVar(&opts.debug, "debug", logging.EnvEnabled(), "write debug.log next to the config file")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "tarefas", version)
		},
	})

	return cmd
}

func run(opts *rootOptions) error {
	if opts.debug {
		closer, err := logging.Setup(filepath.Dir(opts.configPath))
		if err != nil {
			return fmt.Errorf("set up debug log: %w", err)
		}
		defer closer.Close()
	}

	cfg, err := config.LoadOrCreate(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logging.Debugf("config loaded from %s", opts.configPath)

	if err := ui.Run(cfg, todo.New(idgen.UUID{})); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
