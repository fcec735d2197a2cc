package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/studiowebux/fa2en/internal/cli"
	"github.com/studiowebux/fa2en/internal/filter"
	"github.com/studiowebux/fa2en/internal/history"
	"github.com/studiowebux/fa2en/internal/keybinds"
	"github.com/studiowebux/fa2en/internal/keymap"
)

// Command flags
var (
	flagExportFormat string
	flagImportFormat string
	flagYes          bool
	flagLimit        int
	flagOverwrite    bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current mapping as a table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		editor, err := newEditor(cmd, history.SourceCLI)
		if err != nil {
			return err
		}
		return cli.Show(cmd.OutOrStdout(), editor.Mapping())
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the current mapping (raw, yaml or json)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		editor, err := newEditor(cmd, history.SourceCLI)
		if err != nil {
			return err
		}
		return cli.Export(cmd.OutOrStdout(), editor.Mapping(), flagExportFormat)
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the mapping with the content of a file and save it",
	Long: `Replace the mapping with the content of a raw or YAML file.

The format is taken from the file extension (.yaml/.yml) unless -f is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// A broken current file must not block replacing it
		editor, _ := newEditor(cmd, history.SourceCLI)
		m, err := cli.Import(editor, args[0], flagImportFormat)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries into %s\n", m.Len(), editor.Path())
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <persian> <english>",
	Short: "Set one mapping entry and save",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		editor, err := newEditor(cmd, history.SourceCLI)
		if err != nil {
			return err
		}
		if err := cli.Set(editor, args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s:%s saved\n", args[0], args[1])
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Write the default mapping to the configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		editor, _ := newEditor(cmd, history.SourceCLI)

		if !flagYes && cli.IsInteractive() {
			ok, err := cli.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
				fmt.Sprintf("Overwrite %s with the default mapping?", editor.Path()))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
		}

		m, err := cli.Reset(editor)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Default mapping (%d entries) written to %s\n", m.Len(), editor.Path())
		return nil
	},
}

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Show how the mapping differs from the default",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		editor, err := newEditor(cmd, history.SourceCLI)
		if err != nil {
			return err
		}
		return cli.Diff(cmd.OutOrStdout(), editor.DefaultMapping(), editor.Mapping())
	},
}

var queryCmd = &cobra.Command{
	Use:   "query <jmespath>",
	Short: "Query the mapping with a JMESPath expression",
	Long: `Query the mapping with a JMESPath expression.

The mapping is an array of {"from": ..., "to": ...} objects.

Examples:
  fa2en query "[?from=='ب'].to | [0]"
  fa2en query "[?to=='q'].from"
  fa2en query "length(@)"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		editor, err := newEditor(cmd, history.SourceCLI)
		if err != nil {
			return err
		}
		result, err := filter.Apply(editor.Mapping(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), app.cfg.MappingFile)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved snapshots of the mapping",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.History(cmd.OutOrStdout(), app.history, flagLimit)
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all saved snapshots",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if app.history == nil {
			return cli.ErrNoHistory
		}
		if err := app.history.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore [id]",
	Short: "Write a saved snapshot back to the configuration file",
	Long: `Write a saved snapshot back to the configuration file.

Without an id an interactive list of recent snapshots is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if app.history == nil {
			return cli.ErrNoHistory
		}

		var id int64
		if len(args) == 1 {
			parsed, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid snapshot id %q", args[0])
			}
			id = parsed
		} else {
			if !cli.IsInteractive() {
				return fmt.Errorf("snapshot id required when stdin is not a terminal")
			}
			snapshots, err := app.history.List(flagLimit)
			if err != nil {
				return err
			}
			if id, err = cli.SelectSnapshot(snapshots); err != nil {
				return err
			}
		}

		editor, _ := newEditor(cmd, history.SourceRestore)
		snap, err := cli.Restore(editor, app.history, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restored snapshot #%d (%d entries) to %s\n", snap.ID, snap.Entries, editor.Path())
		return nil
	},
}

var keybindsCmd = &cobra.Command{
	Use:   "keybinds",
	Short: "Manage editor keybindings",
}

var keybindsValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a keybindings file for conflicts and unknown actions",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := app.cfg.KeybindsFile
		if len(args) == 1 {
			path = args[0]
		}

		config, err := keybinds.LoadConfig(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				fmt.Fprintf(cmd.OutOrStdout(), "No keybindings file at %s, defaults are in use.\n", path)
				return nil
			}
			return err
		}

		result := keybinds.NewValidator().ValidateConfig(config)
		fmt.Fprintln(cmd.OutOrStdout(), result.String())
		if result.HasErrors() {
			return fmt.Errorf("%s has %d error(s)", path, len(result.Errors))
		}
		return nil
	},
}

var keybindsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the default keybindings to the keybindings file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := app.cfg.KeybindsFile
		if _, err := os.Stat(path); err == nil && !flagOverwrite {
			return fmt.Errorf("%s already exists (use --overwrite)", path)
		}
		if err := keybinds.SaveConfig(keybinds.ExportDefaults(), path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Default keybindings written to %s\n", path)
		return nil
	},
}

func addCommands(root *cobra.Command) {
	exportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", keymap.FormatRaw, "Output format (raw/yaml/json)")
	importCmd.Flags().StringVarP(&flagImportFormat, "format", "f", "", "Input format (raw/yaml), default from extension")
	resetCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Do not ask for confirmation")
	historyCmd.PersistentFlags().IntVarP(&flagLimit, "limit", "n", 20, "Number of snapshots to list")
	restoreCmd.Flags().IntVarP(&flagLimit, "limit", "n", 20, "Number of snapshots to choose from")
	keybindsExportCmd.Flags().BoolVar(&flagOverwrite, "overwrite", false, "Replace an existing keybindings file")

	historyCmd.AddCommand(historyClearCmd)
	keybindsCmd.AddCommand(keybindsValidateCmd)
	keybindsCmd.AddCommand(keybindsExportCmd)

	root.AddCommand(showCmd)
	root.AddCommand(exportCmd)
	root.AddCommand(importCmd)
	root.AddCommand(setCmd)
	root.AddCommand(resetCmd)
	root.AddCommand(diffCmd)
	root.AddCommand(queryCmd)
	root.AddCommand(pathCmd)
	root.AddCommand(historyCmd)
	root.AddCommand(restoreCmd)
	root.AddCommand(keybindsCmd)
}
