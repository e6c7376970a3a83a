// Package main provides gridctl, a terminal client of the grid document store.
package main

import (
	"fmt"
	"github.com/BeiChenYi/webbapi/editor"
	"github.com/spf13/cobra"
	"os"
	"strconv"
)

const DefaultServer = "http://localhost:32577"

var (
	serverUrl  string
	assumeYes  bool
	exportDir  string
	asWorkbook bool
)

type session struct {
	table *editor.Table
	view  *editor.TextView
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	defaultServer := os.Getenv("GRID_SERVER")
	if defaultServer == "" {
		defaultServer = DefaultServer
	}

	rootCmd := &cobra.Command{
		Use:          "gridctl",
		Short:        "View and edit the shared grid document",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&serverUrl, "server", defaultServer, "Grid store service URL")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty every cell, keeping rows, columns and headers",
		Args:  cobra.NoArgs,
		RunE:  runClear,
	}
	clearCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the grid to a dated JSON (or XLSX) file",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&exportDir, "dir", ".", "Directory for the exported file")
	exportCmd.Flags().BoolVar(&asWorkbook, "xlsx", false, "Export an XLSX workbook instead of JSON")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the grid",
			Args:  cobra.NoArgs,
			RunE:  runShow,
		},
		&cobra.Command{
			Use:   "set-cell ROW COL VALUE",
			Short: "Set a cell, ROW and COL are 1-based",
			Args:  cobra.ExactArgs(3),
			RunE:  runSetCell,
		},
		&cobra.Command{
			Use:   "set-header COL VALUE",
			Short: "Rename a column header, COL is 1-based",
			Args:  cobra.ExactArgs(2),
			RunE:  runSetHeader,
		},
		&cobra.Command{
			Use:   "add-row",
			Short: "Append a row of placeholder cells",
			Args:  cobra.NoArgs,
			RunE:  mutation(func(s *session) error { s.table.AddRow(); return nil }),
		},
		&cobra.Command{
			Use:   "add-col",
			Short: "Append a column with a default header",
			Args:  cobra.NoArgs,
			RunE:  mutation(func(s *session) error { s.table.AddColumn(); return nil }),
		},
		&cobra.Command{
			Use:   "save",
			Short: "Push the grid back to the service as is",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				s, err := open(cmd)
				if err != nil {
					return err
				}
				defer s.table.Close()
				return s.table.Save(cmd.Context())
			},
		},
		clearCmd,
		exportCmd,
	)

	return rootCmd
}

func open(cmd *cobra.Command, options ...editor.Option) (*session, error) {
	view := editor.NewTextView(cmd.OutOrStdout())
	table := editor.NewTable(editor.NewStoreClient(serverUrl), view, options...)

	if err := table.Initialize(cmd.Context()); err != nil {
		table.Close()
		return nil, fmt.Errorf("load %s: %w", serverUrl, err)
	}

	return &session{table: table, view: view}, nil
}

// mutation runs apply on a loaded table, pushes the pending save and prints the result.
func mutation(apply func(s *session) error, options ...editor.Option) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		s, err := open(cmd, options...)
		if err != nil {
			return err
		}
		defer s.table.Close()

		if err = apply(s); err != nil {
			return err
		}

		if err = s.table.Flush(cmd.Context()); err != nil {
			return err
		}

		return s.view.Print()
	}
}

func runShow(cmd *cobra.Command, _ []string) error {
	s, err := open(cmd)
	if err != nil {
		return err
	}
	defer s.table.Close()

	return s.view.Print()
}

func runSetCell(cmd *cobra.Command, args []string) error {
	row, err := parsePosition("ROW", args[0])
	if err != nil {
		return err
	}
	col, err := parsePosition("COL", args[1])
	if err != nil {
		return err
	}

	return mutation(func(s *session) error {
		edit, ok := s.table.BeginEditCell(row, col)
		if !ok {
			return fmt.Errorf("cell (%d, %d) is outside the grid", row+1, col+1)
		}
		edit.SetText(args[2])
		edit.Confirm()
		return nil
	})(cmd, args)
}

func runSetHeader(cmd *cobra.Command, args []string) error {
	col, err := parsePosition("COL", args[0])
	if err != nil {
		return err
	}

	return mutation(func(s *session) error {
		edit, ok := s.table.BeginEditHeader(col)
		if !ok {
			return fmt.Errorf("column %d is outside the grid", col+1)
		}
		edit.SetText(args[1])
		edit.Confirm()
		return nil
	})(cmd, args)
}

func runClear(cmd *cobra.Command, args []string) error {
	var confirmer editor.Confirmer = editor.PromptConfirmer{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
	if assumeYes {
		confirmer = editor.ConfirmFunc(func(string) bool { return true })
	}

	return mutation(func(s *session) error {
		if !s.table.ClearTable() {
			return fmt.Errorf("clear cancelled")
		}
		return nil
	}, editor.WithConfirmer(confirmer))(cmd, args)
}

func runExport(cmd *cobra.Command, _ []string) error {
	s, err := open(cmd, editor.WithDownloader(editor.DirectoryDownloader{Dir: exportDir}))
	if err != nil {
		return err
	}
	defer s.table.Close()

	var filename string
	if asWorkbook {
		filename, err = s.table.ExportWorkbook()
	} else {
		filename, err = s.table.Export()
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), filename)
	return err
}

func parsePosition(name string, value string) (int, error) {
	position, err := strconv.Atoi(value)
	if err != nil || position < 1 {
		return 0, fmt.Errorf("%s must be a positive number, got %q", name, value)
	}
	return position - 1, nil
}
