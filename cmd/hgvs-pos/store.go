package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/VariantEffect/hgvs-patterns/internal/store"
)

func newStoreCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "store",
		Short: "Persist parsed positions in a DuckDB database",
	}

	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database path (default: store.path from config)")

	cmd.AddCommand(newStoreLoadCmd(&dbPath))
	cmd.AddCommand(newStoreListCmd(&dbPath))
	cmd.AddCommand(newStoreClearCmd(&dbPath))

	return cmd
}

func newStoreLoadCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "load [file]",
		Short: "Parse positions from a file and store them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runStoreLoad(resolveDBPath(*dbPath), path)
		},
	}
}

func newStoreListCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored positions in transcript order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreList(resolveDBPath(*dbPath))
		},
	}
}

func newStoreClearCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all stored positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreClear(resolveDBPath(*dbPath))
		},
	}
}

func resolveDBPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return viper.GetString("store.path")
}

func runStoreLoad(dbPath, inputPath string) error {
	records, err := readPositions(inputPath)
	if err != nil {
		return err
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	storeRecords := make([]store.Record, len(records))
	for i, r := range records {
		storeRecords[i] = store.Record{Input: r.input, Pos: r.pos}
	}

	if err := s.WritePositions(storeRecords); err != nil {
		return fmt.Errorf("store positions: %w", err)
	}

	fmt.Fprintf(os.Stderr, "stored %d positions in %s\n", len(storeRecords), dbPath)
	return nil
}

func runStoreList(dbPath string) error {
	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := s.ListPositions()
	if err != nil {
		return err
	}

	w := bufio.NewWriter(os.Stdout)
	for _, r := range records {
		fmt.Fprintln(w, r.Input)
	}
	return w.Flush()
}

func runStoreClear(dbPath string) error {
	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Clear(); err != nil {
		return fmt.Errorf("clear positions: %w", err)
	}

	fmt.Fprintf(os.Stderr, "cleared %s\n", dbPath)
	return nil
}
