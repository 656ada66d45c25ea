package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func addCommands(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rbind file...",
		Short: "Stack table files vertically, matching columns by name",
		Args:  cobra.MinimumNArgs(1),
		Run:   rowBind}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "cbind file...",
		Short: "Place table files side by side",
		Args:  cobra.MinimumNArgs(1),
		Run:   columnBind}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "combine file:column...",
		Short: "Concatenate columns from table files into one vector",
		Args:  cobra.MinimumNArgs(1),
		Run:   combine}
	cmd.Flags().String("name", "value", "name of the output column")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "exec statement...",
		Short: "Run bind statements against the tables in the data directory",
		Args:  cobra.MinimumNArgs(1),
		Run:   execStatements}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "list-tables",
		Short: "List the tables in the data directory",
		Args:  cobra.NoArgs,
		Run:   listTables}
	root.AddCommand(cmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var root = &cobra.Command{Use: "goframe"}
	root.PersistentFlags().String("config-dir", ".", "directory holding goframe.yml")
	root.PersistentFlags().String("data-dir", "", "table directory for exec (overrides dataDir in config)")
	root.PersistentFlags().String("format", "pretty", "output format, 'pretty' or 'yaml'")
	root.PersistentFlags().StringP("out", "o", "", "write the result table to this file instead of stdout")
	root.PersistentFlags().BoolP("verbose", "v", false, "log statements and result shapes")
	addCommands(root)
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
