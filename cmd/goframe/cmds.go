package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"goFrame/internal/bind"
	"goFrame/internal/config"
	"goFrame/internal/engine"
	"goFrame/internal/frame"
	"goFrame/internal/storage/filestore"
)

func fatal(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	os.Exit(1)
}

// Represents the state used when processing a command.
type Action struct {
	cmd *cobra.Command
	cfg *config.Config
}

func newAction(cmd *cobra.Command) *Action {
	a := &Action{cmd: cmd}
	cfg, err := config.Load(a.getString("config-dir"))
	if err != nil {
		fatal("%v", err)
	}
	if a.getBool("verbose") {
		cfg.Verbose = true
	}
	if dir := a.getString("data-dir"); dir != "" {
		cfg.DataDir = dir
	}
	a.cfg = cfg
	return a
}

func (a *Action) Context() context.Context {
	return a.cmd.Context()
}

func (a *Action) getBool(name string) bool {
	result, _ := a.cmd.Flags().GetBool(name)
	return result
}

func (a *Action) getString(name string) string {
	result, _ := a.cmd.Flags().GetString(name)
	return result
}

func (a *Action) logger() *log.Logger {
	if !a.cfg.Verbose {
		return nil
	}
	return log.New(os.Stderr, "goframe: ", 0)
}

func (a *Action) loadTables(paths []string) []*frame.Table {
	tables, err := filestore.LoadAll(a.Context(), paths)
	if err != nil {
		fatal("%v", err)
	}
	if l := a.logger(); l != nil {
		for i, t := range tables {
			l.Printf("loaded %s: %d rows x %d columns", paths[i], t.NumRows(), t.NumCols())
		}
	}
	return tables
}

// emit writes the result table to --out, or prints it to stdout.
func (a *Action) emit(t *frame.Table) {
	if out := a.getString("out"); out != "" {
		if err := writeTableFile(out, t); err != nil {
			fatal("%v", err)
		}
		return
	}

	var err error
	switch format := a.getString("format"); format {
	case "pretty":
		err = printTable(os.Stdout, t, a.cfg)
	case "yaml":
		err = filestore.Encode(os.Stdout, t)
	default:
		err = errors.Errorf("unknown format %q", format)
	}
	if err != nil {
		fatal("%v", err)
	}
}

func writeTableFile(path string, t *frame.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err := filestore.Encode(f, t); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func rowBind(cmd *cobra.Command, args []string) {
	action := newAction(cmd)
	tables := action.loadTables(args)
	out, err := bind.RowBind(action.Context(), tables)
	if err != nil {
		fatal("%v", err)
	}
	action.emit(out)
}

func columnBind(cmd *cobra.Command, args []string) {
	action := newAction(cmd)
	tables := action.loadTables(args)
	out, err := bind.ColumnBind(action.Context(), tables)
	if err != nil {
		fatal("%v", err)
	}
	action.emit(out)
}

// parseColumnArg splits "path/to/file.yml:column" at the last colon.
func parseColumnArg(arg string) (path, column string, err error) {
	i := strings.LastIndexByte(arg, ':')
	if i <= 0 || i == len(arg)-1 {
		return "", "", errors.Errorf("expected file:column, got %q", arg)
	}
	return arg[:i], arg[i+1:], nil
}

func combine(cmd *cobra.Command, args []string) {
	action := newAction(cmd)

	paths := make([]string, len(args))
	columns := make([]string, len(args))
	for i, arg := range args {
		p, c, err := parseColumnArg(arg)
		if err != nil {
			fatal("%v", err)
		}
		paths[i], columns[i] = p, c
	}

	tables := action.loadTables(paths)
	vectors := make([]*frame.Vector, len(tables))
	for i, t := range tables {
		v, ok := t.ColumnByName(columns[i])
		if !ok {
			fatal("%s has no column %q", paths[i], columns[i])
		}
		vectors[i] = v
	}

	v, err := bind.Combine(action.Context(), vectors)
	if err != nil {
		fatal("%v", err)
	}
	name := action.getString("name")
	action.emit(frame.FromColumns([]string{name}, []*frame.Vector{v}, v.Len(), frame.ClassDataFrame))
}

func (a *Action) openEngine() *engine.DBEngine {
	if a.cfg.DataDir == "" {
		fatal("no data directory: pass --data-dir or set dataDir in goframe.yml")
	}
	store, err := filestore.New(a.cfg.DataDir)
	if err != nil {
		fatal("%v", err)
	}
	eng := engine.New(store)
	eng.SetLogger(a.logger())
	if err := eng.Start(); err != nil {
		fatal("%v", err)
	}
	return eng
}

func execStatements(cmd *cobra.Command, args []string) {
	action := newAction(cmd)
	eng := action.openEngine()

	for _, stmt := range args {
		out, err := eng.ExecuteString(action.Context(), stmt)
		if err != nil {
			fatal("%s: %v", stmt, err)
		}
		if out != nil {
			action.emit(out)
		}
	}
}

func listTables(cmd *cobra.Command, args []string) {
	action := newAction(cmd)
	eng := action.openEngine()

	names, err := eng.ListTables()
	if err != nil {
		fatal("%v", err)
	}
	for _, name := range names {
		fmt.Println(name)
	}
}
