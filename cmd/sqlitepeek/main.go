package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/mdbtools/sqlitepeek/internal/sqlite"
)

// CLI is the argument-dispatch shell: it only collects the two
// positional arguments and hands off to the engine, translating a
// returned error into a one-line stderr message and a non-zero exit
// code. It never interprets "command" itself beyond recognising the
// three shapes the engine accepts.
var CLI struct {
	DBPath  string `arg:"" name:"db-path" help:"Path to a SQLite database file." type:"existingfile"`
	Command string `arg:"" name:"command" help:"One of .dbinfo, .tables, or a SELECT statement."`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("sqlitepeek"),
		kong.Description("Read-only query engine over a SQLite database file."),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	out, err := run(ctx, CLI.DBPath, CLI.Command)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(out)
}

func run(ctx context.Context, dbPath, command string) (string, error) {
	if dbPath == "" || command == "" {
		return "", fmt.Errorf("%w: usage: sqlitepeek <db-path> <command>", sqlite.ErrMissingArgument)
	}

	engine, err := sqlite.Open(ctx, dbPath)
	if err != nil {
		return "", err
	}
	defer engine.Close()

	switch {
	case command == ".dbinfo":
		return engine.DBInfo(ctx)
	case command == ".tables":
		return engine.Tables(ctx)
	case len(command) >= 6 && strings.EqualFold(command[:6], "select"):
		return engine.Select(ctx, command)
	default:
		return "", fmt.Errorf("%w: %s", sqlite.ErrUnknownCommand, command)
	}
}
