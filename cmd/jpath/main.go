package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1 // хотя бы один запрос не разобрался
	exitError  = 2
)

// errQueriesFailed is returned by check when diagnostics were already
// printed and only the exit status is left to report.
var errQueriesFailed = errors.New("queries failed")

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := &app{stdout: stdout, stderr: stderr}
	root := newRootCmd(app)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	app.finish(err)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errQueriesFailed):
		return exitFailed
	default:
		fmt.Fprintf(stderr, "jpath: %v\n", err)
		return exitError
	}
}
