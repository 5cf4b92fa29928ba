package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/takaishi/minigrep/cmd"
	"github.com/takaishi/minigrep/config"
	"github.com/takaishi/minigrep/output"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:]))
}

// run executes minigrep and returns the process exit code
func run(stdout, stderr io.Writer, args []string) int {
	if err := cmd.Execute(args, stdout, stderr); err != nil {
		label := "Application error"
		var argErr *config.ArgumentError
		if errors.As(err, &argErr) {
			label = "Problem parsing arguments"
		}
		fmt.Fprintf(stderr, "%s: %v\n", output.Label(stderr, label), err)
		return 1
	}
	return 0
}
