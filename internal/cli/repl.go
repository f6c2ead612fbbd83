package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// printFn and printlnFn are test seams for user-facing output.
var (
	printFn   = fmt.Print
	printlnFn = fmt.Println
)

// execIface is the command surface the REPL needs. The real App satisfies
// it; tests can provide a stub.
type execIface interface {
	Execute(ctx context.Context, line string) (reply string, quit bool)
}

// runREPL prompts, reads a line from in and hands it to a until a asks to
// quit, input ends or ctx is cancelled. Lines are read in a separate
// goroutine so that cancellation does not wait for the user.
func runREPL(ctx context.Context, a execIface, in io.Reader) error {
	lines := make(chan string)
	errc := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
		errc <- sc.Err()
	}()

	for {
		printFn(prompt)

		select {
		case <-ctx.Done():
			printlnFn()
			return nil

		case line, ok := <-lines:
			if !ok {
				printlnFn()
				if err := <-errc; err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				return nil
			}

			reply, quit := a.Execute(ctx, line)
			if reply != "" {
				printlnFn(reply)
			}
			if quit {
				return nil
			}
		}
	}
}
