package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// commandExecutor is the command surface the REPL dispatches to. App is
// the concrete implementation; tests substitute a fake.
type commandExecutor interface {
	Register(ctx context.Context)
	Login(ctx context.Context)
}

// runREPL starts a simple read–eval–print loop.
//
// Commands:
//
//	help          — show available commands
//	register      — send registration commitments for an identity
//	login         — run an authentication attempt
//	exit | quit   — leave the program
//
// Command handlers log their own errors; the loop itself only does I/O.
func runREPL(ctx context.Context, exec commandExecutor, reader *bufio.Reader) {
	for {
		printlnFn("zkp> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			printlnFn("Available commands: register, login, exit")
		case "register":
			exec.Register(ctx)
		case "login":
			exec.Login(ctx)
		case "exit", "quit":
			return
		default:
			printlnFn("Unknown command. Type 'help' for the command list.")
		}
	}
}
