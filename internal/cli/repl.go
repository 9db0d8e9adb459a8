package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// commandSet is the minimal command surface the REPL dispatches to. The real
// App type satisfies it; tests can provide a lightweight stub.
type commandSet interface {
	Users(ctx context.Context) error
	AddUser(ctx context.Context, name string) error
	DelUser(ctx context.Context, arg string) error
	Options(ctx context.Context) error
	AddOption(ctx context.Context, args []string) error
	DelOption(ctx context.Context, arg string) error
	Own(ctx context.Context, args []string) error
	Owns(ctx context.Context) error
	Matrix(ctx context.Context) error
}

const helpText = `Available commands:
  users                                         list users
  adduser <name>                                add a user
  deluser <id>                                  delete a user (ownerships go too)
  options                                       list options
  addoption <symbol> <call|put> <strike> <exp>  add an option
  deloption <id>                                delete an option (ownerships go too)
  own <userId> <optionId> <qty>                 set held quantity (<=0 clears)
  owns                                          list ownership links
  matrix                                        show the options x users grid
  exit | quit                                   leave the program`

// runREPL starts a simple read–eval–print loop for the ledger CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit". Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a commandSet, scanner *bufio.Scanner, out io.Writer) {
	fmt.Fprintln(out, "optionledger CLI (type 'help' for commands)")

	for {
		fmt.Fprint(out, "ledger> ")
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			fmt.Fprintln(out, helpText)
		case "users":
			err = a.Users(ctx)
		case "adduser":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: adduser <name>")
				continue
			}
			err = a.AddUser(ctx, strings.Join(args, " "))
		case "deluser":
			if len(args) != 1 {
				fmt.Fprintln(out, "Usage: deluser <id>")
				continue
			}
			err = a.DelUser(ctx, args[0])
		case "options":
			err = a.Options(ctx)
		case "addoption":
			if len(args) != 4 {
				fmt.Fprintln(out, "Usage: addoption <symbol> <call|put> <strike> <expiration>")
				continue
			}
			err = a.AddOption(ctx, args)
		case "deloption":
			if len(args) != 1 {
				fmt.Fprintln(out, "Usage: deloption <id>")
				continue
			}
			err = a.DelOption(ctx, args[0])
		case "own":
			if len(args) != 3 {
				fmt.Fprintln(out, "Usage: own <userId> <optionId> <quantity>")
				continue
			}
			err = a.Own(ctx, args)
		case "owns":
			err = a.Owns(ctx)
		case "matrix":
			err = a.Matrix(ctx)
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if err != nil {
			fmt.Fprintln(out, "Error:", err)
		}
	}
}
