package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a seam for tests.
var printlnFn = func(a ...any) {
	fmt.Println(a...)
}

var printfFn = func(format string, a ...any) {
	fmt.Printf(format, a...)
}

// execIface is what the REPL needs from the application. Kept narrow so
// command dispatch can be tested against a fake.
type execIface interface {
	navigate(ctx context.Context, name string)
	login(ctx context.Context)
	register(ctx context.Context)
	logout(ctx context.Context)
	render(ctx context.Context)
	isLoggedIn() bool
}

func printHelp() {
	printlnFn("commands:")
	printlnFn("  home | about | login | register       open a view")
	printlnFn("  health | dependents | meals | alerts  open a view (sign-in required)")
	printlnFn("  logout                                end the session")
	printlnFn("  help                                  this text")
	printlnFn("  exit                                  quit")
}

var viewCommands = map[string]string{
	"home":       "home",
	"about":      "about",
	"health":     "health_form",
	"dependents": "dependents",
	"meals":      "meals",
	"alerts":     "notifications",
}

func dispatch(ctx context.Context, e execIface, cmd string) {
	if name, ok := viewCommands[cmd]; ok {
		e.navigate(ctx, name)
		return
	}

	switch cmd {
	case "login":
		e.login(ctx)
	case "register":
		e.register(ctx)
	case "logout":
		e.logout(ctx)
	case "help":
		printHelp()
	case "":
		e.render(ctx)
	default:
		printlnFn("unknown command, type 'help'")
	}
}

func runREPL(ctx context.Context, e execIface, status func() string, scanner *bufio.Scanner) {
	printlnFn("MealKeeper. Type 'help' for the command list.")
	e.render(ctx)

	for {
		printfFn("%s> ", status())
		if !scanner.Scan() {
			return
		}
		cmd := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if cmd == "exit" || cmd == "quit" {
			return
		}
		dispatch(ctx, e, cmd)

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}
