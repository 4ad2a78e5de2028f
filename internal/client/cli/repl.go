package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) error
	ListRecipes(ctx context.Context) error
	ShowRecipe(ctx context.Context) error
	AddRecipe(ctx context.Context) error
	DeleteRecipe(ctx context.Context) error
	UploadImage(ctx context.Context) error
	ListPantry(ctx context.Context) error
	AddPantryItem(ctx context.Context) error
	DeletePantryItem(ctx context.Context) error
}

// runREPL starts a read-eval-print loop for the meal-planner CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("mp> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (d)ashboard, recipes, show, addrecipe, delrecipe, upload, pantry, additem, delitem, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "d", "dashboard":
			_ = a.Dashboard(ctx)

		case "recipes":
			_ = a.ListRecipes(ctx)

		case "show":
			_ = a.ShowRecipe(ctx)

		case "addrecipe":
			_ = a.AddRecipe(ctx)

		case "delrecipe":
			_ = a.DeleteRecipe(ctx)

		case "upload":
			_ = a.UploadImage(ctx)

		case "pantry":
			_ = a.ListPantry(ctx)

		case "additem":
			_ = a.AddPantryItem(ctx)

		case "delitem":
			_ = a.DeletePantryItem(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
