// Package cli implements the interactive meal-planner client: a small REPL
// over the REST API with a locally persisted login session.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/mealplanner/internal/client/api"
	"github.com/dmitrijs2005/mealplanner/internal/client/config"
	"github.com/dmitrijs2005/mealplanner/internal/client/services"
	"github.com/dmitrijs2005/mealplanner/internal/client/session"
)

type App struct {
	config    *config.Config
	apiClient *api.HTTPClient
	auth      *services.AuthService
	planner   *services.PlannerService
	sess      *session.SQLiteRepository
	userEmail string
	reader    *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	sess, err := session.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		log.Printf("error initializing session database: %s", err.Error())
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.ServerEndpointAddr)

	app := &App{
		config:    c,
		apiClient: apiClient,
		auth:      services.NewAuthService(apiClient, sess),
		planner:   services.NewPlannerService(apiClient),
		sess:      sess,
		reader:    bufio.NewReader(os.Stdin),
	}

	// A 401 means the saved token went stale; drop the session and put the
	// user back at the login prompt instead of failing every command.
	apiClient.OnUnauthorized = func() {
		app.userEmail = ""
		_ = app.auth.Logout(context.Background())
		printlnFn("Session expired, please log in again.")
	}

	return app, nil
}

func (a *App) isLoggedIn() bool {
	return a.userEmail != ""
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.userEmail
	}
	return "signed out"
}

func (a *App) Run(ctx context.Context) {
	defer a.sess.Close()

	email, err := a.auth.Restore(ctx)
	if err != nil {
		log.Printf("error restoring session: %s", err.Error())
	}
	if email != "" {
		a.userEmail = email
		fmt.Printf("Welcome back, %s\n", email)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}
