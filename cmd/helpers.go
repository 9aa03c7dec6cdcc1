package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/czarbitoon/smch-mobile-app-sub000/internal/client"
	"github.com/czarbitoon/smch-mobile-app-sub000/internal/config"
	"github.com/czarbitoon/smch-mobile-app-sub000/internal/session"
)

// store is the one authoritative session surface. No command reads the
// token or role from storage directly.
var store = session.NewStore()

// requireSession builds an authenticated client or exits with the login
// hint. Every authenticated command goes through here.
func requireSession() (*client.Client, session.Session) {
	sess := store.Get()
	if !sess.Authenticated() {
		fmt.Println("Error: Not logged in. Please run 'smch-cli login' first.")
		os.Exit(1)
	}
	return client.New(config.BaseURL(), sess.Token), sess
}

// publicClient is for the endpoints that work without a token (login,
// register, password reset, office list).
func publicClient() *client.Client {
	return client.New(config.BaseURL(), "")
}

// fail renders an error and exits. A 401 clears the stored session
// first so the next invocation lands on the login path; this is the
// cross-cutting contract, not per-command logic.
func fail(action string, err error) {
	if session.Invalidate(store, err) {
		fmt.Println("Error: Session expired. Please run 'smch-cli login' again.")
		os.Exit(1)
	}
	if errors.Is(err, client.ErrNotFound) {
		fmt.Printf("Error %s: not found.\n", action)
		os.Exit(1)
	}
	fmt.Printf("Error %s: %v\n", action, err)
	os.Exit(1)
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Printf("Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}
