package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"production-brief/internal/gate"
	"production-brief/internal/middleware"
)

var (
	gateSecretMu sync.RWMutex
	gateSecret   string
)

// loadGateSecret reads the hashed shared password. AUTH_FILE overrides the
// default location next to the binary. No file means no gate, which is the
// expected state for local development.
func loadGateSecret() error {
	path := os.Getenv("AUTH_FILE")
	if path == "" {
		exe, err := os.Executable()
		if err == nil {
			path = filepath.Join(filepath.Dir(exe), gate.DefaultSecretFile)
		} else {
			path = gate.DefaultSecretFile
		}
	}

	secret, err := gate.LoadSecret(path)
	if err != nil {
		return err
	}
	if secret == "" {
		log.Printf("No gate secret at %s, running without access gate", path)
	}

	gateSecretMu.Lock()
	gateSecret = secret
	gateSecretMu.Unlock()
	return nil
}

func gateEnabled() bool {
	gateSecretMu.RLock()
	defer gateSecretMu.RUnlock()
	return gateSecret != ""
}

type LoginData struct {
	Error string
}

func handleLogin(w http.ResponseWriter, r *http.Request) {
	if !gateEnabled() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		gateSecretMu.RLock()
		secret := gateSecret
		gateSecretMu.RUnlock()

		if gate.Verify(r.FormValue("password"), secret) {
			middleware.GrantAccess(w)
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		w.WriteHeader(http.StatusUnauthorized)
		render(w, r, "login", LoginData{Error: "Wrong password"}, "ui/templates/login.html")
		return
	}

	render(w, r, "login", LoginData{}, "ui/templates/login.html")
}
