// Package commands holds the hash-password subcommand used to provision
// the access-gate secret file.
package commands

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"production-brief/internal/gate"
)

// HashPassword prompts for the shared password (no echo when stdin is a
// terminal) and writes the encoded hash to the secret file.
func HashPassword(args []string) {
	out := gate.DefaultSecretFile
	if len(args) > 0 && args[0] != "" {
		out = args[0]
	}

	password, err := readPassword()
	if err != nil {
		log.Fatalf("Failed to read password: %v", err)
	}
	if password == "" {
		log.Fatal("Empty password")
	}

	encoded, err := gate.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	if err := os.WriteFile(out, []byte(encoded+"\n"), 0o600); err != nil {
		log.Fatalf("Failed to write %s: %v", out, err)
	}
	fmt.Printf("Wrote %s\n", out)
	fmt.Println("Set AUTH_FILE or place the file next to the binary before starting the server.")
}

func readPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Print("Shared password: ")
		b, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	// Piped input (CI, scripts).
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
