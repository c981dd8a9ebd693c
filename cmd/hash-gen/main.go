package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"fundilink.backend/internal/domain/entities"
	"fundilink.backend/pkg/crypto"
	"fundilink.backend/pkg/utils"
)

var (
	stdout         io.Writer = os.Stdout
	generateHashFn           = crypto.HashPassword
	fatalfFn                 = log.Fatalf
)

type seedOptions struct {
	email    string
	name     string
	role     entities.UserRole
	password string
}

func parseArgs(args []string) (seedOptions, error) {
	fs := flag.NewFlagSet("hash-gen", flag.ContinueOnError)
	email := fs.String("email", "", "emit an admin seed statement for this email")
	name := fs.String("name", "FundiLink Admin", "display name for the seeded admin")
	role := fs.String("role", string(entities.UserRoleAdmin), "ADMIN or SUPERADMIN")
	if err := fs.Parse(args); err != nil {
		return seedOptions{}, err
	}
	if fs.NArg() != 1 {
		return seedOptions{}, errors.New("usage: hash-gen [-email addr] [-name name] [-role ADMIN|SUPERADMIN] <password>")
	}

	opts := seedOptions{
		email:    strings.ToLower(strings.TrimSpace(*email)),
		name:     *name,
		role:     entities.UserRole(strings.ToUpper(*role)),
		password: fs.Arg(0),
	}
	if !opts.role.IsAdmin() {
		return seedOptions{}, fmt.Errorf("role must be ADMIN or SUPERADMIN, got %q", *role)
	}
	return opts, nil
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func run(args []string) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	hash, err := generateHashFn(opts.password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	fmt.Fprintf(stdout, "Bcrypt Hash: %s\n", hash)

	if opts.email == "" {
		return nil
	}
	fmt.Fprintf(stdout,
		"INSERT INTO users (id, email, name, password_hash, role, verification) VALUES (%s, %s, %s, %s, %s, 'verified');\n",
		quote(utils.NewID().String()), quote(opts.email), quote(opts.name), quote(hash), quote(string(opts.role)),
	)
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fatalfFn("%v", err)
	}
}
