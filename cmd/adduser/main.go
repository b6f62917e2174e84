package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"finwise/internal/config"
	"finwise/internal/database"
	"finwise/internal/logger"
	"finwise/internal/mailer"
	"finwise/internal/services"

	"golang.org/x/term"
	"gorm.io/gorm"
)

const minPasswordLength = 8

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, connect); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func connect() (*gorm.DB, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Init(cfg.Env, cfg.LogLevel)

	dbManager, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return nil, nil, err
	}
	return dbManager.DB(), dbManager.Close, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, open func() (*gorm.DB, func() error, error)) error {
	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	fs.SetOutput(stderr)

	email := fs.String("email", "", "Email address")
	username := fs.String("user", "", "Username")
	fullName := fs.String("name", "", "Full name (optional)")
	passwordFlag := fs.String("password", "", "Password (optional, will prompt if omitted)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" || *username == "" {
		fmt.Fprintln(stdout, "Usage: adduser -email <email> -user <username> [-name <full name>] [-password <password>]")
		fs.PrintDefaults()
		return fmt.Errorf("missing required flags: email, user")
	}

	password := *passwordFlag
	if password == "" {
		fmt.Fprint(stdout, "Password: ")
		var err error
		password, err = readPassword(stdin)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprintln(stdout)
	}

	if len(strings.TrimSpace(password)) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	db, closeDB, err := open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer closeDB()

	users := services.NewUserService(db, mailer.LogMailer{}, services.DefaultUserSettings())
	user, err := users.CreateVerifiedUser(services.RegisterInput{
		Email:    *email,
		Username: *username,
		FullName: *fullName,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Fprintf(stdout, "User %s created successfully with ID %s\n", user.Username, user.ID)
	return nil
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
