// create-user provisions an account. The password is read from stdin so it
// never shows up in shell history or the process list.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/itchan-dev/itchan-auth/backend/internal/storage/pg"
	"github.com/itchan-dev/itchan-auth/backend/internal/utils"
	"github.com/itchan-dev/itchan-auth/shared/config"
	"github.com/itchan-dev/itchan-auth/shared/domain"
)

func main() {
	var configFolder, email string
	flag.StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	flag.StringVar(&email, "email", "", "email of the new user")
	flag.Parse()

	if email == "" {
		log.Fatal("-email is required")
	}

	password, err := readPassword(os.Stdin)
	if err != nil {
		log.Fatalf("Failed to read password: %v", err)
	}

	cfg := config.MustLoad(configFolder)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	storage, err := pg.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer storage.Cleanup()

	if err := storage.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	hash, err := utils.NewBcrypt(cfg.Public.BcryptCost).Hash(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	id, err := storage.SaveUser(ctx, domain.User{Email: email, PassHash: hash})
	if err != nil {
		log.Fatalf("Failed to save user: %v", err)
	}

	fmt.Printf("Created user %s with id %d\n", email, id)
}

func readPassword(f *os.File) (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("password is empty")
	}
	return password, nil
}
