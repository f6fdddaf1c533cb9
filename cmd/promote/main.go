// Command promote sets a user's role by email address. It is used to
// bootstrap the first super-admin and to hand out canteen admin rights.
//
// Usage:
//
//	promote --email=user@example.com [--role=super_admin]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/canteen-backend/internal/adapter/postgres"
	"github.com/heartmarshall/canteen-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/canteen-backend/internal/app"
	"github.com/heartmarshall/canteen-backend/internal/config"
	"github.com/heartmarshall/canteen-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the user to promote")
	role := flag.String("role", string(domain.UserRoleSuperAdmin), "target role: student, canteen_admin, school_admin, super_admin")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--role=super_admin]")
		os.Exit(1)
	}
	target := domain.UserRole(*role)
	if !target.IsValid() {
		fmt.Fprintf(os.Stderr, "unknown role %q\n", *role)
		os.Exit(1)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	users := user.New(pool)
	u, err := users.GetByEmail(ctx, *email)
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No user found with email %q.\n", *email)
		os.Exit(1)
	}
	if err != nil {
		logger.Error("lookup user", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if u.Role == target {
		fmt.Printf("User %q already has role %s.\n", *email, target)
		return
	}

	if _, err := users.UpdateRole(ctx, u.ID, target, time.Now().UTC()); err != nil {
		logger.Error("update role", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("user role changed",
		slog.String("user_id", u.ID.String()),
		slog.String("from", u.Role.String()),
		slog.String("to", target.String()),
	)
	fmt.Printf("User %q is now %s.\n", *email, target)
}
