// Command seed creates or updates a dashboard admin credential.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ArowuTest/brandhub-admin-backend/internal/config"
	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
	"github.com/ArowuTest/brandhub-admin-backend/internal/repositories"
	mongorepo "github.com/ArowuTest/brandhub-admin-backend/internal/repositories/mongodb"
	"github.com/ArowuTest/brandhub-admin-backend/internal/services"
	"github.com/ArowuTest/brandhub-admin-backend/pkg/mongodb"
	"go.uber.org/zap"
)

func main() {
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	name := flag.String("name", "", "admin display name")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: seed -email admin@example.com -password secret [-name Admin]")
		os.Exit(2)
	}

	cfg, err := config.Load(".")
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}
	log, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		panic("failed to build logger: " + err.Error())
	}
	defer log.Sync()

	ctx := context.Background()
	client, err := mongodb.NewClient(ctx, cfg.MongoDB.URI, cfg.MongoDB.Database, cfg.MongoDB.Timeout)
	if err != nil {
		log.Fatal("failed to connect to mongodb", zap.Error(err))
	}
	defer client.Disconnect(context.Background())

	admin, err := seedAdmin(ctx, mongorepo.NewAdminUserRepository(client.Database()), *email, *password, *name)
	if err != nil {
		log.Fatal("failed to seed admin", zap.Error(err))
	}
	log.Info("admin seeded", zap.String("email", admin.Email), zap.String("id", admin.ID.Hex()))
}

func seedAdmin(ctx context.Context, admins repositories.AdminUserRepository, email, password, name string) (*models.AdminUser, error) {
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	hash, err := services.HashPassword(password)
	if err != nil {
		return nil, err
	}
	admin := &models.AdminUser{
		Name:     name,
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: hash,
		Role:     "admin",
	}
	if err := admins.Upsert(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}
