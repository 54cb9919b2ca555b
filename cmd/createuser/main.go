// cmd/createuser/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/inventra/inventory-backend/internal/config"
	"github.com/inventra/inventory-backend/internal/database"
	"github.com/inventra/inventory-backend/internal/models"
	"github.com/inventra/inventory-backend/internal/services"
	"github.com/inventra/inventory-backend/internal/utils"
)

const generatedPasswordLength = 16

func main() {
	login := flag.String("login", "", "login of the new user (3 to 50 characters)")
	password := flag.String("password", "", "password (at least 6 characters); generated when empty")
	name := flag.String("name", "", "display name; defaults to the login")
	role := flag.String("role", string(models.RoleUser), "ROLE_USER or ROLE_ADMIN")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	req := &services.CreateUserRequest{
		Login:    *login,
		Password: *password,
		Name:     *name,
		Role:     models.Role(*role),
	}
	if req.Name == "" {
		req.Name = req.Login
	}

	generated := req.Password == ""
	if generated {
		if req.Password, err = utils.GenerateRandomString(generatedPasswordLength); err != nil {
			logrus.WithError(err).Fatal("Failed to generate password")
		}
	}

	if err := utils.ValidateStruct(req); err != nil {
		for _, e := range utils.GetValidationErrors(cfg.I18n.DefaultLocale, err) {
			fmt.Fprintln(os.Stderr, e.Message)
		}
		os.Exit(2)
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize database")
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		logrus.WithError(err).Fatal("Failed to run migrations")
	}

	user, err := services.NewUserService(db).CreateUser(req)
	if err != nil {
		var svcErr *services.Error
		if errors.As(err, &svcErr) {
			fmt.Fprintln(os.Stderr, svcErr.Error())
			database.Close(db)
			os.Exit(1)
		}
		logrus.WithError(err).Fatal("Failed to create user")
	}

	fmt.Printf("User %q created with id %d and role %s\n", user.Login, user.ID, user.Role)
	if generated {
		fmt.Printf("Generated password: %s\n", req.Password)
	}
}
