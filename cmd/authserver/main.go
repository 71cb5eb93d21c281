package main

import (
	"log"

	"portal_backend/internal/app/router"
	"portal_backend/internal/feature/auth/adapters"
	"portal_backend/internal/feature/auth/domain/entity"
	authhandler "portal_backend/internal/feature/auth/transport/handler"
	"portal_backend/internal/feature/auth/transport/middleware"
	"portal_backend/internal/feature/auth/usecase"
	"portal_backend/internal/platform/config"
	infradb "portal_backend/internal/platform/db"
	"portal_backend/internal/platform/password"
	"portal_backend/internal/platform/token"
)

func main() {
	// Config. A missing SECRET must stop the process here, not surface
	// per-request.
	cfg, err := config.LoadAuth()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// DB
	db := infradb.OpenDB(&entity.User{}, &entity.Resource{})

	// Platform
	issuer, err := token.NewIssuer(cfg.Secret, cfg.AppName)
	if err != nil {
		log.Fatalf("invalid token configuration: %v", err)
	}
	hasher := password.NewHasher(cfg.BcryptCost)

	// Repository
	userRepo := adapters.NewUserRepository(db)
	resourceRepo := adapters.NewResourceRepository(db)

	// Usecase
	authUC := usecase.NewAuthUsecase(userRepo, issuer, hasher)
	resourceUC := usecase.NewResourceUsecase(resourceRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	resourceH := authhandler.NewResourceHandler(resourceUC)
	session := middleware.SessionRequired(authUC)

	r := router.NewAuthRouter(cfg.CORSAllowedOrigins, authH, resourceH, session)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
