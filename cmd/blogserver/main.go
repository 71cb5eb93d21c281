package main

import (
	"log"

	"portal_backend/internal/app/router"
	"portal_backend/internal/feature/blog/adapters"
	"portal_backend/internal/feature/blog/domain/entity"
	bloghandler "portal_backend/internal/feature/blog/transport/handler"
	"portal_backend/internal/feature/blog/usecase"
	"portal_backend/internal/platform/config"
	infradb "portal_backend/internal/platform/db"
)

func main() {
	cfg := config.LoadBlog()

	// DB
	db := infradb.OpenDB(&entity.Category{}, &entity.Tag{}, &entity.Post{})

	// Repository
	categoryRepo := adapters.NewCategoryRepository(db)
	postRepo := adapters.NewPostRepository(db)
	tagRepo := adapters.NewTagRepository(db)

	// Usecase
	categoryUC := usecase.NewCategoryUsecase(categoryRepo)
	postUC := usecase.NewPostUsecase(postRepo, categoryRepo, tagRepo)
	tagUC := usecase.NewTagUsecase(tagRepo)

	// Handler
	categoryH := bloghandler.NewCategoryHandler(categoryUC)
	postH := bloghandler.NewPostHandler(postUC)
	tagH := bloghandler.NewTagHandler(tagUC)

	r := router.NewBlogRouter(cfg.CORSAllowedOrigins, categoryH, postH, tagH)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
