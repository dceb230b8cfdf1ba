package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	authController "finance_api/internal/auth/controller"
	authRepository "finance_api/internal/auth/repository"
	authUsecase "finance_api/internal/auth/usecase"
	categoryController "finance_api/internal/category/controller"
	categoryRepository "finance_api/internal/category/repository"
	categoryUsecase "finance_api/internal/category/usecase"
	recordController "finance_api/internal/record/controller"
	recordRepository "finance_api/internal/record/repository"
	recordUsecase "finance_api/internal/record/usecase"
	"finance_api/internal/service/dsn"
	"finance_api/internal/service/logger"
	"finance_api/internal/service/middleware"
	"finance_api/internal/service/router"
	userController "finance_api/internal/user/controller"
	userRepository "finance_api/internal/user/repository"
	userUsecase "finance_api/internal/user/usecase"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	db := middleware.DbConnect()
	jwtToken, err := middleware.NewJwtToken(dsn.JWTSecret())
	if err != nil {
		log.Fatalf("Failed to create JWT token: %v", err)
	}

	if err := logger.InitLoggers(); err != nil {
		log.Fatalf("Failed to initialize loggers: %v", err)
	}
	defer func() {
		if err := logger.SyncLoggers(); err != nil {
			log.Printf("Failed to sync loggers: %v", err)
		}
	}()

	authHandler := authController.NewAuthHandler(
		authUsecase.NewAuthUsecase(authRepository.NewAuthRepository(db)),
		jwtToken,
	)
	userHandler := userController.NewUserHandler(
		userUsecase.NewUserUsecase(userRepository.NewUserRepository(db)),
	)
	categoryHandler := categoryController.NewCategoryHandler(
		categoryUsecase.NewCategoryUsecase(categoryRepository.NewCategoryRepository(db)),
	)
	recordHandler := recordController.NewRecordHandler(
		recordUsecase.NewRecordUsecase(recordRepository.NewRecordRepository(db)),
	)

	mainRouter := router.SetUpRoutes(authHandler, userHandler, categoryHandler, recordHandler, jwtToken, dsn.AuthEnabled())
	mainRouter.Use(middleware.RequestIDMiddleware)
	mainRouter.Use(middleware.RateLimitMiddleware)
	http.Handle("/", middleware.EnableCORS(mainRouter))

	fmt.Printf("Starting HTTP server on address %s\n", os.Getenv("BACKEND_URL"))
	if err := http.ListenAndServe(os.Getenv("BACKEND_URL"), nil); err != nil {
		fmt.Printf("Error on starting server: %s", err)
	}
}
