package router

import (
	"encoding/json"
	"net/http"
	"time"

	authController "finance_api/internal/auth/controller"
	categoryController "finance_api/internal/category/controller"
	recordController "finance_api/internal/record/controller"
	"finance_api/internal/service/middleware"
	userController "finance_api/internal/user/controller"

	"github.com/gorilla/mux"
)

// SetUpRoutes builds the route table for both API variants. With auth enabled
// it installs /register and /login and puts the bearer-token guard on every
// other route except / and /healthcheck. Token presence is the only read
// restriction: any valid token may read any user's data (known limitation,
// write-time ownership is still enforced on record creation).
func SetUpRoutes(
	authHandler *authController.AuthHandler,
	userHandler *userController.UserHandler,
	categoryHandler *categoryController.CategoryHandler,
	recordHandler *recordController.RecordHandler,
	jwtToken middleware.JwtTokenService,
	authEnabled bool,
) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", Hello).Methods("GET")
	router.HandleFunc("/healthcheck", HealthCheck).Methods("GET")

	if authEnabled {
		router.HandleFunc("/register", authHandler.Register).Methods("POST")
		router.HandleFunc("/login", authHandler.Login).Methods("POST")
	}

	api := router.NewRoute().Subrouter()
	if authEnabled {
		api.Use(middleware.AuthMiddleware(jwtToken))
	}

	api.HandleFunc("/users", userHandler.ListUsers).Methods("GET")
	api.HandleFunc("/user", userHandler.CreateUser).Methods("POST")
	api.HandleFunc("/user/{id}", userHandler.GetUser).Methods("GET")
	api.HandleFunc("/user/{id}", userHandler.DeleteUser).Methods("DELETE")

	api.HandleFunc("/category", categoryHandler.ListCategories).Methods("GET")
	api.HandleFunc("/category", categoryHandler.CreateCategory).Methods("POST")
	api.HandleFunc("/category", categoryHandler.DeleteCategory).Methods("DELETE")

	api.HandleFunc("/record", recordHandler.QueryRecords).Methods("GET")
	api.HandleFunc("/record", recordHandler.CreateRecord).Methods("POST")
	api.HandleFunc("/record/{id}", recordHandler.GetRecord).Methods("GET")
	api.HandleFunc("/record/{id}", recordHandler.DeleteRecord).Methods("DELETE")

	return router
}

func Hello(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("<p>Hello, World!</p>"))
}

func HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "OK",
		"timestamp": time.Now(),
	})
}
