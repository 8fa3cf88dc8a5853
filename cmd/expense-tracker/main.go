package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	database "github.com/dipesh2508/expense-tracker-backend/db"
	"github.com/dipesh2508/expense-tracker-backend/internal/auth"
	"github.com/dipesh2508/expense-tracker-backend/internal/finance/application"
	"github.com/dipesh2508/expense-tracker-backend/internal/finance/infrastructure"
	"github.com/dipesh2508/expense-tracker-backend/internal/finance/interfaces"
	"github.com/dipesh2508/expense-tracker-backend/internal/user"
)

type Response struct {
	Msg string `json:"msg"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, Response{Msg: message})
}

type Server struct {
	router          *http.ServeMux
	dbService       *database.DBService
	authHandler     *auth.Handler
	authService     auth.Service
	categoryHandler *interfaces.CategoryHandler
	expenseHandler  *interfaces.ExpenseHandler
}

func NewServer(dbService *database.DBService, authHandler *auth.Handler, authService auth.Service, categoryHandler *interfaces.CategoryHandler, expenseHandler *interfaces.ExpenseHandler) *Server {
	return &Server{
		dbService:       dbService,
		authHandler:     authHandler,
		authService:     authService,
		categoryHandler: categoryHandler,
		expenseHandler:  expenseHandler,
		router:          http.NewServeMux(),
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Msg: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET Provided")
	}
	if os.Getenv("DB_CONNECTION_STRING") == "" {
		return errors.New("no DB_CONNECTION_STRING Provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.dbService.Health())
}

func (s *Server) RegisterRoutes() {
	mux := http.NewServeMux()
	private := s.authService.JWTAccessTokenMiddleware()

	// Public routes
	mux.Handle("POST /api/auth/signup", http.HandlerFunc(s.authHandler.HandleSignup))
	mux.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	mux.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// CATEGORIES API
	mux.Handle("GET /api/categories", private(http.HandlerFunc(s.categoryHandler.GetCategories)))
	mux.Handle("POST /api/categories", private(http.HandlerFunc(s.categoryHandler.CreateCategory)))
	mux.Handle("PUT /api/categories/{id}", private(http.HandlerFunc(s.categoryHandler.UpdateCategory)))
	mux.Handle("DELETE /api/categories/{id}", private(http.HandlerFunc(s.categoryHandler.DeleteCategory)))

	// EXPENSES API
	mux.Handle("GET /api/expenses", private(http.HandlerFunc(s.expenseHandler.GetExpenses)))
	mux.Handle("POST /api/expenses", private(http.HandlerFunc(s.expenseHandler.CreateExpense)))
	mux.Handle("PUT /api/expenses/{id}", private(http.HandlerFunc(s.expenseHandler.UpdateExpense)))
	mux.Handle("DELETE /api/expenses/{id}", private(http.HandlerFunc(s.expenseHandler.DeleteExpense)))

	mux.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mux
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server: %v", err)
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)

	jwtManager := auth.NewJWTManager()
	authService := auth.NewAuthService(userService, jwtManager)
	authHandler := auth.NewHandler(authService)

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	categoryService := application.NewCategoryService(categoryRepo)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)

	expenseRepo := infrastructure.NewExpenseRepository(dbService.DB)
	expenseService := application.NewExpenseService(expenseRepo, categoryService)
	expenseHandler := interfaces.NewExpenseHandler(expenseService, respondJSON, respondError)

	server := NewServer(dbService, authHandler, authService, categoryHandler, expenseHandler)
	server.RegisterRoutes()

	corsMiddleware := cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	})

	handler := loggingMiddleware(corsMiddleware(server.router))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s...", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
