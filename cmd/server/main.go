package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/arsicorp/zenith-lab-robotics/internal/adapters/redis"
	"github.com/arsicorp/zenith-lab-robotics/internal/adapters/repository"
	"github.com/arsicorp/zenith-lab-robotics/internal/adapters/rest"
	"github.com/arsicorp/zenith-lab-robotics/internal/application"
	"github.com/arsicorp/zenith-lab-robotics/pkg/auth"
	"github.com/arsicorp/zenith-lab-robotics/pkg/logger"
	"github.com/arsicorp/zenith-lab-robotics/pkg/shutdown"
)

type config struct {
	dbHost     string
	dbPort     string
	dbUser     string
	dbPassword string
	dbName     string
	redisAddr  string
	redisPass  string
	redisDB    int
	httpPort   string
	jwtSecret  string
	appEnv     string
	logLevel   string
}

func loadConfig() config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	return config{
		dbHost:     getEnv("DB_HOST", "localhost"),
		dbPort:     getEnv("DB_PORT", "5432"),
		dbUser:     getEnv("DB_USER", "postgres"),
		dbPassword: getEnv("DB_PASSWORD", "postgres"),
		dbName:     getEnv("DB_NAME", "zenith"),
		redisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),
		redisPass:  getEnv("REDIS_PASSWORD", ""),
		redisDB:    redisDB,
		httpPort:   getEnv("HTTP_PORT", "8080"),
		jwtSecret:  getEnv("JWT_SECRET", ""),
		appEnv:     getEnv("APP_ENV", "dev"),
		logLevel:   getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment")
	}
	cfg := loadConfig()

	log := logger.New("zenith-api", cfg.appEnv, cfg.logLevel)
	auth.SetSecret(cfg.jwtSecret)

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.dbHost, cfg.dbPort, cfg.dbUser, cfg.dbPassword, cfg.dbName)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Error("open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Error("ping database", "error", err)
		os.Exit(1)
	}

	if err := initDB(db); err != nil {
		log.Error("init database", "error", err)
		os.Exit(1)
	}

	cache := redis.NewCache(cfg.redisAddr, cfg.redisPass, cfg.redisDB)
	defer cache.Close()
	if err := cache.Ping(context.Background()); err != nil {
		log.Warn("redis unreachable, caching degraded", "error", err)
	}

	users := repository.NewUserRepository(db)
	profiles := repository.NewProfileRepository(db)
	catalog := repository.NewCatalogRepository(db)
	carts := repository.NewCartRepository(db)
	orders := repository.NewOrderRepository(db)
	lineItems := repository.NewLineItemRepository(db)
	jobs := repository.NewJobRepository(db)
	applications := repository.NewJobApplicationRepository(db)
	inquiries := repository.NewSalesInquiryRepository(db)

	server := rest.NewServer(
		application.NewAuthService(users, profiles),
		application.NewProfileService(profiles),
		application.NewCatalogService(catalog, cache),
		application.NewCartService(carts, catalog),
		application.NewCheckoutService(carts, profiles, orders, lineItems),
		application.NewOrderService(orders, lineItems),
		application.NewCareersService(jobs, applications, cache),
		application.NewSalesService(inquiries),
	)

	httpServer := &http.Server{
		Addr:         ":" + cfg.httpPort,
		Handler:      server.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	go func() {
		log.Info("http server listening", "port", cfg.httpPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown", "error", err)
	}
}

func initDB(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			hashed_password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'USER'
		)`,
		`CREATE TABLE IF NOT EXISTS profiles (
			user_id BIGINT PRIMARY KEY REFERENCES users(user_id),
			first_name TEXT NOT NULL DEFAULT '',
			last_name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL DEFAULT '',
			state TEXT NOT NULL DEFAULT '',
			zip TEXT NOT NULL DEFAULT '',
			account_type TEXT NOT NULL DEFAULT 'PERSONAL'
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			product_id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			price NUMERIC(12,2) NOT NULL,
			category_id BIGINT NOT NULL DEFAULT 0,
			description TEXT NOT NULL DEFAULT '',
			color TEXT NOT NULL DEFAULT '',
			stock INT NOT NULL DEFAULT 0,
			featured BOOLEAN NOT NULL DEFAULT FALSE,
			image_url TEXT NOT NULL DEFAULT '',
			buyer_requirement TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS shopping_cart (
			user_id BIGINT NOT NULL REFERENCES users(user_id),
			product_id BIGINT NOT NULL REFERENCES products(product_id),
			quantity INT NOT NULL DEFAULT 1,
			discount_percent NUMERIC(5,2) NOT NULL DEFAULT 0,
			PRIMARY KEY (user_id, product_id)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(user_id),
			date TIMESTAMPTZ NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL DEFAULT '',
			state TEXT NOT NULL DEFAULT '',
			zip TEXT NOT NULL DEFAULT '',
			shipping_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			order_total NUMERIC(12,2) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS order_line_items (
			order_line_item_id BIGSERIAL PRIMARY KEY,
			order_id BIGINT NOT NULL REFERENCES orders(order_id),
			product_id BIGINT NOT NULL REFERENCES products(product_id),
			sales_price NUMERIC(12,2) NOT NULL,
			quantity INT NOT NULL,
			discount NUMERIC(5,2) NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS jobs (
			job_id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			department TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			employment_type TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			posted_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			open BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS job_applications (
			application_id BIGSERIAL PRIMARY KEY,
			job_id BIGINT NOT NULL REFERENCES jobs(job_id),
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			resume_url TEXT NOT NULL DEFAULT '',
			cover_letter TEXT NOT NULL DEFAULT '',
			submitted_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sales_inquiries (
			inquiry_id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			company TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			message TEXT NOT NULL,
			product_interest TEXT NOT NULL DEFAULT '',
			submitted_at TIMESTAMPTZ NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}
