package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/session"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/snackshop/snack-shop-backend/internal/admin"
	"github.com/snackshop/snack-shop-backend/internal/cart"
	"github.com/snackshop/snack-shop-backend/internal/catalog"
	"github.com/snackshop/snack-shop-backend/internal/config"
	"github.com/snackshop/snack-shop-backend/internal/feedback"
	"github.com/snackshop/snack-shop-backend/internal/forum"
	"github.com/snackshop/snack-shop-backend/internal/order"
	"github.com/snackshop/snack-shop-backend/internal/recruit"
	"github.com/snackshop/snack-shop-backend/internal/user"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLog)

	// the database is optional; without it every store runs JSON-only
	db := openDB(cfg.DatabaseURL)
	if db != nil {
		defer db.Close()
		ensureTables(db)
	}

	sessions := session.New()
	cartStore := cart.NewSessionStore(sessions)

	catalogService := catalog.NewService(catalog.NewJSONRepository(cfg.DataDir))
	cartService := cart.NewService(cartStore, catalogService)

	var forumRepo forum.Repository = forum.NewJSONRepository(cfg.DataDir)
	var feedbackRepo feedback.Repository = feedback.NewJSONRepository(cfg.DataDir)
	var orderRepo order.Repository = order.NewJSONRepository(cfg.DataDir)
	var recruitRepo recruit.Repository = recruit.NewJSONRepository(cfg.DataDir)
	if db != nil {
		forumRepo = forum.NewFallbackRepository(forum.NewPostgresRepository(db), forumRepo)
		feedbackRepo = feedback.NewFallbackRepository(feedback.NewPostgresRepository(db), feedbackRepo)
		orderRepo = order.NewFallbackRepository(order.NewPostgresRepository(db), orderRepo)
		recruitRepo = recruit.NewFallbackRepository(recruit.NewPostgresRepository(db), recruitRepo)
	}

	forumService := forum.NewService(forumRepo)
	feedbackService := feedback.NewService(feedbackRepo)
	orderService := order.NewService(orderRepo)
	recruitService := recruit.NewService(recruitRepo)

	userService := user.NewService(user.NewJSONRepository(cfg.DataDir))

	catalogHandler := catalog.NewHandler(catalogService)
	cartHandler := cart.NewHandler(cartService)
	forumHandler := forum.NewHandler(forumService)
	feedbackHandler := feedback.NewHandler(feedbackService)
	recruitHandler := recruit.NewHandler(recruitService, cfg.UploadsDir)
	userHandler := user.NewHandler(userService, cartStore)
	orderHandler := order.NewHandler(orderService, cartService, userService)
	adminHandler := admin.NewHandler(cfg, catalogService, forumService, orderService, feedbackService, recruitService, admin.NewFileManager(cfg.DataDir))

	// public surface
	catalogHandler.RegisterPublicRoutes(app)
	cartHandler.RegisterPublicRoutes(app)
	forumHandler.RegisterPublicRoutes(app)
	feedbackHandler.RegisterPublicRoutes(app)
	recruitHandler.RegisterPublicRoutes(app)
	userHandler.RegisterPublicRoutes(app)
	adminHandler.RegisterPublicRoutes(app)

	// resumes uploaded through the recruiting form
	app.Static("/uploads", cfg.UploadsDir)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	// everything below requires a signed-in user
	userHandler.RegisterProtectedRoutes(app)
	forumHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	adminHandler.RegisterProtectedRoutes(app)

	log.Fatal(app.Listen(cfg.Addr))
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	log.Printf("%s %s %d %v", c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
	return err
}

// openDB connects when DATABASE_URL is set. Connection problems are logged,
// not fatal: the JSON stores carry the storefront on their own.
func openDB(databaseURL string) *sql.DB {
	if databaseURL == "" {
		log.Printf("DATABASE_URL not set, running on JSON stores only")
		return nil
	}

	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		log.Printf("warning: could not open database: %v", err)
		return nil
	}
	if err := db.Ping(); err != nil {
		log.Printf("warning: database unreachable, running on JSON stores only: %v", err)
	}
	return db
}

// ensureTables creates the relational schema on first connection; safe to run
// repeatedly, and failures are non-fatal because every store can fall back.
func ensureTables(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS "Forum" (
			id SERIAL PRIMARY KEY,
			post_id INT NOT NULL,
			author TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS "Posts" (
			id SERIAL PRIMARY KEY,
			author TEXT NOT NULL,
			title TEXT,
			content TEXT NOT NULL,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS "Comments" (
			id SERIAL PRIMARY KEY,
			post_id INT NOT NULL,
			author TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS "Orders" (
			id SERIAL PRIMARY KEY,
			order_number TEXT NOT NULL,
			customer_email TEXT NOT NULL,
			items_count INT NOT NULL DEFAULT 0,
			total_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			items_json TEXT,
			status TEXT NOT NULL DEFAULT 'Pending',
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS "Support" (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			subject TEXT,
			message TEXT NOT NULL,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS "Recruit" (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT,
			position_id INT NOT NULL,
			motivation TEXT NOT NULL,
			file_path TEXT,
			created_at TEXT
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("warning: could not ensure table: %v", err)
		}
	}
}
