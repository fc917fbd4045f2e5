package main

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/shoprecs/shop-recs-backend/internal/catalog"
	"github.com/shoprecs/shop-recs-backend/internal/config"
	"github.com/shoprecs/shop-recs-backend/internal/rating"
	"github.com/shoprecs/shop-recs-backend/internal/recommend"
	"github.com/shoprecs/shop-recs-backend/internal/search"
)

// main wires dependencies and starts the HTTP server. Storage is selected by
// configuration: Postgres when DATABASE_URL is set, the JSON file store under
// DATA_DIR otherwise.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(logger.New())

	var (
		productRepo catalog.Repository
		ratingRepo  rating.Repository
	)
	if cfg.DatabaseURL != "" {
		db := mustOpenDB(cfg.DatabaseURL)
		defer db.Close()
		ensureSchema(db)
		productRepo = catalog.NewPostgresRepository(db)
		ratingRepo = rating.NewPostgresRepository(db)
	} else {
		productRepo = catalog.NewFileRepository(cfg.DataDir)
		ratingRepo = rating.NewFileRepository(cfg.DataDir)
	}

	productService := catalog.NewService(productRepo)
	catalog.NewHandler(productService).RegisterPublicRoutes(app)
	search.NewHandler(search.NewService(productRepo)).RegisterPublicRoutes(app)
	rating.NewHandler(rating.NewService(ratingRepo)).RegisterPublicRoutes(app)
	recommend.NewHandler(recommend.NewService(productRepo, ratingRepo)).RegisterPublicRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func mustOpenDB(dbURL string) *sql.DB {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}
	if err := db.Ping(); err != nil {
		panic(err)
	}
	return db
}

func ensureSchema(db *sql.DB) {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		asin TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		price DOUBLE PRECISION NOT NULL DEFAULT 0,
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		review_count INT NOT NULL DEFAULT 0,
		image_url TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		tags TEXT[] NOT NULL DEFAULT '{}',
		amazon_link TEXT
	)`); err != nil {
		panic(err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS ratings (
		user_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		rating DOUBLE PRECISION NOT NULL,
		review_text TEXT,
		PRIMARY KEY (user_id, product_id)
	)`); err != nil {
		panic(err)
	}
}
