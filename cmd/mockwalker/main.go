package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/simlexx-k/littleX/internal/config"
	"github.com/simlexx-k/littleX/internal/handler"
	"github.com/simlexx-k/littleX/internal/store"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.LoadMock()

	walkerStore := store.NewMemoryStore(cfg.FeedDelay)
	user := walkerStore.AddUser(cfg.Credentials, "")
	slog.Info("seeded user", "email", user.Email, "username", user.ProfileUsername)

	walkerHandler := handler.NewWalkerHandler(walkerStore)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	handler.RegisterRoutes(r, walkerHandler)

	slog.Info("mock walker listening", "addr", cfg.Addr, "feed_delay", cfg.FeedDelay.String())

	err := r.Run(cfg.Addr)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
