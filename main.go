package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Ricardo-1112/shuiba-order/accounts"
	"github.com/Ricardo-1112/shuiba-order/cart"
	"github.com/Ricardo-1112/shuiba-order/catalog"
	"github.com/Ricardo-1112/shuiba-order/config"
	"github.com/Ricardo-1112/shuiba-order/orders"
	"github.com/Ricardo-1112/shuiba-order/pkg/logger"
	"github.com/Ricardo-1112/shuiba-order/routes"
	"github.com/Ricardo-1112/shuiba-order/store"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logg := logger.New(logger.Config{
		Level:  logger.LogLevel(cfg.LogLevel),
		Format: cfg.LogFormat,
	})

	shop, err := config.LoadShop(cfg.ShopFile)
	if err != nil {
		logg.Fatal("Failed to load shop config", "error", err)
	}

	st, closeStore, err := openStore(cfg)
	if err != nil {
		logg.Fatal("Failed to open store", "driver", cfg.StorageDriver, "error", err)
	}
	defer closeStore()

	// Stores and engines. A load error here means corrupted data; refuse
	// to start rather than quietly dropping records.
	cat, err := catalog.New(st, logg)
	if err != nil {
		logg.Fatal("Failed to load catalog", "error", err)
	}
	if err := cat.SeedIfEmpty(); err != nil {
		logg.Fatal("Failed to seed catalog", "error", err)
	}

	cartEngine, err := cart.New(st, logg)
	if err != nil {
		logg.Fatal("Failed to load cart", "error", err)
	}

	orderEngine, err := orders.New(st, logg, shop.PickupSlots)
	if err != nil {
		logg.Fatal("Failed to load orders", "error", err)
	}

	directory, err := accounts.New(st, logg, shop.Admin)
	if err != nil {
		logg.Fatal("Failed to load accounts", "error", err)
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, routes.Deps{
		Catalog:   cat,
		Cart:      cartEngine,
		Orders:    orderEngine,
		Accounts:  directory,
		Shop:      shop,
		JWTSecret: cfg.JWTSecret,
	})

	logg.Info("Server starting", "port", cfg.Port, "driver", cfg.StorageDriver)
	if err := r.Run(":" + cfg.Port); err != nil {
		logg.Fatal("Server stopped", "error", err)
	}
}

// openStore builds the configured storage driver. The file driver is the
// default: one JSON list per collection under DATA_DIR.
func openStore(cfg *config.Config) (store.Store, func(), error) {
	switch cfg.StorageDriver {
	case "file":
		fs, err := store.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil
	case "sqlite":
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, nil, err
		}
		ss, err := store.NewSQLiteStore(filepath.Join(cfg.DataDir, "shuiba.db"))
		if err != nil {
			return nil, nil, err
		}
		return ss, func() { ss.Close() }, nil
	case "memory":
		return store.NewMemStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
