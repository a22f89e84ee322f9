package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"aradamart/internal/catalog"
	"aradamart/internal/config"
	"aradamart/internal/http/handlers"
	"aradamart/internal/kstream"
	applog "aradamart/internal/log"
	"aradamart/internal/repos"
	"aradamart/internal/store"
	"aradamart/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			defer f.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	// ---------- Activity sinks ----------
	var (
		sinks   []store.ActivitySink
		archive handlers.ActivityArchive
	)
	if cfg.Activity.DSN != "" {
		db, err := repos.OpenDB(cfg.Activity.DSN)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		repo := repos.NewActivityRepo(db)
		sinks = append(sinks, repo)
		archive = repo
	}
	if brokers := cfg.Activity.Brokers(); len(brokers) > 0 {
		pub := kstream.NewActivityPublisher(brokers, cfg.Activity.KafkaTopic)
		defer pub.Close()
		sinks = append(sinks, pub)
		log.Printf("[kafka] publishing activity to %s on %s", cfg.Activity.KafkaTopic, strings.Join(brokers, ","))
	}

	// ---------- Stores ----------
	seedAccounts, err := store.SeedAccounts()
	if err != nil {
		log.Fatal(err)
	}
	stores := handlers.Stores{
		Inventory: store.NewInventory(store.SeedInventory()...),
		Accounts:  store.NewAccounts(seedAccounts...),
		Favorites: store.NewFavorites(),
		Activity:  store.NewActivityLog(cfg.Activity.Cap, sinks...),
	}

	src := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout)
	deps := handlers.NewDeps(cfg, src, stores, archive)

	// Templates & app
	engine := html.NewFileSystem(http.FS(web.TemplatesFS()), ".html")
	engine.Reload(cfg.TemplatesReload)

	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: handlers.ErrorHandler,
		BodyLimit:    1 << 20, // 1 MiB
	})

	// ---------- Middlewares ----------
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/healthz"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.global.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}))

	deps.Routes(app)

	// Warm the directory; failures land in its error slot.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Catalog.Timeout)
		defer cancel()
		if err := deps.Catalog.Load(ctx); err != nil {
			applog.Warn(nil, "catalog.load.fail", err, nil)
		}
		deps.Catalog.LoadCategories(ctx)
	}()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Println("[server] shutting down")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("[server] %v", err)
	}
}
