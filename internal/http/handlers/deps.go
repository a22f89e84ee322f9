package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"aradamart/internal/config"
	applog "aradamart/internal/log"
	"aradamart/internal/services"
	"aradamart/internal/store"
)

// Stores are the process-wide state containers, built once in main.
type Stores struct {
	Inventory *store.Inventory
	Accounts  *store.Accounts
	Favorites *store.Favorites
	Activity  *store.ActivityLog
}

type Deps struct {
	Catalog *services.CatalogService

	ProductHandler   *ProductHandler
	SearchHandler    *SearchHandler
	CategoryHandler  *CategoryHandler
	WishlistHandler  *WishlistHandler
	AuthHandler      *AuthHandler
	InventoryHandler *InventoryHandler
	UserHandler      *UserHandler
	ActivityHandler  *ActivityHandler
	AdminHandler     *AdminHandler

	guard fiber.Handler
}

// NewDeps wires services and handlers over st. archive may be nil.
func NewDeps(cfg config.Config, src services.CatalogSource, st Stores, archive ActivityArchive) *Deps {
	catalogSvc := services.NewCatalogService(src, cfg.Catalog.PageSize)
	wishSvc := services.NewWishlistService(st.Favorites, catalogSvc)
	authSvc := services.NewAuthService(st.Accounts)
	userSvc := services.NewUserService(st.Accounts, st.Activity)
	invSvc := services.NewInventoryService(st.Inventory, st.Activity)

	return &Deps{
		Catalog:          catalogSvc,
		ProductHandler:   &ProductHandler{Catalog: catalogSvc, Wish: wishSvc},
		SearchHandler:    &SearchHandler{Catalog: catalogSvc},
		CategoryHandler:  &CategoryHandler{Catalog: catalogSvc},
		WishlistHandler:  &WishlistHandler{Wish: wishSvc},
		AuthHandler:      &AuthHandler{Auth: authSvc, Secret: cfg.JWTSecret},
		InventoryHandler: &InventoryHandler{Inv: invSvc},
		UserHandler:      &UserHandler{Users: userSvc},
		ActivityHandler:  &ActivityHandler{Log: st.Activity, Archive: archive},
		AdminHandler:     &AdminHandler{Inv: invSvc, Log: st.Activity},
		guard:            RequireAdmin(cfg.JWTSecret, userSvc),
	}
}

// Routes registers the API, the admin pages and the 404 fallback.
func (d *Deps) Routes(app *fiber.App) {
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	api := app.Group("/api/v1")

	api.Get("/products", d.ProductHandler.List)
	api.Post("/products/load", d.ProductHandler.Load)
	api.Post("/products/query", d.SearchHandler.Query)
	api.Post("/products/category", d.SearchHandler.Category)
	api.Post("/products/more", d.ProductHandler.More)
	api.Get("/products/:id", d.ProductHandler.Detail)
	api.Get("/categories", d.CategoryHandler.List)
	api.Post("/categories/load", d.CategoryHandler.Load)

	api.Get("/favorites", d.WishlistHandler.List)
	api.Post("/favorites/:id/toggle", d.WishlistHandler.Toggle)
	api.Delete("/favorites/:id", d.WishlistHandler.Remove)
	api.Delete("/favorites", d.WishlistHandler.Clear)

	// Login throttled per client.
	api.Post("/auth/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many attempts. Please try again later."})
		},
	}), d.AuthHandler.Login)
	api.Post("/auth/register", d.AuthHandler.Register)
	api.Post("/auth/logout", d.AuthHandler.Logout)
	api.Get("/auth/me", d.AuthHandler.Me)

	admin := api.Group("/admin", d.guard)
	admin.Get("/inventory", d.InventoryHandler.List)
	admin.Post("/inventory", d.InventoryHandler.Create)
	admin.Put("/inventory/:id", d.InventoryHandler.Update)
	admin.Delete("/inventory/:id", d.InventoryHandler.Delete)
	admin.Post("/inventory/:id/adjust", d.InventoryHandler.Adjust)
	admin.Get("/inventory/:id/availability", d.InventoryHandler.Availability)
	admin.Get("/users", d.UserHandler.List)
	admin.Post("/users", d.UserHandler.Create)
	admin.Get("/users/lookup", d.UserHandler.Lookup)
	admin.Put("/users/:id", d.UserHandler.Update)
	admin.Put("/users/:id/password", d.UserHandler.SetPassword)
	admin.Delete("/users/:id", d.UserHandler.Delete)
	admin.Get("/activity", d.ActivityHandler.List)

	pages := app.Group("/admin", d.guard)
	pages.Get("/inventory", d.AdminHandler.InventoryPage)
	pages.Get("/activity", d.AdminHandler.ActivityPage)

	app.Use(NotFound)
}
