package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/jhoicas/tiendapyme-api/internal/application/auth"
	"github.com/jhoicas/tiendapyme-api/internal/application/dto"
	"github.com/jhoicas/tiendapyme-api/internal/application/superadmin"
	"github.com/jhoicas/tiendapyme-api/internal/application/usecase"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProductUC *usecase.ProductUseCase
	StoreUC   *usecase.StoreUseCase
	CartUC    *usecase.CartUseCase
	OrderUC   *usecase.OrderUseCase
	AIUC      *usecase.AIUseCase

	Accounts  *superadmin.AccountUseCase
	Plans     *superadmin.PlanUseCase
	Providers *superadmin.ProviderUseCase
	Messages  *superadmin.MessageUseCase
	Backups   *superadmin.BackupUseCase

	Stores    storeChecker
	JWTSecret string
	// AuthRateLimit peticiones por minuto e IP en /api/auth; 0 = sin límite.
	AuthRateLimit int
}

// Router registra las rutas de la API y el 404 final.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público, con límite por IP)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	if deps.AuthRateLimit > 0 {
		authGroup.Use(limiter.New(limiter.Config{
			Max:        deps.AuthRateLimit,
			Expiration: time.Minute,
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "TOO_MANY_REQUESTS", Message: "demasiados intentos, espere un momento"})
			},
		}))
	}
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Navegación de pantallas (sesión opcional)
	session := api.Group("/session", OptionalAuth(deps.JWTSecret))
	session.Get("/screen", authHandler.Screen)
	session.Post("/navigate", authHandler.Navigate)

	// Rutas de tienda: token sme con tienda existente. Cada grupo lleva su propia cadena;
	// un Group("") con handlers la aplicaría a todo /api.
	shopMW := []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleSME), RequireStore(deps.Stores)}

	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products", shopMW...)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/duplicate", productHandler.Duplicate)
	products.Patch("/:id/status-toggle", productHandler.ToggleStatus)

	storeHandler := NewStoreHandler(deps.StoreUC)
	settings := api.Group("/settings", shopMW...)
	settings.Get("/business", storeHandler.GetSettings)
	settings.Put("/business", storeHandler.UpdateSettings)
	onboarding := api.Group("/onboarding", shopMW...)
	onboarding.Get("/status", storeHandler.GetOnboardingStatus)
	onboarding.Put("/status", storeHandler.SetOnboardingStatus)
	onboarding.Post("/business-info", storeHandler.SubmitBusinessInfo)
	onboarding.Post("/personalization", storeHandler.SubmitPersonalization)

	cartHandler := NewCartHandler(deps.CartUC)
	cart := api.Group("/cart", shopMW...)
	cart.Get("/", cartHandler.Get)
	cart.Post("/", cartHandler.Replace)
	cart.Post("/share", cartHandler.Share)
	cart.Post("/import", cartHandler.Import)

	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := api.Group("/orders", shopMW...)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Post("/checkout", orderHandler.Checkout)
	orders.Put("/:id/status", orderHandler.UpdateStatus)
	orders.Get("/:id/receipt", orderHandler.Receipt)

	storefront := api.Group("/storefront", shopMW...)
	storefront.Get("/inquiry", orderHandler.GeneralInquiry)
	storefront.Get("/products/:id/inquiry", orderHandler.ProductInquiry)

	aiHandler := NewAIHandler(deps.AIUC)
	ai := api.Group("/ai", shopMW...)
	ai.Post("/generate-description", aiHandler.GenerateDescription)
	ai.Post("/suggest-categories", aiHandler.SuggestCategories)
	ai.Post("/generate-marketing-content", aiHandler.GenerateMarketingContent)

	// Superadmin
	sa := NewSuperadminHandler(deps.Accounts, deps.Plans, deps.Providers, deps.Messages, deps.Backups)
	admin := api.Group("/superadmin", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleSuperadmin))

	admin.Get("/accounts", sa.ListAccounts)
	admin.Post("/accounts", sa.CreateAccount)
	admin.Put("/accounts/:id", sa.UpdateAccount)
	admin.Delete("/accounts/:id", sa.DeleteAccount)

	admin.Get("/plans", sa.ListPlans)
	admin.Post("/plans", sa.CreatePlan)
	admin.Put("/plans/:id", sa.UpdatePlan)
	admin.Patch("/plans/:id/archive-toggle", sa.TogglePlanArchive)

	admin.Get("/ai-providers", sa.ListProviders)
	admin.Post("/ai-providers", sa.CreateProvider)
	admin.Put("/ai-providers/:id", sa.UpdateProvider)
	admin.Delete("/ai-providers/:id", sa.DeleteProvider)

	admin.Get("/messages", sa.ListMessages)
	admin.Post("/messages", sa.SendMessage)
	admin.Delete("/messages/:id", sa.DeleteMessage)

	admin.Get("/backups/logs", sa.ListBackups)
	admin.Post("/backups/create", sa.CreateBackup)
	admin.Delete("/backups/logs/:id", sa.DeleteBackup)
	admin.Get("/backups/download/:id", sa.DownloadBackup)

	app.Use(NotFound)
}
