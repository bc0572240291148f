package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estatecrm-api/internal/application/auth"
	"github.com/jhoicas/estatecrm-api/internal/application/usecase"
	"github.com/jhoicas/estatecrm-api/internal/infrastructure/storage"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	EmployeeUC     *usecase.EmployeeUseCase
	PropertyUC     *usecase.PropertyUseCase
	LeadUC         *usecase.LeadUseCase
	PostSaleUC     *usecase.PostSaleUseCase
	NotificationUC *usecase.NotificationUseCase
	ActivityUC     *usecase.ActivityUseCase
	FavoriteUC     *usecase.FavoriteUseCase
	ShortcodeUC    *usecase.ShortcodeUseCase
	DashboardUC    *usecase.DashboardUseCase
	ReportUC       *usecase.ReportUseCase
	Store          *storage.LocalStore
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	propertyHandler := NewPropertyHandler(deps.PropertyUC)
	leadHandler := NewLeadHandler(deps.LeadUC)
	postSaleHandler := NewPostSaleHandler(deps.PostSaleUC)
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	activityHandler := NewActivityHandler(deps.ActivityUC)
	favoriteHandler := NewFavoriteHandler(deps.FavoriteUC)
	shortcodeHandler := NewShortcodeHandler(deps.ShortcodeUC, deps.LeadUC)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	reportHandler := NewReportHandler(deps.ReportUC)
	uploadHandler := NewUploadHandler(deps.Store)

	// Público: login, captura de leads del sitio, widgets embebibles y
	// catálogo visible en web.
	api.Post("/auth/login", authHandler.Login)
	api.Post("/leads/website-form", leadHandler.CreateFromWebsite)
	api.Get("/properties/website-visible", propertyHandler.WebsiteVisible)
	api.Get("/embed/:code", shortcodeHandler.Embed)
	api.Get("/embed/:code/widget", shortcodeHandler.Widget)
	api.Post("/embed/:code/lead", shortcodeHandler.EmbedLead)

	// Imágenes subidas servidas como estáticos.
	app.Static("/uploads", deps.Store.Dir())

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)

	// Employees (solo admin)
	employees := protected.Group("/employees", RequirePermission(ActionManageEmployees))
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)
	employees.Get("/:id/performance", employeeHandler.Performance)

	// Properties: lectura para cualquier autenticado, escritura restringida
	properties := protected.Group("/properties")
	properties.Get("/", propertyHandler.List)
	properties.Get("/types", propertyHandler.Types)
	properties.Get("/locations", propertyHandler.Locations)
	properties.Post("/", RequirePermission(ActionEditProperties), propertyHandler.Create)
	properties.Post("/bulk-upload", RequirePermission(ActionBulkUpload), propertyHandler.BulkUpload)
	properties.Get("/:id", propertyHandler.GetByID)
	properties.Put("/:id", RequirePermission(ActionEditProperties), propertyHandler.Update)
	properties.Delete("/:id", RequirePermission(ActionDeleteProperty), propertyHandler.Delete)
	properties.Get("/:id/leads", leadHandler.ListByProperty)

	// Leads y pipeline
	leads := protected.Group("/leads")
	leads.Post("/", leadHandler.Create)
	leads.Get("/", leadHandler.List)
	leads.Get("/pipeline", leadHandler.Pipeline)
	leads.Get("/stages", leadHandler.Stages)
	leads.Get("/sources", leadHandler.Sources)
	leads.Get("/:id", leadHandler.GetByID)
	leads.Put("/:id", leadHandler.Update)
	leads.Delete("/:id", RequirePermission(ActionDeleteLead), leadHandler.Delete)
	leads.Post("/:id/communications", leadHandler.AddCommunication)
	leads.Get("/:id/communications", leadHandler.ListCommunications)

	// Post-ventas, pagos y tickets
	postSales := protected.Group("/post-sales", RequirePermission(ActionManagePostSales))
	postSales.Post("/", postSaleHandler.Create)
	postSales.Get("/", postSaleHandler.List)
	postSales.Get("/:id", postSaleHandler.GetByID)
	postSales.Put("/:id", postSaleHandler.Update)
	postSales.Post("/:id/payments", postSaleHandler.AddPayment)
	postSales.Put("/:id/payments/:payment_id", postSaleHandler.UpdatePayment)
	postSales.Post("/:id/tickets", postSaleHandler.AddTicket)
	postSales.Put("/:id/tickets/:ticket_id", postSaleHandler.UpdateTicket)

	// Notificaciones del usuario
	notifications := protected.Group("/notifications")
	notifications.Get("/", notificationHandler.List)
	notifications.Get("/follow-up-reminders", notificationHandler.FollowUpReminders)
	notifications.Post("/check-follow-ups", RequirePermission(ActionTriggerScan), notificationHandler.CheckFollowUps)
	notifications.Put("/read-all", notificationHandler.MarkAllRead)
	notifications.Put("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/:id", notificationHandler.Delete)

	// Feed de actividad (admin y manager)
	activities := protected.Group("/activities", RequirePermission(ActionViewActivities))
	activities.Get("/", activityHandler.List)
	activities.Get("/stats", activityHandler.Stats)

	// Favoritos del usuario
	favorites := protected.Group("/favorites")
	favorites.Get("/", favoriteHandler.List)
	favorites.Post("/", favoriteHandler.Add)
	favorites.Delete("/:property_id", favoriteHandler.Remove)
	favorites.Get("/:property_id/check", favoriteHandler.Check)
	favorites.Post("/:property_id/toggle", favoriteHandler.Toggle)

	// Shortcodes (gestión autenticada)
	shortcodes := protected.Group("/shortcodes")
	shortcodes.Post("/", shortcodeHandler.Create)
	shortcodes.Get("/", shortcodeHandler.List)
	shortcodes.Get("/:id", shortcodeHandler.GetByID)
	shortcodes.Put("/:id", shortcodeHandler.Update)
	shortcodes.Delete("/:id", shortcodeHandler.Delete)

	// Dashboard y reportes
	protected.Get("/dashboard/overview", dashboardHandler.Overview)

	reports := protected.Group("/reports", RequirePermission(ActionViewReports))
	reports.Get("/sales", reportHandler.Sales)
	reports.Get("/lead-sources", reportHandler.LeadSources)
	reports.Get("/employee-productivity", reportHandler.Productivity)
	reports.Get("/inventory", reportHandler.Inventory)

	// Subida de imágenes
	uploads := protected.Group("/upload", RequirePermission(ActionEditProperties))
	uploads.Post("/image", uploadHandler.Single)
	uploads.Post("/images", uploadHandler.Multiple)
	uploads.Delete("/image", uploadHandler.Delete)
}
