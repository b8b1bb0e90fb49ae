package routes

import (
	"bengal_portal/internal/adapter/http/handlers"
	"bengal_portal/internal/adapter/persistence/repository"
	"bengal_portal/internal/config"
	"bengal_portal/internal/infrastructure/metrics"
	"bengal_portal/internal/usecase"
	"bengal_portal/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	PathSession   = "/session"
	PathJobs      = "/jobs"
	PathQuotes    = "/quotes"
	PathCustomers = "/customers"
	PathAssistant = "/assistant"
)

// dependencies are the collaborators built from configuration. gateway and
// assistant may be nil.
type dependencies struct {
	store     interfaces.IStore
	gateway   interfaces.IPaymentGateway
	assistant interfaces.IAssistant
	registry  *prometheus.Registry
}

type portalHandlers struct {
	session   *handlers.SessionHandler
	jobs      *handlers.JobHandler
	quotes    *handlers.QuoteHandler
	customers *handlers.CustomerHandler
	assistant *handlers.AssistantHandler
}

// registerRoutes wires repositories, use cases and handlers onto r.
func registerRoutes(r *gin.Engine, cfg config.Config, deps dependencies) {
	lifecycle := metrics.NewLifecycleMetrics(deps.registry)

	jobRepo := repository.NewJobRepository(deps.store, cfg.StoreKeyPrefix)
	quoteRepo := repository.NewQuoteRepository(deps.store, cfg.StoreKeyPrefix)
	sessionRepo := repository.NewSessionRepository(deps.store, cfg.StoreKeyPrefix)
	chatRepo := repository.NewChatHistoryRepository(deps.store, cfg.StoreKeyPrefix)

	jobUseCase := usecase.NewJobUseCase(jobRepo, lifecycle, cfg.PublicBaseURL)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, deps.gateway, lifecycle, cfg.CheckoutFallbackURL)
	identityUseCase := usecase.NewIdentityUseCase(sessionRepo, jobUseCase, lifecycle)
	customerUseCase := usecase.NewCustomerUseCase(jobUseCase, quoteUseCase)
	assistantUseCase := usecase.NewAssistantUseCase(chatRepo, deps.assistant, lifecycle)

	h := portalHandlers{
		session:   handlers.NewSessionHandler(identityUseCase),
		jobs:      handlers.NewJobHandler(jobUseCase, cfg.WarrantyHorizonDays),
		quotes:    handlers.NewQuoteHandler(quoteUseCase),
		customers: handlers.NewCustomerHandler(customerUseCase),
		assistant: handlers.NewAssistantHandler(assistantUseCase),
	}

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.registry, promhttp.HandlerOpts{})))

	// Public routes
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addSessionRoutes(v1, h.session)

	// Routes behind a session
	authed := v1.Group("", handlers.RequireSession(identityUseCase))
	staff := authed.Group("", handlers.RequireAdmin())
	addJobRoutes(authed, staff, h.jobs)
	addQuoteRoutes(authed, staff, h.quotes)
	addCustomerRoutes(authed, staff, h.customers)
	addAssistantRoutes(authed, h.assistant)
}

func addSessionRoutes(rg *gin.RouterGroup, h *handlers.SessionHandler) {
	session := rg.Group(PathSession)
	{
		session.GET("", h.Resolve)
		session.POST("/login", h.Login)
		session.DELETE("", h.Logout)
		session.PATCH("/profile", h.UpdateProfile)
	}
}

func addJobRoutes(authed, staff *gin.RouterGroup, h *handlers.JobHandler) {
	jobs := authed.Group(PathJobs)
	{
		jobs.GET("/:id", h.GetJob)
		jobs.GET("/:id/warranty", h.GetWarranty)
		jobs.POST("/:id/notes", h.AddNote)
	}

	staffJobs := staff.Group(PathJobs)
	{
		staffJobs.GET("", h.ListJobs)
		staffJobs.POST("", h.CreateJob)
		staffJobs.PUT("/:id", h.UpdateJob)
		staffJobs.PATCH("/:id/status", h.SetStatus)
		staffJobs.PATCH("/:id/warranty", h.SetWarranty)
		staffJobs.DELETE("/:id", h.DeleteJob)
		staffJobs.GET("/:id/invite", h.CreateInvite)
	}
}

func addQuoteRoutes(authed, staff *gin.RouterGroup, h *handlers.QuoteHandler) {
	quotes := authed.Group(PathQuotes)
	{
		quotes.GET("", h.ListQuotes)
		quotes.GET("/:id", h.GetQuote)
		quotes.POST("", h.RequestQuote)
		quotes.POST("/:id/pay", h.PayQuote)
	}

	staff.Group(PathQuotes).PATCH("/:id/price", h.PriceQuote)
}

func addCustomerRoutes(authed, staff *gin.RouterGroup, h *handlers.CustomerHandler) {
	authed.Group(PathCustomers).GET("/me/overview", h.Overview)
	staff.Group(PathCustomers).GET("", h.Directory)
}

func addAssistantRoutes(authed *gin.RouterGroup, h *handlers.AssistantHandler) {
	messages := authed.Group(PathAssistant + "/messages")
	{
		messages.GET("", h.History)
		messages.POST("", h.Ask)
		messages.DELETE("", h.Clear)
	}
}
