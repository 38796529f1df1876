package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/boat-rental/internal/audit"
	domainavailability "github.com/BruksfildServices01/boat-rental/internal/domain/availability"
	domainboat "github.com/BruksfildServices01/boat-rental/internal/domain/boat"
	domainbooking "github.com/BruksfildServices01/boat-rental/internal/domain/booking"
	domainreview "github.com/BruksfildServices01/boat-rental/internal/domain/review"
	domainuser "github.com/BruksfildServices01/boat-rental/internal/domain/user"
	"github.com/BruksfildServices01/boat-rental/internal/handlers"
	"github.com/BruksfildServices01/boat-rental/internal/infra/blob"
	"github.com/BruksfildServices01/boat-rental/internal/middleware"
	"github.com/BruksfildServices01/boat-rental/internal/models"
	ucAvailability "github.com/BruksfildServices01/boat-rental/internal/usecase/availability"
	ucBooking "github.com/BruksfildServices01/boat-rental/internal/usecase/booking"
	ucReview "github.com/BruksfildServices01/boat-rental/internal/usecase/review"
)

// Dependencies are the storage ports and collaborators the routes need.
// Postgres and the in-memory store both provide them.
type Dependencies struct {
	Availability domainavailability.Repository
	Bookings     domainbooking.Repository
	Reviews      domainreview.Repository
	Users        domainuser.Repository
	Boats        domainboat.Repository
	AuditLogs    audit.Reader

	Cache    domainavailability.Cache
	Notifier domainbooking.Notifier
	Audit    *audit.Dispatcher
	Blobs    blob.Store
	Log      *zap.Logger

	JWTSecret       string
	CORSOrigins     []string
	RateLimitPerMin int
	WriteTimeout    time.Duration

	// Now stamps booking ids and timestamps. Defaults to time.Now.
	Now func() time.Time
}

func RegisterRoutes(r *gin.Engine, d Dependencies) {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(d.Log),
		middleware.AccessLog(d.Log),
		middleware.CORS(d.CORSOrigins),
		middleware.RateLimit(d.RateLimitPerMin, d.Log),
	)

	// ======================================================
	// USE CASES
	// ======================================================
	checkUC := ucAvailability.NewCheckAvailability(d.Availability)
	listUnavailableUC := ucAvailability.NewListUnavailable(d.Availability, d.Cache)
	calendarUC := ucAvailability.NewCalendar(d.Availability, d.Cache, d.Audit)

	bookingDeps := ucBooking.Deps{
		Repo:         d.Bookings,
		Cache:        d.Cache,
		Notifier:     d.Notifier,
		Audit:        d.Audit,
		Log:          d.Log,
		WriteTimeout: d.WriteTimeout,
		Now:          d.Now,
	}
	createBookingUC := ucBooking.NewCreateBooking(bookingDeps)
	updateBookingUC := ucBooking.NewUpdateBookingStatus(bookingDeps)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingDeps)
	listBookingsUC := ucBooking.NewListBookings(d.Bookings)

	reviewsUC := ucReview.NewReviews(d.Reviews, d.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	availabilityHandler := handlers.NewAvailabilityHandler(checkUC, listUnavailableUC, calendarUC)
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateBookingUC,
		cancelBookingUC,
		listBookingsUC,
	)
	authHandler := handlers.NewAuthHandler(d.Users, d.JWTSecret)
	meHandler := handlers.NewMeHandler(d.Users)
	boatImageHandler := handlers.NewBoatImageHandler(d.Boats, d.Blobs)
	reviewHandler := handlers.NewReviewHandler(reviewsUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogs)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api/v1")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// AVAILABILITY (public reads)
		// ------------------------------
		api.GET("/availability/check", availabilityHandler.Check)
		api.GET("/availability/unavailable", availabilityHandler.ListUnavailable)
		api.GET("/availability/boats/:boatId/unavailable", availabilityHandler.ListBoatUnavailable)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.JWTSecret))
		{
			secured.GET("/me", meHandler.GetMe)

			manage := middleware.RequireRoles(models.RoleAdmin, models.RoleOwner)
			adminOnly := middleware.RequireRoles(models.RoleAdmin)

			// ------------------------------
			// AVAILABILITY (owner writes)
			// ------------------------------
			secured.POST("/availability/boats/:boatId/unavailable", manage, availabilityHandler.AddBlock)
			secured.DELETE("/availability/boats/:boatId/unavailable/:startDate", manage, availabilityHandler.RemoveBlock)
			secured.POST("/availability/block", manage, availabilityHandler.SetPeriod)
			secured.DELETE("/availability/:availabilityId", manage, availabilityHandler.UnblockByID)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/bookings", bookingHandler.List)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.GET("/bookings/renter/:renterId",
				middleware.RequireRoles(models.RoleAdmin, models.RoleRenter), bookingHandler.ListByRenter)
			secured.GET("/bookings/owner/:ownerId", manage, bookingHandler.ListByOwner)
			secured.POST("/bookings", bookingHandler.Create)
			secured.PUT("/bookings/:id", manage, bookingHandler.UpdateStatus)
			secured.PATCH("/bookings/:id/cancel", manage, bookingHandler.Cancel)

			// ------------------------------
			// BOATS / REVIEWS / AUDIT
			// ------------------------------
			secured.POST("/boats/:boatId/image", manage, boatImageHandler.Upload)

			secured.POST("/reviews", reviewHandler.Create)
			secured.DELETE("/reviews/:id", adminOnly, reviewHandler.Delete)

			secured.GET("/audit-logs", adminOnly, auditLogsHandler.List)
		}
	}
}
