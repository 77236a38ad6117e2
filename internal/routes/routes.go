package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointment-booker/internal/config"
	"github.com/BruksfildServices01/appointment-booker/internal/handlers"
	"github.com/BruksfildServices01/appointment-booker/internal/middleware"
	ucBooking "github.com/BruksfildServices01/appointment-booker/internal/usecase/booking"
	"github.com/BruksfildServices01/appointment-booker/internal/web"
)

func RegisterRoutes(r *gin.Engine, deps ucBooking.Deps, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	r.SetHTMLTemplate(web.Templates())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	startUC := ucBooking.NewStartSession(deps)
	getUC := ucBooking.NewGetSchedule(deps)
	endUC := ucBooking.NewEndSession(deps)
	selectDateUC := ucBooking.NewSelectDate(deps)
	bookSlotUC := ucBooking.NewBookSlot(deps)
	adminBookUC := ucBooking.NewAdminBook(deps)
	rejectUC := ucBooking.NewRejectInput(deps)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		startUC,
		getUC,
		endUC,
		selectDateUC,
		bookSlotUC,
		adminBookUC,
	)

	bookingWebHandler := handlers.NewBookingWebHandler(
		startUC,
		getUC,
		selectDateUC,
		bookSlotUC,
		adminBookUC,
		rejectUC,
	)

	limit := middleware.RateLimitMiddleware(cfg.RateLimitPerMin, log)

	// ======================================================
	// 🌍 ROTAS WEB (HTML)
	// ======================================================
	webBooker := r.Group("/web/booker")
	{
		webBooker.GET("", limit, bookingWebHandler.Mount)
		webBooker.GET("/:id", bookingWebHandler.Show)
		webBooker.POST("/:id/date", limit, bookingWebHandler.SelectDate)
		webBooker.POST("/:id/slot", limit, bookingWebHandler.BookSlot)
		webBooker.POST("/:id/admin", limit, bookingWebHandler.AdminBook)
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api/sessions")
	{
		api.POST("", limit, bookingHandler.StartSession)
		api.GET("/:id", bookingHandler.GetSchedule)
		api.DELETE("/:id", bookingHandler.EndSession)
		api.GET("/:id/slots", bookingHandler.ListSlots)
		api.PUT("/:id/date", limit, bookingHandler.SelectDate)
		api.POST("/:id/slots/:time", limit, bookingHandler.BookSlot)
		api.POST("/:id/admin-bookings", limit, bookingHandler.AdminBook)
	}
}
