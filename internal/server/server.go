package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"gymdesk/internal/analytics"
	"gymdesk/internal/attendance"
	"gymdesk/internal/auth"
	"gymdesk/internal/booking"
	"gymdesk/internal/category"
	"gymdesk/internal/config"
	"gymdesk/internal/email"
	"gymdesk/internal/member"
	"gymdesk/internal/membership"
	"gymdesk/internal/payment"
	"gymdesk/internal/plan"
	"gymdesk/internal/session"
	"gymdesk/internal/storage"
	"gymdesk/internal/trainer"
	"gymdesk/internal/user"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(50, 100))

	photos := storage.NewDiskStore(cfg.UploadDir)

	userHandler := user.NewHandler(user.NewService(user.NewRepository(db), cfg.JWTSecret))
	memberHandler := member.NewHandler(member.NewService(member.NewRepository(db), photos, emailService))
	trainerHandler := trainer.NewHandler(trainer.NewService(trainer.NewRepository(db), photos))
	categoryHandler := category.NewHandler(db)
	planHandler := plan.NewHandler(plan.NewService(plan.NewRepository(db)))
	sessionHandler := session.NewHandler(session.NewService(session.NewRepository(db)))
	membershipHandler := membership.NewHandler(membership.NewService(membership.NewRepository(db), emailService))
	bookingHandler := booking.NewHandler(booking.NewService(booking.NewRepository(db), emailService))
	attendanceHandler := attendance.NewHandler(attendance.NewService(attendance.NewRepository(db)))
	paymentHandler := payment.NewHandler(payment.NewService(payment.NewRepository(db)))
	analyticsHandler := analytics.NewHandler(db)
	searchHandler := NewSearchHandler(db)

	public := router.Group("/auth")
	{
		public.POST("/login", userHandler.Login)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.Me)
		protected.POST("/me/password", userHandler.ChangePassword)

		protected.GET("/dashboard", analyticsHandler.Dashboard)
		protected.GET("/search", searchHandler.Search)

		protected.POST("/members", memberHandler.Create)
		protected.GET("/members", memberHandler.List)
		protected.GET("/members/:memberID", memberHandler.Get)
		protected.PUT("/members/:memberID", memberHandler.Update)
		protected.DELETE("/members/:memberID", memberHandler.Delete)

		protected.POST("/trainers", trainerHandler.Create)
		protected.GET("/trainers", trainerHandler.List)
		protected.GET("/trainers/:trainerID", trainerHandler.Get)
		protected.PUT("/trainers/:trainerID", trainerHandler.Update)
		protected.DELETE("/trainers/:trainerID", trainerHandler.Delete)

		protected.POST("/categories", categoryHandler.Create)
		protected.GET("/categories", categoryHandler.List)
		protected.DELETE("/categories/:categoryID", categoryHandler.Delete)

		protected.GET("/plans", planHandler.List)
		protected.GET("/plans/:planID", planHandler.Get)

		protected.POST("/sessions", sessionHandler.Create)
		protected.GET("/sessions", sessionHandler.List)
		protected.GET("/sessions/:sessionID", sessionHandler.Get)
		protected.PUT("/sessions/:sessionID", sessionHandler.Update)
		protected.DELETE("/sessions/:sessionID", sessionHandler.Delete)
		protected.GET("/sessions/:sessionID/bookings", bookingHandler.ListBySession)
		protected.GET("/sessions/:sessionID/eligible-members", bookingHandler.ListEligibleMembers)

		protected.POST("/memberships", membershipHandler.Create)
		protected.GET("/memberships", membershipHandler.ListActive)
		protected.POST("/memberships/:membershipID/deactivate", membershipHandler.Deactivate)
		protected.GET("/members/:memberID/memberships", membershipHandler.ListByMember)

		protected.POST("/bookings", bookingHandler.Create)
		protected.POST("/bookings/:bookingID/cancel", bookingHandler.Cancel)
		protected.POST("/bookings/:bookingID/attended", bookingHandler.MarkAttended)
		protected.GET("/members/:memberID/bookings", bookingHandler.ListByMember)

		protected.POST("/attendance/check-in", attendanceHandler.CheckIn)
		protected.POST("/attendance/check-out", attendanceHandler.CheckOut)
		protected.GET("/attendance/open", attendanceHandler.ListOpen)
		protected.GET("/members/:memberID/attendance", attendanceHandler.ListByMember)

		protected.POST("/payments", paymentHandler.Create)
		protected.GET("/payments", paymentHandler.List)
		protected.GET("/members/:memberID/payments", paymentHandler.MemberStatement)
	}

	adminMiddleware := auth.RequireRole("admin")
	admin := router.Group("/admin")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("/users", userHandler.Register)
		admin.GET("/users", userHandler.List)
		admin.PUT("/users/:userID/role", userHandler.UpdateRole)
		admin.PUT("/users/:userID/suspend", userHandler.Suspend)

		admin.POST("/plans", planHandler.Create)
		admin.PUT("/plans/:planID", planHandler.Update)
		admin.POST("/plans/:planID/toggle", planHandler.ToggleActive)
	}

	router.Static("/uploads", cfg.UploadDir)

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
