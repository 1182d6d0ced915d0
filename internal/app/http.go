package app

import (
	"context"
	"time"

	"github.com/krityagi/auth-service/internal/auth"
	"github.com/krityagi/auth-service/internal/auth/handler"
	"github.com/krityagi/auth-service/internal/config"
	"github.com/krityagi/auth-service/internal/mail"
	"github.com/krityagi/auth-service/internal/middleware"
	"github.com/krityagi/auth-service/internal/ratelimit"
	"github.com/krityagi/auth-service/internal/session"
	"github.com/krityagi/auth-service/internal/user"

	"github.com/gin-gonic/gin"
)

const (
	loginRateWindow = 15 * time.Minute
	loginRateMax    = 5
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	userStore := user.NewPostgresStore(infra.DB.DB)
	sessionStore := session.NewRedisStore(infra.Redis.Client)

	mailer := mail.NewSMTPMailer(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUsername,
		cfg.SMTPPassword,
		cfg.MailFrom,
	)

	authService := auth.NewService(
		userStore,
		sessionStore,
		mailer,
		cfg.PublicBaseURL,
	)

	cookieOpts := session.CookieOptions{
		Secure: cfg.CookieSecure,
		Domain: cfg.CookieDomain,
	}

	loginLimiter := ratelimit.Middleware(
		ratelimit.New(loginRateWindow, loginRateMax),
		"Too many login attempts, please try again later.",
	)

	authHandler := handler.NewHandler(authService, cookieOpts)
	authMiddleware := middleware.NewAuthMiddleware(sessionStore)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router, loginLimiter)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected API Routes
	// ----------------------------

	api := router.Group("/api")
	api.Use(middleware.GinRequireAuth(authMiddleware))

	api.GET("/me", func(c *gin.Context) {
		id, _ := middleware.IdentityFromContext(c.Request.Context())
		c.JSON(200, gin.H{
			"email": id.Email,
			"name":  id.Name,
			"role":  id.Role,
		})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}
