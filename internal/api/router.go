package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	redisclient "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/memberhub/member-api/internal/api/handler"
	"github.com/memberhub/member-api/internal/api/middleware"
	"github.com/memberhub/member-api/internal/core/domain"
	"github.com/memberhub/member-api/internal/core/service"
	"github.com/memberhub/member-api/internal/core/token"
	mongodb "github.com/memberhub/member-api/internal/infrastructure/db/mongo"
	redisdb "github.com/memberhub/member-api/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with every dependency explicitly
// constructed and every route registered. The authentication middleware runs
// globally; per-group RequireRoles middleware enforces the endpoint policy.
func NewRouter(db *mongo.Database, rdb *redisclient.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("member_api"))

	// --- Dependencies ---
	memberRepo := mongodb.NewMemberRepository(db)
	roleRepo := redisdb.NewRoleCache(rdb, mongodb.NewRoleRepository(db), 5*time.Minute)
	codec := token.NewCodec(jwtSecret, tokenTTL)

	authService := service.NewAuthService(memberRepo, roleRepo, codec, log)
	memberService := service.NewMemberService(memberRepo, roleRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	memberHandler := handler.NewMemberHandler(memberService)

	e.Use(middleware.Auth(authService))

	// --- Auth routes ---
	e.POST("/api/authenticate", authHandler.Login)

	// --- Member routes ---
	members := e.Group("/api/members")
	members.POST("", memberHandler.SignUp)
	members.GET("/exists/:email", memberHandler.Exists)
	members.GET("/:id", memberHandler.GetMember, middleware.RequireRoles(domain.RoleUser, domain.RoleAdmin))
	members.PATCH("/:id", memberHandler.Modify, middleware.RequireRoles(domain.RoleUser, domain.RoleAdmin))
	members.GET("", memberHandler.GetMembers, middleware.RequireRoles(domain.RoleAdmin))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
