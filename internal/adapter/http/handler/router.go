package handler

import (
	"roulette-table-service/internal/adapter/http/middleware"
	redisStore "roulette-table-service/internal/adapter/storage/redis"
	"roulette-table-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	GameSvc        ports.GameService
	StatsSvc       ports.StatsService
	BetParser      ports.BetParser
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- JWT-authenticated routes (table API) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	gameHandler := NewGameHandler(deps.GameSvc, deps.BetParser)
	statsHandler := NewStatsHandler(deps.StatsSvc)

	bets := v1.Group("/bets", jwtAuth)
	{
		bets.POST("", rl("bets"), gameHandler.PlaceBet)
		bets.POST("/parse", rl("bets"), gameHandler.ParseBet)
	}

	v1.POST("/spin", jwtAuth, rl("spin"), gameHandler.Spin)

	game := v1.Group("/game", jwtAuth)
	{
		game.GET("/state", rl("stats"), statsHandler.GameState)
	}

	players := v1.Group("/players", jwtAuth)
	{
		players.GET("/me", rl("stats"), statsHandler.Me)
	}

	v1.GET("/leaderboard", jwtAuth, rl("stats"), statsHandler.Leaderboard)
	v1.GET("/analytics", jwtAuth, rl("stats"), statsHandler.Analytics)

	return r
}
