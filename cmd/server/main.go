package main

import (
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"sketchparty/internal/configs"
	"sketchparty/internal/game"
	"sketchparty/internal/logger"
	"sketchparty/internal/words"
)

func CreateServer(allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if len(allowedOrigins) == 0 {
		return r
	}

	r.Use(func(ctx *gin.Context) {
		origin := ctx.Request.Header.Get("Origin")
		if origin == "" || slices.Contains(allowedOrigins, origin) {
			ctx.Next()
			return
		}
		ctx.JSON(http.StatusForbidden, gin.H{"error": "forbidden origin"})
		ctx.Abort()
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{
			"Content-Type",
			"Upgrade",
			"Connection",
			"Sec-WebSocket-Key",
			"Sec-WebSocket-Version",
			"Sec-WebSocket-Extensions",
			"Sec-WebSocket-Protocol",
		},
	}))

	return r
}

func main() {
	_ = godotenv.Load()

	var allowedOrigins []string
	if configs.Envs.FRONTEND_ORIGIN != "" {
		if configs.Envs.GIN_MODE == "release" {
			allowedOrigins = append(allowedOrigins, "https://"+configs.Envs.FRONTEND_ORIGIN)
			allowedOrigins = append(allowedOrigins, "https://www."+configs.Envs.FRONTEND_ORIGIN)
		} else {
			allowedOrigins = append(allowedOrigins, "http://"+configs.Envs.FRONTEND_ORIGIN)
		}
	}

	corpus, err := words.Load(configs.Envs.WORDS_FILE)
	if err != nil {
		logger.Fatalf("Couldn't load words: %v", err)
	}
	provider, err := words.NewProvider(corpus)
	if err != nil {
		logger.Fatalf("Couldn't build word provider: %v", err)
	}

	registry := game.NewRegistry(provider)
	sessionRouter := game.NewSessionRouter(registry)
	gameHandler := game.NewGameHandler(sessionRouter)

	r := CreateServer(allowedOrigins)
	game.RegisterRoute(r, gameHandler)

	logger.Infof("api listening on port %s", configs.Envs.PORT)
	if err := r.Run(":" + configs.Envs.PORT); err != nil {
		logger.Fatalf("Couldn't start server: %v", err)
	}
}
