package http

import (
	"net/http"
	"time"

	"visibility-srv/internal/middleware"
	"visibility-srv/internal/report"
	"visibility-srv/pkg/discord"
	"visibility-srv/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const defaultProgressInterval = time.Second

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
	RegisterShareRoutes(r *gin.RouterGroup)
}

// Config controls the websocket watch.
type Config struct {
	ProgressInterval time.Duration
	// AllowedOrigins are accepted on websocket upgrades besides same-host requests.
	AllowedOrigins []string
}

type handler struct {
	l        log.Logger
	uc       report.UseCase
	discord  discord.IDiscord
	upgrader websocket.Upgrader
	config   Config
}

func New(l log.Logger, uc report.UseCase, discord discord.IDiscord, cfg Config) Handler {
	if cfg.ProgressInterval <= 0 {
		cfg.ProgressInterval = defaultProgressInterval
	}
	h := &handler{
		l:       l,
		uc:      uc,
		discord: discord,
		config:  cfg,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

func (h *handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, o := range h.config.AllowedOrigins {
		if o == origin {
			return true
		}
	}
	return origin == "http://"+r.Host || origin == "https://"+r.Host
}
