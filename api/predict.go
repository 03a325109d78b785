package handler

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"match-predict-api/internal/config"
	"match-predict-api/pkg/server"
)

var (
	router   http.Handler
	setupErr error
	once     sync.Once
)

// setup builds the container and router on cold start
func setup() {
	gin.SetMode(gin.ReleaseMode)

	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		setupErr = err
		return
	}

	container, err := server.NewContainer(cfg)
	if err != nil {
		setupErr = err
		return
	}

	router = container.NewRouter(false)
}

// Handler is the Vercel entrypoint.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(setup)

	if setupErr != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"error":"Internal server error"}`))
		return
	}

	router.ServeHTTP(w, r)
}
