package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"ctchen222/gists-api/internal/api/controller"
	"ctchen222/gists-api/internal/api/response"
	"ctchen222/gists-api/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// registerBindingValidators installs the username rule on gin's binding
// engine so `binding:"github_username"` tags are enforced.
func registerBindingValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*playground.Validate)
		if !ok {
			err = fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
			return
		}
		err = validator.Register(v)
	})
	return err
}

type Server struct {
	engine *gin.Engine
}

// NewServer wires the gist routes onto a fresh gin engine.
func NewServer(gistController *controller.GistController) (*Server, error) {
	if err := registerBindingValidators(); err != nil {
		return nil, fmt.Errorf("failed to register binding validators: %w", err)
	}

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.Use(
		RequestID(),
		AccessLog(),
		gin.CustomRecovery(recoverWithDetail),
	)

	engine.GET("/", gistController.Welcome)
	engine.GET("/:username", gistController.ListGists)
	engine.NoRoute(gistController.NotFound)
	engine.NoMethod(gistController.MethodNotAllowed)

	return &Server{engine: engine}, nil
}

// Engine returns the http.Handler for the server.
func (s *Server) Engine() http.Handler {
	return s.engine
}

func recoverWithDetail(c *gin.Context, recovered any) {
	slog.ErrorContext(c.Request.Context(), "panic while handling request",
		"path", c.Request.URL.Path, "panic", recovered)
	response.AbortWithError(c, response.ErrInternal())
}
