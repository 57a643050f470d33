package controller

import (
	"log/slog"
	"net/http"

	"ctchen222/gists-api/internal/api/models"
	"ctchen222/gists-api/internal/api/response"
	"ctchen222/gists-api/internal/api/service"

	"github.com/gin-gonic/gin"
)

const welcomeMessage = "Welcome to the GitHub Gits Data fetch API"

// GistController handles gist-related HTTP requests.
type GistController struct {
	gistService service.GistService
}

// NewGistController creates a new GistController.
func NewGistController(gistService service.GistService) *GistController {
	return &GistController{
		gistService: gistService,
	}
}

// Welcome handles GET /.
func (gc *GistController) Welcome(c *gin.Context) {
	response.SuccessResponse(c, models.WelcomeResponse{Message: welcomeMessage})
}

// ListGists handles GET /:username.
func (gc *GistController) ListGists(c *gin.Context) {
	var req models.GistsRequest
	var page models.PageRequest
	if err := bindRequest(c, &req, &page); err != nil {
		slog.WarnContext(c.Request.Context(), "422 validation error",
			"url", c.Request.URL.String(), "error", err)
		response.AbortWithError(c, response.ErrInvalidInput())
		return
	}

	result, err := gc.gistService.ListGists(c.Request.Context(), req.Username, page.Params())
	if err != nil {
		response.AbortWithError(c, err)
		return
	}

	response.SuccessResponse(c, result)
}

// NotFound answers paths no route matched. Any such path is a username
// containing characters the route cannot accept.
func (gc *GistController) NotFound(c *gin.Context) {
	slog.WarnContext(c.Request.Context(), "422 unmatched route", "url", c.Request.URL.String())
	response.ErrorResponse(c, http.StatusUnprocessableEntity, response.DetailInvalidInput)
}

// MethodNotAllowed answers known paths requested with a method other than GET.
func (gc *GistController) MethodNotAllowed(c *gin.Context) {
	response.ErrorResponse(c, http.StatusMethodNotAllowed, response.DetailMethodNotAllowed)
}

func bindRequest(c *gin.Context, uri *models.GistsRequest, query *models.PageRequest) error {
	if err := c.ShouldBindUri(uri); err != nil {
		return err
	}
	return c.ShouldBindQuery(query)
}
