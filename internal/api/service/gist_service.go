package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"ctchen222/gists-api/internal/api/models"
	"ctchen222/gists-api/internal/api/response"
	"ctchen222/gists-api/internal/github"
	"ctchen222/gists-api/internal/pagination"
)

// GistService defines the business logic behind GET /:username.
type GistService interface {
	ListGists(ctx context.Context, username string, params pagination.Params) (*models.GistPage, error)
}

type gistService struct {
	fetcher     github.GistFetcher
	defaultSize int
}

// NewGistService creates a GistService. defaultSize is the page size used
// when the request does not specify one.
func NewGistService(fetcher github.GistFetcher, defaultSize int) GistService {
	return &gistService{fetcher: fetcher, defaultSize: defaultSize}
}

// ListGists fetches the user's gists and returns the requested page.
// Every error it returns is a *response.Error.
func (s *gistService) ListGists(ctx context.Context, username string, params pagination.Params) (*models.GistPage, error) {
	page, err := s.listGists(ctx, username, params)
	if err != nil {
		return nil, s.classify(ctx, username, err)
	}
	return page, nil
}

func (s *gistService) listGists(ctx context.Context, username string, params pagination.Params) (*models.GistPage, error) {
	gists, err := s.fetcher.ListUserGists(ctx, username)
	if err != nil {
		return nil, err
	}

	summaries, err := toSummaries(gists)
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		slog.InfoContext(ctx, "user has no gists", "username", username)
		return nil, response.ErrNoGists(username)
	}

	page := pagination.Paginate(summaries, params.Resolve(s.defaultSize))
	return &page, nil
}

// classify turns err into the client-facing error. Already-classified
// errors are returned unchanged.
func (s *gistService) classify(ctx context.Context, username string, err error) *response.Error {
	var apiErr *response.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var ghErr *github.Error
	if !errors.As(err, &ghErr) {
		slog.ErrorContext(ctx, "unexpected error while listing gists", "username", username, "error", err)
		return response.ErrInternal()
	}

	switch ghErr.Kind {
	case github.KindTimeout:
		slog.ErrorContext(ctx, "timeout while fetching gists", "username", username)
		return response.NewError(http.StatusGatewayTimeout, response.DetailTimeout)
	case github.KindTransport:
		slog.ErrorContext(ctx, "error communicating with GitHub", "username", username, "error", ghErr.Err)
		return response.NewError(http.StatusBadGateway, response.DetailTransport)
	case github.KindUserNotFound:
		slog.WarnContext(ctx, "GitHub user not found", "username", username)
		return response.ErrUserNotFound(username)
	case github.KindRateLimited:
		slog.WarnContext(ctx, "rate limit exceeded", "username", username)
		return response.NewError(http.StatusForbidden, response.DetailRateLimited)
	case github.KindUpstreamStatus:
		slog.ErrorContext(ctx, "error fetching gists",
			"username", username, "status", ghErr.StatusCode, "body", ghErr.Body)
		return response.NewError(clientStatus(ghErr.StatusCode), response.DetailUpstreamStatus)
	case github.KindMalformed:
		slog.ErrorContext(ctx, "invalid response from GitHub",
			"username", username, "body", ghErr.Body, "error", ghErr.Err)
		return response.NewError(http.StatusBadGateway, response.DetailInvalidResponse)
	default:
		slog.ErrorContext(ctx, "unexpected error while listing gists", "username", username, "error", err)
		return response.ErrInternal()
	}
}

// clientStatus passes an upstream status through unless it is one that
// cannot carry a response body (1xx, 204, 304); those become 502 so the
// client still receives a detail.
func clientStatus(upstream int) int {
	switch {
	case upstream < http.StatusOK,
		upstream == http.StatusNoContent,
		upstream == http.StatusNotModified:
		return http.StatusBadGateway
	default:
		return upstream
	}
}

// toSummaries keeps upstream order. id and html_url are required.
func toSummaries(gists []github.Gist) ([]models.GistSummary, error) {
	summaries := make([]models.GistSummary, 0, len(gists))
	for i, g := range gists {
		if g.ID == nil || g.HTMLURL == nil {
			return nil, fmt.Errorf("gist %d is missing id or html_url", i)
		}
		summaries = append(summaries, models.GistSummary{
			ID:          *g.ID,
			HTMLURL:     *g.HTMLURL,
			Description: g.Description,
		})
	}
	return summaries, nil
}
