package models

import "ctchen222/gists-api/internal/pagination"

// GistSummary is the simplified gist returned to clients.
type GistSummary struct {
	ID          string  `json:"id"`
	HTMLURL     string  `json:"html_url"`
	Description *string `json:"description"`
}

// GistsRequest binds the path parameter of GET /:username.
type GistsRequest struct {
	Username string `uri:"username" binding:"required,github_username"`
}

// PageRequest binds the pagination query parameters. Absent values are nil.
type PageRequest struct {
	Page *int `form:"page" binding:"omitempty,min=1"`
	Size *int `form:"size" binding:"omitempty,min=1,max=100"`
}

// Params converts the request into pagination parameters; unset fields
// stay zero so defaults apply.
func (r PageRequest) Params() pagination.Params {
	var p pagination.Params
	if r.Page != nil {
		p.Page = *r.Page
	}
	if r.Size != nil {
		p.Size = *r.Size
	}
	return p
}

// GistPage is the success body of GET /:username.
type GistPage = pagination.Page[GistSummary]

// WelcomeResponse is the body of GET /.
type WelcomeResponse struct {
	Message string `json:"message"`
}
