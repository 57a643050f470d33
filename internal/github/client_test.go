package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func requireKind(t *testing.T, err error, want Kind) *Error {
	t.Helper()
	var ghErr *Error
	require.True(t, errors.As(err, &ghErr), "expected *github.Error, got %T: %v", err, err)
	assert.Equal(t, want, ghErr.Kind)
	return ghErr
}

func TestClient_ListUserGists_Success(t *testing.T) {
	var gotPath, gotAccept string
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{"id":"aa1","html_url":"https://gist.github.com/aa1","description":"first","public":true},
			{"id":"bb2","html_url":"https://gist.github.com/bb2","description":null},
			{"id":"cc3","html_url":"https://gist.github.com/cc3"}
		]`)
	})

	c := NewClient(srv.URL, time.Second)
	gists, err := c.ListUserGists(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Equal(t, "/users/octocat/gists", gotPath)
	assert.Equal(t, "application/vnd.github+json", gotAccept)
	require.Len(t, gists, 3)
	assert.Equal(t, "aa1", *gists[0].ID)
	assert.Equal(t, "https://gist.github.com/aa1", *gists[0].HTMLURL)
	assert.Equal(t, "first", *gists[0].Description)
	assert.Equal(t, "bb2", *gists[1].ID)
	assert.Nil(t, gists[1].Description)
	assert.Equal(t, "cc3", *gists[2].ID)
	assert.Nil(t, gists[2].Description)
}

func TestClient_ListUserGists_EmptyList(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	})

	gists, err := NewClient(srv.URL, time.Second).ListUserGists(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Empty(t, gists)
}

func TestClient_ListUserGists_StatusClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   Kind
	}{
		{name: "not found", status: http.StatusNotFound, body: `{"message":"Not Found"}`, want: KindUserNotFound},
		{name: "rate limited", status: http.StatusForbidden, body: `{}`, want: KindRateLimited},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`, want: KindUpstreamStatus},
		{name: "unavailable", status: http.StatusServiceUnavailable, body: ``, want: KindUpstreamStatus},
		{name: "too many requests", status: http.StatusTooManyRequests, body: `{}`, want: KindUpstreamStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			})

			_, err := NewClient(srv.URL, time.Second).ListUserGists(context.Background(), "octocat")
			ghErr := requireKind(t, err, tt.want)
			assert.Equal(t, tt.status, ghErr.StatusCode)
			assert.Equal(t, "octocat", ghErr.Username)
		})
	}
}

func TestClient_ListUserGists_BodyShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Kind
	}{
		{name: "object instead of list", body: `{"message":"hello"}`, want: KindMalformed},
		{name: "string instead of list", body: `"gists"`, want: KindMalformed},
		{name: "null", body: `null`, want: KindMalformed},
		{name: "invalid json", body: `[{"id":`, want: KindTransport},
		{name: "empty body", body: ``, want: KindTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.body)
			})

			_, err := NewClient(srv.URL, time.Second).ListUserGists(context.Background(), "octocat")
			requireKind(t, err, tt.want)
		})
	}
}

func TestClient_ListUserGists_BadRecord(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "number element", body: `[1, 2]`},
		{name: "numeric id", body: `[{"id":12,"html_url":"https://gist.github.com/12"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.body)
			})

			_, err := NewClient(srv.URL, time.Second).ListUserGists(context.Background(), "octocat")
			require.Error(t, err)
			var ghErr *Error
			assert.False(t, errors.As(err, &ghErr), "record errors are not classified")
		})
	}
}

func TestClient_ListUserGists_BodyTooLarge(t *testing.T) {
	body := `[{"id":"aa1","html_url":"https://gist.github.com/aa1","description":null}]`
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	})

	limit := int64(len(body))
	gists, err := NewClient(srv.URL, time.Second, WithMaxBodyBytes(limit)).ListUserGists(context.Background(), "octocat")
	require.NoError(t, err, "a body exactly at the limit is accepted")
	assert.Len(t, gists, 1)

	_, err = NewClient(srv.URL, time.Second, WithMaxBodyBytes(limit-1)).ListUserGists(context.Background(), "octocat")
	requireKind(t, err, KindMalformed)
	assert.ErrorIs(t, err, ErrBodyTooLarge)
}

func TestClient_ListUserGists_Timeout(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(500 * time.Millisecond):
		case <-r.Context().Done():
		}
		fmt.Fprint(w, `[]`)
	})

	_, err := NewClient(srv.URL, 50*time.Millisecond).ListUserGists(context.Background(), "octocat")
	requireKind(t, err, KindTimeout)
}

func TestClient_ListUserGists_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second).ListUserGists(context.Background(), "octocat")
	requireKind(t, err, KindTransport)
}

func TestClient_ListUserGists_SingleRequest(t *testing.T) {
	hits := 0
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := NewClient(srv.URL, time.Second).ListUserGists(context.Background(), "octocat")
	requireKind(t, err, KindUpstreamStatus)
	assert.Equal(t, 1, hits)
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("", 0)
	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
	assert.Equal(t, int64(DefaultMaxBodyBytes), c.maxBodyBytes)

	c = NewClient("https://example.test/", time.Second, WithHTTPClient(&http.Client{}))
	assert.Equal(t, "https://example.test", c.baseURL)
	assert.Equal(t, time.Second, c.httpClient.Timeout)
}
