// Package github has the subset of the GitHub REST API used to list a user's
// public gists.
//
// The gists endpoint is documented at
// https://docs.github.com/en/rest/gists/gists#list-gists-for-a-user
package github

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Gist is one element of the /users/{username}/gists response. Fields the
// upstream omits are left nil.
type Gist struct {
	ID          *string `json:"id"`
	HTMLURL     *string `json:"html_url"`
	Description *string `json:"description"`
}

// Listing is the decoded body of a 200 response: either a JSON array of
// records or some other JSON value.
type Listing struct {
	Records []json.RawMessage
	IsList  bool
}

// decodeListing parses body without assuming its shape. A syntactically
// invalid body is an error; a valid non-array body is a Listing with
// IsList false.
func decodeListing(body []byte) (Listing, error) {
	if !json.Valid(body) {
		return Listing{}, fmt.Errorf("response body is not valid JSON")
	}

	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return Listing{}, nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return Listing{}, fmt.Errorf("failed to decode gist list: %w", err)
	}
	return Listing{Records: records, IsList: true}, nil
}

// Gists decodes every record of the listing in order. A record that is not
// a JSON object with string-or-null fields is an error.
func (l Listing) Gists() ([]Gist, error) {
	gists := make([]Gist, 0, len(l.Records))
	for i, raw := range l.Records {
		trimmed := bytes.TrimLeft(raw, " \t\r\n")
		if len(trimmed) == 0 || trimmed[0] != '{' {
			return nil, fmt.Errorf("gist record %d is not an object", i)
		}
		var g Gist
		if err := json.Unmarshal(trimmed, &g); err != nil {
			return nil, fmt.Errorf("failed to decode gist record %d: %w", i, err)
		}
		gists = append(gists, g)
	}
	return gists, nil
}
