package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// userSpacesLimit bounds per-user enumeration.
const userSpacesLimit = 100

// SpacesService is the set of Space operations commands depend on.
// *Client implements it; tests substitute stubs.
type SpacesService interface {
	ListSpaces(ctx context.Context, opts *ListSpacesOptions) ([]Space, error)
	GetSpace(ctx context.Context, spaceID string) (*Space, error)
	RestartSpace(ctx context.Context, spaceID string) error
	PauseSpace(ctx context.Context, spaceID string) error
	GetSpaceRuntime(ctx context.Context, spaceID string) (*Runtime, error)
	ListUserSpaces(ctx context.Context, username string) ([]Space, error)
}

var _ SpacesService = (*Client)(nil)

// ListSpacesOptions contains options for listing spaces.
type ListSpacesOptions struct {
	Author string // filter by owner username
	Search string // full-text search term
	Limit  int    // max results (default 20)
}

// ListSpaces returns spaces filtered server-side by author and search term.
func (c *Client) ListSpaces(ctx context.Context, opts *ListSpacesOptions) ([]Space, error) {
	params := url.Values{}
	params.Set("limit", "20") // Default limit
	params.Set("full", "true")

	if opts != nil {
		if opts.Limit > 0 {
			params.Set("limit", strconv.Itoa(opts.Limit))
		}
		if opts.Author != "" {
			params.Set("author", opts.Author)
		}
		if opts.Search != "" {
			params.Set("search", opts.Search)
		}
	}

	path := "/api/spaces?" + params.Encode()
	body, err := c.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	var spaces []Space
	if err := json.Unmarshal(body, &spaces); err != nil {
		return nil, fmt.Errorf("failed to parse spaces response: %w", err)
	}

	return spaces, nil
}

// GetSpace returns full metadata for one space, including its runtime
// descriptor when the Hub provides it.
func (c *Client) GetSpace(ctx context.Context, spaceID string) (*Space, error) {
	if err := ValidateSpaceID(spaceID); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/api/spaces/%s", spaceID)
	body, err := c.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	var space Space
	if err := json.Unmarshal(body, &space); err != nil {
		return nil, fmt.Errorf("failed to parse space response: %w", err)
	}

	return &space, nil
}

// RestartSpace issues a restart instruction. Requires a write-scoped token.
func (c *Client) RestartSpace(ctx context.Context, spaceID string) error {
	return c.postSpaceAction(ctx, spaceID, "restart")
}

// PauseSpace issues a pause instruction. Requires a write-scoped token.
// Pausing an already-paused space succeeds.
func (c *Client) PauseSpace(ctx context.Context, spaceID string) error {
	return c.postSpaceAction(ctx, spaceID, "pause")
}

func (c *Client) postSpaceAction(ctx context.Context, spaceID, action string) error {
	if err := ValidateSpaceID(spaceID); err != nil {
		return err
	}
	if !c.HasToken() {
		return ErrMissingToken
	}

	path := fmt.Sprintf("/api/spaces/%s/%s", spaceID, action)
	_, err := c.Post(ctx, path, nil)
	return err
}

// GetSpaceRuntime returns the live runtime descriptor for a space.
func (c *Client) GetSpaceRuntime(ctx context.Context, spaceID string) (*Runtime, error) {
	if err := ValidateSpaceID(spaceID); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/api/spaces/%s/runtime", spaceID)
	body, err := c.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	var runtime Runtime
	if err := json.Unmarshal(body, &runtime); err != nil {
		return nil, fmt.Errorf("failed to parse runtime response: %w", err)
	}

	return &runtime, nil
}

// ListUserSpaces returns all spaces owned by username.
func (c *Client) ListUserSpaces(ctx context.Context, username string) ([]Space, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	return c.ListSpaces(ctx, &ListSpacesOptions{
		Author: username,
		Limit:  userSpacesLimit,
	})
}

// Whoami returns the identity behind the client's token. Used by init to
// verify credentials before saving them.
func (c *Client) Whoami(ctx context.Context) (*User, error) {
	if !c.HasToken() {
		return nil, ErrMissingToken
	}

	body, err := c.Get(ctx, "/api/whoami-v2")
	if err != nil {
		return nil, err
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to parse whoami response: %w", err)
	}

	return &user, nil
}
