package clickup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

const (
	DefaultBaseURL = "https://api.clickup.com/api/v2"
	DefaultTimeout = 15 * time.Second

	AuthModeToken = "token" // personal token, sent verbatim
	AuthModeOAuth = "oauth" // OAuth access token, sent as Bearer
)

// ClientOptions configures a Client.
type ClientOptions struct {
	BaseURL  string
	Token    string
	AuthMode string
	Timeout  time.Duration // per call
}

// Client is the HTTP wrapper for the ClickUp v2 REST API.
type Client struct {
	baseURL    string
	token      string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient creates a new ClickUp HTTP client.
func NewClient(opts ClientOptions) *Client {
	c := &Client{
		baseURL: opts.BaseURL,
		timeout: opts.Timeout,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}

	if opts.AuthMode == AuthModeOAuth {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token, TokenType: "Bearer"})
		c.httpClient = oauth2.NewClient(context.Background(), ts)
	} else {
		c.token = opts.Token
		c.httpClient = &http.Client{}
	}
	return c
}

// APIError is a non-2xx response from ClickUp.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("clickup API %s error %d: %s", e.Op, e.StatusCode, e.Body)
}

// GetTeams lists the workspaces visible to the credential via GET /team.
func (c *Client) GetTeams(ctx context.Context) ([]Team, error) {
	var resp struct {
		Teams []Team `json:"teams"`
	}
	if err := c.do(ctx, "list teams", http.MethodGet, "/team", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Teams, nil
}

// GetSpaces lists the spaces of a team.
func (c *Client) GetSpaces(ctx context.Context, teamID string) ([]Space, error) {
	var resp struct {
		Spaces []Space `json:"spaces"`
	}
	path := fmt.Sprintf("/team/%s/space?archived=false", teamID)
	if err := c.do(ctx, "list spaces", http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Spaces, nil
}

// GetFolders lists the folders of a space.
func (c *Client) GetFolders(ctx context.Context, spaceID string) ([]Folder, error) {
	var resp struct {
		Folders []Folder `json:"folders"`
	}
	path := fmt.Sprintf("/space/%s/folder?archived=false", spaceID)
	if err := c.do(ctx, "list folders", http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Folders, nil
}

// GetFolderlessLists lists the lists that sit directly under a space.
func (c *Client) GetFolderlessLists(ctx context.Context, spaceID string) ([]List, error) {
	var resp struct {
		Lists []List `json:"lists"`
	}
	path := fmt.Sprintf("/space/%s/list?archived=false", spaceID)
	if err := c.do(ctx, "list folderless lists", http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Lists, nil
}

// GetLists lists the lists of a folder.
func (c *Client) GetLists(ctx context.Context, folderID string) ([]List, error) {
	var resp struct {
		Lists []List `json:"lists"`
	}
	path := fmt.Sprintf("/folder/%s/list?archived=false", folderID)
	if err := c.do(ctx, "list lists", http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Lists, nil
}

// CreateTask creates a task via POST /list/{list_id}/task.
func (c *Client) CreateTask(ctx context.Context, listID string, req CreateTaskRequest) (*Task, error) {
	var t Task
	path := fmt.Sprintf("/list/%s/task", listID)
	if err := c.do(ctx, "create task", http.MethodPost, path, req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// do performs one API call bounded by the client timeout and decodes the JSON body into out.
func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", op, err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", op, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", c.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call clickup %s API: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{Op: op, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode clickup %s response: %w", op, err)
	}
	return nil
}
