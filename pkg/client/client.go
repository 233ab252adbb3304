// Package client is a small Go client for the team-signup API. It keeps the
// server session cookie across calls, mirroring a browser.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TeamMember struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	WhatsappNumber string `json:"whatsappNumber"`
	ProjectID      string `json:"projectId"`
	SectionNumber  *int   `json:"sectionNumber,omitempty"`
	PhotoURL       string `json:"photoUrl,omitempty"`
	UserID         string `json:"userId"`
}

type RegisterRequest struct {
	Name           string `json:"name"`
	WhatsappNumber string `json:"whatsappNumber"`
	ProjectID      string `json:"projectId"`
	SectionNumber  *int   `json:"sectionNumber,omitempty"`
	PhotoURL       string `json:"photoUrl,omitempty"`
	DeviceID       string `json:"deviceId"`
}

type Client struct {
	baseURL  string
	deviceID string
	httpc    *http.Client
}

// New builds a client for baseURL. deviceID is sent as X-Device-ID on
// removal requests; pass the token from pkg/deviceid for self-service
// removal to work.
func New(baseURL, deviceID string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		deviceID: deviceID,
		httpc: &http.Client{
			Jar:     jar,
			Timeout: 15 * time.Second,
		},
	}
}

func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) Project(ctx context.Context, id string) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodGet, "/api/projects/"+id, nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) Members(ctx context.Context, projectID string) ([]TeamMember, error) {
	var members []TeamMember
	if err := c.do(ctx, http.MethodGet, "/api/projects/"+projectID+"/members", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// Register creates a member. The response carries the new member with its
// ownership marker populated; the session cookie in the jar now identifies
// this registration.
func (c *Client) Register(ctx context.Context, req *RegisterRequest) (*TeamMember, error) {
	if req.DeviceID == "" {
		req.DeviceID = c.deviceID
	}
	var member TeamMember
	if err := c.do(ctx, http.MethodPost, "/api/members", req, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (c *Client) RemoveMember(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/members/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.deviceID != "" {
		req.Header.Set("X-Device-ID", c.deviceID)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
