// Package client is a typed HTTP client for the todo API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jfmadeira/todoapp/models"
)

// APIError is a non-2xx response from the API, carrying the decoded
// {message} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// List fetches every todo, newest first.
func (c *Client) List(ctx context.Context) ([]models.Todo, error) {
	var todos []models.Todo
	if err := c.do(ctx, http.MethodGet, "/todos", nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// Get fetches a single todo by id.
func (c *Client) Get(ctx context.Context, id string) (*models.Todo, error) {
	var todo models.Todo
	if err := c.do(ctx, http.MethodGet, "/todos/"+id, nil, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// Create persists a new todo and returns the server's representation.
func (c *Client) Create(ctx context.Context, title string) (*models.Todo, error) {
	var todo models.Todo
	req := models.CreateTodoRequest{Title: title}
	if err := c.do(ctx, http.MethodPost, "/todos", req, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// Update sends both fields, matching the toggle flow: the caller passes the
// current title alongside the new completed flag.
func (c *Client) Update(ctx context.Context, id, title string, completed bool) (*models.Todo, error) {
	var todo models.Todo
	req := models.UpdateTodoRequest{Title: &title, Completed: &completed}
	if err := c.do(ctx, http.MethodPut, "/todos/"+id, req, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// Delete removes a todo by id.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/todos/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var msg struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&msg); err == nil {
			apiErr.Message = msg.Message
		}
		return apiErr
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
