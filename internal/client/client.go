// Package client provides an HTTP client for the review platform API.
package client

import (
	"bytes"
	"context"
	"encoding/json/v2"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Umangjain-9/book-review-platform/internal/domain"
	"github.com/Umangjain-9/book-review-platform/internal/service"
)

const defaultTimeout = 10 * time.Second

// APIError is a failure response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Session identifies an authenticated account.
type Session struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// Client talks to the review platform API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a new API client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// SetToken sets the bearer token used for authenticated requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// doRequest executes a request and decodes the response into dest.
// Non-2xx responses are returned as *APIError.
func (c *Client) doRequest(ctx context.Context, method, path string, payload, dest any) error {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errBody struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &errBody); err != nil || errBody.Message == "" {
			errBody.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: errBody.Message}
	}

	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Signup creates a new account and returns its session.
// The client keeps the session token for subsequent requests.
func (c *Client) Signup(ctx context.Context, name, email, password string) (*Session, error) {
	var session Session
	err := c.doRequest(ctx, http.MethodPost, "/auth/signup", service.SignupRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}, &session)
	if err != nil {
		return nil, err
	}

	c.token = session.Token
	return &session, nil
}

// Login authenticates an existing account and keeps its token.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var session Session
	err := c.doRequest(ctx, http.MethodPost, "/auth/login", service.LoginRequest{
		Email:    email,
		Password: password,
	}, &session)
	if err != nil {
		return nil, err
	}

	c.token = session.Token
	return &session, nil
}

// ListBooks returns the whole catalog.
func (c *Client) ListBooks(ctx context.Context) ([]domain.Book, error) {
	var books []domain.Book
	if err := c.doRequest(ctx, http.MethodGet, "/books", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// AddBook creates a new catalog entry.
func (c *Client) AddBook(ctx context.Context, req service.AddBookRequest) (*domain.Book, error) {
	var book domain.Book
	if err := c.doRequest(ctx, http.MethodPost, "/books", req, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// DeleteBook removes a book the current user owns.
func (c *Client) DeleteBook(ctx context.Context, bookID string) error {
	return c.doRequest(ctx, http.MethodDelete, "/books/"+bookID, nil, nil)
}

// ListReviews returns all reviews for a book.
func (c *Client) ListReviews(ctx context.Context, bookID string) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := c.doRequest(ctx, http.MethodGet, "/reviews/"+bookID, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// AddReview attaches a review to a book.
func (c *Client) AddReview(ctx context.Context, bookID string, req service.AddReviewRequest) (*domain.Review, error) {
	var review domain.Review
	if err := c.doRequest(ctx, http.MethodPost, "/reviews/"+bookID, req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}
