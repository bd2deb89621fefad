// Package client is a typed Go client for the newsbridge procedure API. It is
// what the front-end (and the integration tests) use to talk to the server.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"newsbridge-api/models"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// APIError is a non-success response envelope.
type APIError struct {
	Code     int             `json:"code"`
	CodeType string          `json:"code_type"`
	Message  json.RawMessage `json:"code_message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.Code, e.CodeType, string(e.Message))
}

type envelope struct {
	Code     int             `json:"code"`
	CodeType string          `json:"code_type"`
	Message  json.RawMessage `json:"code_message"`
	Data     json.RawMessage `json:"data"`
}

type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken sets the bearer token used for mutation procedures.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) call(procedure string, input interface{}, out interface{}) error {
	body, err := json.Marshal(input)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/api/rpc/"+procedure, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decoding response for %s: %w", procedure, err)
	}

	if env.Code != 200 {
		return &APIError{Code: env.Code, CodeType: env.CodeType, Message: env.Message}
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

type articleList struct {
	Articles []models.Article `json:"articles"`
}

type categoryList struct {
	Categories []models.Category `json:"categories"`
}

// HealthCheck reports server status and time.
func (c *Client) HealthCheck() (map[string]string, error) {
	var out map[string]string
	if err := c.call("healthCheck", struct{}{}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetHomePageData(params models.HomePageParams) (*models.HomePageData, error) {
	var out models.HomePageData
	if err := c.call("getHomePageData", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetArticles(params models.ListArticlesParams) ([]models.Article, error) {
	var out articleList
	if err := c.call("getArticles", params, &out); err != nil {
		return nil, err
	}
	return out.Articles, nil
}

func (c *Client) GetFeaturedArticles(params models.FeaturedArticlesParams) ([]models.Article, error) {
	var out articleList
	if err := c.call("getFeaturedArticles", params, &out); err != nil {
		return nil, err
	}
	return out.Articles, nil
}

func (c *Client) SearchArticles(params models.SearchArticlesParams) ([]models.Article, error) {
	var out articleList
	if err := c.call("searchArticles", params, &out); err != nil {
		return nil, err
	}
	return out.Articles, nil
}

func (c *Client) GetCategories(params models.ListCategoriesParams) ([]models.Category, error) {
	var out categoryList
	if err := c.call("getCategories", params, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

func (c *Client) CreateArticle(req models.CreateArticleRequest) (*models.Article, error) {
	var out models.Article
	if err := c.call("createArticle", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateArticle(req models.UpdateArticleRequest) (*models.Article, error) {
	var out models.Article
	if err := c.call("updateArticle", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCategory(req models.CreateCategoryRequest) (*models.Category, error) {
	var out models.Category
	if err := c.call("createCategory", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetUserPreferences(userID string) (*models.UserPreference, error) {
	var out models.UserPreference
	if err := c.call("getUserPreferences", models.GetPreferencesParams{UserID: userID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUserPreferences(req models.UpdatePreferencesRequest) (*models.UserPreference, error) {
	var out models.UserPreference
	if err := c.call("updateUserPreferences", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an editor account and returns its token.
func (c *Client) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	return c.postAuth("/api/v1/auth/register", req)
}

// Login authenticates an editor and returns the token to use with WithToken.
func (c *Client) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	return c.postAuth("/api/v1/auth/login", req)
}

func (c *Client) postAuth(path string, req interface{}) (*models.AuthResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, err
	}
	if env.Code != 200 {
		return nil, &APIError{Code: env.Code, CodeType: env.CodeType, Message: env.Message}
	}

	var out models.AuthResponse
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
