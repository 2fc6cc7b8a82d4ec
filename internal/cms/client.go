package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/techhorizons/website/internal/config"
)

// Client is a read-mostly HTTP client for the headless content store.
// Content is queried with GROQ through the query endpoint, the mutation
// endpoint is used only by the operator commands.
type Client struct {
	httpClient *http.Client
	queryURL   string
	mutateURL  string
	token      string
}

// New creates a content store client from config.
// Queries go through the CDN host unless disabled.
func New(cfg *config.Config) *Client {

	host := "api.sanity.io"
	if cfg.CMSUseCDN {
		host = "apicdn.sanity.io"
	}

	base := fmt.Sprintf(
		"https://%s.%s/v%s/data",
		cfg.CMSProjectID, host, cfg.CMSAPIVersion,
	)

	// Mutations never go through the CDN
	mutateBase := fmt.Sprintf(
		"https://%s.api.sanity.io/v%s/data",
		cfg.CMSProjectID, cfg.CMSAPIVersion,
	)

	return &Client{
		httpClient: &http.Client{Timeout: cfg.CMSTimeout},
		queryURL:   fmt.Sprintf("%s/query/%s", base, cfg.CMSDataset),
		mutateURL:  fmt.Sprintf("%s/mutate/%s", mutateBase, cfg.CMSDataset),
		token:      string(cfg.CMSToken.Bytes),
	}
}

// queryResponse is the envelope the query endpoint responds with
type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

// errorResponse is the envelope of an error response
type errorResponse struct {
	Error struct {
		Description string `json:"description"`
		Type        string `json:"type"`
	} `json:"error"`
}

// Query runs a GROQ query against the content store and
// unmarshals the result into the given target.
func (c *Client) Query(ctx context.Context, query string, params map[string]any, result any) error {

	raw, err := c.QueryRaw(ctx, query, params)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(raw, result); err != nil {
		return fmt.Errorf("could not decode the query result; %w", err)
	}

	return nil
}

// QueryRaw runs a GROQ query and returns the raw JSON result
func (c *Client) QueryRaw(ctx context.Context, query string, params map[string]any) (json.RawMessage, error) {

	// Build the query string.
	// Parameters are JSON encoded and prefixed with a dollar sign.
	values := url.Values{}
	values.Set("query", query)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("could not encode query param '%s'; %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}

	endpoint := fmt.Sprintf("%s?%s", c.queryURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("content store request failed; %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read the content store response; %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp.StatusCode, body)
	}

	var envelope queryResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("could not decode the content store response; %w", err)
	}

	return envelope.Result, nil
}

// Mutate posts mutations to the content store.
// Used by the operator commands only, requires a token.
func (c *Client) Mutate(ctx context.Context, mutations []map[string]any) error {

	if c.token == "" {
		return fmt.Errorf("a content store token is required for mutations")
	}

	payload, err := json.Marshal(map[string]any{"mutations": mutations})
	if err != nil {
		return fmt.Errorf("could not encode the mutations; %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.mutateURL, strings.NewReader(string(payload)),
	)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("content store mutation failed; %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read the content store response; %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp.StatusCode, body)
	}

	return nil
}

// Build an error from a non-200 content store response
func decodeError(status int, body []byte) error {
	var envelope errorResponse
	if err := json.Unmarshal(body, &envelope); err == nil &&
		envelope.Error.Description != "" {
		return fmt.Errorf(
			"content store error (%d): %s",
			status, envelope.Error.Description,
		)
	}
	return fmt.Errorf("content store error (%d)", status)
}
