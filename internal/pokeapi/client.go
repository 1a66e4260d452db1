package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const DefaultBaseURL = "https://pokeapi.co/api/v2"

// Client talks to the external reference data provider. It is read-only:
// paged listings plus per-entity detail fetches, no retries.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Page is one listing response. Result URLs are absolute and feed the
// detail fetches.
type Page struct {
	Count   int   `json:"count"`
	Results []Ref `json:"results"`
}

type Ref struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type PokemonDetail struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
	} `json:"sprites"`
}

type ItemDetail struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Sprites struct {
		Default string `json:"default"`
	} `json:"sprites"`
}

func (c *Client) ListPokemon(ctx context.Context, limit int) (Page, error) {
	var page Page
	err := c.getJSON(ctx, fmt.Sprintf("%s/pokemon?limit=%d", c.baseURL, limit), &page)
	return page, err
}

func (c *Client) ListItems(ctx context.Context, limit int) (Page, error) {
	var page Page
	err := c.getJSON(ctx, fmt.Sprintf("%s/item?limit=%d", c.baseURL, limit), &page)
	return page, err
}

func (c *Client) GetPokemon(ctx context.Context, url string) (PokemonDetail, error) {
	var detail PokemonDetail
	err := c.getJSON(ctx, url, &detail)
	return detail, err
}

func (c *Client) GetItem(ctx context.Context, url string) (ItemDetail, error) {
	var detail ItemDetail
	err := c.getJSON(ctx, url, &detail)
	return detail, err
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
