// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package wordpress is the content access client for the remote WordPress
// REST API. It turns human-facing slugs into backend queries and returns
// normalized view models from internal/models.
//
// The client holds no mutable state and never caches: every call issues
// fresh GET requests, so it is safe for concurrent use. Timeouts come from
// the supplied *http.Client only.
package wordpress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"nanamelab/internal/models"
	"nanamelab/internal/slug"
)

const (
	// DefaultBaseURL is the REST root of the production site.
	DefaultBaseURL = "https://naname-lab.net/wp-json/wp/v2"

	// DefaultTaxonomy is the REST base of the portfolio category taxonomy.
	DefaultTaxonomy = "achievement_cat"

	// DefaultWorkType is the REST base of the portfolio post type.
	DefaultWorkType = "achievement"

	// perPage is the REST maximum; listings are fetched in one request.
	perPage = "100"

	// maxBodySize bounds how much of a response is read.
	maxBodySize = 8 << 20

	workFields     = "id,title,excerpt,content,slug,date,modified,acf,featured_media,_links,_embedded"
	categoryFields = "id,name,slug,description,acf,_embedded"
	pageFields     = "id,title,slug,acf,_links,_embedded"
)

// Client queries the WordPress REST API.
type Client struct {
	baseURL   string
	http      *http.Client
	taxonomy  string
	workType  string
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithTaxonomy sets the REST base of the category taxonomy.
func WithTaxonomy(name string) Option {
	return func(c *Client) { c.taxonomy = name }
}

// WithWorkType sets the REST base of the work post type.
func WithWorkType(name string) Option {
	return func(c *Client) { c.workType = name }
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New creates a client for the REST root baseURL
// (e.g. "https://example.com/wp-json/wp/v2"). A nil httpClient means
// http.DefaultClient.
func New(baseURL string, httpClient *http.Client, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      httpClient,
		taxonomy:  DefaultTaxonomy,
		workType:  DefaultWorkType,
		userAgent: "nanamelab/1.0",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ResolveCategoryID returns the numeric id of the category with the given
// slug. It fails with ErrNotFound when the slug matches nothing; when
// several categories match, the first one returned wins.
func (c *Client) ResolveCategoryID(ctx context.Context, categorySlug string) (int, error) {
	s := slug.Decode(categorySlug)
	if s == "" {
		return 0, fmt.Errorf("resolve category %q: %w", categorySlug, ErrNotFound)
	}

	records, err := c.get(ctx, "resolve category", c.taxonomy, url.Values{
		"slug":    {s},
		"_fields": {"id,slug"},
	})
	if err != nil {
		return 0, err
	}

	if len(records) == 0 {
		return 0, fmt.Errorf("resolve category %q: %w", s, ErrNotFound)
	}
	o, _ := parseObject(records[0])
	if id := o.num("id"); id > 0 {
		return id, nil
	}
	return 0, &TransportError{Op: "resolve category", URL: c.endpoint(c.taxonomy), Err: fmt.Errorf("%w: category without id", ErrMalformed)}
}

// ListItemsByCategory returns the works tagged with the category, in the
// order the backend returns them. An empty category yields an empty,
// non-nil slice. When the category cannot be resolved the listing request
// is never sent.
func (c *Client) ListItemsByCategory(ctx context.Context, categorySlug string) ([]models.Work, error) {
	id, err := c.ResolveCategoryID(ctx, categorySlug)
	if err != nil {
		return nil, err
	}

	records, err := c.get(ctx, "list works", c.workType, url.Values{
		c.taxonomy: {strconv.Itoa(id)},
		"_embed":   {""},
		"_fields":  {workFields},
		"per_page": {perPage},
	})
	if err != nil {
		return nil, err
	}

	works := make([]models.Work, 0, len(records))
	for _, raw := range records {
		if w, ok := normalizeWork(raw, c.taxonomy); ok {
			works = append(works, w)
		}
	}
	return works, nil
}

// GetItemBySlug returns the work with the given slug, or nil when none
// matches. Errors are transport failures only.
func (c *Client) GetItemBySlug(ctx context.Context, workSlug string) (*models.Work, error) {
	return c.getWork(ctx, "get work", workSlug, "")
}

// GetItemBySlugWithCredential repeats the slug lookup with a password so
// the backend can populate a protected body. A rejected credential yields
// either nil or a body-less work; the backend is the sole judge.
func (c *Client) GetItemBySlugWithCredential(ctx context.Context, workSlug, credential string) (*models.Work, error) {
	w, err := c.getWork(ctx, "verify work", workSlug, strings.TrimSpace(credential))
	if err != nil {
		var te *TransportError
		// Single-item endpoints answer a wrong password with 401/403.
		if errors.As(err, &te) && (te.StatusCode == http.StatusUnauthorized || te.StatusCode == http.StatusForbidden) {
			return nil, nil
		}
		return nil, err
	}
	return w, nil
}

func (c *Client) getWork(ctx context.Context, op, workSlug, credential string) (*models.Work, error) {
	s := slug.Decode(workSlug)
	if s == "" {
		return nil, nil
	}

	q := url.Values{
		"slug":    {s},
		"_embed":  {""},
		"_fields": {workFields},
	}
	if credential != "" {
		q.Set("password", credential)
	}

	records, err := c.get(ctx, op, c.workType, q)
	if err != nil {
		return nil, err
	}
	for _, raw := range records {
		if w, ok := normalizeWork(raw, c.taxonomy); ok {
			return &w, nil
		}
	}
	return nil, nil
}

// ListAllCategories returns every category with its metadata.
func (c *Client) ListAllCategories(ctx context.Context) ([]models.Category, error) {
	records, err := c.get(ctx, "list categories", c.taxonomy, url.Values{
		"_embed":   {""},
		"_fields":  {categoryFields},
		"per_page": {perPage},
	})
	if err != nil {
		return nil, err
	}

	categories := make([]models.Category, 0, len(records))
	for _, raw := range records {
		if cat, ok := normalizeCategory(raw); ok {
			categories = append(categories, cat)
		}
	}
	return categories, nil
}

// GetCategoryBySlug returns the category with the given slug, or nil.
func (c *Client) GetCategoryBySlug(ctx context.Context, categorySlug string) (*models.Category, error) {
	s := slug.Decode(categorySlug)
	if s == "" {
		return nil, nil
	}

	records, err := c.get(ctx, "get category", c.taxonomy, url.Values{
		"slug":    {s},
		"_embed":  {""},
		"_fields": {categoryFields},
	})
	if err != nil {
		return nil, err
	}
	for _, raw := range records {
		if cat, ok := normalizeCategory(raw); ok {
			return &cat, nil
		}
	}
	return nil, nil
}

// GetStaticPageBySlug returns the fixed page with the given slug, or nil.
func (c *Client) GetStaticPageBySlug(ctx context.Context, pageSlug string) (*models.Page, error) {
	s := slug.Decode(pageSlug)
	if s == "" {
		return nil, nil
	}

	records, err := c.get(ctx, "get page", "pages", url.Values{
		"slug":    {s},
		"_embed":  {""},
		"_fields": {pageFields},
	})
	if err != nil {
		return nil, err
	}
	for _, raw := range records {
		if p, ok := normalizePage(raw); ok {
			return &p, nil
		}
	}
	return nil, nil
}

// get performs one GET against a collection endpoint and returns the raw
// records of the JSON array it answers with.
func (c *Client) get(ctx context.Context, op, collection string, q url.Values) ([]json.RawMessage, error) {
	endpoint := c.endpoint(collection)
	safeURL := endpoint + "?" + redact(q).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, &TransportError{Op: op, URL: safeURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, URL: safeURL, Err: scrub(err, q)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &TransportError{Op: op, URL: safeURL, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{Op: op, URL: safeURL, StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: %s", ErrStatus, snippet(body))}
	}

	var records []json.RawMessage
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &TransportError{Op: op, URL: safeURL, StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	return records, nil
}

func (c *Client) endpoint(collection string) string {
	return c.baseURL + "/" + collection
}

// redact returns a copy of q without the credential.
func redact(q url.Values) url.Values {
	if !q.Has("password") {
		return q
	}
	out := make(url.Values, len(q))
	for k, v := range q {
		if k == "password" {
			continue
		}
		out[k] = v
	}
	return out
}

// scrub rewrites a *url.Error so the request URL it embeds carries no
// credential.
func scrub(err error, q url.Values) error {
	if !q.Has("password") {
		return err
	}
	if ue, ok := err.(*url.Error); ok {
		return &url.Error{Op: ue.Op, URL: "[redacted]", Err: ue.Err}
	}
	return err
}

// snippet returns the start of a response body for error messages.
func snippet(body []byte) string {
	const max = 200
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		s = s[:max] + "..."
	}
	return s
}
