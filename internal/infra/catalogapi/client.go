// Package catalogapi talks to the external catalog service over JSON/HTTP and
// translates its wire records into the storefront's print model.
package catalogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	domprint "example.com/denine-prints/internal/domain/print"
)

var ErrUpstreamStatus = errors.New("catalog service returned an error")

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type wireVariant struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Featured bool   `json:"featured"`
}

type wirePrint struct {
	ThemeID     string        `json:"theme_id"`
	Theme       string        `json:"theme"`
	Description string        `json:"description"`
	BasePrice   int64         `json:"base_price"`
	Variants    []wireVariant `json:"variants"`
}

type listResponse struct {
	Prints []wirePrint `json:"prints"`
}

type createRequest struct {
	ThemeID     string `json:"theme_id"`
	Theme       string `json:"theme"`
	Description string `json:"description"`
	BasePrice   int64  `json:"base_price"`
}

type updateRequest struct {
	Theme       *string `json:"theme,omitempty"`
	Description *string `json:"description,omitempty"`
	BasePrice   *int64  `json:"base_price,omitempty"`
}

type errorBody struct {
	Detail string `json:"detail"`
}

func (c *Client) ListPrints(ctx context.Context) ([]domprint.Print, error) {
	var resp listResponse
	if err := c.do(ctx, http.MethodGet, "/api/prints", nil, &resp); err != nil {
		return nil, err
	}

	prints := make([]domprint.Print, 0, len(resp.Prints))
	for _, wp := range resp.Prints {
		prints = append(prints, wp.toDomain())
	}
	return prints, nil
}

func (c *Client) Create(ctx context.Context, d domprint.Draft) (*domprint.Print, error) {
	body := createRequest{
		ThemeID:     d.ID,
		Theme:       d.Theme,
		Description: d.Description,
		BasePrice:   d.BasePrice,
	}
	var resp wirePrint
	if err := c.do(ctx, http.MethodPost, "/api/admin/prints", body, &resp); err != nil {
		return nil, err
	}
	p := resp.toDomain()
	return &p, nil
}

func (c *Client) Update(ctx context.Context, id string, u domprint.Update) (*domprint.Print, error) {
	body := updateRequest{
		Theme:       u.Theme,
		Description: u.Description,
		BasePrice:   u.BasePrice,
	}
	var resp wirePrint
	err := c.do(ctx, http.MethodPut, "/api/admin/prints/"+url.PathEscape(id), body, &resp)
	if err != nil {
		return nil, err
	}
	p := resp.toDomain()
	return &p, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return statusError(res)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func statusError(res *http.Response) error {
	var eb errorBody
	data, _ := io.ReadAll(io.LimitReader(res.Body, 64<<10))
	_ = json.Unmarshal(data, &eb)

	if res.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", domprint.ErrPrintNotFound, eb.Detail)
	}
	if eb.Detail != "" {
		return fmt.Errorf("%w: status %d: %s", ErrUpstreamStatus, res.StatusCode, eb.Detail)
	}
	return fmt.Errorf("%w: status %d", ErrUpstreamStatus, res.StatusCode)
}

func (wp wirePrint) toDomain() domprint.Print {
	variants := make([]domprint.Variant, 0, len(wp.Variants))
	for _, v := range wp.Variants {
		variants = append(variants, domprint.Variant{
			ID:       v.ID,
			Name:     v.Name,
			ImageRef: v.ImageURL,
			Featured: v.Featured,
		})
	}
	return domprint.Print{
		ID:          wp.ThemeID,
		Theme:       wp.Theme,
		Description: wp.Description,
		BasePrice:   wp.BasePrice,
		Variants:    variants,
	}
}
