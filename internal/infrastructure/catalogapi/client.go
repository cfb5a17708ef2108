// Package catalogapi lee categorías y productos desde la API REST del backend del marketplace.
// Los documentos vienen de una base documental con formas heterogéneas (_id, parent poblado,
// precios como string), así que la decodificación es tolerante.
package catalogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mallofcayman/catalog-api/internal/domain"
)

// ClientOpts opciones del cliente.
type ClientOpts struct {
	BaseURL string
	Token   string        // se envía como Bearer
	Timeout time.Duration // 0 = 10s
}

// Client cliente REST del catálogo.
type Client struct {
	httpClient *resty.Client
	token      string
}

// NewClient construye el cliente.
func NewClient(opts ClientOpts) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{token: opts.Token}
	c.httpClient = resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond).
		SetHeaders(map[string]string{
			"Accept":     "application/json",
			"User-Agent": "mallofcayman-catalog-api",
		})
	return c
}

func (c *Client) req(ctx context.Context) *resty.Request {
	r := c.httpClient.NewRequest().SetContext(ctx)
	if c.token != "" {
		r.SetAuthToken(c.token)
	}
	return r
}

// getList descarga una colección. Acepta un arreglo plano o un sobre {"data": [...]} / {"items": [...]}.
func (c *Client) getList(ctx context.Context, path string, params map[string]string) ([]json.RawMessage, error) {
	res, err := handleError(c.req(ctx).SetPathParams(params).Get(path))
	if err != nil {
		return nil, err
	}
	items, err := unwrapList(res.Body())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrUpstream, path, err)
	}
	return items, nil
}

// getOne descarga un documento. found=false en 404.
func (c *Client) getOne(ctx context.Context, path string, params map[string]string) (json.RawMessage, bool, error) {
	res, err := c.req(ctx).SetPathParams(params).Get(path)
	if err == nil && res.StatusCode() == 404 {
		return nil, false, nil
	}
	res, err = handleError(res, err)
	if err != nil {
		return nil, false, err
	}
	doc, err := unwrapOne(res.Body())
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s: %v", domain.ErrUpstream, path, err)
	}
	return doc, true, nil
}

// handleError convierte respuestas >399 en error; sin esto resty devuelve err nil.
func handleError(res *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		return res, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	if res.IsError() {
		return res, fmt.Errorf("%w: %s %s (status: %d)", domain.ErrUpstream, res.Request.Method, res.Request.URL, res.StatusCode())
	}
	return res, nil
}

func unwrapList(body []byte) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err == nil {
		return items, nil
	}
	var env struct {
		Data  []json.RawMessage `json:"data"`
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("respuesta no es una lista: %w", err)
	}
	if env.Data != nil {
		return env.Data, nil
	}
	return env.Items, nil
}

func unwrapOne(body []byte) (json.RawMessage, error) {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("respuesta no es un objeto: %w", err)
	}
	if len(env.Data) > 0 && env.Data[0] == '{' {
		return env.Data, nil
	}
	return body, nil
}
