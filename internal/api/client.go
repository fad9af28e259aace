// Package api wraps every call to the clientes/vendas backend behind a
// single shared resty client. The wrapper owns the two cross-cutting
// behaviors: the stored bearer token is attached to every outgoing request,
// and any 401 response evicts the stored token.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"resty.dev/v3"

	"cli_clientes/internal/clientes"
	"cli_clientes/internal/config"
	"cli_clientes/internal/session"
)

// StatusError is a non-2xx response from the backend. Message carries the
// server-provided message when the body had one.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.StatusCode)
}

// Client is the shared HTTP client for the backend REST API.
type Client struct {
	http              *resty.Client
	tokens            session.Store
	logger            *zap.Logger
	deleteClientePath string
}

// New builds the shared client: fixed base URL and timeout, JSON headers on
// every request, bearer injection from the token store, and 401 eviction.
func New(cfg config.Config, tokens session.Store, logger *zap.Logger) *Client {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	c := &Client{
		http:              httpClient,
		tokens:            tokens,
		logger:            logger,
		deleteClientePath: cfg.DeleteClientePath,
	}

	httpClient.AddRequestMiddleware(func(_ *resty.Client, r *resty.Request) error {
		if token := c.tokens.Token(); token != "" {
			r.SetAuthToken(token)
		}
		r.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	})

	httpClient.AddResponseMiddleware(func(_ *resty.Client, res *resty.Response) error {
		c.logger.Debug("api response",
			zap.String("method", res.Request.Method),
			zap.String("url", res.Request.URL),
			zap.Int("status", res.StatusCode()),
		)
		if res.StatusCode() == http.StatusUnauthorized {
			// Session expired: drop the stored token. The failed request
			// still propagates to the caller unchanged.
			if err := c.tokens.Clear(); err != nil {
				c.logger.Warn("failed to clear stored token", zap.Error(err))
			}
		}
		return nil
	})

	return c
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	return c.http.Close()
}

// Login exchanges credentials for a bearer token and the user profile.
func (c *Client) Login(ctx context.Context, creds clientes.LoginData) (string, clientes.User, error) {
	var result struct {
		AccessToken string        `json:"access_token"`
		User        clientes.User `json:"user"`
	}
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(creds).
		SetResult(&result).
		Post("/auth/login")
	if err != nil {
		return "", clientes.User{}, err
	}
	if res.IsError() {
		return "", clientes.User{}, statusError(res)
	}
	return result.AccessToken, result.User, nil
}

// Profile validates the stored token against the backend and returns the
// session's user profile.
func (c *Client) Profile(ctx context.Context) (clientes.User, error) {
	var user clientes.User
	res, err := c.http.R().
		SetContext(ctx).
		SetResult(&user).
		Get("/auth/profile")
	if err != nil {
		return clientes.User{}, err
	}
	if res.IsError() {
		return clientes.User{}, statusError(res)
	}
	return user, nil
}

// ListClientes fetches the customer list and normalizes whichever response
// shape the backend chose to return.
func (c *Client) ListClientes(ctx context.Context) ([]clientes.Cliente, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get("/clientes")
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, statusError(res)
	}
	return clientes.NormalizarClientes(res.Bytes()), nil
}

// CreateCliente creates a customer and returns the server-assigned record.
func (c *Client) CreateCliente(ctx context.Context, data clientes.CreateClienteData) (clientes.Cliente, error) {
	var created clientes.Cliente
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(data).
		SetResult(&created).
		Post("/clientes")
	if err != nil {
		return clientes.Cliente{}, err
	}
	if res.IsError() {
		return clientes.Cliente{}, statusError(res)
	}
	return created, nil
}

// UpdateCliente patches a customer and returns the updated record.
func (c *Client) UpdateCliente(ctx context.Context, data clientes.UpdateClienteData) (clientes.Cliente, error) {
	var updated clientes.Cliente
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(data).
		SetResult(&updated).
		Patch(fmt.Sprintf("/clientes/%d", data.ID))
	if err != nil {
		return clientes.Cliente{}, err
	}
	if res.IsError() {
		return clientes.Cliente{}, statusError(res)
	}
	return updated, nil
}

// DeleteCliente removes a customer. The endpoint path comes from
// configuration (see config.Config.DeleteClientePath).
func (c *Client) DeleteCliente(ctx context.Context, id int) error {
	res, err := c.http.R().
		SetContext(ctx).
		Delete(fmt.Sprintf(c.deleteClientePath, id))
	if err != nil {
		return err
	}
	if res.IsError() {
		return statusError(res)
	}
	return nil
}

// VendasPorDia fetches the per-day totals, sorted ascending by date before
// being handed to the caller. Dates are ISO strings, so lexicographic order
// is chronological order.
func (c *Client) VendasPorDia(ctx context.Context) ([]clientes.VendaPorDia, error) {
	var porDia []clientes.VendaPorDia
	res, err := c.http.R().
		SetContext(ctx).
		SetResult(&porDia).
		Get("/vendas/por-dia")
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, statusError(res)
	}
	sort.SliceStable(porDia, func(i, j int) bool {
		return porDia[i].Data < porDia[j].Data
	})
	return porDia, nil
}

// Estatisticas fetches the statistics snapshot.
func (c *Client) Estatisticas(ctx context.Context) (clientes.Estatisticas, error) {
	var stats clientes.Estatisticas
	res, err := c.http.R().
		SetContext(ctx).
		SetResult(&stats).
		Get("/vendas/estatisticas")
	if err != nil {
		return clientes.Estatisticas{}, err
	}
	if res.IsError() {
		return clientes.Estatisticas{}, statusError(res)
	}
	return stats, nil
}

// CreateVenda records a sale for a customer.
func (c *Client) CreateVenda(ctx context.Context, data clientes.CreateVendaData) (clientes.Venda, error) {
	var created clientes.Venda
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(data).
		SetResult(&created).
		Post("/vendas")
	if err != nil {
		return clientes.Venda{}, err
	}
	if res.IsError() {
		return clientes.Venda{}, statusError(res)
	}
	return created, nil
}

// VendasByCliente fetches all sales of one customer.
func (c *Client) VendasByCliente(ctx context.Context, clienteID int) ([]clientes.Venda, error) {
	var vendas []clientes.Venda
	res, err := c.http.R().
		SetContext(ctx).
		SetResult(&vendas).
		Get(fmt.Sprintf("/vendas/cliente/%d", clienteID))
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, statusError(res)
	}
	return vendas, nil
}

// statusError extracts the server-provided message from an error response
// body, accepting both {"message": ...} and {"error": ...} envelopes.
func statusError(res *resty.Response) error {
	var body struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	message := ""
	if err := json.Unmarshal(res.Bytes(), &body); err == nil {
		message = body.Message
		if message == "" {
			message = body.Err
		}
	}
	return &StatusError{StatusCode: res.StatusCode(), Message: message}
}
