// Package app is the operations layer: each operation dispatches its
// request action, calls the backend, and dispatches the success or failure
// action. Failures become slice error messages; nothing here panics and no
// operation retries.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"cli_clientes/internal/api"
	"cli_clientes/internal/clientes"
	"cli_clientes/internal/session"
	"cli_clientes/internal/store"
)

// Service wires the store, the API client and the token store together.
type Service struct {
	store  *store.Store
	api    *api.Client
	tokens session.Store
	logger *zap.Logger
}

// NewService creates a new Service.
func NewService(st *store.Store, client *api.Client, tokens session.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Service{
		store:  st,
		api:    client,
		tokens: tokens,
		logger: logger,
	}
}

// Store exposes the application state store.
func (s *Service) Store() *store.Store {
	return s.store
}

// Login exchanges credentials for a session, persists the token and flips
// the auth slice to authenticated.
func (s *Service) Login(ctx context.Context, username, password string) error {
	s.store.Dispatch(store.LoginRequested{})

	token, user, err := s.api.Login(ctx, clientes.LoginData{Username: username, Password: password})
	if err != nil {
		s.logger.Error("login failed", zap.String("username", username), zap.Error(err))
		s.store.Dispatch(store.LoginFailed{Message: errorMessage(err, "Erro no login")})
		return err
	}

	if err := s.tokens.Save(token); err != nil {
		s.logger.Error("failed to persist token", zap.Error(err))
		s.store.Dispatch(store.LoginFailed{Message: "Erro no login"})
		return fmt.Errorf("persisting token: %w", err)
	}

	s.store.Dispatch(store.LoginSucceeded{Token: token, User: user})
	return nil
}

// Logout drops the persisted token and resets the auth slice.
func (s *Service) Logout() error {
	if err := s.tokens.Clear(); err != nil {
		s.logger.Error("logout failed", zap.Error(err))
		return fmt.Errorf("clearing token: %w", err)
	}
	s.store.Dispatch(store.LoggedOut{})
	return nil
}

// CheckAuth resolves the session at startup. Without a stored token it
// reports unauthenticated immediately, issuing no request. With one, the
// token is validated against the backend; any failure clears it and also
// resolves to unauthenticated. Neither outcome is surfaced as an error.
func (s *Service) CheckAuth(ctx context.Context) {
	token := s.tokens.Token()
	if token == "" {
		s.store.Dispatch(store.CheckAuthFailed{})
		return
	}

	s.store.Dispatch(store.CheckAuthRequested{})
	user, err := s.api.Profile(ctx)
	if err != nil {
		s.logger.Debug("stored token rejected", zap.Error(err))
		if clearErr := s.tokens.Clear(); clearErr != nil {
			s.logger.Warn("failed to clear rejected token", zap.Error(clearErr))
		}
		s.store.Dispatch(store.CheckAuthFailed{})
		return
	}

	s.store.Dispatch(store.CheckAuthSucceeded{Token: token, User: user})
}

// FetchClientes replaces the cached customer list.
func (s *Service) FetchClientes(ctx context.Context) error {
	seq := s.store.BeginClientesFetch()

	lista, err := s.api.ListClientes(ctx)
	if err != nil {
		s.logger.Error("failed to fetch clientes", zap.Error(err))
		s.store.Dispatch(store.ClientesFetchFailed{Seq: seq, Message: errorMessage(err, "Erro ao carregar clientes")})
		return err
	}

	s.store.Dispatch(store.ClientesFetchSucceeded{Seq: seq, Clientes: lista})
	return nil
}

// CreateCliente creates a customer and appends it to the cached list.
func (s *Service) CreateCliente(ctx context.Context, data clientes.CreateClienteData) (clientes.Cliente, error) {
	created, err := s.api.CreateCliente(ctx, data)
	if err != nil {
		s.logger.Error("failed to create cliente", zap.Error(err))
		s.store.Dispatch(store.ClienteCreateFailed{Message: errorMessage(err, "Erro ao criar cliente")})
		return clientes.Cliente{}, err
	}

	s.store.Dispatch(store.ClienteCreateSucceeded{Cliente: created})
	return created, nil
}

// UpdateCliente patches a customer and replaces its cached record in place.
func (s *Service) UpdateCliente(ctx context.Context, data clientes.UpdateClienteData) (clientes.Cliente, error) {
	updated, err := s.api.UpdateCliente(ctx, data)
	if err != nil {
		s.logger.Error("failed to update cliente", zap.Int("id", data.ID), zap.Error(err))
		s.store.Dispatch(store.ClienteUpdateFailed{Message: errorMessage(err, "Erro ao atualizar cliente")})
		return clientes.Cliente{}, err
	}

	s.store.Dispatch(store.ClienteUpdateSucceeded{Cliente: updated})
	return updated, nil
}

// DeleteCliente removes a customer from the backend and the cached list.
func (s *Service) DeleteCliente(ctx context.Context, id int) error {
	if err := s.api.DeleteCliente(ctx, id); err != nil {
		s.logger.Error("failed to delete cliente", zap.Int("id", id), zap.Error(err))
		s.store.Dispatch(store.ClienteDeleteFailed{Message: errorMessage(err, "Erro ao excluir cliente")})
		return err
	}

	s.store.Dispatch(store.ClienteDeleteSucceeded{ID: id})
	return nil
}

// FetchVendasPorDia replaces the per-day aggregate.
func (s *Service) FetchVendasPorDia(ctx context.Context) error {
	seq := s.store.BeginVendasPorDiaFetch()

	porDia, err := s.api.VendasPorDia(ctx)
	if err != nil {
		s.logger.Error("failed to fetch vendas por dia", zap.Error(err))
		s.store.Dispatch(store.VendasPorDiaFetchFailed{Seq: seq, Message: errorMessage(err, "Erro ao carregar vendas por dia")})
		return err
	}

	s.store.Dispatch(store.VendasPorDiaFetchSucceeded{Seq: seq, PorDia: porDia})
	return nil
}

// FetchEstatisticas replaces the statistics snapshot.
func (s *Service) FetchEstatisticas(ctx context.Context) error {
	seq := s.store.BeginEstatisticasFetch()

	stats, err := s.api.Estatisticas(ctx)
	if err != nil {
		s.logger.Error("failed to fetch estatisticas", zap.Error(err))
		s.store.Dispatch(store.EstatisticasFetchFailed{Seq: seq, Message: errorMessage(err, "Erro ao carregar estatísticas")})
		return err
	}

	s.store.Dispatch(store.EstatisticasFetchSucceeded{Seq: seq, Estatisticas: stats})
	return nil
}

// CreateVenda records a sale. Aggregates and estatísticas are left as they
// were; callers re-fetch them through the dashboard reload path.
func (s *Service) CreateVenda(ctx context.Context, data clientes.CreateVendaData) (clientes.Venda, error) {
	created, err := s.api.CreateVenda(ctx, data)
	if err != nil {
		s.logger.Error("failed to create venda", zap.Int("clienteId", data.ClienteID), zap.Error(err))
		s.store.Dispatch(store.VendaCreateFailed{Message: errorMessage(err, "Erro ao criar venda")})
		return clientes.Venda{}, err
	}

	s.store.Dispatch(store.VendaCreateSucceeded{Venda: created})
	return created, nil
}

// FetchVendasByCliente replaces the cached sales list with the given
// customer's sales.
func (s *Service) FetchVendasByCliente(ctx context.Context, clienteID int) error {
	seq := s.store.BeginVendasFetch()

	vendas, err := s.api.VendasByCliente(ctx, clienteID)
	if err != nil {
		s.logger.Error("failed to fetch vendas do cliente", zap.Int("clienteId", clienteID), zap.Error(err))
		s.store.Dispatch(store.VendasFetchFailed{Seq: seq, Message: errorMessage(err, "Erro ao carregar vendas do cliente")})
		return err
	}

	s.store.Dispatch(store.VendasFetchSucceeded{Seq: seq, Vendas: vendas})
	return nil
}

// errorMessage prefers the server-provided message and falls back to the
// operation's generic one.
func errorMessage(err error, fallback string) string {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return statusErr.Message
	}
	return fallback
}
