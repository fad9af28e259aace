package store

import (
	"sync"

	"cli_clientes/internal/clientes"
)

// Store owns the application state. Dispatch applies an action to every
// slice reducer synchronously; the mutex lets operations run from any
// goroutine while keeping each mutation atomic.
type Store struct {
	mu    sync.Mutex
	state State

	clientesSeq     uint64
	porDiaSeq       uint64
	vendasSeq       uint64
	estatisticasSeq uint64
}

// New creates a Store with all modals closed and every slice idle.
func New() *Store {
	return &Store{state: initialState()}
}

// Dispatch applies the action through the slice reducers.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(a)
}

// apply runs the reducers. Callers must hold mu.
func (s *Store) apply(a Action) {
	s.state.Auth = reduceAuth(s.state.Auth, a)
	s.state.Clientes = reduceClientes(s.state.Clientes, a)
	s.state.Vendas = reduceVendas(s.state.Vendas, a)
	s.state.UI = reduceUI(s.state.UI, a)
}

// State returns a snapshot of the current state. Slices and maps are copied
// so the caller can hold the snapshot across later dispatches.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.state
	snap.Clientes.Clientes = append([]clientes.Cliente(nil), s.state.Clientes.Clientes...)
	if s.state.Clientes.Selected != nil {
		sel := *s.state.Clientes.Selected
		snap.Clientes.Selected = &sel
	}
	snap.Vendas.Vendas = append([]clientes.Venda(nil), s.state.Vendas.Vendas...)
	snap.Vendas.VendasPorDia = append([]clientes.VendaPorDia(nil), s.state.Vendas.VendasPorDia...)
	if s.state.Vendas.Estatisticas != nil {
		stats := *s.state.Vendas.Estatisticas
		snap.Vendas.Estatisticas = &stats
	}
	if s.state.Auth.User != nil {
		user := *s.state.Auth.User
		snap.Auth.User = &user
	}
	snap.UI.Modals = copyFlags(s.state.UI.Modals)
	snap.UI.Loading = copyFlags(s.state.UI.Loading)
	return snap
}

// The Begin*Fetch methods mint a monotonically increasing sequence number
// for their fetch kind and dispatch the matching Requested action in the
// same critical section, so two overlapping calls can never record the
// older sequence as the latest issued. A fetch result is applied only while
// its sequence is still the latest issued, so a slow earlier fetch can
// never overwrite newer data.

func (s *Store) BeginClientesFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clientesSeq++
	s.apply(ClientesFetchRequested{Seq: s.clientesSeq})
	return s.clientesSeq
}

func (s *Store) BeginVendasPorDiaFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.porDiaSeq++
	s.apply(VendasPorDiaFetchRequested{Seq: s.porDiaSeq})
	return s.porDiaSeq
}

func (s *Store) BeginVendasFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vendasSeq++
	s.apply(VendasFetchRequested{Seq: s.vendasSeq})
	return s.vendasSeq
}

func (s *Store) BeginEstatisticasFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.estatisticasSeq++
	s.apply(EstatisticasFetchRequested{Seq: s.estatisticasSeq})
	return s.estatisticasSeq
}
