// Package store holds the whole client-side application state: four
// independent slices mutated exclusively through tagged actions applied by
// pure reducer functions. There are no ambient singletons; the Store owns
// the state and every mutation goes through Dispatch.
package store

import "cli_clientes/internal/clientes"

// Status is the request lifecycle of a slice.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusError
)

// Modal and loading-flag keys used by the UI slice.
const (
	ModalAddCliente = "addCliente"
	ModalAddVenda   = "addVenda"
	ModalVendas     = "vendas"

	LoadingAddingCliente   = "addingCliente"
	LoadingAddingVenda     = "addingVenda"
	LoadingUpdatingCliente = "updatingCliente"
	LoadingDeletingCliente = "deletingCliente"
)

// AuthState is the session slice. Authenticated and the token/user pair move
// together: both set or both empty, never mixed.
type AuthState struct {
	Status        Status
	Error         string
	Authenticated bool
	Token         string
	User          *clientes.User
}

// ClientesState caches the customer list. Selected holds a duplicated
// snapshot of one cliente, not a pointer into Clientes, so list edits do not
// retroactively mutate an open dialog's view.
type ClientesState struct {
	Status   Status
	Error    string
	Clientes []clientes.Cliente
	Selected *clientes.Cliente

	fetchSeq uint64
}

// VendasState caches the sales list of the last-queried customer, the
// per-day aggregate and the statistics snapshot. Each fetch is a full
// replace. Status tracks the per-day fetch only, matching how the screens
// consume it.
type VendasState struct {
	Status       Status
	Error        string
	Vendas       []clientes.Venda
	VendasPorDia []clientes.VendaPorDia
	Estatisticas *clientes.Estatisticas

	porDiaSeq       uint64
	vendasSeq       uint64
	estatisticasSeq uint64
}

// UIState is purely transient view state: which modals are open and which
// named operations are in flight.
type UIState struct {
	Modals  map[string]bool
	Loading map[string]bool
}

// State is the root application state.
type State struct {
	Auth     AuthState
	Clientes ClientesState
	Vendas   VendasState
	UI       UIState
}

func initialState() State {
	return State{
		Clientes: ClientesState{Clientes: []clientes.Cliente{}},
		Vendas: VendasState{
			Vendas:       []clientes.Venda{},
			VendasPorDia: []clientes.VendaPorDia{},
		},
		UI: UIState{
			Modals: map[string]bool{
				ModalAddCliente: false,
				ModalAddVenda:   false,
				ModalVendas:     false,
			},
			Loading: map[string]bool{
				LoadingAddingCliente:   false,
				LoadingAddingVenda:     false,
				LoadingUpdatingCliente: false,
				LoadingDeletingCliente: false,
			},
		},
	}
}
