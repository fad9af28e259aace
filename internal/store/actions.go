package store

import "cli_clientes/internal/clientes"

// Action is the sealed sum type over every state mutation. Reducers switch
// on the concrete action; unknown actions leave the slice untouched.
type Action interface{ isAction() }

// --- auth slice ---

type LoginRequested struct{}

type LoginSucceeded struct {
	Token string
	User  clientes.User
}

type LoginFailed struct{ Message string }

type LoggedOut struct{}

type CheckAuthRequested struct{}

type CheckAuthSucceeded struct {
	Token string
	User  clientes.User
}

// CheckAuthFailed resolves the startup check as unauthenticated. It carries
// no message: an absent or rejected token is not an error the user sees.
type CheckAuthFailed struct{}

type AuthErrorCleared struct{}

// --- clientes slice ---

// ClientesFetchRequested marks a list fetch in flight. Seq is minted by the
// store; a later success or failure is applied only while its Seq is still
// the latest issued.
type ClientesFetchRequested struct{ Seq uint64 }

type ClientesFetchSucceeded struct {
	Seq      uint64
	Clientes []clientes.Cliente
}

type ClientesFetchFailed struct {
	Seq     uint64
	Message string
}

type ClienteCreateSucceeded struct{ Cliente clientes.Cliente }

type ClienteCreateFailed struct{ Message string }

type ClienteUpdateSucceeded struct{ Cliente clientes.Cliente }

type ClienteUpdateFailed struct{ Message string }

type ClienteDeleteSucceeded struct{ ID int }

type ClienteDeleteFailed struct{ Message string }

// ClienteSelected stores a snapshot of the cliente shown by the vendas view.
type ClienteSelected struct{ Cliente clientes.Cliente }

type ClienteSelectionCleared struct{}

type ClientesErrorCleared struct{}

// --- vendas slice ---

type VendasPorDiaFetchRequested struct{ Seq uint64 }

type VendasPorDiaFetchSucceeded struct {
	Seq    uint64
	PorDia []clientes.VendaPorDia
}

type VendasPorDiaFetchFailed struct {
	Seq     uint64
	Message string
}

type EstatisticasFetchRequested struct{ Seq uint64 }

type EstatisticasFetchSucceeded struct {
	Seq          uint64
	Estatisticas clientes.Estatisticas
}

type EstatisticasFetchFailed struct {
	Seq     uint64
	Message string
}

type VendaCreateSucceeded struct{ Venda clientes.Venda }

type VendaCreateFailed struct{ Message string }

type VendasFetchRequested struct{ Seq uint64 }

type VendasFetchSucceeded struct {
	Seq    uint64
	Vendas []clientes.Venda
}

type VendasFetchFailed struct {
	Seq     uint64
	Message string
}

type VendasErrorCleared struct{}

// --- ui slice ---

type ModalOpened struct{ Modal string }

type ModalClosed struct{ Modal string }

type LoadingSet struct {
	Key   string
	Value bool
}

type AllModalsCleared struct{}

func (LoginRequested) isAction()             {}
func (LoginSucceeded) isAction()             {}
func (LoginFailed) isAction()                {}
func (LoggedOut) isAction()                  {}
func (CheckAuthRequested) isAction()         {}
func (CheckAuthSucceeded) isAction()         {}
func (CheckAuthFailed) isAction()            {}
func (AuthErrorCleared) isAction()           {}
func (ClientesFetchRequested) isAction()     {}
func (ClientesFetchSucceeded) isAction()     {}
func (ClientesFetchFailed) isAction()        {}
func (ClienteCreateSucceeded) isAction()     {}
func (ClienteCreateFailed) isAction()        {}
func (ClienteUpdateSucceeded) isAction()     {}
func (ClienteUpdateFailed) isAction()        {}
func (ClienteDeleteSucceeded) isAction()     {}
func (ClienteDeleteFailed) isAction()        {}
func (ClienteSelected) isAction()            {}
func (ClienteSelectionCleared) isAction()    {}
func (ClientesErrorCleared) isAction()       {}
func (VendasPorDiaFetchRequested) isAction() {}
func (VendasPorDiaFetchSucceeded) isAction() {}
func (VendasPorDiaFetchFailed) isAction()    {}
func (EstatisticasFetchRequested) isAction() {}
func (EstatisticasFetchSucceeded) isAction() {}
func (EstatisticasFetchFailed) isAction()    {}
func (VendaCreateSucceeded) isAction()       {}
func (VendaCreateFailed) isAction()          {}
func (VendasFetchRequested) isAction()       {}
func (VendasFetchSucceeded) isAction()       {}
func (VendasFetchFailed) isAction()          {}
func (VendasErrorCleared) isAction()         {}
func (ModalOpened) isAction()                {}
func (ModalClosed) isAction()                {}
func (LoadingSet) isAction()                 {}
func (AllModalsCleared) isAction()           {}
