package store

import "cli_clientes/internal/clientes"

// Reducers take the current slice state and an action and return the next
// slice state. They never mutate shared slices in place: list edits copy
// first, so snapshots handed out earlier stay stable.

func reduceAuth(s AuthState, a Action) AuthState {
	switch act := a.(type) {
	case LoginRequested:
		s.Status = StatusLoading
		s.Error = ""
	case LoginSucceeded:
		s.Status = StatusIdle
		s.Authenticated = true
		s.Token = act.Token
		user := act.User
		s.User = &user
	case LoginFailed:
		s.Status = StatusError
		s.Error = act.Message
	case LoggedOut:
		s = AuthState{}
	case CheckAuthRequested:
		s.Status = StatusLoading
	case CheckAuthSucceeded:
		s.Status = StatusIdle
		s.Authenticated = true
		s.Token = act.Token
		user := act.User
		s.User = &user
	case CheckAuthFailed:
		// Unauthenticated is a terminal state here, not an error.
		s = AuthState{}
	case AuthErrorCleared:
		s.Error = ""
		if s.Status == StatusError {
			s.Status = StatusIdle
		}
	}
	return s
}

func reduceClientes(s ClientesState, a Action) ClientesState {
	switch act := a.(type) {
	case ClientesFetchRequested:
		s.Status = StatusLoading
		s.Error = ""
		s.fetchSeq = act.Seq
	case ClientesFetchSucceeded:
		if act.Seq != s.fetchSeq {
			return s
		}
		s.Status = StatusIdle
		s.Clientes = act.Clientes
	case ClientesFetchFailed:
		if act.Seq != s.fetchSeq {
			return s
		}
		// The previously loaded list is preserved on a failed refresh.
		s.Status = StatusError
		s.Error = act.Message
	case ClienteCreateSucceeded:
		lista := make([]clientes.Cliente, 0, len(s.Clientes)+1)
		lista = append(lista, s.Clientes...)
		s.Clientes = append(lista, act.Cliente)
	case ClienteCreateFailed:
		s.Error = act.Message
		s.Status = StatusError
	case ClienteUpdateSucceeded:
		lista := append([]clientes.Cliente(nil), s.Clientes...)
		for i := range lista {
			if lista[i].ID == act.Cliente.ID {
				lista[i] = act.Cliente
				break
			}
		}
		s.Clientes = lista
	case ClienteUpdateFailed:
		s.Error = act.Message
		s.Status = StatusError
	case ClienteDeleteSucceeded:
		lista := make([]clientes.Cliente, 0, len(s.Clientes))
		for _, c := range s.Clientes {
			if c.ID != act.ID {
				lista = append(lista, c)
			}
		}
		s.Clientes = lista
	case ClienteDeleteFailed:
		s.Error = act.Message
		s.Status = StatusError
	case ClienteSelected:
		c := act.Cliente
		s.Selected = &c
	case ClienteSelectionCleared:
		s.Selected = nil
	case ClientesErrorCleared:
		s.Error = ""
		if s.Status == StatusError {
			s.Status = StatusIdle
		}
	}
	return s
}

func reduceVendas(s VendasState, a Action) VendasState {
	switch act := a.(type) {
	case VendasPorDiaFetchRequested:
		s.Status = StatusLoading
		s.Error = ""
		s.porDiaSeq = act.Seq
	case VendasPorDiaFetchSucceeded:
		if act.Seq != s.porDiaSeq {
			return s
		}
		s.Status = StatusIdle
		s.VendasPorDia = act.PorDia
	case VendasPorDiaFetchFailed:
		if act.Seq != s.porDiaSeq {
			return s
		}
		s.Status = StatusError
		s.Error = act.Message
	case EstatisticasFetchRequested:
		s.estatisticasSeq = act.Seq
	case EstatisticasFetchSucceeded:
		if act.Seq != s.estatisticasSeq {
			return s
		}
		stats := act.Estatisticas
		s.Estatisticas = &stats
	case EstatisticasFetchFailed:
		if act.Seq != s.estatisticasSeq {
			return s
		}
		s.Error = act.Message
	case VendaCreateSucceeded:
		// Aggregates and estatísticas are not refreshed here; the dashboard
		// reload path re-fetches them.
		lista := append([]clientes.Venda(nil), s.Vendas...)
		s.Vendas = append(lista, act.Venda)
	case VendaCreateFailed:
		s.Error = act.Message
	case VendasFetchRequested:
		s.vendasSeq = act.Seq
	case VendasFetchSucceeded:
		if act.Seq != s.vendasSeq {
			return s
		}
		s.Vendas = act.Vendas
	case VendasFetchFailed:
		if act.Seq != s.vendasSeq {
			return s
		}
		s.Error = act.Message
	case VendasErrorCleared:
		s.Error = ""
		if s.Status == StatusError {
			s.Status = StatusIdle
		}
	}
	return s
}

func reduceUI(s UIState, a Action) UIState {
	switch act := a.(type) {
	case ModalOpened:
		s.Modals = copyFlags(s.Modals)
		s.Modals[act.Modal] = true
	case ModalClosed:
		s.Modals = copyFlags(s.Modals)
		s.Modals[act.Modal] = false
	case LoadingSet:
		s.Loading = copyFlags(s.Loading)
		s.Loading[act.Key] = act.Value
	case AllModalsCleared:
		s.Modals = map[string]bool{
			ModalAddCliente: false,
			ModalAddVenda:   false,
			ModalVendas:     false,
		}
	}
	return s
}

func copyFlags(flags map[string]bool) map[string]bool {
	out := make(map[string]bool, len(flags))
	for k, v := range flags {
		out[k] = v
	}
	return out
}
