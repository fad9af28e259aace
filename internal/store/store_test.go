package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cli_clientes/internal/clientes"
)

func cliente(id int, nome string) clientes.Cliente {
	return clientes.Cliente{ID: id, NomeCompleto: nome, Email: nome + "@example.com"}
}

func TestAuth_LoginLifecycle(t *testing.T) {
	s := New()

	s.Dispatch(LoginRequested{})
	assert.Equal(t, StatusLoading, s.State().Auth.Status)

	s.Dispatch(LoginSucceeded{Token: "tok", User: clientes.User{ID: 1, Username: "ana"}})
	st := s.State().Auth
	assert.Equal(t, StatusIdle, st.Status)
	assert.True(t, st.Authenticated)
	assert.Equal(t, "tok", st.Token)
	require.NotNil(t, st.User)
	assert.Equal(t, "ana", st.User.Username)

	s.Dispatch(LoggedOut{})
	st = s.State().Auth
	assert.False(t, st.Authenticated)
	assert.Empty(t, st.Token)
	assert.Nil(t, st.User, "authenticated and unauthenticated are mutually exclusive")
}

func TestAuth_LoginFailureKeepsUnauthenticated(t *testing.T) {
	s := New()

	s.Dispatch(LoginRequested{})
	s.Dispatch(LoginFailed{Message: "Erro no login"})

	st := s.State().Auth
	assert.Equal(t, StatusError, st.Status)
	assert.Equal(t, "Erro no login", st.Error)
	assert.False(t, st.Authenticated)

	s.Dispatch(AuthErrorCleared{})
	st = s.State().Auth
	assert.Empty(t, st.Error)
	assert.Equal(t, StatusIdle, st.Status)
}

func TestAuth_CheckAuthFailedIsNotAnError(t *testing.T) {
	s := New()

	s.Dispatch(CheckAuthRequested{})
	s.Dispatch(CheckAuthFailed{})

	st := s.State().Auth
	assert.False(t, st.Authenticated)
	assert.Empty(t, st.Error, "missing or rejected token resolves silently")
	assert.Equal(t, StatusIdle, st.Status)
}

func TestClientes_FetchReplacesList(t *testing.T) {
	s := New()

	seq := s.BeginClientesFetch()
	assert.Equal(t, StatusLoading, s.State().Clientes.Status)

	s.Dispatch(ClientesFetchSucceeded{Seq: seq, Clientes: []clientes.Cliente{cliente(1, "ana"), cliente(2, "cadu")}})
	st := s.State().Clientes
	assert.Equal(t, StatusIdle, st.Status)
	require.Len(t, st.Clientes, 2)
}

func TestClientes_FailedFetchPreservesPriorList(t *testing.T) {
	s := New()

	seq := s.BeginClientesFetch()
	s.Dispatch(ClientesFetchSucceeded{Seq: seq, Clientes: []clientes.Cliente{cliente(1, "ana")}})

	seq = s.BeginClientesFetch()
	s.Dispatch(ClientesFetchFailed{Seq: seq, Message: "Erro ao carregar clientes"})

	st := s.State().Clientes
	assert.Equal(t, StatusError, st.Status)
	assert.Equal(t, "Erro ao carregar clientes", st.Error)
	require.Len(t, st.Clientes, 1, "a failed refresh keeps the previously loaded data")
}

func TestClientes_StaleFetchIsDropped(t *testing.T) {
	s := New()

	first := s.BeginClientesFetch()
	second := s.BeginClientesFetch()

	// The newer fetch resolves first.
	s.Dispatch(ClientesFetchSucceeded{Seq: second, Clientes: []clientes.Cliente{cliente(2, "nova")}})
	// The slow earlier fetch resolves late and must be ignored.
	s.Dispatch(ClientesFetchSucceeded{Seq: first, Clientes: []clientes.Cliente{cliente(1, "velha")}})

	st := s.State().Clientes
	require.Len(t, st.Clientes, 1)
	assert.Equal(t, "nova", st.Clientes[0].NomeCompleto)

	// A stale failure must not flip the slice to error either.
	s.Dispatch(ClientesFetchFailed{Seq: first, Message: "stale"})
	assert.Equal(t, StatusIdle, s.State().Clientes.Status)
}

func TestClientes_ConcurrentBeginFetchKeepsNewestSequence(t *testing.T) {
	const fetchers = 8

	for trial := 0; trial < 200; trial++ {
		s := New()

		var wg sync.WaitGroup
		seqs := make([]uint64, fetchers)
		for i := 0; i < fetchers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				seqs[i] = s.BeginClientesFetch()
			}(i)
		}
		wg.Wait()

		var newest uint64
		for _, seq := range seqs {
			if seq > newest {
				newest = seq
			}
		}

		// Only the most recently issued fetch resolves; its result must land
		// no matter how the Begin calls interleaved.
		s.Dispatch(ClientesFetchSucceeded{Seq: newest, Clientes: []clientes.Cliente{cliente(1, "ana")}})
		require.Len(t, s.State().Clientes.Clientes, 1)
		assert.Equal(t, StatusIdle, s.State().Clientes.Status)
	}
}

func TestClientes_CreateAppends_FailureLeavesListUnchanged(t *testing.T) {
	s := New()
	seq := s.BeginClientesFetch()
	s.Dispatch(ClientesFetchSucceeded{Seq: seq, Clientes: []clientes.Cliente{cliente(1, "ana")}})

	s.Dispatch(ClienteCreateFailed{Message: "Erro ao criar cliente"})
	st := s.State().Clientes
	require.Len(t, st.Clientes, 1, "failed create must not touch the list")
	assert.Equal(t, "Erro ao criar cliente", st.Error)

	s.Dispatch(ClienteCreateSucceeded{Cliente: cliente(2, "cadu")})
	st = s.State().Clientes
	require.Len(t, st.Clientes, 2)
	assert.Equal(t, 2, st.Clientes[1].ID, "create appends at the end")
}

func TestClientes_UpdateReplacesOnlyMatchingID(t *testing.T) {
	s := New()
	seq := s.BeginClientesFetch()
	s.Dispatch(ClientesFetchSucceeded{Seq: seq, Clientes: []clientes.Cliente{
		cliente(1, "ana"), cliente(2, "cadu"), cliente(3, "bia"),
	}})

	atualizado := cliente(2, "carlos eduardo")
	s.Dispatch(ClienteUpdateSucceeded{Cliente: atualizado})

	st := s.State().Clientes
	require.Len(t, st.Clientes, 3)
	assert.Equal(t, "ana", st.Clientes[0].NomeCompleto)
	assert.Equal(t, "carlos eduardo", st.Clientes[1].NomeCompleto, "matching id replaced in place")
	assert.Equal(t, "bia", st.Clientes[2].NomeCompleto)
}

func TestClientes_DeleteFiltersOutByID(t *testing.T) {
	s := New()
	seq := s.BeginClientesFetch()
	s.Dispatch(ClientesFetchSucceeded{Seq: seq, Clientes: []clientes.Cliente{
		cliente(1, "ana"), cliente(2, "cadu"),
	}})

	s.Dispatch(ClienteDeleteSucceeded{ID: 1})
	st := s.State().Clientes
	require.Len(t, st.Clientes, 1)
	assert.Equal(t, 2, st.Clientes[0].ID)
}

func TestClientes_SelectedIsASnapshot(t *testing.T) {
	s := New()
	seq := s.BeginClientesFetch()
	s.Dispatch(ClientesFetchSucceeded{Seq: seq, Clientes: []clientes.Cliente{cliente(1, "ana")}})

	s.Dispatch(ClienteSelected{Cliente: s.State().Clientes.Clientes[0]})
	s.Dispatch(ClienteUpdateSucceeded{Cliente: cliente(1, "ana maria")})

	st := s.State().Clientes
	require.NotNil(t, st.Selected)
	assert.Equal(t, "ana", st.Selected.NomeCompleto,
		"list edits must not retroactively mutate the selected snapshot")

	s.Dispatch(ClienteSelectionCleared{})
	assert.Nil(t, s.State().Clientes.Selected)
}

func TestVendas_PorDiaFetchAndFencing(t *testing.T) {
	s := New()

	first := s.BeginVendasPorDiaFetch()
	assert.Equal(t, StatusLoading, s.State().Vendas.Status)
	second := s.BeginVendasPorDiaFetch()

	s.Dispatch(VendasPorDiaFetchSucceeded{Seq: second, PorDia: []clientes.VendaPorDia{{Data: "2024-01-02", Total: 50}}})
	s.Dispatch(VendasPorDiaFetchSucceeded{Seq: first, PorDia: []clientes.VendaPorDia{{Data: "2024-01-01", Total: 150}}})

	st := s.State().Vendas
	require.Len(t, st.VendasPorDia, 1)
	assert.Equal(t, "2024-01-02", st.VendasPorDia[0].Data, "stale per-day fetch dropped")
}

func TestVendas_CreateAppendsWithoutTouchingAggregates(t *testing.T) {
	s := New()

	seq := s.BeginVendasPorDiaFetch()
	s.Dispatch(VendasPorDiaFetchSucceeded{Seq: seq, PorDia: []clientes.VendaPorDia{{Data: "2024-01-01", Total: 150}}})
	seq = s.BeginEstatisticasFetch()
	s.Dispatch(EstatisticasFetchSucceeded{Seq: seq, Estatisticas: clientes.Estatisticas{}})

	s.Dispatch(VendaCreateSucceeded{Venda: clientes.Venda{ID: 10, ClienteID: 1, Valor: 80, Data: "2024-01-03"}})

	st := s.State().Vendas
	require.Len(t, st.Vendas, 1)
	require.Len(t, st.VendasPorDia, 1, "create-venda success leaves the aggregate as-is")
	assert.NotNil(t, st.Estatisticas, "create-venda success leaves the snapshot as-is")
}

func TestVendas_ByClienteReplacesList(t *testing.T) {
	s := New()

	seq := s.BeginVendasFetch()
	s.Dispatch(VendasFetchSucceeded{Seq: seq, Vendas: []clientes.Venda{{ID: 1, ClienteID: 1, Valor: 10, Data: "2024-01-01"}}})
	require.Len(t, s.State().Vendas.Vendas, 1)

	seq = s.BeginVendasFetch()
	s.Dispatch(VendasFetchSucceeded{Seq: seq, Vendas: []clientes.Venda{
		{ID: 2, ClienteID: 2, Valor: 20, Data: "2024-01-02"},
		{ID: 3, ClienteID: 2, Valor: 30, Data: "2024-01-03"},
	}})

	st := s.State().Vendas
	require.Len(t, st.Vendas, 2, "sales list is a full replace, not a merge")
	assert.Equal(t, 2, st.Vendas[0].ClienteID)
}

func TestUI_ModalAndLoadingFlags(t *testing.T) {
	s := New()

	st := s.State().UI
	assert.False(t, st.Modals[ModalAddCliente])
	assert.False(t, st.Loading[LoadingAddingCliente])

	s.Dispatch(ModalOpened{Modal: ModalAddCliente})
	s.Dispatch(ModalOpened{Modal: ModalVendas})
	s.Dispatch(LoadingSet{Key: LoadingAddingCliente, Value: true})

	st = s.State().UI
	assert.True(t, st.Modals[ModalAddCliente])
	assert.True(t, st.Modals[ModalVendas])
	assert.False(t, st.Modals[ModalAddVenda], "modal flags are independent")
	assert.True(t, st.Loading[LoadingAddingCliente])

	s.Dispatch(ModalClosed{Modal: ModalAddCliente})
	assert.False(t, s.State().UI.Modals[ModalAddCliente])
	assert.True(t, s.State().UI.Modals[ModalVendas])

	s.Dispatch(AllModalsCleared{})
	st = s.State().UI
	assert.False(t, st.Modals[ModalAddCliente])
	assert.False(t, st.Modals[ModalAddVenda])
	assert.False(t, st.Modals[ModalVendas])
}

func TestState_SnapshotIsStableAcrossDispatches(t *testing.T) {
	s := New()
	seq := s.BeginClientesFetch()
	s.Dispatch(ClientesFetchSucceeded{Seq: seq, Clientes: []clientes.Cliente{cliente(1, "ana")}})

	snap := s.State()
	s.Dispatch(ClienteUpdateSucceeded{Cliente: cliente(1, "renomeada")})

	assert.Equal(t, "ana", snap.Clientes.Clientes[0].NomeCompleto,
		"snapshots must not observe later mutations")
}
