// Package ui renders store state to the terminal and drives the operations
// layer. Screens read the state snapshot after every operation; the prompt
// flows are the terminal rendition of the app's modal dialogs.
package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"cli_clientes/internal/app"
	"cli_clientes/internal/store"
	"cli_clientes/internal/validation"
)

// UI owns the input/output streams and the operations layer.
type UI struct {
	svc *app.Service
	in  *bufio.Reader
	out io.Writer
}

// New creates the terminal UI.
func New(svc *app.Service, in io.Reader, out io.Writer) *UI {
	return &UI{svc: svc, in: bufio.NewReader(in), out: out}
}

// EnsureSession restores the persisted session or walks the user through
// login. Returns false when no session could be established.
func (u *UI) EnsureSession(ctx context.Context) bool {
	u.svc.CheckAuth(ctx)
	if u.svc.Store().State().Auth.Authenticated {
		return true
	}
	return u.LoginScreen(ctx)
}

// LoginScreen prompts for credentials, validating each field before the
// request is issued.
func (u *UI) LoginScreen(ctx context.Context) bool {
	fmt.Fprintln(u.out, "Login")
	username, ok := u.promptValidated("Usuário", validation.ValidateUsername)
	if !ok {
		fmt.Fprintln(u.out, "Operação cancelada")
		return false
	}
	password, ok := u.promptValidated("Senha", validation.ValidatePassword)
	if !ok {
		fmt.Fprintln(u.out, "Operação cancelada")
		return false
	}

	if err := u.svc.Login(ctx, username, password); err != nil {
		fmt.Fprintf(u.out, "Erro: %s\n", u.svc.Store().State().Auth.Error)
		return false
	}

	st := u.svc.Store().State().Auth
	fmt.Fprintf(u.out, "Bem-vindo, %s!\n", st.User.Username)
	return true
}

// LogoutScreen drops the session.
func (u *UI) LogoutScreen() {
	if err := u.svc.Logout(); err != nil {
		fmt.Fprintf(u.out, "Erro ao sair: %v\n", err)
		return
	}
	fmt.Fprintln(u.out, "Sessão encerrada")
}

// Dashboard loads everything the main screen shows and renders it: the
// estatísticas card, the per-day chart and the cliente list, optionally
// filtered by a search term.
func (u *UI) Dashboard(ctx context.Context, busca string) {
	u.svc.Store().Dispatch(store.AllModalsCleared{})
	u.loadDashboardData(ctx)

	st := u.svc.Store().State()
	renderEstatisticas(u.out, st.Vendas.Estatisticas)
	fmt.Fprintln(u.out)
	renderVendasChart(u.out, st.Vendas.VendasPorDia)
	fmt.Fprintln(u.out)
	renderClientes(u.out, filterClientes(st.Clientes.Clientes, busca))
	renderSliceError(u.out, st)
}

func (u *UI) loadDashboardData(ctx context.Context) {
	// Failures degrade to slice errors rendered after the data.
	_ = u.svc.FetchClientes(ctx)
	_ = u.svc.FetchEstatisticas(ctx)
	_ = u.svc.FetchVendasPorDia(ctx)
}

// AddClienteFlow is the add-cliente modal: validated prompts, the in-flight
// loading flag, and a summary line on success or failure.
func (u *UI) AddClienteFlow(ctx context.Context) {
	st := u.svc.Store()
	st.Dispatch(store.ModalOpened{Modal: store.ModalAddCliente})
	defer st.Dispatch(store.ModalClosed{Modal: store.ModalAddCliente})

	fmt.Fprintln(u.out, "Novo cliente")
	nome, ok := u.promptValidated("Nome completo", validation.ValidateName)
	if !ok {
		fmt.Fprintln(u.out, "Operação cancelada")
		return
	}
	email, ok := u.promptValidated("Email", validation.ValidateEmail)
	if !ok {
		fmt.Fprintln(u.out, "Operação cancelada")
		return
	}
	data, ok := u.promptValidated("Data de nascimento (DD/MM/AAAA)", validation.ValidateDate)
	if !ok {
		fmt.Fprintln(u.out, "Operação cancelada")
		return
	}

	st.Dispatch(store.LoadingSet{Key: store.LoadingAddingCliente, Value: true})
	created, err := u.svc.CreateCliente(ctx, clienteData(nome, email, data))
	st.Dispatch(store.LoadingSet{Key: store.LoadingAddingCliente, Value: false})

	if err != nil {
		fmt.Fprintf(u.out, "Erro: %s\n", st.State().Clientes.Error)
		return
	}
	fmt.Fprintf(u.out, "Cliente %d criado\n", created.ID)
}

// EditClienteFlow is the edit modal: current values shown, blank input
// keeps them.
func (u *UI) EditClienteFlow(ctx context.Context, id int) {
	st := u.svc.Store()
	if err := u.svc.FetchClientes(ctx); err != nil {
		fmt.Fprintf(u.out, "Erro: %s\n", st.State().Clientes.Error)
		return
	}

	cliente, ok := findCliente(st.State().Clientes.Clientes, id)
	if !ok {
		fmt.Fprintf(u.out, "Cliente %d não encontrado\n", id)
		return
	}

	fmt.Fprintf(u.out, "Editando %s (enter mantém o valor atual)\n", cliente.NomeCompleto)
	nome, ok := u.promptWithDefault("Nome completo", cliente.NomeCompleto, validation.ValidateName)
	if !ok {
		fmt.Fprintln(u.out, "Operação cancelada")
		return
	}
	email, ok := u.promptWithDefault("Email", cliente.Email, validation.ValidateEmail)
	if !ok {
		fmt.Fprintln(u.out, "Operação cancelada")
		return
	}
	data, ok := u.promptWithDefault("Data de nascimento (DD/MM/AAAA)",
		validation.FormatDateForFrontend(cliente.DataNascimento), validation.ValidateDate)
	if !ok {
		fmt.Fprintln(u.out, "Operação cancelada")
		return
	}

	st.Dispatch(store.LoadingSet{Key: store.LoadingUpdatingCliente, Value: true})
	updated, err := u.svc.UpdateCliente(ctx, updateData(id, nome, email, data))
	st.Dispatch(store.LoadingSet{Key: store.LoadingUpdatingCliente, Value: false})

	if err != nil {
		fmt.Fprintf(u.out, "Erro: %s\n", st.State().Clientes.Error)
		return
	}
	fmt.Fprintf(u.out, "Cliente %d atualizado\n", updated.ID)
}

// DeleteClienteFlow asks for confirmation before removing the cliente.
func (u *UI) DeleteClienteFlow(ctx context.Context, id int) {
	st := u.svc.Store()

	fmt.Fprintf(u.out, "Excluir cliente %d? (s/n) ", id)
	answer, _ := u.in.ReadString('\n')
	if strings.TrimSpace(strings.ToLower(answer)) != "s" {
		fmt.Fprintln(u.out, "Operação cancelada")
		return
	}

	st.Dispatch(store.LoadingSet{Key: store.LoadingDeletingCliente, Value: true})
	err := u.svc.DeleteCliente(ctx, id)
	st.Dispatch(store.LoadingSet{Key: store.LoadingDeletingCliente, Value: false})

	if err != nil {
		fmt.Fprintf(u.out, "Erro: %s\n", st.State().Clientes.Error)
		return
	}
	fmt.Fprintf(u.out, "Cliente %d excluído\n", id)
}

// VendasScreen is the vendas modal: selects the cliente snapshot, loads its
// sales and renders them.
func (u *UI) VendasScreen(ctx context.Context, clienteID int) {
	st := u.svc.Store()
	if err := u.svc.FetchClientes(ctx); err != nil {
		fmt.Fprintf(u.out, "Erro: %s\n", st.State().Clientes.Error)
		return
	}

	cliente, ok := findCliente(st.State().Clientes.Clientes, clienteID)
	if !ok {
		fmt.Fprintf(u.out, "Cliente %d não encontrado\n", clienteID)
		return
	}

	st.Dispatch(store.ClienteSelected{Cliente: cliente})
	st.Dispatch(store.ModalOpened{Modal: store.ModalVendas})
	defer func() {
		st.Dispatch(store.ModalClosed{Modal: store.ModalVendas})
		st.Dispatch(store.ClienteSelectionCleared{})
	}()

	if err := u.svc.FetchVendasByCliente(ctx, clienteID); err != nil {
		fmt.Fprintf(u.out, "Erro: %s\n", st.State().Vendas.Error)
		return
	}

	state := st.State()
	renderVendas(u.out, state.Clientes.Selected, state.Vendas.Vendas)
}

// AddVendaFlow is the add-venda modal for one cliente.
func (u *UI) AddVendaFlow(ctx context.Context, clienteID int) {
	st := u.svc.Store()
	st.Dispatch(store.ModalOpened{Modal: store.ModalAddVenda})
	defer st.Dispatch(store.ModalClosed{Modal: store.ModalAddVenda})

	fmt.Fprintf(u.out, "Nova venda para o cliente %d\n", clienteID)
	valor, ok := u.promptValidated("Valor", validation.ValidateValue)
	if !ok {
		fmt.Fprintln(u.out, "Operação cancelada")
		return
	}
	data, ok := u.promptValidated("Data (DD/MM/AAAA)", validation.ValidateDate)
	if !ok {
		fmt.Fprintln(u.out, "Operação cancelada")
		return
	}

	st.Dispatch(store.LoadingSet{Key: store.LoadingAddingVenda, Value: true})
	created, err := u.svc.CreateVenda(ctx, vendaData(clienteID, valor, data))
	st.Dispatch(store.LoadingSet{Key: store.LoadingAddingVenda, Value: false})

	if err != nil {
		fmt.Fprintf(u.out, "Erro: %s\n", st.State().Vendas.Error)
		return
	}
	fmt.Fprintf(u.out, "Venda %d registrada\n", created.ID)
}

// promptValidated re-prompts until the validator accepts the input, showing
// the field's error inline like the form screens do. When the input stream
// ends before a valid value is read it reports !ok; nothing invalid may
// reach the backend.
func (u *UI) promptValidated(label string, validate func(string) error) (string, bool) {
	for {
		fmt.Fprintf(u.out, "%s: ", label)
		line, err := u.in.ReadString('\n')
		value := strings.TrimSpace(line)
		if vErr := validate(value); vErr != nil {
			fmt.Fprintln(u.out, vErr.Error())
			if err != nil {
				return "", false
			}
			continue
		}
		return value, true
	}
}

// promptWithDefault behaves like promptValidated but a blank input keeps
// the current value.
func (u *UI) promptWithDefault(label, current string, validate func(string) error) (string, bool) {
	for {
		fmt.Fprintf(u.out, "%s [%s]: ", label, current)
		line, err := u.in.ReadString('\n')
		value := strings.TrimSpace(line)
		if value == "" {
			return current, true
		}
		if vErr := validate(value); vErr != nil {
			fmt.Fprintln(u.out, vErr.Error())
			if err != nil {
				return "", false
			}
			continue
		}
		return value, true
	}
}
