package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"cli_clientes/internal/api"
	"cli_clientes/internal/app"
	"cli_clientes/internal/config"
	"cli_clientes/internal/session"
	"cli_clientes/internal/store"
	"cli_clientes/ui"
)

const usage = `uso: cli_clientes <comando> [opções]

comandos:
  dashboard            carrega e exibe clientes, estatísticas e vendas por dia
  login                autentica e guarda a sessão
  logout               encerra a sessão
  add-cliente          cadastra um cliente
  edit-cliente -id N   edita um cliente
  rm-cliente -id N     exclui um cliente
  vendas -cliente N    lista as vendas de um cliente
  add-venda -cliente N registra uma venda
`

func main() {
	cfg := config.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	tokens := session.NewFileStore(cfg.TokenFile)
	client := api.New(cfg, tokens, logger)
	defer client.Close()

	svc := app.NewService(store.New(), client, tokens, logger)
	terminal := ui.New(svc, os.Stdin, os.Stdout)
	ctx := context.Background()

	command := "dashboard"
	args := []string{}
	if len(os.Args) > 1 {
		command = os.Args[1]
		args = os.Args[2:]
	}

	switch command {
	case "login":
		if !terminal.LoginScreen(ctx) {
			os.Exit(1)
		}

	case "logout":
		terminal.LogoutScreen()

	case "dashboard":
		fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
		busca := fs.String("busca", "", "filtra clientes por nome ou email")
		fs.Parse(args)
		if !terminal.EnsureSession(ctx) {
			os.Exit(1)
		}
		terminal.Dashboard(ctx, *busca)

	case "add-cliente":
		if !terminal.EnsureSession(ctx) {
			os.Exit(1)
		}
		terminal.AddClienteFlow(ctx)

	case "edit-cliente":
		id := requireID(args, "edit-cliente", "id", "id do cliente")
		if !terminal.EnsureSession(ctx) {
			os.Exit(1)
		}
		terminal.EditClienteFlow(ctx, id)

	case "rm-cliente":
		id := requireID(args, "rm-cliente", "id", "id do cliente")
		if !terminal.EnsureSession(ctx) {
			os.Exit(1)
		}
		terminal.DeleteClienteFlow(ctx, id)

	case "vendas":
		id := requireID(args, "vendas", "cliente", "id do cliente")
		if !terminal.EnsureSession(ctx) {
			os.Exit(1)
		}
		terminal.VendasScreen(ctx, id)

	case "add-venda":
		id := requireID(args, "add-venda", "cliente", "id do cliente")
		if !terminal.EnsureSession(ctx) {
			os.Exit(1)
		}
		terminal.AddVendaFlow(ctx, id)

	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// requireID parses the command's integer id flag and exits when it is
// missing.
func requireID(args []string, command, name, help string) int {
	fs := flag.NewFlagSet(command, flag.ExitOnError)
	id := fs.Int(name, 0, help)
	fs.Parse(args)
	if *id == 0 {
		fmt.Fprintf(os.Stderr, "-%s é obrigatório\n", name)
		os.Exit(1)
	}
	return *id
}
