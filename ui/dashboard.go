package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"cli_clientes/internal/clientes"
	"cli_clientes/internal/store"
	"cli_clientes/internal/validation"
)

// firstMissingLetter returns the first letter of the alphabet absent from
// the lowercased name, or "-" when every letter appears.
func firstMissingLetter(nome string) string {
	lower := strings.ToLower(nome)
	for r := 'a'; r <= 'z'; r++ {
		if !strings.ContainsRune(lower, r) {
			return strings.ToUpper(string(r))
		}
	}
	return "-"
}

// filterClientes keeps the clientes whose nome or email contains the search
// term, case-insensitively. An empty term keeps everything.
func filterClientes(lista []clientes.Cliente, termo string) []clientes.Cliente {
	if termo == "" {
		return lista
	}
	termo = strings.ToLower(termo)
	out := make([]clientes.Cliente, 0, len(lista))
	for _, c := range lista {
		if strings.Contains(strings.ToLower(c.NomeCompleto), termo) ||
			strings.Contains(strings.ToLower(c.Email), termo) {
			out = append(out, c)
		}
	}
	return out
}

func renderClientes(w io.Writer, lista []clientes.Cliente) {
	if len(lista) == 0 {
		fmt.Fprintln(w, "Nenhum cliente encontrado")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNOME\tEMAIL\tNASCIMENTO\tLETRA FALTANTE")
	for _, c := range lista {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			c.ID,
			c.NomeCompleto,
			c.Email,
			validation.FormatDateForFrontend(c.DataNascimento),
			firstMissingLetter(c.NomeCompleto),
		)
	}
	tw.Flush()
}

func renderEstatisticas(w io.Writer, stats *clientes.Estatisticas) {
	fmt.Fprintln(w, "Estatísticas")
	if stats == nil {
		fmt.Fprintln(w, "  (sem dados)")
		return
	}
	fmt.Fprintf(w, "  Maior volume:     %s (R$ %.2f)\n", stats.MaiorVolume.Cliente, stats.MaiorVolume.Total)
	fmt.Fprintf(w, "  Maior média:      %s (R$ %.2f)\n", stats.MaiorMedia.Cliente, stats.MaiorMedia.Media)
	fmt.Fprintf(w, "  Maior frequência: %s (%d dias)\n", stats.MaiorFrequencia.Cliente, stats.MaiorFrequencia.Dias)
}

const chartWidth = 40

// renderVendasChart draws one bar per day, scaled against the largest daily
// total.
func renderVendasChart(w io.Writer, porDia []clientes.VendaPorDia) {
	fmt.Fprintln(w, "Vendas por Dia")
	if len(porDia) == 0 {
		fmt.Fprintln(w, "  Nenhuma venda registrada")
		return
	}

	max := porDia[0].Total
	for _, dia := range porDia {
		if dia.Total > max {
			max = dia.Total
		}
	}

	for _, dia := range porDia {
		bars := 0
		if max > 0 {
			bars = int(dia.Total / max * chartWidth)
		}
		if bars == 0 && dia.Total > 0 {
			bars = 1
		}
		fmt.Fprintf(w, "  %s | %s R$ %.2f\n",
			validation.FormatDateForFrontend(dia.Data),
			strings.Repeat("#", bars),
			dia.Total,
		)
	}
}

func renderVendas(w io.Writer, cliente *clientes.Cliente, vendas []clientes.Venda) {
	if cliente != nil {
		fmt.Fprintf(w, "Vendas de %s\n", cliente.NomeCompleto)
	}
	if len(vendas) == 0 {
		fmt.Fprintln(w, "  Nenhuma venda registrada")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATA\tVALOR")
	var total float64
	for _, v := range vendas {
		fmt.Fprintf(tw, "%d\t%s\tR$ %.2f\n", v.ID, validation.FormatDateForFrontend(v.Data), v.Valor)
		total += v.Valor
	}
	fmt.Fprintf(tw, "\tTOTAL\tR$ %.2f\n", total)
	tw.Flush()
}

func renderSliceError(w io.Writer, st store.State) {
	for _, msg := range []string{st.Auth.Error, st.Clientes.Error, st.Vendas.Error} {
		if msg != "" {
			fmt.Fprintf(w, "Erro: %s\n", msg)
		}
	}
}
