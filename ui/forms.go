package ui

import (
	"strconv"

	"cli_clientes/internal/clientes"
	"cli_clientes/internal/validation"
)

// Form values are collected in the frontend date form and converted to the
// backend form at the boundary, exactly once.

func clienteData(nome, email, data string) clientes.CreateClienteData {
	return clientes.CreateClienteData{
		NomeCompleto:   nome,
		Email:          email,
		DataNascimento: validation.FormatDateForBackend(data),
	}
}

func updateData(id int, nome, email, data string) clientes.UpdateClienteData {
	return clientes.UpdateClienteData{
		ID:             id,
		NomeCompleto:   nome,
		Email:          email,
		DataNascimento: validation.FormatDateForBackend(data),
	}
}

func vendaData(clienteID int, valor, data string) clientes.CreateVendaData {
	// Valor was validated before this point; a parse failure would have been
	// rejected by the prompt.
	num, _ := strconv.ParseFloat(valor, 64)
	return clientes.CreateVendaData{
		ClienteID: clienteID,
		Valor:     num,
		Data:      validation.FormatDateForBackend(data),
	}
}

func findCliente(lista []clientes.Cliente, id int) (clientes.Cliente, bool) {
	for _, c := range lista {
		if c.ID == id {
			return c, true
		}
	}
	return clientes.Cliente{}, false
}
