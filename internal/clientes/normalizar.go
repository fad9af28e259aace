package clientes

import "encoding/json"

// canonicalProbe checks whether the first element of an array response
// already carries the canonical string fields.
type canonicalProbe struct {
	NomeCompleto *string `json:"nomeCompleto"`
	Email        *string `json:"email"`
}

// nestedResponse is the alternative response shape the backend sometimes
// returns: the cliente list buried under data.clientes, with every field
// optional and some duplicated.
type nestedResponse struct {
	Data *struct {
		Clientes []nestedCliente `json:"clientes"`
	} `json:"data"`
}

type nestedCliente struct {
	ID   int `json:"id"`
	Info *struct {
		NomeCompleto string `json:"nomeCompleto"`
		Detalhes     *struct {
			Email      string `json:"email"`
			Nascimento string `json:"nascimento"`
		} `json:"detalhes"`
	} `json:"info"`
	Duplicado *struct {
		NomeCompleto string `json:"nomeCompleto"`
	} `json:"duplicado"`
	Estatisticas *struct {
		Vendas []VendaResumo `json:"vendas"`
	} `json:"estatisticas"`
}

// NormalizarClientes maps a raw server payload into the canonical Cliente
// list. It tolerates two shapes: an already-canonical array, which is
// returned as-is, and the nested {data:{clientes:[...]}} form, which is
// mapped field by field with empty-string defaults. Anything else yields an
// empty list; this function never fails.
func NormalizarClientes(payload json.RawMessage) []Cliente {
	if lista, ok := parseCanonical(payload); ok {
		return lista
	}
	if lista, ok := parseNested(payload); ok {
		return lista
	}
	return []Cliente{}
}

func parseCanonical(payload json.RawMessage) ([]Cliente, bool) {
	var elems []json.RawMessage
	if err := json.Unmarshal(payload, &elems); err != nil {
		return nil, false
	}
	if len(elems) == 0 {
		return nil, false
	}
	var probe canonicalProbe
	if json.Unmarshal(elems[0], &probe) != nil || probe.NomeCompleto == nil || probe.Email == nil {
		return nil, false
	}

	lista := make([]Cliente, 0, len(elems))
	for _, raw := range elems {
		var c Cliente
		// A type mismatch inside one element must not discard the whole
		// list; Unmarshal keeps every field it decoded before the error.
		_ = json.Unmarshal(raw, &c)
		lista = append(lista, c)
	}
	return lista, true
}

func parseNested(payload json.RawMessage) ([]Cliente, bool) {
	var resp nestedResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, false
	}
	if resp.Data == nil || resp.Data.Clientes == nil {
		return nil, false
	}

	lista := make([]Cliente, 0, len(resp.Data.Clientes))
	for idx, item := range resp.Data.Clientes {
		var c Cliente

		if item.Info != nil {
			c.NomeCompleto = item.Info.NomeCompleto
			if item.Info.Detalhes != nil {
				c.Email = item.Info.Detalhes.Email
				c.DataNascimento = item.Info.Detalhes.Nascimento
			}
		}
		if c.NomeCompleto == "" && item.Duplicado != nil {
			c.NomeCompleto = item.Duplicado.NomeCompleto
		}

		c.Vendas = []VendaResumo{}
		if item.Estatisticas != nil && item.Estatisticas.Vendas != nil {
			c.Vendas = item.Estatisticas.Vendas
		}

		c.ID = item.ID
		if c.ID == 0 {
			c.ID = idx + 1
		}

		lista = append(lista, c)
	}
	return lista, true
}
