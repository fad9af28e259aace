package clientes

// Cliente represents a registered customer as cached by the client.
// NomeCompleto and Email are always present once a server payload has been
// normalized; Vendas carries the embedded sale summaries some responses ship.
type Cliente struct {
	ID             int           `json:"id"`
	NomeCompleto   string        `json:"nomeCompleto"`
	Email          string        `json:"email"`
	DataNascimento string        `json:"dataNascimento"`
	Vendas         []VendaResumo `json:"vendas,omitempty"`
}

// VendaResumo is the date+amount pair embedded inside a Cliente payload.
type VendaResumo struct {
	Data  string  `json:"data"`
	Valor float64 `json:"valor"`
}

// Venda represents one sale transaction tied to a customer.
type Venda struct {
	ID        int      `json:"id"`
	ClienteID int      `json:"clienteId"`
	Valor     float64  `json:"valor"`
	Data      string   `json:"data"`
	Cliente   *Cliente `json:"cliente,omitempty"`
}

// VendaPorDia is the aggregate total sold on one calendar day.
type VendaPorDia struct {
	Data  string  `json:"data"`
	Total float64 `json:"total"`
}

// Estatisticas is the read-only statistics snapshot computed by the backend:
// three independent leader records, each naming a customer and a metric.
type Estatisticas struct {
	MaiorVolume struct {
		Cliente string  `json:"cliente"`
		Total   float64 `json:"total"`
	} `json:"maiorVolume"`
	MaiorMedia struct {
		Cliente string  `json:"cliente"`
		Media   float64 `json:"media"`
	} `json:"maiorMedia"`
	MaiorFrequencia struct {
		Cliente string `json:"cliente"`
		Dias    int    `json:"dias"`
	} `json:"maiorFrequencia"`
}

// User is the minimal profile attached to a session.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// LoginData carries the credentials sent to POST /auth/login.
type LoginData struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateClienteData is the body of POST /clientes. DataNascimento uses the
// backend date form (YYYY-MM-DD).
type CreateClienteData struct {
	NomeCompleto   string `json:"nomeCompleto"`
	Email          string `json:"email"`
	DataNascimento string `json:"dataNascimento"`
}

// UpdateClienteData is the body of PATCH /clientes/{id}.
type UpdateClienteData struct {
	ID             int    `json:"-"`
	NomeCompleto   string `json:"nomeCompleto"`
	Email          string `json:"email"`
	DataNascimento string `json:"dataNascimento"`
}

// CreateVendaData is the body of POST /vendas.
type CreateVendaData struct {
	ClienteID int     `json:"clienteId"`
	Valor     float64 `json:"valor"`
	Data      string  `json:"data"`
}
