// Package apitest is an in-memory rendition of the clientes/vendas backend
// used by the test suites: the real REST contract, gin handlers, JWT bearer
// auth and map-backed storage.
package apitest

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"cli_clientes/internal/clientes"
)

// Server fakes the backend. Username/Password are the only credentials the
// login route accepts; Nested switches GET /clientes to the nested
// {data:{clientes:[...]}} response shape.
type Server struct {
	Username string
	Password string
	Nested   bool

	engine *gin.Engine
	secret []byte

	mu            sync.Mutex
	clientesByID  map[int]clientes.Cliente
	vendasByID    map[int]clientes.Venda
	nextClienteID int
	nextVendaID   int
}

// NewServer builds the fake backend with the given accepted credentials.
func NewServer(username, password string) *Server {
	gin.SetMode(gin.TestMode)
	s := &Server{
		Username:      username,
		Password:      password,
		engine:        gin.New(),
		secret:        []byte("apitest-secret"),
		clientesByID:  map[int]clientes.Cliente{},
		vendasByID:    map[int]clientes.Venda{},
		nextClienteID: 1,
		nextVendaID:   1,
	}
	s.routes()
	return s
}

// Handler exposes the gin engine for httptest.NewServer.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// SeedCliente inserts a cliente directly into storage and returns it.
func (s *Server) SeedCliente(nome, email, nascimento string) clientes.Cliente {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := clientes.Cliente{ID: s.nextClienteID, NomeCompleto: nome, Email: email, DataNascimento: nascimento}
	s.clientesByID[c.ID] = c
	s.nextClienteID++
	return c
}

// SeedVenda inserts a venda directly into storage and returns it.
func (s *Server) SeedVenda(clienteID int, valor float64, data string) clientes.Venda {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := clientes.Venda{ID: s.nextVendaID, ClienteID: clienteID, Valor: valor, Data: data}
	s.vendasByID[v.ID] = v
	s.nextVendaID++
	return v
}

func (s *Server) routes() {
	s.engine.POST("/auth/login", s.handleLogin)

	authed := s.engine.Group("/", s.requireAuth)
	authed.GET("/auth/profile", s.handleProfile)
	authed.GET("/clientes", s.handleListClientes)
	authed.POST("/clientes", s.handleCreateCliente)
	authed.PATCH("/clientes/:id", s.handleUpdateCliente)
	authed.DELETE("/clientes/test/:id", s.handleDeleteCliente)
	authed.GET("/vendas/por-dia", s.handleVendasPorDia)
	authed.GET("/vendas/estatisticas", s.handleEstatisticas)
	authed.POST("/vendas", s.handleCreateVenda)
	authed.GET("/vendas/cliente/:id", s.handleVendasByCliente)
}

func (s *Server) handleLogin(c *gin.Context) {
	var req clientes.LoginData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request payload"})
		return
	}
	if req.Username != s.Username || req.Password != s.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Credenciais inválidas"})
		return
	}

	claims := jwt.MapClaims{
		"sub":      1,
		"username": req.Username,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "token signing failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"user":         clientes.User{ID: 1, Username: req.Username},
	})
}

func (s *Server) requireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	claims, _ := token.Claims.(jwt.MapClaims)
	username, _ := claims["username"].(string)
	c.Set("username", username)
	c.Next()
}

func (s *Server) handleProfile(c *gin.Context) {
	c.JSON(http.StatusOK, clientes.User{ID: 1, Username: c.GetString("username")})
}

func (s *Server) sortedClientes() []clientes.Cliente {
	lista := make([]clientes.Cliente, 0, len(s.clientesByID))
	for _, c := range s.clientesByID {
		lista = append(lista, c)
	}
	sort.Slice(lista, func(i, j int) bool { return lista[i].ID < lista[j].ID })
	return lista
}

func (s *Server) handleListClientes(c *gin.Context) {
	s.mu.Lock()
	lista := s.sortedClientes()
	s.mu.Unlock()

	if !s.Nested {
		c.JSON(http.StatusOK, lista)
		return
	}

	nested := make([]gin.H, 0, len(lista))
	for _, cl := range lista {
		nested = append(nested, gin.H{
			"id": cl.ID,
			"info": gin.H{
				"nomeCompleto": cl.NomeCompleto,
				"detalhes": gin.H{
					"email":      cl.Email,
					"nascimento": cl.DataNascimento,
				},
			},
			"estatisticas": gin.H{"vendas": []gin.H{}},
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"clientes": nested},
		"meta": gin.H{"registroTotal": len(nested), "pagina": 1},
	})
}

func (s *Server) handleCreateCliente(c *gin.Context) {
	var req clientes.CreateClienteData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request payload"})
		return
	}

	s.mu.Lock()
	created := clientes.Cliente{
		ID:             s.nextClienteID,
		NomeCompleto:   req.NomeCompleto,
		Email:          req.Email,
		DataNascimento: req.DataNascimento,
	}
	s.clientesByID[created.ID] = created
	s.nextClienteID++
	s.mu.Unlock()

	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleUpdateCliente(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}
	var req clientes.CreateClienteData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request payload"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.clientesByID[id]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Cliente não encontrado"})
		return
	}
	existing.NomeCompleto = req.NomeCompleto
	existing.Email = req.Email
	existing.DataNascimento = req.DataNascimento
	s.clientesByID[id] = existing

	c.JSON(http.StatusOK, existing)
}

func (s *Server) handleDeleteCliente(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clientesByID[id]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Cliente não encontrado"})
		return
	}
	delete(s.clientesByID, id)
	c.Status(http.StatusNoContent)
}

func (s *Server) handleVendasPorDia(c *gin.Context) {
	s.mu.Lock()
	totals := map[string]float64{}
	for _, v := range s.vendasByID {
		totals[v.Data] += v.Valor
	}
	s.mu.Unlock()

	// Deliberately unsorted: ordering is the client's job.
	porDia := make([]clientes.VendaPorDia, 0, len(totals))
	for data, total := range totals {
		porDia = append(porDia, clientes.VendaPorDia{Data: data, Total: total})
	}
	c.JSON(http.StatusOK, porDia)
}

func (s *Server) handleEstatisticas(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals := map[int]float64{}
	counts := map[int]int{}
	days := map[int]map[string]bool{}
	for _, v := range s.vendasByID {
		totals[v.ClienteID] += v.Valor
		counts[v.ClienteID]++
		if days[v.ClienteID] == nil {
			days[v.ClienteID] = map[string]bool{}
		}
		days[v.ClienteID][v.Data] = true
	}

	var stats clientes.Estatisticas
	for id, total := range totals {
		nome := s.clientesByID[id].NomeCompleto
		if total > stats.MaiorVolume.Total {
			stats.MaiorVolume.Cliente = nome
			stats.MaiorVolume.Total = total
		}
		if media := total / float64(counts[id]); media > stats.MaiorMedia.Media {
			stats.MaiorMedia.Cliente = nome
			stats.MaiorMedia.Media = media
		}
		if dias := len(days[id]); dias > stats.MaiorFrequencia.Dias {
			stats.MaiorFrequencia.Cliente = nome
			stats.MaiorFrequencia.Dias = dias
		}
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleCreateVenda(c *gin.Context) {
	var req clientes.CreateVendaData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request payload"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clientesByID[req.ClienteID]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cliente não encontrado"})
		return
	}
	created := clientes.Venda{
		ID:        s.nextVendaID,
		ClienteID: req.ClienteID,
		Valor:     req.Valor,
		Data:      req.Data,
	}
	s.vendasByID[created.ID] = created
	s.nextVendaID++

	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleVendasByCliente(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	vendas := make([]clientes.Venda, 0)
	for _, v := range s.vendasByID {
		if v.ClienteID == id {
			vendas = append(vendas, v)
		}
	}
	sort.Slice(vendas, func(i, j int) bool { return vendas[i].ID < vendas[j].ID })
	c.JSON(http.StatusOK, vendas)
}
