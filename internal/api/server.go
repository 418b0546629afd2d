package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JOstapjuk/class-clients/internal/client"
	"github.com/JOstapjuk/class-clients/internal/parser"
	"github.com/JOstapjuk/class-clients/internal/query"
)

// Server serves the client analytics queries over HTTP. Every request
// re-reads the records file, so handlers share no mutable state.
type Server struct {
	File string
}

func NewServer(file string) *Server {
	return &Server{File: file}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.GET("/healthz", s.Health)
	r.GET("/clients", s.ListClients)
	r.GET("/analytics/top-earner", s.TopEarner)
	r.GET("/analytics/top-loser", s.TopLoser)
	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListClients returns all records, filtered by bank when ?bank= is given.
func (s *Server) ListClients(c *gin.Context) {
	clients := parser.ReadClients(s.File)
	if bank := c.Query("bank"); bank != "" {
		clients = query.FilterByBank(clients, bank)
	}
	if clients == nil {
		clients = []client.Client{}
	}
	c.JSON(http.StatusOK, clients)
}

func (s *Server) TopEarner(c *gin.Context) {
	winner := query.LargestEarningsPerDay(parser.ReadClients(s.File))
	if winner == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no client has earned net money"})
		return
	}
	c.JSON(http.StatusOK, winner)
}

func (s *Server) TopLoser(c *gin.Context) {
	winner := query.LargestLossPerDay(parser.ReadClients(s.File))
	if winner == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no client has lost net money"})
		return
	}
	c.JSON(http.StatusOK, winner)
}
