package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tokpee/domain/core"
	"tokpee/internal/session"
)

type messageRequest struct {
	Message string `json:"message"`
}

type tabRequest struct {
	Tab string `json:"tab" binding:"required"`
}

type selectionRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

func (s *Server) handleAssistantHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"history": s.deps.Assistant.History()})
}

func (s *Server) handleAssistantMessage(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	history, err := s.deps.Assistant.Send(c.Request.Context(), req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}

func (s *Server) handleState(c *gin.Context) {
	c.JSON(http.StatusOK, s.deps.State.Snapshot())
}

func (s *Server) handleSetTab(c *gin.Context) {
	var req tabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	tab, err := session.ParseTab(req.Tab)
	if err != nil {
		respondError(c, err)
		return
	}
	s.deps.State.SetActiveTab(tab)
	c.JSON(http.StatusOK, s.deps.State.Snapshot())
}

// handleSelectProduct selects a product for the restock view and returns its metrics
func (s *Server) handleSelectProduct(c *gin.Context) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := core.ParseProductID(req.ProductID)
	if err != nil {
		badRequest(c, err)
		return
	}
	status, err := s.deps.Inventory.Metrics(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (s *Server) handleUsage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"summary": s.deps.Usage.Summary(),
		"records": s.deps.Usage.Records(),
	})
}
