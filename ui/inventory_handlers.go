package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tokpee/domain/core"
	"tokpee/domain/inventory"
)

type adjustRequest struct {
	Delta *int `json:"delta" binding:"required"`
}

// productIDParam parses the :id path parameter, writing a 400 when it is blank
func productIDParam(c *gin.Context) (core.ProductID, bool) {
	id, err := core.ParseProductID(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return "", false
	}
	return id, true
}

func (s *Server) handleListInventory(c *gin.Context) {
	products, err := s.deps.Inventory.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// handleSaveProduct creates or replaces the product named in the path
func (s *Server) handleSaveProduct(c *gin.Context) {
	var record inventory.Record
	if err := c.ShouldBindJSON(&record); err != nil {
		badRequest(c, err)
		return
	}
	id, ok := productIDParam(c)
	if !ok {
		return
	}
	record.ProductID = id

	status, err := s.deps.Inventory.Save(c.Request.Context(), record)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (s *Server) handleProductMetrics(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}
	status, err := s.deps.Inventory.Metrics(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (s *Server) handleAdjustStock(c *gin.Context) {
	var req adjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	id, ok := productIDParam(c)
	if !ok {
		return
	}
	status, err := s.deps.Inventory.AdjustStock(c.Request.Context(), id, *req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// handleInsight generates a restock strategy. Generation failures still answer
// 200 with the fallback text.
func (s *Server) handleInsight(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}
	insight, err := s.deps.Inventory.Insight(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, insight)
}
