package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mfajardo/transmalla/internal/advisor"
	"github.com/mfajardo/transmalla/internal/records"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleCatalog(c *gin.Context) {
	cat := s.adv.Catalog()
	c.JSON(http.StatusOK, gin.H{
		"courses":       cat.Courses(),
		"equivalencies": cat.Rules(),
	})
}

// handleRecommend accepts one extraction document and returns the
// student's recommendation. An optional ?ceiling= query overrides the
// credit cap for this invocation.
func (s *Server) handleRecommend(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "read body: " + err.Error()})
		return
	}

	doc, err := records.Parse(body)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	ceiling, ok := parseCeiling(c)
	if !ok {
		return
	}

	rec := s.adv.Advise(advisor.Request{
		StudentName:   doc.Student.Name,
		StudentID:     doc.Student.ID,
		Records:       doc.Courses,
		CreditCeiling: ceiling,
	})
	c.JSON(http.StatusOK, rec)
}

// batchPayload carries raw documents so each one passes through the
// same schema validation as the single endpoint.
type batchPayload struct {
	Documents []json.RawMessage `json:"documents"`
}

func (s *Server) handleRecommendBatch(c *gin.Context) {
	var payload batchPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "decode payload: " + err.Error()})
		return
	}

	ceiling, ok := parseCeiling(c)
	if !ok {
		return
	}

	requests := make([]advisor.Request, 0, len(payload.Documents))
	for i, raw := range payload.Documents {
		doc, err := records.Parse(raw)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "document " + strconv.Itoa(i) + ": " + err.Error(),
			})
			return
		}
		requests = append(requests, advisor.Request{
			StudentName:   doc.Student.Name,
			StudentID:     doc.Student.ID,
			Records:       doc.Courses,
			CreditCeiling: ceiling,
		})
	}

	results, err := s.runner.Run(c.Request.Context(), requests)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// parseCeiling reads the optional ?ceiling= override. Returns ok=false
// after writing the error response when the value is unusable.
func parseCeiling(c *gin.Context) (int, bool) {
	raw := c.Query("ceiling")
	if raw == "" {
		return 0, true
	}
	ceiling, err := strconv.Atoi(raw)
	if err != nil || ceiling < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ceiling must be a non-negative integer"})
		return 0, false
	}
	return ceiling, true
}
