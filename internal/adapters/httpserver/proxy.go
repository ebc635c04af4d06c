// internal/adapters/httpserver/proxy.go
package httpserver

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// proxy is a same-origin relay to the ledger. It forwards GET query
// strings and POST JSON bodies verbatim and mirrors the upstream status
// code and body, so the ledger URL never reaches the browser.
func (s *Server) proxy(c *gin.Context) {
	if s.ledgerURL == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "API URL not configured"})
		return
	}

	var req *http.Request
	var err error
	switch c.Request.Method {
	case http.MethodGet:
		url := s.ledgerURL
		if raw := c.Request.URL.RawQuery; raw != "" {
			url += "?" + raw
		}
		req, err = http.NewRequestWithContext(c.Request.Context(), http.MethodGet, url, nil)
	case http.MethodPost:
		req, err = http.NewRequestWithContext(c.Request.Context(), http.MethodPost, s.ledgerURL, c.Request.Body)
	default:
		c.JSON(http.StatusMethodNotAllowed, gin.H{"success": false, "message": "Method Not Allowed"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	c.Data(res.StatusCode, "application/json", body)
}
