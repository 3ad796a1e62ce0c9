package handlers

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"io"
	"net/http"
	"wordscan/internal/app/adapters/metrics"
	"wordscan/internal/app/adapters/registry"
	"wordscan/internal/app/domain/report"
	"wordscan/internal/app/domain/scanner"
)

type scanResponse struct {
	Hits      []report.Match `json:"hits"`
	Count     int            `json:"count"`
	Chars     int            `json:"chars"`
	ElapsedMS float64        `json:"elapsed_ms"`
}

// ScanHandler scans the raw request body against the dictionary named in the path.
func (h *Handlers) ScanHandler(c *gin.Context) {
	name := c.Param("dict")
	cfg := h.manager.Get()

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, cfg.Server.MaxTextBytes)
	text, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "text too large"})
			return
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "cannot read body"})
		return
	}

	entry, err := h.registry.Get(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, registry.ErrUnknownDictionary) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.Error("Failed to get dictionary", err, "dictionary", name)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "dictionary unavailable"})
		return
	}

	hits, sum, err := scanner.Run(c.Request.Context(), entry.Automaton, text)
	if err != nil {
		h.log.Warn("Scan aborted", "dictionary", name, "error", err)
		c.AbortWithStatus(http.StatusRequestTimeout)
		return
	}

	metrics.ScansTotal.With(prometheus.Labels{"dictionary": name}).Inc()
	metrics.ScanDuration.Observe(sum.Elapsed.Seconds())
	metrics.HitsTotal.With(prometheus.Labels{"dictionary": name}).Add(float64(sum.Hits))
	metrics.ScannedBytes.With(prometheus.Labels{"dictionary": name}).Add(float64(sum.Chars))
	h.stats.AddScan(sum)
	h.log.Debug("Text scanned", "dictionary", name, "chars", sum.Chars, "hits", sum.Hits, "elapsed", sum.Elapsed)

	matches := report.Matches(text, hits)
	for i := range matches {
		matches[i].Entry = entry.Dictionary.Word(matches[i].WordID)
	}

	c.JSON(http.StatusOK, scanResponse{
		Hits:      matches,
		Count:     sum.Hits,
		Chars:     sum.Chars,
		ElapsedMS: float64(sum.Elapsed.Microseconds()) / 1000,
	})
}
