package handlers

import (
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"
	"os"
	"wordscan/internal/app/adapters/registry"
	"wordscan/internal/app/domain/dictionary"
)

type putDictionaryRequest struct {
	Path string `json:"path" binding:"required"`
}

func (h *Handlers) HealthHandler(c *gin.Context) {
	snap := h.stats.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"uptime":      snap.Uptime.String(),
		"cpu_percent": snap.CPUPercent,
		"mem_mb":      snap.MemMB,
		"scans":       snap.Scans,
		"hits":        snap.Hits,
		"chars":       snap.Chars,
	})
}

func (h *Handlers) DictionariesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"dictionaries": h.registry.List()})
}

// PutDictionaryHandler maps the name to a dictionary file and compiles it.
func (h *Handlers) PutDictionaryHandler(c *gin.Context) {
	name := c.Param("dict")

	var req putDictionaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "body must be {\"path\": \"...\"}"})
		return
	}

	status, err := h.registry.Put(c.Request.Context(), name, req.Path)
	if err != nil {
		if isDictionaryError(err) {
			h.log.Warn("Dictionary rejected", "dictionary", name, "path", req.Path, "error", err)
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.log.Error("Failed to set dictionary", err, "dictionary", name)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "cannot set dictionary"})
		return
	}

	c.JSON(http.StatusOK, status)
}

func (h *Handlers) DeleteDictionaryHandler(c *gin.Context) {
	name := c.Param("dict")

	if err := h.registry.Remove(name); err != nil {
		if errors.Is(err, registry.ErrUnknownDictionary) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.Error("Failed to remove dictionary", err, "dictionary", name)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "cannot remove dictionary"})
		return
	}

	c.Status(http.StatusNoContent)
}

// isDictionaryError reports failures caused by the dictionary file itself.
func isDictionaryError(err error) bool {
	return errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, dictionary.ErrUnsorted) ||
		errors.Is(err, dictionary.ErrWordTooLong) ||
		errors.Is(err, dictionary.ErrTooManyWords)
}
