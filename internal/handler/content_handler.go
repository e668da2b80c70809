package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Murtaza813/Takhteet/internal/quran"
)

// ContentHandler exposes the static content map so display layers can label
// juz and surah ranges without duplicating the tables.
type ContentHandler struct{}

func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

func (h *ContentHandler) HandleJuz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"juz": quran.AllJuz()})
}

func (h *ContentHandler) HandleSections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": quran.Sections()})
}
