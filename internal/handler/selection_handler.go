package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Murtaza813/Takhteet/internal/domain"
)

type SelectionHandler struct {
	store    domain.SelectionStore
	validate *validator.Validate
}

func NewSelectionHandler(store domain.SelectionStore) *SelectionHandler {
	return &SelectionHandler{
		store:    store,
		validate: validator.New(),
	}
}

type toggleRequest struct {
	Student string `json:"student" validate:"required"`
	Slot    int    `json:"slot" validate:"required,gte=1,lte=6"`
	Juz     int    `json:"juz" validate:"required,gte=1,lte=30"`
}

// HandleToggle flips a juz in a student's slot selection.
func (h *SelectionHandler) HandleToggle(c *gin.Context) {
	var body toggleRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	selected, err := h.store.Toggle(c.Request.Context(), body.Student, body.Slot, body.Juz)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle selection"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"student":  body.Student,
		"slot":     body.Slot,
		"juz":      body.Juz,
		"selected": selected,
	})
}

// HandleGet returns a student's full selection map.
func (h *SelectionHandler) HandleGet(c *gin.Context) {
	student := c.Query("student")
	if student == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "student query parameter is required"})
		return
	}

	selections, err := h.store.Get(c.Request.Context(), student)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load selections"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"student":    student,
		"selections": selections,
	})
}
