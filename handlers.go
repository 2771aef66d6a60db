package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handlers are shared by the quiz and pretest routes; kind picks the catalog.

func abortStoreError(c *gin.Context, kind string, err error, action string) {
	var verr ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, ErrQuizNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": kind + " not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to " + action + " " + kind,
			"details": err.Error(),
		})
	}
}

// parseIDParam reads the numeric ?id= query parameter. ok=false means a
// response has already been written.
func parseIDParam(c *gin.Context, kind string) (uint, bool) {
	idParam := c.Query("id")
	if idParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": kind + " id is required"})
		return 0, false
	}
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + kind + " id"})
		return 0, false
	}
	return uint(id), true
}

// GetQuizzes serves both the single fetch (?id=) and the summary listing.
func GetQuizzes(db *gorm.DB, kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Query("id")
		if idParam == "" {
			items, err := ListQuizzes(db, kind)
			if err != nil {
				abortStoreError(c, kind, err, "fetch")
				return
			}
			c.JSON(http.StatusOK, items)
			return
		}

		id, err := strconv.ParseUint(idParam, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + kind + " id"})
			return
		}
		quiz, err := GetQuiz(db, kind, uint(id))
		if err != nil {
			abortStoreError(c, kind, err, "fetch")
			return
		}
		c.JSON(http.StatusOK, quiz)
	}
}

func CreateQuizHandler(db *gorm.DB, kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in QuizInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}
		quiz, err := CreateQuiz(db, kind, &in)
		if err != nil {
			abortStoreError(c, kind, err, "create")
			return
		}
		c.JSON(http.StatusOK, quiz)
	}
}

// ReplaceQuizHandler accepts the id either as ?id= or as an "id" field in
// the JSON body.
func ReplaceQuizHandler(db *gorm.DB, kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in QuizInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}

		var id uint
		if idParam := c.Query("id"); idParam != "" {
			n, err := strconv.ParseUint(idParam, 10, 32)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + kind + " id"})
				return
			}
			id = uint(n)
		} else if in.ID != nil {
			id = *in.ID
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": kind + " id is required"})
			return
		}

		quiz, err := ReplaceQuizContent(db, kind, id, &in)
		if err != nil {
			abortStoreError(c, kind, err, "update")
			return
		}
		c.JSON(http.StatusOK, quiz)
	}
}

func DeleteQuizHandler(db *gorm.DB, kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, kind)
		if !ok {
			return
		}
		if err := DeleteQuiz(db, kind, id); err != nil {
			abortStoreError(c, kind, err, "delete")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
