package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends a 200 response with the payload as-is.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Null sends a 200 response with a literal JSON null body. Used where a
// missing document is part of the contract rather than an error.
func Null(c *gin.Context) {
	c.JSON(http.StatusOK, nil)
}

// Success sends the unconditional 200 {success:true} acknowledgment.
func Success(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"ok": 0, "code": http.StatusBadRequest, "message": message})
}

// InternalError sends a 500 error response echoing the fault message.
func InternalError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"ok": 0, "code": http.StatusInternalServerError, "message": err.Error()})
}
