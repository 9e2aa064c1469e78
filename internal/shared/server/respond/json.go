package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON serializes payload with the given status. Handlers go through this
// package rather than c.JSON directly so success and error bodies stay
// uniform across features.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// OK is the 200 shorthand used by every read and generate endpoint.
func OK(c *gin.Context, payload any) {
	JSON(c, http.StatusOK, payload)
}
