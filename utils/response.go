package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONMutation reports a mutation result together with the write-through
// outcome; persisted=false tells the operator the change is in memory only
// and the snapshot write should be retried.
func JSONMutation(c *gin.Context, code int, data interface{}, persisted bool) {
	c.JSON(code, gin.H{"success": true, "data": data, "persisted": persisted})
}
