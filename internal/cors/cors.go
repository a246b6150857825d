package cors

import "github.com/gin-gonic/gin"

// Headers is the fixed response header set permitting cross-origin calls
// from browser clients. Every response carries it, including failures and
// pre-flight answers.
var Headers = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "authorization, x-client-info, apikey, content-type",
}

// Middleware attaches the fixed CORS header set to every response.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		for k, v := range Headers {
			c.Header(k, v)
		}
		c.Next()
	}
}
