package websocket

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/overstimulation/wellness-dashboard-team-project/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin checking is handled by the CORS layer in front of the router.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StreakSocketHandler upgrades an authenticated connection and parks it on
// the hub until the client goes away. The token comes from the Authorization
// header or, for browser WebSocket clients that cannot set headers, the
// token query parameter.
func StreakSocketHandler(hub *StreakHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string
		if authz := c.GetHeader("Authorization"); authz != "" {
			parts := strings.Split(authz, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}
		if tokenString == "" {
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
			return
		}

		claims, err := utils.ParseJWTToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("Failed to upgrade streak websocket: %v", err)
			return
		}

		client := &StreakClient{Conn: conn, UserID: claims.UserID}
		hub.Register(client)

		// Drain the connection; the hub only pushes. Exit on any read error.
		go func() {
			defer hub.Unregister(client)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
}
