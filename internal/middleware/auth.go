package middleware

import (
	"log"
	"net/http"

	"koovappally_front_end/internal/clientstore"
	"koovappally_front_end/internal/session"

	"github.com/gin-gonic/gin"
)

const authKey = "auth"

// AuthFromContext relit l'état posé par LoadSession
func AuthFromContext(c *gin.Context) session.AuthState {
	if v, ok := c.Get(authKey); ok {
		if state, ok := v.(session.AuthState); ok {
			return state
		}
	}
	return session.AuthState{}
}

// LoadSession recharge l'état d'authentification à chaque requête, comme le
// checkAuthStatus du client au montage. Ne bloque jamais : les pages
// publiques fonctionnent aussi en invité.
func LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		cs := clientstore.FromContext(c)
		state := session.CheckAuthStatus(cs)
		if err := cs.Save(); err != nil {
			log.Printf("⚠️ Erreur sauvegarde session: %v", err)
		}
		c.Set(authKey, state)
		c.Next()
	}
}

// RequireAuth protège une route : token + role + user présents et lisibles,
// sinon purge et redirection /login. Garde purement indicative — le backend
// ré-autorise chaque appel de toute façon.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		state := AuthFromContext(c)
		if !state.Authenticated {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole redirige un utilisateur authentifié du mauvais rôle vers son
// tableau de bord : admin → /admin/dashboard, customer → /, inconnu → /
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := AuthFromContext(c)
		if !state.Authenticated {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if state.Role != role {
			switch state.Role {
			case "admin":
				c.Redirect(http.StatusFound, "/admin/dashboard")
			case "customer":
				c.Redirect(http.StatusFound, "/")
			default:
				c.Redirect(http.StatusFound, "/")
			}
			c.Abort()
			return
		}
		c.Next()
	}
}
