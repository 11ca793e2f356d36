package clientstore

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

// Réplique du localStorage du navigateur : tout l'état client persistant
// passe par cette unique frontière de sérialisation (session cookie).

const SessionName = "koovappally_client"

// Clés persistées, à l'identique du client historique
const (
	KeyToken               = "token"
	KeyUser                = "user"
	KeyRole                = "role"
	KeyGuestCart           = "guestCart"
	KeyGuestWishlist       = "guestWishlist"
	KeyPendingCartItem     = "pendingCartItem"
	KeyPendingWishlistItem = "pendingWishlistItem"
	KeyLoginRedirect       = "loginRedirect"
	KeyCheckoutSelected    = "checkoutSelectedItems"
	keyGuestID             = "guestId"
)

// BuyerLocationKey : préférence de localisation acheteur, par email
func BuyerLocationKey(email string) string {
	return "buyerLocation:" + email
}

var Store *sessions.CookieStore

// Init configure le cookie store (même réglage que le store gothic)
func Init() error {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Println("⚠️ SESSION_SECRET manquant — clé de session éphémère générée")
		secret = uuid.NewString()
	}

	Store = sessions.NewCookieStore([]byte(secret))
	Store.MaxAge(86400 * 30)
	Store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}

	log.Println("✅ Store client initialisé")
	return nil
}

// Client : vue typée sur la session d'un navigateur
type Client struct {
	session *sessions.Session
	w       http.ResponseWriter
	r       *http.Request
}

// FromContext récupère (ou crée) la session du navigateur courant.
// Un cookie corrompu donne une session neuve : comportement fail-closed.
func FromContext(c *gin.Context) *Client {
	session, err := Store.Get(c.Request, SessionName)
	if err != nil {
		log.Printf("⚠️ Cookie de session illisible, réinitialisation: %v", err)
	}
	return &Client{session: session, w: c.Writer, r: c.Request}
}

// GuestID : identifiant stable du navigateur invité (canal pub/sub, logs)
func (c *Client) GuestID() string {
	if id := c.GetString(keyGuestID); id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetString(keyGuestID, id)
	return id
}

func (c *Client) GetString(key string) string {
	v, ok := c.session.Values[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

func (c *Client) SetString(key, value string) {
	c.session.Values[key] = value
}

// GetJSON désérialise la valeur stockée sous key. Donnée corrompue :
// la clé est purgée et false est renvoyé (jamais d'état à moitié lu).
func (c *Client) GetJSON(key string, v interface{}) bool {
	raw := c.GetString(key)
	if raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		log.Printf("⚠️ Donnée corrompue sous %q, purge: %v", key, err)
		c.Delete(key)
		return false
	}
	return true
}

func (c *Client) SetJSON(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.SetString(key, string(data))
	return nil
}

func (c *Client) Delete(key string) {
	delete(c.session.Values, key)
}

func (c *Client) Has(key string) bool {
	_, ok := c.session.Values[key]
	return ok
}

// Save écrit le cookie. À appeler avant d'émettre la réponse.
func (c *Client) Save() error {
	return c.session.Save(c.r, c.w)
}
