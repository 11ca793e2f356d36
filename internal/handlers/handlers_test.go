package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"koovappally_front_end/internal/backend"
	"koovappally_front_end/internal/clientstore"
	"koovappally_front_end/internal/middleware"
	"koovappally_front_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Faux backend marketplace : login + panier, avec compteur d'ajouts pour
// vérifier le rejeu des intentions

type fakeMarketplace struct {
	addCalls  int32
	items     []models.CartItem
	addresses []models.Address
	role      string
}

func (f *fakeMarketplace) server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		claims := jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(time.Hour).Unix()}
		token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s"))
		json.NewEncoder(w).Encode(map[string]any{
			"token": token,
			"user": models.User{
				ID:    "u1",
				Name:  "Anil",
				Email: "anil@example.com",
				Role:  f.role,
			},
		})
	})

	mux.HandleFunc("POST /cart", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&f.addCalls, 1)
		var input struct {
			ProductID string `json:"productId"`
			Quantity  int    `json:"quantity"`
		}
		json.NewDecoder(r.Body).Decode(&input)
		f.items = append(f.items, models.CartItem{
			ProductID: input.ProductID,
			Name:      "Teak Chair",
			Quantity:  input.Quantity,
		})
		w.Write([]byte(`{}`))
	})

	mux.HandleFunc("GET /cart", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Cart{Items: f.items})
	})

	mux.HandleFunc("GET /addresses", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"addresses": f.addresses})
	})

	// Le backend possède l'invariant "exactement une adresse par défaut"
	mux.HandleFunc("PATCH /addresses/{id}/default", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		for i := range f.addresses {
			f.addresses[i].IsDefault = f.addresses[i].ID == id
		}
		w.Write([]byte(`{}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestRouter(t *testing.T, f *fakeMarketplace) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	os.Setenv("SESSION_SECRET", "test-secret")
	if err := clientstore.Init(); err != nil {
		t.Fatalf("init store: %v", err)
	}
	Init(backend.New(f.server(t).URL))

	r := gin.New()
	r.Use(middleware.LoadSession())
	r.POST("/auth/login", Login)
	r.GET("/cart", GetCart)
	r.POST("/cart/add", AddToCart)
	r.PATCH("/cart/quantity", UpdateCartQuantity)
	r.GET("/addresses", ListAddresses)
	r.PATCH("/addresses/:id/default", SetDefaultAddress)
	return r
}

// doJSON exécute une requête en rejouant les cookies de session accumulés
func doJSON(t *testing.T, r *gin.Engine, cookies []*http.Cookie, method, path string, body any) (*httptest.ResponseRecorder, []*http.Cookie) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	merged := map[string]*http.Cookie{}
	for _, c := range cookies {
		merged[c.Name] = c
	}
	for _, c := range w.Result().Cookies() {
		merged[c.Name] = c
	}
	next := make([]*http.Cookie, 0, len(merged))
	for _, c := range merged {
		next = append(next, c)
	}
	return w, next
}

func TestGuestAddToCartCapturesIntentThenReplays(t *testing.T) {
	// Parcours complet : invité clique "Ajouter au panier" → redirection
	// /login avec intention capturée → login → /cart rejoue l'ajout une
	// seule fois
	f := &fakeMarketplace{role: "customer"}
	r := newTestRouter(t, f)

	product := models.Product{ID: "p1", Name: "Teak Chair", Price: 100, Quantity: 5}
	w, cookies := doJSON(t, r, nil, http.MethodPost, "/cart/add", map[string]any{
		"product":  product,
		"quantity": 1,
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("statut invité = %d, attendu 401", w.Code)
	}
	var addResp struct {
		Redirect string `json:"redirect"`
	}
	json.Unmarshal(w.Body.Bytes(), &addResp)
	if addResp.Redirect != "/login" {
		t.Fatalf("redirect = %q, attendu /login", addResp.Redirect)
	}

	w, cookies = doJSON(t, r, cookies, http.MethodPost, "/auth/login", map[string]string{
		"email":    "anil@example.com",
		"password": "GoodPass1!",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("statut login = %d: %s", w.Code, w.Body.String())
	}
	var loginResp struct {
		Redirect string `json:"redirect"`
	}
	json.Unmarshal(w.Body.Bytes(), &loginResp)
	if loginResp.Redirect != "/cart" {
		t.Fatalf("redirect post-login = %q, attendu /cart (loginRedirect capturé)", loginResp.Redirect)
	}

	w, cookies = doJSON(t, r, cookies, http.MethodGet, "/cart", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("statut /cart = %d: %s", w.Code, w.Body.String())
	}
	var cartResp struct {
		Cart     models.Cart `json:"cart"`
		Replayed string      `json:"replayed"`
	}
	json.Unmarshal(w.Body.Bytes(), &cartResp)
	if len(cartResp.Cart.Items) != 1 || cartResp.Cart.Items[0].ProductID != "p1" {
		t.Fatalf("panier après rejeu = %+v", cartResp.Cart.Items)
	}
	if cartResp.Cart.Items[0].Quantity != 1 {
		t.Errorf("quantité rejouée = %d, attendu 1", cartResp.Cart.Items[0].Quantity)
	}
	if cartResp.Replayed == "" {
		t.Error("message de rejeu absent")
	}
	if got := atomic.LoadInt32(&f.addCalls); got != 1 {
		t.Fatalf("ajouts backend = %d, attendu 1", got)
	}

	// Second chargement : l'intention est purgée, pas de nouveau rejeu
	w, _ = doJSON(t, r, cookies, http.MethodGet, "/cart", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("statut /cart (2e) = %d", w.Code)
	}
	if got := atomic.LoadInt32(&f.addCalls); got != 1 {
		t.Errorf("ajouts backend après 2e chargement = %d, attendu toujours 1", got)
	}
}

func TestLoginRedirectsAdminToDashboard(t *testing.T) {
	f := &fakeMarketplace{role: "admin"}
	r := newTestRouter(t, f)

	w, _ := doJSON(t, r, nil, http.MethodPost, "/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "GoodPass1!",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("statut login = %d", w.Code)
	}
	var resp struct {
		Redirect string `json:"redirect"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Redirect != "/admin/dashboard" {
		t.Errorf("redirect admin = %q, attendu /admin/dashboard", resp.Redirect)
	}
}

func TestSetDefaultAddressRoundTrip(t *testing.T) {
	// Changer d'adresse par défaut puis relire la liste : exactement une
	// adresse par défaut, celle qui vient d'être choisie
	f := &fakeMarketplace{
		role: "customer",
		addresses: []models.Address{
			{ID: "a1", FullName: "Anil Kumar", IsDefault: true},
			{ID: "a2", FullName: "Anil Kumar", IsDefault: false},
		},
	}
	r := newTestRouter(t, f)

	w, cookies := doJSON(t, r, nil, http.MethodPost, "/auth/login", map[string]string{
		"email":    "anil@example.com",
		"password": "GoodPass1!",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("statut login = %d", w.Code)
	}

	w, cookies = doJSON(t, r, cookies, http.MethodPatch, "/addresses/a2/default", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("statut set-default = %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Addresses []models.Address `json:"addresses"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Addresses) != 2 {
		t.Fatalf("adresses = %d, attendu 2", len(resp.Addresses))
	}

	defaults := 0
	for _, addr := range resp.Addresses {
		if addr.IsDefault {
			defaults++
			if addr.ID != "a2" {
				t.Errorf("adresse par défaut = %s, attendu a2", addr.ID)
			}
		}
	}
	if defaults != 1 {
		t.Errorf("adresses par défaut = %d, attendu exactement 1", defaults)
	}

	// Une relecture indépendante donne le même invariant
	w, _ = doJSON(t, r, cookies, http.MethodGet, "/addresses", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("statut /addresses = %d", w.Code)
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	defaults = 0
	for _, addr := range resp.Addresses {
		if addr.IsDefault {
			defaults++
		}
	}
	if defaults != 1 {
		t.Errorf("après relecture, adresses par défaut = %d, attendu 1", defaults)
	}
}

func TestGuestCartQuantityStepper(t *testing.T) {
	f := &fakeMarketplace{role: "customer"}
	r := newTestRouter(t, f)

	product := models.Product{ID: "p1", Name: "Teak Chair", Price: 100, Quantity: 4}
	w, cookies := doJSON(t, r, nil, http.MethodPost, "/cart/add?guest=1", map[string]any{
		"product":  product,
		"quantity": 1,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("ajout invité = %d: %s", w.Code, w.Body.String())
	}

	// Monter à 99 : plafonné au stock (4)
	w, cookies = doJSON(t, r, cookies, http.MethodPatch, "/cart/quantity", map[string]any{
		"productId": "p1",
		"quantity":  99,
	})
	var resp struct {
		Cart models.Cart `json:"cart"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Cart.Items) != 1 || resp.Cart.Items[0].Quantity != 4 {
		t.Fatalf("quantité plafonnée = %+v", resp.Cart.Items)
	}

	// Descendre sous 1 : no-op
	w, _ = doJSON(t, r, cookies, http.MethodPatch, "/cart/quantity", map[string]any{
		"productId": "p1",
		"quantity":  0,
	})
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Cart.Items[0].Quantity != 4 {
		t.Errorf("descendre sous 1 doit être un no-op, quantité = %d", resp.Cart.Items[0].Quantity)
	}
	if atomic.LoadInt32(&f.addCalls) != 0 {
		t.Error("le panier invité ne doit pas toucher le backend")
	}
}
