package cart

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"koovappally_front_end/internal/backend"
	"koovappally_front_end/internal/models"
	"koovappally_front_end/internal/session"
)

func TestGuestCounts(t *testing.T) {
	cs := newTestStore(t)
	AddGuestItem(cs, testProduct("p1", 10, 9), 2)
	AddGuestItem(cs, testProduct("p2", 20, 9), 3)
	AddGuestWishlistItem(cs, testProduct("p3", 30, 9))

	counts := Counts(nil, cs, session.AuthState{})
	if counts.Cart != 5 {
		t.Errorf("compteur panier = %d, attendu 5 (somme des quantités)", counts.Cart)
	}
	if counts.Wishlist != 1 {
		t.Errorf("compteur wishlist = %d, attendu 1", counts.Wishlist)
	}
}

func TestAuthenticatedCounts(t *testing.T) {
	cs := newTestStore(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/cart":
			w.Write([]byte(`{"items":[{"productId":"p1","quantity":2},{"productId":"p2","quantity":3}],"total":80}`))
		case "/wishlist":
			w.Write([]byte(`{"items":[{"productId":"p3"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	state := session.AuthState{
		Authenticated: true,
		Token:         "tok",
		User:          &models.User{ID: "u1"},
	}
	counts := Counts(backend.New(server.URL), cs, state)
	if counts.Cart != 5 || counts.Wishlist != 1 {
		t.Errorf("counts = %+v", counts)
	}
}

func TestCountsCollapseToZeroOnError(t *testing.T) {
	// Backend en panne : les badges retombent à 0 sans bannière d'erreur
	cs := newTestStore(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	state := session.AuthState{
		Authenticated: true,
		Token:         "tok",
		User:          &models.User{ID: "u1"},
	}
	counts := Counts(backend.New(server.URL), cs, state)
	if counts.Cart != 0 || counts.Wishlist != 0 {
		t.Errorf("counts = %+v, attendu zéro", counts)
	}
}

func TestClientIDGuestVsUser(t *testing.T) {
	cs := newTestStore(t)
	guestID := ClientID(session.AuthState{}, cs)
	if guestID == "" {
		t.Fatal("ClientID invité vide")
	}
	userID := ClientID(session.AuthState{Authenticated: true, User: &models.User{ID: "u1"}}, cs)
	if userID != "u1" {
		t.Errorf("ClientID connecté = %q, attendu u1", userID)
	}
}
