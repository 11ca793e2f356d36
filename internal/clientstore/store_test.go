package clientstore

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return FromContext(c)
}

func TestSetGetString(t *testing.T) {
	cs := newTestClient(t)
	cs.SetString(KeyToken, "abc")
	if got := cs.GetString(KeyToken); got != "abc" {
		t.Errorf("GetString = %q", got)
	}
	if got := cs.GetString("absent"); got != "" {
		t.Errorf("clé absente = %q, attendu vide", got)
	}
}

func TestGetJSONRoundTrip(t *testing.T) {
	cs := newTestClient(t)
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	if err := cs.SetJSON("k", payload{Name: "x", Count: 3}); err != nil {
		t.Fatal(err)
	}
	var out payload
	if !cs.GetJSON("k", &out) || out.Name != "x" || out.Count != 3 {
		t.Errorf("out = %+v", out)
	}
}

func TestGetJSONCorruptPurgesKey(t *testing.T) {
	// fail-closed : une valeur illisible est purgée, jamais rendue à moitié
	cs := newTestClient(t)
	cs.SetString("k", "{corrompu")
	var out map[string]string
	if cs.GetJSON("k", &out) {
		t.Error("donnée corrompue lue avec succès")
	}
	if cs.Has("k") {
		t.Error("clé corrompue non purgée")
	}
}

func TestDeleteAndHas(t *testing.T) {
	cs := newTestClient(t)
	cs.SetString("k", "v")
	if !cs.Has("k") {
		t.Fatal("Has = false après Set")
	}
	cs.Delete("k")
	if cs.Has("k") {
		t.Error("Has = true après Delete")
	}
}

func TestGuestIDStable(t *testing.T) {
	cs := newTestClient(t)
	id := cs.GuestID()
	if id == "" {
		t.Fatal("GuestID vide")
	}
	if cs.GuestID() != id {
		t.Error("GuestID doit être stable pour la même session")
	}
}

func TestBuyerLocationKey(t *testing.T) {
	if got := BuyerLocationKey("a@b.com"); got != "buyerLocation:a@b.com" {
		t.Errorf("BuyerLocationKey = %q", got)
	}
}
