package backend

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchByImageMultipart(t *testing.T) {
	var (
		gotAuth     string
		gotTopK     string
		gotFilename string
		gotContent  []byte
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ml/image-search/by-image" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		gotAuth = r.Header.Get("Authorization")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("multipart illisible: %v", err)
		}
		gotTopK = r.FormValue("top_k")
		file, header, err := r.FormFile("image")
		if err != nil {
			t.Fatalf("champ image absent: %v", err)
		}
		defer file.Close()
		gotFilename = header.Filename
		gotContent, _ = io.ReadAll(file)

		w.Write([]byte(`{"success":true,"data":{"results":[{"product_id":"p1","score":0.9}]}}`))
	}))
	defer server.Close()

	resp, err := New(server.URL).SearchByImage("tok", "chair.jpg", []byte("img-bytes"), 15)
	if err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer tok" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotTopK != "15" {
		t.Errorf("top_k = %q, attendu 15", gotTopK)
	}
	if gotFilename != "chair.jpg" || string(gotContent) != "img-bytes" {
		t.Errorf("fichier = %q / %q", gotFilename, gotContent)
	}
	if len(resp.Data.Results) != 1 || resp.Data.Results[0].Score != 0.9 {
		t.Errorf("résultats = %+v", resp.Data.Results)
	}
}

func TestSearchByImageServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"message":"service down"}`))
	}))
	defer server.Close()

	_, err := New(server.URL).SearchByImage("tok", "chair.jpg", []byte("x"), 15)
	if StatusOf(err) != http.StatusServiceUnavailable {
		t.Errorf("statut = %d, attendu 503", StatusOf(err))
	}
}
