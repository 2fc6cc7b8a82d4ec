package cms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// Create a client pointed at a test server
func testClient(srv *httptest.Server, token string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: time.Second},
		queryURL:   srv.URL + "/query/test",
		mutateURL:  srv.URL + "/mutate/test",
		token:      token,
	}
}

func TestQuery(t *testing.T) {

	tests := []struct {
		name     string
		status   int
		body     string
		expected []string
		wantErr  bool
	}{
		{"valid result", http.StatusOK, `{"result":["a","b"]}`, []string{"a", "b"}, false},
		{"empty result", http.StatusOK, `{"result":[]}`, []string{}, false},
		{"server error", http.StatusInternalServerError, `{"error":{"description":"boom"}}`, nil, true},
		{"bad request", http.StatusBadRequest, `not json`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					if got := r.URL.Query().Get("query"); got == "" {
						t.Error("expected a query param, got none")
					}
					w.WriteHeader(tt.status)
					if _, err := w.Write([]byte(tt.body)); err != nil {
						t.Fatal(err)
					}
				},
			))
			defer srv.Close()

			var result []string
			err := testClient(srv, "").Query(context.Background(), `*[_type == "article"]`, nil, &result)
			if gotErr := err != nil; gotErr != tt.wantErr {
				t.Fatalf("got error = %v, want error = %t", err, tt.wantErr)
			}

			if !tt.wantErr {
				if diff := cmp.Diff(tt.expected, result); diff != "" {
					t.Errorf("result mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestQueryParams(t *testing.T) {

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			// Params arrive JSON encoded under a dollar prefixed key
			if got := r.URL.Query().Get("$slug"); got != `"hello-world"` {
				t.Errorf("got param %q, want %q", got, `"hello-world"`)
			}
			if _, err := w.Write([]byte(`{"result":null}`)); err != nil {
				t.Fatal(err)
			}
		},
	))
	defer srv.Close()

	var result any
	params := map[string]any{"slug": "hello-world"}
	err := testClient(srv, "").Query(context.Background(), `*[slug.current == $slug][0]`, params, &result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMutate(t *testing.T) {

	tests := []struct {
		name    string
		token   string
		status  int
		wantErr bool
	}{
		{"no token", "", http.StatusOK, true},
		{"accepted", "secret", http.StatusOK, false},
		{"rejected", "secret", http.StatusForbidden, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					if got := r.Header.Get("Authorization"); got != "Bearer secret" {
						t.Errorf("got auth header %q, want bearer token", got)
					}

					var payload struct {
						Mutations []map[string]any `json:"mutations"`
					}
					if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
						t.Errorf("could not decode the mutations: %v", err)
					}

					w.WriteHeader(tt.status)
					if _, err := w.Write([]byte(`{}`)); err != nil {
						t.Fatal(err)
					}
				},
			))
			defer srv.Close()

			mutations := []map[string]any{{"createIfNotExists": map[string]any{"_id": "a"}}}
			err := testClient(srv, tt.token).Mutate(context.Background(), mutations)
			if gotErr := err != nil; gotErr != tt.wantErr {
				t.Errorf("got error = %v, want error = %t", err, tt.wantErr)
			}
		})
	}
}
