package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		pingErr bool
		path    string
		want    int
	}{
		{name: "healthz ok", pingErr: false, path: "/healthz", want: 200},
		{name: "readyz ok", pingErr: false, path: "/readyz", want: 200},
		{name: "readyz degraded", pingErr: true, path: "/readyz", want: 503},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHealthHandler()
			if tc.path == "/readyz" {
				pingErr := tc.pingErr
				h.AddCheck("postgres", func() error {
					if pingErr {
						return assertErr{}
					}
					return nil
				})
			}

			r := gin.New()
			h.Register(r)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("want %d got %d", tc.want, w.Code)
			}
		})
	}
}

func TestHealthHandlerListsFailingChecks(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewHealthHandler().
		AddCheck("postgres", func() error { return nil }).
		AddCheck("upstream", func() error { return assertErr{} })

	r := gin.New()
	h.Register(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("want 503 got %d", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, "upstream") || strings.Contains(body, "postgres") {
		t.Fatalf("unexpected body: %s", body)
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "err" }
