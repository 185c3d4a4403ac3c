package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func contextWithQuery(query string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestLimit_Default(t *testing.T) {
	if got := Limit(contextWithQuery("")); got != DefaultLimit {
		t.Errorf("expected %d, got %d", DefaultLimit, got)
	}
}

func TestLimit_Explicit(t *testing.T) {
	if got := Limit(contextWithQuery("limit=25")); got != 25 {
		t.Errorf("expected 25, got %d", got)
	}
}

func TestLimit_ClampsToMax(t *testing.T) {
	if got := Limit(contextWithQuery("limit=99999")); got != MaxLimit {
		t.Errorf("expected %d, got %d", MaxLimit, got)
	}
}

func TestLimit_Malformed(t *testing.T) {
	for _, q := range []string{"limit=abc", "limit=-5", "limit=0"} {
		if got := Limit(contextWithQuery(q)); got != DefaultLimit {
			t.Errorf("%s: expected %d, got %d", q, DefaultLimit, got)
		}
	}
}

func TestLimitWithDefault(t *testing.T) {
	if got := LimitWithDefault(contextWithQuery(""), 10); got != 10 {
		t.Errorf("expected 10, got %d", got)
	}
	if got := LimitWithDefault(contextWithQuery("limit=3"), 10); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}
