package echomw_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/reoring/cardkit"
	"github.com/reoring/cardkit/elements"
	echomw "github.com/reoring/cardkit/middleware/echo"
)

func newServer() *echo.Echo {
	e := echo.New()
	f := elements.NewFamilies(cardkit.UnknownPassthrough)
	e.POST("/cards", func(c echo.Context) error {
		res, ok := echomw.GetParsed[*elements.Card](c)
		if !ok {
			return c.String(http.StatusInternalServerError, "missing result")
		}
		return c.JSON(http.StatusOK, map[string]any{"body": len(res.Value.Body), "warnings": len(res.Warnings)})
	}, echomw.ParseJSON(f.ParseCard, cardkit.ParseOpt{}))
	return e
}

func post(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/cards", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestParseJSON_OK(t *testing.T) {
	rec := post(newServer(), `{"type":"AdaptiveCard","body":[{"type":"TextBlock","text":"hi"}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"body":1`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestParseJSON_Issues(t *testing.T) {
	rec := post(newServer(), `{"type":"AdaptiveCard","body":[{"type":"TextBlock","fallback":42}]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"path":"/body/0/fallback"`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestParseJSON_DuplicateKeysRejectedByDefault(t *testing.T) {
	rec := post(newServer(), `{"type":"AdaptiveCard","type":"AdaptiveCard"}`)
	if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), cardkit.CodeDuplicateKey) {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
}
