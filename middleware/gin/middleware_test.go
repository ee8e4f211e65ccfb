package ginmw_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/reoring/cardkit"
	"github.com/reoring/cardkit/elements"
	ginmw "github.com/reoring/cardkit/middleware/gin"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	f := elements.NewFamilies(cardkit.UnknownStrict)
	r.POST("/cards", ginmw.ParseJSON(f.ParseCard, cardkit.ParseOpt{}), func(c *gin.Context) {
		res, ok := ginmw.GetParsed[*elements.Card](c)
		if !ok {
			c.String(http.StatusInternalServerError, "missing result")
			return
		}
		c.JSON(http.StatusOK, gin.H{"actions": len(res.Value.Actions)})
	})
	return r
}

func post(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/cards", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestParseJSON_OK(t *testing.T) {
	rec := post(newRouter(), `{"type":"AdaptiveCard","actions":[{"type":"Action.Submit","title":"ok"}]}`)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"actions":1`) {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestParseJSON_UnknownTypeRejected(t *testing.T) {
	rec := post(newRouter(), `{"type":"AdaptiveCard","body":[{"type":"Rating"}]}`)
	if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), cardkit.CodeUnknownElementType) {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	rec := post(newRouter(), `{"type":`)
	if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), cardkit.CodeInvalidJSON) {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
}
