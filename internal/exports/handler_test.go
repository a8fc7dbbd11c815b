package exports

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/exportevents"
	"resume-builder/resume/model"
	"resume-builder/resume/service"
)

type brokenExporter struct{}

func (brokenExporter) Export(ctx context.Context, format string, payload model.ExportPayload) (service.Document, error) {
	return service.Document{}, errors.New("fpdf exploded")
}

func newRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.RegisterRoutes(r)
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestExportTxt(t *testing.T) {
	r := newRouter(NewHandler(service.NewExporter(nil), nil))

	resp := postJSON(r, "/export/txt", `{"data":{"name":"Ann Lee","title":"Engineer","skills":[{"name":"Go"},{"name":""}]}}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if got := resp.Header().Get("Content-Disposition"); got != "attachment; filename=resume.txt" {
		t.Fatalf("unexpected disposition %q", got)
	}
	if !strings.HasPrefix(resp.Header().Get("Content-Type"), "text/plain") {
		t.Fatalf("unexpected content type %q", resp.Header().Get("Content-Type"))
	}
	if got := resp.Body.String(); got != "Ann Lee\nEngineer\n\nSkills\nGo\n" {
		t.Fatalf("unexpected body %q", got)
	}
}

func TestExportBinaryFormats(t *testing.T) {
	r := newRouter(NewHandler(service.NewExporter(nil), nil))
	cases := map[string]string{
		"docx": service.ContentTypeDOCX,
		"pdf":  service.ContentTypePDF,
	}
	for format, contentType := range cases {
		resp := postJSON(r, "/export/"+format, `{"data":{"name":"Ann Lee"},"template":"clean"}`)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", format, resp.Code)
		}
		if resp.Header().Get("Content-Type") != contentType {
			t.Fatalf("%s: unexpected content type %q", format, resp.Header().Get("Content-Type"))
		}
		if resp.Header().Get("Content-Disposition") != "attachment; filename=resume."+format {
			t.Fatalf("%s: unexpected disposition", format)
		}
		if resp.Body.Len() == 0 {
			t.Fatalf("%s: expected body", format)
		}
	}
}

func TestExportMalformedBody(t *testing.T) {
	r := newRouter(NewHandler(service.NewExporter(nil), nil))
	for _, body := range []string{`{"data":`, `{"template":"clean"}`, `{"data":{"skills":"Go"}}`} {
		resp := postJSON(r, "/export/pdf", body)
		if resp.Code != http.StatusUnprocessableEntity {
			t.Fatalf("body %s: expected 422, got %d", body, resp.Code)
		}
		var payload map[string]string
		if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil || payload["detail"] == "" {
			t.Fatalf("body %s: expected detail, got %s", body, resp.Body.String())
		}
	}
}

func TestExportUnknownFormat(t *testing.T) {
	r := newRouter(NewHandler(service.NewExporter(nil), nil))
	resp := postJSON(r, "/export/odt", `{"data":{}}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestExportRenderFailure(t *testing.T) {
	r := newRouter(NewHandler(brokenExporter{}, nil))
	resp := postJSON(r, "/export/pdf", `{"data":{"name":"Ann"}}`)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if !bytes.Contains(resp.Body.Bytes(), []byte(`"detail":"Failed to render document"`)) {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}

func TestRecentExports(t *testing.T) {
	events := exportevents.NewService(exportevents.NewMemoryRepo())
	r := newRouter(NewHandler(service.NewExporter(events), events))

	for _, format := range []string{"txt", "pdf"} {
		if resp := postJSON(r, "/export/"+format, `{"data":{"name":"Ann"}}`); resp.Code != http.StatusOK {
			t.Fatalf("export %s: %d", format, resp.Code)
		}
	}

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/exports/recent?limit=1", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var payload struct {
		Items []exportevents.Event `json:"items"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(payload.Items))
	}

	bad := httptest.NewRecorder()
	r.ServeHTTP(bad, httptest.NewRequest(http.MethodGet, "/exports/recent?limit=abc", nil))
	if bad.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad limit, got %d", bad.Code)
	}
}
