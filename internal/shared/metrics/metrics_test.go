package metrics

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHistogramRendersCumulativeBuckets(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	var buf bytes.Buffer
	writeHistogram(&buf, "x_ms", "x", h.Snapshot())
	out := buf.String()

	for _, want := range []string{
		`x_ms_bucket{le="10"} 1`,
		`x_ms_bucket{le="100"} 2`,
		`x_ms_bucket{le="+Inf"} 3`,
		"x_ms_sum 555",
		"x_ms_count 3",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestCounterVecRendersSortedLabels(t *testing.T) {
	v := newCounterVec()
	v.Inc("pdf")
	v.Inc("docx")
	v.Inc("pdf")

	var buf bytes.Buffer
	writeCounterVec(&buf, "exports_total", "help", "format", v.Snapshot())
	out := buf.String()

	docx := strings.Index(out, `exports_total{format="docx"} 1`)
	pdf := strings.Index(out, `exports_total{format="pdf"} 2`)
	if docx < 0 || pdf < 0 || docx > pdf {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestHandlerServesPrometheusText(t *testing.T) {
	gin.SetMode(gin.TestMode)
	IncExport("txt")
	IncSuggestion("summary")
	ObserveExportDurationMs(-1)

	r := gin.New()
	r.GET("/metrics", Handler())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain") {
		t.Fatalf("unexpected content type %q", w.Header().Get("Content-Type"))
	}
	body := w.Body.String()
	if !strings.Contains(body, `exports_total{format="txt"}`) || !strings.Contains(body, "export_duration_ms_count") {
		t.Fatalf("missing series:\n%s", body)
	}
}
