//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertExposedHeaders checks that a cross-origin response lets the browser
// read each named header.
func AssertExposedHeaders(t *testing.T, w *httptest.ResponseRecorder, names ...string) {
	t.Helper()
	exposed := strings.Split(w.Header().Get("Access-Control-Expose-Headers"), ",")
	for i := range exposed {
		exposed[i] = strings.TrimSpace(exposed[i])
	}
	for _, name := range names {
		assert.Contains(t, exposed, name, "header %s not exposed", name)
	}
}
