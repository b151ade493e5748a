package logger

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func bufferedLogger(buf *bytes.Buffer) *zap.SugaredLogger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(buf),
		zapcore.InfoLevel,
	)
	return zap.New(core).Sugar()
}

func serve(lg *zap.SugaredLogger, method, target string, h http.HandlerFunc) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	LoggingMiddleware(lg)(h).ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestNew(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "error"} {
		t.Run(level, func(t *testing.T) {
			lg, err := New(level)

			require.NoError(t, err)
			require.NotNil(t, lg)

			lg.Info("test")
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	lg, err := New("loud")

	assert.Error(t, err)
	assert.Nil(t, lg)
}

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		target  string
		handler http.HandlerFunc
		want    []string
	}{
		{
			name:   "explicit status",
			method: http.MethodGet,
			target: "/test",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte("hello"))
			},
			want: []string{"request->", "uri: /test", "method: GET", "status: 201", "size: 5", "duration:"},
		},
		{
			name:   "implicit ok",
			method: http.MethodPost,
			target: "/api/orders/tracked",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("ok"))
			},
			want: []string{"method: POST", "status: 200", "size: 2"},
		},
		{
			name:   "no body",
			method: http.MethodDelete,
			target: "/api/orders/tracked/abc",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
			want: []string{"status: 204", "size: 0"},
		},
		{
			name:   "query string kept",
			method: http.MethodGet,
			target: "/api/orders?search=ordi&sort=status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("hello"))
				w.Write([]byte("world"))
			},
			want: []string{"uri: /api/orders?search=ordi&sort=status", "size: 10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			serve(bufferedLogger(&buf), tt.method, tt.target, tt.handler)

			for _, s := range tt.want {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestLoggingMiddleware_PassesResponseThrough(t *testing.T) {
	var buf bytes.Buffer

	w := serve(bufferedLogger(&buf), http.MethodGet, "/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte("pong"))
	})

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestLoggingResponseWriter(t *testing.T) {
	recorder := httptest.NewRecorder()
	rw := &loggingResponseWriter{
		ResponseWriter: recorder,
		responseData:   &responseData{status: http.StatusOK},
	}

	rw.WriteHeader(http.StatusBadRequest)
	size, err := rw.Write([]byte("test"))

	assert.NoError(t, err)
	assert.Equal(t, 4, size)
	assert.Equal(t, 4, rw.responseData.size)
	assert.Equal(t, http.StatusBadRequest, rw.responseData.status)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "test", recorder.Body.String())
}
