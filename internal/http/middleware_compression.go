package httpx

import (
	"compress/gzip"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
)

// CompressionConfig holds configuration for the compression middleware.
type CompressionConfig struct {
	Level   int // gzip level 1-9; 0 means gzip.DefaultCompression
	MinSize int // responses smaller than this are sent as-is; 0 compresses everything
	Logger  *slog.Logger
}

//nolint:gochecknoglobals // read-only set of compressible media types
var compressibleTypes = map[string]bool{
	"text/html":              true,
	"text/css":               true,
	"text/plain":             true,
	"text/javascript":        true,
	"application/javascript": true,
	"application/json":       true,
	"image/svg+xml":          true,
}

// Compression returns a middleware that gzips text responses when the client
// accepts it. HEAD requests, 1xx/204/304 responses, pre-encoded bodies and
// bodies under MinSize pass through untouched.
func Compression(cfg CompressionConfig) func(http.Handler) http.Handler {
	level := cfg.Level
	if level < gzip.BestSpeed || level > gzip.BestCompression {
		level = gzip.DefaultCompression
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	pool := &sync.Pool{New: func() any {
		zw, err := gzip.NewWriterLevel(io.Discard, level)
		if err != nil {
			return gzip.NewWriter(io.Discard)
		}
		return zw
	}}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodHead || !acceptsGzip(r.Header.Get("Accept-Encoding")) {
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Add("Vary", "Accept-Encoding")

			gzw := &gzipResponseWriter{ResponseWriter: w, pool: pool, minSize: cfg.MinSize}
			next.ServeHTTP(gzw, r)
			if err := gzw.finish(); err != nil {
				logger.DebugContext(r.Context(), "finishing gzip response failed", "error", err)
			}
		})
	}
}

// acceptsGzip checks the Accept-Encoding header, honouring an explicit q=0.
func acceptsGzip(acceptEncoding string) bool {
	for _, part := range strings.Split(acceptEncoding, ",") {
		name, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if !strings.EqualFold(strings.TrimSpace(name), "gzip") && strings.TrimSpace(name) != "*" {
			continue
		}
		q := strings.TrimSpace(params)
		if v, ok := strings.CutPrefix(q, "q="); ok {
			if f, err := strconv.ParseFloat(v, 64); err == nil && f == 0 {
				return false
			}
		}
		return true
	}
	return false
}

func isCompressibleContentType(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")
	return compressibleTypes[strings.ToLower(strings.TrimSpace(mediaType))]
}

// gzipResponseWriter decides at the first write whether to compress, buffering
// up to minSize bytes before committing.
type gzipResponseWriter struct {
	http.ResponseWriter
	pool    *sync.Pool
	minSize int

	status    int
	decided   bool
	compress  bool
	committed bool
	pending   []byte
	zw        *gzip.Writer
}

func (w *gzipResponseWriter) WriteHeader(status int) {
	if w.status != 0 {
		return
	}
	w.status = status
	if status < 200 || status == http.StatusNoContent || status == http.StatusNotModified {
		w.decided = true
		w.commit()
	}
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	if !w.decided {
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", http.DetectContentType(b))
		}
		w.decided = true
		w.compress = w.Header().Get("Content-Encoding") == "" && isCompressibleContentType(w.Header().Get("Content-Type"))
	}
	if !w.compress {
		w.commit()
		return w.ResponseWriter.Write(b)
	}
	if w.zw == nil && len(w.pending)+len(b) < w.minSize {
		w.pending = append(w.pending, b...)
		return len(b), nil
	}
	if err := w.startGzip(); err != nil {
		return 0, err
	}
	return w.zw.Write(b)
}

func (w *gzipResponseWriter) startGzip() error {
	if w.zw != nil {
		return nil
	}
	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Del("Content-Length")
	w.commit()
	w.zw, _ = w.pool.Get().(*gzip.Writer)
	w.zw.Reset(w.ResponseWriter)
	if len(w.pending) > 0 {
		if _, err := w.zw.Write(w.pending); err != nil {
			return err
		}
		w.pending = nil
	}
	return nil
}

func (w *gzipResponseWriter) commit() {
	if w.committed {
		return
	}
	w.committed = true
	if w.status == 0 {
		w.status = http.StatusOK
	}
	w.ResponseWriter.WriteHeader(w.status)
}

// finish flushes what is still buffered and returns the gzip writer to the pool.
func (w *gzipResponseWriter) finish() error {
	if w.zw != nil {
		err := w.zw.Close()
		w.zw.Reset(io.Discard)
		w.pool.Put(w.zw)
		return err
	}
	if w.status == 0 {
		return nil
	}
	w.commit()
	if len(w.pending) > 0 {
		_, err := w.ResponseWriter.Write(w.pending)
		return err
	}
	return nil
}

// Flush implements http.Flusher.
func (w *gzipResponseWriter) Flush() {
	if w.zw != nil {
		_ = w.zw.Flush()
	}
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
