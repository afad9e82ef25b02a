package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
)

// Request describes one backend call.
type Request struct {
	Method string
	// Path is resolved against the transport base URL.
	Path string
	// Route is the path template used as a metric label; defaults to Path.
	Route string
	Query url.Values
	// JSON, when non-nil, is encoded as the request body.
	JSON any
	// Multipart, when non-nil, is sent as multipart/form-data.
	Multipart *Multipart
	Header    http.Header
}

// Multipart is a form-data body made of plain fields and files.
type Multipart struct {
	Fields map[string]string
	Files  []FilePart
}

// FilePart is one uploaded file.
type FilePart struct {
	Field       string
	FileName    string
	ContentType string
	Content     io.Reader
}

func (r Request) route() string {
	if r.Route != "" {
		return r.Route
	}
	return r.Path
}

// body encodes the request payload and returns the matching content type.
func (r Request) body() (io.Reader, string, error) {
	switch {
	case r.Multipart != nil:
		return r.Multipart.encode()
	case r.JSON != nil:
		b, err := json.Marshal(r.JSON)
		if err != nil {
			return nil, "", fmt.Errorf("encode json body: %w", err)
		}
		return bytes.NewReader(b), "application/json", nil
	default:
		return nil, "", nil
	}
}

func (m *Multipart) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range m.Fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", k, err)
		}
	}
	for _, f := range m.Files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", multipart.FileContentDisposition(f.Field, f.FileName))
		ct := f.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("create part %s: %w", f.Field, err)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, "", fmt.Errorf("copy file %s: %w", f.FileName, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

// Response is a successful (2xx) backend answer.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Decode unmarshals the JSON body into v. An empty body leaves v untouched.
func (r *Response) Decode(v any) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
