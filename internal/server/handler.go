package server

import (
	"log"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"
)

// Report is a rendered HTML report.
type Report struct {
	HTML     []byte
	Modified time.Time
}

type handler struct {
	report atomic.Pointer[Report]
}

func (h *handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r := h.report.Load()

	switch req.Method {
	case http.MethodGet:
	case http.MethodHead:
	default:
		w.WriteHeader(http.StatusNotImplemented)
		return
	}

	if req.URL.EscapedPath() != "/" || r == nil {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusNotFound)
		if req.Method == http.MethodGet {
			w.Write([]byte("not found"))
		}
		return
	}

	w.Header().Set("Content-Type", "text/html;charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(r.HTML)))
	w.Header().Set("Cache-Control", "no-store")
	if !r.Modified.IsZero() {
		w.Header().Set("Last-Modified", r.Modified.UTC().Format(http.TimeFormat))
	}
	w.WriteHeader(http.StatusOK)
	if req.Method == http.MethodHead {
		return
	}

	if _, err := w.Write(r.HTML); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}
