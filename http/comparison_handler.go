package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"mime"
	"net/http"

	"loan-strategy/domain"
	"loan-strategy/report"
	"loan-strategy/service"
)

const maxRequestBytes = 1 << 16

type ComparisonHandler struct {
	service *service.ComparisonService
}

func NewComparisonHandler(service *service.ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{service: service}
}

// Compare answers POST /loan/compare with the full comparison as JSON.
func (h *ComparisonHandler) Compare(w http.ResponseWriter, r *http.Request) {
	result, ok := h.compare(w, r)
	if !ok {
		return
	}

	// Encode into a buffer first so a failure can still set the status.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(result); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

// Report answers POST /loan/report with the comparison rendered as a PDF.
func (h *ComparisonHandler) Report(w http.ResponseWriter, r *http.Request) {
	result, ok := h.compare(w, r)
	if !ok {
		return
	}

	data, err := report.RenderPDF(result)
	if err != nil {
		log.Printf("Error rendering report: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="mortgage_one_page_report.pdf"`)
	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing report: %v", err)
	}
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// compare decodes the request and runs the comparison. It writes the error
// response itself and reports whether the caller should continue.
func (h *ComparisonHandler) compare(w http.ResponseWriter, r *http.Request) (domain.ComparisonResult, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return domain.ComparisonResult{}, false
	}

	if ct := r.Header.Get("Content-Type"); ct != "" {
		if mediaType, _, err := mime.ParseMediaType(ct); err != nil || mediaType != "application/json" {
			http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
			return domain.ComparisonResult{}, false
		}
	}

	input := domain.ComparisonInput{HybridFloor: service.DefaultHybridFloor}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return domain.ComparisonResult{}, false
	}

	result, err := h.service.Compare(r.Context(), input)
	if err != nil {
		if isInputError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		} else {
			log.Printf("Error comparing strategies: %v", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return domain.ComparisonResult{}, false
	}

	return result, true
}

func isInputError(err error) bool {
	return errors.Is(err, service.ErrInvalidLoanTerms) ||
		errors.Is(err, service.ErrNonAmortizingPayment) ||
		errors.Is(err, service.ErrInvalidStrategy)
}
