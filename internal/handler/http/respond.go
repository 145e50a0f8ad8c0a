package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Fluorine7/Holylight-marine/pkg/httputil"
)

// writePublicList writes a storefront list response. When the read failed the
// storefront degrades to an empty list instead of an error page, so visitors
// always see a rendered site even during a database outage. The failure is
// still logged for the operators.
func writePublicList[T any](w http.ResponseWriter, r *http.Request, items []T, err error, logger *slog.Logger) {
	if err != nil {
		logger.ErrorContext(r.Context(), "public list read failed, serving empty list",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		items = nil
	}
	if items == nil {
		items = []T{}
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: items})
}

// decodeBody decodes a JSON request body into dst with a 1MB size cap.
// On failure it writes a 400 response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return false
	}
	return true
}

// requireParam extracts a chi URL parameter, writing a 400 response when it
// is empty.
func requireParam(w http.ResponseWriter, value, name string) bool {
	if value == "" {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: name + " is required"},
		})
		return false
	}
	return true
}
