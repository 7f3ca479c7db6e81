// Package handlers adapts HTTP requests to service calls. Handlers decode the
// request, call one service method and write the JSON envelope; they hold no
// business rules.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/vishaldubey2210/portfolio/pkg"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads a JSON request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return pkg.BadRequest("Invalid request body")
	}
	return nil
}

// queryID parses the numeric ?id= parameter used by the admin deletes.
func queryID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		return 0, pkg.BadRequest("A numeric id query parameter is required")
	}
	return id, nil
}
