package response

import (
	"encoding/json"
	"net/http"
)

// Write serializes an envelope to the response. All reachable endpoints
// answer 200; failures ride inside the envelope's errors array. pretty
// switches to indented output for human readers.
func Write(w http.ResponseWriter, env Envelope, pretty bool) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	_ = enc.Encode(env)
}
