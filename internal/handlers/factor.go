// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"math/big"
	"net/http"

	"github.com/factorscope/core/internal/factor"
	"github.com/factorscope/core/internal/models"
)

// NewFactorHandler returns the POST /factor handler backed by the given
// orchestrator.
func NewFactorHandler(orch *factor.Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read body", http.StatusBadRequest)
			return
		}

		defer r.Body.Close()

		var req models.FactorRequest
		if err := json.Unmarshal(body, &req); err != nil {
			http.Error(w, "Invalid request: "+err.Error(), http.StatusBadRequest)
			return
		}

		n, ok := new(big.Int).SetString(req.Number, 10)
		if !ok {
			http.Error(w, "Invalid number: not a decimal numeral", http.StatusBadRequest)
			return
		}

		res, err := orch.Run(n)
		if err != nil {
			if errors.Is(err, factor.ErrInvalidInput) {
				http.Error(w, "Invalid number: "+err.Error(), http.StatusBadRequest)
				return
			}
			log.Printf("Factorization failed: %v", err)
			http.Error(w, "Factorization failed: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		encoder := json.NewEncoder(w)
		if r.URL.Query().Get("pretty") == "true" {
			encoder.SetIndent("", "  ")
		}

		if err := encoder.Encode(factor.Report(res)); err != nil {
			log.Printf("Error encoding response: %v", err)
		}
	}
}
