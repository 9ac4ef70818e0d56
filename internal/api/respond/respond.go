// Package respond writes the JSON envelopes returned by the HTTP API.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

type success struct {
	Result interface{} `json:"result"`
}

type failure struct {
	Error string `json:"error"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

// OK writes {"result": data} with 200.
func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, success{Result: data})
}

// Created writes {"result": data} with 201.
func Created(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusCreated, success{Result: data})
}

// Fail writes {"error": err} with the given status.
func Fail(w http.ResponseWriter, status int, err error) {
	JSON(w, status, failure{Error: err.Error()})
}
