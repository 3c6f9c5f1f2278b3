package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func withMuxVars(r *http.Request, vars map[string]string) *http.Request {
	return mux.SetURLVars(r, vars)
}
