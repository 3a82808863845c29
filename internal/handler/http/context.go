package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/jwtauth/v5"
)

// getProfileIDFromContext extracts profile_id from JWT context
func getProfileIDFromContext(r *http.Request) string {
	_, claims, _ := jwtauth.FromContext(r.Context())
	if profileID, ok := claims["profile_id"].(string); ok {
		return profileID
	}
	return ""
}

// getRoleFromContext extracts role from JWT context
func getRoleFromContext(r *http.Request) string {
	_, claims, _ := jwtauth.FromContext(r.Context())
	if role, ok := claims["role"].(string); ok {
		return role
	}
	return ""
}

// getBranchIDFromContext extracts branch_id from JWT context; nil when the
// profile has no branch (registrar)
func getBranchIDFromContext(r *http.Request) *string {
	_, claims, _ := jwtauth.FromContext(r.Context())
	if branchID, ok := claims["branch_id"].(string); ok && branchID != "" {
		return &branchID
	}
	return nil
}

// getIntQueryParam gets an int query parameter with a default value
func getIntQueryParam(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

// getBoolQueryParam gets a bool query parameter with a default value
func getBoolQueryParam(r *http.Request, key string, defaultVal bool) bool {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	return val == "true" || val == "1"
}
