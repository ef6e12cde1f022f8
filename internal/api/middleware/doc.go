// Package middleware contains HTTP middleware specific to this application.
package middleware
