// Package shared holds request and response helpers used by the api package
// and its middleware.
package shared
