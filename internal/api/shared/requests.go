package shared

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/mocksy/internal/domain"
)

// MaxFormBytes bounds the size of an auth form body.
const MaxFormBytes = 16 << 10

// DecodeForm parses an application/x-www-form-urlencoded auth form body.
// Name and email are trimmed; the password is taken verbatim.
func DecodeForm(w http.ResponseWriter, r *http.Request) (domain.FormValues, error) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxFormBytes)
	if err := r.ParseForm(); err != nil {
		return domain.FormValues{}, fmt.Errorf("parse form: %w", err)
	}

	return domain.FormValues{
		Name:     strings.TrimSpace(r.PostForm.Get("name")),
		Email:    strings.TrimSpace(r.PostForm.Get("email")),
		Password: r.PostForm.Get("password"),
	}, nil
}
