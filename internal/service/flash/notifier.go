package flash

import (
	"context"
	"net/http"

	"github.com/phrazzld/mocksy/internal/platform/logger"
)

// CookieNotifier delivers auth form notifications as a flash cookie on one
// HTTP response. It implements authform.Notifier.
type CookieNotifier struct {
	service *Service
	w       http.ResponseWriter
	last    *Flash
}

// NewCookieNotifier creates a notifier writing to w.
func (s *Service) NewCookieNotifier(w http.ResponseWriter) *CookieNotifier {
	return &CookieNotifier{service: s, w: w}
}

// NotifySuccess stores a success notification.
func (n *CookieNotifier) NotifySuccess(ctx context.Context, message string) {
	n.notify(ctx, Flash{Kind: KindSuccess, Message: message})
}

// NotifyError stores an error notification.
func (n *CookieNotifier) NotifyError(ctx context.Context, message string) {
	n.notify(ctx, Flash{Kind: KindError, Message: message})
}

// Last returns the most recent notification, or nil.
func (n *CookieNotifier) Last() *Flash {
	return n.last
}

func (n *CookieNotifier) notify(ctx context.Context, f Flash) {
	n.last = &f
	if err := n.service.Set(ctx, n.w, f); err != nil {
		// The page still renders; the user just misses the toast.
		logger.FromContext(ctx).Error("failed to store flash notification",
			"error", err,
			"kind", f.Kind)
	}
}
