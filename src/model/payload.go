package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	PayloadTypeWebMonitor = "web-monitor"
	PayloadTypeSocial     = "social"
)

// Older monitor clients announce the concrete network instead of "social".
var socialTypeAliases = map[string]bool{
	PayloadTypeSocial: true,
	"truthsocial":     true,
	"twitter":         true,
}

var (
	ErrMissingContent   = errors.New("content must not be empty")
	ErrMissingURL       = errors.New("web-monitor payload is missing the url field")
	ErrMissingContentID = errors.New("social payload is missing the content-id field")
	ErrUnsupportedType  = errors.New("unsupported payload type")
)

// NotificationPayload is the body every monitor client posts to /notify/<channel>.
// The type field selects the analyzer; url and content-id feed the dedup key.
type NotificationPayload struct {
	UUID      string `json:"uuid"`
	Type      string `json:"type"`
	URL       string `json:"url,omitempty"`
	Username  string `json:"username,omitempty"`
	ContentID string `json:"content-id,omitempty"`
	Content   string `json:"content"`
	IP        string `json:"ip"`
}

// EnsureUUID assigns a generated id when the client did not send one.
func (p *NotificationPayload) EnsureUUID() {
	if p.UUID == "" {
		p.UUID = uuid.NewString()
	}
}

// NormalizedType folds the legacy social aliases into "social".
func (p *NotificationPayload) NormalizedType() string {
	t := strings.ToLower(strings.TrimSpace(p.Type))
	if socialTypeAliases[t] {
		return PayloadTypeSocial
	}
	return t
}

func (p *NotificationPayload) Validate() error {
	if strings.TrimSpace(p.Content) == "" {
		return ErrMissingContent
	}
	switch p.NormalizedType() {
	case PayloadTypeWebMonitor, PayloadTypeSocial:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedType, p.Type)
	}
}

// DedupKey derives the identifier used to reject already-processed
// notifications: the monitored URL for web-monitor payloads, the post
// content id for social payloads.
func (p *NotificationPayload) DedupKey() (string, error) {
	switch p.NormalizedType() {
	case PayloadTypeWebMonitor:
		if p.URL == "" {
			return "", ErrMissingURL
		}
		return p.URL, nil
	case PayloadTypeSocial:
		if p.ContentID == "" {
			return "", ErrMissingContentID
		}
		return p.ContentID, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, p.Type)
	}
}

// LogID is the identifier carried through log lines for this payload,
// the content id when present, otherwise the payload uuid.
func (p *NotificationPayload) LogID() string {
	if p.ContentID != "" {
		return p.ContentID
	}
	return p.UUID
}
