package event

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/panoptikauth/panoptikauth/internal/model"
	"github.com/panoptikauth/panoptikauth/internal/pydict"
)

// Event is the extraction result: the detected kind plus exactly one of the
// record pointers, or none for the default kind. RawBody always carries the
// original text so nothing is lost when structured extraction fails.
type Event struct {
	Kind        Kind
	RawBody     string
	Login       *model.LoginEvent
	LoginFailed *model.LoginFailedEvent
	UserWrite   *model.UserWriteEvent
}

// Default wraps body in a default-kind event. Used both for unclassified
// bodies and as the fallback when extraction fails.
func Default(body string) Event {
	return Event{Kind: KindDefault, RawBody: body}
}

// Extract locates the kind-specific literal in body and decodes it. A
// non-nil error means the literal was missing or malformed; callers should
// fall back to Default(body) rather than failing the request.
func Extract(body string, kind Kind) (Event, error) {
	ev := Event{Kind: kind, RawBody: body}
	switch kind {
	case KindLogin:
		rec := &model.LoginEvent{}
		if err := decodeAfter(body, "login:", rec); err != nil {
			return Default(body), err
		}
		ev.Login = rec
	case KindLoginFailed:
		rec := &model.LoginFailedEvent{}
		if err := decodeAfter(body, "login_failed:", rec); err != nil {
			return Default(body), err
		}
		ev.LoginFailed = rec
	case KindUserWrite:
		rec := &model.UserWriteEvent{}
		if err := decodeAfter(body, "user_write:", rec); err != nil {
			return Default(body), err
		}
		ev.UserWrite = rec
	case KindDefault:
		// Nothing to decode; the formatter uses the raw body.
	default:
		return Default(body), fmt.Errorf("unknown event kind %q", kind)
	}
	return ev, nil
}

func decodeAfter(body, prefix string, v any) error {
	idx := strings.Index(body, prefix)
	if idx < 0 {
		return fmt.Errorf("%w: marker %q not found", pydict.ErrMalformedLiteral, prefix)
	}
	return pydict.Unmarshal(body[idx+len(prefix):], v)
}

// The provider serializes the client address into the body text rather than
// the envelope, e.g. client_ip': '203.0.113.9'.
var clientIPPattern = regexp.MustCompile(`['"]?client_ip['"]?\s*[:=]\s*['"]([^'"]+)['"]`)

// ClientIP returns the client address embedded in body, or "" if absent.
func ClientIP(body string) string {
	m := clientIPPattern.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return m[1]
}
