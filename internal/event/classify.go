// Package event classifies notification bodies into event kinds and
// extracts the embedded literal into typed records.
package event

import "regexp"

// Kind is the closed set of recognized event categories.
type Kind string

const (
	KindLogin       Kind = "login"
	KindLoginFailed Kind = "login_failed"
	KindUserWrite   Kind = "user_write"
	KindDefault     Kind = "default"
)

// Signatures are a keyword marker followed by an opening brace. The login
// marker intentionally does not require an auth_method key: the ordered
// checks below already keep failed logins out of the login branch.
var (
	loginFailedMarker = regexp.MustCompile(`login_failed:\s*\{`)
	userWriteMarker   = regexp.MustCompile(`user_write:\s*\{`)
	loginMarker       = regexp.MustCompile(`\blogin:\s*\{`)
)

// Classify returns the event kind encoded by body. It is total: anything
// without a recognized marker is KindDefault. login_failed must be checked
// before login so a failed-login body never classifies as a login.
func Classify(body string) Kind {
	switch {
	case loginFailedMarker.MatchString(body):
		return KindLoginFailed
	case userWriteMarker.MatchString(body):
		return KindUserWrite
	case loginMarker.MatchString(body):
		return KindLogin
	default:
		return KindDefault
	}
}
