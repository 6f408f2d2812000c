package format

import (
	"fmt"

	"github.com/panoptikauth/panoptikauth/internal/event"
	"github.com/panoptikauth/panoptikauth/internal/model"
)

// Format renders an extracted event into a notification. The client IP is
// pulled out of the raw body; the envelope supplies the acting user's
// identity. Fragment order is fixed per kind.
func Format(n model.Notification, ev event.Event) model.FormattedEvent {
	ip := event.ClientIP(ev.RawBody)
	switch {
	case ev.Kind == event.KindLogin && ev.Login != nil:
		return Login(ip, ev.Login, n.UserUsername, n.UserEmail)
	case ev.Kind == event.KindLoginFailed && ev.LoginFailed != nil:
		return LoginFailed(ip, ev.LoginFailed)
	case ev.Kind == event.KindUserWrite && ev.UserWrite != nil:
		return UserWrite(ip, ev.UserWrite)
	default:
		return Default(ip, n.EventUserUsername, n.EventUserEmail, ev.RawBody)
	}
}

// Login renders a successful-login event.
func Login(ip string, data *model.LoginEvent, username, email string) model.FormattedEvent {
	ex := &Extractor{}
	ex.AddLine("🔐 **Login Event**\n")
	ex.UserInfo(username, email)
	ex.DeviceStatus(data)
	if data.AuthMethodArgs != nil {
		ex.MFADevices(data.AuthMethodArgs.MFADevices)
	}
	ex.IPAddress(ip)
	ex.GeoLocation(data.Geo)
	ex.ASNInfo(data.ASN)

	title := fmt.Sprintf("Login: %s", orUnknown(username))
	return model.FormattedEvent{Title: title, Message: ex.Result()}
}

// LoginFailed renders a failed-login event.
func LoginFailed(ip string, data *model.LoginFailedEvent) model.FormattedEvent {
	ex := &Extractor{}
	ex.AddLine("❌ **Login Failed Event**")
	ex.Username(data.Username)
	if data.AuthMethodArgs != nil {
		ex.MFADevices(data.AuthMethodArgs.MFADevices)
	}
	ex.IPAddress(ip)
	ex.GeoLocation(data.Geo)
	ex.ASNInfo(data.ASN)
	ex.StageInfo(data.Stage)

	title := fmt.Sprintf("Login Failed: %s", orUnknown(data.Username))
	return model.FormattedEvent{Title: title, Message: ex.Result()}
}

// UserWrite renders a user create/update event. The created flag picks the
// icon and label.
func UserWrite(ip string, data *model.UserWriteEvent) model.FormattedEvent {
	icon, label := "✏️", "User Updated"
	if data.Created {
		icon, label = "👤", "User Created"
	}

	ex := &Extractor{}
	ex.AddLine(fmt.Sprintf("%s **%s**\n", icon, label))
	ex.Username(data.Username)
	ex.Name(data.Name)
	ex.Email(data.Email)
	ex.Locale(data.Attributes)
	ex.HTTPRequest(data.HTTPRequest)
	ex.IPAddress(ip)
	ex.GeoLocation(data.Geo)
	ex.ASNInfo(data.ASN)

	subject := data.Username
	if subject == "" {
		subject = data.Name
	}
	title := fmt.Sprintf("%s: %s", label, orUnknown(subject))
	return model.FormattedEvent{Title: title, Message: ex.Result()}
}

// Default renders an unclassified notification: the raw body verbatim plus
// a user/email trailer, so extraction failures lose nothing.
func Default(ip, username, email, body string) model.FormattedEvent {
	user := username
	if user == "" {
		user = "N/A"
	}
	mail := email
	if mail == "" {
		mail = "N/A"
	}
	message := fmt.Sprintf("%s\n\nUser: %s (%s)", body, user, mail)

	from := username
	if from == "" {
		from = "System"
	}
	title := fmt.Sprintf("Notification from %s", from)
	return model.FormattedEvent{Title: title, Message: message}
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown user"
	}
	return s
}
