// Package format renders extracted events into markdown notifications.
// Each field extractor appends at most one fragment; formatters compose
// them in a fixed order so output is stable across runs.
package format

import (
	"fmt"
	"strings"

	"github.com/panoptikauth/panoptikauth/internal/model"
)

// Extractor accumulates message fragments. Every method is independently
// skippable: an absent field appends nothing.
type Extractor struct {
	lines []string
}

// AddLine appends a raw fragment.
func (e *Extractor) AddLine(line string) {
	e.lines = append(e.lines, line)
}

// Result joins the accumulated fragments with newlines.
func (e *Extractor) Result() string {
	return strings.Join(e.lines, "\n")
}

// UserInfo renders the envelope identity of the acting user.
func (e *Extractor) UserInfo(username, email string) {
	if username == "" && email == "" {
		return
	}
	line := "\n**User:** "
	if username != "" {
		line += username
	} else {
		line += "N/A"
	}
	if email != "" {
		line += fmt.Sprintf(" (%s)", email)
	}
	e.lines = append(e.lines, line)
}

// IPAddress renders the client address.
func (e *Extractor) IPAddress(ip string) {
	if ip == "" {
		return
	}
	e.lines = append(e.lines, fmt.Sprintf("\n**IP Address:** %s", ip))
}

// DeviceStatus renders the known-device flag. An explicit false is
// significant, so the field is a pointer.
func (e *Extractor) DeviceStatus(data *model.LoginEvent) {
	if data == nil || data.AuthMethodArgs == nil || data.AuthMethodArgs.KnownDevice == nil {
		return
	}
	status := "⚠️ Unknown device"
	if *data.AuthMethodArgs.KnownDevice {
		status = "✅ Known device"
	}
	e.lines = append(e.lines, fmt.Sprintf("\n**Device Status:** %s", status))
}

// MFADevices renders one bullet per multi-factor device.
func (e *Extractor) MFADevices(devices []model.MFADevice) {
	if len(devices) == 0 {
		return
	}
	bullets := make([]string, 0, len(devices))
	for _, d := range devices {
		bullets = append(bullets, fmt.Sprintf("- %s (%s, %s)", d.App, d.Name, d.ModelName))
	}
	e.lines = append(e.lines, "\n**MFA Devices Used:**\n"+strings.Join(bullets, "\n"))
}

// GeoLocation renders the location block, coordinates and a map link.
func (e *Extractor) GeoLocation(geo *model.GeoInfo) {
	if geo == nil {
		return
	}

	var parts []string
	if geo.Continent != "" {
		parts = append(parts, fmt.Sprintf("\n - Continent: %s %s", ContinentEmoji(geo.Continent), geo.Continent))
	}
	if geo.Country != "" {
		parts = append(parts, fmt.Sprintf("\n - Country: %s %s", CountryEmoji(geo.Country), geo.Country))
	}
	if geo.City != "" {
		parts = append(parts, fmt.Sprintf("\n - City: %s", geo.City))
	}
	if len(parts) > 0 {
		e.lines = append(e.lines, "\n**Location:** "+strings.Join(parts, ", "))
	}

	if geo.Lat != nil && geo.Long != nil {
		e.lines = append(e.lines, fmt.Sprintf("\n**Coordinates:** %v, %v", *geo.Lat, *geo.Long))
		e.lines = append(e.lines, fmt.Sprintf("\n[View on Google Maps](https://www.google.com/maps?q=%v,%v)", *geo.Lat, *geo.Long))
	}
}

// ASNInfo renders the autonomous-system block, omitting absent parts and
// skipping entirely when no sub-field is present.
func (e *Extractor) ASNInfo(asn *model.ASNInfo) {
	if asn == nil {
		return
	}
	var parts []string
	if asn.ASN != nil {
		parts = append(parts, fmt.Sprintf("ASN %d", *asn.ASN))
	}
	if asn.ASOrg != "" {
		parts = append(parts, asn.ASOrg)
	}
	if asn.Network != "" {
		parts = append(parts, fmt.Sprintf("(%s)", asn.Network))
	}
	if len(parts) == 0 {
		return
	}
	e.lines = append(e.lines, "\n**ASN:** "+strings.Join(parts, " "))
}

// HTTPRequest renders the request line when a method or path is present.
func (e *Extractor) HTTPRequest(req *model.HTTPRequestInfo) {
	if req == nil || (req.Method == "" && req.Path == "") {
		return
	}
	method := req.Method
	if method == "" {
		method = "N/A"
	}
	path := req.Path
	if path == "" {
		path = "N/A"
	}
	e.lines = append(e.lines, fmt.Sprintf("\n**Request:** %s %s", method, path))
}

// StageInfo renders the stage a failed login stopped at.
func (e *Extractor) StageInfo(stage *model.ModelReference) {
	if stage == nil {
		return
	}
	e.lines = append(e.lines, fmt.Sprintf("\n**Failed Stage:** %s (%s, %s)", stage.App, stage.Name, stage.ModelName))
}

// Username renders the bare username field.
func (e *Extractor) Username(username string) {
	if username == "" {
		return
	}
	e.lines = append(e.lines, fmt.Sprintf("\n**Username:** %s", username))
}

// Name renders the display name field.
func (e *Extractor) Name(name string) {
	if name == "" {
		return
	}
	e.lines = append(e.lines, fmt.Sprintf("\n**Name:** %s", name))
}

// Email renders the email field.
func (e *Extractor) Email(email string) {
	if email == "" {
		return
	}
	e.lines = append(e.lines, fmt.Sprintf("\n**Email:** %s", email))
}

// Locale renders the locale nested under the user's attribute settings.
func (e *Extractor) Locale(attrs *model.UserAttributes) {
	if attrs == nil || attrs.Settings == nil || attrs.Settings.Locale == "" {
		return
	}
	e.lines = append(e.lines, fmt.Sprintf("\n**Locale:** %s", attrs.Settings.Locale))
}
