package model

// Event record types decoded from the literal embedded in a notification
// body. Every field is optional: a missing field skips its rendered
// fragment, it never fails extraction.

// HTTPRequestInfo describes the HTTP request attached to an event.
type HTTPRequestInfo struct {
	Method    string         `json:"method,omitempty"`
	Path      string         `json:"path,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	UserAgent string         `json:"user_agent,omitempty"`
	Args      map[string]any `json:"args,omitempty"`
}

// MFADevice is one multi-factor device used during authentication.
type MFADevice struct {
	PK        int    `json:"pk"`
	App       string `json:"app"`
	Name      string `json:"name"`
	ModelName string `json:"model_name"`
}

// ModelReference points at a provider-side object, e.g. the stage a
// failed login stopped at.
type ModelReference struct {
	PK        string `json:"pk"`
	App       string `json:"app"`
	Name      string `json:"name"`
	ModelName string `json:"model_name"`
}

// GeoInfo is the geolocation block attached to login events.
type GeoInfo struct {
	Lat       *float64 `json:"lat,omitempty"`
	Long      *float64 `json:"long,omitempty"`
	City      string   `json:"city,omitempty"`
	Country   string   `json:"country,omitempty"`
	Continent string   `json:"continent,omitempty"`
}

// ASNInfo is the autonomous-system block attached to login events.
type ASNInfo struct {
	ASN     *int   `json:"asn,omitempty"`
	ASOrg   string `json:"as_org,omitempty"`
	Network string `json:"network,omitempty"`
}

// AuthMethodArgs carries method-specific details of a successful login.
// KnownDevice is a pointer so an explicit false still renders.
type AuthMethodArgs struct {
	KnownDevice *bool       `json:"known_device,omitempty"`
	MFADevices  []MFADevice `json:"mfa_devices,omitempty"`
}

// LoginEvent is the record embedded in a successful-login notification.
type LoginEvent struct {
	AuthMethod     string           `json:"auth_method,omitempty"`
	HTTPRequest    *HTTPRequestInfo `json:"http_request,omitempty"`
	AuthMethodArgs *AuthMethodArgs  `json:"auth_method_args,omitempty"`
	Geo            *GeoInfo         `json:"geo,omitempty"`
	ASN            *ASNInfo         `json:"asn,omitempty"`
}

// LoginFailedEvent is the record embedded in a failed-login notification.
// Some provider versions attach the same device/geo/ASN context as a
// successful login, so those blocks are carried here too.
type LoginFailedEvent struct {
	Stage          *ModelReference  `json:"stage,omitempty"`
	Username       string           `json:"username,omitempty"`
	HTTPRequest    *HTTPRequestInfo `json:"http_request,omitempty"`
	AuthMethodArgs *AuthMethodArgs  `json:"auth_method_args,omitempty"`
	Geo            *GeoInfo         `json:"geo,omitempty"`
	ASN            *ASNInfo         `json:"asn,omitempty"`
}

// UserSettings holds the settings block of a user's attributes.
type UserSettings struct {
	Locale string `json:"locale,omitempty"`
}

// UserAttributes is the free-form attribute bag on a user record.
type UserAttributes struct {
	Settings *UserSettings `json:"settings,omitempty"`
}

// UserWriteEvent is the record embedded in a user create/update
// notification. Created distinguishes the two.
type UserWriteEvent struct {
	Name        string           `json:"name,omitempty"`
	Email       string           `json:"email,omitempty"`
	Username    string           `json:"username,omitempty"`
	Created     bool             `json:"created,omitempty"`
	Attributes  *UserAttributes  `json:"attributes,omitempty"`
	HTTPRequest *HTTPRequestInfo `json:"http_request,omitempty"`
	Geo         *GeoInfo         `json:"geo,omitempty"`
	ASN         *ASNInfo         `json:"asn,omitempty"`
}
