package format

var continentEmoji = map[string]string{
	"AF": "🌍",
	"AN": "❄️",
	"AS": "🌏",
	"EU": "🌍",
	"NA": "🌎",
	"OC": "🌏",
	"SA": "🌎",
}

var countryEmoji = map[string]string{
	"US": "🇺🇸",
	"CA": "🇨🇦",
	"FR": "🇫🇷",
	"GB": "🇬🇧",
}

// ContinentEmoji returns the marker for a continent code, with a generic
// globe for codes outside the table.
func ContinentEmoji(code string) string {
	if e, ok := continentEmoji[code]; ok {
		return e
	}
	return "🌐"
}

// CountryEmoji returns the flag for an ISO country code, with a compass
// fallback for unrecognized codes.
func CountryEmoji(code string) string {
	if e, ok := countryEmoji[code]; ok {
		return e
	}
	return "🧭"
}
