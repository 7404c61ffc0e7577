package slides

import "strings"

// Profile is the resolved language profile for one generation request.
type Profile struct {
	// Code is the canonical 2-3 letter language code sent to the service.
	Code string

	// RTL reports whether the language is written right-to-left.
	RTL bool
}

// fullLanguageNames maps common full English language names to canonical
// codes. Unrecognized long strings fall back to "en".
var fullLanguageNames = map[string]string{
	"english":    "en",
	"hebrew":     "he",
	"arabic":     "ar",
	"persian":    "fa",
	"farsi":      "fa",
	"urdu":       "ur",
	"spanish":    "es",
	"french":     "fr",
	"german":     "de",
	"italian":    "it",
	"portuguese": "pt",
	"russian":    "ru",
	"chinese":    "zh",
	"japanese":   "ja",
	"korean":     "ko",
	"hindi":      "hi",
	"dutch":      "nl",
	"polish":     "pl",
	"turkish":    "tr",
}

// rtlLanguages is the set of right-to-left script languages, keyed by
// canonical code. Extend here when the service grows RTL coverage.
var rtlLanguages = map[string]bool{
	"ar": true,
	"he": true,
	"fa": true,
	"ur": true,
}

// resolveLanguage normalizes a free-form locale tag into a Profile.
//
// Full language names ("Hebrew") and regional tags ("he-IL", "ar_SA")
// collapse to their canonical primary code; unrecognized long strings
// default to "en"; unrecognized short (2-3 char) codes pass through
// lower-cased. The function is idempotent: feeding its output back in
// yields the same Profile.
func resolveLanguage(tag string) Profile {
	trimmed := strings.ToLower(strings.TrimSpace(tag))
	if trimmed == "" {
		return Profile{Code: "en"}
	}

	// Regional tags keep only the primary subtag: "he-IL" -> "he".
	primary := trimmed
	if i := strings.IndexAny(primary, "-_"); i >= 0 {
		primary = primary[:i]
	}

	if code, ok := fullLanguageNames[primary]; ok {
		return Profile{Code: code, RTL: rtlLanguages[code]}
	}

	if len(primary) < 2 || len(primary) > 3 {
		return Profile{Code: "en"}
	}

	return Profile{Code: primary, RTL: rtlLanguages[primary]}
}
