package language

import (
	"strings"
)

// languageMap maps the language names Whisper reports in verbose output to ISO 639-1 codes.
var languageMap = map[string]string{
	"english":    "en",
	"hindi":      "hi",
	"urdu":       "ur",
	"bengali":    "bn",
	"marathi":    "mr",
	"tamil":      "ta",
	"telugu":     "te",
	"gujarati":   "gu",
	"punjabi":    "pa",
	"kannada":    "kn",
	"malayalam":  "ml",
	"nepali":     "ne",
	"spanish":    "es",
	"french":     "fr",
	"german":     "de",
	"italian":    "it",
	"portuguese": "pt",
	"dutch":      "nl",
	"russian":    "ru",
	"japanese":   "ja",
	"korean":     "ko",
	"chinese":    "zh",
	"arabic":     "ar",
	"turkish":    "tr",
}

// Normalize turns an engine-reported language ("English", "en-US", "hi") into a
// lowercase ISO 639-1 code. Anything else is returned lowercased and trimmed, so
// malformed codes such as "e-n" or "EN." never match a supported code.
func Normalize(lang string) string {
	lower := strings.ToLower(strings.TrimSpace(lang))

	if code, exists := languageMap[lower]; exists {
		return code
	}

	// Region-tagged codes such as "en-US" or "hi_IN".
	if len(lower) > 3 && (lower[2] == '-' || lower[2] == '_') && isLetters(lower[:2]) {
		return lower[:2]
	}

	return lower
}

func isLetters(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
