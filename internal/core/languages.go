package core

// Language describes one supported review output language.
type Language struct {
	Code string
	Name string
	Flag string
}

// DefaultLanguage is the language used when a trigger comment names none.
const DefaultLanguage = "en"

// supportedLanguages is ordered; the first entry is the primary language.
var supportedLanguages = []Language{
	{Code: "en", Name: "English", Flag: "🇺🇸"},
	{Code: "ko", Name: "Korean", Flag: "🇰🇷"},
	{Code: "zh", Name: "Chinese", Flag: "🇨🇳"},
	{Code: "ja", Name: "Japanese", Flag: "🇯🇵"},
	{Code: "vi", Name: "Vietnamese", Flag: "🇻🇳"},
}

// SupportedLanguages returns a copy of the supported language table.
func SupportedLanguages() []Language {
	out := make([]Language, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

// LookupLanguage returns the language entry for a code.
func LookupLanguage(code string) (Language, bool) {
	for _, l := range supportedLanguages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// IsSupportedLanguage reports whether code names a supported language.
func IsSupportedLanguage(code string) bool {
	_, ok := LookupLanguage(code)
	return ok
}
