package model

// LocaleSystem means "follow the device language", the default when the
// user never picked a display language.
const LocaleSystem = "system"

// AllowedLocales are the display-language tags the settings store accepts.
var AllowedLocales = []string{LocaleSystem, "fr", "nl", "en"}

func IsAllowedLocale(tag string) bool {
	for _, t := range AllowedLocales {
		if t == tag {
			return true
		}
	}
	return false
}
