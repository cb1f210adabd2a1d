// Package i18n declares the locales the service ships and how request
// language tags map onto them.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var (
	supported = []language.Tag{language.AmericanEnglish, language.BrazilianPortuguese}
	matcher   = language.NewMatcher(supported)
)

// SupportedTags returns the supported locales, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// DefaultTag returns the fallback locale.
func DefaultTag() language.Tag {
	return supported[0]
}

// ParseTag resolves a raw tag to a supported locale. Base-language matches
// count ("pt" resolves to pt-BR); unrelated languages report false.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.Und, false
	}
	return supported[idx], true
}

// MatchTags picks the best supported locale for a preference list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supported[idx]
}
