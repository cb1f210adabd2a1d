package templates

import (
	"strings"

	webi18n "github.com/aiml-healthguard/healthguard/internal/services/web/platform/i18n"
	"github.com/aiml-healthguard/healthguard/internal/services/web/routepath"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	Title        string
	Languages    []webi18n.LanguageOption
}

// navItem is one entry of the top navigation.
type navItem struct {
	labelKey string
	href     string
	active   bool
}

func navItems(page PageContext) []navItem {
	path := strings.TrimSpace(page.CurrentPath)
	return []navItem{
		{labelKey: "core.nav.home", href: routepath.Root, active: path == routepath.Root},
		{labelKey: "core.nav.assessments", href: routepath.Diagnosis(), active: strings.HasPrefix(path, routepath.AssessPrefix)},
		{labelKey: "core.nav.about", href: routepath.About, active: path == routepath.About},
		{labelKey: "core.nav.disclaimer", href: routepath.RootWithDisclaimer()},
	}
}

func pageLang(page PageContext) string {
	if lang := strings.TrimSpace(page.Lang); lang != "" {
		return lang
	}
	return "en-US"
}

func pageTitle(page PageContext) string {
	if title := strings.TrimSpace(page.Title); title != "" {
		return title
	}
	return T(page.Loc, "core.brand")
}

// classes joins non-empty class names.
func classes(names ...string) string {
	parts := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, " ")
}

func activeClass(active bool) string {
	if active {
		return "is-active"
	}
	return ""
}

func accentClass(accent string) string {
	if accent == "" {
		return ""
	}
	return "accent-" + accent
}
