package icons

import (
	"strings"
)

// ID names one icon by intent.
type ID string

const (
	Activity      ID = "activity"
	Heart         ID = "heart"
	Brain         ID = "brain"
	Lung          ID = "lung"
	Shield        ID = "shield"
	ShieldCheck   ID = "shield-check"
	Eye           ID = "eye"
	Detection     ID = "detection"
	Alert         ID = "alert"
	Check         ID = "check"
	Upload        ID = "upload"
	Close         ID = "close"
	ExternalLink  ID = "external-link"
	ChevronDown   ID = "chevron-down"
	ChevronRight  ID = "chevron-right"
	Image         ID = "image"
	Loader        ID = "loader"
	Layout        ID = "layout"
	Server        ID = "server"
	LanguageGlobe ID = "language"
)

// Definition describes a catalog entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
}

var catalog = []Definition{
	{ID: Activity, Name: "Activity", Description: "Brand mark and primary calls to action."},
	{ID: Heart, Name: "Heart", Description: "Heart disease assessment."},
	{ID: Brain, Name: "Brain", Description: "Brain tumour assessment."},
	{ID: Lung, Name: "Lung", Description: "Lung disease assessment."},
	{ID: Shield, Name: "Shield", Description: "Medical disclaimer callouts."},
	{ID: ShieldCheck, Name: "Shield check", Description: "Privacy and model performance."},
	{ID: Eye, Name: "Eye", Description: "Explainable AI and vision statements."},
	{ID: Detection, Name: "Detection", Description: "Multi-disease detection feature."},
	{ID: Alert, Name: "Alert", Description: "Warnings and inline errors."},
	{ID: Check, Name: "Check", Description: "Recommended actions."},
	{ID: Upload, Name: "Upload", Description: "Image drop zone."},
	{ID: Close, Name: "Close", Description: "Remove a selected image."},
	{ID: ExternalLink, Name: "External link", Description: "Links that leave the site."},
	{ID: ChevronDown, Name: "Chevron down", Description: "Scroll hints."},
	{ID: ChevronRight, Name: "Chevron right", Description: "Feature bullets."},
	{ID: Image, Name: "Image", Description: "Selected file name."},
	{ID: Loader, Name: "Loader", Description: "In-flight request spinner."},
	{ID: Layout, Name: "Layout", Description: "Frontend architecture."},
	{ID: Server, Name: "Server", Description: "Backend architecture."},
	{ID: LanguageGlobe, Name: "Language", Description: "Language switcher."},
}

// Catalog returns all icon definitions in display order.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// CatalogMarkdown renders the catalog as a markdown table.
func CatalogMarkdown() string {
	var b strings.Builder
	b.WriteString("| ID | Name | Lucide | Description |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, def := range catalog {
		b.WriteString("| `")
		b.WriteString(string(def.ID))
		b.WriteString("` | ")
		b.WriteString(def.Name)
		b.WriteString(" | ")
		b.WriteString(LucideNameOrDefault(def.ID))
		b.WriteString(" | ")
		b.WriteString(def.Description)
		b.WriteString(" |\n")
	}
	return b.String()
}
