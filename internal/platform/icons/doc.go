// Package icons defines the icon identifiers used across the site and maps
// them onto an inline Lucide SVG sprite.
//
// Templates reference icons by ID only; the layout embeds the sprite once per
// page so every icon renders as a <use> reference.
package icons
