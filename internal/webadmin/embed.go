// ABOUTME: Embeds HTML templates and the FAQ catalogue into the binary
// ABOUTME: Provides templateFS and faqFS for loading at runtime

package webadmin

import "embed"

//go:embed templates/*.html templates/pages/*.html
var templateFS embed.FS

//go:embed faqs.toml
var faqFS embed.FS
