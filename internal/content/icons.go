package content

// Icon is one of the closed set of service icons the site can draw.
type Icon string

const (
	IconGlobe       Icon = "Globe"
	IconSmartphone  Icon = "Smartphone"
	IconSearch      Icon = "Search"
	IconImage       Icon = "Image"
	IconVideo       Icon = "Video"
	IconPalette     Icon = "Palette"
	IconCheckCircle Icon = "CheckCircle"
)

// DefaultIcon stands in for any icon name outside the table.
const DefaultIcon = IconCheckCircle

var iconGlyphs = map[Icon]string{
	IconGlobe:       "lucide:globe",
	IconSmartphone:  "lucide:smartphone",
	IconSearch:      "lucide:search",
	IconImage:       "lucide:image",
	IconVideo:       "lucide:video",
	IconPalette:     "lucide:palette",
	IconCheckCircle: "lucide:check-circle",
}

// IconFor maps a document icon name to an Icon. Unknown names, including the
// empty string, get DefaultIcon rather than an error.
func IconFor(name string) Icon {
	icon := Icon(name)
	if _, ok := iconGlyphs[icon]; !ok {
		return DefaultIcon
	}
	return icon
}

// Glyph returns the iconify identifier used when rendering the icon.
func (i Icon) Glyph() string {
	if g, ok := iconGlyphs[i]; ok {
		return g
	}
	return iconGlyphs[DefaultIcon]
}
