package nonogram

import (
	"fmt"
	"strconv"
)

// Palette is an ordered list of "#rrggbb" colors plus the currently
// selected brush index. Index 0 is the background color.
type Palette struct {
	Colors []string `json:"color_palette"`
	Brush  int      `json:"brush_color"`
}

// Len returns the number of colors in the palette.
func (p Palette) Len() int {
	return len(p.Colors)
}

// Get returns the color at index.
func (p Palette) Get(index int) string {
	return p.Colors[index]
}

// Current returns the brush color.
func (p Palette) Current() string {
	return p.Colors[p.Brush]
}

// SetCurrent replaces the brush color.
func (p *Palette) SetCurrent(color string) {
	p.Colors[p.Brush] = color
}

// Add appends a color to the palette.
func (p *Palette) Add(color string) {
	p.Colors = append(p.Colors, color)
}

// Remove deletes the color at index and keeps the brush in range.
func (p *Palette) Remove(index int) {
	p.Colors = append(p.Colors[:index], p.Colors[index+1:]...)
	if p.Brush > 0 {
		p.Brush--
	}
}

// SetBrush selects the brush index if it is in range.
func (p *Palette) SetBrush(index int) {
	if index >= 0 && index < len(p.Colors) {
		p.Brush = index
	}
}

// ShowBrush formats the brush as "index -> color".
func (p Palette) ShowBrush() string {
	return fmt.Sprintf("%d -> %s", p.Brush, p.Current())
}

// TextColor picks black or white for legible text over the color at
// the given palette index.
func (p Palette) TextColor(background int) string {
	r, g, b, ok := ParseColor(p.Get(background))
	if !ok {
		return ""
	}
	if isDarker(r, g, b) {
		return "#ffffff"
	}
	return "#000000"
}

// BorderColor picks a cell border color contrasting with the color at
// the given palette index.
func (p Palette) BorderColor(background int) string {
	r, g, b, ok := ParseColor(p.Get(background))
	if ok && isDarker(r, g, b) {
		return "#ffffff"
	}
	return "#9ca3af"
}

// ParseColor splits a "#rrggbb" string into its components.
func ParseColor(color string) (r, g, b uint8, ok bool) {
	if len(color) != 7 || color[0] != '#' {
		return 0, 0, 0, false
	}
	rv, err := strconv.ParseUint(color[1:3], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	gv, err := strconv.ParseUint(color[3:5], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	bv, err := strconv.ParseUint(color[5:7], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(rv), uint8(gv), uint8(bv), true
}

// isDarker applies the rec. 709 luminance threshold.
func isDarker(r, g, b uint8) bool {
	luminance := 0.2126*float64(r)/255.0 + 0.7152*float64(g)/255.0 + 0.0722*float64(b)/255.0
	return luminance <= 0.5
}
