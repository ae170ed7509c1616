// Package docgen builds Office Open XML (.docx) documents for lesson
// plans and handouts from a library of styled fragment builders.
package docgen

// Theme holds the visual constants for scratch-generated documents.
// Colors are RRGGBB hex without the leading '#', sizes are half-points,
// widths and margins are twentieths of a point (dxa).
type Theme struct {
	Name string

	// Palette
	Primary    string // banners, badges, table header rows
	Accent     string // section header flag
	TextDark   string
	TextLight  string
	ShadeLight string // content box background
	ShadeAlt   string // zebra striping
	NoteShade  string // note box background
	Border     string

	// Card colors for the three-column triads, left to right
	CardColors [3]string

	// Font sizes (half-points)
	BannerSize    int
	SubtitleSize  int
	HeadingSize   int // section header level 1
	SubheadSize   int // section header level 2
	BodySize      int
	BadgeSize     int
	TableHeadSize int

	// Page geometry (dxa)
	PageWidth  int
	PageHeight int
	Margin     int
}

// ContentWidth returns the usable width between the page margins
func (t Theme) ContentWidth() int {
	return t.PageWidth - 2*t.Margin
}

// Classic is the original blue/gold preset
func Classic() Theme {
	return Theme{
		Name:          "classic",
		Primary:       "1F3864",
		Accent:        "BF9000",
		TextDark:      "262626",
		TextLight:     "FFFFFF",
		ShadeLight:    "EDF2F9",
		ShadeAlt:      "F5F7FA",
		NoteShade:     "FFF6DD",
		Border:        "BFBFBF",
		CardColors:    [3]string{"DEEBF7", "FBE5D6", "E2EFDA"},
		BannerSize:    40,
		SubtitleSize:  24,
		HeadingSize:   28,
		SubheadSize:   24,
		BodySize:      22,
		BadgeSize:     22,
		TableHeadSize: 22,
		PageWidth:     12240,
		PageHeight:    15840,
		Margin:        1080,
	}
}

// Modern is the redesigned teal/slate preset
func Modern() Theme {
	return Theme{
		Name:          "modern",
		Primary:       "134E4A",
		Accent:        "F59E0B",
		TextDark:      "1F2937",
		TextLight:     "FFFFFF",
		ShadeLight:    "ECFDF5",
		ShadeAlt:      "F3F4F6",
		NoteShade:     "FEF9C3",
		Border:        "D1D5DB",
		CardColors:    [3]string{"CCFBF1", "FFEDD5", "DBEAFE"},
		BannerSize:    44,
		SubtitleSize:  26,
		HeadingSize:   30,
		SubheadSize:   24,
		BodySize:      22,
		BadgeSize:     22,
		TableHeadSize: 22,
		PageWidth:     12240,
		PageHeight:    15840,
		Margin:        1008,
	}
}

// ThemeByName resolves a configured theme name to its preset,
// defaulting to Classic for unknown names
func ThemeByName(name string) Theme {
	if name == "modern" {
		return Modern()
	}
	return Classic()
}
