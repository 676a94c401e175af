package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background      tcell.Color
	Foreground      tcell.Color
	HeaderBg        tcell.Color
	HeaderFg        tcell.Color
	TitleFg         tcell.Color
	ParentFg        tcell.Color
	ParentActiveBg  tcell.Color
	ParentActiveFg  tcell.Color
	SelectionBg     tcell.Color
	SelectionFg     tcell.Color
	DirectoryFg     tcell.Color
	SymlinkFg       tcell.Color
	FileFg          tcell.Color
	HiddenFg        tcell.Color
	SeparatorFg     tcell.Color
	FooterBg        tcell.Color
	FooterFg        tcell.Color
	ErrorFg         tcell.Color
	PreviewFg       tcell.Color
	HeadingFg       tcell.Color
	LinkFg          tcell.Color
	QuoteFg         tcell.Color
	MarkerFg        tcell.Color
	CodeFg          tcell.Color
	CodeBlockBg     tcell.Color
	CodeBlockFg     tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:     tcell.ColorDefault,
		Foreground:     tcell.ColorDefault,
		HeaderBg:       tcell.ColorNavy,
		HeaderFg:       tcell.ColorWhite,
		TitleFg:        tcell.ColorSilver,
		ParentFg:       tcell.ColorGray,
		ParentActiveBg: tcell.Color238,
		ParentActiveFg: tcell.ColorWhite,
		SelectionBg:    tcell.ColorLightSkyBlue,
		SelectionFg:    tcell.ColorBlack,
		DirectoryFg:    tcell.ColorDarkCyan,
		SymlinkFg:      tcell.Color51,
		FileFg:         tcell.ColorDefault,
		HiddenFg:       tcell.ColorLightSlateGray,
		SeparatorFg:    tcell.Color240,
		FooterBg:       tcell.ColorDefault,
		FooterFg:       tcell.ColorDefault,
		ErrorFg:        tcell.ColorRed,
		PreviewFg:      tcell.ColorDefault,
		HeadingFg:      tcell.Color75,
		LinkFg:         tcell.Color39,
		QuoteFg:        tcell.Color245,
		MarkerFg:       tcell.Color244,
		CodeFg:         tcell.Color44,  // brighter cyan text for code
		CodeBlockBg:    tcell.Color234, // darker grey background for fenced code
		CodeBlockFg:    tcell.Color252,
	}
}
