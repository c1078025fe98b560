package gui

// Spacing scale for consistent layout.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2
	SpaceSM   float32 = 4
	SpaceMD   float32 = 8
	SpaceLG   float32 = 12
	SpaceXL   float32 = 16
	Space2XL  float32 = 24
)

// Style defines the visual appearance of UI elements.
type Style struct {
	// Text
	TextColor          uint32
	TextDisabledColor  uint32
	TextHighlightColor uint32

	// Panel
	PanelColor           uint32
	PanelBorderColor     uint32
	PanelHeaderBgColor   uint32
	PanelHeaderTextColor uint32 // 0 = use TextColor

	// Button
	ButtonColor         uint32
	ButtonHoveredColor  uint32
	ButtonActiveColor   uint32
	ButtonDisabledColor uint32

	// Selection
	SelectedBgColor   uint32
	SelectedTextColor uint32
	HoveredBgColor    uint32

	SeparatorColor uint32

	// List rows
	BorderColor   uint32
	RowBgColor    uint32
	RowBgAltColor uint32

	// Status badges
	SuccessColor uint32
	WarningColor uint32
	DangerColor  uint32
	AccentColor  uint32

	// Scrollbar
	ScrollbarBgColor     uint32
	ScrollbarGrabColor   uint32
	ScrollbarGrabHovered uint32

	// Sizing. CharWidth and CharHeight are the glyph cell of the font atlas
	// before FontScale is applied.
	FontScale     float32
	CharWidth     float32
	CharHeight    float32
	ItemSpacing   float32
	PanelPadding  float32
	ButtonPadding float32
	BorderSize    float32
	ScrollbarSize float32
}

// DefaultStyle returns the default dark style.
func DefaultStyle() Style {
	return Style{
		TextColor:          ColorWhite,
		TextDisabledColor:  ColorGray,
		TextHighlightColor: ColorYellow,

		PanelColor:           RGBA(20, 20, 20, 200),
		PanelBorderColor:     RGBA(80, 80, 80, 255),
		PanelHeaderBgColor:   RGBA(40, 40, 45, 255),
		PanelHeaderTextColor: 0,

		ButtonColor:         RGBA(50, 50, 50, 255),
		ButtonHoveredColor:  RGBA(70, 70, 70, 255),
		ButtonActiveColor:   RGBA(90, 90, 90, 255),
		ButtonDisabledColor: RGBA(30, 30, 30, 255),

		SelectedBgColor:   RGBA(50, 100, 150, 255),
		SelectedTextColor: ColorWhite,
		HoveredBgColor:    RGBA(60, 60, 60, 255),

		SeparatorColor: RGBA(80, 80, 80, 255),

		BorderColor:   RGBA(80, 80, 80, 255),
		RowBgColor:    RGBA(28, 28, 28, 255),
		RowBgAltColor: RGBA(35, 35, 35, 255),

		SuccessColor: RGBA(50, 130, 80, 255),
		WarningColor: RGBA(180, 130, 40, 255),
		DangerColor:  RGBA(180, 60, 60, 255),
		AccentColor:  RGBA(50, 100, 150, 255),

		ScrollbarBgColor:     RGBA(30, 30, 30, 255),
		ScrollbarGrabColor:   RGBA(80, 80, 80, 255),
		ScrollbarGrabHovered: RGBA(100, 100, 100, 255),

		FontScale:     1.0,
		CharWidth:     8,
		CharHeight:    16,
		ItemSpacing:   4,
		PanelPadding:  8,
		ButtonPadding: 6,
		BorderSize:    1,
		ScrollbarSize: 12,
	}
}

// BackOfficeStyle returns the light style used by the order and roster
// screens: white rows, blue selection, saturated status badges.
func BackOfficeStyle() Style {
	return Style{
		TextColor:          RGBA(25, 25, 30, 255),
		TextDisabledColor:  RGBA(150, 150, 150, 255),
		TextHighlightColor: RGBA(0, 100, 200, 255),

		PanelColor:           RGBA(245, 245, 247, 255),
		PanelBorderColor:     RGBA(200, 200, 205, 255),
		PanelHeaderBgColor:   RGBA(225, 228, 235, 255),
		PanelHeaderTextColor: RGBA(40, 40, 50, 255),

		ButtonColor:         RGBA(220, 222, 228, 255),
		ButtonHoveredColor:  RGBA(200, 204, 212, 255),
		ButtonActiveColor:   RGBA(180, 186, 196, 255),
		ButtonDisabledColor: RGBA(232, 232, 232, 255),

		SelectedBgColor:   RGBA(0, 120, 215, 255),
		SelectedTextColor: ColorWhite,
		HoveredBgColor:    RGBA(232, 238, 248, 255),

		SeparatorColor: RGBA(210, 210, 215, 255),

		BorderColor:   RGBA(215, 215, 220, 255),
		RowBgColor:    ColorWhite,
		RowBgAltColor: RGBA(248, 249, 251, 255),

		SuccessColor: RGBA(30, 140, 70, 255),
		WarningColor: RGBA(215, 140, 0, 255),
		DangerColor:  RGBA(200, 45, 45, 255),
		AccentColor:  RGBA(0, 120, 215, 255),

		ScrollbarBgColor:     RGBA(238, 238, 240, 255),
		ScrollbarGrabColor:   RGBA(180, 180, 186, 255),
		ScrollbarGrabHovered: RGBA(150, 150, 158, 255),

		FontScale:     1.0,
		CharWidth:     8,
		CharHeight:    16,
		ItemSpacing:   4,
		PanelPadding:  8,
		ButtonPadding: 6,
		BorderSize:    1,
		ScrollbarSize: 12,
	}
}

// DarkStyle returns a modern dark theme.
func DarkStyle() Style {
	s := DefaultStyle()
	s.PanelColor = RGBA(25, 25, 25, 240)
	s.PanelHeaderBgColor = RGBA(35, 35, 40, 255)
	s.ButtonColor = RGBA(45, 45, 45, 255)
	s.ButtonHoveredColor = RGBA(65, 65, 65, 255)
	s.SelectedBgColor = RGBA(65, 105, 225, 255)
	s.AccentColor = s.SelectedBgColor
	return s
}
