package gui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetriterm/pkg/tetris"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name   string      `json:"name"`
	Border tcell.Color `json:"border"`
	Well   tcell.Color `json:"well"`
	Label  tcell.Color `json:"label"`
	Text   tcell.Color `json:"text"`
	Msg    tcell.Color `json:"msg"`
	PieceI tcell.Color `json:"pieceI"`
	PieceO tcell.Color `json:"pieceO"`
	PieceT tcell.Color `json:"pieceT"`
	PieceS tcell.Color `json:"pieceS"`
	PieceZ tcell.Color `json:"pieceZ"`
	PieceJ tcell.Color `json:"pieceJ"`
	PieceL tcell.Color `json:"pieceL"`
}

// ThemeHex is used for dynamically coloring the UI
type ThemeHex struct {
	Name   string `json:"name"`
	Border string `json:"border"`
	Well   string `json:"well"`
	Label  string `json:"label"`
	Text   string `json:"text"`
	Msg    string `json:"msg"`
	PieceI string `json:"pieceI"`
	PieceO string `json:"pieceO"`
	PieceT string `json:"pieceT"`
	PieceS string `json:"pieceS"`
	PieceZ string `json:"pieceZ"`
	PieceJ string `json:"pieceJ"`
	PieceL string `json:"pieceL"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// parseHex is the inverse of fmtHex
func parseHex(s string) tcell.Color {
	if s == "#0" {
		return tcell.ColorDefault
	}
	return tcell.GetColor(s)
}

// Piece returns the color used for cells left by shape
func (t Theme) Piece(shape tetris.Tetrimino) tcell.Color {
	switch shape {
	case tetris.I:
		return t.PieceI
	case tetris.O:
		return t.PieceO
	case tetris.T:
		return t.PieceT
	case tetris.S:
		return t.PieceS
	case tetris.Z:
		return t.PieceZ
	case tetris.J:
		return t.PieceJ
	case tetris.L:
		return t.PieceL
	default:
		return t.Text
	}
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.Border.Hex()),
		fmtHex(t.Well.Hex()),
		fmtHex(t.Label.Hex()),
		fmtHex(t.Text.Hex()),
		fmtHex(t.Msg.Hex()),
		fmtHex(t.PieceI.Hex()),
		fmtHex(t.PieceO.Hex()),
		fmtHex(t.PieceT.Hex()),
		fmtHex(t.PieceS.Hex()),
		fmtHex(t.PieceZ.Hex()),
		fmtHex(t.PieceJ.Hex()),
		fmtHex(t.PieceL.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		parseHex(t.Border),
		parseHex(t.Well),
		parseHex(t.Label),
		parseHex(t.Text),
		parseHex(t.Msg),
		parseHex(t.PieceI),
		parseHex(t.PieceO),
		parseHex(t.PieceT),
		parseHex(t.PieceS),
		parseHex(t.PieceZ),
		parseHex(t.PieceJ),
		parseHex(t.PieceL),
	}
}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	return Theme{}, errors.New("theme: no theme found")
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",            // Name
	tcell.Color247,     // Border
	tcell.Color235,     // Well
	tcell.Color247,     // Label
	tcell.ColorDefault, // Text
	tcell.Color160,     // Msg
	tcell.Color45,      // PieceI
	tcell.Color226,     // PieceO
	tcell.Color129,     // PieceT
	tcell.Color40,      // PieceS
	tcell.Color196,     // PieceZ
	tcell.Color27,      // PieceJ
	tcell.Color208,     // PieceL
}

// ThemeMono suits terminals without colour support
var ThemeMono = Theme{
	"mono",             // Name
	tcell.ColorDefault, // Border
	tcell.ColorDefault, // Well
	tcell.ColorDefault, // Label
	tcell.ColorDefault, // Text
	tcell.ColorDefault, // Msg
	tcell.ColorWhite,   // PieceI
	tcell.ColorWhite,   // PieceO
	tcell.ColorWhite,   // PieceT
	tcell.ColorWhite,   // PieceS
	tcell.ColorWhite,   // PieceZ
	tcell.ColorWhite,   // PieceJ
	tcell.ColorWhite,   // PieceL
}

// Themes lists the built-in themes in importable form
var Themes = []ThemeHex{ThemeBasic.Hex(), ThemeMono.Hex()}
