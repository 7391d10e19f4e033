package gui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetriterm/pkg/event"
)

type Keybinding struct {
	k tcell.Key
	r rune

	a event.Action
}

var Keybindings = []*Keybinding{
	{k: tcell.KeyLeft, a: event.ActionMoveLeft},
	{r: 'h', a: event.ActionMoveLeft},
	{r: 'H', a: event.ActionMoveLeft},
	{k: tcell.KeyRight, a: event.ActionMoveRight},
	{r: 'l', a: event.ActionMoveRight},
	{r: 'L', a: event.ActionMoveRight},
	{k: tcell.KeyUp, a: event.ActionRotate},
	{r: 'k', a: event.ActionRotate},
	{r: 'K', a: event.ActionRotate},
	{k: tcell.KeyDown, a: event.ActionSoftDrop},
	{r: 'j', a: event.ActionSoftDrop},
	{r: 'J', a: event.ActionSoftDrop},
	{r: ' ', a: event.ActionHardDrop},
	{k: tcell.KeyEnter, a: event.ActionHardDrop},
	{r: 'p', a: event.ActionPause},
	{r: 'P', a: event.ActionPause},
	{k: tcell.KeyEscape, a: event.ActionQuit},
	{k: tcell.KeyCtrlC, a: event.ActionQuit},
	{r: 'q', a: event.ActionQuit},
	{r: 'Q', a: event.ActionQuit},
}

// Help is shown under the stats
var Help = []string{
	"←→ hl  move",
	"↑  k   rotate",
	"↓  j   soft drop",
	"space  hard drop",
	"p      pause",
	"q      quit",
}

// ActionFor translates a key event into the action bound to it
func ActionFor(ev *tcell.EventKey) event.Action {
	k := ev.Key()
	r := ev.Rune()

	for _, bind := range Keybindings {
		if bind.k != 0 && bind.k == k {
			return bind.a
		}
		if bind.r != 0 && k == tcell.KeyRune && bind.r == r {
			return bind.a
		}
	}

	return event.ActionUnknown
}
