package pkg

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/tetriterm/pkg/event"
	"github.com/qnkhuat/tetriterm/pkg/gui"
)

// Client is the terminal front end of a Session
type Client struct {
	App     *tview.Application
	Board   *tview.Box
	Session *Session
	Theme   gui.Theme

	frame gui.Frame
}

func NewClient(s *Session, theme gui.Theme) *Client {
	app := tview.NewApplication()

	cl := &Client{
		App:     app,
		Session: s,
		Theme:   theme,
		frame:   s.Frame(),
	}

	cl.Board = tview.NewBox().SetDrawFunc(cl.draw)

	app.SetInputCapture(cl.HandleKey)
	app.SetRoot(cl.Board, true)

	return cl
}

// draw runs on the application goroutine, as does every frame update
func (cl *Client) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	gui.Render(screen, x, y, cl.frame, cl.Theme)
	return x, y, width, height
}

// HandleKey forwards bound keys to the session and lets the rest through
func (cl *Client) HandleKey(ev *tcell.EventKey) *tcell.EventKey {
	action := gui.ActionFor(ev)
	switch action {
	case event.ActionUnknown:
		return ev
	case event.ActionQuit:
		log.Printf("session %s: quit requested", cl.Session.ID)
		cl.App.Stop()
		return nil
	}

	select {
	case cl.Session.In <- action:
	default:
		log.Printf("session %s: dropped %s, input queue full", cl.Session.ID, action)
	}

	return nil
}

// HandleRead redraws the screen for every frame the session publishes
func (cl *Client) HandleRead(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case f := <-cl.Session.Out:
			cl.App.QueueUpdateDraw(func() {
				cl.frame = f
			})
		}
	}
}
