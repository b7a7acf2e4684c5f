// Package tui renders a game session in the terminal and translates
// key events into session actions.
package tui

import (
	"context"

	tui "github.com/grindlemire/go-tui"

	"sudoku/internal/game"
	"sudoku/internal/ports"
)

// ui ties a session and a solver to a running terminal app.
type ui struct {
	app     *tui.App
	view    *boardView
	session *game.Session
	solver  ports.Solver
	solving bool
}

// Run owns the terminal until the user quits.
func Run(session *game.Session, solver ports.Solver) error {
	app, err := tui.NewApp()
	if err != nil {
		return err
	}
	defer app.Close()

	width, height := app.Size()
	u := &ui{
		app:     app,
		view:    newBoardView(width, height),
		session: session,
		solver:  solver,
	}
	u.view.update(session)
	app.SetRoot(u.view.root)
	app.SetGlobalKeyHandler(u.handleKey)

	return app.Run()
}

func (u *ui) handleKey(e tui.KeyEvent) bool {
	switch {
	case e.Rune == 'q' || e.Key == tui.KeyEscape:
		u.app.Stop()
		return true
	case e.Key == tui.KeyLeft && e.Mod.Has(tui.ModShift):
		u.session.CyclePalette(-1)
	case e.Key == tui.KeyRight && e.Mod.Has(tui.ModShift):
		u.session.CyclePalette(1)
	case e.Key == tui.KeyUp || e.Rune == 'k':
		u.session.MoveUp()
	case e.Key == tui.KeyDown || e.Rune == 'j':
		u.session.MoveDown()
	case e.Key == tui.KeyLeft || e.Rune == 'h':
		u.session.MoveLeft()
	case e.Key == tui.KeyRight || e.Rune == 'l':
		u.session.MoveRight()
	case e.Key == tui.KeyBackspace || e.Key == tui.KeyDelete:
		u.session.ClearCell()
	case e.Rune >= '0' && e.Rune <= '9':
		u.session.Enter(uint8(e.Rune - '0'))
	case e.Rune == 'c':
		u.session.Check()
	case e.Rune == 'r':
		u.session.Reset()
	case e.Rune == 's':
		u.solve()
	default:
		return false
	}
	u.view.update(u.session)
	return true
}

// solve runs the solver off the event path and applies the result via
// the app's update queue, so a slow search never blocks input.
func (u *ui) solve() {
	if u.solving {
		return
	}
	u.solving = true
	u.session.SetStatus("solving…")

	snapshot := u.session.Board()
	ctx, cancel := context.WithCancel(context.Background())
	stop := u.app.StopCh()
	go func() {
		select {
		case <-stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	go func() {
		defer cancel()
		sol, _, err := u.solver.Solve(ctx, snapshot)
		u.app.QueueUpdate(func() {
			u.solving = false
			if err != nil {
				u.session.SetStatus("no solution")
			} else {
				u.session.ApplySolution(sol)
			}
			u.view.update(u.session)
		})
	}()
}
