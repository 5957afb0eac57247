package tui

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"giflabel/internal/angle"
	"giflabel/internal/model"
	"giflabel/internal/sequence"
	"giflabel/internal/session"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgItemLoaded carries the decoded frames of the item that was current when
// the load started.
type MsgItemLoaded struct {
	Seq *sequence.Sequence
	Gen int
}

// MsgItemFailed indicates the item could not be decoded.
type MsgItemFailed struct {
	Err error
	Gen int
}

// MsgPlayTick advances playback by one frame.
type MsgPlayTick struct {
	Gen int
}

// loadItemCmd decodes the GIF at path in the background.
func loadItemCmd(path string, gen int) tea.Cmd {
	return func() tea.Msg {
		seq, err := sequence.Load(path, CanvasPixelW, CanvasPixelH)
		if err != nil {
			return MsgItemFailed{Err: err, Gen: gen}
		}
		return MsgItemLoaded{Seq: seq, Gen: gen}
	}
}

// tickCmd schedules the next frame advance.
func tickCmd(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return MsgPlayTick{Gen: gen}
	})
}

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.ProgressBar.Width = CanvasCellsW - 10
		return m, nil

	case MsgItemLoaded:
		// A stale load finishing after the cursor has moved on must not
		// replace the current item's frames.
		if msg.Gen != m.Gen {
			return m, nil
		}
		m.Loading = false
		m.Seq = msg.Seq
		m.FrameIdx = 0
		return m, tickCmd(m.Seq.Delay(0), m.Gen)

	case MsgItemFailed:
		if msg.Gen != m.Gen {
			return m, nil
		}
		m.Loading = false
		m.Seq = nil
		skipped := fmt.Sprintf("%s could not read %s, skipping", model.IconWarn, m.Session.Current())
		// Skip the unreadable item automatically, like the arrow key would.
		// The skip notice is composed after navigating so a boundary error
		// from Advance cannot hide the decode failure.
		m.Notice = ""
		cmd = m.navigate((*session.Session).Advance, false)
		if m.Notice != "" {
			m.Notice = skipped + "; " + m.Notice
		} else {
			m.Notice = skipped
		}
		return m, cmd

	case MsgPlayTick:
		if msg.Gen != m.Gen || m.Seq == nil || m.Seq.Len() == 0 {
			return m, nil
		}
		m.FrameIdx = (m.FrameIdx + 1) % m.Seq.Len()
		return m, tickCmd(m.Seq.Delay(m.FrameIdx), m.Gen)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.commitTypedAngle()
				return m, nil
			case tea.KeyEsc:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.InputBuffer.SetValue("")
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "left", "h":
			cmd = m.navigate((*session.Session).Retreat, true)
			return m, cmd
		case "right", "l":
			cmd = m.navigate((*session.Session).Advance, true)
			return m, cmd
		case "n":
			cmd = m.navigate((*session.Session).SeekNextUnlabeled, true)
			return m, cmd
		case "s", " ":
			return m.save()
		case "u":
			if err := m.Session.Undo(); err != nil {
				m.Notice = noticeFor(err)
			} else {
				m.Notice = "label removed"
			}
			return m, nil
		case "a":
			m.InputMode = true
			m.InputBuffer.SetValue("")
			m.InputBuffer.Focus()
			return m, textinput.Blink
		}
	}

	return m, cmd
}

// navigate runs a session navigation op and, if the cursor landed on a new
// item, cancels playback (by bumping the generation) and starts loading it.
func (m *AppModel) navigate(move func(*session.Session) error, clearNotice bool) tea.Cmd {
	if clearNotice {
		m.Notice = ""
	}
	before := m.Session.Cursor()
	if err := move(m.Session); err != nil {
		m.Notice = noticeFor(err)
	}
	if m.Session.Cursor() == before {
		return nil
	}

	m.Gen++
	m.Loading = true
	m.Seq = nil
	m.FrameIdx = 0
	return loadItemCmd(m.Session.Path(), m.Gen)
}

// save promotes the pending selection and, on success, jumps to the next
// piece of work (auto-advance policy).
func (m AppModel) save() (tea.Model, tea.Cmd) {
	name := m.Session.Current()
	a, _ := m.Session.Pending()
	if err := m.Session.Save(); err != nil {
		m.Notice = noticeFor(err)
		return m, nil
	}
	m.Notice = fmt.Sprintf("%s saved %s = %.1f°", model.IconSaved, name, a)
	cmd := m.navigate((*session.Session).SeekNextUnlabeled, false)
	return m, cmd
}

// handleMouse updates the hover indicator on motion and commits the pending
// selection on a left click inside the canvas.
func (m AppModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ev := tea.MouseEvent(msg)
	px, py, inside := m.canvasPoint(ev.X, ev.Y)

	switch ev.Action {
	case tea.MouseActionMotion:
		m.HoverAngle = angle.FromPoint(px, py, CanvasPixelW)
		m.HasHover = true
	case tea.MouseActionPress:
		if ev.Button == tea.MouseButtonLeft && inside {
			m.Session.Select(angle.FromPoint(px, py, CanvasPixelW))
			m.Notice = ""
		}
	}
	return m, nil
}

// canvasPoint translates terminal cell coordinates into canvas pixel
// coordinates, sampling the vertical center of the cell.
func (m AppModel) canvasPoint(x, y int) (px, py float64, inside bool) {
	px = float64(x-canvasOriginX) + 0.5
	py = float64(y-canvasOriginY)*2 + 1
	inside = x >= canvasOriginX && x < canvasOriginX+CanvasCellsW &&
		y >= canvasOriginY && y < canvasOriginY+CanvasCellsH
	return px, py, inside
}

// commitTypedAngle parses the text buffer as a pending selection.
func (m *AppModel) commitTypedAngle() {
	v := m.InputBuffer.Value()
	m.InputBuffer.SetValue("")
	a, err := strconv.ParseFloat(v, 64)
	if err != nil || a < 0 || a > 180 {
		m.Notice = fmt.Sprintf("%q is not an angle in [0, 180]", v)
		return
	}
	m.Session.Select(a)
	m.Notice = ""
}

// noticeFor maps session errors to the short messages shown in the notice
// line. Unknown errors pass through verbatim.
func noticeFor(err error) string {
	var msg string
	switch {
	case errors.Is(err, session.ErrEndOfSequence):
		msg = "end of list: this is the last item"
	case errors.Is(err, session.ErrStartOfSequence):
		msg = "start of list: this is the first item"
	case errors.Is(err, session.ErrAllLabeled):
		msg = "all items labeled, arrow keys review"
	case errors.Is(err, session.ErrNoSelection):
		msg = "pick an angle first (click or press a)"
	default:
		msg = err.Error()
	}
	return model.IconWarn + " " + msg
}
