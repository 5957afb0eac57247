package tui

import (
	"giflabel/internal/sequence"
	"giflabel/internal/session"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Canvas geometry. Each terminal cell renders two vertically stacked pixels
// (the ▀ half block), so the pixel grid is twice as tall as the cell grid.
// The origin offsets locate the canvas interior within the rendered view and
// are what mouse coordinates are translated against; View keeps the layout
// in sync with them.
const (
	CanvasCellsW = 64
	CanvasCellsH = 16

	CanvasPixelW = CanvasCellsW
	CanvasPixelH = CanvasCellsH * 2

	canvasOriginX = 1 // column of the first canvas cell (inside the border)
	canvasOriginY = 3 // row of the first canvas cell (title, blank, border)
)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Session *session.Session
	Seq     *sequence.Sequence
	Loading bool
	Err     error

	// Playback State
	FrameIdx int
	Gen      int // playback generation; stale ticks and loads carry an old one

	// Interaction State
	HoverAngle float64
	HasHover   bool
	Notice     string

	// UI State
	WindowSize  tea.WindowSizeMsg
	InputMode   bool
	InputBuffer textinput.Model
	ProgressBar progress.Model
}

// InitialModel returns the initial state for a started session.
func InitialModel(sess *session.Session) AppModel {
	ti := textinput.New()
	ti.Placeholder = "angle 0-180"
	ti.CharLimit = 7
	ti.Width = 12

	return AppModel{
		Session:     sess,
		Loading:     true,
		InputBuffer: ti,
		ProgressBar: progress.New(progress.WithDefaultGradient()),
	}
}

// Init kicks off loading of the item under the session cursor.
func (m AppModel) Init() tea.Cmd {
	return loadItemCmd(m.Session.Path(), m.Gen)
}
