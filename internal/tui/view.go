package tui

import (
	"fmt"
	"strings"

	"giflabel/internal/model"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	canvasStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))

	filenameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	angleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")) // Sky Blue/Cyan

	savedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")) // Pinkish

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// View renders the whole screen. The layout is deliberately fixed (title,
// blank, bordered canvas at the left edge) so that the canvasOrigin
// constants used for mouse translation stay valid.
func (m AppModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("GIF Angle Labeler"))
	b.WriteString("\n\n")

	b.WriteString(canvasStyle.Render(m.canvasContent()))
	b.WriteString("\n")

	labeled, total := m.Session.Progress()
	b.WriteString(filenameStyle.Render(fmt.Sprintf("%s %s", model.IconCursor, m.Session.Current())))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  (%d/%d)", m.Session.Cursor()+1, total)))
	b.WriteString("\n")

	b.WriteString(m.ProgressBar.ViewAs(percent(labeled, total)))
	b.WriteString(dimStyle.Render(fmt.Sprintf(" %d/%d labeled", labeled, total)))
	b.WriteString("\n")

	b.WriteString(m.angleReadout())
	b.WriteString("\n")

	if m.InputMode {
		b.WriteString("Type angle: " + m.InputBuffer.View())
	} else if m.Notice != "" {
		b.WriteString(noticeStyle.Render(m.Notice))
	}
	b.WriteString("\n")

	b.WriteString(dimStyle.Render("←/→ navigate · click to select · s save · u undo · n next unlabeled · a type angle · q quit"))
	b.WriteString("\n")

	return b.String()
}

// canvasContent returns the interior of the canvas box: the current frame
// with indicator overlays, or a placeholder while loading / after a failed
// decode.
func (m AppModel) canvasContent() string {
	if m.Loading || m.Seq == nil || m.Seq.Len() == 0 {
		msg := "loading..."
		if !m.Loading {
			msg = "no frames"
		}
		return placeholder(msg)
	}

	frame := m.Seq.Frames[m.FrameIdx%m.Seq.Len()]

	var persistent, hover *float64
	if a, ok := m.Session.Pending(); ok {
		persistent = &a
	} else if a, ok := m.Session.Saved(); ok {
		persistent = &a
	}
	if m.HasHover {
		h := m.HoverAngle
		hover = &h
	}

	return renderCanvas(frame, persistent, hover)
}

// angleReadout mirrors the original tool's feedback line: hover angle, plus
// the selected/saved angle when one exists.
func (m AppModel) angleReadout() string {
	var parts []string
	if m.HasHover {
		parts = append(parts, angleStyle.Render(fmt.Sprintf("Hover: %.1f°", m.HoverAngle)))
	}
	if a, ok := m.Session.Pending(); ok {
		parts = append(parts, savedStyle.Render(fmt.Sprintf("Selected: %.1f°", a)))
	} else if a, ok := m.Session.Saved(); ok {
		parts = append(parts, savedStyle.Render(fmt.Sprintf("%s Saved: %.1f° (click to change)", model.IconSaved, a)))
	}
	if len(parts) == 0 {
		return dimStyle.Render("Move mouse over the image to select an angle")
	}
	return strings.Join(parts, dimStyle.Render(" | "))
}

// placeholder fills the canvas interior with a centered message so the box
// keeps its dimensions (and the mouse mapping stays correct).
func placeholder(msg string) string {
	lines := make([]string, CanvasCellsH)
	for i := range lines {
		if i == CanvasCellsH/2 {
			pad := (CanvasCellsW - len(msg)) / 2
			if pad < 0 {
				pad = 0
			}
			line := strings.Repeat(" ", pad) + msg
			if len(line) > CanvasCellsW {
				line = line[:CanvasCellsW]
			}
			lines[i] = line + strings.Repeat(" ", CanvasCellsW-len(line))
		} else {
			lines[i] = strings.Repeat(" ", CanvasCellsW)
		}
	}
	return strings.Join(lines, "\n")
}

func percent(labeled, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(labeled) / float64(total)
}
