package session

import (
	"fmt"

	"github.com/san-kum/bytelens/internal/analysis"
)

// Status is the read-only summary presenters show next to the canvas.
type Status struct {
	Name       string
	Size       int
	Zoom       int
	RowWidth   int
	Offset     int
	OffsetFine int
	Stride     int
	Scheme     string
	Canvas     string
	Progress   float64
	Visible    int
	Entropy    float64
}

// Status describes the current view. Entropy covers the bytes the canvas shows.
func (s *Session) Status() Status {
	st := s.Settings
	visible := st.VisibleBytes(s.Canvas.Width, s.Canvas.Height)
	return Status{
		Name:       s.File.Name,
		Size:       s.File.Len(),
		Zoom:       st.Zoom,
		RowWidth:   st.RowWidth,
		Offset:     st.Offset,
		OffsetFine: st.OffsetFine,
		Stride:     st.Stride,
		Scheme:     st.Scheme.String(),
		Canvas:     fmt.Sprintf("%dx%d", s.Canvas.Width, s.Canvas.Height),
		Progress:   st.Progress(),
		Visible:    visible,
		Entropy:    analysis.Entropy(s.window(visible)),
	}
}

func (s *Session) window(n int) []byte {
	start := s.Settings.BaseOffset()
	if start < 0 || start >= s.File.Len() {
		return nil
	}
	end := start + n
	if end > s.File.Len() || end < start {
		end = s.File.Len()
	}
	return s.File.Data[start:end]
}
