// This file is part of rcmapper.
//
// rcmapper is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rcmapper is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rcmapper.  If not, see <https://www.gnu.org/licenses/>.

// Package monitor writes channel values to a terminal. It is intended to be
// used as the consumer of an inputs.Inputs instance.
package monitor

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Monitor renders channel values on a single line. Channels that changed in
// the most recent cycle are highlighted.
type Monitor struct {
	output io.Writer
	colour bool

	dim    lipgloss.Style
	active lipgloss.Style
	label  lipgloss.Style

	prev []int
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// If colour is false no styling is used.
func NewMonitor(output io.Writer, colour bool) *Monitor {
	r := lipgloss.NewRenderer(output)
	return &Monitor{
		output: output,
		colour: colour,
		dim:    r.NewStyle().Foreground(lipgloss.Color("#888")),
		active: r.NewStyle().Foreground(lipgloss.Color("#fff")).Bold(true),
		label:  r.NewStyle().Foreground(lipgloss.Color("#555")),
	}
}

// Line returns the rendered line for the channel values without writing it.
func (m *Monitor) Line(snapshot []int) string {
	var s strings.Builder
	for i, v := range snapshot {
		if i > 0 {
			s.WriteString(" ")
		}

		label := fmt.Sprintf("%d:", i)
		value := fmt.Sprintf("%4d", v)

		if m.colour {
			label = m.label.Render(label)
			if i < len(m.prev) && m.prev[i] != v {
				value = m.active.Render(value)
			} else {
				value = m.dim.Render(value)
			}
		}

		s.WriteString(label)
		s.WriteString(value)
	}
	return s.String()
}

// Render writes the channel values to the output, replacing the previous line.
// Nothing is written if the values have not changed.
func (m *Monitor) Render(snapshot []int) {
	if m.prev != nil && slices.Equal(m.prev, snapshot) {
		return
	}
	fmt.Fprintf(m.output, "\r%s", m.Line(snapshot))
	m.prev = append(m.prev[:0], snapshot...)
}

// End the line. Should be called once rendering has finished.
func (m *Monitor) End() {
	if m.prev != nil {
		fmt.Fprintln(m.output)
	}
}
