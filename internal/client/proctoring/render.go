package proctoring

import (
	"bytes"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
)

// RenderText writes the overlay panel as plain text.
func (o *Overlay) RenderText(w io.Writer) error {
	v := o.View()
	_, err := fmt.Fprintf(w, "Proctoring\n  Camera: %s\n  Warnings: %d\n  Violations: %d\n",
		cameraLabel(v.Stream), v.Warnings, v.Violations)
	return err
}

// RenderHTML writes the overlay panel as an HTML fragment.
func (o *Overlay) RenderHTML(w io.Writer) error {
	v := o.View()

	md := fmt.Sprintf("#### Proctoring\n\n- Camera: %s\n- Warnings: **%d**\n- Violations: **%d**\n",
		cameraLabel(v.Stream), v.Warnings, v.Violations)

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return fmt.Errorf("render overlay: %w", err)
	}

	if _, err := io.WriteString(w, `<div class="proctor-overlay">`+"\n"); err != nil {
		return err
	}
	if _, err := buf.WriteTo(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</div>\n")
	return err
}

func cameraLabel(s *MediaStream) string {
	if s == nil {
		return "off"
	}
	if s.Label == "" {
		return s.ID
	}
	return s.Label
}
