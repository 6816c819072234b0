// Package render turns a resolved content record into a transport-ready send
// instruction: a payload kind, a body, an optional media reference, and an
// optional button panel.
package render

import (
	"strings"

	"clinicbot/internal/content"
)

// Kind selects the outbound payload type.
type Kind int

const (
	KindText Kind = iota
	KindPhoto
	KindVideo
	KindAnimation
	KindVoice
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case KindPhoto:
		return "photo"
	case KindVideo:
		return "video"
	case KindAnimation:
		return "animation"
	case KindVoice:
		return "voice"
	default:
		return "text"
	}
}

// Button is one labeled trigger in a panel.
type Button struct {
	Label   string
	Command string
}

// SendInstruction is a fully specified outbound reply. Buttons is nil when no
// valid panel could be built. MediaRef is empty for KindText.
type SendInstruction struct {
	Kind     Kind
	Body     string
	MediaRef string
	Buttons  []Button
}

// Text builds a plain-text instruction with no media and no panel.
func Text(body string) SendInstruction {
	return SendInstruction{Kind: KindText, Body: body}
}

// Render produces a SendInstruction from a content record. It never fails: a
// malformed or partially specified record degrades to plain text with no
// panel. When name is empty the {name} token is left in place rather than
// substituted with an empty string.
func Render(rec content.Record, name string) SendInstruction {
	body := rec.ResponseText
	if name != "" {
		body = strings.ReplaceAll(body, content.NamePlaceholder, name)
	}

	in := SendInstruction{
		Kind:    KindText,
		Body:    body,
		Buttons: buildPanel(rec),
	}

	if kind, ok := mediaKind(rec.MediaURL); ok {
		in.Kind = kind
		in.MediaRef = rec.MediaURL
	}

	return in
}

// buildPanel returns one button per text/command pair, one pair per row.
// Unequal list lengths invalidate the whole panel silently.
func buildPanel(rec content.Record) []Button {
	if len(rec.ButtonTexts) == 0 || len(rec.ButtonTexts) != len(rec.ButtonCommands) {
		return nil
	}

	buttons := make([]Button, 0, len(rec.ButtonTexts))
	for i, label := range rec.ButtonTexts {
		buttons = append(buttons, Button{Label: label, Command: rec.ButtonCommands[i]})
	}
	return buttons
}

// mediaKind maps a case-insensitive URL suffix to a payload kind. Unrecognized
// suffixes report false and the reply falls back to plain text.
func mediaKind(mediaURL string) (Kind, bool) {
	url := strings.ToLower(strings.TrimSpace(mediaURL))
	switch {
	case url == "":
		return KindText, false
	case strings.HasSuffix(url, ".jpg"), strings.HasSuffix(url, ".jpeg"), strings.HasSuffix(url, ".png"):
		return KindPhoto, true
	case strings.HasSuffix(url, ".mp4"):
		return KindVideo, true
	case strings.HasSuffix(url, ".gif"):
		return KindAnimation, true
	case strings.HasSuffix(url, ".ogg"):
		return KindVoice, true
	default:
		return KindText, false
	}
}
