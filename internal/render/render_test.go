package render_test

import (
	"testing"

	"clinicbot/internal/content"
	"clinicbot/internal/render"
)

func TestRenderMediaKind(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		mediaURL  string
		wantKind  render.Kind
		wantMedia bool
	}{
		{name: "empty url", mediaURL: "", wantKind: render.KindText},
		{name: "jpg photo", mediaURL: "https://cdn.example.com/pic.jpg", wantKind: render.KindPhoto, wantMedia: true},
		{name: "jpeg photo", mediaURL: "https://cdn.example.com/pic.jpeg", wantKind: render.KindPhoto, wantMedia: true},
		{name: "png photo", mediaURL: "https://cdn.example.com/pic.png", wantKind: render.KindPhoto, wantMedia: true},
		{name: "uppercase suffix", mediaURL: "https://cdn.example.com/PIC.JPG", wantKind: render.KindPhoto, wantMedia: true},
		{name: "mp4 video", mediaURL: "https://cdn.example.com/clip.mp4", wantKind: render.KindVideo, wantMedia: true},
		{name: "gif animation", mediaURL: "https://cdn.example.com/anim.gif", wantKind: render.KindAnimation, wantMedia: true},
		{name: "ogg voice", mediaURL: "https://cdn.example.com/note.ogg", wantKind: render.KindVoice, wantMedia: true},
		{name: "unrecognized suffix falls back to text", mediaURL: "https://cdn.example.com/doc.pdf", wantKind: render.KindText},
		{name: "no suffix falls back to text", mediaURL: "https://cdn.example.com/stream", wantKind: render.KindText},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := content.Record{ResponseText: "body", MediaURL: tc.mediaURL}
			in := render.Render(rec, "")

			if in.Kind != tc.wantKind {
				t.Errorf("Kind = %v, want %v", in.Kind, tc.wantKind)
			}
			if tc.wantMedia && in.MediaRef != tc.mediaURL {
				t.Errorf("MediaRef = %q, want %q", in.MediaRef, tc.mediaURL)
			}
			if !tc.wantMedia && in.MediaRef != "" {
				t.Errorf("MediaRef = %q, want empty for text fallback", in.MediaRef)
			}
			if in.Body != "body" {
				t.Errorf("Body = %q, want %q", in.Body, "body")
			}
		})
	}
}

func TestRenderNameSubstitution(t *testing.T) {
	t.Parallel()

	rec := content.Record{ResponseText: "Hello, {name}! Welcome back, {name}."}

	withName := render.Render(rec, "Anna")
	if withName.Body != "Hello, Anna! Welcome back, Anna." {
		t.Errorf("Body = %q, want both tokens substituted", withName.Body)
	}

	// Without a known name the token stays literal rather than becoming an
	// empty-looking reply.
	withoutName := render.Render(rec, "")
	if withoutName.Body != rec.ResponseText {
		t.Errorf("Body = %q, want token left in place", withoutName.Body)
	}
}

func TestRenderButtonPanel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		texts    []string
		commands []string
		want     int
	}{
		{
			name:     "matched pairs build a panel",
			texts:    []string{"A", "B"},
			commands: []string{"x", "y"},
			want:     2,
		},
		{
			name:     "length mismatch drops the panel silently",
			texts:    []string{"A", "B"},
			commands: []string{"x"},
			want:     0,
		},
		{
			name:     "texts without commands drop the panel",
			texts:    []string{"A"},
			commands: nil,
			want:     0,
		},
		{
			name: "no buttons at all",
			want: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := content.Record{
				ResponseText:   "pick one",
				ButtonTexts:    tc.texts,
				ButtonCommands: tc.commands,
			}
			in := render.Render(rec, "")

			if len(in.Buttons) != tc.want {
				t.Fatalf("got %d buttons, want %d", len(in.Buttons), tc.want)
			}
			for i, btn := range in.Buttons {
				if btn.Label != tc.texts[i] || btn.Command != tc.commands[i] {
					t.Errorf("button %d = %+v, want {%s %s}", i, btn, tc.texts[i], tc.commands[i])
				}
			}
		})
	}
}

func TestRenderIsTotal(t *testing.T) {
	t.Parallel()

	// An entirely empty record still yields a valid plain-text instruction.
	in := render.Render(content.Record{}, "")

	if in.Kind != render.KindText {
		t.Errorf("Kind = %v, want KindText", in.Kind)
	}
	if in.MediaRef != "" || in.Buttons != nil {
		t.Errorf("empty record rendered with media or panel: %+v", in)
	}
}
