package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sem485/eduforge-lms/models"
)

func block(t models.BlockType, content string) models.Block {
	b := models.NewBlock(t)
	b.Content = content
	return b
}

func TestRenderAllKeepsOrderAndCount(t *testing.T) {
	seq := []models.Block{
		block(models.BlockText, "one"),
		block(models.BlockQuote, "two"),
		block(models.BlockDivider, ""),
		block(models.BlockType("FUTURE"), "three"),
	}

	for _, s := range []Settings{DefaultSettings(), PresentationSettings(), {Theme: ThemeSepia, FontSize: FontSmall}} {
		out := RenderAll(seq, s)
		require.Len(t, out, len(seq))
		assert.Contains(t, out[0], "one")
		assert.Contains(t, out[1], "two")
		assert.Contains(t, out[2], "block-divider")
		assert.Contains(t, out[3], "block-unsupported")
	}
}

func TestRenderUnknownTypeShowsPlaceholder(t *testing.T) {
	out := Render(block(models.BlockType("HOLOGRAM"), "x"), DefaultSettings())

	assert.Contains(t, out, "block-unsupported")
	assert.Contains(t, out, "HOLOGRAM")
}

func TestRenderTextEscapesHTML(t *testing.T) {
	out := Render(block(models.BlockText, `<script>alert("x")</script>`), DefaultSettings())

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestRenderListSplitsAndSkipsBlankLines(t *testing.T) {
	out := Render(block(models.BlockList, "a\nb\n\nc"), DefaultSettings())

	assert.Equal(t, "<li>a</li><li>b</li><li>c</li>", substringBetween(t, out, "<ul>", "</ul>"))
}

func TestRenderListNumbered(t *testing.T) {
	b := block(models.BlockList, "first\nsecond")
	b.Metadata.Style.ListType = models.ListNumber

	out := Render(b, DefaultSettings())

	assert.Contains(t, out, "<ol>")
	assert.Contains(t, out, "</ol>")
}

func TestRenderVideoEmbedsYouTube(t *testing.T) {
	out := Render(block(models.BlockVideoLink, "https://youtu.be/abc123"), DefaultSettings())

	assert.Contains(t, out, "<iframe")
	assert.Contains(t, out, "https://www.youtube.com/embed/abc123")
}

func TestRenderVideoFallsBackToLink(t *testing.T) {
	out := Render(block(models.BlockVideoLink, "https://vimeo.com/12345"), DefaultSettings())

	assert.NotContains(t, out, "<iframe")
	assert.Contains(t, out, `<a href="https://vimeo.com/12345"`)
}

func TestRenderCalloutDefaultsToInfo(t *testing.T) {
	out := Render(block(models.BlockCallout, "heads up"), DefaultSettings())

	assert.Contains(t, out, "callout-info")
}

func TestRenderCalloutVariant(t *testing.T) {
	b := block(models.BlockCallout, "careful")
	b.Metadata.Variant = models.CalloutWarning

	out := Render(b, DefaultSettings())

	assert.Contains(t, out, "callout-warning")
}

func TestRenderNoteVisibleInViewer(t *testing.T) {
	out := Render(block(models.BlockNote, "remember this"), DefaultSettings())

	assert.Contains(t, out, "block-note")
	assert.Contains(t, out, "remember this")
}

func TestRenderImageCaption(t *testing.T) {
	b := block(models.BlockImage, "https://example.com/pic.png")
	b.Metadata.Caption = "A picture"

	out := Render(b, DefaultSettings())

	assert.Contains(t, out, "figcaption")
	assert.Contains(t, out, "A picture")
}

func TestShowBlocksTogglesWrapperClass(t *testing.T) {
	s := DefaultSettings()

	out := Render(block(models.BlockText, "x"), s)
	assert.Contains(t, out, `class="block block-text`)

	s.ShowBlocks = false
	out = Render(block(models.BlockText, "x"), s)
	assert.Contains(t, out, `class="block-text`)
	assert.NotContains(t, out, `class="block block-text`)

	// The per-type class survives either way, content is never hidden
	assert.Contains(t, out, "x")
}

func TestNormalizeRejectsUnknownValues(t *testing.T) {
	s := Settings{Theme: "neon", FontSize: "gigantic"}.Normalize()

	assert.Equal(t, ThemeLight, s.Theme)
	assert.Equal(t, FontMedium, s.FontSize)
}

func TestPresentationSettingsLocked(t *testing.T) {
	s := PresentationSettings()

	assert.Equal(t, ThemeDark, s.Theme)
	assert.Equal(t, FontHuge, s.FontSize)
}

func TestEmbedURL(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		embed bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ", true},
		{"https://youtu.be/abc123", "https://www.youtube.com/embed/abc123", true},
		{"https://youtu.be/abc123?t=42", "https://www.youtube.com/embed/abc123", true},
		{"https://www.youtube.com/watch?list=PL123", "https://www.youtube.com/watch?list=PL123", false},
		{"https://example.com/video.mp4", "https://example.com/video.mp4", false},
	}
	for _, tc := range tests {
		got, ok := EmbedURL(tc.in)
		assert.Equal(t, tc.embed, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func substringBetween(t *testing.T, s, start, end string) string {
	t.Helper()
	i := strings.Index(s, start)
	j := strings.Index(s, end)
	require.GreaterOrEqual(t, i, 0, "%q not found in %q", start, s)
	require.GreaterOrEqual(t, j, 0, "%q not found in %q", end, s)
	return s[i+len(start) : j]
}
