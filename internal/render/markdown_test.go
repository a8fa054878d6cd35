package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownRendersHeadingText(t *testing.T) {
	r := New(80)

	out := r.Markdown("# Greetings\n\nHello there.")
	require.NotEmpty(t, out)
	assert.Contains(t, out, "Greetings")
	assert.Contains(t, out, "Hello there.")
}

func TestMarkdownFallsBackWithoutRenderer(t *testing.T) {
	r := &Renderer{}

	out := r.Markdown("[red] not a tag")
	assert.Equal(t, Plain("[red] not a tag"), out)
}

func TestPlainEscapesStyleTags(t *testing.T) {
	assert.Equal(t, "[red[]", Plain("[red]"))
	assert.Equal(t, "no tags here", Plain("no tags here"))
}

func TestPlainEscapesRegionTags(t *testing.T) {
	// untrusted text must not be able to open a clickable region
	assert.Equal(t, `["chip-0"[]`, Plain(`["chip-0"]`))
}

func TestMarkdownNeutralizesRegionTags(t *testing.T) {
	r := New(80)

	out := r.Markdown(`pick ["a"]this[""] one`)
	assert.NotContains(t, out, `["a"]`)
	assert.Contains(t, out, `["a"[]`)
	assert.Contains(t, out, `[""[]`)
}

func TestEscapeRegionsTargetsRegionSyntaxOnly(t *testing.T) {
	assert.Equal(t, `["abc"[]`, escapeRegions(`["abc"]`))
	assert.Equal(t, `[""[]`, escapeRegions(`[""]`))

	// quotes are not region id characters, so JSON snippets pass through
	assert.Equal(t, `["a", "b"]`, escapeRegions(`["a", "b"]`))
	// color tags are left for the view to interpret
	assert.Equal(t, "[red]bold", escapeRegions("[red]bold"))
}
