package ui

import (
	"testing"

	"github.com/bz888/banter/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestDetectImageMIMEByExtension(t *testing.T) {
	assert.Equal(t, "image/png", detectImageMIME("shot.PNG", nil))
	assert.Equal(t, "image/jpeg", detectImageMIME("photo.jpg", nil))
	assert.Equal(t, "image/jpeg", detectImageMIME("photo.jpeg", nil))
	assert.Equal(t, "image/gif", detectImageMIME("anim.gif", nil))
	assert.Equal(t, "image/webp", detectImageMIME("pic.webp", nil))
	assert.Equal(t, "image/bmp", detectImageMIME("old.bmp", nil))
}

func TestDetectImageMIMEByMagicBytes(t *testing.T) {
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	gif := []byte("GIF89a")
	bmp := []byte{0x42, 0x4D, 0x00, 0x00}
	webp := []byte("RIFF\x00\x00\x00\x00WEBP")

	assert.Equal(t, "image/png", detectImageMIME("noext", png))
	assert.Equal(t, "image/jpeg", detectImageMIME("noext", jpeg))
	assert.Equal(t, "image/gif", detectImageMIME("noext", gif))
	assert.Equal(t, "image/bmp", detectImageMIME("noext", bmp))
	assert.Equal(t, "image/webp", detectImageMIME("noext", webp))
}

func TestDetectImageMIMEUnknown(t *testing.T) {
	assert.Equal(t, "", detectImageMIME("doc.txt", []byte("just text")))
	assert.Equal(t, "", detectImageMIME("", nil))
}

func TestBotName(t *testing.T) {
	prev := meta
	defer func() { meta = prev }()

	meta = nil
	assert.Equal(t, "Bot", botName())

	meta = &config.Metadata{Name: "Maple"}
	assert.Equal(t, "Maple", botName())
}
