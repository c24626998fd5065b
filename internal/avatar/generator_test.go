package avatar

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Marry Doe", "MD"},
		{"marry", "M"},
		{"Marry Ann Doe", "MA"},
		{"  ", "?"},
		{"", "?"},
		{"(Marry) Doe", "MD"},
		{"élodie durand", "ÉD"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Initials(tt.name), "initials of %q", tt.name)
	}
}

func TestGenerate_WritesPNG(t *testing.T) {
	var buf bytes.Buffer

	err := Generate(&buf, "Marry Doe", "user_1", 64)
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())

	// corners sit outside the circle and stay transparent
	_, _, _, a := img.At(0, 0).RGBA()
	assert.Zero(t, a)
	_, _, _, a = img.At(32, 10).RGBA()
	assert.NotZero(t, a)
}

func TestGenerate_DefaultSize(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Generate(&buf, "", "", 0))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, img.Bounds().Dx())
}

func TestPick_IsStable(t *testing.T) {
	assert.Equal(t, pick("user_1", len(gradients)), pick("user_1", len(gradients)))
	assert.Less(t, pick("anything", len(gradients)), len(gradients))
}
