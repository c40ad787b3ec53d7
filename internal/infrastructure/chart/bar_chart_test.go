package chart

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"

	"github.com/jhoicas/inventario-web/internal/application/analytics"
)

func TestBarChart_GeneraPNGDelTamanoConfigurado(t *testing.T) {
	r, err := New(640, 480, "")
	require.NoError(t, err)

	out, err := r.BarChart("Current Assets by Category", "Category", "Total Value", []analytics.Bar{
		{Label: "A", Value: 15},
		{Label: "B", Value: 7.5},
		{Label: "C", Value: 0},
	})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 480, img.Bounds().Dy())
}

func TestBarChart_SinBarras(t *testing.T) {
	r, err := New(320, 240, "")
	require.NoError(t, err)

	out, err := r.BarChart("vacío", "x", "y", nil)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(out))
	assert.NoError(t, err)
}

func TestNew_Errores(t *testing.T) {
	_, err := New(0, 100, "")
	assert.Error(t, err)

	_, err = New(100, 100, "/no/existe/fuente.ttf")
	assert.Error(t, err)
}

func TestNiceCeil(t *testing.T) {
	for in, want := range map[float64]float64{
		0:    1,
		15:   20,
		7.5:  10,
		22.5: 25,
		1:    1,
		430:  500,
	} {
		assert.InDelta(t, want, niceCeil(in), 1e-9, "niceCeil(%v)", in)
	}
}

func TestFormatValue(t *testing.T) {
	r, err := New(100, 100, "")
	require.NoError(t, err)
	assert.Equal(t, "1,234.5", r.formatValue(1234.5))
	assert.Equal(t, "0", r.formatValue(0))
}

func TestFitLabel(t *testing.T) {
	dc := gg.NewContext(10, 10)
	dc.SetFontFace(basicfont.Face7x13)

	assert.Equal(t, "abc", fitLabel(dc, "abc", 100))
	got := fitLabel(dc, "una categoría muy larga", 50)
	w, _ := dc.MeasureString(got)
	assert.LessOrEqual(t, w, 50.0)
	assert.Contains(t, got, "..")
}
