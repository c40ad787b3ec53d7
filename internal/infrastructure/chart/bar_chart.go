// Package chart dibuja el gráfico de barras de activos por categoría como PNG.
package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/inventario-web/internal/application/analytics"
)

var _ analytics.ChartRenderer = (*Renderer)(nil)

var (
	colorBackground = color.White
	colorAxis       = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
	colorGrid       = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	colorBar        = color.NRGBA{R: 0, G: 70, B: 127, A: 255}
	colorText       = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
)

const (
	marginLeft   = 90.0
	marginRight  = 30.0
	marginTop    = 60.0
	marginBottom = 80.0
	gridLines    = 5
)

// Renderer dibuja con gg. Sin fuente TTF usa la fuente bitmap 7x13 incorporada.
type Renderer struct {
	width, height int
	ttf           *truetype.Font
	printer       *message.Printer
}

// New construye el renderer. fontPath vacío = fuente incorporada.
func New(width, height int, fontPath string) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("chart: tamaño inválido %dx%d", width, height)
	}
	r := &Renderer{
		width:   width,
		height:  height,
		printer: message.NewPrinter(language.English),
	}
	if strings.TrimSpace(fontPath) != "" {
		f, err := loadFont(fontPath)
		if err != nil {
			return nil, err
		}
		r.ttf = f
	}
	return r, nil
}

func loadFont(fontPath string) (*truetype.Font, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("chart: leer fuente: %w", err)
	}
	parsed, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("chart: parsear TTF: %w", err)
	}
	return parsed, nil
}

// face crea una cara nueva por render: las caras truetype no son seguras entre goroutines.
func (r *Renderer) face(size float64) font.Face {
	if r.ttf == nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(r.ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// BarChart dibuja una barra por elemento con el eje Y escalado a un máximo redondeado.
func (r *Renderer) BarChart(title, xLabel, yLabel string, bars []analytics.Bar) ([]byte, error) {
	w, h := float64(r.width), float64(r.height)
	dc := gg.NewContext(r.width, r.height)
	dc.SetColor(colorBackground)
	dc.Clear()

	titleFace, labelFace := r.face(20), r.face(12)

	dc.SetFontFace(titleFace)
	dc.SetColor(colorText)
	dc.DrawStringAnchored(title, w/2, marginTop/2, 0.5, 0.5)

	plotW := w - marginLeft - marginRight
	plotH := h - marginTop - marginBottom
	originX, originY := marginLeft, h-marginBottom
	if plotW <= 0 || plotH <= 0 {
		return nil, fmt.Errorf("chart: %dx%d no deja espacio para el área de dibujo", r.width, r.height)
	}

	maxValue := niceCeil(maxOf(bars))
	dc.SetFontFace(labelFace)

	// rejilla y marcas del eje Y
	dc.SetLineWidth(1)
	for i := 0; i <= gridLines; i++ {
		v := maxValue * float64(i) / gridLines
		y := originY - plotH*float64(i)/gridLines
		dc.SetColor(colorGrid)
		dc.DrawLine(originX, y, originX+plotW, y)
		dc.Stroke()
		dc.SetColor(colorText)
		dc.DrawStringAnchored(r.formatValue(v), originX-8, y, 1, 0.5)
	}

	if len(bars) == 0 {
		dc.DrawStringAnchored("Sin categorías", originX+plotW/2, originY-plotH/2, 0.5, 0.5)
	}

	slot := plotW / math.Max(float64(len(bars)), 1)
	barW := slot * 0.6
	for i, b := range bars {
		x := originX + slot*float64(i) + (slot-barW)/2
		bh := 0.0
		if maxValue > 0 {
			bh = plotH * math.Max(b.Value, 0) / maxValue
		}
		dc.SetColor(colorBar)
		dc.DrawRectangle(x, originY-bh, barW, bh)
		dc.Fill()

		dc.SetColor(colorText)
		dc.DrawStringAnchored(fitLabel(dc, b.Label, slot-4), x+barW/2, originY+14, 0.5, 0.5)
	}

	// ejes
	dc.SetColor(colorAxis)
	dc.SetLineWidth(2)
	dc.DrawLine(originX, originY, originX+plotW, originY)
	dc.DrawLine(originX, originY, originX, originY-plotH)
	dc.Stroke()

	dc.DrawStringAnchored(xLabel, originX+plotW/2, h-marginBottom/3, 0.5, 0.5)
	dc.Push()
	dc.RotateAbout(gg.Radians(-90), marginLeft/4, originY-plotH/2)
	dc.DrawStringAnchored(yLabel, marginLeft/4, originY-plotH/2, 0.5, 0.5)
	dc.Pop()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("chart: codificar PNG: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) formatValue(v float64) string {
	return r.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

func maxOf(bars []analytics.Bar) float64 {
	m := 0.0
	for _, b := range bars {
		if b.Value > m {
			m = b.Value
		}
	}
	return m
}

// niceCeil redondea hacia arriba a 1, 2, 2.5, 5 o 10 por la potencia de diez correspondiente.
func niceCeil(v float64) float64 {
	if v <= 0 {
		return 1
	}
	exp := math.Pow(10, math.Floor(math.Log10(v)))
	for _, step := range []float64{1, 2, 2.5, 5, 10} {
		if c := step * exp; c >= v {
			return c
		}
	}
	return 10 * exp
}

// fitLabel recorta la etiqueta hasta que quepa en maxW píxeles.
func fitLabel(dc *gg.Context, s string, maxW float64) string {
	if w, _ := dc.MeasureString(s); w <= maxW {
		return s
	}
	runes := []rune(s)
	for len(runes) > 1 {
		runes = runes[:len(runes)-1]
		cand := string(runes) + ".."
		if w, _ := dc.MeasureString(cand); w <= maxW {
			return cand
		}
	}
	return string(runes)
}
