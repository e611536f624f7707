package graph

import (
	"bytes"
	"context"
	"errors"
	"image/png"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	. "github.com/tinywasm/fmt"

	"github.com/tinywasm/graph/errs"
)

// Format is an export file type.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
	PDF Format = "pdf"
)

// Formats lists the export buttons in display order.
var Formats = []Format{PNG, SVG, PDF}

func (f Format) mime() string {
	switch f {
	case SVG:
		return "image/svg+xml;charset=utf-8"
	case PDF:
		return "application/pdf"
	default:
		return "image/png"
	}
}

// ParseFormat validates an export format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == Convert(s).ToLower().String() {
			return f, nil
		}
	}
	return "", errs.New("unknown export format '"+s+"'")
}

// svgStyle is injected into every exported SVG document.
const svgStyle = `
.chartjs-render-monitor {
  display: block;
  height: 100%;
  width: 100%;
}
`

const fileStemFallback = "grafik"

// FileName turns a chart title into a download name: every rune that is
// not an ASCII letter or digit becomes '_', then the result is lowercased.
func FileName(title string, f Format) string {
	if title == "" {
		title = fileStemFallback
	}
	b := make([]byte, 0, len(title))
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b = append(b, byte(r))
		default:
			b = append(b, '_')
		}
	}
	return Convert(string(b)).ToLower().String() + "." + string(f)
}

// Exporter writes rendered charts to files.
//
// Failures are logged and passed to Notify with a message naming the
// format; the error is also returned. Nothing is retried and no file is
// written on failure.
type Exporter struct {
	// Save delivers the finished file.
	Save func(name string, data []byte, mime string) error
	// Notify shows a failure to the user.
	Notify func(message string)
	// Log receives diagnostics.
	Log func(message ...any)
	// ReadFile loads FontPath.
	ReadFile func(path string) ([]byte, error)
	// FontPath is an optional UTF-8 TrueType font for the PDF heading.
	FontPath string
}

// Export dispatches on f.
func (e *Exporter) Export(ctx context.Context, c *Container, title string, f Format) error {
	switch f {
	case PNG:
		return e.PNG(ctx, c, title)
	case SVG:
		return e.SVG(ctx, c, title)
	case PDF:
		return e.PDF(ctx, c, title)
	default:
		return errs.New("unknown export format '"+string(f)+"'")
	}
}

// PNG rasterizes the chart and saves it as <stem>.png.
func (e *Exporter) PNG(ctx context.Context, c *Container, title string) error {
	return e.run(ctx, PNG, title, func() ([]byte, error) {
		return c.Rasterize()
	})
}

// SVG saves the chart's embedded vector markup with the style block added.
// A chart rendered as raster has no markup and the export is refused.
func (e *Exporter) SVG(ctx context.Context, c *Container, title string) error {
	return e.run(ctx, SVG, title, func() ([]byte, error) {
		if c == nil {
			return nil, errs.ErrNoChart
		}
		return injectStyle(c.Markup(), svgStyle)
	})
}

// PDF places the rasterized chart on a landscape page under a centered
// heading and saves it as <stem>.pdf.
func (e *Exporter) PDF(ctx context.Context, c *Container, title string) error {
	return e.run(ctx, PDF, title, func() ([]byte, error) {
		img, err := c.Rasterize()
		if err != nil {
			return nil, err
		}
		return e.buildPDF(img, title)
	})
}

func (e *Exporter) run(ctx context.Context, f Format, title string, build func() ([]byte, error)) error {
	id := uuid.NewString()
	name := FileName(title, f)

	err := ctx.Err()
	var data []byte
	if err == nil {
		data, err = build()
	}
	if err == nil {
		if e.Save == nil {
			err = errs.ErrNoFileWriter
		} else {
			err = e.Save(name, data, f.mime())
		}
	}
	if err != nil {
		e.log("export", id, string(f), "failed:", err)
		e.notify(failureMessage(f, err))
		return err
	}

	e.log("export", id, string(f), name, len(data), "bytes")
	return nil
}

func failureMessage(f Format, err error) string {
	if errors.Is(err, errs.ErrNoVectorContent) {
		return "SVG element not found. Make sure the chart has rendered as vector output."
	}
	return Sprintf("An error occurred while exporting as %s.", Convert(string(f)).ToUpper().String())
}

func (e *Exporter) log(args ...any) {
	if e.Log != nil {
		e.Log(args...)
	}
}

func (e *Exporter) notify(msg string) {
	if e.Notify != nil {
		e.Notify(msg)
	}
}

// injectStyle copies the first <svg> element of markup and appends a
// <style> child before its closing tag.
func injectStyle(markup []byte, css string) ([]byte, error) {
	start := bytes.Index(markup, []byte("<svg"))
	if start < 0 {
		return nil, errs.ErrNoVectorContent
	}
	end := bytes.LastIndex(markup, []byte("</svg>"))
	if end < start {
		return nil, errs.ErrNoVectorContent
	}

	var out bytes.Buffer
	out.Write(markup[start:end])
	out.WriteString("<style>")
	out.WriteString(css)
	out.WriteString("</style>")
	out.WriteString("</svg>")
	return out.Bytes(), nil
}

const (
	pdfHeadingSize = 16
	pdfHeadingY    = 15
	pdfImageOffset = 10
	pdfFontFamily  = "heading"
)

func (e *Exporter) buildPDF(img []byte, title string) ([]byte, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(img))
	if err != nil {
		return nil, errs.New("read chart image", ':', err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, errs.ErrEmptyImage
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "L",
		UnitStr:        "mm",
		SizeStr:        "A4",
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	pageW, pageH := doc.GetPageSize()
	imgW, imgH := float64(cfg.Width), float64(cfg.Height)
	ratio := min(pageW/imgW, pageH/imgH)
	w, h := imgW*ratio, imgH*ratio
	x := (pageW - w) / 2
	y := (pageH - h) / 2

	heading := title
	if heading == "" {
		heading = "Grafik"
	}
	e.setHeadingFont(doc, &heading)
	doc.Text(pageW/2-doc.GetStringWidth(heading)/2, pdfHeadingY, heading)

	doc.RegisterImageOptionsReader("chart", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(img))
	doc.ImageOptions("chart", x, y+pdfImageOffset, w, h, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, errs.New("build pdf", ':', err)
	}
	return buf.Bytes(), nil
}

// setHeadingFont uses FontPath when it loads, else Helvetica with text
// translated to cp1252.
func (e *Exporter) setHeadingFont(doc *fpdf.Fpdf, text *string) {
	if e.FontPath != "" && e.ReadFile != nil {
		font, err := e.ReadFile(e.FontPath)
		if err == nil {
			doc.AddUTF8FontFromBytes(pdfFontFamily, "", font)
			if !doc.Err() {
				doc.SetFont(pdfFontFamily, "", pdfHeadingSize)
				return
			}
			err = doc.Error()
			doc.ClearError()
		}
		e.log("pdf font", e.FontPath, "not usable:", err)
	}
	doc.SetFont("Helvetica", "", pdfHeadingSize)
	*text = doc.UnicodeTranslatorFromDescriptor("")(*text)
}
