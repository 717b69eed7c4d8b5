package export

import (
	"bytes"
	"image/png"

	"github.com/go-pdf/fpdf"

	"github.com/jonathan/resume-builder/internal/types"
)

// exportPDF embeds the 2x raster of the preview into a single A4
// portrait page, scaled to fit while preserving aspect ratio, centered
// horizontally and top-aligned.
func (e *Exporter) exportPDF(r *types.Resume, raster []byte) (*Artifact, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(raster))
	if err != nil {
		return nil, &EncodeError{Format: FormatPDF, Message: "invalid raster image", Cause: err}
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	pageW, pageH := doc.GetPageSize()
	imgW := float64(cfg.Width)
	imgH := float64(cfg.Height)

	ratio := pageW / imgW
	if hr := pageH / imgH; hr < ratio {
		ratio = hr
	}
	x := (pageW - imgW*ratio) / 2
	y := 0.0

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("resume", opts, bytes.NewReader(raster))
	doc.ImageOptions("resume", x, y, imgW*ratio, imgH*ratio, false, opts, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, &EncodeError{Format: FormatPDF, Message: "failed to write document", Cause: err}
	}

	return &Artifact{
		Filename:    Filename(r.PersonalInfo.FullName, "pdf"),
		ContentType: FormatPDF.ContentType(),
		Data:        buf.Bytes(),
	}, nil
}
