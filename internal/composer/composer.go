// Package composer assembles exported chart images into the PDF report.
package composer

import (
	"errors"
	"fmt"

	"fjacquet/fire-report/internal/fileutils"
	"fjacquet/fire-report/internal/logging"
	"fjacquet/fire-report/internal/reporterror"

	"github.com/go-pdf/fpdf"
)

// Page layout in millimetres.
const (
	cellWidth   = 200.0
	cellHeight  = 10.0
	imageX      = 10.0
	imageY      = 30.0
	imageWidth  = 180.0
	titleSize   = 15.0
	captionSize = 12.0
	fontFamily  = "Arial"
)

// Section is one page of the report: a caption above an image.
type Section struct {
	Caption   string
	ImagePath string
}

// Composer writes the report PDF.
type Composer struct {
	title  string
	logger logging.Logger
}

// New creates a Composer printing title as heading of the first page.
func New(title string, logger logging.Logger) *Composer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Composer{title: title, logger: logger}
}

// Compose writes one page per section to outPath, overwriting it. The first
// page carries the report title. Captions are numbered from 1.
func (c *Composer) Compose(sections []Section, outPath string) error {
	if len(sections) == 0 {
		return errors.New("compose: no sections")
	}
	for _, s := range sections {
		if err := fileutils.RequireFile(s.ImagePath); err != nil {
			return err
		}
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i, s := range sections {
		pdf.AddPage()
		if i == 0 {
			pdf.SetFont(fontFamily, "", titleSize)
			pdf.CellFormat(cellWidth, cellHeight, tr(c.title), "", 1, "C", false, 0, "")
		}
		pdf.SetFont(fontFamily, "", captionSize)
		pdf.CellFormat(cellWidth, cellHeight, tr(fmt.Sprintf("%d. %s", i+1, s.Caption)), "", 1, "", false, 0, "")
		pdf.ImageOptions(s.ImagePath, imageX, imageY, imageWidth, 0, false,
			fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return &reporterror.FileError{Op: "compose", Path: outPath, Err: err}
	}
	pages := pdf.PageCount()
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return &reporterror.FileError{Op: "write", Path: outPath, Err: err}
	}

	c.logger.Info("Wrote PDF report",
		logging.F(logging.FieldFile, outPath),
		logging.F(logging.FieldPages, pages))
	return nil
}
