package interactive

import (
	"fmt"
	"io"
	"path/filepath"

	"fjacquet/fire-report/internal/config"
	"fjacquet/fire-report/internal/fileutils"
	"fjacquet/fire-report/internal/logging"
	"fjacquet/fire-report/internal/reporterror"

	"github.com/pkg/browser"
)

// Sink displays interactive pages.
type Sink interface {
	Show(p *Page) error
}

// NopSink discards every page.
type NopSink struct{}

// Show implements Sink.
func (NopSink) Show(*Page) error { return nil }

// HTMLSink writes each page to <Dir>/<name>.html, overwriting.
type HTMLSink struct {
	Dir    string
	logger logging.Logger
}

// NewHTMLSink creates an HTMLSink.
func NewHTMLSink(dir string, logger logging.Logger) *HTMLSink {
	return &HTMLSink{Dir: dir, logger: logger}
}

// Path returns the file a page is written to.
func (s *HTMLSink) Path(p *Page) string {
	return filepath.Join(s.Dir, p.Name+".html")
}

// Show implements Sink.
func (s *HTMLSink) Show(p *Page) error {
	path := s.Path(p)
	err := fileutils.CreateWith(path, func(w io.Writer) error {
		if err := p.Render(w); err != nil {
			return &reporterror.FileError{Op: "write", Path: path, Err: err}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if s.logger != nil {
		s.logger.Debug("Wrote interactive page", logging.F(logging.FieldFile, path))
	}
	return nil
}

// BrowserSink writes pages like HTMLSink and opens them in the default browser.
type BrowserSink struct {
	HTML *HTMLSink
	open func(path string) error
}

// NewBrowserSink creates a BrowserSink backed by pkg/browser.
func NewBrowserSink(dir string, logger logging.Logger) *BrowserSink {
	return &BrowserSink{HTML: NewHTMLSink(dir, logger), open: browser.OpenFile}
}

// Show implements Sink.
func (s *BrowserSink) Show(p *Page) error {
	if err := s.HTML.Show(p); err != nil {
		return err
	}
	path := s.HTML.Path(p)
	if err := s.open(path); err != nil {
		return fmt.Errorf("open %s in browser: %w", path, err)
	}
	return nil
}

// NewSink returns the sink for a configured interactive mode.
func NewSink(mode, dir string, logger logging.Logger) (Sink, error) {
	switch mode {
	case config.InteractiveOff, "":
		return NopSink{}, nil
	case config.InteractiveHTML:
		return NewHTMLSink(dir, logger), nil
	case config.InteractiveBrowser:
		return NewBrowserSink(dir, logger), nil
	default:
		return nil, fmt.Errorf("unknown interactive mode: %s", mode)
	}
}
