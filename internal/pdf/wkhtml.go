package pdf

import (
	"context"
	"io"
	"strings"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
)

// WKEngine renders through the wkhtmltopdf binary, which fetches remote
// resources referenced by the document while rendering.
type WKEngine struct{}

func (WKEngine) Render(ctx context.Context, doc string, out io.Writer) error {
	pg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return err
	}
	page := wkhtmltopdf.NewPageReader(strings.NewReader(doc))
	pg.AddPage(page)
	pg.SetOutput(out)
	return pg.CreateContext(ctx)
}
