// Package pdf turns a user profile into a PDF file under the export
// directory.
//
// Contract note: ComposeProfile interpolates the remarks field into the
// document without escaping, and engines resolve any external resource the
// document references (images, stylesheets). Remarks are user-supplied, so a
// remark like `<img src="http://internal-host/...">` makes the server fetch
// that URL during rendering. This mirrors the behavior this application is
// used to demonstrate; see DESIGN.md before "fixing" it.
package pdf

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"salesapp/internal/domain"
)

// Engine rasterizes an HTML document to PDF.
type Engine interface {
	Render(ctx context.Context, doc string, out io.Writer) error
}

func ComposeProfile(u *domain.User) string {
	return fmt.Sprintf(`<html>
  <head>
    <title>%s's Profile</title>
  </head>
  <body>
    <h3>%s</h3>
    <p>%s %s</p>
    %s
  </body>
</html>
`, u.Email, u.Email, u.FirstName, u.LastName, u.Remarks)
}

// Filename is `<email with @ replaced>-<unix timestamp>.pdf`. Two exports
// for the same user within one second collide; the later write wins.
func Filename(email string, now time.Time) string {
	return strings.ReplaceAll(email, "@", "-") + "-" + strconv.FormatInt(now.Unix(), 10) + ".pdf"
}

type Exporter struct {
	Engine Engine
	Dir    string
}

func NewExporter(e Engine, dir string) *Exporter { return &Exporter{Engine: e, Dir: dir} }

func (e *Exporter) Export(ctx context.Context, u *domain.User) (string, error) {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", err
	}
	name := Filename(u.Email, time.Now())
	f, err := os.Create(filepath.Join(e.Dir, name))
	if err != nil {
		return "", err
	}
	if err := e.Engine.Render(ctx, ComposeProfile(u), f); err != nil {
		f.Close()
		_ = os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return name, nil
}
