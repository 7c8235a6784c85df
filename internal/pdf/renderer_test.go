package pdf_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"salesapp/internal/domain"
	"salesapp/internal/pdf"
)

type echoEngine struct{}

func (echoEngine) Render(_ context.Context, doc string, out io.Writer) error {
	_, err := io.WriteString(out, doc)
	return err
}

type failEngine struct{}

func (failEngine) Render(context.Context, string, io.Writer) error {
	return errors.New("render failed")
}

func TestComposeProfileKeepsRemarksVerbatim(t *testing.T) {
	u := &domain.User{
		Email:     "alice@x.com",
		FirstName: "Alice",
		LastName:  "Doe",
		Remarks:   `<img src="http://attacker.test/pixel.gif">`,
	}
	doc := pdf.ComposeProfile(u)

	for _, want := range []string{"alice@x.com", "Alice Doe", u.Remarks} {
		if !strings.Contains(doc, want) {
			t.Fatalf("document missing %q:\n%s", want, doc)
		}
	}
	// Remarks go in unescaped, so markup in them reaches the engine as-is.
	if strings.Contains(doc, "&lt;img") {
		t.Fatal("remarks were escaped")
	}
}

func TestFilename(t *testing.T) {
	got := pdf.Filename("alice@x.com", time.Unix(1700000000, 0))
	if got != "alice-x.com-1700000000.pdf" {
		t.Fatalf("unexpected filename: %s", got)
	}
}

func TestExporterCreatesDirAndWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "static", "pdf") // does not exist yet
	exp := pdf.NewExporter(echoEngine{}, dir)

	u := &domain.User{Email: "alice@x.com", FirstName: "Alice", LastName: "Doe", Remarks: "hello"}
	name, err := exp.Export(context.Background(), u)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(b), "alice@x.com") || !strings.Contains(string(b), "hello") {
		t.Fatalf("output missing profile content:\n%s", b)
	}

	// A second export into the now-existing directory must not fail.
	if _, err := exp.Export(context.Background(), u); err != nil {
		t.Fatalf("re-export: %v", err)
	}
}

func TestExporterRemovesFileOnEngineFailure(t *testing.T) {
	dir := t.TempDir()
	exp := pdf.NewExporter(failEngine{}, dir)

	if _, err := exp.Export(context.Background(), &domain.User{Email: "alice@x.com"}); err == nil {
		t.Fatal("expected engine error")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("partial output left behind: %v", entries)
	}
}
