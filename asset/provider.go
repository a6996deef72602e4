package asset

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
)

// Provider resolves assets rooted at a single base directory: first as a
// freestanding file under <base>/assets/<branch>/<name><ext>, else as the
// entry assets/<branch>/<name><ext> inside <base>/assets.zip. It
// implements op.Assets structurally (Get(branch, name, ext) (string,
// bool)) without importing op, keeping the dependency direction
// op -> (nothing) and asset -> (nothing domain-specific).
type Provider struct {
	baseDir string
}

// NewProvider builds a Provider rooted at baseDir.
func NewProvider(baseDir string) *Provider {
	return &Provider{baseDir: baseDir}
}

// Get resolves (branch, name, ext) per the two-tier rule, freestanding
// file first. It reports ok=false, not an error, on any miss — a missing
// asset is an ordinary negative lookup, not a failure worth propagating
// as an error kind of its own.
func (p *Provider) Get(branch, name, ext string) (string, bool) {
	rel := filepath.Join("assets", branch, name+ext)

	freestanding := filepath.Join(p.baseDir, rel)
	if data, err := os.ReadFile(freestanding); err == nil {
		return string(data), true
	}

	return p.fromZip(rel)
}

// fromZip looks up rel (using forward slashes, as zip entries always do)
// inside <baseDir>/assets.zip.
func (p *Provider) fromZip(rel string) (string, bool) {
	zipPath := filepath.Join(p.baseDir, "assets.zip")
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return "", false
	}
	defer r.Close()

	entryName := filepath.ToSlash(rel)
	for _, f := range r.File {
		if f.Name != entryName {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", false
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return "", false
		}
		return string(data), true
	}
	return "", false
}
