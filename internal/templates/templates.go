// Package templates embeds the files linux-msvc renders into an installation.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"

	"github.com/conn-castle/linux-msvc/internal/messages"
)

//go:embed cross_files/*.tmpl
var files embed.FS

// CrossFileDir is the embedded directory holding meson cross-file templates.
const CrossFileDir = "cross_files"

const templateSuffix = ".tmpl"

// CrossFileData is the data a cross-file template is rendered with.
type CrossFileData struct {
	// MsvcRoot is the absolute msvc install directory.
	MsvcRoot string
	// MsvcBin is the absolute x64 wrapper directory.
	MsvcBin string
}

// Read returns the raw content of an embedded template.
func Read(name string) ([]byte, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf(messages.TemplatesReadFailedFmt, name, err)
	}
	return data, nil
}

// Walk visits embedded templates under root.
func Walk(root string, fn fs.WalkDirFunc) error {
	return fs.WalkDir(files, root, fn)
}

// Render executes the named template with data.
func Render(name string, data any) ([]byte, error) {
	raw, err := Read(name)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New(path.Base(name)).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf(messages.TemplatesParseFailedFmt, name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf(messages.TemplatesRenderFailedFmt, name, err)
	}
	return buf.Bytes(), nil
}

// CrossFile is a rendered meson cross file.
type CrossFile struct {
	// Name is the output file name, e.g. x64.txt.
	Name    string
	Content []byte
}

// CrossFiles renders every embedded cross-file template, sorted by name.
func CrossFiles(data CrossFileData) ([]CrossFile, error) {
	var out []CrossFile
	err := Walk(CrossFileDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, templateSuffix) {
			return nil
		}
		content, err := Render(p, data)
		if err != nil {
			return err
		}
		out = append(out, CrossFile{
			Name:    strings.TrimSuffix(path.Base(p), templateSuffix),
			Content: content,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
