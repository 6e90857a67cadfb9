package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/gomap"
	"github.com/signadot/jdoc/ir"
)

// readDoc builds the document described by the statement file at path, or
// by in when path is "-".
func readDoc(in io.Reader, path string) (*ir.Value, error) {
	var r io.Reader = in
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	doc, err := gomap.BuildYAML(d)
	if err != nil {
		return nil, fmt.Errorf("error building %s: %w", path, err)
	}
	theLog.Debug("built document", "file", path, "size", doc.Size())
	return doc, nil
}

// forEachDoc calls f with the document of each file, or of in when there
// are no files.
func forEachDoc(in io.Reader, files []string, f func(file string, doc *ir.Value) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		doc, err := readDoc(in, file)
		if err != nil {
			return err
		}
		if err := f(file, doc); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func writeDoc(cfg *MainConfig, w io.Writer, doc *ir.Value) error {
	if err := encode.Encode(doc, w, cfg.encOpts(w)...); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
