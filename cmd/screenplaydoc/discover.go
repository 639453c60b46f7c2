package main

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"

	"screenplaydoc/archive"
	"screenplaydoc/pdfdoc"
)

// fixtureSource is one positioned-text fixture discovered under SOURCE,
// lazily openable so a batch run never holds more than one document in
// memory at a time.
type fixtureSource struct {
	// Name is the base name used to derive output file names, with any
	// archive member path flattened to its final path element.
	Name string
	Open func() (*pdfdoc.Document, error)
}

// discoverFixtures resolves SOURCE into the list of positioned-text JSON
// fixtures it names: a single file, a directory walked recursively for
// "*.json" files, or a zip archive walked for "*.json" members.
func discoverFixtures(source string) ([]fixtureSource, error) {
	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("unable to access source '%s': %w", source, err)
	}

	if info.IsDir() {
		return discoverFromDirectory(source)
	}

	head, err := readHead(source)
	if err != nil {
		return nil, fmt.Errorf("unable to read source '%s': %w", source, err)
	}
	if filetype.Is(head, "zip") {
		return discoverFromZip(source)
	}
	return []fixtureSource{{
		Name: filepath.Base(source),
		Open: func() (*pdfdoc.Document, error) { return pdfdoc.LoadFixture(source) },
	}}, nil
}

func readHead(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, 261)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	return buf[:n], nil
}

func discoverFromDirectory(dir string) ([]fixtureSource, error) {
	var sources []fixtureSource
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil
		}
		p := path
		sources = append(sources, fixtureSource{
			Name: filepath.Base(p),
			Open: func() (*pdfdoc.Document, error) { return pdfdoc.LoadFixture(p) },
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to walk directory '%s': %w", dir, err)
	}
	return sources, nil
}

func discoverFromZip(path string) ([]fixtureSource, error) {
	var sources []fixtureSource
	err := archive.Walk(path, "", func(archivePath string, file *zip.File) error {
		if !strings.EqualFold(filepath.Ext(file.Name), ".json") {
			return nil
		}
		name := file.Name
		sources = append(sources, fixtureSource{
			Name: filepath.Base(name),
			Open: func() (*pdfdoc.Document, error) {
				rc, err := file.Open()
				if err != nil {
					return nil, fmt.Errorf("unable to open archive member '%s': %w", name, err)
				}
				defer rc.Close()
				return pdfdoc.DecodeFixture(rc)
			},
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to walk archive '%s': %w", path, err)
	}
	return sources, nil
}
