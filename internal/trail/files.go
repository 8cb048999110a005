package trail

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ALT-F4-LLC/trailkit/internal/model"
)

// WrittenFile describes one document written by WriteDocuments.
type WrittenFile struct {
	Lang model.Lang `json:"lang"`
	Path string     `json:"path"`
	Size int64      `json:"size"`
}

// WriteDocuments writes the English and Hebrew documents into dir as
// {trailId}_en.json and {trailId}_he.json. Both documents are encoded and
// staged in temporary files before either target is replaced, so an
// encoding or write failure leaves dir untouched.
func WriteDocuments(dir string, en, he *model.TrailDocument) ([]WrittenFile, error) {
	docs := []struct {
		lang model.Lang
		doc  *model.TrailDocument
	}{
		{model.LangEn, en},
		{model.LangHe, he},
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}

	type staged struct {
		tmp    string
		target string
		file   WrittenFile
	}
	var stage []staged
	cleanup := func() {
		for _, s := range stage {
			os.Remove(s.tmp)
		}
	}

	for _, d := range docs {
		data, err := EncodeDocument(d.doc)
		if err != nil {
			cleanup()
			return nil, err
		}

		f, err := os.CreateTemp(dir, ".trailkit-*.json")
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("staging %s document: %w", d.lang.Name(), err)
		}
		stage = append(stage, staged{tmp: f.Name()})

		if _, err := f.Write(data); err != nil {
			f.Close()
			cleanup()
			return nil, fmt.Errorf("writing %s document: %w", d.lang.Name(), err)
		}
		if err := f.Close(); err != nil {
			cleanup()
			return nil, fmt.Errorf("writing %s document: %w", d.lang.Name(), err)
		}

		target := filepath.Join(dir, OutputFileName(d.doc.TrailID, d.lang))
		s := &stage[len(stage)-1]
		s.target = target
		s.file = WrittenFile{Lang: d.lang, Path: target, Size: int64(len(data))}
	}

	written := make([]WrittenFile, 0, len(stage))
	for i, s := range stage {
		if err := os.Rename(s.tmp, s.target); err != nil {
			for _, done := range stage[:i] {
				os.Remove(done.target)
			}
			cleanup()
			return nil, fmt.Errorf("saving %s: %w", s.target, err)
		}
		written = append(written, s.file)
	}

	return written, nil
}
