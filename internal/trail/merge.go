package trail

import (
	"github.com/ALT-F4-LLC/trailkit/internal/model"
)

// MergeResult is the unified view of an English and a Hebrew trail document.
type MergeResult struct {
	Fields model.TrailFields
	Media  []model.MediaRecord
}

// MergeDocuments joins the media of both documents on media id into one
// ordered list. Either document may be nil.
//
// English entries are processed first, in document order, then Hebrew
// entries. An id keeps the position where it was first seen, so ids that
// only appear in the Hebrew document follow every English id. When an id
// repeats, the later entry overwrites the shared fields (type, url) and the
// description of the language being processed.
//
// The trail id comes from the English document; the Hebrew value is used
// only when the English one is absent or empty.
func MergeDocuments(en, he *model.TrailDocument) MergeResult {
	var res MergeResult
	index := make(map[string]int)

	apply := func(lang model.Lang, media []model.MediaRef) {
		for _, m := range media {
			i, ok := index[m.ID]
			if !ok {
				i = len(res.Media)
				index[m.ID] = i
				res.Media = append(res.Media, model.MediaRecord{ID: m.ID})
			}
			rec := &res.Media[i]
			rec.Type = m.Type
			rec.URL = m.URL
			if lang == model.LangHe {
				rec.DescriptionHe = m.Description
			} else {
				rec.DescriptionEn = m.Description
			}
		}
	}

	if en != nil {
		res.Fields.TrailID = en.TrailID
		res.Fields.NameEn = en.Name
		res.Fields.DescriptionEn = en.Description
		apply(model.LangEn, en.Media)
	}
	if he != nil {
		if res.Fields.TrailID == "" {
			res.Fields.TrailID = he.TrailID
		}
		res.Fields.NameHe = he.Name
		res.Fields.DescriptionHe = he.Description
		apply(model.LangHe, he.Media)
	}

	if res.Media == nil {
		res.Media = []model.MediaRecord{}
	}
	return res
}

// MergeJSON decodes the raw English and Hebrew documents and merges them.
// A nil slice means the document was not supplied. Both documents are
// decoded before anything is merged, so a malformed document yields no
// result at all.
func MergeJSON(enData, heData []byte) (MergeResult, error) {
	var en, he *model.TrailDocument
	var err error

	if enData != nil {
		if en, err = DecodeDocument(model.LangEn, enData); err != nil {
			return MergeResult{}, err
		}
	}
	if heData != nil {
		if he, err = DecodeDocument(model.LangHe, heData); err != nil {
			return MergeResult{}, err
		}
	}

	return MergeDocuments(en, he), nil
}
