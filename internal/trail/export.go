package trail

import (
	"strings"

	"github.com/ALT-F4-LLC/trailkit/internal/model"
)

// ExportDocuments splits the unified media list back into an English and a
// Hebrew document. Both documents list media in exactly the order of list.
// A blank trail id fails with a *model.ValidationError and no documents.
func ExportDocuments(list []model.MediaRecord, fields model.TrailFields) (en, he *model.TrailDocument, err error) {
	if strings.TrimSpace(fields.TrailID) == "" {
		return nil, nil, &model.ValidationError{Msg: "missing trail id"}
	}
	return project(list, fields, model.LangEn), project(list, fields, model.LangHe), nil
}

func project(list []model.MediaRecord, fields model.TrailFields, lang model.Lang) *model.TrailDocument {
	media := make([]model.MediaRef, len(list))
	for i, r := range list {
		media[i] = r.Ref(lang)
	}
	return &model.TrailDocument{
		TrailID:     fields.TrailID,
		Name:        fields.Name(lang),
		Description: fields.Description(lang),
		Media:       media,
	}
}
