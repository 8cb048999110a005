package model

import "fmt"

// Lang identifies one of the two languages a trail is described in.
type Lang string

const (
	LangEn Lang = "en"
	LangHe Lang = "he"
)

// Name returns the human-readable language name.
func (l Lang) Name() string {
	switch l {
	case LangEn:
		return "English"
	case LangHe:
		return "Hebrew"
	default:
		return string(l)
	}
}

// MediaType is the kind of media attached to a trail.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

var validMediaTypes = []MediaType{
	MediaImage,
	MediaVideo,
}

// ValidateMediaType returns an error if t is not a recognized media type.
func ValidateMediaType(t MediaType) error {
	for _, v := range validMediaTypes {
		if t == v {
			return nil
		}
	}
	return fmt.Errorf("invalid media type %q: must be one of %v", t, validMediaTypes)
}

// OrDefault returns t, or image when t is empty. Loaded documents may carry
// no type at all; editors present those records as images.
func (t MediaType) OrDefault() MediaType {
	if t == "" {
		return MediaImage
	}
	return t
}

// Icon returns a short glyph for the media type.
func (t MediaType) Icon() string {
	switch t {
	case MediaVideo:
		return "▶"
	default:
		return "▣"
	}
}

// MediaRef is one media entry as stored in a single-language trail document.
type MediaRef struct {
	ID          string    `json:"id"`
	Type        MediaType `json:"type"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
}

// TrailDocument is the per-language JSON document describing a trail.
type TrailDocument struct {
	TrailID     string     `json:"trailId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Media       []MediaRef `json:"media"`
}

// MediaRecord is the bilingual, in-memory form of one media item. Type and
// URL are shared between languages; the descriptions are not.
type MediaRecord struct {
	ID            string    `json:"id"`
	Type          MediaType `json:"type"`
	URL           string    `json:"url"`
	DescriptionEn string    `json:"description_en"`
	DescriptionHe string    `json:"description_he"`
}

// Description returns the description for the given language.
func (r MediaRecord) Description(lang Lang) string {
	if lang == LangHe {
		return r.DescriptionHe
	}
	return r.DescriptionEn
}

// Ref projects the record into a single-language media entry.
func (r MediaRecord) Ref(lang Lang) MediaRef {
	return MediaRef{
		ID:          r.ID,
		Type:        r.Type,
		URL:         r.URL,
		Description: r.Description(lang),
	}
}

// TrailFields holds the trail-level scalars for both languages. The trail id
// is shared.
type TrailFields struct {
	TrailID       string `json:"trail_id"`
	NameEn        string `json:"name_en"`
	DescriptionEn string `json:"description_en"`
	NameHe        string `json:"name_he"`
	DescriptionHe string `json:"description_he"`
}

// Name returns the trail name for the given language.
func (f TrailFields) Name(lang Lang) string {
	if lang == LangHe {
		return f.NameHe
	}
	return f.NameEn
}

// Description returns the trail description for the given language.
func (f TrailFields) Description(lang Lang) string {
	if lang == LangHe {
		return f.DescriptionHe
	}
	return f.DescriptionEn
}
