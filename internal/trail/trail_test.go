package trail

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ALT-F4-LLC/trailkit/internal/model"
)

func sampleEn() *model.TrailDocument {
	return &model.TrailDocument{
		TrailID:     "carmel-01",
		Name:        "Carmel Ridge",
		Description: "A ridge walk.",
		Media: []model.MediaRef{
			{ID: "m1", Type: model.MediaImage, URL: "https://img/1.jpg", Description: "Lookout"},
			{ID: "m2", Type: model.MediaVideo, URL: "https://vid/2.mp4", Description: "Descent"},
		},
	}
}

func sampleHe() *model.TrailDocument {
	return &model.TrailDocument{
		TrailID:     "carmel-01",
		Name:        "רכס הכרמל",
		Description: "הליכה ברכס.",
		Media: []model.MediaRef{
			{ID: "m2", Type: model.MediaVideo, URL: "https://vid/2.mp4", Description: "ירידה"},
			{ID: "m1", Type: model.MediaImage, URL: "https://img/1.jpg", Description: "תצפית"},
			{ID: "m3", Type: model.MediaImage, URL: "https://img/3.jpg", Description: "מעיין"},
		},
	}
}

func ids(list []model.MediaRecord) []string {
	out := make([]string, len(list))
	for i, r := range list {
		out[i] = r.ID
	}
	return out
}

func TestMergeDocumentsOrderFollowsEnglish(t *testing.T) {
	res := MergeDocuments(sampleEn(), sampleHe())

	want := []string{"m1", "m2", "m3"}
	if got := ids(res.Media); !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}

	m1 := res.Media[0]
	if m1.DescriptionEn != "Lookout" || m1.DescriptionHe != "תצפית" {
		t.Errorf("m1 descriptions = %q / %q", m1.DescriptionEn, m1.DescriptionHe)
	}
	m3 := res.Media[2]
	if m3.DescriptionEn != "" || m3.DescriptionHe != "מעיין" {
		t.Errorf("Hebrew-only m3 descriptions = %q / %q", m3.DescriptionEn, m3.DescriptionHe)
	}
}

func TestMergeDocumentsScalars(t *testing.T) {
	res := MergeDocuments(sampleEn(), sampleHe())
	want := model.TrailFields{
		TrailID:       "carmel-01",
		NameEn:        "Carmel Ridge",
		DescriptionEn: "A ridge walk.",
		NameHe:        "רכס הכרמל",
		DescriptionHe: "הליכה ברכס.",
	}
	if res.Fields != want {
		t.Errorf("fields = %+v, want %+v", res.Fields, want)
	}
}

func TestMergeDocumentsTrailIDPrecedence(t *testing.T) {
	en := sampleEn()
	he := sampleHe()
	he.TrailID = "other"

	if got := MergeDocuments(en, he).Fields.TrailID; got != "carmel-01" {
		t.Errorf("both present: trail id = %q, want English value", got)
	}

	en.TrailID = ""
	if got := MergeDocuments(en, he).Fields.TrailID; got != "other" {
		t.Errorf("English empty: trail id = %q, want Hebrew value", got)
	}

	if got := MergeDocuments(nil, he).Fields.TrailID; got != "other" {
		t.Errorf("English missing: trail id = %q, want Hebrew value", got)
	}
}

func TestMergeDocumentsMissingLanguage(t *testing.T) {
	res := MergeDocuments(sampleEn(), nil)
	if len(res.Media) != 2 {
		t.Fatalf("len = %d, want 2", len(res.Media))
	}
	for _, r := range res.Media {
		if r.DescriptionHe != "" {
			t.Errorf("record %s DescriptionHe = %q, want empty", r.ID, r.DescriptionHe)
		}
	}

	en, he, err := ExportDocuments(res.Media, res.Fields)
	if err != nil {
		t.Fatalf("ExportDocuments: %v", err)
	}
	if len(en.Media) != 2 || len(he.Media) != 2 {
		t.Fatalf("media lengths = %d / %d, want 2 / 2", len(en.Media), len(he.Media))
	}
	for _, m := range he.Media {
		if m.Description != "" {
			t.Errorf("Hebrew media %s description = %q, want empty", m.ID, m.Description)
		}
	}
	if he.Name != "" || he.TrailID != "carmel-01" {
		t.Errorf("Hebrew doc = %+v", he)
	}
}

func TestMergeDocumentsNoInput(t *testing.T) {
	res := MergeDocuments(nil, nil)
	if res.Media == nil || len(res.Media) != 0 {
		t.Errorf("media = %#v, want empty non-nil", res.Media)
	}
	if res.Fields != (model.TrailFields{}) {
		t.Errorf("fields = %+v, want zero", res.Fields)
	}
}

func TestMergeDocumentsDuplicateIDLastWriteWins(t *testing.T) {
	en := &model.TrailDocument{Media: []model.MediaRef{
		{ID: "a", Type: model.MediaImage, URL: "u1", Description: "first"},
		{ID: "b", Type: model.MediaImage, URL: "u2", Description: "bee"},
		{ID: "a", Type: model.MediaVideo, URL: "u3", Description: "second"},
	}}
	res := MergeDocuments(en, nil)

	if got := ids(res.Media); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("order = %v, want [a b]", got)
	}
	a := res.Media[0]
	if a.Type != model.MediaVideo || a.URL != "u3" || a.DescriptionEn != "second" {
		t.Errorf("record a = %+v, want last entry's fields", a)
	}
}

func TestMergeDocumentsHebrewUpdatesSharedFields(t *testing.T) {
	en := &model.TrailDocument{Media: []model.MediaRef{{ID: "a", Type: model.MediaImage, URL: "old", Description: "en"}}}
	he := &model.TrailDocument{Media: []model.MediaRef{{ID: "a", Type: model.MediaVideo, URL: "new", Description: "he"}}}

	a := MergeDocuments(en, he).Media[0]
	if a.URL != "new" || a.Type != model.MediaVideo {
		t.Errorf("shared fields = %q %q, want Hebrew values", a.Type, a.URL)
	}
	if a.DescriptionEn != "en" || a.DescriptionHe != "he" {
		t.Errorf("descriptions = %q / %q", a.DescriptionEn, a.DescriptionHe)
	}
}

func TestMergeDocumentsIdempotent(t *testing.T) {
	first := MergeDocuments(sampleEn(), sampleHe())
	second := MergeDocuments(sampleEn(), sampleHe())
	if !reflect.DeepEqual(first, second) {
		t.Errorf("merge not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestRoundTrip(t *testing.T) {
	fields := model.TrailFields{
		TrailID:       "t-9",
		NameEn:        "Nine",
		DescriptionEn: "desc",
		NameHe:        "תשע",
		DescriptionHe: "תיאור",
	}
	list := []model.MediaRecord{
		{ID: "z", Type: model.MediaVideo, URL: "https://z", DescriptionEn: "Zed", DescriptionHe: "זד"},
		{ID: "a", Type: model.MediaImage, URL: "https://a", DescriptionEn: "Ay", DescriptionHe: ""},
		{ID: "k", Type: model.MediaImage, URL: "", DescriptionEn: "", DescriptionHe: "כ"},
	}

	en, he, err := ExportDocuments(list, fields)
	if err != nil {
		t.Fatalf("ExportDocuments: %v", err)
	}

	enData, err := EncodeDocument(en)
	if err != nil {
		t.Fatalf("EncodeDocument(en): %v", err)
	}
	heData, err := EncodeDocument(he)
	if err != nil {
		t.Fatalf("EncodeDocument(he): %v", err)
	}

	res, err := MergeJSON(enData, heData)
	if err != nil {
		t.Fatalf("MergeJSON: %v", err)
	}
	if !reflect.DeepEqual(res.Media, list) {
		t.Errorf("media round trip:\n got %+v\nwant %+v", res.Media, list)
	}
	if res.Fields != fields {
		t.Errorf("fields round trip: got %+v, want %+v", res.Fields, fields)
	}
}

func TestExportDocumentsRequiresTrailID(t *testing.T) {
	list := []model.MediaRecord{{ID: "a"}}
	for _, id := range []string{"", "   ", "\t\n"} {
		en, he, err := ExportDocuments(list, model.TrailFields{TrailID: id})
		var ve *model.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("trail id %q: err = %v, want ValidationError", id, err)
			continue
		}
		if ve.Msg != "missing trail id" {
			t.Errorf("message = %q", ve.Msg)
		}
		if en != nil || he != nil {
			t.Errorf("trail id %q: documents produced on failure", id)
		}
	}
}

func TestExportDocumentsPassesEmptyFieldsThrough(t *testing.T) {
	list := []model.MediaRecord{{}, {ID: "x"}}
	en, he, err := ExportDocuments(list, model.TrailFields{TrailID: "t"})
	if err != nil {
		t.Fatalf("ExportDocuments: %v", err)
	}
	if len(en.Media) != 2 || len(he.Media) != 2 {
		t.Fatalf("media lengths = %d / %d", len(en.Media), len(he.Media))
	}
	if en.Media[0] != (model.MediaRef{}) {
		t.Errorf("blank record exported as %+v", en.Media[0])
	}
}

func TestExportDocumentsKeepsDuplicateIDs(t *testing.T) {
	list := []model.MediaRecord{{ID: "a", DescriptionEn: "1"}, {ID: "a", DescriptionEn: "2"}}
	en, _, err := ExportDocuments(list, model.TrailFields{TrailID: "t"})
	if err != nil {
		t.Fatalf("ExportDocuments: %v", err)
	}
	if len(en.Media) != 2 || en.Media[0].Description != "1" || en.Media[1].Description != "2" {
		t.Errorf("media = %+v", en.Media)
	}
}

func TestInsertRemoveRestoresList(t *testing.T) {
	list := MergeDocuments(sampleEn(), sampleHe()).Media
	orig := append([]model.MediaRecord(nil), list...)

	inserted, err := InsertAt(list, 0, model.MediaRecord{})
	if err != nil {
		t.Fatalf("InsertAt: %v", err)
	}
	if len(inserted) != len(list)+1 || inserted[0] != (model.MediaRecord{}) {
		t.Fatalf("inserted = %+v", inserted)
	}

	restored, err := RemoveAt(inserted, 0)
	if err != nil {
		t.Fatalf("RemoveAt: %v", err)
	}
	if !reflect.DeepEqual(restored, orig) {
		t.Errorf("restored = %+v, want %+v", restored, orig)
	}
	if !reflect.DeepEqual(list, orig) {
		t.Errorf("input list mutated: %+v", list)
	}
}

func TestInsertAtPositions(t *testing.T) {
	list := []model.MediaRecord{{ID: "a"}, {ID: "b"}}
	tests := []struct {
		pos     int
		want    []string
		wantErr bool
	}{
		{0, []string{"new", "a", "b"}, false},
		{1, []string{"a", "new", "b"}, false},
		{2, []string{"a", "b", "new"}, false},
		{3, nil, true},
		{-1, nil, true},
	}

	for _, tt := range tests {
		got, err := InsertAt(list, tt.pos, model.MediaRecord{ID: "new"})
		if (err != nil) != tt.wantErr {
			t.Errorf("InsertAt(%d) error = %v, wantErr %v", tt.pos, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			var ie *model.IndexOutOfRangeError
			if !errors.As(err, &ie) {
				t.Errorf("InsertAt(%d) error type = %T", tt.pos, err)
			}
			continue
		}
		if !reflect.DeepEqual(ids(got), tt.want) {
			t.Errorf("InsertAt(%d) = %v, want %v", tt.pos, ids(got), tt.want)
		}
	}
}

func TestInsertAtEmptyList(t *testing.T) {
	got, err := InsertAt(nil, 0, model.MediaRecord{ID: "only"})
	if err != nil {
		t.Fatalf("InsertAt: %v", err)
	}
	if len(got) != 1 || got[0].ID != "only" {
		t.Errorf("got %+v", got)
	}
}

func TestRemoveAtOutOfRange(t *testing.T) {
	list := []model.MediaRecord{{ID: "a"}}
	for _, pos := range []int{-1, 1, 5} {
		_, err := RemoveAt(list, pos)
		var ie *model.IndexOutOfRangeError
		if !errors.As(err, &ie) {
			t.Errorf("RemoveAt(%d) err = %v, want IndexOutOfRangeError", pos, err)
			continue
		}
		if ie.Index != pos || ie.Len != 1 {
			t.Errorf("RemoveAt(%d) error = %+v", pos, ie)
		}
	}
	if _, err := RemoveAt(nil, 0); err == nil {
		t.Error("RemoveAt on empty list expected error")
	}
}

func TestMove(t *testing.T) {
	list := []model.MediaRecord{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	tests := []struct {
		from, to int
		want     []string
	}{
		{0, 3, []string{"b", "c", "d", "a"}},
		{3, 0, []string{"d", "a", "b", "c"}},
		{1, 2, []string{"a", "c", "b", "d"}},
		{2, 2, []string{"a", "b", "c", "d"}},
	}
	for _, tt := range tests {
		got, err := Move(list, tt.from, tt.to)
		if err != nil {
			t.Errorf("Move(%d, %d) error: %v", tt.from, tt.to, err)
			continue
		}
		if !reflect.DeepEqual(ids(got), tt.want) {
			t.Errorf("Move(%d, %d) = %v, want %v", tt.from, tt.to, ids(got), tt.want)
		}
	}
	if got := ids(list); !reflect.DeepEqual(got, []string{"a", "b", "c", "d"}) {
		t.Errorf("input mutated: %v", got)
	}

	if _, err := Move(list, 0, 4); err == nil {
		t.Error("Move to out-of-range position expected error")
	}
	if _, err := Move(list, -1, 0); err == nil {
		t.Error("Move from out-of-range position expected error")
	}
}

func TestDuplicateIDsAndPositions(t *testing.T) {
	list := []model.MediaRecord{{ID: "a"}, {ID: ""}, {ID: "b"}, {ID: "a"}, {ID: ""}, {ID: "a"}}
	if got := DuplicateIDs(list); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("DuplicateIDs = %v, want [a]", got)
	}
	if got := Positions(list, "a"); !reflect.DeepEqual(got, []int{0, 3, 5}) {
		t.Errorf("Positions(a) = %v", got)
	}
}

func TestDecodeDocumentMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", `{"trailId": `},
		{"empty", ``},
		{"array", `[1, 2]`},
		{"null", `null`},
		{"wrong media shape", `{"media": "nope"}`},
		{"wrong field type", `{"trailId": 7}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDocument(model.LangHe, []byte(tt.data))
			var mde *model.MalformedDocumentError
			if !errors.As(err, &mde) {
				t.Fatalf("err = %v, want MalformedDocumentError", err)
			}
			if mde.Lang != model.LangHe {
				t.Errorf("Lang = %q, want he", mde.Lang)
			}
		})
	}
}

func TestDecodeDocumentMissingFields(t *testing.T) {
	doc, err := DecodeDocument(model.LangEn, []byte(`{"name": "Only a name"}`))
	if err != nil {
		t.Fatalf("DecodeDocument: %v", err)
	}
	if doc.Name != "Only a name" || doc.TrailID != "" || len(doc.Media) != 0 {
		t.Errorf("doc = %+v", doc)
	}
}

func TestMergeJSONAbortsOnEitherLanguage(t *testing.T) {
	good := []byte(`{"trailId": "t", "media": [{"id": "a"}]}`)
	bad := []byte(`{oops`)

	if _, err := MergeJSON(bad, good); err == nil {
		t.Error("expected error for malformed English document")
	} else {
		var mde *model.MalformedDocumentError
		if !errors.As(err, &mde) || mde.Lang != model.LangEn {
			t.Errorf("err = %v, want English MalformedDocumentError", err)
		}
	}

	res, err := MergeJSON(good, bad)
	var mde *model.MalformedDocumentError
	if !errors.As(err, &mde) || mde.Lang != model.LangHe {
		t.Errorf("err = %v, want Hebrew MalformedDocumentError", err)
	}
	if res.Media != nil {
		t.Errorf("partial merge returned: %+v", res)
	}
}

func TestEncodeDocumentFormat(t *testing.T) {
	doc := &model.TrailDocument{
		TrailID:     "t&1",
		Name:        "שביל <ישראל>",
		Description: "",
	}
	data, err := EncodeDocument(doc)
	if err != nil {
		t.Fatalf("EncodeDocument: %v", err)
	}

	want := "{\n" +
		"    \"trailId\": \"t&1\",\n" +
		"    \"name\": \"שביל <ישראל>\",\n" +
		"    \"description\": \"\",\n" +
		"    \"media\": []\n" +
		"}\n"
	if string(data) != want {
		t.Errorf("encoded =\n%s\nwant\n%s", data, want)
	}
}

func TestEncodeDocumentWritesLineSeparatorsLiterally(t *testing.T) {
	doc := &model.TrailDocument{
		TrailID:     "nahal",
		Description: "a\u2028b\u2029c <x> & מפל",
		Media:       []model.MediaRef{{ID: "m", Description: `raw \u2028 text`}},
	}

	data, err := EncodeDocument(doc)
	if err != nil {
		t.Fatalf("EncodeDocument: %v", err)
	}
	if !strings.Contains(string(data), `"description": "a`+"\u2028"+`b`+"\u2029"+`c <x> & מפל"`) {
		t.Errorf("separators should be written as characters:\n%s", data)
	}
	if !strings.Contains(string(data), `"description": "raw \\u2028 text"`) {
		t.Errorf("an escaped backslash must stay escaped:\n%s", data)
	}

	back, err := DecodeDocument(model.LangEn, data)
	if err != nil {
		t.Fatalf("DecodeDocument: %v", err)
	}
	if back.Description != doc.Description || back.Media[0].Description != doc.Media[0].Description {
		t.Errorf("round trip changed text: %+v", back)
	}
}

func TestEncodeDocumentMediaLayout(t *testing.T) {
	doc := &model.TrailDocument{
		TrailID: "t",
		Media:   []model.MediaRef{{ID: "a", Type: model.MediaImage, URL: "u", Description: "d"}},
	}
	data, err := EncodeDocument(doc)
	if err != nil {
		t.Fatalf("EncodeDocument: %v", err)
	}
	if !strings.Contains(string(data), "        {\n            \"id\": \"a\",\n            \"type\": \"image\",") {
		t.Errorf("unexpected media layout:\n%s", data)
	}
}

func TestOutputFileName(t *testing.T) {
	if got := OutputFileName("carmel-01", model.LangEn); got != "carmel-01_en.json" {
		t.Errorf("en = %q", got)
	}
	if got := OutputFileName(" carmel-01 ", model.LangHe); got != "carmel-01_he.json" {
		t.Errorf("he = %q", got)
	}
}

func TestWriteDocuments(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	res := MergeDocuments(sampleEn(), sampleHe())
	en, he, err := ExportDocuments(res.Media, res.Fields)
	if err != nil {
		t.Fatalf("ExportDocuments: %v", err)
	}

	written, err := WriteDocuments(dir, en, he)
	if err != nil {
		t.Fatalf("WriteDocuments: %v", err)
	}
	if len(written) != 2 {
		t.Fatalf("written = %d files, want 2", len(written))
	}

	for _, wf := range written {
		data, err := os.ReadFile(wf.Path)
		if err != nil {
			t.Fatalf("reading %s: %v", wf.Path, err)
		}
		if int64(len(data)) != wf.Size {
			t.Errorf("%s size = %d, reported %d", wf.Path, len(data), wf.Size)
		}
		doc, err := DecodeDocument(wf.Lang, data)
		if err != nil {
			t.Fatalf("decoding %s: %v", wf.Path, err)
		}
		if got := len(doc.Media); got != 3 {
			t.Errorf("%s media = %d, want 3", wf.Path, got)
		}
	}

	if filepath.Base(written[1].Path) != "carmel-01_he.json" {
		t.Errorf("Hebrew path = %s", written[1].Path)
	}
	heData, _ := os.ReadFile(written[1].Path)
	if !strings.Contains(string(heData), "רכס הכרמל") {
		t.Error("Hebrew text not written literally")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("dir has %d entries, want 2 (no staging leftovers)", len(entries))
	}
}
