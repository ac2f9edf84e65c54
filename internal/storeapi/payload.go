package storeapi

import (
	"fmt"
	"math"
	"strconv"

	storeerrors "github.com/lepinkainen/storeview/internal/errors"
	"github.com/tidwall/gjson"
)

// ParseAppDetails extracts the app keyed by appID from a raw appdetails body.
//
// It returns a NotSuccessfulError when the envelope does not report
// success=true, and a ParseError naming the JSON path for any field whose
// shape is unexpected.
func ParseAppDetails(body []byte, appID int) (*AppDetails, error) {
	if !gjson.ValidBytes(body) {
		return nil, storeerrors.NewParseError("$", "body is not valid JSON")
	}

	key := strconv.Itoa(appID)
	envelope := gjson.GetBytes(body, key)
	if !envelope.IsObject() {
		return nil, storeerrors.NewParseError(key, "missing app envelope")
	}

	if envelope.Get("success").Type != gjson.True {
		return nil, storeerrors.NewNotSuccessfulError(appID)
	}

	data := envelope.Get("data")
	if !data.IsObject() {
		return nil, storeerrors.NewParseError(key+".data", "expected object, got "+describe(data))
	}

	p := fields{obj: data, prefix: key + ".data"}
	details := &AppDetails{AppID: appID}

	var err error
	if details.Name, err = p.requiredString("name"); err != nil {
		return nil, err
	}
	if details.AboutTheGame, err = p.optionalString("about_the_game"); err != nil {
		return nil, err
	}
	if details.ReleaseDate, err = p.releaseDate(); err != nil {
		return nil, err
	}
	if details.Genres, err = p.stringList("genres", "description"); err != nil {
		return nil, err
	}
	if details.Categories, err = p.categoryIDs(); err != nil {
		return nil, err
	}
	if details.Screenshots, err = p.stringList("screenshots", "path_thumbnail"); err != nil {
		return nil, err
	}
	if details.LegalNotice, err = p.optionalString("legal_notice"); err != nil {
		return nil, err
	}

	return details, nil
}

type fields struct {
	obj    gjson.Result
	prefix string
}

func present(r gjson.Result) bool {
	return r.Exists() && r.Type != gjson.Null
}

func describe(r gjson.Result) string {
	switch {
	case !r.Exists():
		return "nothing"
	case r.IsArray():
		return "array"
	case r.IsObject():
		return "object"
	default:
		return r.Type.String()
	}
}

func (f fields) path(elem string) string {
	return f.prefix + "." + elem
}

func (f fields) requiredString(name string) (string, error) {
	r := f.obj.Get(name)
	if r.Type != gjson.String {
		return "", storeerrors.NewParseError(f.path(name), "expected string, got "+describe(r))
	}
	return r.String(), nil
}

func (f fields) optionalString(name string) (*string, error) {
	r := f.obj.Get(name)
	if !present(r) {
		return nil, nil
	}
	if r.Type != gjson.String {
		return nil, storeerrors.NewParseError(f.path(name), "expected string, got "+describe(r))
	}
	s := r.String()
	return &s, nil
}

func (f fields) optionalArray(name string) ([]gjson.Result, bool, error) {
	r := f.obj.Get(name)
	if !present(r) {
		return nil, false, nil
	}
	if !r.IsArray() {
		return nil, false, storeerrors.NewParseError(f.path(name), "expected array, got "+describe(r))
	}
	return r.Array(), true, nil
}

func (f fields) releaseDate() (*string, error) {
	r := f.obj.Get("release_date")
	if !present(r) {
		return nil, nil
	}
	if !r.IsObject() {
		return nil, storeerrors.NewParseError(f.path("release_date"), "expected object, got "+describe(r))
	}
	sub := fields{obj: r, prefix: f.path("release_date")}
	date, err := sub.requiredString("date")
	if err != nil {
		return nil, err
	}
	return &date, nil
}

// stringList collects entry[field] for each object in the named array.
func (f fields) stringList(name, field string) ([]string, error) {
	entries, ok, err := f.optionalArray(name)
	if err != nil || !ok {
		return nil, err
	}

	out := make([]string, 0, len(entries))
	for i, entry := range entries {
		elem := fmt.Sprintf("%s.%d", name, i)
		if !entry.IsObject() {
			return nil, storeerrors.NewParseError(f.path(elem), "expected object, got "+describe(entry))
		}
		sub := fields{obj: entry, prefix: f.path(elem)}
		value, err := sub.requiredString(field)
		if err != nil {
			return nil, err
		}
		out = append(out, value)
	}
	return out, nil
}

func (f fields) categoryIDs() ([]int, error) {
	entries, ok, err := f.optionalArray("categories")
	if err != nil || !ok {
		return nil, err
	}

	ids := make([]int, 0, len(entries))
	for i, entry := range entries {
		elem := f.path(fmt.Sprintf("categories.%d", i))
		if !entry.IsObject() {
			return nil, storeerrors.NewParseError(elem, "expected object, got "+describe(entry))
		}
		id := entry.Get("id")
		if id.Type != gjson.Number || id.Num != math.Trunc(id.Num) {
			return nil, storeerrors.NewParseError(elem+".id", "expected integer, got "+describe(id))
		}
		ids = append(ids, int(id.Int()))
	}
	return ids, nil
}
