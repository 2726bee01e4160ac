package fortnite

import (
	"net/url"
	"strconv"
)

// SearchParams are the filter knobs for the search endpoint. Zero
// fields are omitted from the query.
type SearchParams struct {
	Name        string
	MatchMethod string // "full", "contains", "starts", "ends"
	Type        string
	Rarity      string
	Series      string
	Set         string
	HasSeries   *bool
	Language    string
}

func (p SearchParams) values() url.Values {
	q := url.Values{}
	set := func(key, val string) {
		if val != "" {
			q.Set(key, val)
		}
	}
	set("name", p.Name)
	set("matchMethod", p.MatchMethod)
	set("type", p.Type)
	set("rarity", p.Rarity)
	set("series", p.Series)
	set("set", p.Set)
	set("language", p.Language)
	if p.HasSeries != nil {
		q.Set("hasSeries", strconv.FormatBool(*p.HasSeries))
	}
	return q
}

// FlattenPages concatenates pages of results into one list. Nil or
// empty input yields an empty, non-nil slice.
func FlattenPages[T any](pages [][]T) []T {
	out := []T{}
	for _, page := range pages {
		out = append(out, page...)
	}
	return out
}

// QueryParams extracts the query parameters of a raw URL as a flat
// map, taking the first value per key and ignoring any fragment.
func QueryParams(rawURL string) (map[string]string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, newError(KindParse, "invalid url", err)
	}
	out := make(map[string]string)
	for key, vals := range u.Query() {
		if len(vals) > 0 {
			out[key] = vals[0]
		}
	}
	return out, nil
}
