package fortnite

import (
	"reflect"
	"testing"

	"github.com/knoxval/fortshop/internal/models"
)

func TestFlattenPages(t *testing.T) {
	pages := [][]models.BrItem{
		{{ID: "a"}, {ID: "b"}},
		{},
		{{ID: "c"}},
	}
	got := FlattenPages(pages)
	if len(got) != 3 || got[2].ID != "c" {
		t.Errorf("got %+v", got)
	}
}

func TestFlattenPagesEmpty(t *testing.T) {
	if got := FlattenPages[models.BrItem](nil); got == nil || len(got) != 0 {
		t.Errorf("nil input: got %v, want empty slice", got)
	}
	if got := FlattenPages([][]models.BrItem{}); got == nil || len(got) != 0 {
		t.Errorf("empty input: got %v, want empty slice", got)
	}
}

func TestQueryParams(t *testing.T) {
	got, err := QueryParams("https://x/api?page=2&limit=10#section")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{"page": "2", "limit": "10"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestQueryParamsNoQuery(t *testing.T) {
	got, err := QueryParams("https://x/api")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestSearchParamsValues(t *testing.T) {
	yes := true
	p := SearchParams{Name: "renegade", MatchMethod: "contains", Rarity: "epic", HasSeries: &yes}
	q := p.values()
	if q.Get("name") != "renegade" || q.Get("matchMethod") != "contains" {
		t.Errorf("values = %v", q)
	}
	if q.Get("hasSeries") != "true" {
		t.Errorf("hasSeries = %q", q.Get("hasSeries"))
	}
	if _, ok := q["type"]; ok {
		t.Error("zero field leaked into query")
	}
}
