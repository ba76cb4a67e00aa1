package home

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/kailas-cloud/homepage/internal/domain"
	"github.com/kailas-cloud/homepage/internal/domain/page"
	"github.com/kailas-cloud/homepage/internal/domain/pricing"
)

func newService(t *testing.T) *Service {
	t.Helper()
	svc, err := New(LocaleEN)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return svc
}

func homeTable(t *testing.T, doc page.Document) pricing.Table {
	t.Helper()
	tbl, ok := doc.FirstTable()
	if !ok {
		t.Fatal("document has no table")
	}
	return tbl
}

func TestNew_UnsupportedDefaultLocale(t *testing.T) {
	_, err := New(Locale("fr"))
	if !errors.Is(err, domain.ErrUnsupportedLocale) {
		t.Fatalf("expected ErrUnsupportedLocale, got %v", err)
	}
}

func TestHome_BlockOrder(t *testing.T) {
	doc := newService(t).Home()

	want := []page.Kind{
		page.KindHeading,
		page.KindParagraph,
		page.KindHeading,
		page.KindOrderedList,
		page.KindImage,
		page.KindHeading,
		page.KindTable,
	}
	if len(doc.Blocks) != len(want) {
		t.Fatalf("blocks = %d, want %d", len(doc.Blocks), len(want))
	}
	for i, k := range want {
		if got := doc.Blocks[i].Kind(); got != k {
			t.Errorf("block %d kind = %s, want %s", i, got, k)
		}
	}

	headings := doc.Headings()
	wantHeadings := []string{"Usage", "Set API Key", "Models and Pricing"}
	if !reflect.DeepEqual(headings, wantHeadings) {
		t.Errorf("headings = %v, want %v", headings, wantHeadings)
	}
}

func TestHome_LinkAndImage(t *testing.T) {
	doc := newService(t).Home()

	p, ok := doc.Blocks[1].(page.Paragraph)
	if !ok {
		t.Fatalf("block 1 is %T, want page.Paragraph", doc.Blocks[1])
	}
	if p.Link == nil || p.Link.Href != "https://chat.eloxt.cn" {
		t.Errorf("unexpected link: %+v", p.Link)
	}

	img, ok := doc.Blocks[4].(page.Image)
	if !ok {
		t.Fatalf("block 4 is %T, want page.Image", doc.Blocks[4])
	}
	if img.Src != "https://s2.loli.net/2025/01/20/7rvSVUxEhA9Yl2u.png" {
		t.Errorf("image src = %q", img.Src)
	}
	if img.WidthPercent != 75 {
		t.Errorf("image width = %d%%, want 75%%", img.WidthPercent)
	}
}

func TestHome_SevenRowsUniqueKeys(t *testing.T) {
	tbl := homeTable(t, newService(t).Home())
	rows := tbl.Rows()
	if len(rows) != 7 {
		t.Fatalf("rows = %d, want 7", len(rows))
	}
	seen := map[string]bool{}
	for i, r := range rows {
		want := string(rune('1' + i))
		if r.Key() != want {
			t.Errorf("row %d key = %q, want %q", i, r.Key(), want)
		}
		if seen[r.Key()] {
			t.Errorf("duplicate key %q", r.Key())
		}
		seen[r.Key()] = true
	}
}

func TestHome_PricesCarryCurrency(t *testing.T) {
	for _, r := range homeTable(t, newService(t).Home()).Rows() {
		for _, p := range []string{r.PromptPrice(), r.OutputPrice()} {
			if p == "" {
				t.Errorf("row %s: empty price", r.Key())
				continue
			}
			if !strings.HasPrefix(p, "$") && !strings.HasPrefix(p, "¥") {
				t.Errorf("row %s: price %q has no currency symbol", r.Key(), p)
			}
		}
	}
}

func TestHome_ColumnShape(t *testing.T) {
	tbl := homeTable(t, newService(t).Home())
	cols := tbl.Columns()
	if len(cols) != 3 {
		t.Fatalf("top-level columns = %d, want 3", len(cols))
	}
	if !cols[1].IsGroup() {
		t.Fatal("second column should be a group")
	}
	ch := cols[1].Children()
	if len(ch) != 2 {
		t.Fatalf("price sub-columns = %d, want 2", len(ch))
	}
	if ch[0].Title() != "Input" || ch[1].Title() != "Output" {
		t.Errorf("sub-column titles = %q, %q", ch[0].Title(), ch[1].Title())
	}
	if !tbl.Bordered() || tbl.Paginated() {
		t.Errorf("bordered=%v paginated=%v, want true/false", tbl.Bordered(), tbl.Paginated())
	}
}

func TestHome_Row6(t *testing.T) {
	tbl := homeTable(t, newService(t).Home())
	if v, _ := tbl.Cell("6", pricing.DataIndexPromptPrice); v != "¥1" {
		t.Errorf("row 6 prompt_price = %q, want ¥1", v)
	}
	if v, _ := tbl.Cell("6", pricing.DataIndexName); v != "deepseek-chat" {
		t.Errorf("row 6 name = %q, want deepseek-chat", v)
	}
}

func TestHome_StepsStableAcrossRenders(t *testing.T) {
	svc := newService(t)
	want := []string{
		"Select any model",
		"Open the model settings on the right",
		"Valves - Functions - OpenAI Manifold",
		"Enter your own key",
		"Start chatting",
	}
	for i := 0; i < 3; i++ {
		list, ok := svc.Home().FirstList()
		if !ok {
			t.Fatal("no ordered list")
		}
		if !reflect.DeepEqual(list.Items, want) {
			t.Fatalf("render %d: steps = %v", i, list.Items)
		}
	}
}

func TestHome_Idempotent(t *testing.T) {
	svc := newService(t)
	a := svc.Home()
	b := svc.Home()
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two renders differ")
	}

	// Mutating one render must not leak into the next.
	list, _ := a.FirstList()
	list.Items[0] = "mutated"
	c := svc.Home()
	if !reflect.DeepEqual(b, c) {
		t.Fatal("render shares state with a previous document")
	}
}

func TestRender_Chinese(t *testing.T) {
	doc, err := newService(t).Render(LocaleZH)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if doc.Lang != "zh" {
		t.Errorf("lang = %q", doc.Lang)
	}
	if got := doc.Headings(); got[0] != "使用方式" || got[2] != "模型和定价" {
		t.Errorf("headings = %v", got)
	}
	tbl := homeTable(t, doc)
	if v, _ := tbl.Cell("6", pricing.DataIndexName); v != "deepseek-chat" {
		t.Errorf("row 6 name = %q", v)
	}
	if v, _ := tbl.Cell("5", pricing.DataIndexDescription); v != "Anthropic 最新的模型，代码能力强" {
		t.Errorf("row 5 description = %q", v)
	}
}

func TestRender_UnsupportedLocale(t *testing.T) {
	_, err := newService(t).Render(Locale("de"))
	if !errors.Is(err, domain.ErrUnsupportedLocale) {
		t.Fatalf("expected ErrUnsupportedLocale, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	if err := newService(t).Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
