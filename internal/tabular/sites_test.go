// internal/tabular/sites_test.go
package tabular

import (
	"os"
	"path/filepath"
	"testing"

	"sptliq-core/spt"
)

func writeTemp(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func defaultParams() Params {
	return Params{
		Seismic:             spt.SeismicAmax,
		Content:             spt.ContentClay,
		BetaMode:            spt.BetaGroup,
		Group:               "1",
		DiscriminationDepth: 15,
		Groundwater:         2.0,
	}
}

func TestSitesGrouping(t *testing.T) {
	path := writeTemp(t, "b.csv",
		"Site Number,ds,N value,Fc,amax\n"+
			"ZK1,1.5,12,3.0,0.1\n"+
			"ZK1,4.5,14,3.0,0.1\n"+
			"ZK2,7.5,16,4.5,0.2\n"+
			"ZK1,7.5,16,3.0,0.1\n")
	tb, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	groups, _, err := Sites(tb, defaultParams())
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 2 {
		t.Fatalf("want 2 sites, got %d", len(groups))
	}
	if groups[0].ID != "ZK1" || groups[1].ID != "ZK2" {
		t.Errorf("order not first-seen: %s, %s", groups[0].ID, groups[1].ID)
	}
	if len(groups[0].Site.Layers) != 3 {
		t.Errorf("ZK1 layers = %d, want 3 (non-adjacent rows regroup)", len(groups[0].Site.Layers))
	}
	if got := groups[1].Site.Seismic.Amax; got != 0.2 {
		t.Errorf("ZK2 amax = %v, want 0.2", got)
	}
}

func TestSitesMissingColumns(t *testing.T) {
	path := writeTemp(t, "bad.csv", "Notes,Remarks\nx,y\n")
	tb, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := Sites(tb, defaultParams()); err == nil {
		t.Fatal("want error for unresolved required columns")
	}
}

func TestSitesNoSeismicColumn(t *testing.T) {
	path := writeTemp(t, "noseis.csv", "Site Number,ds,N value,Fc\nZK1,1.5,12,3\n")
	tb, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := Sites(tb, defaultParams()); err == nil {
		t.Fatal("want error when neither seismic column resolves")
	}
}

func TestBadRowPoisonsOnlyItsSite(t *testing.T) {
	path := writeTemp(t, "mixed.csv",
		"Site Number,ds,N value,Fc,amax\n"+
			"ZK1,oops,12,3.0,0.1\n"+
			"ZK2,4.5,14,3.0,0.1\n")
	tb, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	groups, _, err := Sites(tb, defaultParams())
	if err != nil {
		t.Fatal(err)
	}
	if groups[0].Err == nil {
		t.Error("ZK1 should carry its parse error")
	}
	if groups[1].Err != nil {
		t.Errorf("ZK2 should be clean, got %v", groups[1].Err)
	}
}

func TestBlankContentTakesFloor(t *testing.T) {
	path := writeTemp(t, "blank.csv",
		"Site Number,ds,N value,Fc,amax\nZK1,1.5,12,,0.1\n")
	tb, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	p := defaultParams()
	p.Content = spt.ContentFine
	groups, _, err := Sites(tb, p)
	if err != nil {
		t.Fatal(err)
	}
	if got := groups[0].Site.Layers[0].Content; got != 15.0 {
		t.Errorf("blank fine content = %v, want floor 15.0", got)
	}
}

func TestTSVDelimiter(t *testing.T) {
	path := writeTemp(t, "b.tsv",
		"Site Number\tds\tN value\tFc\tamax\nZK1\t1.5\t12\t3.0\t0.1\n")
	tb, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(tb.Headers) != 5 {
		t.Fatalf("headers = %v", tb.Headers)
	}
	groups, _, err := Sites(tb, defaultParams())
	if err != nil || len(groups) != 1 {
		t.Fatalf("groups=%v err=%v", groups, err)
	}
}

func TestManualSite(t *testing.T) {
	p := defaultParams()
	s, err := ManualSite("manual", []string{"1.5:12", "4.5:14:6.5"}, 0.1, p)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Layers) != 2 {
		t.Fatalf("layers = %d", len(s.Layers))
	}
	if s.Layers[0].Content != 3.0 {
		t.Errorf("omitted content = %v, want clay floor 3.0", s.Layers[0].Content)
	}
	if s.Layers[1].Content != 6.5 {
		t.Errorf("explicit content = %v, want 6.5", s.Layers[1].Content)
	}

	if _, err := ManualSite("manual", []string{"1.5"}, 0.1, p); err == nil {
		t.Error("want error for one-field layer spec")
	}
	if _, err := ManualSite("manual", []string{"a:b"}, 0.1, p); err == nil {
		t.Error("want error for non-numeric layer spec")
	}
}
