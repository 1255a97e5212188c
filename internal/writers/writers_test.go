// internal/writers/writers_test.go
package writers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"sptliq/pkg/api"
)

func sample() []api.SiteReportV1 {
	return []api.SiteReportV1{{
		Summary: api.SiteSummaryV1{
			Site: "ZK1", SeismicMode: "amax", ContentMode: "clay", BetaMode: "group",
			Beta: 0.8, Amax: 0.1, DiscriminationDepth: 15, Groundwater: 2,
			Index: 5.626, Grade: "moderate", GradeLabel: "Moderate Liquefaction",
			MeanPL: 0.048, Possibility: "low", LayerCount: 1,
		},
		Layers: []api.LayerV1{{
			Site: "ZK1", Depth: 1.5, BlowCount: 12, Content: 3,
			Ncr: 3.857, PL: 0.069, NcrPL: 12, Possibility: "low",
			Weight: 10, Contribution: 2.063,
		}},
	}}
}

func TestLayerRows(t *testing.T) {
	var buf bytes.Buffer
	if err := Write("text", &buf, sample(), true); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("want header + 1 row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "site\tds_m") {
		t.Errorf("bad header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "ZK1\t1.50\t12.0") {
		t.Errorf("bad row %q", lines[1])
	}

	buf.Reset()
	if err := Write("text", &buf, sample(), false); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "site\tds_m") {
		t.Error("--no-header output still has header")
	}
}

func TestSummaryRows(t *testing.T) {
	var buf bytes.Buffer
	if err := Write("summary", &buf, sample(), true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "ZK1\tamax\t0.800\t0.10\t15\t2.00\t5.626\tmoderate") {
		t.Errorf("bad summary output:\n%s", buf.String())
	}
}

func TestJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Write("json", &buf, sample(), true); err != nil {
		t.Fatal(err)
	}
	var got []api.SiteReportV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got) != 1 || got[0].Summary.Site != "ZK1" || len(got[0].Layers) != 1 {
		t.Errorf("bad decoded document %+v", got)
	}
}

func TestReportBlock(t *testing.T) {
	var buf bytes.Buffer
	if err := Write("report", &buf, sample(), true); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Site ZK1", "Moderate Liquefaction", "ILE: 5.626", "ds(m)"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestUnknownFormat(t *testing.T) {
	if err := Write("xml", &bytes.Buffer{}, sample(), true); err == nil {
		t.Fatal("want error for unregistered format")
	}
}
