// core/columns/columns_test.go
package columns

import "testing"

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Saturated Sand Depth ds(m)": "saturatedsanddepthdsm",
		"Blow Count N":               "blowcountn",
		"ρc":                         "c", // Greek rho stripped
		"N_value (%)":                "nvalue",
		"":                           "",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolveExactAndAlias(t *testing.T) {
	m := Resolve([]string{"Site Number", "ds", "N value", "Fc", "amax"})
	want := map[Field]string{
		FieldSite:      "Site Number",
		FieldDepth:     "ds",
		FieldBlowCount: "N value",
		FieldContent:   "Fc",
		FieldAmax:      "amax",
	}
	for f, raw := range want {
		if m[f] != raw {
			t.Errorf("%s resolved to %q, want %q", f, m[f], raw)
		}
	}
	if m[FieldIntensity] != "" {
		t.Errorf("intensity should be unresolved, got %q", m[FieldIntensity])
	}
}

func TestResolveFuzzy(t *testing.T) {
	// Decorated headers resolve by containment.
	m := Resolve([]string{"point id:", "saturation depth (m)", "blow count n [spt]", "clay content pct"})
	if m[FieldSite] != "point id:" {
		t.Errorf("site = %q", m[FieldSite])
	}
	if m[FieldDepth] != "saturation depth (m)" {
		t.Errorf("depth = %q", m[FieldDepth])
	}
	if m[FieldBlowCount] != "blow count n [spt]" {
		t.Errorf("blow count = %q", m[FieldBlowCount])
	}
	if m[FieldContent] != "clay content pct" {
		t.Errorf("content = %q", m[FieldContent])
	}
}

func TestUnrelatedHeaderResolvesNowhere(t *testing.T) {
	m := Resolve([]string{"Notes"})
	for _, f := range Fields() {
		if m[f] != "" {
			t.Errorf("%s matched %q, want no match", f, m[f])
		}
	}
}

func TestSingleCharAliasExactOnly(t *testing.T) {
	// A bare "N" header still resolves by exact alias match.
	m := Resolve([]string{"N"})
	if m[FieldBlowCount] != "N" {
		t.Errorf("blow count = %q, want N", m[FieldBlowCount])
	}
}

func TestMissingAndSeismic(t *testing.T) {
	m := Resolve([]string{"Site Number", "ds", "N value", "Fc"})
	if miss := m.Missing(); len(miss) != 0 {
		t.Errorf("unexpected missing fields %v", miss)
	}
	if m.HasSeismic() {
		t.Error("no seismic column present, HasSeismic should be false")
	}

	m = Resolve([]string{"Seismic Intensity"})
	if !m.HasSeismic() {
		t.Error("intensity column should satisfy the seismic requirement")
	}
	if miss := m.Missing(); len(miss) != 4 {
		t.Errorf("want 4 missing required fields, got %v", miss)
	}
}

func TestResolveDeterministic(t *testing.T) {
	headers := []string{"Intensity", "Clay Content", "ID", "ds", "N", "amax"}
	first := Resolve(headers)
	for i := 0; i < 10; i++ {
		again := Resolve(headers)
		for _, f := range Fields() {
			if first[f] != again[f] {
				t.Fatalf("resolution of %s unstable: %q vs %q", f, first[f], again[f])
			}
		}
	}
}
