package css_test

import (
	"strings"
	"testing"

	"tcss/css"
)

func TestNew(t *testing.T) {
	sheet := css.New()

	if sheet.Rules == nil {
		t.Fatal("New() returned sheet with nil Rules")
	}
	if len(sheet.Rules) != 0 {
		t.Errorf("New() returned non-empty sheet: %v", sheet.Rules)
	}
	if sheet.String() != "" {
		t.Errorf("empty sheet serialized to %q, want empty string", sheet.String())
	}
}

func TestStylesheet_String_Ordering(t *testing.T) {
	sheet := &css.Stylesheet{Rules: map[string]css.Declarations{
		"H1":    {"color": "blue"},
		".this": {"color": "#FFFFFF"},
		"H2":    {"font-family": "Arial", "color": "red"},
	}}

	want := ".this {\n" +
		"\tcolor: #FFFFFF;\n" +
		"}\n" +
		"H1 {\n" +
		"\tcolor: blue;\n" +
		"}\n" +
		"H2 {\n" +
		"\tcolor: red;\n" +
		"\tfont-family: Arial;\n" +
		"}\n"
	if got := sheet.String(); got != want {
		t.Errorf("String() =\n%s\nwant:\n%s", got, want)
	}
}

func TestStylesheet_String_Deterministic(t *testing.T) {
	sheet := &css.Stylesheet{Rules: map[string]css.Declarations{
		"b": {"y": "2", "x": "1"},
		"a": {"z": "3"},
		"c": {},
	}}

	first := sheet.String()
	for i := 0; i < 10; i++ {
		if got := sheet.String(); got != first {
			t.Fatalf("String() not deterministic, run %d differs:\n%s\nvs\n%s", i, got, first)
		}
	}
}

func TestStylesheet_String_EmptyDeclarations(t *testing.T) {
	sheet := &css.Stylesheet{Rules: map[string]css.Declarations{
		"H1": {},
	}}

	if got := sheet.String(); got != "H1 {\n}\n" {
		t.Errorf("String() = %q, want %q", got, "H1 {\n}\n")
	}
}

func TestStylesheet_WriteTo(t *testing.T) {
	sheet := &css.Stylesheet{Rules: map[string]css.Declarations{
		"H1": {"color": "blue"},
	}}

	var sb strings.Builder
	n, err := sheet.WriteTo(&sb)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if int64(sb.Len()) != n {
		t.Errorf("WriteTo() returned %d, wrote %d bytes", n, sb.Len())
	}
	if sb.String() != sheet.String() {
		t.Errorf("WriteTo() output differs from String()")
	}
}

func TestStylesheet_Accessors(t *testing.T) {
	sheet := css.New()

	sheet.SetValue("H1", "color", "blue")
	if v, ok := sheet.Value("H1", "color"); !ok || v != "blue" {
		t.Errorf("Value(H1, color) = %q, %v", v, ok)
	}

	// SetValue creates the selector on demand.
	if _, ok := sheet.Declarations("H1"); !ok {
		t.Error("SetValue did not create the selector")
	}

	sheet.SetValue("H1", "color", "red")
	if v, _ := sheet.Value("H1", "color"); v != "red" {
		t.Errorf("overwrite: Value(H1, color) = %q, want %q", v, "red")
	}

	sheet.DeleteValue("H1", "color")
	if _, ok := sheet.Value("H1", "color"); ok {
		t.Error("DeleteValue left the property behind")
	}
	// Deleting the last property keeps the selector with empty declarations.
	if _, ok := sheet.Declarations("H1"); !ok {
		t.Error("DeleteValue removed the whole selector")
	}

	sheet.DeleteSelector("H1")
	if _, ok := sheet.Declarations("H1"); ok {
		t.Error("DeleteSelector left the selector behind")
	}
}

func TestStylesheet_SetDeclarations(t *testing.T) {
	sheet := css.New()

	sheet.SetDeclarations("P", css.Declarations{"margin": "0"})
	if v, _ := sheet.Value("P", "margin"); v != "0" {
		t.Errorf("Value(P, margin) = %q, want %q", v, "0")
	}

	// Replacement is wholesale, not a merge.
	sheet.SetDeclarations("P", css.Declarations{"padding": "1em"})
	if _, ok := sheet.Value("P", "margin"); ok {
		t.Error("SetDeclarations merged instead of replacing")
	}

	// nil becomes a legitimate empty declarations map.
	sheet.SetDeclarations("Q", nil)
	if d, ok := sheet.Declarations("Q"); !ok || d == nil {
		t.Errorf("SetDeclarations(nil) stored %v, %v", d, ok)
	}
}

func TestStylesheet_ZeroValueUsable(t *testing.T) {
	var sheet css.Stylesheet

	if _, ok := sheet.Value("H1", "color"); ok {
		t.Error("zero-value sheet returned a value")
	}
	if got := sheet.Selectors(); len(got) != 0 {
		t.Errorf("zero-value Selectors() = %v", got)
	}

	sheet.SetValue("H1", "color", "blue")
	if v, _ := sheet.Value("H1", "color"); v != "blue" {
		t.Errorf("Value(H1, color) = %q after SetValue on zero value", v)
	}
}

func TestStylesheet_SelectorsSorted(t *testing.T) {
	sheet := &css.Stylesheet{Rules: map[string]css.Declarations{
		"H2": {}, ".a": {}, "H1": {}, "P EM": {},
	}}

	got := sheet.Selectors()
	want := []string{".a", "H1", "H2", "P EM"}
	if len(got) != len(want) {
		t.Fatalf("Selectors() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Selectors()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStylesheet_PropertiesSorted(t *testing.T) {
	sheet := &css.Stylesheet{Rules: map[string]css.Declarations{
		"H1": {"font-family": "Arial", "color": "red", "background": "white"},
	}}

	got := sheet.Properties("H1")
	want := []string{"background", "color", "font-family"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Properties()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if sheet.Properties("H2") != nil {
		t.Error("Properties() of unknown selector should be nil")
	}
}

func TestStylesheet_Equal(t *testing.T) {
	a := &css.Stylesheet{Rules: map[string]css.Declarations{
		"H1": {"color": "blue"},
	}}
	b := &css.Stylesheet{Rules: map[string]css.Declarations{
		"H1": {"color": "blue"},
	}}
	c := &css.Stylesheet{Rules: map[string]css.Declarations{
		"H1": {"color": "red"},
	}}

	if !a.Equal(b) {
		t.Error("identical sheets not Equal")
	}
	if a.Equal(c) {
		t.Error("different sheets reported Equal")
	}
	if a.Equal(css.New()) {
		t.Error("non-empty sheet Equal to empty sheet")
	}
}

func TestDeclarations_Clone(t *testing.T) {
	d := css.Declarations{"color": "blue"}
	c := d.Clone()

	c["color"] = "red"
	if d["color"] != "blue" {
		t.Error("Clone() shares storage with the original")
	}

	if css.Declarations(nil).Clone() != nil {
		t.Error("Clone() of nil should be nil")
	}
}
