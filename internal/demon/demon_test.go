package demon

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// testProfile returns a valid profile with the given weight.
func testProfile(name string, weight float64) Profile {
	return Profile{
		Name:         name,
		Glyph:        "👹",
		Health:       1,
		Speed:        20,
		Scale:        1,
		BodyColor:    tcell.NewHexColor(0x8b4513),
		HeadColor:    tcell.NewHexColor(0x654321),
		EyeColor:     tcell.NewHexColor(0xff0000),
		DetectRange:  60,
		AttackRange:  30,
		ChaseRange:   8,
		AttackDamage: 10,
		SpawnWeight:  weight,
	}
}

func fullTable() map[Type]Profile {
	return map[Type]Profile{
		Imp:       testProfile("Imp", 100),
		Demon:     testProfile("Demon", 60),
		Cacodemon: testProfile("Cacodemon", 30),
		Baron:     testProfile("Baron", 5),
	}
}

func TestTypesDeclarationOrder(t *testing.T) {
	want := []string{"IMP", "DEMON", "CACODEMON", "BARON"}
	for i, typ := range Types {
		if typ.String() != want[i] {
			t.Errorf("Types[%d] = %s; want %s", i, typ, want[i])
		}
	}
}

func TestIsStrong(t *testing.T) {
	if Imp.IsStrong() {
		t.Error("IMP must be weak")
	}
	for _, typ := range []Type{Demon, Cacodemon, Baron} {
		if !typ.IsStrong() {
			t.Errorf("%s must be strong", typ)
		}
	}
	if Type(NumTypes).IsStrong() {
		t.Error("out-of-range type must not be strong")
	}
}

func TestParseTypeRoundTrip(t *testing.T) {
	for _, typ := range Types {
		got, err := ParseType(typ.String())
		if err != nil {
			t.Fatalf("ParseType(%q): %v", typ, err)
		}
		if got != typ {
			t.Errorf("ParseType(%q) = %s; want %s", typ, got, typ)
		}
	}
	if _, err := ParseType("imp"); err == nil {
		t.Error("ParseType is case-sensitive; lower-case name must fail")
	}
}

func TestTypeJSONUsesNames(t *testing.T) {
	data, err := json.Marshal([]Type{Imp, Baron})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `["IMP","BARON"]` {
		t.Errorf("json = %s; want [\"IMP\",\"BARON\"]", data)
	}
	var back []Type
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back) != 2 || back[0] != Imp || back[1] != Baron {
		t.Errorf("unmarshal = %v; want [IMP BARON]", back)
	}
}

func TestInvalidTypeString(t *testing.T) {
	if s := Type(9).String(); s != "Type(9)" {
		t.Errorf("String() = %q; want Type(9)", s)
	}
	if _, err := Type(9).MarshalText(); err == nil {
		t.Error("MarshalText must reject an invalid type")
	}
}

func TestNewCatalogComplete(t *testing.T) {
	c, err := NewCatalog(fullTable())
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	if got := c.BaseWeight(Baron); got != 5 {
		t.Errorf("BaseWeight(BARON) = %g; want 5", got)
	}
	if c.Profile(Cacodemon) != c.Profile(Cacodemon) {
		t.Error("Profile must return an equal value on every call")
	}
}

func TestNewCatalogMissingType(t *testing.T) {
	table := fullTable()
	delete(table, Cacodemon)
	_, err := NewCatalog(table)
	if err == nil {
		t.Fatal("expected error for missing CACODEMON")
	}
	if !strings.Contains(err.Error(), "CACODEMON") {
		t.Errorf("error %q should name the missing type", err)
	}
}

func TestNewCatalogRejectsNonPositive(t *testing.T) {
	cases := map[string]func(*Profile){
		"health":     func(p *Profile) { p.Health = 0 },
		"speed":      func(p *Profile) { p.Speed = -1 },
		"scale":      func(p *Profile) { p.Scale = 0 },
		"range":      func(p *Profile) { p.ChaseRange = 0 },
		"damage":     func(p *Profile) { p.AttackDamage = 0 },
		"weight":     func(p *Profile) { p.SpawnWeight = 0 },
		"weight NaN": func(p *Profile) { p.SpawnWeight = math.NaN() },
		"weight Inf": func(p *Profile) { p.SpawnWeight = math.Inf(1) },
		"speed NaN":  func(p *Profile) { p.Speed = math.NaN() },
	}
	for name, mutate := range cases {
		table := fullTable()
		p := table[Demon]
		mutate(&p)
		table[Demon] = p
		if _, err := NewCatalog(table); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestNewCatalogRejectsUnknownKey(t *testing.T) {
	table := fullTable()
	table[Type(7)] = testProfile("Ghost", 1)
	if _, err := NewCatalog(table); err == nil {
		t.Error("expected error for out-of-range key")
	}
}

func TestProfileUnknownTypePanics(t *testing.T) {
	c := MustCatalog(fullTable())
	defer func() {
		if recover() == nil {
			t.Error("Profile(invalid) must panic")
		}
	}()
	c.Profile(Type(NumTypes))
}
