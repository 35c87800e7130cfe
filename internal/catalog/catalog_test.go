package catalog

import "testing"

func TestMaterials_CanonicalOrder(t *testing.T) {
	mats := Materials()
	if len(mats) != 11 {
		t.Fatalf("len(Materials()) = %d, want 11", len(mats))
	}
	if mats[0].Name != "carbon steel" {
		t.Fatalf("first material = %q, want carbon steel", mats[0].Name)
	}
	if mats[10].Name != "titanium alloys" {
		t.Fatalf("last material = %q, want titanium alloys", mats[10].Name)
	}
}

func TestMaterials_ReturnsCopy(t *testing.T) {
	mats := Materials()
	mats[0].Density = 99

	if Materials()[0].Density != 0.283 {
		t.Fatal("mutating the returned slice changed the catalog")
	}
}

func TestFindMaterial(t *testing.T) {
	m, ok := FindMaterial("titanium alloys")
	if !ok {
		t.Fatal("titanium alloys not found")
	}
	if m.Density != 0.163 || m.CuttingEnergy != 2.40 {
		t.Fatalf("titanium alloys = %+v", m)
	}

	if _, ok := FindMaterial("unobtainium"); ok {
		t.Fatal("found a material that is not in the catalog")
	}
}

func TestToolTypes(t *testing.T) {
	tools := ToolTypes()
	if len(tools) != 3 {
		t.Fatalf("len(ToolTypes()) = %d, want 3", len(tools))
	}

	codes := tools[0].Code + tools[1].Code + tools[2].Code
	if codes != "HCD" {
		t.Fatalf("tool codes = %q, want HCD", codes)
	}
	if tools[2].Name != "Ceramic/CBN/PCD" {
		t.Fatalf("third tool = %q", tools[2].Name)
	}
}
