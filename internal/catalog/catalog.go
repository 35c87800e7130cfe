package catalog

// CustomMaterial is the menu entry that lets the operator supply density and
// cutting energy directly instead of using a preset.
const CustomMaterial = "custom"

// Material pairs a workpiece material with its density and the default
// specific cutting energy used when the operator does not override it.
type Material struct {
	Name          string
	Density       float64 // lb/in^3
	CuttingEnergy float64 // p_s, hp min/in^3
}

// ToolType is one of the tool material classes shown on the worksheet. Only
// the single-letter code is stored in a row.
type ToolType struct {
	Code string
	Name string
}

var materials = []Material{
	{Name: "carbon steel", Density: 0.283, CuttingEnergy: 1.20},
	{Name: "alloy steel", Density: 0.310, CuttingEnergy: 1.35},
	{Name: "stainless steel (304)", Density: 0.283, CuttingEnergy: 1.80},
	{Name: "tool steel", Density: 0.283, CuttingEnergy: 1.90},
	{Name: "cast iron", Density: 0.260, CuttingEnergy: 0.95},
	{Name: "aluminum alloys (6061)", Density: 0.100, CuttingEnergy: 0.35},
	{Name: "brass", Density: 0.310, CuttingEnergy: 0.55},
	{Name: "nickel alloys", Density: 0.300, CuttingEnergy: 2.20},
	{Name: "magnesium alloys", Density: 0.066, CuttingEnergy: 0.25},
	{Name: "zinc alloys", Density: 0.230, CuttingEnergy: 0.50},
	{Name: "titanium alloys", Density: 0.163, CuttingEnergy: 2.40},
}

var toolTypes = []ToolType{
	{Code: "H", Name: "HSS"},
	{Code: "C", Name: "Carbide"},
	{Code: "D", Name: "Ceramic/CBN/PCD"},
}

// Materials returns the preset materials in their canonical menu order.
func Materials() []Material {
	out := make([]Material, len(materials))
	copy(out, materials)
	return out
}

// FindMaterial looks a preset up by name.
func FindMaterial(name string) (Material, bool) {
	for _, m := range materials {
		if m.Name == name {
			return m, true
		}
	}
	return Material{}, false
}

// ToolTypes returns the tool material classes in their canonical menu order.
func ToolTypes() []ToolType {
	out := make([]ToolType, len(toolTypes))
	copy(out, toolTypes)
	return out
}
