package params

// Parameter names shared by the built-in families.
const (
	Height        = "height"
	BaseRadius    = "baseRadius"
	NeckRadius    = "neckRadius"
	Bulge         = "bulge"
	VerticalSegs  = "verticalSegments"
	RadialSegs    = "radialSegments"
	TwistAngle    = "twistAngle"
	GrooveCount   = "grooveCount"
	GrooveDepth   = "grooveDepth"
	WaveFrequency = "waveFrequency"
	WaveDepth     = "waveDepth"
	TopRadius     = "topRadius"
	TopThickness  = "topThickness"
	LegCount      = "legCount"
	LegWidth      = "legWidth"
	LegInset      = "legInset"
)

// VaseSchema returns the parameter table for the vase family.
// Modulation defaults follow the classic preset: a gentle twist with
// five grooves and a low-frequency vertical wave.
func VaseSchema() *Schema {
	return NewSchema(FamilyVase, []Spec{
		{Name: Height, Min: 0, Max: 20, Default: 7, Step: 0.5},
		{Name: BaseRadius, Min: 0, Max: 5, Default: 2.5, Step: 0.1},
		{Name: NeckRadius, Min: 0, Max: 5, Default: 1.5, Step: 0.1},
		{Name: Bulge, Min: -2, Max: 2, Default: 0.6, Step: 0.1},
		{Name: VerticalSegs, Min: 1, Max: 128, Default: 40, Step: 1, Integer: true},
		{Name: RadialSegs, Min: 3, Max: 128, Default: 40, Step: 1, Integer: true},
		{Name: TwistAngle, Min: 0, Max: 45, Default: 20, Step: 1},
		{Name: GrooveCount, Min: 0, Max: 12, Default: 5, Step: 1, Integer: true},
		{Name: GrooveDepth, Min: 0, Max: 5, Default: 1, Step: 0.25},
		{Name: WaveFrequency, Min: 0, Max: 20, Default: 3, Step: 0.5},
		{Name: WaveDepth, Min: 0, Max: 5, Default: 1, Step: 0.25},
	})
}

// TableSchema returns the parameter table for the table family.
// legCount admits 0 so the generator can reject it explicitly rather
// than the clamp hiding the request.
func TableSchema() *Schema {
	return NewSchema(FamilyTable, []Spec{
		{Name: Height, Min: 0.3, Max: 3, Default: 1, Step: 0.05},
		{Name: TopRadius, Min: 0.2, Max: 3, Default: 1.2, Step: 0.05},
		{Name: TopThickness, Min: 0.02, Max: 0.5, Default: 0.12, Step: 0.01},
		{Name: LegCount, Min: 0, Max: 12, Default: 4, Step: 1, Integer: true},
		{Name: LegWidth, Min: 0.02, Max: 0.5, Default: 0.08, Step: 0.01},
		{Name: LegInset, Min: 0, Max: 0.5, Default: 0.15, Step: 0.01},
		{Name: RadialSegs, Min: 3, Max: 128, Default: 48, Step: 1, Integer: true},
	})
}

// SchemaFor returns the schema for a family, or nil for unknown families.
func SchemaFor(family Family) *Schema {
	switch family {
	case FamilyVase:
		return VaseSchema()
	case FamilyTable:
		return TableSchema()
	default:
		return nil
	}
}
