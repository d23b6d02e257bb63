package brickrail

// CatalogEntry is one standard radius/angle pair.
type CatalogEntry struct {
	Radius float64 // studs
	Angle  float64 // degrees
}

// Catalog lists the curves commonly built for brick layouts. It is
// informational: any positive radius and angle in (0,360] builds.
//
//	R40  22.5°   16 pieces per circle
//	R56  22.5°   16
//	R56  20°     18
//	R72  11.25°  32
//	R88  11.25°  32
//	R104 11.25°  32
//	R120 11.25°  32
var Catalog = []CatalogEntry{
	{Radius: 40, Angle: 22.5},
	{Radius: 56, Angle: 22.5},
	{Radius: 56, Angle: 20},
	{Radius: 72, Angle: 11.25},
	{Radius: 88, Angle: 11.25},
	{Radius: 104, Angle: 11.25},
	{Radius: 120, Angle: 11.25},
}

// Curve returns the entry as a Curve with the default tie spacing.
func (e CatalogEntry) Curve(full bool) Curve {
	return Curve{Radius: e.Radius, Angle: e.Angle, Full: full, TieSpacing: DefaultTieSpacing}
}
