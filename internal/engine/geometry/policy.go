package geometry

import "github.com/Faultbox/repairguide/pkg/schema"

type selector func(d schema.Dimensions) Spec

func box(d schema.Dimensions) Spec {
	return Spec{Kind: KindBox, Params: Params{Width: d.Width, Height: d.Height, Depth: d.Depth}}
}

func cylinderByHeight(d schema.Dimensions) Spec {
	return cylinder(d.Radius, d.Height)
}

func cylinderByLength(d schema.Dimensions) Spec {
	return cylinder(d.Radius, d.Length)
}

func cylinder(radius, height float32) Spec {
	return Spec{Kind: KindCylinder, Params: Params{
		RadiusTop:      radius,
		RadiusBottom:   radius,
		Height:         height,
		RadialSegments: DefaultSegments,
	}}
}

func sphere(d schema.Dimensions) Spec {
	return Spec{Kind: KindSphere, Params: Params{
		Radius:         d.Radius,
		WidthSegments:  DefaultSegments,
		HeightSegments: DefaultSegments,
	}}
}

// baseTable has an entry for every object type.
var baseTable = map[schema.ObjectType]selector{
	schema.ObjectTap:      cylinderByHeight,
	schema.ObjectPipe:     cylinderByLength,
	schema.ObjectSink:     box,
	schema.ObjectToilet:   box,
	schema.ObjectDoorknob: box,
	schema.ObjectCabinet:  box,
	schema.ObjectGeneric:  box,
}

// partTable has an entry for every part type.
var partTable = map[schema.PartType]selector{
	schema.PartHandle:    box,
	schema.PartSpout:     cylinderByLength,
	schema.PartConnector: cylinderByLength,
	schema.PartPipe:      cylinderByLength,
	schema.PartUnknown:   sphere,
}

// ForBase selects the base solid's geometry for an object type.
func ForBase(t schema.ObjectType, d schema.Dimensions) Spec {
	sel, ok := baseTable[t]
	if !ok {
		sel = baseTable[schema.ObjectGeneric]
	}
	return sel(d)
}

// ForPart selects a part's geometry for a part type.
func ForPart(t schema.PartType, d schema.Dimensions) Spec {
	sel, ok := partTable[t]
	if !ok {
		sel = partTable[schema.PartUnknown]
	}
	return sel(d)
}
