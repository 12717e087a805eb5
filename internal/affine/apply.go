package affine

import "viewfit/internal/geom"

// TransformPoint maps the position p.
func TransformPoint(p geom.Vec2, t Transform) geom.Vec2 {
	return t.Offset.Add(t.Scale.Mul(p))
}

// TransformVec maps the free vector v. The offset does not apply to
// differences between positions.
func TransformVec(v geom.Vec2, t Transform) geom.Vec2 {
	return t.Scale.Mul(v)
}

// InverseTransformPoint undoes TransformPoint. Both scale components must
// be non-zero.
func InverseTransformPoint(p geom.Vec2, t Transform) geom.Vec2 {
	return p.Sub(t.Offset).Div(t.Scale)
}

// InverseTransformVec undoes TransformVec.
func InverseTransformVec(v geom.Vec2, t Transform) geom.Vec2 {
	return v.Div(t.Scale)
}

// TransformRect maps both corners of r as positions. The result is
// renormalised, so a negative scale still yields Min <= Max.
func TransformRect(r geom.Rect, t Transform) geom.Rect {
	return geom.BoundingBox(TransformPoint(r.Min, t), TransformPoint(r.Max, t))
}

// InverseTransformRect undoes TransformRect.
func InverseTransformRect(r geom.Rect, t Transform) geom.Rect {
	return geom.BoundingBox(InverseTransformPoint(r.Min, t), InverseTransformPoint(r.Max, t))
}

// TransformArea maps both corners of r as free vectors, for rects that
// describe an extent rather than a placed region.
func TransformArea(r geom.Rect, t Transform) geom.Rect {
	return geom.BoundingBox(TransformVec(r.Min, t), TransformVec(r.Max, t))
}

// InverseTransformArea undoes TransformArea.
func InverseTransformArea(r geom.Rect, t Transform) geom.Rect {
	return geom.BoundingBox(InverseTransformVec(r.Min, t), InverseTransformVec(r.Max, t))
}
