package scene

import (
	"github.com/dhconnelly/rtreego"
)

// rtreeItem adapts a *Layer to rtreego.Spatial so the store can maintain an
// R-tree region index alongside its authoritative layers map.
type rtreeItem struct {
	layer *Layer
}

func (it *rtreeItem) Bounds() rtreego.Rect {
	min := it.layer.Bounds.Min
	max := it.layer.Bounds.Max
	lengths := []float64{
		float64(max[0] - min[0]),
		float64(max[1] - min[1]),
		float64(max[2] - min[2]),
	}
	for i, l := range lengths {
		if l <= 0 {
			lengths[i] = 1e-9
		}
	}
	p := rtreego.Point{float64(min[0]), float64(min[1]), float64(min[2])}
	rect, err := rtreego.NewRect(p, lengths)
	if err != nil {
		// A degenerate rect (zero-volume AABB) cannot happen after the
		// clamp above; NewRect only errors on non-positive lengths.
		panic(err)
	}
	return rect
}
