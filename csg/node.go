package csg

// node is one node of a BSP tree: a splitting plane (borrowed from the
// first polygon assigned to it), the polygons lying exactly on that
// plane, and front/back subtrees.
type node struct {
	plane    plane
	hasPlane bool
	front    *node
	back     *node
	polys    []*polygon
}

func buildTree(polys []*polygon) *node {
	n := &node{}
	if len(polys) > 0 {
		n.build(polys)
	}
	return n
}

func (n *node) build(polys []*polygon) {
	if len(polys) == 0 {
		return
	}
	if !n.hasPlane {
		n.plane = polys[0].plane
		n.hasPlane = true
	}

	var frontList, backList []*polygon
	n.polys = append(n.polys, polys[0])
	for _, p := range polys[1:] {
		n.plane.splitPolygon(p, &n.polys, &n.polys, &frontList, &backList)
	}
	if len(frontList) > 0 {
		if n.front == nil {
			n.front = &node{}
		}
		n.front.build(frontList)
	}
	if len(backList) > 0 {
		if n.back == nil {
			n.back = &node{}
		}
		n.back.build(backList)
	}
}

// invert flips the solid/empty sense of the subtree in place (used to
// implement subtraction as: A - B = !(!(A) or B)... via union/invert).
func (n *node) invert() {
	if n == nil {
		return
	}
	for i, p := range n.polys {
		n.polys[i] = p.flip()
	}
	if n.hasPlane {
		n.plane = n.plane.flip()
	}
	n.front.invert()
	n.back.invert()
	n.front, n.back = n.back, n.front
}

// clipPolygons removes the portions of polys that lie inside the solid
// region represented by the subtree rooted at n.
func (n *node) clipPolygons(polys []*polygon) []*polygon {
	if n == nil || !n.hasPlane {
		return append([]*polygon(nil), polys...)
	}

	var frontList, backList []*polygon
	for _, p := range polys {
		n.plane.splitPolygon(p, &frontList, &backList, &frontList, &backList)
	}
	if n.front != nil {
		frontList = n.front.clipPolygons(frontList)
	}
	if n.back != nil {
		backList = n.back.clipPolygons(backList)
	} else {
		backList = nil
	}
	return append(frontList, backList...)
}

// clipTo removes all polygons in n that lie inside the solid region of
// other, recursively.
func (n *node) clipTo(other *node) {
	if n == nil {
		return
	}
	n.polys = other.clipPolygons(n.polys)
	n.front.clipTo(other)
	n.back.clipTo(other)
}

// allPolygons collects every polygon stored in the subtree.
func (n *node) allPolygons() []*polygon {
	if n == nil {
		return nil
	}
	out := append([]*polygon(nil), n.polys...)
	out = append(out, n.front.allPolygons()...)
	out = append(out, n.back.allPolygons()...)
	return out
}

func (n *node) clone() *node {
	if n == nil {
		return nil
	}
	out := &node{plane: n.plane, hasPlane: n.hasPlane}
	for _, p := range n.polys {
		out.polys = append(out.polys, p.clone())
	}
	out.front = n.front.clone()
	out.back = n.back.clone()
	return out
}
