package primitives

import "github.com/amcore/slmsupport/geom3d"

// CSGBackend performs 3D Boolean mesh operations. csg.Native is the
// default, dependency-free implementation; a host may substitute a
// production CSG kernel without the rest of this module noticing.
type CSGBackend interface {
	Intersect(a, b *geom3d.Part) (*geom3d.Part, error)
	Difference(a, b *geom3d.Part) (*geom3d.Part, error)
	ResolveSelfIntersections(m *geom3d.Part) (*geom3d.Part, error)
}

// DepthRasterizer samples a Part's height field along dir, the
// collaborator support.IdentifySupportRegions uses to build the depth
// map it segments into per-region support volumes. support.RasterDepthMap
// is the default implementation; a host may substitute a GPU rasterizer.
type DepthRasterizer interface {
	Rasterize(p *geom3d.Part, pixelSize float64, dir geom3d.Vec3, bbox geom3d.AABB3) ([][]float64, error)
}
