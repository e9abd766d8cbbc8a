package blocksupport

import (
	"testing"

	"github.com/amcore/slmsupport/coreconfig"
	"github.com/amcore/slmsupport/geom3d"
)

func TestGeometryPlainReturnsSupportVolume(t *testing.T) {
	vol := geom3d.NewPart(nil, nil)
	b := NewBlockSupport(nil, vol, false, nil, nil)

	got, err := Geometry(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != vol {
		t.Fatalf("expected plain Geometry to return SupportVolume unchanged")
	}
}

func TestGeometryGridRequiresSetGridGeometry(t *testing.T) {
	vol := geom3d.NewPart(nil, nil)
	b := NewBlockSupport(nil, vol, false, nil, nil).WithGridParams(GridParams{Params: coreconfig.Default()})

	if _, err := Geometry(b); err == nil {
		t.Fatalf("expected error before SetGridGeometry is called")
	}

	fill := geom3d.NewPart(nil, nil)
	b.SetGridGeometry(fill)
	got, err := Geometry(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != fill {
		t.Fatalf("expected grid Geometry to return the memoized fill mesh")
	}
}

func TestSetGridGeometryPanicsOnPlainBlock(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic calling SetGridGeometry on a plain block")
		}
	}()
	b := NewBlockSupport(nil, nil, false, nil, nil)
	b.SetGridGeometry(nil)
}
