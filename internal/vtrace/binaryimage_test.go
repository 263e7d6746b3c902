package vtrace

import "testing"

func TestBinaryImageGetSetBounds(t *testing.T) {
	img := newBinaryImage(3, 3)
	img.Set(1, 1, true)
	if !img.Get(1, 1) {
		t.Error("set bit should read back true")
	}
	if img.Get(-1, 0) || img.Get(3, 0) || img.Get(0, 3) {
		t.Error("out-of-bounds reads should report false")
	}
	img.Set(-1, 0, true) // must be a silent no-op
	img.Set(3, 3, true)
}

func TestBinaryImageNegative(t *testing.T) {
	img := newBinaryImage(2, 1)
	img.Set(0, 0, true)
	neg := img.Negative()
	if neg.Get(0, 0) || !neg.Get(1, 0) {
		t.Error("Negative() should flip every bit")
	}
	if img.Get(0, 0) != true {
		t.Error("Negative() must not mutate the source image")
	}
}

func TestBinaryImageToClustersSeparatesComponents(t *testing.T) {
	img := newBinaryImage(4, 1)
	img.Set(0, 0, true)
	img.Set(1, 0, true)
	img.Set(3, 0, true) // not 4-connected to the first two

	clusters := img.ToClusters()
	if len(clusters) != 2 {
		t.Fatalf("ToClusters() found %d components, want 2", len(clusters))
	}
	if len(clusters[0].Points) != 2 {
		t.Errorf("first component has %d points, want 2", len(clusters[0].Points))
	}
	if len(clusters[1].Points) != 1 {
		t.Errorf("second component has %d points, want 1", len(clusters[1].Points))
	}
}

func TestBinaryImageToClustersEmpty(t *testing.T) {
	img := newBinaryImage(3, 3)
	if clusters := img.ToClusters(); len(clusters) != 0 {
		t.Errorf("ToClusters() on an empty image = %v, want none", clusters)
	}
}
