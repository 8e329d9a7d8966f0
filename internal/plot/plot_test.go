package plot

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func sampleTrajectories() Trajectories {
	basic := make([]float64, 101)
	counting := make([]float64, 101)
	for i := range basic {
		basic[i] = 1000 - float64(i)*2
		counting[i] = 1000 + float64(i)*3
	}
	return Trajectories{Basic: basic, Counting: counting, StartingBankroll: 1000}
}

func TestRender_ProducesPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(sampleTrajectories(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if buf.Len() == 0 {
		t.Fatal("Expected PNG output")
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Errorf("Expected PNG header, got % x", buf.Bytes()[:4])
	}
}

func TestRender_EmptyTrajectory(t *testing.T) {
	var buf bytes.Buffer
	err := Render(Trajectories{Basic: []float64{1000}, StartingBankroll: 1000}, &buf)
	if err == nil {
		t.Error("Expected error for missing counting trajectory")
	}
}

func TestSave_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bankroll.png")

	if err := Save(sampleTrajectories(), path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read plot file: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Error("Expected saved file to be a PNG")
	}
}
