package filter

import (
	"bytes"
	"testing"

	"github.com/gogpu/rasterkit"
)

// uniformBuffer creates a width*height RGBA buffer filled with one color.
func uniformBuffer(width, height int, r, g, b, a uint8) []uint8 {
	data := make([]uint8, width*height*4)
	for i := 0; i < len(data); i += 4 {
		data[i+0] = r
		data[i+1] = g
		data[i+2] = b
		data[i+3] = a
	}
	return data
}

func TestBoxBlurZeroRadiusIdentity(t *testing.T) {
	data := []uint8{
		10, 20, 30, 40, 50, 60, 70, 80,
		90, 100, 110, 120, 130, 140, 150, 160,
	}

	out, err := BoxBlur(data, 2, 2, 0)
	if err != nil {
		t.Fatalf("BoxBlur() error = %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Errorf("radius 0 output = %v, want input %v", out, data)
	}
	if &out[0] == &data[0] {
		t.Error("radius 0 must return a new buffer, not the input")
	}
}

func TestBoxBlurLengthPreserved(t *testing.T) {
	data := uniformBuffer(7, 5, 1, 2, 3, 4)
	for _, radius := range []int{0, 1, 2, 10, 100} {
		out, err := BoxBlur(data, 7, 5, radius)
		if err != nil {
			t.Fatalf("BoxBlur(radius=%d) error = %v", radius, err)
		}
		if len(out) != len(data) {
			t.Errorf("BoxBlur(radius=%d) length = %d, want %d", radius, len(out), len(data))
		}
	}
}

func TestBoxBlurUniformInvariance(t *testing.T) {
	// A uniform image is a fixed point of the mean filter regardless of
	// window size or edge clamping.
	data := uniformBuffer(6, 6, 200, 150, 100, 50)
	out, err := BoxBlur(data, 6, 6, 3)
	if err != nil {
		t.Fatalf("BoxBlur() error = %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Error("uniform image changed under blur")
	}
}

func TestBoxBlurRowMean(t *testing.T) {
	// 3x1 image, red channel 10, 20, 40. With radius 1 the clamped
	// windows are [0,1], [0,2], [1,2]:
	//   (10+20)/2 = 15, (10+20+40)/3 = 23 (truncated), (20+40)/2 = 30.
	data := make([]uint8, 3*4)
	data[0], data[4], data[8] = 10, 20, 40

	out, err := BoxBlur(data, 3, 1, 1)
	if err != nil {
		t.Fatalf("BoxBlur() error = %v", err)
	}

	want := []uint8{15, 23, 30}
	for i, w := range want {
		if out[i*4] != w {
			t.Errorf("pixel %d red = %d, want %d", i, out[i*4], w)
		}
	}
}

func TestBoxBlurColumnMean(t *testing.T) {
	// Same values as the row test, laid out as a 1x3 column.
	data := make([]uint8, 3*4)
	data[0], data[4], data[8] = 10, 20, 40

	out, err := BoxBlur(data, 1, 3, 1)
	if err != nil {
		t.Fatalf("BoxBlur() error = %v", err)
	}

	want := []uint8{15, 23, 30}
	for i, w := range want {
		if out[i*4] != w {
			t.Errorf("pixel %d red = %d, want %d", i, out[i*4], w)
		}
	}
}

func TestBoxBlurTwoPass(t *testing.T) {
	// 3x3 red-channel checkerboard, radius 1. Horizontal pass gives
	// rows [45 30 45], [45 60 45], [45 30 45]; the vertical pass over
	// those truncates the center column: (30+60+30)/3 = 40.
	vals := [9]uint8{
		0, 90, 0,
		90, 0, 90,
		0, 90, 0,
	}
	data := make([]uint8, 9*4)
	for i, v := range vals {
		data[i*4] = v
	}

	out, err := BoxBlur(data, 3, 3, 1)
	if err != nil {
		t.Fatalf("BoxBlur() error = %v", err)
	}

	want := [9]uint8{
		45, 45, 45,
		45, 40, 45,
		45, 45, 45,
	}
	for i, w := range want {
		if out[i*4] != w {
			t.Errorf("pixel %d red = %d, want %d", i, out[i*4], w)
		}
	}
}

func TestBoxBlurTruncatingDivision(t *testing.T) {
	// Two pixels 0 and 255: mean is 127.5, which must truncate to 127.
	data := make([]uint8, 2*4)
	for c := 0; c < 4; c++ {
		data[4+c] = 255
	}

	out, err := BoxBlur(data, 2, 1, 1)
	if err != nil {
		t.Fatalf("BoxBlur() error = %v", err)
	}
	for c := 0; c < 4; c++ {
		if out[c] != 127 || out[4+c] != 127 {
			t.Errorf("channel %d = (%d, %d), want (127, 127)", c, out[c], out[4+c])
		}
	}
}

func TestBoxBlurAlphaAveraged(t *testing.T) {
	// Alpha is blurred like any color channel.
	data := make([]uint8, 3*4)
	data[3], data[7], data[11] = 0, 255, 0

	out, err := BoxBlur(data, 3, 1, 1)
	if err != nil {
		t.Fatalf("BoxBlur() error = %v", err)
	}
	if out[3] != 127 || out[7] != 85 || out[11] != 127 {
		t.Errorf("alpha = (%d, %d, %d), want (127, 85, 127)", out[3], out[7], out[11])
	}
}

func TestBoxBlurDoesNotMutateInput(t *testing.T) {
	data := uniformBuffer(4, 4, 10, 20, 30, 40)
	data[0] = 250
	original := make([]uint8, len(data))
	copy(original, data)

	if _, err := BoxBlur(data, 4, 4, 2); err != nil {
		t.Fatalf("BoxBlur() error = %v", err)
	}
	if !bytes.Equal(data, original) {
		t.Error("BoxBlur mutated its input")
	}
}

func TestBoxBlurLargeRadiusFlattens(t *testing.T) {
	// Radius >= max(width, height) makes every window cover the whole
	// row/column, so the result is the global truncated mean.
	data := make([]uint8, 2*2*4)
	data[0], data[4], data[8], data[12] = 10, 20, 30, 41

	out, err := BoxBlur(data, 2, 2, 100)
	if err != nil {
		t.Fatalf("BoxBlur() error = %v", err)
	}
	// Horizontal: rows become (15, 15) and (35, 35); vertical: 25 everywhere.
	for i := 0; i < 4; i++ {
		if out[i*4] != 25 {
			t.Errorf("pixel %d red = %d, want 25", i, out[i*4])
		}
	}
}

func TestBoxBlurInvalidBuffer(t *testing.T) {
	if _, err := BoxBlur(make([]uint8, 15), 2, 2, 1); err != rasterkit.ErrBufferSize {
		t.Errorf("short buffer error = %v, want ErrBufferSize", err)
	}
	if _, err := BoxBlur(nil, 0, 2, 1); err != rasterkit.ErrInvalidDimensions {
		t.Errorf("zero width error = %v, want ErrInvalidDimensions", err)
	}
}

func TestBoxBlurPixmap(t *testing.T) {
	pm := rasterkit.NewPixmap(4, 4)
	pm.Clear(rasterkit.White)

	out, err := BoxBlurPixmap(pm, 1)
	if err != nil {
		t.Fatalf("BoxBlurPixmap() error = %v", err)
	}
	if out.Width() != 4 || out.Height() != 4 {
		t.Fatalf("output dimensions = %dx%d, want 4x4", out.Width(), out.Height())
	}
	if !bytes.Equal(out.Data(), pm.Data()) {
		t.Error("uniform pixmap changed under blur")
	}
}

func BenchmarkBoxBlur(b *testing.B) {
	data := uniformBuffer(256, 256, 120, 80, 40, 255)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = BoxBlur(data, 256, 256, 4)
	}
}
