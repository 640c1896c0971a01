// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

type fakeAiff struct {
	data   []int
	pos    int
	format *goaudio.Format
}

func (f *fakeAiff) Format() *goaudio.Format { return f.format }

func (f *fakeAiff) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.pos >= len(f.data) {
		return 0, nil
	}
	n := copy(buf.Data, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	format := &goaudio.Format{NumChannels: 1, SampleRate: 22050}
	src := &source{
		dec:        &fakeAiff{data: []int{0, 16384, -32768}, format: format},
		sampleRate: 22050,
		channels:   1,
	}

	out := make([]float32, 3)
	n, err := src.ReadSamples(out)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 3 {
		t.Fatalf("ReadSamples() n = %d, want 3", n)
	}

	want := []float32{0, 0.5, -1.0}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestSource_ShortReadIsEOF(t *testing.T) {
	t.Parallel()

	format := &goaudio.Format{NumChannels: 1, SampleRate: 22050}
	src := &source{
		dec:        &fakeAiff{data: []int{100}, format: format},
		sampleRate: 22050,
		channels:   1,
	}

	out := make([]float32, 8)
	n, err := src.ReadSamples(out)
	if n != 1 {
		t.Errorf("ReadSamples() n = %d, want 1", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
}

func TestDecode_Garbage(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("RIFF but not aiff")))
	if err != ErrNotAiffFile {
		t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
	}
}
