// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"io"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rate     int
		channels int
		samples  []int16
	}{
		{"mono", 8000, 1, []int16{0, 100, -100, 32767, -32767}},
		{"stereo", 44100, 2, []int16{1, -1, 2, -2, 3, -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteWAV16(&buf, tt.rate, tt.channels, tt.samples); err != nil {
				t.Fatalf("WriteWAV16() error = %v", err)
			}

			src, err := Decoder{}.Decode(&buf)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			defer src.Close()

			if src.SampleRate() != tt.rate {
				t.Errorf("SampleRate() = %d, want %d", src.SampleRate(), tt.rate)
			}
			if src.Channels() != tt.channels {
				t.Errorf("Channels() = %d, want %d", src.Channels(), tt.channels)
			}

			out := make([]float32, len(tt.samples))
			n, err := src.ReadSamples(out)
			if err != nil && err != io.EOF {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if n != len(tt.samples) {
				t.Fatalf("ReadSamples() n = %d, want %d", n, len(tt.samples))
			}

			for i, want := range tt.samples {
				got := out[i] * 32768.0
				if diff := got - float32(want); diff > 1 || diff < -1 {
					t.Errorf("sample %d = %v, want about %d", i, got, want)
				}
			}
		})
	}
}

func TestDecode_NotWav(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("OggS this is not a wav file!")))
	if err != ErrNotWavFile {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

func TestDecode_SkipsExtraChunks(t *testing.T) {
	t.Parallel()

	// Build a WAV, then splice a LIST chunk between fmt and data.
	var plain bytes.Buffer
	if err := WriteWAV16(&plain, 8000, 1, []int16{7, -7}); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}
	raw := plain.Bytes()

	var spliced bytes.Buffer
	spliced.Write(raw[:36]) // RIFF header + fmt chunk
	spliced.Write([]byte{'L', 'I', 'S', 'T', 4, 0, 0, 0, 'I', 'N', 'F', 'O'})
	spliced.Write(raw[36:]) // data chunk

	src, err := Decoder{}.Decode(&spliced)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	out := make([]float32, 2)
	if n, _ := src.ReadSamples(out); n != 2 {
		t.Fatalf("ReadSamples() n = %d, want 2", n)
	}
}

func TestDecode_MissingData(t *testing.T) {
	t.Parallel()

	var plain bytes.Buffer
	if err := WriteWAV16(&plain, 8000, 1, nil); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}
	truncated := plain.Bytes()[:36] // cut before the data chunk header

	_, err := Decoder{}.Decode(bytes.NewReader(truncated))
	if err != ErrMissingDataChunk {
		t.Errorf("Decode() error = %v, want ErrMissingDataChunk", err)
	}
}
