package bitstream

import (
	"bytes"
	"testing"
)

type packBenchDataset struct {
	name   string
	widths []int
	values []uint64
}

func buildPackDataset(name string, count int, widths ...int) packBenchDataset {
	ds := packBenchDataset{name: name}
	for i := 0; i < count; i++ {
		width := widths[i%len(widths)]
		ds.widths = append(ds.widths, width)
		ds.values = append(ds.values, uint64(i)*0x9E3779B9) // Spread bit patterns.
	}

	return ds
}

var packBenchDatasets = []packBenchDataset{
	buildPackDataset("w7_1k", 1000, 7),
	buildPackDataset("w13_1k", 1000, 13),
	buildPackDataset("w64_1k", 1000, 64),
	buildPackDataset("mixed_1k", 1000, 3, 7, 13, 24, 35, 64),
}

func BenchmarkWriterWrite(b *testing.B) {
	for _, dataset := range packBenchDatasets {
		b.Run(dataset.name, func(b *testing.B) {
			var buf bytes.Buffer
			w := NewWriter()

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				buf.Reset()
				for i, v := range dataset.values {
					_ = w.Write(&buf, v, dataset.widths[i])
				}
				_, _ = w.FlushAll(&buf)
			}
		})
	}
}

func BenchmarkPackerWrite(b *testing.B) {
	for _, dataset := range packBenchDatasets {
		b.Run(dataset.name, func(b *testing.B) {
			var buf bytes.Buffer
			p := NewPacker()

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				buf.Reset()
				for i, v := range dataset.values {
					_ = p.Write64(&buf, v, dataset.widths[i])
				}
				_, _ = p.Flush(&buf)
			}
		})
	}
}
