package view_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bytelens/internal/scheme"
	"github.com/san-kum/bytelens/internal/view"
)

var (
	black     = scheme.RGBA{0, 0, 0, 255}
	green     = scheme.RGBA{60, 255, 96, 255}
	nearWhite = scheme.RGBA{240, 240, 240, 255}
	blue      = scheme.RGBA{60, 178, 255, 255}
	red       = scheme.RGBA{249, 53, 94, 255}
)

func pixels(frame []byte) []scheme.RGBA {
	out := make([]scheme.RGBA, len(frame)/4)
	for i := range out {
		copy(out[i][:], frame[i*4:i*4+4])
	}
	return out
}

func settings(rowWidth, stride int, s scheme.Scheme) view.Settings {
	return view.Settings{Zoom: 1, RowWidth: rowWidth, Stride: stride, Scheme: s}
}

func randomBytes(n int, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	b := make([]byte, n)
	r.Read(b)
	return b
}

var _ = Describe("Mapper", func() {
	Describe("end to end", func() {
		buf := []byte{0x00, 0x41, 0x20, 0xff}

		It("colors each byte by its category", func() {
			frame := make([]byte, 4*1*4)
			view.Draw(frame, buf, settings(4, 1, scheme.Category), 4)
			Expect(pixels(frame)).To(Equal([]scheme.RGBA{black, green, nearWhite, red}))
		})

		It("renders past the end of the buffer as transparent", func() {
			s := settings(4, 1, scheme.Category)
			s.Offset = 10
			frame := make([]byte, 4*1*4)
			for i := range frame {
				frame[i] = 0xaa
			}
			view.Draw(frame, buf, s, 4)
			for _, p := range pixels(frame) {
				Expect(p).To(Equal(scheme.Transparent))
			}
		})

		It("sums offset and fine offset", func() {
			s := settings(4, 1, scheme.Category)
			s.Offset = 1
			s.OffsetFine = 2
			Expect(view.PixelAt(buf, s, 4, 0)).To(Equal(red))
			Expect(view.PixelAt(buf, s, 4, 1)).To(Equal(scheme.Transparent))
		})
	})

	Describe("stride", func() {
		It("advances stride bytes per logical column", func() {
			buf := []byte{0, 1, 2, 3, 4, 5}
			s := settings(3, 2, scheme.Grayscale)
			frame := make([]byte, 3*1*4)
			view.Draw(frame, buf, s, 3)
			Expect(pixels(frame)).To(Equal([]scheme.RGBA{
				scheme.GrayscaleColor(0),
				scheme.GrayscaleColor(2),
				scheme.GrayscaleColor(4),
			}))
		})

		It("applies stride to whole rows", func() {
			buf := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
			s := settings(2, 3, scheme.Grayscale)
			// canvas 2 wide: row 1 starts at (1*2+0)*3 = 6
			Expect(view.PixelAt(buf, s, 2, 2)).To(Equal(scheme.GrayscaleColor(6)))
			Expect(view.PixelAt(buf, s, 2, 3)).To(Equal(scheme.GrayscaleColor(9)))
		})
	})

	Describe("row width boundary", func() {
		buf := []byte{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}
		s := settings(4, 1, scheme.Grayscale)

		It("still renders the column equal to the row width", func() {
			Expect(view.PixelAt(buf, s, 8, 4)).To(Equal(scheme.GrayscaleColor(14)))
		})

		It("blanks columns strictly past the row width", func() {
			for i := 5; i < 8; i++ {
				Expect(view.PixelAt(buf, s, 8, i)).To(Equal(scheme.Transparent))
			}
		})

		It("wraps rows at the row width, not the canvas width", func() {
			Expect(view.PixelAt(buf, s, 8, 8)).To(Equal(scheme.GrayscaleColor(14)))
		})
	})

	Describe("zoom", func() {
		It("magnifies each byte into a zoom x zoom block", func() {
			buf := []byte{1, 2, 3, 4}
			s := settings(2, 1, scheme.Grayscale)
			s.Zoom = 2
			frame := make([]byte, 4*4*4)
			view.Draw(frame, buf, s, 4)
			got := pixels(frame)
			Expect(got[0]).To(Equal(scheme.GrayscaleColor(1)))
			Expect(got[1]).To(Equal(scheme.GrayscaleColor(1)))
			Expect(got[4]).To(Equal(scheme.GrayscaleColor(1)))
			Expect(got[5]).To(Equal(scheme.GrayscaleColor(1)))
			Expect(got[2]).To(Equal(scheme.GrayscaleColor(2)))
			Expect(got[8]).To(Equal(scheme.GrayscaleColor(3)))
			Expect(got[15]).To(Equal(scheme.GrayscaleColor(4)))
		})
	})

	Describe("totality", func() {
		It("never panics on degenerate settings", func() {
			buf := []byte{1, 2, 3}
			frame := make([]byte, 8*8*4)
			Expect(func() {
				view.Draw(frame, buf, view.Settings{}, 8)
				view.Draw(frame, buf, view.Settings{Zoom: -3, RowWidth: -1, Stride: 0}, 8)
				view.Draw(frame, nil, view.DefaultSettings(0, 8), 8)
				view.Draw(frame, buf, view.DefaultSettings(3, 8), 0)
				view.DrawParallel(frame, buf, view.Settings{}, 8, 4)
				_ = view.PixelAt(buf, view.Settings{}, 0, 5)
				_ = view.PixelAt(buf, view.Settings{}, 8, -1)
			}).NotTo(Panic())
		})

		It("fills a trailing partial row", func() {
			buf := []byte{7, 8, 9, 10, 11}
			frame := make([]byte, 5*4)
			view.Draw(frame, buf, settings(4, 1, scheme.Grayscale), 4)
			Expect(pixels(frame)[4]).To(Equal(scheme.GrayscaleColor(11)))
		})

		It("treats offset overflow as out of range", func() {
			s := settings(4, 1, scheme.Grayscale)
			s.Offset = int(^uint(0) >> 1)
			s.OffsetFine = 1
			Expect(view.PixelAt([]byte{1}, s, 4, 0)).To(Equal(scheme.Transparent))
		})

		It("treats a stride product that wraps back into range as out of range", func() {
			buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
			s := settings(8, 1<<62+1, scheme.Grayscale)
			Expect(view.PixelAt(buf, s, 8, 0)).To(Equal(scheme.GrayscaleColor(1)))
			for i := 1; i < 8; i++ {
				Expect(view.PixelAt(buf, s, 8, i)).To(Equal(scheme.Transparent), "pixel %d", i)
			}
		})

		It("treats a row product that wraps back into range as out of range", func() {
			buf := []byte{1, 2, 3, 4}
			s := settings(1<<62, 1, scheme.Grayscale)
			// row 4 would start at 4<<62, which wraps to 0
			Expect(view.PixelAt(buf, s, 1, 4)).To(Equal(scheme.Transparent))
		})

		It("blanks the frame for negative offsets", func() {
			s := settings(4, 1, scheme.Grayscale)
			s.Offset = -1
			s.OffsetFine = 1
			Expect(view.PixelAt([]byte{1, 2}, s, 4, 0)).To(Equal(scheme.Transparent))
		})
	})

	Describe("determinism", func() {
		buf := randomBytes(1<<16, 42)
		s := view.Settings{Zoom: 3, RowWidth: 97, Offset: 1000, OffsetFine: 7, Stride: 2, Scheme: scheme.Viridis}
		const w, h = 311, 257

		It("is idempotent", func() {
			a := make([]byte, w*h*4)
			b := make([]byte, w*h*4)
			view.Draw(a, buf, s, w)
			view.Draw(b, buf, s, w)
			Expect(a).To(Equal(b))
		})

		It("agrees with PixelAt", func() {
			frame := make([]byte, w*h*4)
			view.Draw(frame, buf, s, w)
			got := pixels(frame)
			for _, i := range []int{0, 1, w - 1, w, w*h/2 + 13, w*h - 1} {
				Expect(got[i]).To(Equal(view.PixelAt(buf, s, w, i)), "pixel %d", i)
			}
		})

		DescribeTable("parallel output equals serial output",
			func(workers int) {
				serial := make([]byte, w*h*4)
				parallel := make([]byte, w*h*4)
				view.Draw(serial, buf, s, w)
				view.DrawParallel(parallel, buf, s, w, workers)
				Expect(parallel).To(Equal(serial))
			},
			Entry("one worker", 1),
			Entry("two workers", 2),
			Entry("seven workers", 7),
			Entry("cpu count", 0),
		)
	})

	Describe("buffer immutability", func() {
		It("does not write to the buffer", func() {
			buf := randomBytes(4096, 7)
			before := append([]byte(nil), buf...)
			frame := make([]byte, 64*64*4)
			view.DrawParallel(frame, buf, view.DefaultSettings(len(buf), 64), 64, 4)
			Expect(buf).To(Equal(before))
		})
	})
})

var _ = Describe("Canvas", func() {
	It("rejects empty dimensions", func() {
		_, err := view.NewCanvas(0, 10)
		Expect(err).To(MatchError(view.ErrCanvasSize))
	})

	It("renders and exposes pixels", func() {
		c, err := view.NewCanvas(4, 1)
		Expect(err).NotTo(HaveOccurred())
		c.Render([]byte{0x00, 0x41, 0x20, 0x7f}, settings(4, 1, scheme.Category), 1)
		Expect(c.At(0, 0)).To(Equal(black))
		Expect(c.At(3, 0)).To(Equal(blue))
		Expect(c.At(4, 0)).To(Equal(scheme.Transparent))

		img := c.Image()
		Expect(img.Bounds().Dx()).To(Equal(4))
		Expect(img.NRGBAAt(1, 0).G).To(Equal(uint8(255)))
	})

	It("resizes in place when shrinking", func() {
		c, err := view.NewCanvas(8, 8)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Resize(4, 4)).To(Succeed())
		Expect(c.Pix).To(HaveLen(4 * 4 * 4))
		Expect(c.Resize(16, 16)).To(Succeed())
		Expect(c.Pix).To(HaveLen(16 * 16 * 4))
		Expect(c.Resize(-1, 4)).To(MatchError(view.ErrCanvasSize))
	})

	It("overwrites stale pixels on every render", func() {
		c, _ := view.NewCanvas(2, 2)
		c.Render([]byte{1, 2, 3, 4}, settings(2, 1, scheme.Grayscale), 1)
		c.Render([]byte{1}, settings(2, 1, scheme.Grayscale), 0)
		Expect(c.At(0, 0)).To(Equal(scheme.GrayscaleColor(1)))
		Expect(c.At(1, 1)).To(Equal(scheme.Transparent))
	})
})
