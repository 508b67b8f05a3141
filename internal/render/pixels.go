package render

import "image/color"

// fillBinaryRGBA converts cell data into two-tone RGBA pixels in buf. Any
// non-zero cell is drawn with on.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	onRGBA := toRGBA(on)
	offRGBA := toRGBA(off)
	for i, c := range cells {
		if c != 0 {
			putRGBA(buf, i, onRGBA)
			continue
		}
		putRGBA(buf, i, offRGBA)
	}
}

// fillPaletteRGBA converts palette indices into RGBA pixels. Indices past the
// end of the palette use its last entry; an empty palette clears the buffer
// to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		putRGBA(buf, i, palette[idx])
	}
}

func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func putRGBA(buf []byte, i int, col color.RGBA) {
	base := i * 4
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}
