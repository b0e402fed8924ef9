package tray

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"runtime"

	"github.com/disintegration/imaging"
)

const iconSize = 16

var (
	iconBackground = color.NRGBA{R: 0x2b, G: 0x33, B: 0x3d, A: 0xff}
	iconKey        = color.NRGBA{R: 0xe8, G: 0xec, B: 0xf0, A: 0xff}
)

// getIcon returns the tray icon: PNG, wrapped in an ICO container on Windows.
func getIcon() []byte {
	png, err := iconPNG()
	if err != nil {
		return nil
	}
	if runtime.GOOS == "windows" {
		return wrapICO(png, iconSize)
	}
	return png
}

// drawIcon paints a small keyboard: three rows of keys and a space bar.
func drawIcon() *image.NRGBA {
	img := imaging.New(iconSize, iconSize, color.Transparent)
	body := imaging.New(iconSize, 10, iconBackground)
	for row := 0; row < 2; row++ {
		for col := 0; col < 5; col++ {
			x, y := 1+col*3, 1+row*3
			body.Set(x, y, iconKey)
			body.Set(x+1, y, iconKey)
			body.Set(x, y+1, iconKey)
			body.Set(x+1, y+1, iconKey)
		}
	}
	for x := 4; x < 12; x++ {
		body.Set(x, 7, iconKey)
		body.Set(x, 8, iconKey)
	}
	return imaging.Paste(img, body, image.Pt(0, 3))
}

func iconPNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, drawIcon(), imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// wrapICO stores one PNG image in an ICO file.
func wrapICO(png []byte, size int) []byte {
	const headerSize = 6 + 16
	out := make([]byte, headerSize, headerSize+len(png))
	binary.LittleEndian.PutUint16(out[2:], 1) // type: icon
	binary.LittleEndian.PutUint16(out[4:], 1) // image count

	entry := out[6:]
	entry[0] = byte(size)
	entry[1] = byte(size)
	binary.LittleEndian.PutUint16(entry[4:], 1)  // planes
	binary.LittleEndian.PutUint16(entry[6:], 32) // bits per pixel
	binary.LittleEndian.PutUint32(entry[8:], uint32(len(png)))
	binary.LittleEndian.PutUint32(entry[12:], headerSize)
	return append(out, png...)
}
