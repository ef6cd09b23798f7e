// Package capture writes frame snapshots: raw RGBA pixels, LZ4
// block-compressed behind a small little-endian header.
package capture

import (
	"encoding/binary"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pierrec/lz4/v4"
)

// Header layout: magic, width, height, uncompressed size, stored size.
// Stored size equal to uncompressed size marks an incompressible frame
// kept raw.
var magic = [4]byte{'B', 'D', 'F', '1'}

const headerSize = 4 + 4*4

// Frame is a decoded snapshot.
type Frame struct {
	Width  int
	Height int
	Pixels []byte // RGBA, 4 bytes per pixel, row-major from top-left
}

// Encode serializes a frame.
func Encode(f *Frame) ([]byte, error) {
	want := f.Width * f.Height * 4
	if f.Width <= 0 || f.Height <= 0 || len(f.Pixels) != want {
		return nil, fmt.Errorf("capture: %dx%d frame needs %d pixel bytes, have %d",
			f.Width, f.Height, want, len(f.Pixels))
	}

	bound := lz4.CompressBlockBound(len(f.Pixels))
	compressed := make([]byte, bound)
	var c lz4.Compressor
	n, err := c.CompressBlock(f.Pixels, compressed)
	if err != nil {
		return nil, fmt.Errorf("capture: compress: %w", err)
	}

	payload := compressed[:n]
	if n == 0 || n >= len(f.Pixels) {
		payload = f.Pixels
	}

	out := make([]byte, headerSize+len(payload))
	copy(out[0:4], magic[:])
	binary.LittleEndian.PutUint32(out[4:8], uint32(f.Width))
	binary.LittleEndian.PutUint32(out[8:12], uint32(f.Height))
	binary.LittleEndian.PutUint32(out[12:16], uint32(len(f.Pixels)))
	binary.LittleEndian.PutUint32(out[16:20], uint32(len(payload)))
	copy(out[headerSize:], payload)
	return out, nil
}

// Decode parses a snapshot produced by Encode.
func Decode(data []byte) (*Frame, error) {
	if len(data) < headerSize || string(data[0:4]) != string(magic[:]) {
		return nil, fmt.Errorf("capture: not a BDF1 snapshot")
	}

	width := int(binary.LittleEndian.Uint32(data[4:8]))
	height := int(binary.LittleEndian.Uint32(data[8:12]))
	rawSize := int(binary.LittleEndian.Uint32(data[12:16]))
	storedSize := int(binary.LittleEndian.Uint32(data[16:20]))

	if width <= 0 || height <= 0 || rawSize != width*height*4 {
		return nil, fmt.Errorf("capture: inconsistent header %dx%d size %d", width, height, rawSize)
	}
	if len(data) != headerSize+storedSize {
		return nil, fmt.Errorf("capture: truncated payload, want %d bytes have %d",
			storedSize, len(data)-headerSize)
	}

	payload := data[headerSize:]
	pixels := make([]byte, rawSize)
	if storedSize == rawSize {
		copy(pixels, payload)
	} else {
		n, err := lz4.UncompressBlock(payload, pixels)
		if err != nil {
			return nil, fmt.Errorf("capture: decompress: %w", err)
		}
		if n != rawSize {
			return nil, fmt.Errorf("capture: decompressed %d bytes, expected %d", n, rawSize)
		}
	}

	return &Frame{Width: width, Height: height, Pixels: pixels}, nil
}

// Write stores a frame at path.
func Write(path string, f *Frame) error {
	data, err := Encode(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Read loads a snapshot from path.
func Read(path string) (*Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Grab snapshots the current raylib framebuffer. Must run on the render
// thread with an open window.
func Grab() (*Frame, error) {
	img := rl.LoadImageFromScreen()
	if img == nil || img.Width == 0 || img.Height == 0 {
		return nil, fmt.Errorf("capture: no framebuffer to read")
	}
	defer rl.UnloadImage(img)

	colors := rl.LoadImageColors(img)
	pixels := make([]byte, len(colors)*4)
	for i, c := range colors {
		pixels[i*4+0] = c.R
		pixels[i*4+1] = c.G
		pixels[i*4+2] = c.B
		pixels[i*4+3] = c.A
	}

	return &Frame{
		Width:  int(img.Width),
		Height: int(img.Height),
		Pixels: pixels,
	}, nil
}
