// Package icofile reads and writes Windows ICO containers whose frames are
// stored as embedded PNG streams.
package icofile

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
)

const (
	headerSize = 6
	entrySize  = 16

	// MaxFrameSize is the largest frame edge an ICO directory can describe.
	MaxFrameSize = 256
)

var ErrFormat = errors.New("icofile: invalid ICO data")

// Entry is one ICONDIRENTRY. Width and Height are in pixels, with the
// on-disk 0 already expanded to 256.
type Entry struct {
	Width, Height int
	BitCount      int
	Size          uint32
	Offset        uint32
}

type iconDir struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

type iconDirEntry struct {
	Width      uint8
	Height     uint8
	ColorCount uint8
	Reserved   uint8
	Planes     uint16
	BitCount   uint16
	BytesInRes uint32
	Offset     uint32
}

// Encode writes images as one ICO container, in the order given. The first
// image is the frame most readers pick by default.
func Encode(w io.Writer, images []image.Image) error {
	if len(images) == 0 {
		return fmt.Errorf("%w: no frames", ErrFormat)
	}

	pngData := make([][]byte, 0, len(images))
	for i, img := range images {
		b := img.Bounds()
		if b.Dx() < 1 || b.Dy() < 1 || b.Dx() > MaxFrameSize || b.Dy() > MaxFrameSize {
			return fmt.Errorf("%w: frame %d is %dx%d", ErrFormat, i, b.Dx(), b.Dy())
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("encode frame %d: %w", i, err)
		}
		pngData = append(pngData, buf.Bytes())
	}

	bw := bufio.NewWriter(w)

	// Type 1 is ICO, 2 would be CUR.
	if err := binary.Write(bw, binary.LittleEndian, iconDir{Type: 1, Count: uint16(len(images))}); err != nil {
		return err
	}

	offset := uint32(headerSize + len(images)*entrySize)
	for i, img := range images {
		b := img.Bounds()
		e := iconDirEntry{
			Width:      dimByte(b.Dx()),
			Height:     dimByte(b.Dy()),
			Planes:     1,
			BitCount:   32,
			BytesInRes: uint32(len(pngData[i])),
			Offset:     offset,
		}
		if err := binary.Write(bw, binary.LittleEndian, e); err != nil {
			return err
		}
		offset += e.BytesInRes
	}

	for _, data := range pngData {
		if _, err := bw.Write(data); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func dimByte(n int) uint8 {
	if n >= MaxFrameSize {
		return 0
	}
	return uint8(n)
}

func dimInt(b uint8) int {
	if b == 0 {
		return MaxFrameSize
	}
	return int(b)
}

// ReadDirectory parses the ICO header and directory entries of data.
func ReadDirectory(data []byte) ([]Entry, error) {
	r := bytes.NewReader(data)

	var dir iconDir
	if err := binary.Read(r, binary.LittleEndian, &dir); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrFormat, err)
	}
	if dir.Reserved != 0 || dir.Type != 1 {
		return nil, fmt.Errorf("%w: not an icon (type %d)", ErrFormat, dir.Type)
	}

	entries := make([]Entry, 0, dir.Count)
	for i := 0; i < int(dir.Count); i++ {
		var e iconDirEntry
		if err := binary.Read(r, binary.LittleEndian, &e); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrFormat, i, err)
		}
		end := uint64(e.Offset) + uint64(e.BytesInRes)
		if end > uint64(len(data)) {
			return nil, fmt.Errorf("%w: entry %d overruns file", ErrFormat, i)
		}
		entries = append(entries, Entry{
			Width:    dimInt(e.Width),
			Height:   dimInt(e.Height),
			BitCount: int(e.BitCount),
			Size:     e.BytesInRes,
			Offset:   e.Offset,
		})
	}
	return entries, nil
}

// Decode returns every frame of data in directory order.
func Decode(data []byte) ([]image.Image, error) {
	entries, err := ReadDirectory(data)
	if err != nil {
		return nil, err
	}
	images := make([]image.Image, 0, len(entries))
	for i, e := range entries {
		payload := data[e.Offset : e.Offset+e.Size]
		img, err := png.Decode(bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("%w: frame %d: %v", ErrFormat, i, err)
		}
		if b := img.Bounds(); b.Dx() != e.Width || b.Dy() != e.Height {
			return nil, fmt.Errorf("%w: frame %d is %dx%d, directory says %dx%d",
				ErrFormat, i, b.Dx(), b.Dy(), e.Width, e.Height)
		}
		images = append(images, img)
	}
	return images, nil
}
