package manifest

import (
	"encoding/hex"
	"encoding/xml"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// File describes one written artifact.
type File struct {
	Name   string `xml:"name,attr"`
	Size   int    `xml:"size,attr,omitempty"`
	Bytes  int    `xml:"bytes,attr"`
	Digest string `xml:"blake2b,attr"`
}

// Manifest lists the frames and the container of one icon set. Frames keep
// the order in which they were produced, smallest first.
type Manifest struct {
	XMLName   xml.Name `xml:"iconSet"`
	Reference int      `xml:"reference,attr"`
	Frames    []File   `xml:"frames>frame"`
	Container File     `xml:"container"`
}

// Digest returns the hex BLAKE2b-256 sum of data.
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Describe builds a File entry for data.
func Describe(name string, size int, data []byte) File {
	return File{Name: name, Size: size, Bytes: len(data), Digest: Digest(data)}
}

// AddFrame appends a frame entry.
func (m *Manifest) AddFrame(name string, size int, data []byte) {
	m.Frames = append(m.Frames, Describe(name, size, data))
}

// SetContainer records the multi-size container.
func (m *Manifest) SetContainer(name string, data []byte) {
	m.Container = Describe(name, 0, data)
}

// ToXML renders m with the XML header.
func (m *Manifest) ToXML() ([]byte, error) {
	data, err := xml.MarshalIndent(m, "", "    ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), data...), nil
}

// Parse reads a manifest back.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := xml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// Verify reports an error if data does not match f.
func Verify(f File, data []byte) error {
	if len(data) != f.Bytes {
		return fmt.Errorf("%s: expected %d bytes, got %d", f.Name, f.Bytes, len(data))
	}
	if got := Digest(data); got != f.Digest {
		return fmt.Errorf("%s: digest mismatch", f.Name)
	}
	return nil
}
