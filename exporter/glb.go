package exporter

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// GLB container framing: a 12-byte header, a JSON chunk padded with
// spaces to a 4-byte boundary, and a BIN chunk padded with zeros.
const (
	glbMagic     = 0x46546c67 // "glTF"
	glbVersion   = 2
	glbChunkJSON = 0x4e4f534a // "JSON"
	glbChunkBIN  = 0x004e4942 // "BIN\0"
)

func align4(n uint32) uint32 {
	return (n + 3) &^ 3
}

func writeChunk(w io.Writer, chunkType uint32, payload []byte, pad byte) error {
	var header [8]byte
	binary.LittleEndian.PutUint32(header[0:], align4(uint32(len(payload))))
	binary.LittleEndian.PutUint32(header[4:], chunkType)
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}
	for i := uint32(len(payload)); i < align4(uint32(len(payload))); i++ {
		if _, err := w.Write([]byte{pad}); err != nil {
			return err
		}
	}
	return nil
}

// WriteGLB frames the serialized document and the binary blob into one
// GLB stream.
func WriteGLB(w io.Writer, jsonData, bin []byte) error {
	total := 12 + 8 + align4(uint32(len(jsonData))) + 8 + align4(uint32(len(bin)))

	var header [12]byte
	binary.LittleEndian.PutUint32(header[0:], glbMagic)
	binary.LittleEndian.PutUint32(header[4:], glbVersion)
	binary.LittleEndian.PutUint32(header[8:], total)
	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	if err := writeChunk(w, glbChunkJSON, jsonData, ' '); err != nil {
		return err
	}
	return writeChunk(w, glbChunkBIN, bin, 0)
}

// ReadGLB parses a GLB stream back into its JSON and BIN payloads
// (padding included, as the container does not record unpadded sizes).
func ReadGLB(r io.Reader) (jsonData, bin []byte, err error) {
	var header [12]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, nil, errors.Wrap(err, "read GLB header")
	}
	if binary.LittleEndian.Uint32(header[0:]) != glbMagic {
		return nil, nil, errors.New("not a GLB file")
	}
	if v := binary.LittleEndian.Uint32(header[4:]); v != glbVersion {
		return nil, nil, errors.Errorf("unsupported GLB version %d", v)
	}

	for {
		var chunkHeader [8]byte
		if _, err := io.ReadFull(r, chunkHeader[:]); err != nil {
			if err == io.EOF {
				return jsonData, bin, nil
			}
			return nil, nil, errors.Wrap(err, "read chunk header")
		}
		length := binary.LittleEndian.Uint32(chunkHeader[0:])
		payload := make([]byte, length)
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, nil, errors.Wrap(err, "read chunk payload")
		}

		switch binary.LittleEndian.Uint32(chunkHeader[4:]) {
		case glbChunkJSON:
			jsonData = payload
		case glbChunkBIN:
			bin = payload
		}
	}
}
