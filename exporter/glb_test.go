package exporter

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestWriteGLBFraming(t *testing.T) {
	jsonData := []byte(`{"asset":{"version":"2.0"}}`) // 27 bytes
	bin := []byte{1, 2, 3, 4, 5}                      // 5 bytes

	var buf bytes.Buffer
	if err := WriteGLB(&buf, jsonData, bin); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	if !bytes.Equal(data[0:4], []byte("glTF")) {
		t.Fatalf("magic %q; expected glTF", data[0:4])
	}
	if v := binary.LittleEndian.Uint32(data[4:]); v != 2 {
		t.Errorf("version=%d; expected 2", v)
	}
	expectedTotal := uint32(12 + 8 + 28 + 8 + 8)
	if total := binary.LittleEndian.Uint32(data[8:]); total != expectedTotal {
		t.Errorf("total=%d; expected %d", total, expectedTotal)
	}
	if uint32(len(data)) != expectedTotal {
		t.Errorf("stream is %d bytes; header says %d", len(data), expectedTotal)
	}

	if length := binary.LittleEndian.Uint32(data[12:]); length != 28 {
		t.Errorf("JSON chunk length=%d; expected 28", length)
	}
	if !bytes.Equal(data[16:20], []byte("JSON")) {
		t.Errorf("JSON chunk type %q", data[16:20])
	}
	if data[20+27] != ' ' {
		t.Error("JSON padding is not ASCII space")
	}

	binHeader := 20 + 28
	if length := binary.LittleEndian.Uint32(data[binHeader:]); length != 8 {
		t.Errorf("BIN chunk length=%d; expected 8", length)
	}
	if !bytes.Equal(data[binHeader+4:binHeader+8], []byte("BIN\x00")) {
		t.Errorf("BIN chunk type %q", data[binHeader+4:binHeader+8])
	}
	payload := data[binHeader+8:]
	if !bytes.Equal(payload[:5], bin) || payload[5] != 0 || payload[6] != 0 || payload[7] != 0 {
		t.Error("BIN payload or zero padding is wrong")
	}
}

func TestGLBRoundTrip(t *testing.T) {
	jsonData := []byte(`{"a":1}`)
	bin := []byte{9, 8, 7, 6}

	var buf bytes.Buffer
	if err := WriteGLB(&buf, jsonData, bin); err != nil {
		t.Fatal(err)
	}

	gotJSON, gotBin, err := ReadGLB(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(bytes.TrimRight(gotJSON, " "), jsonData) {
		t.Errorf("JSON round trip %q; expected %q", gotJSON, jsonData)
	}
	if !bytes.Equal(gotBin, bin) {
		t.Errorf("BIN round trip %v; expected %v", gotBin, bin)
	}
}

func TestReadGLBRejectsGarbage(t *testing.T) {
	if _, _, err := ReadGLB(bytes.NewReader([]byte("not a glb file at all"))); err == nil {
		t.Error("garbage stream parsed as GLB")
	}
}
