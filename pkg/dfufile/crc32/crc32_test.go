package crc32

import "testing"

func TestUpdateKnownVector(t *testing.T) {
	// Standard check value for reflected CRC32, poly 0xEDB88320
	got := Update(0, []byte("123456789"))
	if got != 0xCBF43926 {
		t.Errorf("Update = 0x%08X, want 0xCBF43926", got)
	}
}

func TestChecksumIsComplement(t *testing.T) {
	data := []byte("123456789")

	if got, want := Checksum(data), Update(0, data)^0xFFFFFFFF; got != want {
		t.Errorf("Checksum = 0x%08X, want 0x%08X", got, want)
	}
}

func TestUpdateChunkIndependence(t *testing.T) {
	data := make([]byte, 10000)
	for i := range data {
		data[i] = byte(i * 7)
	}

	whole := Update(0, data)

	splits := [][]int{
		{1, 9999},
		{1024, 1024, 7952},
		{9999, 1},
		{3, 5, 9992},
	}

	for _, split := range splits {
		var acc uint32
		pos := 0
		for _, n := range split {
			acc = Update(acc, data[pos:pos+n])
			pos += n
		}
		if acc != whole {
			t.Errorf("split %v: got 0x%08X, want 0x%08X", split, acc, whole)
		}
	}
}

func TestUpdateEmptyInput(t *testing.T) {
	if got := Update(0, nil); got != 0 {
		t.Errorf("Update over no bytes changed the accumulator: 0x%08X", got)
	}

	acc := Update(0, []byte{0xAB})
	if got := Update(acc, nil); got != acc {
		t.Errorf("Update over no bytes changed a non-zero accumulator: 0x%08X", got)
	}
}
