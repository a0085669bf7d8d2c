package wlfile

import (
	"hash/crc32"
)

// crcTable is the IEEE CRC-32 table.
var crcTable = crc32.MakeTable(crc32.IEEE)

// ComputeCRC computes CRC-32 IEEE of the given bytes.
func ComputeCRC(data []byte) uint32 {
	return crc32.Checksum(data, crcTable)
}

// VerifyCRC reports whether the text stored at path, after decompression,
// has the expected checksum.
func VerifyCRC(path string, expected uint32, opts ...Option) (bool, error) {
	o, err := newOptions(opts)
	if err != nil {
		return false, err
	}
	text, _, err := readText(path, o.compression)
	if err != nil {
		return false, err
	}
	return ComputeCRC(text) == expected, nil
}
