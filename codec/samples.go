package codec

import (
	"encoding/binary"
	"fmt"
)

// BytesToSamples reinterprets raw pixel bytes as unsigned 16-bit samples
// using the given byte order. The byte length must be even; otherwise
// ErrInvalidBufferLength is returned.
func BytesToSamples(data []byte, littleEndian bool) ([]uint16, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("%w: %d bytes cannot form 16-bit samples", ErrInvalidBufferLength, len(data))
	}
	samples := make([]uint16, len(data)/2)
	if littleEndian {
		for i := range samples {
			samples[i] = binary.LittleEndian.Uint16(data[2*i:])
		}
	} else {
		for i := range samples {
			samples[i] = binary.BigEndian.Uint16(data[2*i:])
		}
	}
	return samples, nil
}

// SamplesToBytes is the inverse of BytesToSamples: each sample becomes
// two bytes, low byte first when littleEndian is set, high byte first
// otherwise.
func SamplesToBytes(samples []uint16, littleEndian bool) []byte {
	data := make([]byte, 2*len(samples))
	if littleEndian {
		for i, s := range samples {
			binary.LittleEndian.PutUint16(data[2*i:], s)
		}
	} else {
		for i, s := range samples {
			binary.BigEndian.PutUint16(data[2*i:], s)
		}
	}
	return data
}
