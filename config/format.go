// config/format.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package config

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// A config package is the magic bytes, a big-endian uint16 format
// version, and then the zstd-compressed msgpack encoding of a Config.

var magic = []byte("\xffBARS\x13eu")

const (
	FormatVersion uint16 = 0

	// Decoded packages may not exceed this size.
	MaxDecodedSize = 0x100_0000
)

var (
	ErrBadMagic           = errors.New("not a BARS config package")
	ErrUnsupportedVersion = errors.New("unsupported config package version")
	ErrNoSource           = errors.New("no config source mapped for aerodrome")
	ErrNotInSource        = errors.New("config source is missing advertised aerodrome")
)

// Load reads a config package from r.
func Load(r io.Reader) (*Config, error) {
	hdr := make([]byte, len(magic)+2)
	if _, err := io.ReadFull(r, hdr); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrBadMagic
		}
		return nil, err
	}
	if !bytes.Equal(hdr[:len(magic)], magic) {
		return nil, ErrBadMagic
	}
	if v := binary.BigEndian.Uint16(hdr[len(magic):]); v != FormatVersion {
		return nil, fmt.Errorf("version %d: %w", v, ErrUnsupportedVersion)
	}

	zr, err := zstd.NewReader(r, zstd.WithDecoderMaxMemory(MaxDecodedSize))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer zr.Close()

	var c Config
	if err := msgpack.NewDecoder(io.LimitReader(zr, MaxDecodedSize)).Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadBytes is a convenience wrapper around Load.
func LoadBytes(b []byte) (*Config, error) {
	return Load(bytes.NewReader(b))
}

// Save writes c to w as a config package.
func (c *Config) Save(w io.Writer) error {
	if _, err := w.Write(magic); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, FormatVersion); err != nil {
		return err
	}

	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	defer zw.Close()

	if err := msgpack.NewEncoder(zw).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to close zstd writer: %w", err)
	}
	return nil
}
