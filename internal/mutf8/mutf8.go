// Package mutf8 converts between Go strings and the "modified UTF-8" used by
// the tag stream for names and string payloads.
//
// Modified UTF-8 differs from standard UTF-8 in two places: U+0000 is written
// as the two-byte sequence C0 80, and code points above U+FFFF are written as
// a UTF-16 surrogate pair with each surrogate encoded in three bytes.
package mutf8

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// ErrInvalid indicates a byte sequence that is not valid modified UTF-8.
var ErrInvalid = errors.New("mutf8: invalid byte sequence")

// Encoder returns a Transformer from UTF-8 to modified UTF-8.
func Encoder() transform.Transformer { return encoder{} }

// Decoder returns a Transformer from modified UTF-8 to UTF-8.
func Decoder() transform.Transformer { return decoder{} }

// Encode converts s to modified UTF-8.
func Encode(s string) ([]byte, error) {
	if plain(s) {
		return []byte(s), nil
	}
	out, _, err := transform.Bytes(Encoder(), []byte(s))
	return out, err
}

// Decode converts modified UTF-8 bytes to a Go string.
func Decode(b []byte) (string, error) {
	if plainBytes(b) {
		return string(b), nil
	}
	out, _, err := transform.Bytes(Decoder(), b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// plain reports whether s encodes identically in both forms: valid UTF-8
// with no NUL and no four-byte sequences.
func plain(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 || s[i] >= 0xF0 {
			return false
		}
	}
	return utf8.ValidString(s)
}

func plainBytes(b []byte) bool {
	for _, c := range b {
		if c == 0 || c == 0xC0 || c == 0xED || c >= 0xF0 {
			return false
		}
	}
	return utf8.Valid(b)
}

type encoder struct{ transform.NopResetter }

func (encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c != 0 && c < utf8.RuneSelf {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		var tmp [6]byte
		n := appendRune(tmp[:0], r)
		if nDst+len(n) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], n)
		nSrc += size
	}
	return nDst, nSrc, nil
}

// appendRune appends the modified UTF-8 form of r.
func appendRune(p []byte, r rune) []byte {
	switch {
	case r == 0:
		return append(p, 0xC0, 0x80)
	case r > 0xFFFF:
		hi, lo := utf16.EncodeRune(r)
		return append3(append3(p, hi), lo)
	default:
		return utf8.AppendRune(p, r)
	}
}

func append3(p []byte, r rune) []byte {
	return append(p,
		byte(0xE0|(r>>12)&0x0F),
		byte(0x80|(r>>6)&0x3F),
		byte(0x80|r&0x3F))
}

type decoder struct{ transform.NopResetter }

func (decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size, status := decodeUnit(src[nSrc:], atEOF)
		switch status {
		case unitShort:
			return nDst, nSrc, transform.ErrShortSrc
		case unitBad:
			return nDst, nSrc, ErrInvalid
		}
		if utf16.IsSurrogate(r) && r < 0xDC00 {
			lo, loSize, loStatus := decodeUnit(src[nSrc+size:], atEOF)
			switch {
			case loStatus == unitShort:
				return nDst, nSrc, transform.ErrShortSrc
			case loStatus == unitOK && lo >= 0xDC00 && lo <= 0xDFFF:
				r = utf16.DecodeRune(r, lo)
				size += loSize
			default:
				r = utf8.RuneError
			}
		} else if utf16.IsSurrogate(r) {
			r = utf8.RuneError
		}
		if nDst+utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
	}
	return nDst, nSrc, nil
}

const (
	unitOK = iota
	unitShort
	unitBad
)

// decodeUnit decodes one 1-3 byte unit, allowing C0 80 and surrogates.
func decodeUnit(p []byte, atEOF bool) (rune, int, int) {
	if len(p) == 0 {
		if atEOF {
			return 0, 0, unitBad
		}
		return 0, 0, unitShort
	}
	c := p[0]
	var need int
	switch {
	case c < 0x80:
		return rune(c), 1, unitOK
	case c&0xE0 == 0xC0:
		need = 2
	case c&0xF0 == 0xE0:
		need = 3
	default:
		return 0, 0, unitBad
	}
	if len(p) < need {
		if atEOF {
			return 0, 0, unitBad
		}
		return 0, 0, unitShort
	}
	for _, cont := range p[1:need] {
		if cont&0xC0 != 0x80 {
			return 0, 0, unitBad
		}
	}
	if need == 2 {
		return rune(c&0x1F)<<6 | rune(p[1]&0x3F), 2, unitOK
	}
	return rune(c&0x0F)<<12 | rune(p[1]&0x3F)<<6 | rune(p[2]&0x3F), 3, unitOK
}
