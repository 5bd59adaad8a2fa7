// Copyright 2026 Google LLC. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tlog

import (
	"bytes"
	"strconv"
)

// Encoder writes a compact JSON object whose keys appear in the order they
// were added. Output carries no insignificant whitespace, integers are plain
// decimal and strings are escaped per RFC 8259 without HTML escaping.
type Encoder struct {
	buf bytes.Buffer
}

// Str adds a string field.
func (e *Encoder) Str(key, val string) *Encoder {
	e.key(key)
	writeString(&e.buf, val)
	return e
}

// Int adds an integer field.
func (e *Encoder) Int(key string, val int64) *Encoder {
	e.key(key)
	e.buf.WriteString(strconv.FormatInt(val, 10))
	return e
}

// Bytes returns the encoded object.
func (e *Encoder) Bytes() []byte {
	out := make([]byte, 0, e.buf.Len()+2)
	out = append(out, '{')
	out = append(out, e.buf.Bytes()...)
	return append(out, '}')
}

func (e *Encoder) key(k string) {
	if e.buf.Len() > 0 {
		e.buf.WriteByte(',')
	}
	writeString(&e.buf, k)
	e.buf.WriteByte(':')
}

const hexDigits = "0123456789abcdef"

func writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if c < 0x20 {
				buf.WriteString(`\u00`)
				buf.WriteByte(hexDigits[c>>4])
				buf.WriteByte(hexDigits[c&0xf])
				continue
			}
			buf.WriteByte(c)
		}
	}
	buf.WriteByte('"')
}

// EncodeCanonical returns the bytes the log signed when it issued the
// inclusion promise for e. Only body, integratedTime, logID and logIndex are
// included, in that order, and the body is the stored base64 text.
func (e *LogEntry) EncodeCanonical() []byte {
	var enc Encoder
	return enc.Str("body", e.Body).
		Int("integratedTime", e.IntegratedTime).
		Str("logID", e.LogID).
		Int("logIndex", e.LogIndex).
		Bytes()
}
