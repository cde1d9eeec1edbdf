package seqkit

import (
	"strings"

	"go.llib.dev/seqkit/port/cursor"
)

// Split tokenizes a rune sequence on the runes of delimiters.
//
// Empty tokens between consecutive delimiters are skipped,
// and a trailing token is only yielded when it is not empty.
// With no delimiters, the whole input is a single token.
func Split[C cursor.Cursor[rune]](c C, delimiters string) *SplitSeq[C] {
	return &SplitSeq[C]{up: c, delimiters: delimiters}
}

type SplitSeq[C cursor.Cursor[rune]] struct {
	up         C
	delimiters string
	buf        []rune
	token      string
	eof        bool
}

func (s *SplitSeq[C]) First() *string {
	s.eof = false
	return s.scan(s.up.First())
}

func (s *SplitSeq[C]) Next() *string {
	if s.eof {
		return nil
	}
	return s.scan(s.up.Next())
}

func (s *SplitSeq[C]) scan(ch *rune) *string {
	s.buf = s.buf[:0]
	for ; ch != nil; ch = s.up.Next() {
		if strings.ContainsRune(s.delimiters, *ch) {
			if 0 < len(s.buf) {
				return s.emit()
			}
			continue
		}
		s.buf = append(s.buf, *ch)
	}
	s.eof = true
	if len(s.buf) == 0 {
		return nil
	}
	return s.emit()
}

func (s *SplitSeq[C]) emit() *string {
	s.token = string(s.buf)
	return &s.token
}
