package seqkit

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"unicode/utf8"
)

// Runes creates a view over the runes of a string.
// Invalid UTF-8 is yielded as utf8.RuneError, one byte at a time.
func Runes(s string) *RuneSeq {
	return &RuneSeq{text: s}
}

// CString creates a rune sequence out of a NUL terminated byte buffer.
// The runes up to the first zero byte are yielded,
// or the whole buffer when it has no terminator.
func CString(buf []byte) *RuneSeq {
	if n := bytes.IndexByte(buf, 0); 0 <= n {
		buf = buf[:n]
	}
	return Runes(string(buf))
}

type RuneSeq struct {
	text    string
	offset  int
	width   int
	current rune
}

func (s *RuneSeq) First() *rune {
	s.offset, s.width = 0, 0
	return s.decode()
}

func (s *RuneSeq) Next() *rune {
	s.offset += s.width
	return s.decode()
}

func (s *RuneSeq) decode() *rune {
	if len(s.text) <= s.offset {
		s.width = 0
		return nil
	}
	s.current, s.width = utf8.DecodeRuneInString(s.text[s.offset:])
	return &s.current
}

// Reader creates a rune sequence that reads from r.
//
// When r is an io.Seeker, First rewinds r to its beginning, so the sequence is restartable.
// Otherwise the sequence is single use:
// First continues from wherever the reader currently is.
//
// When r doesn't implement io.RuneReader, it is wrapped into a bufio.Reader.
// Read failures end the sequence, and they are reported by Err.
func Reader(r io.Reader) *ReaderSeq {
	s := &ReaderSeq{source: r}
	if rr, ok := r.(io.RuneReader); ok {
		s.reader = rr
	} else {
		s.buffered = bufio.NewReader(r)
		s.reader = s.buffered
	}
	return s
}

type ReaderSeq struct {
	source   io.Reader
	reader   io.RuneReader
	buffered *bufio.Reader
	current  rune
	done     bool
	err      error
}

func (s *ReaderSeq) First() *rune {
	s.done, s.err = false, nil
	if seeker, ok := s.source.(io.Seeker); ok {
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			s.done, s.err = true, err
			return nil
		}
		if s.buffered != nil {
			s.buffered.Reset(s.source)
		}
	}
	return s.read()
}

func (s *ReaderSeq) Next() *rune {
	if s.done {
		return nil
	}
	return s.read()
}

// Err returns the read error that ended the sequence, if any.
// Reaching io.EOF is not an error.
func (s *ReaderSeq) Err() error {
	return s.err
}

func (s *ReaderSeq) read() *rune {
	r, _, err := s.reader.ReadRune()
	if err != nil {
		s.done = true
		if !errors.Is(err, io.EOF) {
			s.err = err
		}
		return nil
	}
	s.current = r
	return &s.current
}
