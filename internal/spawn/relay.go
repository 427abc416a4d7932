// SPDX-License-Identifier: MPL-2.0

package spawn

import (
	"io"
	"sync"
)

// StdinRelay shares one input stream between an interactive child and
// whatever reads stdin after it. A background reader owns the underlying
// stream; chunks are handed to the pseudo-terminal pump while the child is
// alive and replayed through Read once the pump detaches, so a line typed
// around child exit reaches the next reader instead of being lost.
type StdinRelay struct {
	ch chan []byte

	mu       sync.Mutex
	leftover []byte
}

// NewStdinRelay starts reading r in the background. The relay owns r from
// this point on; no one else may read it directly.
func NewStdinRelay(r io.Reader) *StdinRelay {
	s := &StdinRelay{ch: make(chan []byte)}
	go func() {
		defer close(s.ch)
		for {
			buf := make([]byte, 4096)
			n, err := r.Read(buf)
			if n > 0 {
				s.ch <- buf[:n]
			}
			if err != nil {
				return
			}
		}
	}()
	return s
}

// pump forwards chunks to w until done closes, w rejects a write, or the
// input ends. A chunk taken from the stream but not written is stashed for
// the next Read rather than dropped.
func (s *StdinRelay) pump(w io.Writer, done <-chan struct{}) {
	for {
		// done takes priority over a ready chunk.
		select {
		case <-done:
			return
		default:
		}
		select {
		case <-done:
			return
		case chunk, ok := <-s.ch:
			if !ok {
				return
			}
			if _, err := w.Write(chunk); err != nil {
				s.stash(chunk)
				return
			}
		}
	}
}

func (s *StdinRelay) stash(chunk []byte) {
	s.mu.Lock()
	s.leftover = append(s.leftover, chunk...)
	s.mu.Unlock()
}

// Read returns stashed bytes first, then chunks from the stream. It must
// only be called once the pump has detached.
func (s *StdinRelay) Read(p []byte) (int, error) {
	s.mu.Lock()
	if len(s.leftover) > 0 {
		n := copy(p, s.leftover)
		s.leftover = s.leftover[n:]
		s.mu.Unlock()
		return n, nil
	}
	s.mu.Unlock()

	chunk, ok := <-s.ch
	if !ok {
		return 0, io.EOF
	}
	n := copy(p, chunk)
	if n < len(chunk) {
		s.stash(chunk[n:])
	}
	return n, nil
}
