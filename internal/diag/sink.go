package diag

// Handler is called for each diagnostic as it is reported.
type Handler func(d *Diagnostic)

// Sink accumulates diagnostics in report order.
type Sink struct {
	list      []*Diagnostic
	max       int // 0 means unlimited
	truncated bool
	handler   Handler
}

// NewSink returns a sink that keeps at most max diagnostics (0 for no
// limit) and forwards each kept one to h, if h is not nil.
func NewSink(max int, h Handler) *Sink {
	return &Sink{max: max, handler: h}
}

// Report adds d to the sink. Once the limit is reached further
// diagnostics are dropped and Truncated reports true. Fatal diagnostics
// are always kept.
func (s *Sink) Report(d *Diagnostic) {
	if s.max > 0 && len(s.list) >= s.max && !d.Kind.Fatal() {
		s.truncated = true
		return
	}
	s.list = append(s.list, d)
	if s.handler != nil {
		s.handler(d)
	}
}

// Len returns the number of kept diagnostics.
func (s *Sink) Len() int {
	return len(s.list)
}

// List returns the kept diagnostics in report order.
func (s *Sink) List() []*Diagnostic {
	return s.list
}

// Truncated reports whether diagnostics were dropped because of the limit.
func (s *Sink) Truncated() bool {
	return s.truncated
}

// Count returns the number of kept diagnostics of kind k.
func (s *Sink) Count(k Kind) int {
	n := 0
	for _, d := range s.list {
		if d.Kind == k {
			n++
		}
	}
	return n
}

// Err returns the first diagnostic, or nil if none was reported.
func (s *Sink) Err() error {
	if len(s.list) == 0 {
		return nil
	}
	return s.list[0]
}
