package trace

import "github.com/arloliu/rlestep/internal/hash"

// Sequence is the ordered list of steps recorded for one trace run.
type Sequence struct {
	Kind  Kind   `json:"kind" yaml:"kind"`
	Steps []Step `json:"steps" yaml:"steps"`
}

// Len returns the number of steps.
func (s Sequence) Len() int {
	return len(s.Steps)
}

// First returns the initialization step. ok is false for an empty sequence.
func (s Sequence) First() (step Step, ok bool) {
	if len(s.Steps) == 0 {
		return Step{}, false
	}

	return s.Steps[0], true
}

// Last returns the return step. ok is false for an empty sequence.
func (s Sequence) Last() (step Step, ok bool) {
	if len(s.Steps) == 0 {
		return Step{}, false
	}

	return s.Steps[len(s.Steps)-1], true
}

// Result returns the output recorded by the final step, or nil for an empty
// sequence.
func (s Sequence) Result() []byte {
	last, ok := s.Last()
	if !ok {
		return nil
	}

	return last.State.Output()
}

// Ops returns the op of every step in order.
func (s Sequence) Ops() []Op {
	ops := make([]Op, len(s.Steps))
	for i, step := range s.Steps {
		ops[i] = step.Op
	}

	return ops
}

// Count returns how many steps record op.
func (s Sequence) Count(op Op) int {
	n := 0
	for _, step := range s.Steps {
		if step.Op == op {
			n++
		}
	}

	return n
}

// Fingerprint returns an xxHash64 over the kind, the op stream, the loop
// indices and the final result. Two traces of the same input always share a
// fingerprint, which lets a renderer cache its output.
func (s Sequence) Fingerprint() uint64 {
	d := hash.NewDigest()
	d.WriteUint64(uint64(s.Kind))
	d.WriteUint64(uint64(len(s.Steps)))
	for _, step := range s.Steps {
		d.WriteUint64(uint64(step.Op))
		d.WriteUint64(uint64(step.State.Index()))
	}
	d.WriteBytes(s.Result())

	return d.Sum64()
}

// Cursor returns a Cursor positioned on the first step.
func (s Sequence) Cursor() *Cursor {
	return &Cursor{seq: s}
}
