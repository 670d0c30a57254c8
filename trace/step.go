package trace

import "fmt"

// Step is one recorded operation. Steps are never modified after they are
// recorded; treat State buffers as read-only.
type Step struct {
	Op          Op     `json:"op" yaml:"op"`
	State       State  `json:"state" yaml:"state"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

func (s Step) String() string {
	if s.Description == "" {
		return s.Op.String()
	}

	return fmt.Sprintf("%s: %s", s.Op, s.Description)
}

// recorder accumulates steps for a single trace run.
type recorder struct {
	cfg   *Config
	steps []Step
}

func newRecorder(cfg *Config, sizeHint int) *recorder {
	if cfg.maxSteps > 0 && sizeHint > cfg.maxSteps {
		sizeHint = cfg.maxSteps
	}

	return &recorder{cfg: cfg, steps: make([]Step, 0, sizeHint)}
}

// record snapshots st and appends a step. describe is only called when
// descriptions are enabled.
func (r *recorder) record(op Op, st State, describe func() string) error {
	if r.cfg.maxSteps > 0 && len(r.steps) >= r.cfg.maxSteps {
		return fmt.Errorf("%w: limit %d reached at %s", ErrStepLimit, r.cfg.maxSteps, op)
	}

	step := Step{Op: op, State: st.clone()}
	if r.cfg.descriptions {
		step.Description = describe()
	}
	r.steps = append(r.steps, step)

	return nil
}

// text returns a describe func for a constant description.
func text(s string) func() string {
	return func() string { return s }
}
