package grasp

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// scriptContact is a contact as written in a script.
type scriptContact struct {
	ID int     `yaml:"id"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
}

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action   string          `yaml:"action"`
	X        float64         `yaml:"x,omitempty"`
	Y        float64         `yaml:"y,omitempty"`
	Button   string          `yaml:"button,omitempty"`
	Key      string          `yaml:"key,omitempty"`
	Delta    float64         `yaml:"delta,omitempty"`
	Contacts []scriptContact `yaml:"contacts,omitempty"`
	FromX    float64         `yaml:"fromX,omitempty"`
	FromY    float64         `yaml:"fromY,omitempty"`
	ToX      float64         `yaml:"toX,omitempty"`
	ToY      float64         `yaml:"toY,omitempty"`
	From     float64         `yaml:"from,omitempty"`
	To       float64         `yaml:"to,omitempty"`
	Turn     float64         `yaml:"turn,omitempty"`
	Frames   int             `yaml:"frames,omitempty"`
}

// scriptFile is the top-level structure of a script. JSON is accepted too.
type scriptFile struct {
	Steps []scriptStep `yaml:"steps"`
}

// scriptEvent is one input event applied to an engine.
type scriptEvent func(e *Engine)

// scriptFrame holds the input events delivered before one tick.
type scriptFrame struct {
	events []scriptEvent
}

// Script is a compiled input script: a sequence of frames, each a batch of
// input events followed by exactly one tick. Scripts drive engines without a
// window, for tests and for the CLI replay command.
//
// Actions: touchstart, touchmove, touchend, touchcancel (contacts);
// mousedown (x, y, button), mousemove (x, y), mouseup; keydown, keyup (key);
// wheel (delta); reset (x, y); tick (frames); and the multi-frame helpers
// drag (fromX, fromY, toX, toY, frames) and pinch (x, y, from, to, turn,
// frames).
type Script struct {
	frames []scriptFrame
}

// LoadScript parses a YAML or JSON script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	s := &Script{}
	var pending []scriptEvent
	for i, st := range f.Steps {
		var err error
		pending, err = s.compile(st, pending)
		if err != nil {
			return nil, fmt.Errorf("parse script: step %d (%s): %w", i, st.Action, err)
		}
	}
	if len(pending) > 0 {
		s.frames = append(s.frames, scriptFrame{events: pending})
	}
	return s, nil
}

// Len returns the number of frames.
func (s *Script) Len() int {
	return len(s.frames)
}

// compile appends the events of st to pending, closing frames on ticks.
func (s *Script) compile(st scriptStep, pending []scriptEvent) ([]scriptEvent, error) {
	switch strings.ToLower(st.Action) {
	case "touchstart":
		cs := st.contacts()
		pending = append(pending, func(e *Engine) { e.TouchStart(cs) })
	case "touchmove":
		cs := st.contacts()
		pending = append(pending, func(e *Engine) { e.TouchMove(cs) })
	case "touchend":
		cs := st.contacts()
		pending = append(pending, func(e *Engine) { e.TouchEnd(cs) })
	case "touchcancel":
		cs := st.contacts()
		pending = append(pending, func(e *Engine) { e.TouchCancel(cs) })
	case "mousedown":
		b, err := parseButton(st.Button)
		if err != nil {
			return nil, err
		}
		x, y := st.X, st.Y
		pending = append(pending, func(e *Engine) { e.MouseDown(b, x, y) })
	case "mousemove":
		x, y := st.X, st.Y
		pending = append(pending, func(e *Engine) { e.MouseMove(x, y) })
	case "mouseup":
		pending = append(pending, func(e *Engine) { e.MouseUp() })
	case "keydown":
		k := Key(st.Key)
		pending = append(pending, func(e *Engine) { e.KeyDown(k) })
	case "keyup":
		k := Key(st.Key)
		pending = append(pending, func(e *Engine) { e.KeyUp(k) })
	case "wheel":
		d := st.Delta
		pending = append(pending, func(e *Engine) { e.Wheel(d) })
	case "reset":
		x, y := st.X, st.Y
		pending = append(pending, func(e *Engine) {
			if c, ok := e.ControlAt(x, y); ok {
				_ = e.Reset(c)
			}
		})
	case "tick":
		n := max(st.Frames, 1)
		s.frames = append(s.frames, scriptFrame{events: pending})
		for i := 1; i < n; i++ {
			s.frames = append(s.frames, scriptFrame{})
		}
		pending = nil
	case "drag":
		pending = s.compileDrag(st, pending)
	case "pinch":
		pending = s.compilePinch(st, pending)
	default:
		return nil, fmt.Errorf("unknown action")
	}
	return pending, nil
}

// compileDrag expands a drag into a press, linearly interpolated moves (one
// per frame) and a release. The total sequence takes max(frames, 2) frames.
func (s *Script) compileDrag(st scriptStep, pending []scriptEvent) []scriptEvent {
	frames := max(st.Frames, 2)
	fx, fy, tx, ty := st.FromX, st.FromY, st.ToX, st.ToY
	pending = append(pending, func(e *Engine) { e.MouseDown(MouseButtonLeft, fx, fy) })
	s.frames = append(s.frames, scriptFrame{events: pending})
	for i := 1; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		x := fx + (tx-fx)*t
		y := fy + (ty-fy)*t
		s.frames = append(s.frames, scriptFrame{events: []scriptEvent{
			func(e *Engine) { e.MouseMove(x, y) },
		}})
	}
	return []scriptEvent{func(e *Engine) { e.MouseUp() }}
}

// compilePinch expands a two-finger pinch centered on (x, y): contacts 1 and
// 2 start on opposite sides at radius from, then move linearly to radius to
// while turning by turn degrees, one step per frame, then lift.
func (s *Script) compilePinch(st scriptStep, pending []scriptEvent) []scriptEvent {
	frames := max(st.Frames, 2)
	cx, cy := st.X, st.Y
	at := func(r, deg float64) []Contact {
		sin, cos := math.Sincos(deg * math.Pi / 180)
		return []Contact{
			{ID: 1, X: cx + r*cos, Y: cy + r*sin},
			{ID: 2, X: cx - r*cos, Y: cy - r*sin},
		}
	}
	start := at(st.From, 0)
	pending = append(pending, func(e *Engine) { e.TouchStart(start) })
	s.frames = append(s.frames, scriptFrame{events: pending})
	for i := 1; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		cs := at(st.From+(st.To-st.From)*t, st.Turn*t)
		s.frames = append(s.frames, scriptFrame{events: []scriptEvent{
			func(e *Engine) { e.TouchMove(cs) },
		}})
	}
	end := at(st.To, st.Turn)
	return []scriptEvent{func(e *Engine) { e.TouchEnd(end) }}
}

func (st scriptStep) contacts() []Contact {
	cs := make([]Contact, len(st.Contacts))
	for i, c := range st.Contacts {
		cs[i] = Contact{ID: ContactID(c.ID), X: c.X, Y: c.Y}
	}
	return cs
}

func parseButton(s string) (MouseButton, error) {
	switch strings.ToLower(s) {
	case "", "left", "primary":
		return MouseButtonLeft, nil
	case "right", "secondary":
		return MouseButtonRight, nil
	case "middle":
		return MouseButtonMiddle, nil
	}
	return 0, fmt.Errorf("unknown button %q", s)
}

// ScriptRunner replays a Script against an engine one frame at a time.
type ScriptRunner struct {
	script *Script
	engine *Engine
	sched  *Scheduler
	cursor int
}

// NewScriptRunner prepares script for engine. Ticks go through sched, so a
// panicking frame is reported and the replay carries on.
func NewScriptRunner(script *Script, engine *Engine, sched *Scheduler) *ScriptRunner {
	if sched == nil {
		sched = NewScheduler(engine, engine.logger)
	}
	return &ScriptRunner{script: script, engine: engine, sched: sched}
}

// Done reports whether every frame has been replayed.
func (r *ScriptRunner) Done() bool {
	return r.cursor >= len(r.script.frames)
}

// Frame returns the number of frames replayed so far.
func (r *ScriptRunner) Frame() int {
	return r.cursor
}

// Step applies the next frame's input events, then ticks once. It returns
// the tick's fault, if any. No-op when done.
func (r *ScriptRunner) Step() error {
	if r.Done() {
		return nil
	}
	f := r.script.frames[r.cursor]
	r.cursor++
	for _, ev := range f.events {
		ev(r.engine)
	}
	return r.sched.Step()
}

// Run replays every remaining frame, calling after (if non-nil) after each
// tick. Tick faults do not stop the replay; the count is returned.
func (r *ScriptRunner) Run(after func(frame int)) (faults int) {
	for !r.Done() {
		if err := r.Step(); err != nil {
			faults++
		}
		if after != nil {
			after(r.cursor)
		}
	}
	return faults
}
