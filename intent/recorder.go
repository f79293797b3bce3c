package intent

import (
	"github.com/annaw245/Software/world"
)

// Recorder collects emitted intents keyed by robot, last write wins
type Recorder struct {
	byRobot map[world.RobotID]Intent
	order   []world.RobotID
	count   int
}

func NewRecorder() *Recorder {
	return &Recorder{byRobot: make(map[world.RobotID]Intent)}
}

// Sink returns a Sink bound to this recorder
func (r *Recorder) Sink() Sink {
	return r.Record
}

func (r *Recorder) Record(i Intent) {
	if i == nil {
		return
	}
	id := i.RobotID()
	if _, ok := r.byRobot[id]; !ok {
		r.order = append(r.order, id)
	}
	r.byRobot[id] = i
	r.count++
}

// Get returns the last intent recorded for id
func (r *Recorder) Get(id world.RobotID) (Intent, bool) {
	i, ok := r.byRobot[id]
	return i, ok
}

// Count is the total number of Record calls, including overwrites
func (r *Recorder) Count() int { return r.count }

// All returns the latest intent per robot in first-seen order
func (r *Recorder) All() []Intent {
	out := make([]Intent, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byRobot[id])
	}
	return out
}

// Map returns a copy of the latest intent per robot
func (r *Recorder) Map() map[world.RobotID]Intent {
	out := make(map[world.RobotID]Intent, len(r.byRobot))
	for id, i := range r.byRobot {
		out[id] = i
	}
	return out
}

// Reset clears everything recorded so far
func (r *Recorder) Reset() {
	clear(r.byRobot)
	r.order = r.order[:0]
	r.count = 0
}
