package core

// Limits bounds the size of a registry and the strings stored in it.
type Limits struct {
	MaxParams  int
	MaxOptions int
	MaxGroups  int
	// MaxLabel is the longest label, group or option string in bytes.
	MaxLabel int
}

// DefaultLimits matches the smaller of the built-in panel themes.
func DefaultLimits() Limits {
	return Limits{MaxParams: 64, MaxOptions: 16, MaxGroups: 16, MaxLabel: 31}
}

// Group is a named bucket of parameters. Params holds registry indices in
// insertion order.
type Group struct {
	Name   string
	Params []int
}

// Registry owns the parameter set of a panel. Groups are discovered in
// first-seen order as parameters are added.
type Registry struct {
	limits  Limits
	params  []Parameter
	groupOf []int
	groups  []Group
	byName  map[string]int
}

// NewRegistry creates an empty registry bounded by limits. Non-positive
// limits fall back to DefaultLimits.
func NewRegistry(limits Limits) *Registry {
	def := DefaultLimits()
	if limits.MaxParams <= 0 {
		limits.MaxParams = def.MaxParams
	}
	if limits.MaxOptions <= 0 {
		limits.MaxOptions = def.MaxOptions
	}
	if limits.MaxGroups <= 0 {
		limits.MaxGroups = def.MaxGroups
	}
	if limits.MaxLabel <= 0 {
		limits.MaxLabel = def.MaxLabel
	}
	return &Registry{limits: limits, byName: map[string]int{}}
}

// Limits returns the bounds the registry enforces.
func (r *Registry) Limits() Limits { return r.limits }

// Add appends p and returns its index. It returns -1 once MaxParams is
// reached. Options beyond MaxOptions are dropped. A parameter whose group
// cannot be created because MaxGroups is reached is kept without a group.
func (r *Registry) Add(p Parameter) int {
	if len(r.params) >= r.limits.MaxParams {
		return -1
	}
	if len(p.Options) > r.limits.MaxOptions {
		p.Options = p.Options[:r.limits.MaxOptions]
	}
	idx := len(r.params)
	r.params = append(r.params, p)

	gi, ok := r.byName[p.Group]
	if !ok {
		if len(r.groups) >= r.limits.MaxGroups {
			r.groupOf = append(r.groupOf, -1)
			return idx
		}
		gi = len(r.groups)
		r.groups = append(r.groups, Group{Name: p.Group})
		r.byName[p.Group] = gi
	}
	r.groups[gi].Params = append(r.groups[gi].Params, idx)
	r.groupOf = append(r.groupOf, gi)
	return idx
}

// Len returns the number of parameters.
func (r *Registry) Len() int { return len(r.params) }

// Param returns the parameter at i.
func (r *Registry) Param(i int) (Parameter, bool) {
	if i < 0 || i >= len(r.params) {
		return Parameter{}, false
	}
	return r.params[i], true
}

// Params exposes the parameter slice. Callers may mutate values in place.
func (r *Registry) Params() []Parameter { return r.params }

// Groups returns the groups in first-seen order.
func (r *Registry) Groups() []Group { return r.groups }

// GroupOf returns the group index of parameter i, or -1.
func (r *Registry) GroupOf(i int) int {
	if i < 0 || i >= len(r.groupOf) {
		return -1
	}
	return r.groupOf[i]
}

// Value returns the value of parameter i, or 0 when i is out of range.
func (r *Registry) Value(i int) float32 {
	if i < 0 || i >= len(r.params) {
		return 0
	}
	return r.params[i].Value
}

// SetValue stores v into parameter i without any clamping. Out of range
// indices are ignored. It reports whether a value was written.
func (r *Registry) SetValue(i int, v float32) bool {
	if i < 0 || i >= len(r.params) {
		return false
	}
	r.params[i].Value = v
	return true
}

// Values copies every parameter value into a new slice.
func (r *Registry) Values() []float32 {
	out := make([]float32, len(r.params))
	for i, p := range r.params {
		out[i] = p.Value
	}
	return out
}
