package proctoring

import "sync"

// Options configures an Overlay. All fields are optional.
type Options struct {
	EnabledByDefault bool
	// OnReady runs once the overlay has finished setting up, and again each
	// time the enabled flag or the callback itself is replaced.
	OnReady func()
	// VideoRef is the primary camera surface whose stream is mirrored when
	// no explicit Stream is given.
	VideoRef      *Ref
	CameraEnabled bool
	Stream        *MediaStream
}

// View is what the overlay displays.
type View struct {
	Warnings   int
	Violations int
	Stream     *MediaStream
}

type readyKey struct {
	enabled bool
	gen     uint64
}

// Overlay is a display-only projection of a State plus a small mirror of the
// camera stream. It never starts or stops the provider.
type Overlay struct {
	state State

	mu          sync.Mutex
	opts        Options
	readyGen    uint64
	lastReady   *readyKey
	surface     *VideoElement
	unsubscribe func()
	renderers   map[uint64]func(View)
	nextID      uint64
}

func New(state State, opts Options) *Overlay {
	return &Overlay{state: state, opts: opts, renderers: map[uint64]func(View){}}
}

// Mount attaches the mirror surface, subscribes to state changes, fires
// OnReady and syncs the stream. Mounting an already mounted overlay is a
// no-op.
func (o *Overlay) Mount() {
	o.mu.Lock()
	if o.surface != nil {
		o.mu.Unlock()
		return
	}
	o.surface = &VideoElement{}
	o.lastReady = nil
	o.mu.Unlock()

	unsub := o.state.Subscribe(o.render)

	o.mu.Lock()
	o.unsubscribe = unsub
	o.mu.Unlock()

	o.maybeReady()
	o.syncStream()
	o.render()
}

// Unmount detaches the surface and stops listening to state changes.
func (o *Overlay) Unmount() {
	o.mu.Lock()
	unsub := o.unsubscribe
	o.unsubscribe = nil
	o.surface = nil
	o.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}

func (o *Overlay) Mounted() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.surface != nil
}

func (o *Overlay) SetEnabled(enabled bool) {
	o.mu.Lock()
	o.opts.EnabledByDefault = enabled
	o.mu.Unlock()
	o.maybeReady()
}

// SetOnReady replaces the ready callback. A new callback counts as a new
// lifecycle and fires once if the overlay is mounted.
func (o *Overlay) SetOnReady(fn func()) {
	o.mu.Lock()
	o.opts.OnReady = fn
	o.readyGen++
	o.mu.Unlock()
	o.maybeReady()
}

func (o *Overlay) SetVideoRef(ref *Ref) {
	o.mu.Lock()
	o.opts.VideoRef = ref
	o.mu.Unlock()
	o.syncStream()
}

func (o *Overlay) SetCameraEnabled(enabled bool) {
	o.mu.Lock()
	o.opts.CameraEnabled = enabled
	o.mu.Unlock()
	o.syncStream()
}

func (o *Overlay) SetStream(s *MediaStream) {
	o.mu.Lock()
	o.opts.Stream = s
	o.mu.Unlock()
	o.syncStream()
}

// Surface returns the mirror surface, or nil when not mounted.
func (o *Overlay) Surface() *VideoElement {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.surface
}

// View reads the current counters from the state. Nothing is cached.
func (o *Overlay) View() View {
	v := View{
		Warnings:   o.state.Warnings(),
		Violations: len(o.state.Violations()),
	}
	if s := o.Surface(); s != nil {
		v.Stream = s.SrcObject()
	}
	return v
}

// OnRender registers fn to receive a fresh View after every state change
// while mounted, and once on Mount.
func (o *Overlay) OnRender(fn func(View)) (remove func()) {
	o.mu.Lock()
	id := o.nextID
	o.nextID++
	o.renderers[id] = fn
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		delete(o.renderers, id)
		o.mu.Unlock()
	}
}

func (o *Overlay) render() {
	o.mu.Lock()
	if o.surface == nil {
		o.mu.Unlock()
		return
	}
	fns := make([]func(View), 0, len(o.renderers))
	for _, fn := range o.renderers {
		fns = append(fns, fn)
	}
	o.mu.Unlock()

	if len(fns) == 0 {
		return
	}
	v := o.View()
	for _, fn := range fns {
		fn(v)
	}
}

func (o *Overlay) maybeReady() {
	o.mu.Lock()
	if o.surface == nil {
		o.mu.Unlock()
		return
	}
	key := readyKey{enabled: o.opts.EnabledByDefault, gen: o.readyGen}
	if o.lastReady != nil && *o.lastReady == key {
		o.mu.Unlock()
		return
	}
	o.lastReady = &key
	fn := o.opts.OnReady
	o.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// syncStream points the mirror at the explicit stream if one is set,
// otherwise at whatever the primary surface currently shows. With neither
// available the mirror keeps its current source. Reassigning the same
// stream is harmless.
func (o *Overlay) syncStream() {
	o.mu.Lock()
	surface := o.surface
	stream := o.opts.Stream
	ref := o.opts.VideoRef
	o.mu.Unlock()

	if surface == nil {
		return
	}
	switch {
	case stream != nil:
		surface.SetSrcObject(stream)
	case ref != nil && ref.Current != nil:
		surface.SetSrcObject(ref.Current.SrcObject())
	}
}
