package proctoring

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyState records whether the overlay ever drives the provider.
type spyState struct {
	*Store
	starts, stops int
}

func (s *spyState) Start() { s.starts++ }
func (s *spyState) Stop()  { s.stops++ }

func stream(t *testing.T, label string) *MediaStream {
	t.Helper()
	s, err := NewMediaStream(label)
	require.NoError(t, err)
	return s
}

func TestOverlay_ReadyFiresOncePerLifecycleChange(t *testing.T) {
	ready := 0
	o := New(NewStore(), Options{OnReady: func() { ready++ }})

	o.SetEnabled(true)
	assert.Zero(t, ready, "not mounted yet")

	o.Mount()
	assert.Equal(t, 1, ready)
	o.Mount()
	o.SetEnabled(true)
	o.SetCameraEnabled(true)
	assert.Equal(t, 1, ready)

	o.SetEnabled(false)
	assert.Equal(t, 2, ready)

	second := 0
	o.SetOnReady(func() { second++ })
	assert.Equal(t, 2, ready)
	assert.Equal(t, 1, second)

	o.Unmount()
	o.Mount()
	assert.Equal(t, 2, second)
}

func TestOverlay_NilReadyIsFine(t *testing.T) {
	o := New(NewStore(), Options{})
	assert.NotPanics(t, o.Mount)
}

func TestOverlay_ExplicitStreamWins(t *testing.T) {
	primary := &VideoElement{}
	cam := stream(t, "front camera")
	primary.SetSrcObject(cam)
	explicit := stream(t, "screen")

	o := New(NewStore(), Options{VideoRef: &Ref{Current: primary}, Stream: explicit})
	o.Mount()
	assert.Same(t, explicit, o.Surface().SrcObject())

	o.SetStream(nil)
	assert.Same(t, cam, o.Surface().SrcObject())
}

func TestOverlay_MirrorsPrimaryOnDependencyChange(t *testing.T) {
	primary := &VideoElement{}
	ref := &Ref{}
	o := New(NewStore(), Options{VideoRef: ref})
	o.Mount()
	assert.Nil(t, o.Surface().SrcObject())

	ref.Current = primary
	cam := stream(t, "cam")
	primary.SetSrcObject(cam)
	assert.Nil(t, o.Surface().SrcObject(), "no resync without a dependency change")

	o.SetCameraEnabled(true)
	assert.Same(t, cam, o.Surface().SrcObject())

	other := &VideoElement{}
	o.SetVideoRef(&Ref{Current: other})
	assert.Nil(t, o.Surface().SrcObject())
}

func TestOverlay_NoSourceKeepsCurrent(t *testing.T) {
	cam := stream(t, "cam")
	o := New(NewStore(), Options{Stream: cam})
	o.Mount()

	o.SetVideoRef(nil)
	o.SetStream(nil)
	assert.Same(t, cam, o.Surface().SrcObject())
}

func TestOverlay_SyncBeforeMountIsIgnored(t *testing.T) {
	cam := stream(t, "cam")
	o := New(NewStore(), Options{})
	o.SetStream(cam)
	assert.Nil(t, o.Surface())

	o.Mount()
	assert.Same(t, cam, o.Surface().SrcObject())
}

func TestOverlay_ViewTracksStateOnEveryRender(t *testing.T) {
	store := NewStore()
	o := New(store, Options{})

	var views []View
	o.OnRender(func(v View) {
		views = append(views, v)
		assert.Equal(t, store.Warnings(), v.Warnings)
		assert.Equal(t, len(store.Violations()), v.Violations)
	})

	store.AddWarning()
	assert.Empty(t, views, "not mounted")

	o.Mount()
	store.AddWarning()
	store.RecordViolation("phone", "")
	store.AddWarning()

	require.Len(t, views, 4)
	assert.Equal(t, View{Warnings: 3, Violations: 1}, views[3])
	assert.Equal(t, View{Warnings: 3, Violations: 1}, o.View())

	o.Unmount()
	store.AddWarning()
	assert.Len(t, views, 4)
	assert.Equal(t, 4, o.View().Warnings)
}

func TestOverlay_RemoveRenderer(t *testing.T) {
	store := NewStore()
	o := New(store, Options{})
	o.Mount()

	calls := 0
	remove := o.OnRender(func(View) { calls++ })
	store.AddWarning()
	remove()
	store.AddWarning()
	assert.Equal(t, 1, calls)
}

func TestOverlay_NeverDrivesProvider(t *testing.T) {
	spy := &spyState{Store: NewStore()}
	o := New(spy, Options{EnabledByDefault: true})
	o.Mount()
	o.SetEnabled(false)
	o.Unmount()
	assert.Zero(t, spy.starts)
	assert.Zero(t, spy.stops)
}

func TestOverlay_RenderText(t *testing.T) {
	store := NewStore()
	store.AddWarning()
	store.RecordViolation("tab-switch", "")
	store.RecordViolation("phone", "")

	o := New(store, Options{Stream: &MediaStream{ID: "abc", Label: "front"}})
	o.Mount()

	var buf bytes.Buffer
	require.NoError(t, o.RenderText(&buf))
	assert.Equal(t, "Proctoring\n  Camera: front\n  Warnings: 1\n  Violations: 2\n", buf.String())
}

func TestOverlay_RenderHTML(t *testing.T) {
	store := NewStore()
	store.AddWarning()
	store.AddWarning()

	o := New(store, Options{})
	o.Mount()

	var buf bytes.Buffer
	require.NoError(t, o.RenderHTML(&buf))
	out := buf.String()
	assert.Contains(t, out, `<div class="proctor-overlay">`)
	assert.Contains(t, out, "<h4>Proctoring</h4>")
	assert.Contains(t, out, "<li>Warnings: <strong>2</strong></li>")
	assert.Contains(t, out, "<li>Violations: <strong>0</strong></li>")
	assert.Contains(t, out, "<li>Camera: off</li>")
}

func TestOverlay_RenderHTMLEscapesLabels(t *testing.T) {
	o := New(NewStore(), Options{Stream: &MediaStream{ID: "x", Label: "<script>"}})
	o.Mount()

	var buf bytes.Buffer
	require.NoError(t, o.RenderHTML(&buf))
	assert.NotContains(t, buf.String(), "<script>")
}

func TestNewMediaStream(t *testing.T) {
	a := stream(t, "a")
	b := stream(t, "b")
	assert.Len(t, a.ID, 16)
	assert.NotEqual(t, a.ID, b.ID)
}
