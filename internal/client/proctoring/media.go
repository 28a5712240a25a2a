package proctoring

import (
	"sync"

	"github.com/dmitrijs2005/interviewdesk/internal/common"
)

// MediaStream is an opaque handle to a live camera stream.
type MediaStream struct {
	ID    string
	Label string
}

// NewMediaStream returns a stream handle with a random identifier.
func NewMediaStream(label string) (*MediaStream, error) {
	id, err := common.MakeRandHexString(8)
	if err != nil {
		return nil, err
	}
	return &MediaStream{ID: id, Label: label}, nil
}

// VideoElement is a display surface showing at most one stream.
type VideoElement struct {
	mu  sync.Mutex
	src *MediaStream
}

func (v *VideoElement) SrcObject() *MediaStream {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.src
}

func (v *VideoElement) SetSrcObject(s *MediaStream) {
	v.mu.Lock()
	v.src = s
	v.mu.Unlock()
}

// Ref points at a VideoElement owned by someone else. Current may be nil
// until the owner attaches one.
type Ref struct {
	Current *VideoElement
}
