package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	svc, _ := newService(t)
	ctx := WithAuth(context.Background(), svc)
	assert.Same(t, svc, FromContext(ctx))
}

func TestFromContext_PanicsOutsideScope(t *testing.T) {
	assert.Panics(t, func() { FromContext(context.Background()) })
}
