package contextutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMetadataRoundTrip(t *testing.T) {
	ctx := context.Background()
	ctx = WithRequestID(ctx, "req-1")
	ctx = WithUserID(ctx, "user-1")
	ctx = WithTenantID(ctx, "tenant-1")

	assert.Equal(t, Metadata{RequestID: "req-1", UserID: "user-1", TenantID: "tenant-1"}, ExtractMetadata(ctx))
	assert.Equal(t, Metadata{}, ExtractMetadata(context.Background()))
}

func TestGetLogger(t *testing.T) {
	scoped := zap.NewExample()
	fallback := zap.NewNop()

	assert.Same(t, scoped, GetLogger(WithLogger(context.Background(), scoped), fallback))
	assert.Same(t, fallback, GetLogger(context.Background(), fallback))
	assert.NotNil(t, GetLogger(context.Background(), nil))
}
