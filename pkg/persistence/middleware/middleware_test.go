package middleware_test

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"io"
	"testing"
	"time"

	"github.com/aretw0/plantctl/pkg/adapters/memory"
	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/aretw0/plantctl/pkg/persistence/middleware"
	"github.com/aretw0/plantctl/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateKey(t *testing.T) []byte {
	k := make([]byte, middleware.KeySize)
	_, err := io.ReadFull(rand.Reader, k)
	require.NoError(t, err)
	return k
}

func sampleRun(id string) *domain.Run {
	run := domain.NewRun(id, &domain.Sequence{
		Name: "separator-shutdown",
		Record: []domain.Variable{
			{Name: "23LT0001:MeasuredValue", Unit: "mm"},
			{Name: "23FT0001:MeasuredValue", Unit: "kg/h"},
		},
	})
	run.Ticks = 2
	run.StageIndex = 1
	run.Samples = append(run.Samples,
		domain.Sample{ModelTime: 0, Values: []domain.Value{450.0, 1200.0}},
		domain.Sample{ModelTime: time.Second, Values: []domain.Value{448.0, 1100.0}},
	)
	return run
}

func encrypted(t *testing.T, cfg middleware.EncryptionConfig) middleware.Middleware {
	t.Helper()
	mw, err := middleware.NewEncryptionMiddleware(cfg)
	require.NoError(t, err)
	return mw
}

func TestEncryptionMiddleware_Roundtrip(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewStore()
	secure := encrypted(t, middleware.EncryptionConfig{ActiveKey: generateKey(t)})(backend)

	run := sampleRun("r1")
	require.NoError(t, secure.Save(ctx, run))

	stored, err := backend.Load(ctx, "r1")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.Sealed)
	assert.Empty(t, stored.Samples)
	assert.Empty(t, stored.Columns)
	assert.Equal(t, "separator-shutdown", stored.Sequence)
	assert.Equal(t, 2, stored.Ticks)

	loaded, err := secure.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Empty(t, loaded.Sealed)
	assert.Equal(t, 1, loaded.StageIndex)
	require.Len(t, loaded.Samples, 2)
	assert.Equal(t, 448.0, loaded.Samples[1].Values[0])

	ids, err := secure.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, ids)
	require.NoError(t, secure.Delete(ctx, "r1"))
	_, err = secure.Load(ctx, "r1")
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestEncryptionMiddleware_KeyRotation(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewStore()
	oldKey, newKey := generateKey(t), generateKey(t)

	secureOld := encrypted(t, middleware.EncryptionConfig{ActiveKey: oldKey})(backend)
	require.NoError(t, secureOld.Save(ctx, sampleRun("r1")))

	secureNew := encrypted(t, middleware.EncryptionConfig{
		ActiveKey:    newKey,
		FallbackKeys: [][]byte{oldKey},
	})(backend)
	loaded, err := secureNew.Load(ctx, "r1")
	require.NoError(t, err, "fallback key opens old records")

	loaded.Ticks = 3
	require.NoError(t, secureNew.Save(ctx, loaded))

	_, err = secureOld.Load(ctx, "r1")
	assert.Error(t, err, "records sealed with the new key cannot be opened with the old one")
}

func TestEncryptionMiddleware_Errors(t *testing.T) {
	_, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: []byte("short-key")})
	assert.Error(t, err)

	ctx := context.Background()
	backend := memory.NewStore()
	require.NoError(t, backend.Save(ctx, sampleRun("plain")))
	secure := encrypted(t, middleware.EncryptionConfig{ActiveKey: generateKey(t)})(backend)
	_, err = secure.Load(ctx, "plain")
	assert.ErrorIs(t, err, middleware.ErrNotSealed)
}

func TestParseKey(t *testing.T) {
	key := generateKey(t)
	got, err := middleware.ParseKey(base64.StdEncoding.EncodeToString(key))
	require.NoError(t, err)
	assert.Equal(t, key, got)

	_, err = middleware.ParseKey("not base64!")
	assert.Error(t, err)
	_, err = middleware.ParseKey(base64.StdEncoding.EncodeToString([]byte("short")))
	assert.Error(t, err)
}

func TestMaskMiddleware(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewStore()
	mw, err := middleware.NewMaskMiddleware([]string{`^23FT`})
	require.NoError(t, err)
	store := mw(backend)

	run := sampleRun("r1")
	require.NoError(t, store.Save(ctx, run))

	assert.Equal(t, 1100.0, run.Samples[1].Values[1], "caller's run is untouched")

	stored, err := store.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 448.0, stored.Samples[1].Values[0])
	assert.Equal(t, middleware.Masked, stored.Samples[0].Values[1])
	assert.Equal(t, middleware.Masked, stored.Samples[1].Values[1])

	_, err = middleware.NewMaskMiddleware([]string{"("})
	assert.Error(t, err)
}

func TestChain_MaskThenEncrypt(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewStore()
	mask, err := middleware.NewMaskMiddleware([]string{`23LT`})
	require.NoError(t, err)
	var store ports.RunStore = middleware.Chain(backend,
		mask,
		encrypted(t, middleware.EncryptionConfig{ActiveKey: generateKey(t)}),
	)

	require.NoError(t, store.Save(ctx, sampleRun("r1")))
	stored, err := backend.Load(ctx, "r1")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.Sealed)

	loaded, err := store.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, middleware.Masked, loaded.Samples[0].Values[0])
	assert.Equal(t, 1200.0, loaded.Samples[0].Values[1])
}
