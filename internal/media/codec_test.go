package media

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darrkasamna/catalog/internal/models"
)

var png = []byte{0x89, 'P', 'N', 'G'}

func TestCodec_EncodeRelease(t *testing.T) {
	c := NewCodec()

	h := c.Encode(png, "image/png")
	require.NotNil(t, h)
	assert.True(t, strings.HasPrefix(h.URL, "blob:catalog/"))
	assert.Equal(t, "image/png", h.ContentType)
	assert.Equal(t, 1, c.Live())

	data, ct, ok := c.Resolve(h.URL)
	require.True(t, ok)
	assert.Equal(t, png, data)
	assert.Equal(t, "image/png", ct)

	assert.True(t, c.Release(h))
	assert.False(t, c.Release(h), "second release must be a no-op")
	assert.Equal(t, 0, c.Live())

	_, _, ok = c.Resolve(h.URL)
	assert.False(t, ok)
}

func TestCodec_EmptyPayload(t *testing.T) {
	c := NewCodec()
	h := c.Encode(nil, "image/gif")
	require.NotNil(t, h, "empty bytes are still encodable")
	assert.Equal(t, 0, h.Size)
	c.Release(h)
}

func TestCodec_EncodeFailure(t *testing.T) {
	c := NewCodec()
	assert.Nil(t, c.Encode(png, ""))
	assert.Nil(t, c.Encode(png, "not a type;;"))
	assert.Equal(t, 0, c.Live())
	assert.False(t, c.Release(nil))
}

func TestCodec_CopiesInput(t *testing.T) {
	c := NewCodec()
	buf := []byte{1, 2, 3}
	h := c.Encode(buf, "image/png")
	buf[0] = 9

	data, _, _ := c.Resolve(h.URL)
	assert.Equal(t, byte(1), data[0])
}

func TestCodec_DataURI(t *testing.T) {
	c := NewCodec()
	h := c.Encode([]byte("hi"), "image/svg+xml")
	uri, err := c.DataURI(h)
	require.NoError(t, err)
	assert.Equal(t, "data:image/svg+xml;base64,aGk=", uri)

	c.Release(h)
	_, err = c.DataURI(h)
	assert.Error(t, err)
}

func TestSlot_ReleasesPreviousHandle(t *testing.T) {
	c := NewCodec()
	s := NewSlot(c, "")

	first := s.Show(models.Some(models.MediaAsset{ContentType: "image/png", Data: png}))
	assert.NotEqual(t, DefaultPlaceholder, first)
	assert.Equal(t, 1, c.Live())

	second := s.Show(models.Some(models.MediaAsset{ContentType: "image/jpeg", Data: []byte{1}}))
	assert.NotEqual(t, first, second)
	assert.Equal(t, 1, c.Live(), "old handle must be released on data change")

	assert.Equal(t, DefaultPlaceholder, s.Show(models.None[models.MediaAsset]()))
	assert.Equal(t, 0, c.Live())
	assert.Nil(t, s.Current())
}

func TestSlot_FailedEncodeFallsBack(t *testing.T) {
	c := NewCodec()
	s := NewSlot(c, "/ph.png")
	s.Show(models.Some(models.MediaAsset{ContentType: "image/png", Data: png}))

	url := s.Show(models.Some(models.MediaAsset{ContentType: "", Data: png}))
	assert.Equal(t, "/ph.png", url)
	assert.Equal(t, 0, c.Live())
}

func TestSlot_Close(t *testing.T) {
	c := NewCodec()
	s := NewSlot(c, "")
	s.Show(models.Some(models.MediaAsset{ContentType: "image/png", Data: png}))
	s.Close()
	s.Close()
	assert.Equal(t, 0, c.Live())
}

func TestWithHandle_ReleasesOnError(t *testing.T) {
	c := NewCodec()
	boom := errors.New("boom")

	err := WithHandle(c, png, "image/png", func(h *Handle) error {
		require.NotNil(t, h)
		assert.Equal(t, 1, c.Live())
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Live())
}

func TestWithHandle_FailedEncode(t *testing.T) {
	c := NewCodec()
	called := false
	err := WithHandle(c, png, "", func(h *Handle) error {
		called = true
		assert.Nil(t, h)
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)
}
