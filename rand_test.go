package sigma_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zkproto/sigma"
)

func TestSeededSourceIsReproducible(t *testing.T) {
	assert := require.New(t)

	a, err := sigma.NewSeededSource([]byte("seed"))
	assert.NoError(err)
	b, err := sigma.NewSeededSource([]byte("seed"))
	assert.NoError(err)

	for i := 0; i < 8; i++ {
		x, err := a.SampleScalar()
		assert.NoError(err)
		y, err := b.SampleScalar()
		assert.NoError(err)
		assert.True(x.Equal(&y))
	}

	// a different seed diverges immediately
	c, err := sigma.NewSeededSource([]byte("other seed"))
	assert.NoError(err)
	d, err := sigma.NewSeededSource([]byte("seed"))
	assert.NoError(err)
	x, err := c.SampleScalar()
	assert.NoError(err)
	y, err := d.SampleScalar()
	assert.NoError(err)
	assert.False(x.Equal(&y))
}

func TestCryptoSourceSamples(t *testing.T) {
	assert := require.New(t)

	src := sigma.CryptoSource()
	x, err := src.SampleScalar()
	assert.NoError(err)
	y, err := src.SampleScalar()
	assert.NoError(err)
	assert.False(x.Equal(&y), "two samples colliding is overwhelmingly unlikely")
}
