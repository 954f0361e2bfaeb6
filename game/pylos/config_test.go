package pylos

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configTests = []struct {
	layers  int
	willErr error
}{
	{1, nil},
	{2, nil},
	{4, nil},
	{5, nil},
	{6, ErrCapacityExceeded},
	{10, ErrCapacityExceeded},
	{0, ErrInvalidLayer},
	{-1, ErrInvalidLayer},
}

func TestNewConfig(t *testing.T) {
	for _, tc := range configTests {
		cfg, err := NewConfig(tc.layers)
		if tc.willErr != nil {
			if errors.Cause(err) != tc.willErr {
				t.Errorf("NewConfig(%d): expected %v. Got %v", tc.layers, tc.willErr, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewConfig(%d): %+v", tc.layers, err)
			continue
		}
		assert.Equal(t, tc.layers, cfg.Layers())
		assert.Equal(t, TotalPositions(tc.layers), cfg.Positions())
	}
}

func TestConfigErrorMessage(t *testing.T) {
	_, err := NewConfig(10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10 layers needs 385 balls")
}

func TestConfigLayers(t *testing.T) {
	cfg, err := NewConfig(4)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.LayerSize(1))
	assert.Equal(t, 1, cfg.LayerSize(4))
	assert.Equal(t, 30, cfg.Full().Len())

	var union PositionSet
	for layer := 1; layer <= 4; layer++ {
		s, err := cfg.Layer(layer)
		require.NoError(t, err)
		assert.Equal(t, cfg.LayerSize(layer)*cfg.LayerSize(layer), s.Len())
		union = union.Union(s)
	}
	assert.Equal(t, cfg.Full(), union)

	_, err = cfg.Layer(5)
	assert.Equal(t, ErrLayerOutOfRange, errors.Cause(err))
	_, err = cfg.Layer(0)
	assert.Equal(t, ErrInvalidLayer, errors.Cause(err))

	assert.Equal(t, "Pyramid(4 layers)", fmt.Sprintf("%v", cfg))
}
