package kernel_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"candydelivery/internal/core/domain/model/kernel"
	"candydelivery/internal/pkg/errs"
)

func TestNewWeight(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr error
	}{
		{name: "small weight", value: "0.01"},
		{name: "regular weight", value: "12.5"},
		{name: "upper bound", value: "50"},
		{name: "zero", value: "0", wantErr: errs.ErrValueIsOutOfRange},
		{name: "negative", value: "-1", wantErr: errs.ErrValueIsOutOfRange},
		{name: "too heavy", value: "50.01", wantErr: errs.ErrValueIsOutOfRange},
		{name: "three decimals", value: "1.234", wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := kernel.NewWeight(decimal.RequireFromString(tt.value))

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Error(t, w.Validate())
				return
			}

			require.NoError(t, err)
			require.NoError(t, w.Validate())
			assert.True(t, w.Decimal().Equal(decimal.RequireFromString(tt.value)))
		})
	}
}

func TestParseWeight(t *testing.T) {
	w, err := kernel.ParseWeight("0.23")
	require.NoError(t, err)
	assert.Equal(t, "0.23", w.String())
	assert.InDelta(t, 0.23, w.Float64(), 1e-9)

	_, err = kernel.ParseWeight("heavy")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestWeight_FitsInto(t *testing.T) {
	w, err := kernel.ParseWeight("10")
	require.NoError(t, err)

	assert.True(t, w.FitsInto(decimal.NewFromInt(10)))
	assert.True(t, w.FitsInto(decimal.RequireFromString("10.01")))
	assert.False(t, w.FitsInto(decimal.RequireFromString("9.99")))
}

func TestWeight_IsEqual(t *testing.T) {
	a, err := kernel.ParseWeight("2.5")
	require.NoError(t, err)
	b, err := kernel.ParseWeight("2.50")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
}
