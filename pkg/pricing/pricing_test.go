// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayPrice(t *testing.T) {
	testCases := []struct {
		name     string
		base     float64
		markup   float64
		fx       float64
		expected Price
	}{
		{name: "golden", base: 10, markup: 1.45, fx: 20, expected: Price{USD: 14.50, Local: 290}},
		{name: "zero", base: 0, markup: 1.45, fx: 20, expected: Price{USD: 0, Local: 0}},
		{name: "half rounds away from zero", base: 1.25, markup: 1, fx: 2, expected: Price{USD: 1.25, Local: 3}},
		{name: "below half rounds down", base: 1.2, markup: 1, fx: 2, expected: Price{USD: 1.2, Local: 2}},
		{name: "usd rounded to cents", base: 8.99, markup: 1.45, fx: 17.5, expected: Price{USD: 13.04, Local: 228}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := DisplayPrice(tt.base, tt.markup, tt.fx)
			assert.InDelta(t, tt.expected.USD, got.USD, 1e-9)
			assert.Equal(t, tt.expected.Local, got.Local)
		})
	}
}

func TestDisplayPriceIsDeterministic(t *testing.T) {
	first := DisplayPrice(12.34, 1.45, 19.8)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, DisplayPrice(12.34, 1.45, 19.8))
	}
}

func TestCalculator(t *testing.T) {
	c := NewCalculator(1.45, 20, "MXN", "es-MX")

	p := c.Quote(10)
	assert.Equal(t, Price{USD: 14.5, Local: 290}, p)
	assert.Equal(t, "$290 MXN", c.Format(p))
	assert.Equal(t, "MXN", c.Currency())

	en := NewCalculator(1, 1, "USD", "en-US")
	assert.Equal(t, "$1,290 USD", en.Format(Price{Local: 1290}))

	fallback := NewCalculator(1, 1, "MXN", "not a locale!")
	assert.Equal(t, "$15 MXN", fallback.Format(Price{Local: 15}))
}
