// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package pricing turns registrar base prices into customer facing prices.
package pricing

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Price is a marked-up price in USD (cents precision) and in whole units of
// the local currency.
type Price struct {
	USD   float64 `json:"price_usd"`
	Local int64   `json:"price_local"`
}

// DisplayPrice applies the markup, rounds USD to 2 decimals and converts
// baseUSD*markupRate to whole local units rounding half away from zero.
func DisplayPrice(baseUSD, markupRate, fxRate float64) Price {
	marked := baseUSD * markupRate

	return Price{
		USD:   math.Round(marked*100) / 100,
		Local: int64(math.Round(marked * fxRate)),
	}
}

type Calculator struct {
	markup   float64
	fxRate   float64
	currency string
	printer  *message.Printer
}

// Quote prices a registrar base price with the configured markup and exchange rate.
func (c *Calculator) Quote(baseUSD float64) Price {
	return DisplayPrice(baseUSD, c.markup, c.fxRate)
}

// Format renders the local price the way the storefront shows it, e.g. "$1,290 MXN".
func (c *Calculator) Format(p Price) string {
	return c.printer.Sprintf("$%d %s", p.Local, c.currency)
}

func (c *Calculator) Currency() string {
	return c.currency
}

// NewCalculator builds a calculator, locale is a BCP 47 tag and falls back to es-MX.
func NewCalculator(markup, fxRate float64, currency, locale string) *Calculator {
	c := new(Calculator)

	c.markup = markup
	c.fxRate = fxRate
	c.currency = currency

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse("es-MX")
	}
	c.printer = message.NewPrinter(tag)

	return c
}
