// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registrar

// PriceExtractor reads the reseller price from one known response shape.
type PriceExtractor func(data *Node) (float64, bool)

func pathExtractor(path ...string) PriceExtractor {
	return func(data *Node) (float64, bool) {
		return data.Path(path...).Float()
	}
}

// The registrar nests the price differently depending on the command, shapes
// are tried in this order.
var priceExtractors = []PriceExtractor{
	pathExtractor("product", "price", "reseller", "price"),
	pathExtractor("price", "reseller", "price"),
	pathExtractor("reseller_price"),
	pathExtractor("price"),
}

// ExtractPrice returns the first price any extractor finds, or 0.
func ExtractPrice(data *Node, extractors ...PriceExtractor) float64 {
	if len(extractors) == 0 {
		extractors = priceExtractors
	}

	for _, extract := range extractors {
		if price, ok := extract(data); ok {
			return price
		}
	}

	return 0
}
