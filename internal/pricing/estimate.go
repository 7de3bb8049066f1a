// Package pricing implements the project cost estimator. The calculation is
// a closed-form formula so the public estimator endpoint can preview pricing
// without any server-side state.
package pricing

import "math"

// Currency is fixed for all estimates.
const Currency = "KSH"

// BasePrice is the setup cost floor in KSh before model add-ons.
const BasePrice = 15000

// dataRatePerThousand is the processing cost per 1000 records.
const dataRatePerThousand = 50

// modelAddOns maps a model type to its setup add-on. Unknown types
// contribute nothing.
var modelAddOns = map[string]float64{
	"tabular": 5000,
	"vision":  25000,
	"nlp":     15000,
	"bio":     30000,
}

// complexityMultipliers maps a complexity tier to its setup multiplier.
// Unknown tiers fall back to the standard multiplier.
var complexityMultipliers = map[string]float64{
	"standard":   1.0,
	"advanced":   2.5,
	"enterprise": 5.0,
}

// Request holds the estimator inputs. Zero values are valid: an empty model
// type or tier applies no add-on and the standard multiplier.
type Request struct {
	ModelType  string
	DataSize   int
	Complexity string
}

// Result is the cost breakdown for one request.
type Result struct {
	Setup          float64
	DataProcessing float64
	Total          float64
	Currency       string
}

// Estimate computes the cost breakdown for a request. It is deterministic
// and never fails: unrecognized categories silently fall back to zero-effect
// defaults, and a negative record count is treated as zero. This endpoint is
// public-facing, so showing some number always beats rejecting the input.
func Estimate(req Request) Result {
	add := modelAddOns[req.ModelType]

	mult, ok := complexityMultipliers[req.Complexity]
	if !ok {
		mult = 1.0
	}

	records := req.DataSize
	if records < 0 {
		records = 0
	}

	setup := (BasePrice + add) * mult
	data := float64(records) / 1000 * dataRatePerThousand

	return Result{
		Setup:          setup,
		DataProcessing: data,
		Total:          round2(setup + data),
		Currency:       Currency,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
