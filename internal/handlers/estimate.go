package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"delstarford/internal/metrics"
	"delstarford/internal/pricing"
)

// estimateRequest mirrors the estimator form payload. Decoding is lenient:
// missing or malformed fields degrade to zero values, never to an error.
type estimateRequest struct {
	ModelType  string        `json:"modelType"`
	DataSize   pricing.Count `json:"dataSize"`
	Complexity string        `json:"complexity"`
}

// EstimateHandler serves the public price estimator endpoint.
type EstimateHandler struct{}

// NewEstimateHandler creates a new estimate handler.
func NewEstimateHandler() *EstimateHandler {
	return &EstimateHandler{}
}

// Calculate computes a cost estimate. Always responds 200: the calculator is
// total, and an unparseable body simply estimates with defaults.
func (h *EstimateHandler) Calculate(c fiber.Ctx) error {
	var req estimateRequest
	_ = json.Unmarshal(c.Body(), &req)

	result := pricing.Estimate(pricing.Request{
		ModelType:  req.ModelType,
		DataSize:   req.DataSize.Int(),
		Complexity: req.Complexity,
	})
	metrics.RecordEstimate()

	return c.JSON(fiber.Map{
		"estimate": result.Total,
		"currency": result.Currency,
		"breakdown": fiber.Map{
			"setup":           result.Setup,
			"data_processing": result.DataProcessing,
		},
	})
}
