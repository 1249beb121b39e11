package settings

import (
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/pkg/validator"
)

type UpdateVisionRequest struct {
	MinAreaRatio   *float64 `json:"min_area_ratio,omitempty"`
	MinBlurVar     *float64 `json:"min_blur_var,omitempty"`
	BrightMin      *int     `json:"bright_min,omitempty"`
	BrightMax      *int     `json:"bright_max,omitempty"`
	MatchThreshold *int     `json:"match_threshold,omitempty"`
	TopKImages     *int     `json:"top_k_images,omitempty"`
	RecogInterval  *int     `json:"recog_interval,omitempty"`
}

func (r *UpdateVisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.MinAreaRatio != nil && (*r.MinAreaRatio <= 0 || *r.MinAreaRatio > 1) {
		errs = append(errs, validator.ValidationError{
			Field:   "min_area_ratio",
			Message: "min_area_ratio must be in (0, 1]",
		})
	}
	if r.MinBlurVar != nil && *r.MinBlurVar < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "min_blur_var",
			Message: "min_blur_var must not be negative",
		})
	}
	if r.BrightMin != nil && (*r.BrightMin < 0 || *r.BrightMin > 255) {
		errs = append(errs, validator.ValidationError{
			Field:   "bright_min",
			Message: "bright_min must be between 0 and 255",
		})
	}
	if r.BrightMax != nil && (*r.BrightMax < 0 || *r.BrightMax > 255) {
		errs = append(errs, validator.ValidationError{
			Field:   "bright_max",
			Message: "bright_max must be between 0 and 255",
		})
	}
	if r.MatchThreshold != nil && *r.MatchThreshold < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "match_threshold",
			Message: "match_threshold must be at least 1",
		})
	}
	if r.TopKImages != nil && *r.TopKImages < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "top_k_images",
			Message: "top_k_images must be at least 1",
		})
	}
	if r.RecogInterval != nil && *r.RecogInterval < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "recog_interval",
			Message: "recog_interval must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Apply overlays the provided fields onto cur.
func (r *UpdateVisionRequest) Apply(cur VisionSettings) VisionSettings {
	if r.MinAreaRatio != nil {
		cur.MinAreaRatio = *r.MinAreaRatio
	}
	if r.MinBlurVar != nil {
		cur.MinBlurVar = *r.MinBlurVar
	}
	if r.BrightMin != nil {
		cur.BrightMin = *r.BrightMin
	}
	if r.BrightMax != nil {
		cur.BrightMax = *r.BrightMax
	}
	if r.MatchThreshold != nil {
		cur.MatchThreshold = *r.MatchThreshold
	}
	if r.TopKImages != nil {
		cur.TopKImages = *r.TopKImages
	}
	if r.RecogInterval != nil {
		cur.RecogInterval = *r.RecogInterval
	}
	return cur
}
