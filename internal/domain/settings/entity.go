package settings

// VisionSettings are the quality/matching thresholds the kiosk camera
// pipeline consumes. The core never interprets them; it only stores and
// hands them out as an explicit value object.
type VisionSettings struct {
	MinAreaRatio   float64 `json:"min_area_ratio"`
	MinBlurVar     float64 `json:"min_blur_var"`
	BrightMin      int     `json:"bright_min"`
	BrightMax      int     `json:"bright_max"`
	MatchThreshold int     `json:"match_threshold"`
	TopKImages     int     `json:"top_k_images"`
	RecogInterval  int     `json:"recog_interval"`
}

// DefaultVision mirrors the defaults a fresh install ships with.
func DefaultVision() VisionSettings {
	return VisionSettings{
		MinAreaRatio:   0.12,
		MinBlurVar:     100.0,
		BrightMin:      60,
		BrightMax:      190,
		MatchThreshold: 24,
		TopKImages:     5,
		RecogInterval:  3,
	}
}
