package models

// Detection is a single object detected in an analyzed image.
type Detection struct {
	Label      string    `json:"label"`
	Confidence float64   `json:"confidence"`
	Box        []float64 `json:"box"`
}

// AnnotationItem is a read-only result record produced by the detection
// pipeline. The client only lists these; the pipeline itself is external.
type AnnotationItem struct {
	ID                  string      `json:"id"`
	UserID              string      `json:"user_id"`
	Image               string      `json:"image"`
	Detections          []Detection `json:"annotations"`
	ImageSize           []int       `json:"size"`
	ModelUsed           string      `json:"model_used"`
	Timestamp           string      `json:"timestamp"`
	Status              string      `json:"status"`
	ConfidenceThreshold float64     `json:"confidence_threshold"`
	ProcessingTimeMs    float64     `json:"processing_time"`
	Device              string      `json:"device"`
}

// AnnotationResponse is the body of the detection service's listing
// endpoint. Exactly one of Annotations or Message is set: Message carries a
// human-readable notice (e.g. "no annotations yet") when there is nothing
// to list.
type AnnotationResponse struct {
	Annotations []AnnotationItem `json:"annotations,omitempty"`
	Message     string           `json:"message,omitempty"`
}
