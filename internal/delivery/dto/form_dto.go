package dto

// FormField describes one input of the patient form.
type FormField struct {
	Name    string      `json:"name"`
	Label   string      `json:"label"`
	Section string      `json:"section"`
	Type    string      `json:"type"`
	Min     *int        `json:"min,omitempty"`
	Max     *int        `json:"max,omitempty"`
	Options []string    `json:"options,omitempty"`
	Default interface{} `json:"default"`
}

type FormResponse struct {
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`
	Fields   []FormField `json:"fields"`
}
