package ocr

// RequestOptions holds the layout-parsing parameters sent with every request.
// They are fixed per client today; keeping them in one struct means a future
// knob only touches construction, not the request path.
type RequestOptions struct {
	// Recognition toggles. Only layout detection is on for document OCR.
	UseDocOrientationClassify bool
	UseDocUnwarping           bool
	UseLayoutDetection        bool
	UseChartRecognition       bool

	// PrettyMarkdown asks the endpoint for cleaned-up markdown output.
	PrettyMarkdown bool

	// MarkdownIgnoreLabels are structural region labels pruned from the
	// returned markdown.
	MarkdownIgnoreLabels []string

	// Sampling parameters for the recognition model.
	Temperature       float64
	TopP              float64
	RepetitionPenalty float64

	// Pixel bounds the endpoint resizes inputs into.
	MinPixels int
	MaxPixels int
}

// DefaultRequestOptions returns the parameters used for every document.
func DefaultRequestOptions() RequestOptions {
	return RequestOptions{
		UseDocOrientationClassify: false,
		UseDocUnwarping:           false,
		UseLayoutDetection:        true,
		UseChartRecognition:       false,
		PrettyMarkdown:            true,
		MarkdownIgnoreLabels: []string{
			"formula_number",
			"header",
			"header_image",
			"footer",
			"footer_image",
			"aside_text",
			"number",
		},
		Temperature:       0,
		TopP:              1,
		RepetitionPenalty: 1,
		MinPixels:         3136,
		MaxPixels:         1003520,
	}
}

// layoutRequest is the wire shape the layout-parsing endpoint expects.
type layoutRequest struct {
	File                      string   `json:"file"`
	FileType                  int      `json:"fileType"` // 0 = PDF, 1 = image
	UseDocOrientationClassify bool     `json:"useDocOrientationClassify"`
	UseDocUnwarping           bool     `json:"useDocUnwarping"`
	UseLayoutDetection        bool     `json:"useLayoutDetection"`
	UseChartRecognition       bool     `json:"useChartRecognition"`
	PrettyMarkdown            bool     `json:"prettyMarkdown"`
	MarkdownIgnoreLabels      []string `json:"markdownIgnoreLabels"`
	Temperature               float64  `json:"temperature"`
	TopP                      float64  `json:"topP"`
	RepetitionPenalty         float64  `json:"repetitionPenalty"`
	MinPixels                 int      `json:"minPixels"`
	MaxPixels                 int      `json:"maxPixels"`
}

// MarkdownBlock is the markdown of one fragment plus the mapping from inline
// image placeholder keys to resolved URLs.
type MarkdownBlock struct {
	Text   string            `json:"text"`
	Images map[string]string `json:"images"`
}

// LayoutResult is one fragment of the parsed document, typically a page or a
// detected region. Fragment order is caller-significant.
type LayoutResult struct {
	Markdown MarkdownBlock `json:"markdown"`
}

// layoutResponse is the envelope the endpoint wraps results in.
type layoutResponse struct {
	Result struct {
		LayoutParsingResults []LayoutResult `json:"layoutParsingResults"`
	} `json:"result"`
}
