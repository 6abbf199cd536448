package entity

type ExportResult struct {
	Target TargetSpec `json:"target"`
	Path   string     `json:"path,omitempty"`
	Err    error      `json:"-"`
}

func (r ExportResult) OK() bool {
	return r.Err == nil
}

// BatchReport collects the per-target outcomes of one batch run.
type BatchReport struct {
	Source    string         `json:"source"`
	OutputDir string         `json:"output_dir"`
	Results   []ExportResult `json:"results"`
}

func (r *BatchReport) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.OK() {
			n++
		}
	}
	return n
}

func (r *BatchReport) Total() int {
	return len(r.Results)
}

// OK is true only when every target was exported.
func (r *BatchReport) OK() bool {
	return r.Total() > 0 && r.Succeeded() == r.Total()
}

type IconResult struct {
	Path        string `json:"path"`
	Placeholder bool   `json:"placeholder"`
	// Reason is the source error that forced the placeholder, if any.
	Reason error `json:"-"`
}
