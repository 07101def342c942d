package octoprint

// PrinterResponse mirrors the parts of /api/printer printcam reads.
type PrinterResponse struct {
	State PrinterState `json:"state"`
}

// PrinterState carries the display text and the state flags.
type PrinterState struct {
	Text  string       `json:"text"`
	Flags PrinterFlags `json:"flags"`
}

// PrinterFlags are OctoPrint's boolean state indicators.
type PrinterFlags struct {
	Operational   bool `json:"operational"`
	Printing      bool `json:"printing"`
	Paused        bool `json:"paused"`
	Pausing       bool `json:"pausing"`
	Cancelling    bool `json:"cancelling"`
	Error         bool `json:"error"`
	Ready         bool `json:"ready"`
	ClosedOrError bool `json:"closedOrError"`
}

// JobResponse mirrors /api/job.
type JobResponse struct {
	Job      JobInfo     `json:"job"`
	Progress JobProgress `json:"progress"`
	State    string      `json:"state"`
}

// JobInfo describes the file being printed.
type JobInfo struct {
	File JobFile `json:"file"`
}

// JobFile identifies the job's gcode file.
type JobFile struct {
	Name    string `json:"name"`
	Display string `json:"display"`
	Origin  string `json:"origin"`
}

// JobProgress reports progress of the running job. OctoPrint sends null for
// every field when no job is active.
type JobProgress struct {
	Completion    *float64 `json:"completion"` // percent, 0-100
	PrintTime     *int     `json:"printTime"`  // seconds
	PrintTimeLeft *int     `json:"printTimeLeft"`
	Filepos       *int64   `json:"filepos"`
}

// DisplayName prefers the user-facing name OctoPrint derives for uploads.
func (f JobFile) DisplayName() string {
	if f.Display != "" {
		return f.Display
	}
	return f.Name
}
