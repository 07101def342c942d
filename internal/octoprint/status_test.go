package octoprint

import "testing"

func ptr[T any](v T) *T { return &v }

func TestStatusString(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   string
	}{
		{"idle sentinel", Status{Idle: true, StateText: "Printing"}, "Idle"},
		{"zero value", Status{}, "Idle"},
		{"operational", Status{StateText: "Operational"}, "Idle"},
		{"paused", Status{StateText: "Paused"}, "Paused"},
		{"printing without progress", Status{Printing: true}, "Printing"},
		{
			"printing full",
			Status{
				Printing:      true,
				FileName:      "benchy.gcode",
				Completion:    ptr(42.4),
				PrintTime:     ptr(3723),
				PrintTimeLeft: ptr(720),
			},
			"Printing benchy.gcode: 42% complete, 1h2m3s elapsed, 12m0s left",
		},
		{
			"printing partial",
			Status{Printing: true, Completion: ptr(99.6), PrintTime: ptr(59)},
			"Printing: 100% complete, 59s elapsed",
		},
		{
			"completion clamped",
			Status{Printing: true, Completion: ptr(140.0)},
			"Printing: 100% complete",
		},
		{
			"negative times dropped",
			Status{Printing: true, Completion: ptr(-3.0), PrintTime: ptr(-1)},
			"Printing: 0% complete",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
