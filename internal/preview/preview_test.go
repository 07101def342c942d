package preview

import (
	"strings"
	"testing"
)

func TestRender_ShowsEndpointSizeAndStatus(t *testing.T) {
	out := Render(Preview{
		Endpoint:  "https://status.example.com/printers/1/",
		User:      "printer",
		Image:     make([]byte, 2048),
		Status:    "Printing: 42% complete",
		HasStatus: true,
	})

	for _, want := range []string{
		"Dry run",
		"https://status.example.com/printers/1/",
		"printer",
		"2.0 kB",
		"Printing: 42% complete",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("Render output missing %q:\n%s", want, out)
		}
	}
}

func TestRender_MarksMissingParts(t *testing.T) {
	out := Render(Preview{Endpoint: "https://status.example.com/"})
	if strings.Count(out, "none") != 2 {
		t.Fatalf("Render output should mark image and status as none:\n%s", out)
	}
}
