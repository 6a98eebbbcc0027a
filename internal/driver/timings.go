package driver

import (
	"encoding/json"
	"fmt"

	"scanfmt/internal/diag"
	"scanfmt/internal/observ"
	"scanfmt/internal/source"
)

// timingPayload embeds the report so its fields sit next to kind and path.
type timingPayload struct {
	Kind string `json:"kind"`
	Path string `json:"path,omitempty"`
	observ.Report
}

// TimingDiagnostic renders report as an informational ObsTimings
// diagnostic. Its single note carries the report as JSON.
func TimingDiagnostic(kind, path string, report observ.Report) diag.Diagnostic {
	if kind == "" {
		kind = "pipeline"
	}
	msg := fmt.Sprintf("timings (%s): total %.2f ms", kind, report.TotalMS)
	if path != "" {
		msg += ", " + path
	}
	d := diag.New(diag.SevInfo, diag.ObsTimings, source.Span{}, msg)
	if data, err := json.Marshal(timingPayload{Kind: kind, Path: path, Report: report}); err == nil {
		d = d.WithNote(source.Span{}, string(data))
	}
	return d
}

// AppendTimingDiagnostic adds the timing diagnostic to bag, past its limit
// if necessary.
func AppendTimingDiagnostic(bag *diag.Bag, kind, path string, report observ.Report) {
	if bag == nil {
		return
	}
	extra := diag.NewBag(0)
	extra.Add(TimingDiagnostic(kind, path, report))
	bag.Merge(extra)
}
