package diag

// Reporter receives diagnostics as they are produced. *Bag is the usual
// implementation; Tee fans out to several.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Diagnostic)

func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// Discard drops everything.
var Discard Reporter = ReporterFunc(func(Diagnostic) {})

// Tee forwards each diagnostic to every non-nil reporter in order.
func Tee(reporters ...Reporter) Reporter {
	return ReporterFunc(func(d Diagnostic) {
		for _, r := range reporters {
			if r != nil {
				r.Report(d)
			}
		}
	})
}

// Report stores d; once the limit is reached it only counts it.
func (b *Bag) Report(d Diagnostic) {
	if b != nil {
		b.Add(d)
	}
}
