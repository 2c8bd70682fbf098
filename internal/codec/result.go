package codec

import (
	"time"

	"github.com/MKhiriev/go-qr-keeper/models"
)

// IDSource hands out result identifiers. Implementations must be safe for
// concurrent use and never return the same value twice.
type IDSource interface {
	NextID() int64
}

// Assembler turns raw scans into ClassifiedResults.
type Assembler struct {
	ids IDSource
	now func() time.Time
}

// AssemblerOption configures an Assembler.
type AssemblerOption func(*Assembler)

// WithClock replaces time.Now as the source of CapturedAt.
func WithClock(now func() time.Time) AssemblerOption {
	return func(a *Assembler) {
		a.now = now
	}
}

func NewAssembler(ids IDSource, opts ...AssemblerOption) *Assembler {
	a := &Assembler{ids: ids, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble classifies raw and extracts its fields. Data keeps raw untouched.
func (a *Assembler) Assemble(raw string) models.ClassifiedResult {
	kind := Detect(raw)
	return models.ClassifiedResult{
		ID:         a.ids.NextID(),
		Data:       raw,
		Kind:       kind,
		CapturedAt: a.now(),
		Fields:     Parse(kind, raw),
	}
}

// View derives the presentation data for a result.
func View(r models.ClassifiedResult) models.ResultView {
	return models.ResultView{
		ClassifiedResult: r,
		Title:            Title(r.Kind),
		Description:      Description(r.Data),
		Display:          Display(r.Kind, r.Data),
		Actions:          Actions(r.Kind, r.Data),
	}
}

// Rehydrate fills in the derived Fields of a result loaded from storage,
// where only id, data, kind and timestamp are kept.
func Rehydrate(r models.ClassifiedResult) models.ClassifiedResult {
	if !r.Kind.IsValid() {
		r.Kind = Detect(r.Data)
	}
	r.Fields = Parse(r.Kind, r.Data)
	return r
}
