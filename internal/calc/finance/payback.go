package finance

// Payback is the simple payback period of a retrofit measure.
// A measure whose savings are zero or negative never pays back; that case
// is carried as Applicable=false rather than an infinity or a magic number,
// so sorting and JSON stay well-defined.
type Payback struct {
	Applicable bool    `json:"applicable"`
	Years      float64 `json:"years,omitempty"`
}

// PaybackFor divides cost by annual savings, guarding the denominator.
func PaybackFor(cost, annualSavings float64) Payback {
	if annualSavings <= 0 {
		return Payback{}
	}
	return Payback{Applicable: true, Years: cost / annualSavings}
}

// Less orders applicable paybacks ascending by years and places
// not-applicable ones after every applicable one. Ties are left to the
// caller (recommendation ranking breaks them on annual savings).
func (p Payback) Less(o Payback) bool {
	if p.Applicable != o.Applicable {
		return p.Applicable
	}
	if !p.Applicable {
		return false
	}
	return p.Years < o.Years
}
