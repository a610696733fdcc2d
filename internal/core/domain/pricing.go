package domain

// Pricing is a rate card tier. Rate is a whole amount in the site currency
// per Unit (e.g. 4500 "per CBM").
type Pricing struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Rate        int      `json:"rate"`
	Unit        string   `json:"unit"`
	Features    []string `json:"features"`
	Color       string   `json:"color"`
	Icon        string   `json:"icon"`
	Active      bool     `json:"active"`
}

type PricingInput struct {
	Category    string
	Description string
	Rate        int
	Unit        string
	Features    []string
	Color       string
	Icon        string
	Active      *bool
}

type PricingPatch struct {
	Category    *string
	Description *string
	Rate        *int
	Unit        *string
	Features    Optional[[]string]
	Color       *string
	Icon        *string
	Active      *bool
}

func NewPricing(in PricingInput) Pricing {
	return Pricing{
		Category:    in.Category,
		Description: in.Description,
		Rate:        in.Rate,
		Unit:        in.Unit,
		Features:    cloneStrings(in.Features),
		Color:       in.Color,
		Icon:        in.Icon,
		Active:      in.Active == nil || *in.Active,
	}
}

func (p *Pricing) Apply(patch PricingPatch) {
	setIf(&p.Category, patch.Category)
	setIf(&p.Description, patch.Description)
	setIf(&p.Rate, patch.Rate)
	setIf(&p.Unit, patch.Unit)
	if patch.Features.Set {
		if patch.Features.Value == nil {
			p.Features = nil
		} else {
			p.Features = cloneStrings(*patch.Features.Value)
		}
	}
	setIf(&p.Color, patch.Color)
	setIf(&p.Icon, patch.Icon)
	setIf(&p.Active, patch.Active)
}

func (p Pricing) Clone() Pricing {
	p.Features = cloneStrings(p.Features)
	return p
}
