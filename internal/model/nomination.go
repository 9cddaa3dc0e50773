package model

import "time"

// Nomination is one submitted Graamys ballot with one nominee per award category.
// Rows are immutable once stored; every nominee is free text and may be empty.
type Nomination struct {
	ID                 string    `json:"id"`
	BestDancer         string    `json:"bestDancer"`
	BestAthlete        string    `json:"bestAthlete"`
	FunniestMember     string    `json:"funniestMember"`
	BestDressed        string    `json:"bestDressed"`
	MostSpirited       string    `json:"mostSpirited"`
	RisingStar         string    `json:"risingStar"`
	BestDuo            string    `json:"bestDuo"`
	MostValuableMember string    `json:"mostValuableMember"`
	LifeOfTheParty     string    `json:"lifeOfTheParty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// Category is the JSON key of one award category.
type Category string

const (
	CategoryBestDancer         Category = "bestDancer"
	CategoryBestAthlete        Category = "bestAthlete"
	CategoryFunniestMember     Category = "funniestMember"
	CategoryBestDressed        Category = "bestDressed"
	CategoryMostSpirited       Category = "mostSpirited"
	CategoryRisingStar         Category = "risingStar"
	CategoryBestDuo            Category = "bestDuo"
	CategoryMostValuableMember Category = "mostValuableMember"
	CategoryLifeOfTheParty     Category = "lifeOfTheParty"
)

// Categories lists every award category in ballot order.
var Categories = []Category{
	CategoryBestDancer,
	CategoryBestAthlete,
	CategoryFunniestMember,
	CategoryBestDressed,
	CategoryMostSpirited,
	CategoryRisingStar,
	CategoryBestDuo,
	CategoryMostValuableMember,
	CategoryLifeOfTheParty,
}

// Nominee returns the value submitted for c, and false for an unknown category.
func (n Nomination) Nominee(c Category) (string, bool) {
	switch c {
	case CategoryBestDancer:
		return n.BestDancer, true
	case CategoryBestAthlete:
		return n.BestAthlete, true
	case CategoryFunniestMember:
		return n.FunniestMember, true
	case CategoryBestDressed:
		return n.BestDressed, true
	case CategoryMostSpirited:
		return n.MostSpirited, true
	case CategoryRisingStar:
		return n.RisingStar, true
	case CategoryBestDuo:
		return n.BestDuo, true
	case CategoryMostValuableMember:
		return n.MostValuableMember, true
	case CategoryLifeOfTheParty:
		return n.LifeOfTheParty, true
	}
	return "", false
}
