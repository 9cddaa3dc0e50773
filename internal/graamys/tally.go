// Package graamys aggregates Graamys ballots into ranked per-category results
// and raw value frequencies.
package graamys

import (
	"cmp"
	"slices"
	"strings"

	"clubsite/internal/model"
)

// TopN is the number of nominees kept per category.
const TopN = 5

// Entry is one ranked nominee.
type Entry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Results is the payload of the results endpoint.
type Results struct {
	TotalVotes         int     `json:"totalVotes"`
	BestDancer         []Entry `json:"bestDancer"`
	BestAthlete        []Entry `json:"bestAthlete"`
	FunniestMember     []Entry `json:"funniestMember"`
	BestDressed        []Entry `json:"bestDressed"`
	MostSpirited       []Entry `json:"mostSpirited"`
	RisingStar         []Entry `json:"risingStar"`
	BestDuo            []Entry `json:"bestDuo"`
	MostValuableMember []Entry `json:"mostValuableMember"`
	LifeOfTheParty     []Entry `json:"lifeOfTheParty"`
}

// Tally ranks the nominees of one category.
//
// Values are trimmed and empty ones dropped; names are grouped verbatim
// (case-sensitive). The result is sorted by count descending, ties keep the
// order in which names first appeared, and at most TopN entries are returned.
func Tally(records []model.Nomination, category model.Category) []Entry {
	out := make([]Entry, 0, TopN)
	index := make(map[string]int)
	for _, r := range records {
		v, ok := r.Nominee(category)
		if !ok {
			return out
		}
		name := strings.TrimSpace(v)
		if name == "" {
			continue
		}
		if i, seen := index[name]; seen {
			out[i].Count++
			continue
		}
		index[name] = len(out)
		out = append(out, Entry{Name: name, Count: 1})
	}

	slices.SortStableFunc(out, func(a, b Entry) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if len(out) > TopN {
		out = out[:TopN]
	}
	return out
}

// TallyAll runs Tally for every category and counts the ballots.
func TallyAll(records []model.Nomination) Results {
	return Results{
		TotalVotes:         len(records),
		BestDancer:         Tally(records, model.CategoryBestDancer),
		BestAthlete:        Tally(records, model.CategoryBestAthlete),
		FunniestMember:     Tally(records, model.CategoryFunniestMember),
		BestDressed:        Tally(records, model.CategoryBestDressed),
		MostSpirited:       Tally(records, model.CategoryMostSpirited),
		RisingStar:         Tally(records, model.CategoryRisingStar),
		BestDuo:            Tally(records, model.CategoryBestDuo),
		MostValuableMember: Tally(records, model.CategoryMostValuableMember),
		LifeOfTheParty:     Tally(records, model.CategoryLifeOfTheParty),
	}
}

// ByCategory returns the ranked list stored for c.
func (r Results) ByCategory(c model.Category) []Entry {
	switch c {
	case model.CategoryBestDancer:
		return r.BestDancer
	case model.CategoryBestAthlete:
		return r.BestAthlete
	case model.CategoryFunniestMember:
		return r.FunniestMember
	case model.CategoryBestDressed:
		return r.BestDressed
	case model.CategoryMostSpirited:
		return r.MostSpirited
	case model.CategoryRisingStar:
		return r.RisingStar
	case model.CategoryBestDuo:
		return r.BestDuo
	case model.CategoryMostValuableMember:
		return r.MostValuableMember
	case model.CategoryLifeOfTheParty:
		return r.LifeOfTheParty
	}
	return nil
}
