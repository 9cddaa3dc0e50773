package graamys

import (
	"time"

	"clubsite/internal/model"
)

// Stats maps field name -> value -> occurrences.
type Stats map[string]map[string]int

// excludedFields never show up in Stats.
var excludedFields = map[string]struct{}{
	"id":        {},
	"createdAt": {},
}

// fields flattens a ballot into JSON key/value pairs, identifier and timestamp included.
func fields(n model.Nomination) []field {
	out := make([]field, 0, len(model.Categories)+2)
	out = append(out, field{"id", n.ID})
	for _, c := range model.Categories {
		v, _ := n.Nominee(c)
		out = append(out, field{string(c), v})
	}
	return append(out, field{"createdAt", n.CreatedAt.UTC().Format(time.RFC3339)})
}

type field struct {
	name  string
	value string
}

// Aggregate counts every stored value of every non-excluded field.
// Values are counted as stored, without trimming.
func Aggregate(records []model.Nomination) Stats {
	stats := make(Stats)
	for _, r := range records {
		for _, f := range fields(r) {
			if _, skip := excludedFields[f.name]; skip {
				continue
			}
			counts, ok := stats[f.name]
			if !ok {
				counts = make(map[string]int)
				stats[f.name] = counts
			}
			counts[f.value]++
		}
	}
	return stats
}
