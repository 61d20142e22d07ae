package finance

import (
	"slices"
	"strings"

	"bookkeeper/internal/domain/entity"
	"bookkeeper/internal/domain/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultUncategorizedLabel names the bucket for transactions without a known category.
const DefaultUncategorizedLabel = "Uncategorized"

// UncategorizedColor is the color reported for the uncategorized bucket.
const UncategorizedColor = "#9CA3AF"

// Bucket is one category's share of a distribution.
type Bucket struct {
	Name       string          `json:"name"`
	Color      string          `json:"color"`
	Value      money.Amount    `json:"value"`
	Percentage decimal.Decimal `json:"percentage"`
	Count      int             `json:"count"`
}

// Distribution is the per-category breakdown of one transaction kind.
type Distribution struct {
	Kind    entity.TransactionKind `json:"kind"`
	Total   money.Amount           `json:"total"`
	Buckets []Bucket               `json:"buckets"`
}

// DistributionOptions tunes how Distribute labels buckets.
type DistributionOptions struct {
	UncategorizedLabel string
}

// Distribute groups transactions of the given kind by category name. Transactions
// with no category, or whose category is not in categories, fall into the
// uncategorized bucket. Buckets are ordered by value descending, then name.
func Distribute(
	txs []*entity.Transaction,
	kind entity.TransactionKind,
	categories []*entity.TransactionCategory,
	opts DistributionOptions,
) Distribution {
	label := strings.TrimSpace(opts.UncategorizedLabel)
	if label == "" {
		label = DefaultUncategorizedLabel
	}

	byID := make(map[uuid.UUID]*entity.TransactionCategory, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	index := make(map[string]int)
	buckets := make([]Bucket, 0)
	total := money.Zero

	for _, tx := range txs {
		if tx.Kind != kind {
			continue
		}

		name, color := label, UncategorizedColor
		if tx.CategoryID != nil {
			if c, ok := byID[*tx.CategoryID]; ok {
				name, color = c.Name, c.Color
			}
		}

		i, ok := index[name]
		if !ok {
			i = len(buckets)
			index[name] = i
			buckets = append(buckets, Bucket{Name: name, Color: color})
		}

		buckets[i].Value = buckets[i].Value.Add(tx.Amount)
		buckets[i].Count++
		total = total.Add(tx.Amount)
	}

	for i := range buckets {
		buckets[i].Percentage = Percentage(buckets[i].Value, total)
	}

	slices.SortFunc(buckets, func(a, b Bucket) int {
		if c := b.Value.Cmp(a.Value); c != 0 {
			return c
		}

		return strings.Compare(a.Name, b.Name)
	})

	return Distribution{Kind: kind, Total: total, Buckets: buckets}
}

// AsMap returns the bucket values keyed by category name.
func (d Distribution) AsMap() map[string]money.Amount {
	out := make(map[string]money.Amount, len(d.Buckets))
	for _, b := range d.Buckets {
		out[b.Name] = b.Value
	}

	return out
}
