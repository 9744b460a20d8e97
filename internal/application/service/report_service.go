package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/alexacafe/pos-api/internal/application/state"
	"github.com/alexacafe/pos-api/internal/domain/entity"
	"github.com/alexacafe/pos-api/internal/domain/enum"
	"github.com/alexacafe/pos-api/pkg/apperror"
)

// SalesBucket holds one period's revenue and per-item sale counts.
type SalesBucket struct {
	Total     entity.Money   `json:"total"`
	ItemsSold map[string]int `json:"itemsSold"`

	itemOrder []string
}

func (b *SalesBucket) addItem(name string, quantity int) {
	if _, seen := b.ItemsSold[name]; !seen {
		b.itemOrder = append(b.itemOrder, name)
	}
	b.ItemsSold[name] += quantity
}

// SalesData is an ordered set of sales buckets. Keys appear in first-seen
// order, which for a chronological purchase history is chronological too.
type SalesData struct {
	keys    []string
	buckets map[string]*SalesBucket
}

// Keys returns bucket keys in first-seen order.
func (d *SalesData) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Bucket returns the bucket for a key, or nil when absent.
func (d *SalesData) Bucket(key string) *SalesBucket {
	return d.buckets[key]
}

// Len returns the number of buckets.
func (d *SalesData) Len() int {
	return len(d.keys)
}

func (d *SalesData) bucket(key string) *SalesBucket {
	b, ok := d.buckets[key]
	if !ok {
		b = &SalesBucket{ItemsSold: map[string]int{}}
		d.buckets[key] = b
		d.keys = append(d.keys, key)
	}
	return b
}

// TrendPoint pairs a bucket key with its revenue, for charting.
type TrendPoint struct {
	Key   string       `json:"key"`
	Total entity.Money `json:"total"`
}

// BestSeller is one entry of the best-sellers ranking.
type BestSeller struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ReportService derives sales aggregates from the purchase history
type ReportService struct {
	state *state.Store
}

// NewReportService creates a new report service
func NewReportService(st *state.Store) *ReportService {
	return &ReportService{state: st}
}

// BucketKey maps a purchase date onto its period key. Daily keys are ISO
// calendar dates, monthly keys are year-month. Weekly keys use the shop's
// own week convention: week = ceil((dayOfYear + jan1Weekday + 1) / 7) with
// dayOfYear counted from zero and jan1Weekday starting at Sunday. That is
// close to, but intentionally not, ISO 8601 week numbering.
func BucketKey(date time.Time, g enum.Granularity) string {
	switch g {
	case enum.GranularityWeekly:
		jan1 := time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, date.Location())
		dayOfYear := date.YearDay() - 1
		week := (dayOfYear + int(jan1.Weekday()) + 1 + 6) / 7
		return fmt.Sprintf("%d-W%02d", date.Year(), week)
	case enum.GranularityMonthly:
		return fmt.Sprintf("%d-%02d", date.Year(), int(date.Month()))
	default:
		return date.Format("2006-01-02")
	}
}

// Aggregate buckets a purchase history by the given granularity. It is a
// pure function of its input: running it twice on the same history yields
// identical data.
func (s *ReportService) Aggregate(history []entity.Receipt, g enum.Granularity) (*SalesData, error) {
	if len(history) == 0 {
		return nil, apperror.NewValidationError("No sales data to aggregate")
	}
	data := &SalesData{buckets: map[string]*SalesBucket{}}
	for i := range history {
		r := &history[i]
		if r.Date.IsZero() || r.Total == 0 || r.Items == nil {
			return nil, apperror.NewValidationError("Sales record is missing a date, total, or items")
		}
		bucket := data.bucket(BucketKey(r.Date, g))
		bucket.Total += r.Total
		for _, item := range r.Items {
			if item.Name == "" {
				return nil, apperror.NewValidationError("Sales item is missing a name")
			}
			bucket.addItem(item.Name, item.Quantity)
		}
	}
	return data, nil
}

// AggregateHistory aggregates the live purchase history.
func (s *ReportService) AggregateHistory(ctx context.Context, g enum.Granularity) (*SalesData, error) {
	return s.Aggregate(s.state.PurchaseHistory(), g)
}

// Trend returns the last limit buckets, oldest first. Keys are sorted
// before the window is taken; every key format sorts lexicographically in
// date order, so the window is chronological even when imported history
// arrived out of order.
func Trend(data *SalesData, limit int) []TrendPoint {
	keys := data.Keys()
	sort.Strings(keys)
	if limit > 0 && len(keys) > limit {
		keys = keys[len(keys)-limit:]
	}
	out := make([]TrendPoint, len(keys))
	for i, k := range keys {
		out[i] = TrendPoint{Key: k, Total: data.Bucket(k).Total}
	}
	return out
}

// BestSellers ranks items by total quantity sold across all buckets,
// descending. Ties keep first-seen order. Returns at most topN entries.
func BestSellers(data *SalesData, topN int) []BestSeller {
	totals := map[string]int{}
	var order []string
	for _, key := range data.keys {
		b := data.buckets[key]
		for _, name := range b.itemOrder {
			if _, seen := totals[name]; !seen {
				order = append(order, name)
			}
			totals[name] += b.ItemsSold[name]
		}
	}
	ranked := make([]BestSeller, len(order))
	for i, name := range order {
		ranked[i] = BestSeller{Name: name, Quantity: totals[name]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})
	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// TotalRevenue sums revenue across all buckets.
func TotalRevenue(data *SalesData) entity.Money {
	var total entity.Money
	for _, key := range data.keys {
		total += data.buckets[key].Total
	}
	return total
}

// AverageOrderValue divides revenue by purchase count, zero-safe.
func AverageOrderValue(totalRevenue entity.Money, purchaseCount int) entity.Money {
	if purchaseCount == 0 {
		return 0
	}
	return entity.Money(math.Round(float64(totalRevenue) / float64(purchaseCount)))
}
