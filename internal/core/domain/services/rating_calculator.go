package services

import (
	"math"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"candydelivery/internal/core/domain/model/order"
)

const (
	// ratingHorizon is the average handling time at which the rating drops to zero.
	ratingHorizon = time.Hour
	// ratingScale is the best possible rating.
	ratingScale = 5
)

// RatingCalculator is a domain service that derives courier scores from delivered orders.
//
// Rating:
//   - delivered orders are grouped by region and sorted by id inside each region
//   - the first order of a region is timed from its assignment to its completion,
//     every following one from the previous completion to its own completion
//   - a region score is the mean of these durations in seconds
//   - with t the best (lowest) region score, clamped to [0, 3600],
//     rating = (3600 - t) / 3600 * 5 rounded to two decimals
//   - a courier with no delivered orders has no rating
//
// Earnings are the sum of the prices of the delivered orders.
type RatingCalculator struct{}

// NewRatingCalculator creates a new RatingCalculator instance.
func NewRatingCalculator() RatingCalculator {
	return RatingCalculator{}
}

// Rating returns the courier rating, or nil when there is nothing to rate.
// Orders that are not delivered are ignored.
//
// Example:
//
//	// region 1: assigned 10:00, completed 10:10 and 10:30 -> durations 600s, 1200s -> 900s
//	// region 2: assigned 10:00, completed 10:20 -> 1200s
//	// t = 900s, rating = (3600 - 900) / 3600 * 5 = 3.75
func (RatingCalculator) Rating(delivered []*order.Order) *float64 {
	byRegion := make(map[int][]*order.Order)
	for _, o := range delivered {
		if !o.IsDelivered() || o.CompletedAt() == nil || o.Assignment() == nil {
			continue
		}
		byRegion[o.Region()] = append(byRegion[o.Region()], o)
	}

	if len(byRegion) == 0 {
		return nil
	}

	best := math.Inf(1)
	for _, orders := range byRegion {
		best = math.Min(best, regionScore(orders))
	}

	horizon := ratingHorizon.Seconds()
	t := math.Max(0, math.Min(best, horizon))
	rating := math.Round((horizon-t)/horizon*ratingScale*100) / 100
	return &rating
}

// Earnings returns the total price of delivered orders, zero when there are none.
func (RatingCalculator) Earnings(delivered []*order.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range delivered {
		if o.IsDelivered() {
			total = total.Add(o.Price())
		}
	}
	return total
}

// regionScore is the mean handling time of one region in seconds.
func regionScore(orders []*order.Order) float64 {
	sorted := slices.Clone(orders)
	slices.SortFunc(sorted, byID)

	var sum float64
	previous := sorted[0].Assignment().AssignedAt()
	for _, o := range sorted {
		completed := *o.CompletedAt()
		sum += completed.Sub(previous).Seconds()
		previous = completed
	}

	return sum / float64(len(sorted))
}
