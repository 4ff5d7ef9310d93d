// Package services provides domain services that orchestrate business operations
// across the courier and order aggregates of the candy delivery system.
//
// The package includes:
//   - OrderMatcher: builds or replays the assignment round of a courier
//   - CourierRevalidator: releases pending orders after a courier profile change
//   - RatingCalculator: derives rating and earnings from delivered orders
//
// Services are pure: they mutate the aggregates they are given and leave
// persistence to the application layer, which passes a ClaimFunc where a
// store-level compare-and-set is required.
package services
