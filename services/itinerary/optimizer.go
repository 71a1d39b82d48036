// File: services/itinerary/optimizer.go
package itinerary

import (
	"errors"
	"math"
	"math/rand"
	"sort"

	"tripgenius/config"
	"tripgenius/models"
)

// ErrDegenerateInput is returned when there are no POIs or no days to plan.
var ErrDegenerateInput = errors.New("itinerary: no points of interest or zero trip days")

// Params tunes the optimizer. Zero values fall back to configured defaults.
type Params struct {
	Days                 int
	DailyCapacity        int
	MaxClusterIterations int
	MaxSwapIterations    int
	Seed                 int64
}

// FromConfig returns optimizer parameters for a trip of the given length,
// tuned from application config.
func FromConfig(days int) Params {
	return Params{
		Days:                 days,
		DailyCapacity:        config.AppConfig.ItineraryDailyCapacity,
		MaxClusterIterations: config.AppConfig.ItineraryClusterIterations,
		MaxSwapIterations:    config.AppConfig.ItinerarySwapIterations,
		Seed:                 config.AppConfig.ItinerarySeed,
	}
}

// BuildPlan partitions the POIs into geographic clusters, orders each
// cluster into a short walking route, and assigns one cluster per day,
// chaining days so consecutive clusters are near each other.
//
// The result is deterministic for a given input set and parameters: POIs are
// canonically ordered by ID before any seeded randomness is applied.
func BuildPlan(pois []models.PointOfInterest, p Params) (models.ItineraryPlan, error) {
	if len(pois) == 0 || p.Days < 1 {
		return models.ItineraryPlan{}, ErrDegenerateInput
	}
	if p.DailyCapacity < 1 {
		p.DailyCapacity = 3
	}
	if p.MaxClusterIterations < 1 {
		p.MaxClusterIterations = 25
	}
	if p.MaxSwapIterations < 1 {
		p.MaxSwapIterations = 50
	}

	ordered := make([]models.PointOfInterest, len(pois))
	copy(ordered, pois)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	// Cap the plan at what the days can hold, dropping the lowest-rated
	// POIs first.
	omitted := 0
	if max := p.Days * p.DailyCapacity; len(ordered) > max {
		byRating := make([]models.PointOfInterest, len(ordered))
		copy(byRating, ordered)
		sort.SliceStable(byRating, func(i, j int) bool {
			if byRating[i].Rating != byRating[j].Rating {
				return byRating[i].Rating > byRating[j].Rating
			}
			return byRating[i].ID < byRating[j].ID
		})
		keep := make(map[string]bool, max)
		for _, poi := range byRating[:max] {
			keep[poi.ID] = true
		}
		omitted = len(ordered) - max
		kept := ordered[:0]
		for _, poi := range ordered {
			if keep[poi.ID] {
				kept = append(kept, poi)
			}
		}
		ordered = kept
	}

	k := p.Days
	if needed := (len(ordered) + p.DailyCapacity - 1) / p.DailyCapacity; needed < k {
		k = needed
	}

	rng := rand.New(rand.NewSource(p.Seed))
	clusters := cluster(ordered, k, p.MaxClusterIterations, rng)
	rebalance(clusters, p.DailyCapacity)
	clusters = dropEmpty(clusters)
	for i := range clusters {
		clusters[i].route = routeOrder(clusters[i].route, p.MaxSwapIterations)
	}

	chained := chainClusters(clusters)

	plan := models.ItineraryPlan{Omitted: omitted}
	for day := 1; day <= p.Days; day++ {
		if day <= len(chained) {
			plan.Days = append(plan.Days, models.DayPlan{Day: day, Route: chained[day-1].route})
		} else {
			plan.Days = append(plan.Days, models.DayPlan{Day: day, Free: true})
		}
	}
	return plan, nil
}

type geoCluster struct {
	centroidLat float64
	centroidLon float64
	route       []models.PointOfInterest
}

// cluster runs Lloyd's k-means on POI coordinates. All k clusters are
// returned, including any that ended up empty; rebalancing may fill them.
func cluster(pois []models.PointOfInterest, k, maxIter int, rng *rand.Rand) []geoCluster {
	if k >= len(pois) {
		out := make([]geoCluster, 0, len(pois))
		for _, poi := range pois {
			out = append(out, geoCluster{
				centroidLat: poi.Latitude,
				centroidLon: poi.Longitude,
				route:       []models.PointOfInterest{poi},
			})
		}
		return out
	}

	// Seed centroids from distinct POIs.
	perm := rng.Perm(len(pois))
	centLat := make([]float64, k)
	centLon := make([]float64, k)
	for i := 0; i < k; i++ {
		centLat[i] = pois[perm[i]].Latitude
		centLon[i] = pois[perm[i]].Longitude
	}

	assign := make([]int, len(pois))
	for iter := 0; iter < maxIter; iter++ {
		changed := false
		for i, poi := range pois {
			best, bestDist := 0, math.MaxFloat64
			for c := 0; c < k; c++ {
				d := haversineKm(poi.Latitude, poi.Longitude, centLat[c], centLon[c])
				if d < bestDist {
					best, bestDist = c, d
				}
			}
			if assign[i] != best {
				assign[i] = best
				changed = true
			}
		}

		sumLat := make([]float64, k)
		sumLon := make([]float64, k)
		count := make([]int, k)
		for i, poi := range pois {
			c := assign[i]
			sumLat[c] += poi.Latitude
			sumLon[c] += poi.Longitude
			count[c]++
		}
		for c := 0; c < k; c++ {
			if count[c] > 0 {
				centLat[c] = sumLat[c] / float64(count[c])
				centLon[c] = sumLon[c] / float64(count[c])
			}
		}
		if !changed {
			break
		}
	}

	grouped := make([][]models.PointOfInterest, k)
	for i, poi := range pois {
		grouped[assign[i]] = append(grouped[assign[i]], poi)
	}

	out := make([]geoCluster, 0, k)
	for c := 0; c < k; c++ {
		out = append(out, geoCluster{
			centroidLat: centLat[c],
			centroidLon: centLon[c],
			route:       grouped[c],
		})
	}
	return out
}

// rebalance enforces the per-day capacity: clusters over capacity shed their
// farthest-from-centroid POI to the nearest cluster with room. Feasible by
// construction since the POI count was capped at clusters x capacity.
func rebalance(clusters []geoCluster, capacity int) {
	for {
		over := -1
		for i := range clusters {
			if len(clusters[i].route) > capacity {
				over = i
				break
			}
		}
		if over == -1 {
			return
		}

		src := &clusters[over]
		farthest, farthestDist := 0, -1.0
		for i, poi := range src.route {
			d := haversineKm(poi.Latitude, poi.Longitude, src.centroidLat, src.centroidLon)
			if d > farthestDist {
				farthest, farthestDist = i, d
			}
		}
		poi := src.route[farthest]

		dest, destDist := -1, math.MaxFloat64
		for i := range clusters {
			if i == over || len(clusters[i].route) >= capacity {
				continue
			}
			d := haversineKm(poi.Latitude, poi.Longitude, clusters[i].centroidLat, clusters[i].centroidLon)
			if d < destDist {
				dest, destDist = i, d
			}
		}
		if dest == -1 {
			return
		}
		src.route = append(src.route[:farthest], src.route[farthest+1:]...)
		clusters[dest].route = append(clusters[dest].route, poi)
	}
}

func dropEmpty(clusters []geoCluster) []geoCluster {
	out := clusters[:0]
	for _, c := range clusters {
		if len(c.route) > 0 {
			out = append(out, c)
		}
	}
	return out
}

// routeOrder orders a day's POIs with nearest-neighbor from the first POI,
// then improves the tour with bounded 2-opt swaps.
func routeOrder(pois []models.PointOfInterest, maxSwaps int) []models.PointOfInterest {
	if len(pois) < 3 {
		return pois
	}

	route := make([]models.PointOfInterest, 0, len(pois))
	remaining := make([]models.PointOfInterest, len(pois))
	copy(remaining, pois)

	route = append(route, remaining[0])
	remaining = remaining[1:]
	for len(remaining) > 0 {
		last := route[len(route)-1]
		best, bestDist := 0, math.MaxFloat64
		for i, poi := range remaining {
			d := haversineKm(last.Latitude, last.Longitude, poi.Latitude, poi.Longitude)
			if d < bestDist {
				best, bestDist = i, d
			}
		}
		route = append(route, remaining[best])
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	swaps := 0
	improved := true
	for improved && swaps < maxSwaps {
		improved = false
		for i := 0; i < len(route)-2 && swaps < maxSwaps; i++ {
			for j := i + 2; j < len(route)-1 && swaps < maxSwaps; j++ {
				current := legKm(route[i], route[i+1]) + legKm(route[j], route[j+1])
				swapped := legKm(route[i], route[j]) + legKm(route[i+1], route[j+1])
				if swapped < current {
					reverse(route[i+1 : j+1])
					swaps++
					improved = true
				}
			}
		}
	}
	return route
}

// chainClusters orders clusters so the trip starts at the cluster holding
// the highest-rated POI and each next day is the nearest remaining cluster
// by centroid distance.
func chainClusters(clusters []geoCluster) []geoCluster {
	if len(clusters) < 2 {
		return clusters
	}

	start := 0
	bestRating := -1.0
	for i, c := range clusters {
		for _, poi := range c.route {
			if poi.Rating > bestRating {
				bestRating = poi.Rating
				start = i
			}
		}
	}

	chained := make([]geoCluster, 0, len(clusters))
	remaining := make([]geoCluster, len(clusters))
	copy(remaining, clusters)

	chained = append(chained, remaining[start])
	remaining = append(remaining[:start], remaining[start+1:]...)
	for len(remaining) > 0 {
		last := chained[len(chained)-1]
		best, bestDist := 0, math.MaxFloat64
		for i, c := range remaining {
			d := haversineKm(last.centroidLat, last.centroidLon, c.centroidLat, c.centroidLon)
			if d < bestDist {
				best, bestDist = i, d
			}
		}
		chained = append(chained, remaining[best])
		remaining = append(remaining[:best], remaining[best+1:]...)
	}
	return chained
}

func legKm(a, b models.PointOfInterest) float64 {
	return haversineKm(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

func reverse(pois []models.PointOfInterest) {
	for i, j := 0, len(pois)-1; i < j; i, j = i+1, j-1 {
		pois[i], pois[j] = pois[j], pois[i]
	}
}

const earthRadiusKm = 6371.0

// haversineKm is the great-circle distance between two coordinates.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
