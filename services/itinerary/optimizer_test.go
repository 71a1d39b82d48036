package itinerary

import (
	"fmt"
	"testing"

	"tripgenius/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams(days int) Params {
	return Params{
		Days:                 days,
		DailyCapacity:        3,
		MaxClusterIterations: 25,
		MaxSwapIterations:    50,
		Seed:                 1,
	}
}

// nineParisPOIs returns three well-separated triplets of POIs.
func nineParisPOIs() []models.PointOfInterest {
	pois := make([]models.PointOfInterest, 0, 9)
	centers := []struct{ lat, lon float64 }{
		{48.8606, 2.3376}, // Louvre area
		{48.8867, 2.3431}, // Montmartre area
		{48.8584, 2.2945}, // Eiffel area
	}
	for g, c := range centers {
		for i := 0; i < 3; i++ {
			pois = append(pois, models.PointOfInterest{
				ID:        fmt.Sprintf("poi-%d-%d", g, i),
				Name:      fmt.Sprintf("Spot %d-%d", g, i),
				Latitude:  c.lat + float64(i)*0.002,
				Longitude: c.lon + float64(i)*0.002,
				Category:  models.POIAttraction,
				Rating:    4.0 + float64(g)*0.2 + float64(i)*0.05,
			})
		}
	}
	return pois
}

func planPOIIDs(plan models.ItineraryPlan) map[string]int {
	seen := make(map[string]int)
	for _, day := range plan.Days {
		for _, poi := range day.Route {
			seen[poi.ID]++
		}
	}
	return seen
}

func TestBuildPlanPartitionsAllPOIsExactlyOnce(t *testing.T) {
	pois := nineParisPOIs()
	plan, err := BuildPlan(pois, testParams(3))
	require.NoError(t, err)

	require.Len(t, plan.Days, 3)
	assert.Equal(t, 0, plan.Omitted)

	seen := planPOIIDs(plan)
	require.Len(t, seen, 9)
	for id, count := range seen {
		assert.Equalf(t, 1, count, "POI %s appears %d times", id, count)
	}
	assert.Equal(t, 9, plan.TotalPOIs())
}

func TestBuildPlanNinePOIsThreeDaysThreePerDay(t *testing.T) {
	plan, err := BuildPlan(nineParisPOIs(), testParams(3))
	require.NoError(t, err)

	require.Len(t, plan.Days, 3)
	for _, day := range plan.Days {
		assert.False(t, day.Free)
		assert.Len(t, day.Route, 3)
	}
}

func TestBuildPlanIsDeterministic(t *testing.T) {
	pois := nineParisPOIs()
	first, err := BuildPlan(pois, testParams(3))
	require.NoError(t, err)

	// Same input in a different order must yield the identical plan.
	shuffled := []models.PointOfInterest{pois[4], pois[8], pois[0], pois[2], pois[6], pois[1], pois[7], pois[3], pois[5]}
	second, err := BuildPlan(shuffled, testParams(3))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildPlanFewerPOIsThanDaysYieldsFreeDays(t *testing.T) {
	pois := nineParisPOIs()[:2]
	plan, err := BuildPlan(pois, testParams(4))
	require.NoError(t, err)

	require.Len(t, plan.Days, 4)
	assert.False(t, plan.Days[0].Free)
	assert.Len(t, plan.Days[0].Route, 2)
	for _, day := range plan.Days[1:] {
		assert.True(t, day.Free)
		assert.Empty(t, day.Route)
	}
}

func TestBuildPlanDropsLowestRatedWhenOverCapacity(t *testing.T) {
	pois := make([]models.PointOfInterest, 0, 10)
	for i := 0; i < 10; i++ {
		pois = append(pois, models.PointOfInterest{
			ID:       fmt.Sprintf("poi-%02d", i),
			Name:     fmt.Sprintf("Spot %d", i),
			Latitude: 48.85 + float64(i)*0.001, Longitude: 2.35,
			Rating: float64(i), // poi-00 is the worst, poi-09 the best
		})
	}

	plan, err := BuildPlan(pois, testParams(2)) // room for 6 of 10
	require.NoError(t, err)

	assert.Equal(t, 4, plan.Omitted)
	assert.Equal(t, 6, plan.TotalPOIs())
	seen := planPOIIDs(plan)
	require.Len(t, seen, 6)
	for i := 0; i < 4; i++ {
		assert.NotContainsf(t, seen, fmt.Sprintf("poi-%02d", i), "low-rated POI should be dropped")
	}
	for _, day := range plan.Days {
		assert.LessOrEqual(t, len(day.Route), 3)
	}
}

func TestBuildPlanZeroParamsFallBackToDefaults(t *testing.T) {
	pois := nineParisPOIs()

	zeroed, err := BuildPlan(pois, Params{Days: 3})
	require.NoError(t, err)

	explicit, err := BuildPlan(pois, Params{
		Days:                 3,
		DailyCapacity:        3,
		MaxClusterIterations: 25,
		MaxSwapIterations:    50,
		Seed:                 0,
	})
	require.NoError(t, err)
	assert.Equal(t, explicit, zeroed)
}

func TestBuildPlanDegenerateInput(t *testing.T) {
	_, err := BuildPlan(nil, testParams(3))
	assert.ErrorIs(t, err, ErrDegenerateInput)

	_, err = BuildPlan(nineParisPOIs(), testParams(0))
	assert.ErrorIs(t, err, ErrDegenerateInput)
}

func TestHaversineKnownDistance(t *testing.T) {
	// Paris to London is roughly 344 km.
	d := haversineKm(48.8566, 2.3522, 51.5074, -0.1278)
	assert.InDelta(t, 344, d, 5)
}
