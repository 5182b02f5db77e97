package racer

import (
	"math/rand"

	"github.com/miniarcade/arcade-hub/internal/config"
	"github.com/miniarcade/arcade-hub/internal/core"
)

// car is an oncoming vehicle occupying one lane.
type car struct {
	lane   int
	y      float64 // top row, fractional while scrolling
	passed bool    // counted for scoring once fully below the player
}

func (c car) rect() core.Rect {
	return core.NewRect(0, int(c.y), carWidth, carHeight)
}

// marking is a scrolling road-marking segment on the lane dividers.
type marking struct {
	y float64
}

const markingPeriod = 4 // rows between marking segments

// trafficManager spawns, scrolls and despawns oncoming cars and road
// markings. Cars append at the tail and drop off once below the screen.
type trafficManager struct {
	cars       []car
	markings   []marking
	rng        *rand.Rand
	tuning     config.RacerTuning
	lanes      int
	screenH    int
	sinceSpawn float64 // rows scrolled since the last marking spawn
}

func newTrafficManager(rng *rand.Rand, tuning config.RacerTuning, lanes, screenH int) *trafficManager {
	tm := &trafficManager{}
	tm.reset(rng, tuning, lanes, screenH)
	return tm
}

func (tm *trafficManager) reset(rng *rand.Rand, tuning config.RacerTuning, lanes, screenH int) {
	tm.cars = tm.cars[:0]
	tm.rng = rng
	tm.tuning = tuning
	tm.lanes = lanes
	tm.screenH = screenH

	// Seed the dividers with evenly spaced segments.
	tm.markings = tm.markings[:0]
	for y := hudHeight; y < screenH; y += markingPeriod {
		tm.markings = append(tm.markings, marking{y: float64(y)})
	}
	tm.sinceSpawn = 0
}

// update scrolls everything down one speed step, spawns new entities and
// removes the ones past the bottom edge. Returns the number of cars that
// passed the player this tick.
func (tm *trafficManager) update(playerY int) int {
	speed := tm.tuning.ScrollSpeed

	for i := range tm.cars {
		tm.cars[i].y += speed
	}
	for i := range tm.markings {
		tm.markings[i].y += speed
	}

	passed := 0
	for i := range tm.cars {
		if !tm.cars[i].passed && int(tm.cars[i].y) > playerY+carHeight {
			tm.cars[i].passed = true
			passed++
		}
	}

	liveCars := tm.cars[:0]
	for _, c := range tm.cars {
		if int(c.y) < tm.screenH {
			liveCars = append(liveCars, c)
		}
	}
	tm.cars = liveCars

	liveMarks := tm.markings[:0]
	for _, m := range tm.markings {
		if int(m.y) < tm.screenH {
			liveMarks = append(liveMarks, m)
		}
	}
	tm.markings = liveMarks

	// New marking segment every markingPeriod rows of scroll.
	tm.sinceSpawn += speed
	if tm.sinceSpawn >= markingPeriod {
		tm.sinceSpawn -= markingPeriod
		tm.markings = append(tm.markings, marking{y: float64(hudHeight) - carHeight})
	}

	if tm.rng.Float64() < tm.tuning.SpawnChance {
		tm.spawnCar()
	}

	return passed
}

// spawnCar places a new car above the screen in a random lane, skipping the
// spawn when the lane's newest car is still within the minimum headway so a
// lane can never become an unavoidable wall.
func (tm *trafficManager) spawnCar() {
	lane := tm.rng.Intn(tm.lanes)

	spawnY := float64(-carHeight)
	for _, c := range tm.cars {
		if c.lane == lane && c.y < spawnY+float64(tm.tuning.MinHeadway+carHeight) {
			return
		}
	}

	tm.cars = append(tm.cars, car{lane: lane, y: spawnY})
}

// collides tests the player's box against every car sharing its lane.
func (tm *trafficManager) collides(playerLane int, player core.Rect) bool {
	for _, c := range tm.cars {
		if c.lane == playerLane && player.Intersects(c.rect()) {
			return true
		}
	}
	return false
}
