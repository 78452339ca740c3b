package nav

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"roadnav.opentransit.org/internal/routing"
	"roadnav.opentransit.org/navdb"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// persistInterval is how often a modified network is flushed to the store.
const persistInterval = 5 * time.Minute

// Manager owns the road network and provides synchronized access to it.
// Query methods take a read lock and delegate to the routing engine; ingest
// methods take the write lock and mark the network dirty so the background
// persister flushes it to SQLite.
type Manager struct {
	network      *routing.Network
	networkMutex sync.RWMutex
	dirty        bool
	NavDB        *navdb.Client
	config       Config
	lastUpdated  time.Time
	shutdownChan chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// InitNavManager builds a Manager from the configured sources. A JSON network
// document takes precedence, then a GTFS feed, then whatever the store
// already holds.
func InitNavManager(config Config) (*Manager, error) {
	navDB, err := navdb.NewClient(navdb.NewConfig(config.DBPath, config.Env, config.Verbose))
	if err != nil {
		return nil, fmt.Errorf("unable to create network store: %w", err)
	}

	manager := &Manager{
		config:       config,
		NavDB:        navDB,
		shutdownChan: make(chan struct{}),
	}

	network, loadedFromStore, err := loadInitialNetwork(config, navDB)
	if err != nil {
		navDB.Close() // nolint:errcheck
		return nil, err
	}
	manager.network = network
	manager.lastUpdated = time.Now()

	if !loadedFromStore {
		if err := navDB.SaveNetwork(context.Background(), network); err != nil {
			navDB.Close() // nolint:errcheck
			return nil, fmt.Errorf("error storing network: %w", err)
		}
	}

	manager.wg.Add(1)
	go manager.persistPeriodically()

	return manager, nil
}

func loadInitialNetwork(config Config, navDB *navdb.Client) (*routing.Network, bool, error) {
	if config.NetworkPath != "" {
		network, err := LoadNetworkFile(config.NetworkPath)
		if err != nil {
			return nil, false, fmt.Errorf("error loading network document: %w", err)
		}
		return network, false, nil
	}

	if config.GTFSSource != "" {
		network, err := NetworkFromGTFS(config.GTFSSource)
		if err != nil {
			return nil, false, fmt.Errorf("error building network from GTFS: %w", err)
		}
		return network, false, nil
	}

	network, err := navDB.LoadNetwork(context.Background())
	if err != nil {
		return nil, false, fmt.Errorf("error loading stored network: %w", err)
	}
	return network, true, nil
}

// Shutdown flushes pending changes and stops the background persister.
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		close(manager.shutdownChan)
		manager.wg.Wait()
		if manager.NavDB != nil {
			if err := manager.Persist(context.Background()); err != nil {
				log.Printf("Error persisting network during shutdown: %v", err)
			}
			_ = manager.NavDB.Close()
		}
	})
}

func (manager *Manager) persistPeriodically() {
	defer manager.wg.Done()

	ticker := time.NewTicker(persistInterval)
	defer ticker.Stop()

	for {
		select {
		case <-manager.shutdownChan:
			return
		case <-ticker.C:
			if err := manager.Persist(context.Background()); err != nil {
				log.Printf("Error persisting network: %v", err)
			}
		}
	}
}

// Persist writes the network to the store if it changed since the last flush.
func (manager *Manager) Persist(ctx context.Context) error {
	manager.networkMutex.Lock()
	defer manager.networkMutex.Unlock()

	if !manager.dirty {
		return nil
	}
	if err := manager.NavDB.SaveNetwork(ctx, manager.network); err != nil {
		return err
	}
	manager.dirty = false
	return nil
}

// LastUpdated reports when the network was last modified.
func (manager *Manager) LastUpdated() time.Time {
	manager.networkMutex.RLock()
	defer manager.networkMutex.RUnlock()
	return manager.lastUpdated
}

func (manager *Manager) markDirty() {
	manager.dirty = true
	manager.lastUpdated = time.Now()
}

// AddLocation registers a location on the network.
func (manager *Manager) AddLocation(id string, latitude, longitude float64, category, description string) error {
	manager.networkMutex.Lock()
	defer manager.networkMutex.Unlock()

	if err := manager.network.AddLocation(id, latitude, longitude, category, description); err != nil {
		return err
	}
	manager.markDirty()
	return nil
}

// AddRoad registers a bidirectional road between two known locations.
func (manager *Manager) AddRoad(from, to string, distanceKm, baseFactor float64, roadType routing.RoadType, speedLimitKmh float64) error {
	manager.networkMutex.Lock()
	defer manager.networkMutex.Unlock()

	if err := manager.network.AddRoad(from, to, distanceKm, baseFactor, roadType, speedLimitKmh); err != nil {
		return err
	}
	manager.markDirty()
	return nil
}

// AddTrafficPattern sets the hourly traffic windows for a road.
func (manager *Manager) AddTrafficPattern(from, to string, windows []routing.HourWindow) error {
	manager.networkMutex.Lock()
	defer manager.networkMutex.Unlock()

	if err := manager.network.AddTrafficPattern(from, to, windows); err != nil {
		return err
	}
	manager.markDirty()
	return nil
}

// AddConstructionZone marks a road as under construction for a time span.
func (manager *Manager) AddConstructionZone(from, to string, start, end time.Time, delayFactor float64) error {
	manager.networkMutex.Lock()
	defer manager.networkMutex.Unlock()

	if err := manager.network.AddConstructionZone(from, to, start, end, delayFactor); err != nil {
		return err
	}
	manager.markDirty()
	return nil
}

// AddWeatherImpact records a network-wide slowdown for a calendar date.
func (manager *Manager) AddWeatherImpact(date time.Time, factor float64, condition string) error {
	manager.networkMutex.Lock()
	defer manager.networkMutex.Unlock()

	if err := manager.network.AddWeatherImpact(date, factor, condition); err != nil {
		return err
	}
	manager.markDirty()
	return nil
}

// SetOperatingHours replaces a location's windows for one weekday.
func (manager *Manager) SetOperatingHours(id string, day time.Weekday, windows []routing.ClockWindow) error {
	manager.networkMutex.Lock()
	defer manager.networkMutex.Unlock()

	if err := manager.network.SetOperatingHours(id, day, windows); err != nil {
		return err
	}
	manager.markDirty()
	return nil
}

// AddSpecialEvent records a closure window for a location.
func (manager *Manager) AddSpecialEvent(id string, start, end time.Time, name string) error {
	manager.networkMutex.Lock()
	defer manager.networkMutex.Unlock()

	if err := manager.network.AddSpecialEvent(id, start, end, name); err != nil {
		return err
	}
	manager.markDirty()
	return nil
}

// FindRoute computes the cheapest path between two locations at the given time.
func (manager *Manager) FindRoute(from, to string, at time.Time) (routing.Route, error) {
	manager.networkMutex.RLock()
	defer manager.networkMutex.RUnlock()
	return manager.network.FindRoute(from, to, at)
}

// EstimateTravelTime computes the clock time needed to drive the cheapest
// route departing at the given time.
func (manager *Manager) EstimateTravelTime(from, to string, departure time.Time) (time.Duration, error) {
	manager.networkMutex.RLock()
	defer manager.networkMutex.RUnlock()
	return manager.network.EstimateTravelTime(from, to, departure)
}

// GenerateTimingReport produces the per-segment breakdown for a trip.
func (manager *Manager) GenerateTimingReport(from, to string, departure time.Time) (*routing.TimingReport, error) {
	manager.networkMutex.RLock()
	defer manager.networkMutex.RUnlock()
	return manager.network.GenerateTimingReport(from, to, departure)
}

// IsLocationOpen reports whether a location is open at the given instant.
func (manager *Manager) IsLocationOpen(id string, at time.Time) (bool, string, error) {
	manager.networkMutex.RLock()
	defer manager.networkMutex.RUnlock()
	return manager.network.IsLocationOpen(id, at)
}

// OptimalDeparture finds the best departure time for a target arrival.
func (manager *Manager) OptimalDeparture(ctx context.Context, from, to string, targetArrival time.Time, windowMinutes int) (routing.Departure, error) {
	manager.networkMutex.RLock()
	defer manager.networkMutex.RUnlock()
	return manager.network.OptimalDeparture(ctx, from, to, targetArrival, windowMinutes)
}

// Location returns a registered location, or false if unknown.
func (manager *Manager) Location(id string) (*routing.Location, bool) {
	manager.networkMutex.RLock()
	defer manager.networkMutex.RUnlock()
	return manager.network.Location(id)
}

// Locations returns every registered location in insertion order.
func (manager *Manager) Locations() []*routing.Location {
	manager.networkMutex.RLock()
	defer manager.networkMutex.RUnlock()
	return manager.network.Locations()
}

// LocationsNear returns the locations within radiusKm of the given point,
// in insertion order.
func (manager *Manager) LocationsNear(latitude, longitude, radiusKm float64) []*routing.Location {
	manager.networkMutex.RLock()
	defer manager.networkMutex.RUnlock()

	var nearby []*routing.Location
	for _, loc := range manager.network.Locations() {
		if haversineKm(latitude, longitude, loc.Latitude, loc.Longitude) <= radiusKm {
			nearby = append(nearby, loc)
		}
	}
	return nearby
}

// WeatherImpactOn returns the weather impact recorded for the calendar date
// of the given instant, if any.
func (manager *Manager) WeatherImpactOn(at time.Time) (routing.WeatherImpact, bool) {
	manager.networkMutex.RLock()
	defer manager.networkMutex.RUnlock()
	return manager.network.WeatherImpactOn(at)
}

// Neighbors returns the roads leaving a location.
func (manager *Manager) Neighbors(id string) ([]routing.RoadSegment, error) {
	manager.networkMutex.RLock()
	defer manager.networkMutex.RUnlock()
	return manager.network.Neighbors(id)
}

// Snapshot captures the current network state.
func (manager *Manager) Snapshot() *routing.Snapshot {
	manager.networkMutex.RLock()
	defer manager.networkMutex.RUnlock()
	return manager.network.Snapshot()
}

// NumLocations returns the number of registered locations.
func (manager *Manager) NumLocations() int {
	manager.networkMutex.RLock()
	defer manager.networkMutex.RUnlock()
	return manager.network.NumLocations()
}

// NumRoads returns the number of directed adjacency records.
func (manager *Manager) NumRoads() int {
	manager.networkMutex.RLock()
	defer manager.networkMutex.RUnlock()
	return manager.network.NumRoads()
}

// PrintStatistics logs the row counts of the backing store.
func (manager *Manager) PrintStatistics(ctx context.Context) {
	counts, err := manager.NavDB.TableCounts(ctx)
	if err != nil {
		log.Printf("Error collecting network statistics: %v", err)
		return
	}
	log.Printf("Network store: %d locations, %d roads, %d traffic windows, %d construction zones, %d weather impacts, %d operating hours, %d special events",
		counts["locations"], counts["roads"], counts["traffic_windows"],
		counts["construction_zones"], counts["weather_impacts"],
		counts["operating_hours"], counts["special_events"])
}
