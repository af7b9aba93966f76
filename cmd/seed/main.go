// Command seed fills the database with random fleet data for local
// development: drivers, buses, routes, stops, rides, passengers, and a
// batch of issued tickets with some recorded uses.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"transit/internal/app"
	"transit/internal/config"
	"transit/internal/domain"
	"transit/internal/repository/postgres"
)

const seedCount = 10

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := app.NewDatabase(ctx, cfg.Database, nil)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := app.RunMigrations(cfg.Database.URL()); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	driverRepo := postgres.NewDriverRepository(db)
	busRepo := postgres.NewBusRepository(db)
	routeRepo := postgres.NewRouteRepository(db)
	rideRepo := postgres.NewRideRepository(db)
	passengerRepo := postgres.NewPassengerRepository(db)
	oneTimeRepo := postgres.NewOneTimeTicketRepository(db)
	weeklyRepo := postgres.NewWeeklyTicketRepository(db)
	useRepo := postgres.NewTicketUseRepository(db)

	drivers := make([]*domain.Driver, 0, seedCount)
	for i := 0; i < seedCount; i++ {
		driver := &domain.Driver{
			LicenseID: randomDigits(rng, 9),
			FirstName: randomName(rng),
			LastName:  randomName(rng),
		}
		if err := driverRepo.Create(ctx, driver); err != nil {
			log.Fatalf("failed to seed driver: %v", err)
		}
		drivers = append(drivers, driver)
	}

	models := make([]*domain.BusModel, 0, seedCount)
	for i := 0; i < seedCount; i++ {
		model := &domain.BusModel{
			ModelID: int64(1000 + i),
			Size:    20 + rng.Intn(60),
		}
		if err := busRepo.CreateModel(ctx, model); err != nil {
			log.Fatalf("failed to seed bus model: %v", err)
		}
		models = append(models, model)
	}

	buses := make([]*domain.Bus, 0, seedCount)
	for i := 0; i < seedCount; i++ {
		bus := &domain.Bus{
			LicensePlate: randomLicensePlate(rng),
			ModelID:      models[rng.Intn(len(models))].ModelID,
			Working:      rng.Intn(2) == 0,
		}
		if err := busRepo.Create(ctx, bus); err != nil {
			log.Fatalf("failed to seed bus: %v", err)
		}
		buses = append(buses, bus)
	}

	routes := make([]*domain.Route, 0, seedCount)
	for i := 0; i < seedCount; i++ {
		route := &domain.Route{RouteNo: 100 + i}
		if err := routeRepo.Create(ctx, route); err != nil {
			log.Fatalf("failed to seed route: %v", err)
		}
		routes = append(routes, route)
	}

	stops := make([]*domain.Stop, 0, seedCount)
	for i := 0; i < seedCount; i++ {
		stop := &domain.Stop{
			StopID:      int64(i + 1),
			Name:        randomName(rng),
			Coordinates: fmt.Sprintf("%d,%d", rng.Intn(90), rng.Intn(180)),
		}
		if err := routeRepo.CreateStop(ctx, stop); err != nil {
			log.Fatalf("failed to seed stop: %v", err)
		}
		stops = append(stops, stop)
	}

	for i, stop := range stops {
		placement := &domain.StopEnRoute{
			StopID:    stop.StopID,
			RouteNo:   routes[rng.Intn(len(routes))].RouteNo,
			StopOrder: i + 1,
		}
		if err := routeRepo.AddStop(ctx, placement); err != nil {
			log.Fatalf("failed to seed stop placement: %v", err)
		}
	}

	for i := 0; i < seedCount; i++ {
		ride := &domain.Ride{
			ID:           uuid.New().String(),
			LicensePlate: buses[rng.Intn(len(buses))].LicensePlate,
			RouteNo:      routes[rng.Intn(len(routes))].RouteNo,
			LicenseID:    drivers[rng.Intn(len(drivers))].LicenseID,
			StartTime:    time.Now().Add(time.Duration(rng.Intn(72)) * time.Hour),
		}
		if err := rideRepo.Create(ctx, ride); err != nil {
			log.Fatalf("failed to seed ride: %v", err)
		}
	}

	passengers := make([]*domain.Passenger, 0, seedCount)
	for i := 0; i < seedCount; i++ {
		passenger := &domain.Passenger{
			ID:        uuid.New().String(),
			FirstName: randomName(rng),
			LastName:  randomName(rng),
		}
		if err := passengerRepo.Create(ctx, passenger); err != nil {
			log.Fatalf("failed to seed passenger: %v", err)
		}
		passengers = append(passengers, passenger)
	}

	oneTimeTickets := make([]*domain.OneTimeTicket, 0, seedCount)
	for i := 0; i < seedCount; i++ {
		ticket := &domain.OneTimeTicket{
			ID:          uuid.New().String(),
			PassengerID: passengers[rng.Intn(len(passengers))].ID,
			IssueDate:   time.Now().Add(-time.Duration(rng.Intn(168)) * time.Hour),
		}
		if err := oneTimeRepo.Create(ctx, ticket); err != nil {
			log.Fatalf("failed to seed one-time ticket: %v", err)
		}
		oneTimeTickets = append(oneTimeTickets, ticket)
	}

	weeklyTickets := make([]*domain.WeeklyTicket, 0, seedCount)
	for i := 0; i < seedCount; i++ {
		ticket := &domain.WeeklyTicket{
			ID:          uuid.New().String(),
			PassengerID: passengers[rng.Intn(len(passengers))].ID,
			IssueDate:   time.Now().Add(-time.Duration(rng.Intn(168)) * time.Hour),
		}
		if err := weeklyRepo.Create(ctx, ticket); err != nil {
			log.Fatalf("failed to seed weekly ticket: %v", err)
		}
		weeklyTickets = append(weeklyTickets, ticket)
	}

	// Each one-time ticket can appear in at most one use, so the loop
	// visits each ticket once instead of sampling with replacement.
	uses := 0
	for _, ticket := range oneTimeTickets {
		if rng.Intn(2) == 0 {
			continue
		}
		use := &domain.TicketUse{
			ID:     uuid.New().String(),
			RideID: uuid.New().String(),
			Ref:    domain.OneTimeRef(ticket.ID),
		}
		if err := useRepo.Create(ctx, use); err != nil {
			log.Fatalf("failed to seed ticket use: %v", err)
		}
		uses++
	}
	for i := 0; i < seedCount; i++ {
		use := &domain.TicketUse{
			ID:     uuid.New().String(),
			RideID: uuid.New().String(),
			Ref:    domain.WeeklyRef(weeklyTickets[rng.Intn(len(weeklyTickets))].ID),
		}
		if err := useRepo.Create(ctx, use); err != nil {
			log.Fatalf("failed to seed ticket use: %v", err)
		}
		uses++
	}

	log.Printf("seeded %d drivers, %d buses, %d routes, %d stops, %d rides, %d passengers, %d tickets, %d uses",
		len(drivers), len(buses), len(routes), len(stops), seedCount, len(passengers),
		len(oneTimeTickets)+len(weeklyTickets), uses)
}

func randomName(rng *rand.Rand) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, 8)
	for i := range b {
		b[i] = letters[rng.Intn(len(letters))]
	}
	b[0] -= 'a' - 'A'
	return string(b)
}

func randomDigits(rng *rand.Rand, n int) string {
	const digits = "0123456789"
	b := make([]byte, n)
	for i := range b {
		b[i] = digits[rng.Intn(len(digits))]
	}
	return string(b)
}

func randomLicensePlate(rng *rand.Rand) string {
	const letters = "ABCDEFGH"
	b := make([]byte, 8)
	for i := range b {
		if i >= 2 && i < 6 {
			b[i] = byte('0' + rng.Intn(10))
		} else {
			b[i] = letters[rng.Intn(len(letters))]
		}
	}
	return string(b)
}
