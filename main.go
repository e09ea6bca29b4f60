package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"

	"github.com/shashmeister/sleeper-dashboard/cache"
	"github.com/shashmeister/sleeper-dashboard/controller"
	"github.com/shashmeister/sleeper-dashboard/errlog"
	"github.com/shashmeister/sleeper-dashboard/news"
	"github.com/shashmeister/sleeper-dashboard/sleeper"
	"github.com/shashmeister/sleeper-dashboard/web"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	connString := os.Getenv("POSTGRES_CONN_STR")

	leagueID := os.Getenv("LEAGUE_ID")
	if leagueID == "" {
		log.Fatalf("LEAGUE_ID is required")
	}

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	clock := clock.New()
	store, err := cache.New(context.Background(), connString, clock)
	if err != nil {
		log.Fatalf("cannot connect to cache store: %v", err)
	}

	errs := errlog.New(context.Background(), clock, store)

	sleeperClient, err := sleeper.New()
	if err != nil {
		log.Fatalf("error creating sleeper client: %v", err)
	}
	if url := os.Getenv("SLEEPER_URL"); url != "" {
		sleeperClient = sleeper.NewForTest(url)
	}

	playerRefresh := 24 * time.Hour
	if v := os.Getenv("PLAYER_REFRESH"); v != "" {
		playerRefresh, err = time.ParseDuration(v)
		if err != nil {
			log.Fatalf("error parsing PLAYER_REFRESH: %v", err)
		}
	}

	newsClient, err := news.New(os.Getenv("NEWS_FEED_URL"))
	if err != nil {
		log.Fatalf("error creating news client: %v", err)
	}

	ctrl, err := controller.New(clock, sleeperClient, newsClient, store, errs, leagueID)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(portNum, ctrl)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Setup a job that refreshes the player directory from sleeper, every 24-hours by default
	wg.Add(1)
	go ctrl.RunPeriodicPlayerUpdates(playerRefresh, shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
