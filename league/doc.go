// Package league searches for balanced football leagues with a genetic algorithm.
//
// A pool of players is partitioned into a fixed number of teams, each filling the
// positional quotas of the team structure (1 GK, 2 DEF, 2 MID, 2 FWD by default). A
// roster scores higher the closer the teams' average skills are, and is penalised for
// every team whose total salary exceeds the budget.
//
// The evolution loop is generic over any Individual; this package supplies the roster
// representation together with its selection, crossover and mutation operators.
//
// Basic usage:
//
//	// Load configuration
//	config, err := league.LoadConfig("path/to/league-config")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	players, err := league.LoadPlayersCSV("path/to/players.csv")
//	if err != nil {
//		log.Fatalf("Error loading players: %v", err)
//	}
//	pool, err := league.NewPool(players)
//	if err != nil {
//		log.Fatalf("Error building pool: %v", err)
//	}
//	lg, err := league.NewLeague(&config.League, pool)
//	if err != nil {
//		log.Fatalf("Error creating league: %v", err)
//	}
//
//	// Create a population and evolve it
//	rng, _ := league.NewRand(config.GA.Seed)
//	ops, err := league.NewOperators(lg, &config.GA)
//	if err != nil {
//		log.Fatalf("Error resolving operators: %v", err)
//	}
//	pop, err := league.NewPopulation(&config.GA, ops, rng, nil)
//	if err != nil {
//		log.Fatalf("Error creating population: %v", err)
//	}
//	result, err := pop.Run()
//	if err != nil {
//		log.Fatalf("Error running evolution: %v", err)
//	}
//	fmt.Println(result.Best)
package league
