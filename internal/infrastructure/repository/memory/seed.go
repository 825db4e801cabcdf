package memory

import "github.com/volleyverse/fantasy-volley/internal/domain/player"

// SeedPlayers returns a small deterministic roster with two candidates
// per position. The first candidate of each position sums to exactly
// the credit budget, which keeps valid lineups easy to build in tests.
func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "vb-s-01", Name: "Alex Chen", JerseyNumber: 7, Position: player.PositionSetter, TeamName: "Phoenix Fire", CreditCost: 20, Stats: player.Stats{Matches: 142, Sets: 389, KillsPerSet: 2.1, DigsPerSet: 2.4, BlocksPerSet: 0.6, AcesPerSet: 0.9}},
		{ID: "vb-s-02", Name: "Avery Garcia", JerseyNumber: 4, Position: player.PositionSetter, TeamName: "Wave Riders", CreditCost: 14, Stats: player.Stats{Matches: 171, Sets: 438, KillsPerSet: 1.8, DigsPerSet: 2.6, BlocksPerSet: 0.5, AcesPerSet: 0.8}},
		{ID: "vb-oh-01", Name: "Jordan Smith", JerseyNumber: 12, Position: player.PositionOutsideHitter, TeamName: "Wave Riders", CreditCost: 20, Stats: player.Stats{Matches: 168, Sets: 451, KillsPerSet: 4.8, DigsPerSet: 2.2, BlocksPerSet: 0.8, AcesPerSet: 1.1}},
		{ID: "vb-oh-02", Name: "Quinn Miller", JerseyNumber: 18, Position: player.PositionOutsideHitter, TeamName: "Phoenix Fire", CreditCost: 30, Stats: player.Stats{Matches: 199, Sets: 492, KillsPerSet: 5.4, DigsPerSet: 2.7, BlocksPerSet: 0.9, AcesPerSet: 1.4}},
		{ID: "vb-opp-01", Name: "Taylor Johnson", JerseyNumber: 3, Position: player.PositionOppositeHitter, TeamName: "Thunder Storm", CreditCost: 20, Stats: player.Stats{Matches: 95, Sets: 248, KillsPerSet: 5.1, DigsPerSet: 1.8, BlocksPerSet: 1.0, AcesPerSet: 1.3}},
		{ID: "vb-opp-02", Name: "Blake Davis", JerseyNumber: 6, Position: player.PositionOppositeHitter, TeamName: "Sky Hawks", CreditCost: 16, Stats: player.Stats{Matches: 121, Sets: 317, KillsPerSet: 4.5, DigsPerSet: 1.9, BlocksPerSet: 1.1, AcesPerSet: 0.9}},
		{ID: "vb-mb-01", Name: "Morgan Williams", JerseyNumber: 15, Position: player.PositionMiddleBlocker, TeamName: "Lightning Bolts", CreditCost: 20, Stats: player.Stats{Matches: 187, Sets: 476, KillsPerSet: 2.9, DigsPerSet: 1.6, BlocksPerSet: 2.3, AcesPerSet: 0.5}},
		{ID: "vb-mb-02", Name: "Drew Rodriguez", JerseyNumber: 33, Position: player.PositionMiddleBlocker, TeamName: "Thunder Storm", CreditCost: 12, Stats: player.Stats{Matches: 88, Sets: 224, KillsPerSet: 2.6, DigsPerSet: 1.5, BlocksPerSet: 2.1, AcesPerSet: 0.4}},
		{ID: "vb-l-01", Name: "Casey Brown", JerseyNumber: 9, Position: player.PositionLibero, TeamName: "Sky Hawks", CreditCost: 10, Stats: player.Stats{Matches: 156, Sets: 412, KillsPerSet: 0.2, DigsPerSet: 3.9, BlocksPerSet: 0.1, AcesPerSet: 0.7}},
		{ID: "vb-l-02", Name: "Cameron Martinez", JerseyNumber: 11, Position: player.PositionLibero, TeamName: "Lightning Bolts", CreditCost: 8, Stats: player.Stats{Matches: 134, Sets: 356, KillsPerSet: 0.3, DigsPerSet: 3.6, BlocksPerSet: 0.1, AcesPerSet: 0.6}},
		{ID: "vb-ds-01", Name: "Riley Jones", JerseyNumber: 21, Position: player.PositionDefensiveSpecialist, TeamName: "Ocean Warriors", CreditCost: 10, Stats: player.Stats{Matches: 103, Sets: 271, KillsPerSet: 0.8, DigsPerSet: 3.4, BlocksPerSet: 0.2, AcesPerSet: 1.2}},
		{ID: "vb-ds-02", Name: "Sage Lee", JerseyNumber: 27, Position: player.PositionDefensiveSpecialist, TeamName: "Phoenix Fire", CreditCost: 7, Stats: player.Stats{Matches: 76, Sets: 198, KillsPerSet: 0.7, DigsPerSet: 3.1, BlocksPerSet: 0.2, AcesPerSet: 1.0}},
	}
}
