package usecase

import "github.com/volleyverse/fantasy-volley/internal/domain/player"

// seedImageURLs are stock portraits cycled across the fixture roster.
var seedImageURLs = []string{
	"https://images.unsplash.com/photo-1599509055064-8a742910930a?w=400",
	"https://images.unsplash.com/photo-1553451310-1416336a3cca?w=400",
	"https://images.unsplash.com/photo-1521138054413-5a47d349b7af?w=400",
	"https://images.unsplash.com/photo-1547347298-4074fc3086f0?w=400",
	"https://images.unsplash.com/photo-1516224498413-84ecf3a1e7fd?w=400",
	"https://images.unsplash.com/photo-1692197174597-1d85555c9b33?w=400",
	"https://images.unsplash.com/photo-1606335544053-c43609e6155d?w=400",
}

// seedRoster is the fixture catalog of 35 players. Positions rotate so
// every slot has several candidates, and credit costs stay within
// position bands (setters 12-20, hitters 15-25, middles 10-18, liberos
// 8-15, defensive specialists 7-14) so affordable full lineups exist.
var seedRoster = []player.Player{
	{Name: "Alex Chen", JerseyNumber: 7, Position: player.PositionSetter, TeamName: "Phoenix Fire", CreditCost: 18, Bio: "Technical expert with precise ball control and strategic thinking.", Stats: player.Stats{Matches: 142, Sets: 389, KillsPerSet: 2.1, DigsPerSet: 2.4, BlocksPerSet: 0.6, AcesPerSet: 0.9}},
	{Name: "Jordan Smith", JerseyNumber: 12, Position: player.PositionOutsideHitter, TeamName: "Wave Riders", CreditCost: 22, Bio: "A powerful attacker with exceptional court vision and leadership skills.", Stats: player.Stats{Matches: 168, Sets: 451, KillsPerSet: 4.8, DigsPerSet: 2.2, BlocksPerSet: 0.8, AcesPerSet: 1.1}},
	{Name: "Taylor Johnson", JerseyNumber: 3, Position: player.PositionOppositeHitter, TeamName: "Thunder Storm", CreditCost: 24, Bio: "Rising star with explosive jumping ability and powerful spikes.", Stats: player.Stats{Matches: 95, Sets: 248, KillsPerSet: 5.1, DigsPerSet: 1.8, BlocksPerSet: 1.0, AcesPerSet: 1.3}},
	{Name: "Morgan Williams", JerseyNumber: 15, Position: player.PositionMiddleBlocker, TeamName: "Lightning Bolts", CreditCost: 16, Bio: "Veteran player known for consistent performance under pressure.", Stats: player.Stats{Matches: 187, Sets: 476, KillsPerSet: 2.9, DigsPerSet: 1.6, BlocksPerSet: 2.3, AcesPerSet: 0.5}},
	{Name: "Casey Brown", JerseyNumber: 9, Position: player.PositionLibero, TeamName: "Sky Hawks", CreditCost: 13, Bio: "Defensive specialist with incredible agility and game-reading ability.", Stats: player.Stats{Matches: 156, Sets: 412, KillsPerSet: 0.2, DigsPerSet: 3.9, BlocksPerSet: 0.1, AcesPerSet: 0.7}},
	{Name: "Riley Jones", JerseyNumber: 21, Position: player.PositionDefensiveSpecialist, TeamName: "Ocean Warriors", CreditCost: 11, Bio: "Known for lightning-fast reflexes and pinpoint serving accuracy.", Stats: player.Stats{Matches: 103, Sets: 271, KillsPerSet: 0.8, DigsPerSet: 3.4, BlocksPerSet: 0.2, AcesPerSet: 1.2}},
	{Name: "Avery Garcia", JerseyNumber: 4, Position: player.PositionSetter, TeamName: "Wave Riders", CreditCost: 14, Bio: "Brings years of international experience and clutch performance.", Stats: player.Stats{Matches: 171, Sets: 438, KillsPerSet: 1.8, DigsPerSet: 2.6, BlocksPerSet: 0.5, AcesPerSet: 0.8}},
	{Name: "Quinn Miller", JerseyNumber: 18, Position: player.PositionOutsideHitter, TeamName: "Phoenix Fire", CreditCost: 25, Bio: "Dynamic all-around player with exceptional versatility.", Stats: player.Stats{Matches: 199, Sets: 492, KillsPerSet: 5.4, DigsPerSet: 2.7, BlocksPerSet: 0.9, AcesPerSet: 1.4}},
	{Name: "Blake Davis", JerseyNumber: 6, Position: player.PositionOppositeHitter, TeamName: "Sky Hawks", CreditCost: 19, Bio: "A powerful attacker with exceptional court vision and leadership skills.", Stats: player.Stats{Matches: 121, Sets: 317, KillsPerSet: 4.5, DigsPerSet: 1.9, BlocksPerSet: 1.1, AcesPerSet: 0.9}},
	{Name: "Drew Rodriguez", JerseyNumber: 33, Position: player.PositionMiddleBlocker, TeamName: "Thunder Storm", CreditCost: 12, Bio: "Technical expert with precise ball control and strategic thinking.", Stats: player.Stats{Matches: 88, Sets: 224, KillsPerSet: 2.6, DigsPerSet: 1.5, BlocksPerSet: 2.1, AcesPerSet: 0.4}},
	{Name: "Cameron Martinez", JerseyNumber: 11, Position: player.PositionLibero, TeamName: "Lightning Bolts", CreditCost: 9, Bio: "Defensive specialist with incredible agility and game-reading ability.", Stats: player.Stats{Matches: 134, Sets: 356, KillsPerSet: 0.3, DigsPerSet: 3.6, BlocksPerSet: 0.1, AcesPerSet: 0.6}},
	{Name: "Sage Lee", JerseyNumber: 27, Position: player.PositionDefensiveSpecialist, TeamName: "Phoenix Fire", CreditCost: 8, Bio: "Known for lightning-fast reflexes and pinpoint serving accuracy.", Stats: player.Stats{Matches: 76, Sets: 198, KillsPerSet: 0.7, DigsPerSet: 3.1, BlocksPerSet: 0.2, AcesPerSet: 1.0}},
	{Name: "River Kim", JerseyNumber: 2, Position: player.PositionSetter, TeamName: "Ocean Warriors", CreditCost: 20, Bio: "Brings years of international experience and clutch performance.", Stats: player.Stats{Matches: 192, Sets: 487, KillsPerSet: 2.3, DigsPerSet: 2.8, BlocksPerSet: 0.7, AcesPerSet: 1.1}},
	{Name: "Sky Park", JerseyNumber: 14, Position: player.PositionOutsideHitter, TeamName: "Thunder Storm", CreditCost: 17, Bio: "Rising star with explosive jumping ability and powerful spikes.", Stats: player.Stats{Matches: 67, Sets: 176, KillsPerSet: 4.2, DigsPerSet: 2.0, BlocksPerSet: 0.7, AcesPerSet: 0.8}},
	{Name: "Phoenix Patel", JerseyNumber: 8, Position: player.PositionOppositeHitter, TeamName: "Lightning Bolts", CreditCost: 21, Bio: "Dynamic all-around player with exceptional versatility.", Stats: player.Stats{Matches: 145, Sets: 378, KillsPerSet: 4.9, DigsPerSet: 2.1, BlocksPerSet: 1.2, AcesPerSet: 1.0}},
	{Name: "Dakota Singh", JerseyNumber: 23, Position: player.PositionMiddleBlocker, TeamName: "Sky Hawks", CreditCost: 18, Bio: "Veteran player known for consistent performance under pressure.", Stats: player.Stats{Matches: 176, Sets: 449, KillsPerSet: 3.1, DigsPerSet: 1.7, BlocksPerSet: 2.5, AcesPerSet: 0.6}},
	{Name: "Kai Wang", JerseyNumber: 5, Position: player.PositionLibero, TeamName: "Wave Riders", CreditCost: 15, Bio: "Defensive specialist with incredible agility and game-reading ability.", Stats: player.Stats{Matches: 183, Sets: 468, KillsPerSet: 0.2, DigsPerSet: 4.0, BlocksPerSet: 0.1, AcesPerSet: 0.9}},
	{Name: "Rowan Liu", JerseyNumber: 31, Position: player.PositionDefensiveSpecialist, TeamName: "Thunder Storm", CreditCost: 14, Bio: "Brings years of international experience and clutch performance.", Stats: player.Stats{Matches: 158, Sets: 402, KillsPerSet: 0.9, DigsPerSet: 3.7, BlocksPerSet: 0.3, AcesPerSet: 1.3}},
	{Name: "Hayden Nguyen", JerseyNumber: 10, Position: player.PositionSetter, TeamName: "Lightning Bolts", CreditCost: 12, Bio: "Technical expert with precise ball control and strategic thinking.", Stats: player.Stats{Matches: 59, Sets: 153, KillsPerSet: 1.6, DigsPerSet: 2.3, BlocksPerSet: 0.4, AcesPerSet: 0.7}},
	{Name: "Parker Anderson", JerseyNumber: 19, Position: player.PositionOutsideHitter, TeamName: "Ocean Warriors", CreditCost: 20, Bio: "A powerful attacker with exceptional court vision and leadership skills.", Stats: player.Stats{Matches: 137, Sets: 359, KillsPerSet: 4.6, DigsPerSet: 2.4, BlocksPerSet: 0.8, AcesPerSet: 1.2}},
	{Name: "Emerson Taylor", JerseyNumber: 16, Position: player.PositionOppositeHitter, TeamName: "Phoenix Fire", CreditCost: 15, Bio: "Rising star with explosive jumping ability and powerful spikes.", Stats: player.Stats{Matches: 52, Sets: 134, KillsPerSet: 4.0, DigsPerSet: 1.6, BlocksPerSet: 0.9, AcesPerSet: 0.8}},
	{Name: "Finley Thomas", JerseyNumber: 24, Position: player.PositionMiddleBlocker, TeamName: "Wave Riders", CreditCost: 14, Bio: "Veteran player known for consistent performance under pressure.", Stats: player.Stats{Matches: 164, Sets: 421, KillsPerSet: 2.8, DigsPerSet: 1.5, BlocksPerSet: 2.2, AcesPerSet: 0.5}},
	{Name: "Logan Moore", JerseyNumber: 1, Position: player.PositionLibero, TeamName: "Thunder Storm", CreditCost: 11, Bio: "Known for lightning-fast reflexes and pinpoint serving accuracy.", Stats: player.Stats{Matches: 119, Sets: 308, KillsPerSet: 0.3, DigsPerSet: 3.5, BlocksPerSet: 0.1, AcesPerSet: 0.8}},
	{Name: "Peyton Jackson", JerseyNumber: 29, Position: player.PositionDefensiveSpecialist, TeamName: "Sky Hawks", CreditCost: 7, Bio: "Defensive specialist with incredible agility and game-reading ability.", Stats: player.Stats{Matches: 63, Sets: 162, KillsPerSet: 0.6, DigsPerSet: 3.0, BlocksPerSet: 0.2, AcesPerSet: 0.9}},
	{Name: "Reese Martin", JerseyNumber: 13, Position: player.PositionSetter, TeamName: "Sky Hawks", CreditCost: 16, Bio: "Dynamic all-around player with exceptional versatility.", Stats: player.Stats{Matches: 149, Sets: 384, KillsPerSet: 2.0, DigsPerSet: 2.5, BlocksPerSet: 0.6, AcesPerSet: 1.0}},
	{Name: "Ryan Thompson", JerseyNumber: 22, Position: player.PositionOutsideHitter, TeamName: "Lightning Bolts", CreditCost: 15, Bio: "Brings years of international experience and clutch performance.", Stats: player.Stats{Matches: 71, Sets: 187, KillsPerSet: 4.1, DigsPerSet: 2.1, BlocksPerSet: 0.7, AcesPerSet: 0.9}},
	{Name: "Sawyer White", JerseyNumber: 17, Position: player.PositionOppositeHitter, TeamName: "Wave Riders", CreditCost: 23, Bio: "A powerful attacker with exceptional court vision and leadership skills.", Stats: player.Stats{Matches: 181, Sets: 463, KillsPerSet: 5.2, DigsPerSet: 2.0, BlocksPerSet: 1.1, AcesPerSet: 1.4}},
	{Name: "Spencer Harris", JerseyNumber: 35, Position: player.PositionMiddleBlocker, TeamName: "Ocean Warriors", CreditCost: 10, Bio: "Technical expert with precise ball control and strategic thinking.", Stats: player.Stats{Matches: 56, Sets: 141, KillsPerSet: 2.4, DigsPerSet: 1.4, BlocksPerSet: 1.9, AcesPerSet: 0.4}},
	{Name: "Tatum Clark", JerseyNumber: 20, Position: player.PositionLibero, TeamName: "Phoenix Fire", CreditCost: 8, Bio: "Known for lightning-fast reflexes and pinpoint serving accuracy.", Stats: player.Stats{Matches: 84, Sets: 219, KillsPerSet: 0.2, DigsPerSet: 3.2, BlocksPerSet: 0.1, AcesPerSet: 0.6}},
	{Name: "Wren Lewis", JerseyNumber: 26, Position: player.PositionDefensiveSpecialist, TeamName: "Lightning Bolts", CreditCost: 12, Bio: "Veteran player known for consistent performance under pressure.", Stats: player.Stats{Matches: 128, Sets: 334, KillsPerSet: 0.8, DigsPerSet: 3.3, BlocksPerSet: 0.2, AcesPerSet: 1.1}},
	{Name: "Morgan Lee", JerseyNumber: 28, Position: player.PositionSetter, TeamName: "Thunder Storm", CreditCost: 19, Bio: "Brings years of international experience and clutch performance.", Stats: player.Stats{Matches: 173, Sets: 441, KillsPerSet: 2.2, DigsPerSet: 2.7, BlocksPerSet: 0.6, AcesPerSet: 1.2}},
	{Name: "Casey Kim", JerseyNumber: 30, Position: player.PositionOutsideHitter, TeamName: "Sky Hawks", CreditCost: 18, Bio: "Rising star with explosive jumping ability and powerful spikes.", Stats: player.Stats{Matches: 92, Sets: 241, KillsPerSet: 4.4, DigsPerSet: 2.3, BlocksPerSet: 0.8, AcesPerSet: 1.0}},
	{Name: "Jordan Garcia", JerseyNumber: 25, Position: player.PositionOppositeHitter, TeamName: "Ocean Warriors", CreditCost: 17, Bio: "Dynamic all-around player with exceptional versatility.", Stats: player.Stats{Matches: 109, Sets: 286, KillsPerSet: 4.3, DigsPerSet: 1.8, BlocksPerSet: 1.0, AcesPerSet: 0.9}},
	{Name: "Avery Chen", JerseyNumber: 32, Position: player.PositionMiddleBlocker, TeamName: "Phoenix Fire", CreditCost: 17, Bio: "A powerful attacker with exceptional court vision and leadership skills.", Stats: player.Stats{Matches: 151, Sets: 393, KillsPerSet: 3.0, DigsPerSet: 1.6, BlocksPerSet: 2.4, AcesPerSet: 0.5}},
	{Name: "Quinn Davis", JerseyNumber: 34, Position: player.PositionLibero, TeamName: "Ocean Warriors", CreditCost: 10, Bio: "Defensive specialist with incredible agility and game-reading ability.", Stats: player.Stats{Matches: 97, Sets: 254, KillsPerSet: 0.3, DigsPerSet: 3.8, BlocksPerSet: 0.1, AcesPerSet: 0.7}},
}
