package seed

import (
	"cricket-predictor/internal/domain"
)

// Default is the IPL reference dataset the service ships with.
func Default() Dataset {
	return Dataset{
		Teams: []domain.Team{
			{Name: "Mumbai Indians", ShortName: "MI", HomeGround: "Wankhede Stadium", Captain: "Rohit Sharma", Coach: "Mark Boucher", FoundedYear: 2008, Titles: 5, MatchesPlayed: 220, Wins: 140, Losses: 80},
			{Name: "Chennai Super Kings", ShortName: "CSK", HomeGround: "MA Chidambaram Stadium", Captain: "MS Dhoni", Coach: "Stephen Fleming", FoundedYear: 2008, Titles: 4, MatchesPlayed: 210, Wins: 130, Losses: 80},
			{Name: "Royal Challengers Bangalore", ShortName: "RCB", HomeGround: "M. Chinnaswamy Stadium", Captain: "Virat Kohli", Coach: "Mike Hesson", FoundedYear: 2008, Titles: 0, MatchesPlayed: 230, Wins: 110, Losses: 120},
			{Name: "Kolkata Knight Riders", ShortName: "KKR", HomeGround: "Eden Gardens", Captain: "Shreyas Iyer", Coach: "Brendon McCullum", FoundedYear: 2008, Titles: 2, MatchesPlayed: 200, Wins: 100, Losses: 100},
			{Name: "Delhi Capitals", ShortName: "DC", HomeGround: "Arun Jaitley Stadium", Captain: "Rishabh Pant", Coach: "Ricky Ponting", FoundedYear: 2008, Titles: 0, MatchesPlayed: 180, Wins: 85, Losses: 95},
			{Name: "Punjab Kings", ShortName: "PBKS", HomeGround: "PCA Stadium", Captain: "Shikhar Dhawan", Coach: "Anil Kumble", FoundedYear: 2008, Titles: 0, MatchesPlayed: 190, Wins: 90, Losses: 100},
			{Name: "Rajasthan Royals", ShortName: "RR", HomeGround: "Sawai Mansingh Stadium", Captain: "Sanju Samson", Coach: "Kumar Sangakkara", FoundedYear: 2008, Titles: 1, MatchesPlayed: 170, Wins: 80, Losses: 90},
			{Name: "Sunrisers Hyderabad", ShortName: "SRH", HomeGround: "Rajiv Gandhi Stadium", Captain: "Aiden Markram", Coach: "Brian Lara", FoundedYear: 2013, Titles: 1, MatchesPlayed: 160, Wins: 75, Losses: 85},
		},
		Players: []PlayerSeed{
			{TeamName: "Mumbai Indians", Player: domain.Player{Name: "Rohit Sharma", Role: domain.RoleBatsman, BattingStyle: "Right-hand bat", BowlingStyle: "Right-arm off-break", Nationality: "India", Age: 36, MatchesPlayed: 243, RunsScored: 6211, BattingAverage: 30.35, StrikeRate: 130.61, Centuries: 1, Fifties: 40, HighestScore: 109, PriceCrores: 16.0}},
			{TeamName: "Mumbai Indians", Player: domain.Player{Name: "Jasprit Bumrah", Role: domain.RoleBowler, BattingStyle: "Right-hand bat", BowlingStyle: "Right-arm fast", Nationality: "India", Age: 30, MatchesPlayed: 120, RunsScored: 400, WicketsTaken: 145, BattingAverage: 15.5, BowlingAverage: 24.54, StrikeRate: 120.5, EconomyRate: 7.39, HighestScore: 28, BestBowling: "4/14", PriceCrores: 12.0}},
			{TeamName: "Mumbai Indians", Player: domain.Player{Name: "Hardik Pandya", Role: domain.RoleAllRounder, BattingStyle: "Right-hand bat", BowlingStyle: "Right-arm fast-medium", Nationality: "India", Age: 30, MatchesPlayed: 104, RunsScored: 2915, WicketsTaken: 42, BattingAverage: 28.89, BowlingAverage: 28.67, StrikeRate: 143.89, EconomyRate: 8.24, Fifties: 16, HighestScore: 91, BestBowling: "3/17", PriceCrores: 15.0}},
			{TeamName: "Mumbai Indians", Player: domain.Player{Name: "Ishan Kishan", Role: domain.RoleWicketKeeper, BattingStyle: "Left-hand bat", Nationality: "India", Age: 25, MatchesPlayed: 105, RunsScored: 2644, BattingAverage: 29.93, StrikeRate: 135.04, Fifties: 15, HighestScore: 99, PriceCrores: 15.25}},
			{TeamName: "Mumbai Indians", Player: domain.Player{Name: "Suryakumar Yadav", Role: domain.RoleBatsman, BattingStyle: "Right-hand bat", BowlingStyle: "Right-arm off-break", Nationality: "India", Age: 33, MatchesPlayed: 115, RunsScored: 3389, BattingAverage: 31.12, StrikeRate: 145.73, Centuries: 1, Fifties: 22, HighestScore: 103, PriceCrores: 8.0}},

			{TeamName: "Chennai Super Kings", Player: domain.Player{Name: "MS Dhoni", Role: domain.RoleWicketKeeper, BattingStyle: "Right-hand bat", BowlingStyle: "Right-arm medium", Nationality: "India", Age: 42, MatchesPlayed: 264, RunsScored: 5082, BattingAverage: 38.09, StrikeRate: 135.92, Fifties: 24, HighestScore: 84, PriceCrores: 12.0}},
			{TeamName: "Chennai Super Kings", Player: domain.Player{Name: "Ravindra Jadeja", Role: domain.RoleAllRounder, BattingStyle: "Left-hand bat", BowlingStyle: "Slow left-arm orthodox", Nationality: "India", Age: 35, MatchesPlayed: 240, RunsScored: 2756, WicketsTaken: 157, BattingAverage: 29.95, BowlingAverage: 29.85, StrikeRate: 127.3, EconomyRate: 7.68, Fifties: 13, HighestScore: 62, BestBowling: "5/16", PriceCrores: 16.0}},
			{TeamName: "Chennai Super Kings", Player: domain.Player{Name: "Ruturaj Gaikwad", Role: domain.RoleBatsman, BattingStyle: "Right-hand bat", BowlingStyle: "Right-arm off-break", Nationality: "India", Age: 27, MatchesPlayed: 68, RunsScored: 2380, BattingAverage: 32.43, StrikeRate: 129.18, Centuries: 1, Fifties: 15, HighestScore: 101, PriceCrores: 6.0}},
			{TeamName: "Chennai Super Kings", Player: domain.Player{Name: "Deepak Chahar", Role: domain.RoleBowler, BattingStyle: "Right-hand bat", BowlingStyle: "Right-arm fast-medium", Nationality: "India", Age: 31, MatchesPlayed: 76, RunsScored: 154, WicketsTaken: 59, BattingAverage: 12.83, BowlingAverage: 27.81, StrikeRate: 116.54, EconomyRate: 7.28, HighestScore: 39, BestBowling: "6/7", PriceCrores: 14.0}},
			{TeamName: "Chennai Super Kings", Player: domain.Player{Name: "Moeen Ali", Role: domain.RoleAllRounder, BattingStyle: "Left-hand bat", BowlingStyle: "Right-arm off-break", Nationality: "England", Age: 36, MatchesPlayed: 92, RunsScored: 1162, WicketsTaken: 25, BattingAverage: 23.24, BowlingAverage: 32.12, StrikeRate: 157.59, EconomyRate: 7.65, Fifties: 5, HighestScore: 93, BestBowling: "3/7", PriceCrores: 7.0}},

			{TeamName: "Royal Challengers Bangalore", Player: domain.Player{Name: "Virat Kohli", Role: domain.RoleBatsman, BattingStyle: "Right-hand bat", BowlingStyle: "Right-arm medium", Nationality: "India", Age: 35, MatchesPlayed: 237, RunsScored: 7263, WicketsTaken: 4, BattingAverage: 37.25, BowlingAverage: 52.5, StrikeRate: 131.97, EconomyRate: 7.39, Centuries: 5, Fifties: 50, HighestScore: 113, BestBowling: "4/13", PriceCrores: 17.0}},
			{TeamName: "Royal Challengers Bangalore", Player: domain.Player{Name: "Glenn Maxwell", Role: domain.RoleAllRounder, BattingStyle: "Right-hand bat", BowlingStyle: "Right-arm off-break", Nationality: "Australia", Age: 35, MatchesPlayed: 120, RunsScored: 2771, WicketsTaken: 32, BattingAverage: 26.44, BowlingAverage: 28.84, StrikeRate: 154.67, EconomyRate: 7.45, Fifties: 16, HighestScore: 95, BestBowling: "4/3", PriceCrores: 11.0}},
			{TeamName: "Royal Challengers Bangalore", Player: domain.Player{Name: "Mohammed Siraj", Role: domain.RoleBowler, BattingStyle: "Right-hand bat", BowlingStyle: "Right-arm fast", Nationality: "India", Age: 30, MatchesPlayed: 93, RunsScored: 89, WicketsTaken: 93, BattingAverage: 8.9, BowlingAverage: 26.77, StrikeRate: 120.43, EconomyRate: 8.32, HighestScore: 22, BestBowling: "4/21", PriceCrores: 7.0}},
			{TeamName: "Royal Challengers Bangalore", Player: domain.Player{Name: "Faf du Plessis", Role: domain.RoleBatsman, BattingStyle: "Right-hand bat", BowlingStyle: "Right-arm medium", Nationality: "South Africa", Age: 39, MatchesPlayed: 100, RunsScored: 2935, BattingAverage: 34.94, StrikeRate: 131.09, Centuries: 2, Fifties: 22, HighestScore: 120, PriceCrores: 7.0}},

			{TeamName: "Kolkata Knight Riders", Player: domain.Player{Name: "Shreyas Iyer", Role: domain.RoleBatsman, BattingStyle: "Right-hand bat", BowlingStyle: "Right-arm leg-break", Nationality: "India", Age: 29, MatchesPlayed: 115, RunsScored: 3127, BattingAverage: 31.27, StrikeRate: 123.89, Centuries: 2, Fifties: 23, HighestScore: 96, PriceCrores: 12.25}},
			{TeamName: "Kolkata Knight Riders", Player: domain.Player{Name: "Andre Russell", Role: domain.RoleAllRounder, BattingStyle: "Right-hand bat", BowlingStyle: "Right-arm fast", Nationality: "West Indies", Age: 36, MatchesPlayed: 140, RunsScored: 2556, WicketsTaken: 73, BattingAverage: 29.49, BowlingAverage: 24.89, StrikeRate: 179.33, EconomyRate: 8.76, Fifties: 11, HighestScore: 88, BestBowling: "4/20", PriceCrores: 12.0}},
			{TeamName: "Kolkata Knight Riders", Player: domain.Player{Name: "Sunil Narine", Role: domain.RoleAllRounder, BattingStyle: "Left-hand bat", BowlingStyle: "Right-arm off-break", Nationality: "West Indies", Age: 35, MatchesPlayed: 162, RunsScored: 1025, WicketsTaken: 180, BattingAverage: 15.54, BowlingAverage: 24.63, StrikeRate: 168.3, EconomyRate: 6.67, Fifties: 4, HighestScore: 75, BestBowling: "4/21", PriceCrores: 6.0}},
		},
	}
}
