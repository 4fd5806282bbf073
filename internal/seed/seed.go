package seed

import (
	"context"
	"fmt"

	"cricket-predictor/internal/domain"
	"cricket-predictor/internal/repository"

	"github.com/rs/zerolog"
)

// Dataset is a static reference dataset applied once at startup. Players
// reference their team by name so the dataset stays independent of row ids.
type Dataset struct {
	Teams   []domain.Team
	Players []PlayerSeed
}

type PlayerSeed struct {
	TeamName string
	Player   domain.Player
}

// Apply inserts every team and player that is not already present. Teams
// key on their unique name, players on (name, team). Running it twice
// leaves the store unchanged.
func Apply(ctx context.Context, ds Dataset, teams *repository.TeamRepository, players *repository.PlayerRepository, logger zerolog.Logger) error {
	for i := range ds.Teams {
		if err := teams.InsertIfAbsent(ctx, &ds.Teams[i]); err != nil {
			return fmt.Errorf("seeding teams: %w", err)
		}
	}

	for _, ps := range ds.Players {
		team, err := teams.GetByName(ctx, ps.TeamName)
		if err != nil {
			return fmt.Errorf("seeding players: team %q: %w", ps.TeamName, err)
		}

		exists, err := players.ExistsByNameAndTeam(ctx, ps.Player.Name, &team.ID)
		if err != nil {
			return fmt.Errorf("seeding players: %w", err)
		}
		if exists {
			continue
		}

		p := ps.Player
		p.TeamID = &team.ID
		if _, err := players.Insert(ctx, &p); err != nil {
			return fmt.Errorf("seeding players: %w", err)
		}
	}

	logger.Info().
		Int("teams", len(ds.Teams)).
		Int("players", len(ds.Players)).
		Msg("reference data seeded")
	return nil
}
