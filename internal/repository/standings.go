package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/rocketscienceinc/santorini-backend/internal/apperror"
	"github.com/rocketscienceinc/santorini-backend/internal/entity"
)

type Tournament struct {
	ID         string `gorm:"primaryKey;size:64"`
	FinishedAt time.Time

	Rows []StandingRow `gorm:"foreignKey:TournamentID;constraint:OnDelete:CASCADE"`
}

// StandingRow - one line of the archived table. Disqualified players have no position.
type StandingRow struct {
	ID           uint   `gorm:"primaryKey"`
	TournamentID string `gorm:"not null;index;size:64"`
	Position     int
	PlayerID     string `gorm:"not null;size:64"`
	Wins         int
	Disqualified bool
}

// StandingsModels - tables the standings repository needs migrated.
func StandingsModels() []any {
	return []any{&Tournament{}, &StandingRow{}}
}

type StandingsRepository interface {
	Save(ctx context.Context, standings entity.Standings) error
	Get(ctx context.Context, tournamentID string) (entity.Standings, error)
}

type standingsRepository struct {
	conn *gorm.DB
}

func NewStandingsRepository(conn *gorm.DB) StandingsRepository {
	return &standingsRepository{
		conn: conn,
	}
}

// Save - replaces whatever was archived for the tournament before.
func (that *standingsRepository) Save(ctx context.Context, standings entity.Standings) error {
	rows := make([]StandingRow, 0, len(standings.Results)+len(standings.Disqualified))
	for i, result := range standings.Results {
		rows = append(rows, StandingRow{
			TournamentID: standings.TournamentID,
			Position:     i + 1,
			PlayerID:     result.PlayerID.String(),
			Wins:         result.Wins,
		})
	}

	for _, id := range standings.Disqualified {
		rows = append(rows, StandingRow{
			TournamentID: standings.TournamentID,
			PlayerID:     id.String(),
			Disqualified: true,
		})
	}

	err := that.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tournament_id = ?", standings.TournamentID).Delete(&StandingRow{}).Error; err != nil {
			return fmt.Errorf("can't clear standings: %w", err)
		}

		tournament := Tournament{ID: standings.TournamentID, FinishedAt: time.Now().UTC()}
		if err := tx.Save(&tournament).Error; err != nil {
			return fmt.Errorf("can't save tournament: %w", err)
		}

		if len(rows) == 0 {
			return nil
		}

		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("can't save standings: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to archive standings of %s: %w", standings.TournamentID, err)
	}

	return nil
}

func (that *standingsRepository) Get(ctx context.Context, tournamentID string) (entity.Standings, error) {
	var tournament Tournament

	err := that.conn.WithContext(ctx).
		Preload("Rows", func(db *gorm.DB) *gorm.DB {
			return db.Order("disqualified, position, id")
		}).
		First(&tournament, "id = ?", tournamentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.Standings{}, apperror.ErrNotFound
	}

	if err != nil {
		return entity.Standings{}, fmt.Errorf("can't find standings: %w", err)
	}

	standings := entity.Standings{
		TournamentID: tournament.ID,
		Results:      []entity.PlayerResult{},
		Disqualified: []entity.PlayerID{},
	}

	for _, row := range tournament.Rows {
		if row.Disqualified {
			standings.Disqualified = append(standings.Disqualified, entity.PlayerID(row.PlayerID))
			continue
		}

		standings.Results = append(standings.Results, entity.PlayerResult{
			PlayerID: entity.PlayerID(row.PlayerID),
			Wins:     row.Wins,
		})
	}

	return standings, nil
}
