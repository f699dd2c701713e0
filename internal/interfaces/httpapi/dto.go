package httpapi

import (
	"github.com/gpbuil/fifa2026-new/internal/domain/match"
	"github.com/gpbuil/fifa2026-new/internal/domain/prediction"
	"github.com/gpbuil/fifa2026-new/internal/domain/scoring"
	"github.com/gpbuil/fifa2026-new/internal/domain/standings"
	"github.com/gpbuil/fifa2026-new/internal/domain/team"
	"github.com/gpbuil/fifa2026-new/internal/usecase"
)

type teamDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Flag  string `json:"flag,omitempty"`
	ISO2  string `json:"iso2,omitempty"`
	Group string `json:"group"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:    t.ID,
		Name:  t.Name,
		Flag:  t.Flag,
		ISO2:  t.ISO2,
		Group: t.Group,
	}
}

type standingDTO struct {
	Position        int    `json:"position"`
	TeamID          string `json:"team_id"`
	Points          int    `json:"points"`
	Played          int    `json:"played"`
	Won             int    `json:"won"`
	Drawn           int    `json:"drawn"`
	Lost            int    `json:"lost"`
	GoalsFor        int    `json:"goals_for"`
	GoalsAgainst    int    `json:"goals_against"`
	GoalsDifference int    `json:"goals_difference"`
}

func standingsToDTO(rows []standings.GroupStanding) []standingDTO {
	out := make([]standingDTO, 0, len(rows))
	for i, row := range rows {
		out = append(out, standingDTO{
			Position:        i + 1,
			TeamID:          row.TeamID,
			Points:          row.Points,
			Played:          row.Played,
			Won:             row.Won,
			Drawn:           row.Drawn,
			Lost:            row.Lost,
			GoalsFor:        row.GoalsFor,
			GoalsAgainst:    row.GoalsAgainst,
			GoalsDifference: row.GoalsDifference,
		})
	}
	return out
}

type advancementDTO struct {
	Winners    []teamDTO         `json:"winners"`
	RunnersUp  []teamDTO         `json:"runners_up"`
	BestThirds []teamDTO         `json:"best_thirds"`
	Placements map[string]string `json:"placements"`
}

func advancementToDTO(adv standings.Advancement) advancementDTO {
	toDTOs := func(teams []team.Team) []teamDTO {
		out := make([]teamDTO, 0, len(teams))
		for _, t := range teams {
			out = append(out, teamToDTO(t))
		}
		return out
	}

	return advancementDTO{
		Winners:    toDTOs(adv.Winners),
		RunnersUp:  toDTOs(adv.RunnersUp),
		BestThirds: toDTOs(adv.BestThirds),
		Placements: adv.PlacementIndex,
	}
}

type bracketSlotDTO struct {
	Label    string   `json:"label"`
	Resolved bool     `json:"resolved"`
	Team     *teamDTO `json:"team,omitempty"`
}

type bracketMatchDTO struct {
	ID         string         `json:"id"`
	Phase      string         `json:"phase"`
	PhaseLabel string         `json:"phase_label"`
	SlotA      bracketSlotDTO `json:"slot_a"`
	SlotB      bracketSlotDTO `json:"slot_b"`
	ScoreA     *int           `json:"score_a"`
	ScoreB     *int           `json:"score_b"`
}

func bracketToDTO(matches []usecase.BracketMatch) []bracketMatchDTO {
	out := make([]bracketMatchDTO, 0, len(matches))
	for _, m := range matches {
		dto := bracketMatchDTO{
			ID:         m.ID,
			Phase:      string(m.Phase),
			PhaseLabel: m.Phase.Label(),
			SlotA:      bracketSlotDTO{Label: m.SlotA.Label, Resolved: m.SlotA.Resolved()},
			SlotB:      bracketSlotDTO{Label: m.SlotB.Label, Resolved: m.SlotB.Resolved()},
			ScoreA:     m.ScoreA,
			ScoreB:     m.ScoreB,
		}
		if m.SlotA.Resolved() {
			t := teamToDTO(*m.SlotA.Team)
			dto.SlotA.Team = &t
		}
		if m.SlotB.Resolved() {
			t := teamToDTO(*m.SlotB.Team)
			dto.SlotB.Team = &t
		}
		out = append(out, dto)
	}
	return out
}

type scoreEntryDTO struct {
	ScoreA *int `json:"score_a"`
	ScoreB *int `json:"score_b"`
}

func scoreMapToDTO(scores prediction.ScoreMap) map[string]scoreEntryDTO {
	out := make(map[string]scoreEntryDTO, len(scores))
	for matchID, entry := range scores {
		out[matchID] = scoreEntryDTO{ScoreA: entry.A, ScoreB: entry.B}
	}
	return out
}

type matchScoreDTO struct {
	MatchID          string         `json:"match_id"`
	Phase            string         `json:"phase"`
	PhaseLabel       string         `json:"phase_label"`
	Predicted        *scoreEntryDTO `json:"predicted,omitempty"`
	Official         scoreEntryDTO  `json:"official"`
	Rule             string         `json:"rule"`
	ResultPoints     int            `json:"result_points"`
	IndicationPoints int            `json:"indication_points"`
	TotalPoints      int            `json:"total_points"`
}

type scoreSummaryDTO struct {
	UserID   string          `json:"user_id"`
	Name     string          `json:"name"`
	Total    int             `json:"total"`
	ByPhase  map[string]int  `json:"by_phase"`
	ByRule   map[string]int  `json:"by_rule"`
	PerMatch []matchScoreDTO `json:"per_match"`
}

func summaryToDTO(summary scoring.UserScoreSummary) scoreSummaryDTO {
	perMatch := make([]matchScoreDTO, 0, len(summary.PerMatch))
	for _, detail := range summary.PerMatch {
		row := matchScoreDTO{
			MatchID:          detail.MatchID,
			Phase:            string(detail.Phase),
			PhaseLabel:       detail.PhaseLabel,
			Official:         scoreEntryDTO{ScoreA: detail.Official.A, ScoreB: detail.Official.B},
			Rule:             detail.RuleApplied,
			ResultPoints:     detail.ResultPoints,
			IndicationPoints: detail.IndicationPoints,
			TotalPoints:      detail.TotalPoints,
		}
		if detail.Predicted != nil {
			row.Predicted = &scoreEntryDTO{ScoreA: detail.Predicted.A, ScoreB: detail.Predicted.B}
		}
		perMatch = append(perMatch, row)
	}

	return scoreSummaryDTO{
		UserID:   summary.UserID,
		Name:     summary.Name,
		Total:    summary.Total,
		ByPhase:  phaseTotalsToDTO(summary.ByPhase),
		ByRule:   summary.ByRule,
		PerMatch: perMatch,
	}
}

func phaseTotalsToDTO(totals map[match.Phase]int) map[string]int {
	out := make(map[string]int, len(totals))
	for phase, points := range totals {
		out[string(phase)] = points
	}
	return out
}

type rankingEntryDTO struct {
	Position int            `json:"position"`
	UserID   string         `json:"user_id"`
	Name     string         `json:"name"`
	Total    int            `json:"total"`
	ByPhase  map[string]int `json:"by_phase,omitempty"`
}

func rankingToDTO(entries []usecase.RankingEntry) []rankingEntryDTO {
	out := make([]rankingEntryDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, rankingEntryDTO{
			Position: entry.Position,
			UserID:   entry.UserID,
			Name:     entry.Name,
			Total:    entry.Total,
			ByPhase:  entry.ByPhase,
		})
	}
	return out
}
