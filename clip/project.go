package clip

import (
	"fmt"
	"strings"
)

// Project renders a record as a single descriptive string for embedding.
// Absent fields are skipped. The field order is fixed: reordering changes
// the projected text for every clip and therefore invalidates every
// cached embedding.
func Project(rec Record) string {
	parts := make([]string, 0, 26)

	// game context
	if rec.GameId != 0 {
		parts = append(parts, fmt.Sprintf("Game %d", rec.GameId))
	}
	if rec.Opponent != "" {
		parts = append(parts, "vs "+rec.Opponent)
	}
	if rec.Quarter != 0 {
		parts = append(parts, fmt.Sprintf("Q%d", rec.Quarter))
	}
	if rec.Possession != 0 {
		parts = append(parts, fmt.Sprintf("Possession %d", rec.Possession))
	}

	// situation and formation
	if rec.Situation != "" {
		parts = append(parts, "Situation: "+rec.Situation)
	}
	if rec.Formation != "" {
		parts = append(parts, "Formation: "+rec.Formation)
	}
	if rec.PlayName != "" {
		parts = append(parts, "Play: "+rec.PlayName)
	}

	// actions
	trigger := rec.PlayTrigger
	if trigger == "" {
		trigger = rec.ActionTrigger
	}
	if trigger != "" {
		parts = append(parts, "Trigger: "+trigger)
	}
	if rec.ActionTypes != "" {
		parts = append(parts, "Actions: "+rec.ActionTypes)
	}
	if rec.ActionSequence != "" {
		parts = append(parts, "Sequence: "+rec.ActionSequence)
	}

	// defense
	if rec.ScoutCoverage != "" {
		parts = append(parts, "Scout Coverage: "+rec.ScoutCoverage)
	}
	if rec.Coverage != "" {
		parts = append(parts, "Coverage: "+rec.Coverage)
	}
	if rec.BallScreen != "" {
		parts = append(parts, "Ball Screen: "+rec.BallScreen)
	}
	if rec.OffBallScreen != "" {
		parts = append(parts, "Off Ball Screen: "+rec.OffBallScreen)
	}
	if rec.HelpRotation != "" {
		parts = append(parts, "Help: "+rec.HelpRotation)
	}
	if rec.Disruption != "" {
		parts = append(parts, "Disruption: "+rec.Disruption)
	}
	if rec.Breakdown != "" {
		parts = append(parts, "Breakdown: "+rec.Breakdown)
	}

	// result and outcome
	if rec.Result != "" {
		parts = append(parts, "Result: "+rec.Result)
	}
	if rec.Shooter != "" {
		parts = append(parts, "Shooter: "+rec.Shooter)
	}
	if rec.ShotLocation != "" {
		parts = append(parts, "Shot Location: "+rec.ShotLocation)
	}
	if rec.ShotResult != "" {
		parts = append(parts, "Shot Result: "+rec.ShotResult)
	}
	if rec.Points != 0 {
		parts = append(parts, fmt.Sprintf("%d points", rec.Points))
	}
	if rec.Rebound != "" {
		parts = append(parts, "Rebound: "+rec.Rebound)
	}
	if rec.Contest != "" {
		parts = append(parts, "Contest: "+rec.Contest)
	}
	if rec.PaintTouch != "" {
		parts = append(parts, "Paint Touch: "+rec.PaintTouch)
	}

	// notes
	if rec.Notes != "" {
		parts = append(parts, "Notes: "+rec.Notes)
	}

	return strings.Join(parts, " | ")
}
