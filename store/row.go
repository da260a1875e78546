package store

import (
	"database/sql"

	"github.com/ashton-hoops/Defense/clip"
)

// Columns is the canonical clips column order shared by the sql providers.
// ClipArgs and ScanClip follow this order exactly.
func Columns() []string {
	return []string{
		"id",
		"filename",
		"path",
		"source_video",
		"game_id",
		"canonical_game_id",
		"canonical_clip_id",
		"opponent",
		"opponent_slug",
		"location",
		"game_score",
		"quarter",
		"possession",
		"situation",
		"formation",
		"play_name",
		"scout_coverage",
		"play_trigger",
		"action_types",
		"action_sequence",
		"coverage",
		"ball_screen",
		"off_ball_screen",
		"help_rotation",
		"disruption",
		"breakdown",
		"result",
		"paint_touch",
		"shooter",
		"shot_location",
		"contest",
		"rebound",
		"points",
		"has_shot",
		"shot_x",
		"shot_y",
		"shot_result",
		"player_designation",
		"notes",
		"start_time",
		"end_time",
		"actions_json",
		"created_at",
		"updated_at",
	}
}

// ClipArgs flattens a record into query arguments in Columns order,
// mapping zero values to NULL.
func ClipArgs(rec clip.Record) []any {
	return []any{
		rec.Id,
		nullString(rec.Filename),
		nullString(rec.Path),
		nullString(rec.SourceVideo),
		nullInt(rec.GameId),
		nullString(rec.CanonicalGameId),
		nullString(rec.CanonicalClipId),
		nullString(rec.Opponent),
		nullString(rec.OpponentSlug),
		nullString(rec.Location),
		nullString(rec.GameScore),
		nullInt(rec.Quarter),
		nullInt(rec.Possession),
		nullString(rec.Situation),
		nullString(rec.Formation),
		nullString(rec.PlayName),
		nullString(rec.ScoutCoverage),
		nullString(rec.PlayTrigger),
		nullString(rec.ActionTypes),
		nullString(rec.ActionSequence),
		nullString(rec.Coverage),
		nullString(rec.BallScreen),
		nullString(rec.OffBallScreen),
		nullString(rec.HelpRotation),
		nullString(rec.Disruption),
		nullString(rec.Breakdown),
		nullString(rec.Result),
		nullString(rec.PaintTouch),
		nullString(rec.Shooter),
		nullString(rec.ShotLocation),
		nullString(rec.Contest),
		nullString(rec.Rebound),
		nullInt(rec.Points),
		nullString(rec.HasShot),
		nullString(rec.ShotX),
		nullString(rec.ShotY),
		nullString(rec.ShotResult),
		nullString(rec.PlayerDesignation),
		nullString(rec.Notes),
		nullString(rec.StartTime),
		nullString(rec.EndTime),
		nullString(rec.ActionsJson),
		nullString(rec.CreatedAt),
		nullString(rec.UpdatedAt),
	}
}

type Scanner interface {
	Scan(dest ...any) error
}

// ScanClip reads one row selected with Columns into a record.
func ScanClip(row Scanner) (clip.Record, error) {
	var (
		gameId, quarter, possession, points sql.NullInt64

		id, filename, path, sourceVideo, canonicalGameId, canonicalClipId,
		opponent, opponentSlug, location, gameScore, situation, formation,
		playName, scoutCoverage, playTrigger, actionTypes, actionSequence,
		coverage, ballScreen, offBallScreen, helpRotation, disruption,
		breakdown, result, paintTouch, shooter, shotLocation, contest,
		rebound, hasShot, shotX, shotY, shotResult, playerDesignation,
		notes, startTime, endTime, actionsJson, createdAt, updatedAt sql.NullString
	)

	if err := row.Scan(
		&id,
		&filename,
		&path,
		&sourceVideo,
		&gameId,
		&canonicalGameId,
		&canonicalClipId,
		&opponent,
		&opponentSlug,
		&location,
		&gameScore,
		&quarter,
		&possession,
		&situation,
		&formation,
		&playName,
		&scoutCoverage,
		&playTrigger,
		&actionTypes,
		&actionSequence,
		&coverage,
		&ballScreen,
		&offBallScreen,
		&helpRotation,
		&disruption,
		&breakdown,
		&result,
		&paintTouch,
		&shooter,
		&shotLocation,
		&contest,
		&rebound,
		&points,
		&hasShot,
		&shotX,
		&shotY,
		&shotResult,
		&playerDesignation,
		&notes,
		&startTime,
		&endTime,
		&actionsJson,
		&createdAt,
		&updatedAt,
	); err != nil {
		return clip.Record{}, err
	}

	return clip.Record{
		Id:                id.String,
		Filename:          filename.String,
		Path:              path.String,
		SourceVideo:       sourceVideo.String,
		GameId:            int(gameId.Int64),
		CanonicalGameId:   canonicalGameId.String,
		CanonicalClipId:   canonicalClipId.String,
		Opponent:          opponent.String,
		OpponentSlug:      opponentSlug.String,
		Location:          location.String,
		GameScore:         gameScore.String,
		Quarter:           int(quarter.Int64),
		Possession:        int(possession.Int64),
		Situation:         situation.String,
		Formation:         formation.String,
		PlayName:          playName.String,
		ScoutCoverage:     scoutCoverage.String,
		PlayTrigger:       playTrigger.String,
		ActionTypes:       actionTypes.String,
		ActionSequence:    actionSequence.String,
		Coverage:          coverage.String,
		BallScreen:        ballScreen.String,
		OffBallScreen:     offBallScreen.String,
		HelpRotation:      helpRotation.String,
		Disruption:        disruption.String,
		Breakdown:         breakdown.String,
		Result:            result.String,
		PaintTouch:        paintTouch.String,
		Shooter:           shooter.String,
		ShotLocation:      shotLocation.String,
		Contest:           contest.String,
		Rebound:           rebound.String,
		Points:            int(points.Int64),
		HasShot:           hasShot.String,
		ShotX:             shotX.String,
		ShotY:             shotY.String,
		ShotResult:        shotResult.String,
		PlayerDesignation: playerDesignation.String,
		Notes:             notes.String,
		StartTime:         startTime.String,
		EndTime:           endTime.String,
		ActionsJson:       actionsJson.String,
		CreatedAt:         createdAt.String,
		UpdatedAt:         updatedAt.String,
	}, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullInt(i int) any {
	if i == 0 {
		return nil
	}
	return int64(i)
}
