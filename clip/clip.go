package clip

// Record is one annotated play clip. Every scouting field is optional;
// the zero value means the field was never tagged.
type Record struct {
	Id                string `json:"id"`
	Filename          string `json:"filename,omitempty"`
	Path              string `json:"path,omitempty"`
	SourceVideo       string `json:"source_video,omitempty"`
	GameId            int    `json:"game_id,omitempty"`
	CanonicalGameId   string `json:"canonical_game_id,omitempty"`
	CanonicalClipId   string `json:"canonical_clip_id,omitempty"`
	Opponent          string `json:"opponent,omitempty"`
	OpponentSlug      string `json:"opponent_slug,omitempty"`
	Location          string `json:"location,omitempty"`
	GameScore         string `json:"game_score,omitempty"`
	Quarter           int    `json:"quarter,omitempty"`
	Possession        int    `json:"possession,omitempty"`
	Situation         string `json:"situation,omitempty"`
	Formation         string `json:"formation,omitempty"`
	PlayName          string `json:"play_name,omitempty"`
	ScoutCoverage     string `json:"scout_coverage,omitempty"`
	PlayTrigger       string `json:"play_trigger,omitempty"`
	ActionTrigger     string `json:"action_trigger,omitempty"` // legacy name for PlayTrigger
	ActionTypes       string `json:"action_types,omitempty"`
	ActionSequence    string `json:"action_sequence,omitempty"`
	Coverage          string `json:"coverage,omitempty"`
	BallScreen        string `json:"ball_screen,omitempty"`
	OffBallScreen     string `json:"off_ball_screen,omitempty"`
	HelpRotation      string `json:"help_rotation,omitempty"`
	Disruption        string `json:"disruption,omitempty"`
	Breakdown         string `json:"breakdown,omitempty"`
	Result            string `json:"result,omitempty"`
	PaintTouch        string `json:"paint_touch,omitempty"`
	Shooter           string `json:"shooter,omitempty"`
	ShotLocation      string `json:"shot_location,omitempty"`
	Contest           string `json:"contest,omitempty"`
	Rebound           string `json:"rebound,omitempty"`
	Points            int    `json:"points,omitempty"`
	HasShot           string `json:"has_shot,omitempty"`
	ShotX             string `json:"shot_x,omitempty"`
	ShotY             string `json:"shot_y,omitempty"`
	ShotResult        string `json:"shot_result,omitempty"`
	PlayerDesignation string `json:"player_designation,omitempty"`
	Notes             string `json:"notes,omitempty"`
	StartTime         string `json:"start_time,omitempty"`
	EndTime           string `json:"end_time,omitempty"`
	ActionsJson       string `json:"actions_json,omitempty"`
	CreatedAt         string `json:"created_at,omitempty"`
	UpdatedAt         string `json:"updated_at,omitempty"`
}
