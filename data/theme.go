package data

// WallColors holds the hex colors for each wall kind.
type WallColors struct {
	Blocked    string `json:"blocked"`
	Open       string `json:"open"`
	Entrance   string `json:"entrance"`
	OrangeOnly string `json:"orangeOnly"`
}

// PawnColors holds the hex color of each pawn.
type PawnColors struct {
	Green  string `json:"green"`
	Orange string `json:"orange"`
	Yellow string `json:"yellow"`
	Purple string `json:"purple"`
}

// ThemeDef defines the viewer colors loaded from JSON. Every color is a hex
// code such as "#FF8700".
type ThemeDef struct {
	Name        string     `json:"name"`
	Background  string     `json:"background"`
	Text        string     `json:"text"`
	Title       string     `json:"title"`
	Placeholder string     `json:"placeholder"` // Corner posts between walls
	Walls       WallColors `json:"walls"`
	Pawns       PawnColors `json:"pawns"`
	Timer       string     `json:"timer"`
	Camera      string     `json:"camera"`
	CrystalBall string     `json:"crystalBall"`
	Escalator   string     `json:"escalator"`
	ExitArrow   string     `json:"exitArrow"`
	Used        string     `json:"used"`        // Marker for used timers, cameras and crystal balls
	Unreachable string     `json:"unreachable"` // Background of cells not reachable from an entrance
}

// LoadTheme loads the theme definition from the embedded theme.json file.
func LoadTheme() (ThemeDef, error) {
	return Load[ThemeDef]("theme.json")
}

// MustLoadTheme loads the theme definition, panicking on error.
func MustLoadTheme() ThemeDef {
	def, err := LoadTheme()
	if err != nil {
		panic(err)
	}
	return def
}
