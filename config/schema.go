package config

// Config is the top-level YAML structure.
type Config struct {
	Version string      `yaml:"version" json:"version"`
	Map     string      `yaml:"map" json:"map"` // dataset path; empty = embedded USA map
	Planner PlannerConf `yaml:"planner" json:"planner"`
	Server  ServerConf  `yaml:"server" json:"server"`
}

// PlannerConf holds the routing and card-calculation settings shared by both
// networks.
type PlannerConf struct {
	PointImportance float64 `yaml:"point_importance" json:"point_importance"`
	Trains          int     `yaml:"trains" json:"trains"`
	MaxWaypoints    int     `yaml:"max_waypoints" json:"max_waypoints"`
	MaxDualColor    int     `yaml:"max_dual_color" json:"max_dual_color"`
}

// ServerConf holds the HTTP listener settings.
type ServerConf struct {
	Addr string `yaml:"addr" json:"addr"`
}

// Default returns the configuration used for absent keys.
func Default() Config {
	return Config{
		Version: "v1",
		Planner: PlannerConf{
			PointImportance: 0.1,
			Trains:          45,
			MaxWaypoints:    8,
			MaxDualColor:    16,
		},
		Server: ServerConf{Addr: ":8080"},
	}
}
