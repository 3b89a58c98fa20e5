package railmap

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// connectionRecord is one segment line of a dataset file.
type connectionRecord struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Length int    `yaml:"length"`
	Color1 string `yaml:"color1"`
	Color2 string `yaml:"color2,omitempty"`
}

// ticketRecord is one destination ticket of a dataset file.
type ticketRecord struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Points int    `yaml:"points"`
}

// Dataset is the on-disk form of a board.
type Dataset struct {
	Name        string             `yaml:"name"`
	Connections []connectionRecord `yaml:"connections"`
	Tickets     []ticketRecord     `yaml:"tickets"`
}

//go:embed data/usa.yaml
var usaYAML []byte

// Load parses a YAML dataset and builds the Map.
func Load(r io.Reader) (*Map, error) {
	var ds Dataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("railmap: parse dataset: %w", err)
	}

	return ds.Build()
}

// LoadFile reads a dataset from path.
func LoadFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("railmap: open dataset %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Build converts raw records into a validated Map.
func (ds Dataset) Build() (*Map, error) {
	conns := make([]Connection, 0, len(ds.Connections))
	for i, rec := range ds.Connections {
		c1, err := ParseColor(rec.Color1)
		if err != nil {
			return nil, fmt.Errorf("connections[%d] %s-%s: %w", i, rec.From, rec.To, err)
		}
		c2 := NoColor
		if rec.Color2 != "" {
			if c2, err = ParseColor(rec.Color2); err != nil {
				return nil, fmt.Errorf("connections[%d] %s-%s: %w", i, rec.From, rec.To, err)
			}
		}
		conns = append(conns, Connection{From: rec.From, To: rec.To, Trains: rec.Length, Color1: c1, Color2: c2})
	}

	tickets := make([]Ticket, 0, len(ds.Tickets))
	for _, rec := range ds.Tickets {
		tickets = append(tickets, Ticket(rec))
	}

	return NewMap(conns, tickets)
}

// USA returns the embedded North American board.
func USA() (*Map, error) {
	return Load(bytes.NewReader(usaYAML))
}

// MustUSA is USA for package-level fixtures; it panics on a corrupt embed.
func MustUSA() *Map {
	m, err := USA()
	if err != nil {
		panic(err)
	}

	return m
}
