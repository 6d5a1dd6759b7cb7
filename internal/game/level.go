package game

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/appengine-ltd/misplaced/internal/dialogue"
)

type CollectibleID string

// Collectible is a misplaced file. It leaves the world exactly once.
type Collectible struct {
	ID       CollectibleID `json:"id"`
	Name     string        `json:"name"`
	Position Vec3          `json:"position"`
	Payload  string        `json:"payload,omitempty"`
	Audio    string        `json:"audio,omitempty"`
	Dialogue dialogue.ID   `json:"dialogue"`
}

type Level struct {
	Name            string        `json:"name"`
	Spawn           Vec3          `json:"spawn"`
	FloorHalfExtent float32       `json:"floor_half_extent"`
	Collectibles    []Collectible `json:"collectibles"`
}

type levelFile struct {
	FormatVersion int   `json:"format_version"`
	Level         Level `json:"level"`
}

const levelFormatVersion = 1

func DefaultLevel() Level {
	return Level{
		Name:            "Orfice",
		Spawn:           Vec3{X: 0, Y: 0, Z: 6},
		FloorHalfExtent: 12,
		Collectibles: []Collectible{
			{ID: "memo", Name: "Internal memo", Position: Vec3{X: -4, Y: 0.9, Z: -3}, Payload: "files/memo.pdf", Audio: "pickup.ogg", Dialogue: dialogue.IDMemo},
			{ID: "ledger", Name: "Archive ledger", Position: Vec3{X: 5, Y: 0.9, Z: -6}, Payload: "files/ledger.pdf", Audio: "pickup.ogg", Dialogue: dialogue.IDArchivist},
			{ID: "budget", Name: "Budget draft", Position: Vec3{X: 8, Y: 0.2, Z: 7}, Payload: "files/budget.pdf", Audio: "pickup.ogg", Dialogue: dialogue.IDBudget},
			{ID: "minutes", Name: "Meeting minutes", Position: Vec3{X: -9, Y: 0.9, Z: 4}, Payload: "files/minutes.pdf", Audio: "pickup.ogg", Dialogue: dialogue.IDMinutes},
			{ID: "cipher", Name: "Coded note", Position: Vec3{X: 0, Y: 2.1, Z: -10}, Payload: "files/cipher.pdf", Audio: "pickup.ogg", Dialogue: dialogue.IDCipher},
			{ID: "shredder", Name: "Shredder bin", Position: Vec3{X: 10.5, Y: 0.5, Z: -10.5}, Payload: "files/shreds.pdf", Audio: "pickup.ogg", Dialogue: dialogue.IDShredder},
		},
	}
}

// LoadLevel reads a level file. A missing file yields the default level.
func LoadLevel(path string) (Level, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultLevel(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultLevel(), nil
		}
		return Level{}, err
	}
	var file levelFile
	if err := json.Unmarshal(data, &file); err != nil {
		return Level{}, fmt.Errorf("decode level %s: %w", path, err)
	}
	if file.FormatVersion != levelFormatVersion {
		return Level{}, fmt.Errorf("%w: unsupported format version %d", ErrInvalidLevel, file.FormatVersion)
	}
	if err := file.Level.Validate(); err != nil {
		return Level{}, err
	}
	return file.Level, nil
}

func (l Level) Validate() error {
	if len(l.Collectibles) == 0 {
		return fmt.Errorf("%w: no collectibles", ErrInvalidLevel)
	}
	if l.FloorHalfExtent <= 0 {
		return fmt.Errorf("%w: floor half extent must be positive", ErrInvalidLevel)
	}
	seen := make(map[CollectibleID]struct{}, len(l.Collectibles))
	for _, c := range l.Collectibles {
		if strings.TrimSpace(string(c.ID)) == "" {
			return fmt.Errorf("%w: collectible without id", ErrInvalidLevel)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("%w: duplicate collectible %q", ErrInvalidLevel, c.ID)
		}
		seen[c.ID] = struct{}{}
		if strings.TrimSpace(string(c.Dialogue)) == "" {
			return fmt.Errorf("%w: collectible %q has no dialogue", ErrInvalidLevel, c.ID)
		}
	}
	return nil
}
