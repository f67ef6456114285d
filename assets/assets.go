// Package assets embeds the level files shipped with the playground.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/williamstrand/Third-Person-Components/shared/leveldata"
)

// LevelsDir is the embedded directory holding .tmx files.
const LevelsDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// FS exposes the embedded assets.
func FS() fs.FS {
	return assetFS
}

// LoadLevel loads a level from the embedded assets, e.g. "levels/playground.tmx".
func LoadLevel(path string) (*leveldata.LevelData, error) {
	return leveldata.Load(assetFS, path)
}

// LoadLevelFrom loads path from dir when it is set and from the embedded
// assets otherwise.
func LoadLevelFrom(dir fs.FS, path string) (*leveldata.LevelData, error) {
	if dir == nil {
		return LoadLevel(path)
	}
	return leveldata.Load(dir, path)
}

func MustLoadLevel(path string) *leveldata.LevelData {
	level, err := LoadLevel(path)
	if err != nil {
		panic(fmt.Sprintf("assets: %v", err))
	}
	return level
}

// LoadAllLevels loads every embedded level keyed by name.
func LoadAllLevels() (map[string]*leveldata.LevelData, []string, error) {
	return leveldata.LoadAll(assetFS, LevelsDir)
}
